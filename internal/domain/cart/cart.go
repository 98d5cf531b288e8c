// Package cart defines the per-user cart ("trailer") checkout reads from.
package cart

import "context"

// Item is one car in a cart. A cart holds at most one Item per car.
type Item struct {
	CarID    int64
	Quantity int
}

// Cart is the mutable selection of a single user.
type Cart struct {
	UserID int64
	Items  []Item
}

// Empty reports whether the cart has nothing to purchase.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// Store reads and clears carts. Implementations return an empty cart, not an
// error, for users who never added anything.
type Store interface {
	Get(ctx context.Context, userID int64) (*Cart, error)
	Clear(ctx context.Context, userID int64) error
}
