// Package catalog defines the purchasable cars checkout prices orders from.
package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested car does not exist.
var ErrNotFound = fmt.Errorf("car not found")

// Car is a priced catalog entry. Sold cars cannot be checked out again.
type Car struct {
	ID    int64
	Make  string
	Model string
	Year  int
	Price decimal.Decimal
	Sold  bool
}

// Name is the display name stored on line items.
func (c Car) Name() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}

// Repository defines read access to the catalog.
type Repository interface {
	// GetByIDs returns the cars matching any of ids. Missing ids are
	// silently omitted.
	GetByIDs(ctx context.Context, ids []int64) ([]Car, error)
}
