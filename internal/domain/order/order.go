// Package order defines the order aggregate, its line items and the
// persistence contract for status transitions.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/classics-showroom/internal/domain/delivery"
)

// Status is the payment state of an order.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// Terminal reports whether no further transitions are defined from s.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusFailed
}

// Sentinel errors for order persistence and integrity.
var (
	ErrNotFound = fmt.Errorf("order not found")
	// ErrTransitionConflict is returned when a status-conditioned update
	// matched no row because the order had already left the expected state.
	ErrTransitionConflict = fmt.Errorf("order status transition conflict")
	ErrInvalidLineItem    = fmt.Errorf("invalid line item")
)

// Order is one purchase attempt by one user.
type Order struct {
	ID     int64
	Number uuid.UUID
	// UserID is nil once the owning account has been deleted.
	UserID *int64
	// AccountEmail is the owning account's address at order time. It is the
	// confirmation fallback when no shipping email has been recorded.
	AccountEmail string
	Shipping     Shipping
	// DeliveryDistance in whole miles, when the customer supplied one.
	DeliveryDistance *int
	CartSnapshot     []SnapshotItem
	Items            []LineItem

	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	GrandTotal  decimal.Decimal

	PaymentIntentID string
	PaidAmount      decimal.NullDecimal
	Currency        string
	PaidAt          *time.Time
	Status          Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shipping holds contact and delivery fields captured at checkout.
type Shipping struct {
	FullName       string
	Email          string
	PhoneNumber    string
	StreetAddress1 string
	StreetAddress2 string
	TownOrCity     string
	County         string
	Postcode       string
	Country        string
}

// LineItem is one car and quantity within an order. UnitPrice is the catalog
// price at the time the order was created.
type LineItem struct {
	ID        int64
	CarID     int64
	CarName   string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total returns Quantity × UnitPrice.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Validate rejects non-positive quantities and negative prices.
func (li LineItem) Validate() error {
	if li.Quantity <= 0 {
		return fmt.Errorf("car %d: quantity %d: %w", li.CarID, li.Quantity, ErrInvalidLineItem)
	}
	if li.UnitPrice.IsNegative() {
		return fmt.Errorf("car %d: unit price %s: %w", li.CarID, li.UnitPrice, ErrInvalidLineItem)
	}
	return nil
}

// SnapshotItem is one entry of the audit copy of the cart. It is written
// once when the order is created and never read back for pricing.
type SnapshotItem struct {
	CarID     int64           `json:"car_id"`
	CarName   string          `json:"car_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// New creates a pending order for userID from the given line items. Totals
// are not set; call Recalculate before persisting.
func New(userID int64, items []LineItem) *Order {
	snapshot := make([]SnapshotItem, len(items))
	for i, li := range items {
		snapshot[i] = SnapshotItem{
			CarID:     li.CarID,
			CarName:   li.CarName,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			LineTotal: li.Total(),
		}
	}
	return &Order{
		Number:       uuid.New(),
		UserID:       &userID,
		CartSnapshot: snapshot,
		Items:        items,
		Status:       StatusPending,
	}
}

// OwnedBy reports whether the order belongs to userID.
func (o *Order) OwnedBy(userID int64) bool {
	return o.UserID != nil && *o.UserID == userID
}

// RecipientEmail is where order mail goes: the shipping email, or the account
// email when shipping details have not been recorded yet.
func (o *Order) RecipientEmail() string {
	if o.Shipping.Email != "" {
		return o.Shipping.Email
	}
	return o.AccountEmail
}

// Totals is the derived money triple of an order.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	GrandTotal  decimal.Decimal
}

// Totals returns the order's current totals.
func (o *Order) Totals() Totals {
	return Totals{Subtotal: o.Subtotal, DeliveryFee: o.DeliveryFee, GrandTotal: o.GrandTotal}
}

// Recalculate derives the subtotal from the line items, asks the policy for a
// delivery fee and sets the grand total. It is the only place totals are
// assigned.
//
// When the policy needs information the order does not have yet (such as a
// delivery distance), the fee is left at zero so the totals stay consistent,
// and the policy error is returned for the caller to decide on.
func (o *Order) Recalculate(p delivery.Policy) error {
	subtotal := decimal.Zero
	for _, li := range o.Items {
		if err := li.Validate(); err != nil {
			return err
		}
		subtotal = subtotal.Add(li.Total())
	}

	fee, err := p.Fee(delivery.Quote{Subtotal: subtotal, DistanceMiles: o.DeliveryDistance})
	if err != nil {
		fee = decimal.Zero
	}

	o.Subtotal = subtotal.Round(2)
	o.DeliveryFee = fee.Round(2)
	o.GrandTotal = o.Subtotal.Add(o.DeliveryFee)
	return err
}

// Capture records a successful payment reported by the provider.
type Capture struct {
	IntentID string
	Amount   decimal.Decimal
	Currency string
	At       time.Time
}

// Repository defines persistence operations for orders. Every mutation of a
// pending order is conditioned on the stored status still being pending and
// returns ErrTransitionConflict when it is not.
type Repository interface {
	// Create persists a new order with its line items, assigning ID and
	// CreatedAt.
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id int64) (*Order, error)
	FindByNumber(ctx context.Context, number uuid.UUID) (*Order, error)
	// ListByUser returns one page of the user's orders, newest first, plus
	// the total number of orders the user has.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Order, int, error)

	UpdatePayment(ctx context.Context, id int64, t Totals, intentID string) error
	UpdateDelivery(ctx context.Context, id int64, distanceMiles int, t Totals) error
	UpdateShipping(ctx context.Context, id int64, s Shipping) error

	// MarkPaid moves a pending order to paid, records the capture and marks
	// the order's cars sold, atomically. It fails with ErrTransitionConflict
	// when the order already carries a different payment intent.
	MarkPaid(ctx context.Context, id int64, c Capture) error
	// MarkFailed moves a pending order to failed under the same intent rule
	// as MarkPaid.
	MarkFailed(ctx context.Context, id int64, intentID string) error
}
