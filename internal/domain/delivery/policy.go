// Package delivery computes delivery fees for an order subtotal.
package delivery

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by policies.
var (
	ErrDistanceRequired = fmt.Errorf("delivery distance required")
	ErrInvalidDistance  = fmt.Errorf("delivery distance must not be negative")
	ErrNegativeSubtotal = fmt.Errorf("subtotal must not be negative")
)

// Quote is the input a Policy prices.
type Quote struct {
	Subtotal decimal.Decimal
	// DistanceMiles is nil until the customer has supplied a distance.
	DistanceMiles *int
}

// Policy computes the delivery fee for a quote. Fees are always rounded to
// two decimal places.
type Policy interface {
	Fee(q Quote) (decimal.Decimal, error)
}

// Percentage charges Rate percent of the subtotal, waived once the subtotal
// reaches FreeThreshold.
type Percentage struct {
	FreeThreshold decimal.Decimal
	// Rate is a percentage, e.g. 10 for 10%.
	Rate decimal.Decimal
}

// Fee implements Policy.
func (p Percentage) Fee(q Quote) (decimal.Decimal, error) {
	if q.Subtotal.IsNegative() {
		return decimal.Zero, ErrNegativeSubtotal
	}
	if q.Subtotal.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero, nil
	}
	// Round is half away from zero, which is half-up for non-negative fees.
	return q.Subtotal.Mul(p.Rate).Shift(-2).Round(2), nil
}

// Distance is a tiered flat-fee table keyed by delivery distance in miles.
//
//	distance <= FreeMiles              -> 0
//	FreeMiles < distance <= BaseMiles  -> BaseFee
//	distance > BaseMiles               -> BaseFee + BlockFee per complete BlockMiles beyond BaseMiles
type Distance struct {
	FreeMiles  int
	BaseMiles  int
	BaseFee    decimal.Decimal
	BlockMiles int
	BlockFee   decimal.Decimal
}

// Fee implements Policy.
func (p Distance) Fee(q Quote) (decimal.Decimal, error) {
	if q.Subtotal.IsNegative() {
		return decimal.Zero, ErrNegativeSubtotal
	}
	if q.DistanceMiles == nil {
		return decimal.Zero, ErrDistanceRequired
	}
	d := *q.DistanceMiles
	switch {
	case d < 0:
		return decimal.Zero, ErrInvalidDistance
	case d <= p.FreeMiles:
		return decimal.Zero, nil
	case d <= p.BaseMiles || p.BlockMiles <= 0:
		return p.BaseFee.Round(2), nil
	}
	blocks := int64((d - p.BaseMiles) / p.BlockMiles)
	return p.BaseFee.Add(p.BlockFee.Mul(decimal.NewFromInt(blocks))).Round(2), nil
}

// Flat charges a fixed Amount. A positive FreeThreshold waives the fee once
// the subtotal reaches it.
type Flat struct {
	Amount        decimal.Decimal
	FreeThreshold decimal.Decimal
}

// Fee implements Policy.
func (p Flat) Fee(q Quote) (decimal.Decimal, error) {
	if q.Subtotal.IsNegative() {
		return decimal.Zero, ErrNegativeSubtotal
	}
	if p.FreeThreshold.IsPositive() && q.Subtotal.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero, nil
	}
	return p.Amount.Round(2), nil
}
