package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/classics-showroom/internal/domain/delivery"
)

func tenPercentOver50() delivery.Policy {
	return delivery.Percentage{
		FreeThreshold: decimal.RequireFromString("50.00"),
		Rate:          decimal.NewFromInt(10),
	}
}

func item(carID int64, qty int, price string) LineItem {
	return LineItem{CarID: carID, CarName: "car", Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

func TestLineItem_Total(t *testing.T) {
	li := item(1, 3, "12.34")
	assert.True(t, decimal.RequireFromString("37.02").Equal(li.Total()))
}

func TestNew(t *testing.T) {
	o := New(42, []LineItem{item(1, 2, "100.00"), item(2, 1, "15.50")})

	assert.Equal(t, StatusPending, o.Status)
	require.NotNil(t, o.UserID)
	assert.Equal(t, int64(42), *o.UserID)
	assert.NotEqual(t, uuid.Nil, o.Number)
	require.Len(t, o.CartSnapshot, 2)
	assert.True(t, decimal.RequireFromString("200.00").Equal(o.CartSnapshot[0].LineTotal))
	assert.True(t, o.OwnedBy(42))
	assert.False(t, o.OwnedBy(7))
}

func TestOrder_Recalculate(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		subtotal string
		fee      string
	}{
		{name: "below threshold", items: []LineItem{item(1, 1, "40.00")}, subtotal: "40.00", fee: "4.00"},
		{name: "at threshold", items: []LineItem{item(1, 2, "25.00")}, subtotal: "50.00", fee: "0"},
		{name: "many lines", items: []LineItem{item(1, 3, "0.10"), item(2, 1, "0.20")}, subtotal: "0.50", fee: "0.05"},
		{name: "no lines", items: nil, subtotal: "0", fee: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(1, tt.items)
			require.NoError(t, o.Recalculate(tenPercentOver50()))

			assert.True(t, decimal.RequireFromString(tt.subtotal).Equal(o.Subtotal), "subtotal %s", o.Subtotal)
			assert.True(t, decimal.RequireFromString(tt.fee).Equal(o.DeliveryFee), "fee %s", o.DeliveryFee)
			assert.True(t, o.GrandTotal.Equal(o.Subtotal.Add(o.DeliveryFee)))
		})
	}
}

func TestOrder_RecalculateIgnoresStaleTotals(t *testing.T) {
	o := New(1, []LineItem{item(1, 2, "100.00")})
	o.Subtotal = decimal.NewFromInt(1)
	o.GrandTotal = decimal.NewFromInt(1)

	require.NoError(t, o.Recalculate(delivery.Flat{Amount: decimal.RequireFromString("5.00")}))
	assert.True(t, decimal.RequireFromString("200.00").Equal(o.Subtotal))
	assert.True(t, decimal.RequireFromString("205.00").Equal(o.GrandTotal))
}

func TestOrder_RecalculateRejectsBadLineItems(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
	}{
		{name: "zero quantity", item: item(1, 0, "10.00")},
		{name: "negative quantity", item: item(1, -1, "10.00")},
		{name: "negative price", item: item(1, 1, "-0.01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(1, []LineItem{tt.item})
			err := o.Recalculate(tenPercentOver50())
			require.ErrorIs(t, err, ErrInvalidLineItem)
		})
	}
}

func TestOrder_RecalculateMissingDistance(t *testing.T) {
	policy := delivery.Distance{
		FreeMiles: 25, BaseMiles: 100, BaseFee: decimal.NewFromInt(50),
		BlockMiles: 50, BlockFee: decimal.NewFromInt(10),
	}
	o := New(1, []LineItem{item(1, 1, "300.00")})

	err := o.Recalculate(policy)
	require.ErrorIs(t, err, delivery.ErrDistanceRequired)
	assert.True(t, o.DeliveryFee.IsZero())
	assert.True(t, o.GrandTotal.Equal(o.Subtotal))

	d := 150
	o.DeliveryDistance = &d
	require.NoError(t, o.Recalculate(policy))
	assert.True(t, decimal.RequireFromString("360.00").Equal(o.GrandTotal))
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusPaid.Terminal())
	assert.True(t, StatusFailed.Terminal())
}
