package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/classics-showroom/internal/domain/catalog"
	"github.com/xenking/classics-showroom/internal/domain/order"
)

func newOrder(userID int64) *order.Order {
	return order.New(userID, []order.LineItem{
		{CarID: 1, CarName: "1961 Jaguar E-Type", Quantity: 1, UnitPrice: decimal.RequireFromString("100.00")},
	})
}

func TestOrders_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewOrders(nil)

	o := newOrder(7)
	require.NoError(t, s.Create(ctx, o))
	assert.Equal(t, int64(1), o.ID)

	byID, err := s.FindByID(ctx, o.ID)
	require.NoError(t, err)
	byNumber, err := s.FindByNumber(ctx, o.Number)
	require.NoError(t, err)
	assert.Equal(t, byID, byNumber)

	// Returned orders are copies.
	byID.Items[0].Quantity = 99
	again, err := s.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)

	_, err = s.FindByID(ctx, 42)
	assert.True(t, errors.Is(err, order.ErrNotFound))
}

func TestOrders_TransitionsArePendingOnly(t *testing.T) {
	ctx := context.Background()
	cars := NewCars(catalog.Car{ID: 1, Price: decimal.RequireFromString("100.00")})
	s := NewOrders(cars)

	o := newOrder(7)
	require.NoError(t, s.Create(ctx, o))

	capture := order.Capture{IntentID: "pi_1", Amount: decimal.RequireFromString("100"), Currency: "GBP", At: time.Now()}
	require.NoError(t, s.MarkPaid(ctx, o.ID, capture))

	for name, err := range map[string]error{
		"MarkPaid":       s.MarkPaid(ctx, o.ID, capture),
		"MarkFailed":     s.MarkFailed(ctx, o.ID, "pi_1"),
		"UpdatePayment":  s.UpdatePayment(ctx, o.ID, order.Totals{}, "pi_2"),
		"UpdateDelivery": s.UpdateDelivery(ctx, o.ID, 10, order.Totals{}),
	} {
		assert.True(t, errors.Is(err, order.ErrTransitionConflict), name)
	}

	got, err := s.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, got.Status)
	assert.Equal(t, "pi_1", got.PaymentIntentID)

	car, ok := cars.Get(1)
	require.True(t, ok)
	assert.True(t, car.Sold)

	// Shipping may still be recorded.
	require.NoError(t, s.UpdateShipping(ctx, o.ID, order.Shipping{FullName: "Ada"}))
}

func TestOrders_SettleRequiresStoredIntent(t *testing.T) {
	ctx := context.Background()
	cars := NewCars(catalog.Car{ID: 1, Price: decimal.RequireFromString("100.00")})
	s := NewOrders(cars)

	o := newOrder(7)
	require.NoError(t, s.Create(ctx, o))
	require.NoError(t, s.UpdatePayment(ctx, o.ID, order.Totals{}, "pi_2"))

	stale := order.Capture{IntentID: "pi_1", Amount: decimal.RequireFromString("100"), Currency: "GBP", At: time.Now()}
	assert.ErrorIs(t, s.MarkPaid(ctx, o.ID, stale), order.ErrTransitionConflict)
	assert.ErrorIs(t, s.MarkFailed(ctx, o.ID, "pi_1"), order.ErrTransitionConflict)

	got, err := s.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, got.Status)
	assert.False(t, got.PaidAmount.Valid)
	car, _ := cars.Get(1)
	assert.False(t, car.Sold)

	current := stale
	current.IntentID = "pi_2"
	require.NoError(t, s.MarkPaid(ctx, o.ID, current))
}

func TestOrders_ConcurrentMarkPaidOnce(t *testing.T) {
	ctx := context.Background()
	s := NewOrders(nil)
	o := newOrder(7)
	require.NoError(t, s.Create(ctx, o))

	var (
		wg  sync.WaitGroup
		won atomic.Int32
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.MarkPaid(ctx, o.ID, order.Capture{At: time.Now()}); err == nil {
				won.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), won.Load())
}

func TestOrders_ListByUser(t *testing.T) {
	ctx := context.Background()
	s := NewOrders(nil)
	for range 3 {
		require.NoError(t, s.Create(ctx, newOrder(7)))
	}
	require.NoError(t, s.Create(ctx, newOrder(8)))

	page, total, err := s.ListByUser(ctx, 7, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].ID)

	page, _, err = s.ListByUser(ctx, 7, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(1), page[0].ID)

	page, total, err = s.ListByUser(ctx, 7, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 3, total)
}

func TestCarts(t *testing.T) {
	ctx := context.Background()
	s := NewCarts()
	s.Add(7, 2, 1)
	s.Add(7, 1, 1)
	s.Add(7, 1, 2)

	c, err := s.Get(ctx, 7)
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, int64(1), c.Items[0].CarID)
	assert.Equal(t, 3, c.Items[0].Quantity)

	require.NoError(t, s.Clear(ctx, 7))
	c, err = s.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Equal(t, 1, s.Cleared(7))
}

func TestCars_GetByIDsSkipsMissing(t *testing.T) {
	s := NewCars(catalog.Car{ID: 1}, catalog.Car{ID: 2})
	got, err := s.GetByIDs(context.Background(), []int64{2, 9})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}
