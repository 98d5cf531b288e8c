package payment_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xenking/classics-showroom/internal/domain/catalog"
	"github.com/xenking/classics-showroom/internal/domain/delivery"
	"github.com/xenking/classics-showroom/internal/domain/order"
	"github.com/xenking/classics-showroom/internal/domain/payment"
	"github.com/xenking/classics-showroom/internal/storage/memory"
)

// --- Mock implementations ---

type mockNotifier struct {
	mu   sync.Mutex
	sent []*order.Order
	err  error
}

func (m *mockNotifier) OrderPaid(_ context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, o)
	return m.err
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type mockPublisher struct {
	mu     sync.Mutex
	events []payment.OrderEvent
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, ev payment.OrderEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

type failingOrders struct {
	findErr error
	markErr error
	o       *order.Order
}

func (f *failingOrders) FindByID(_ context.Context, _ int64) (*order.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.o, nil
}

func (f *failingOrders) MarkPaid(_ context.Context, _ int64, _ order.Capture) error { return f.markErr }
func (f *failingOrders) MarkFailed(_ context.Context, _ int64, _ string) error      { return f.markErr }

// --- Helpers ---

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type fixture struct {
	orders    *memory.Orders
	cars      *memory.Cars
	carts     *memory.Carts
	notifier  *mockNotifier
	publisher *mockPublisher
	rec       *payment.Reconciler
}

func newFixture() *fixture {
	cars := memory.NewCars(catalog.Car{ID: 1, Make: "Jaguar", Model: "E-Type", Year: 1961, Price: decimal.RequireFromString("100.00")})
	f := &fixture{
		orders:    memory.NewOrders(cars),
		cars:      cars,
		carts:     memory.NewCarts(),
		notifier:  &mockNotifier{},
		publisher: &mockPublisher{},
	}
	f.rec = payment.NewReconciler(f.orders, f.notifier, f.carts, f.publisher, payment.WithClock(func() time.Time { return fixedNow }))
	return f
}

// pendingOrder creates a pending order for user 7 with two of car 1 and a
// flat 5.00 delivery charge.
func (f *fixture) pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o := order.New(7, []order.LineItem{{CarID: 1, CarName: "1961 Jaguar E-Type", Quantity: 2, UnitPrice: decimal.RequireFromString("100.00")}})
	require.NoError(t, o.Recalculate(delivery.Flat{Amount: decimal.RequireFromString("5.00")}))
	require.NoError(t, f.orders.Create(context.Background(), o))
	f.carts.Add(7, 1, 2)
	return o
}

func succeeded(orderID int64, amount int64, currency string) payment.Event {
	return payment.Event{
		ID:   "evt_succeeded",
		Type: "payment_intent.succeeded",
		Kind: payment.KindIntentSucceeded,
		Intent: payment.Intent{
			ID:             "pi_123",
			Amount:         amount,
			AmountReceived: amount,
			Currency:       currency,
			Status:         payment.IntentSucceeded,
			Metadata:       map[string]string{payment.MetaOrderID: strconv.FormatInt(orderID, 10)},
		},
	}
}

func failed(orderID int64) payment.Event {
	return payment.Event{
		ID:   "evt_failed",
		Type: "payment_intent.payment_failed",
		Kind: payment.KindIntentFailed,
		Intent: payment.Intent{
			ID:       "pi_123",
			Amount:   20500,
			Currency: "gbp",
			Metadata: map[string]string{payment.MetaOrderID: strconv.FormatInt(orderID, 10)},
		},
	}
}

// --- Tests ---

func TestReconciler_SucceededMarksPaid(t *testing.T) {
	f := newFixture()
	o := f.pendingOrder(t)
	require.True(t, decimal.RequireFromString("205.00").Equal(o.GrandTotal))

	outcome, err := f.rec.Handle(context.Background(), succeeded(o.ID, 20500, "gbp"))
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomePaid, outcome)

	got, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, got.Status)
	require.True(t, got.PaidAmount.Valid)
	assert.True(t, decimal.RequireFromString("205.00").Equal(got.PaidAmount.Decimal))
	assert.Equal(t, "GBP", got.Currency)
	assert.Equal(t, "pi_123", got.PaymentIntentID)
	require.NotNil(t, got.PaidAt)
	assert.Equal(t, fixedNow, *got.PaidAt)

	assert.Equal(t, 1, f.notifier.count())
	assert.Equal(t, 1, f.carts.Cleared(7))
	car, _ := f.cars.Get(1)
	assert.True(t, car.Sold)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, payment.EventOrderPaid, f.publisher.events[0].Type)
	assert.True(t, decimal.RequireFromString("205.00").Equal(f.publisher.events[0].Amount))
}

func TestReconciler_DuplicateSucceededIsNoop(t *testing.T) {
	f := newFixture()
	o := f.pendingOrder(t)
	ev := succeeded(o.ID, 20500, "gbp")

	first, err := f.rec.Handle(context.Background(), ev)
	require.NoError(t, err)
	second, err := f.rec.Handle(context.Background(), ev)
	require.NoError(t, err)

	assert.Equal(t, payment.OutcomePaid, first)
	assert.Equal(t, payment.OutcomeDuplicate, second)
	assert.Equal(t, 1, f.notifier.count())
	assert.Equal(t, 1, f.carts.Cleared(7))
	assert.Len(t, f.publisher.events, 1)
}

func TestReconciler_ConcurrentDuplicatesTransitionOnce(t *testing.T) {
	f := newFixture()
	o := f.pendingOrder(t)
	ev := succeeded(o.ID, 20500, "gbp")

	const deliveries = 16
	outcomes := make([]payment.Outcome, deliveries)
	var wg sync.WaitGroup
	for i := range deliveries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.rec.Handle(context.Background(), ev)
			assert.NoError(t, err)
			outcomes[i] = out
		}()
	}
	wg.Wait()

	paid := 0
	for _, out := range outcomes {
		if out == payment.OutcomePaid {
			paid++
		} else {
			assert.Equal(t, payment.OutcomeDuplicate, out)
		}
	}
	assert.Equal(t, 1, paid)
	assert.Equal(t, 1, f.notifier.count())
}

func TestReconciler_FirstTerminalTransitionWins(t *testing.T) {
	t.Run("failed then succeeded stays failed", func(t *testing.T) {
		f := newFixture()
		o := f.pendingOrder(t)

		out, err := f.rec.Handle(context.Background(), failed(o.ID))
		require.NoError(t, err)
		assert.Equal(t, payment.OutcomeFailed, out)

		out, err = f.rec.Handle(context.Background(), succeeded(o.ID, 20500, "gbp"))
		require.NoError(t, err)
		assert.Equal(t, payment.OutcomeConflict, out)

		got, err := f.orders.FindByID(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusFailed, got.Status)
		assert.False(t, got.PaidAmount.Valid)
		assert.Zero(t, f.notifier.count())
		assert.Zero(t, f.carts.Cleared(7))
	})

	t.Run("succeeded then failed stays paid", func(t *testing.T) {
		f := newFixture()
		o := f.pendingOrder(t)

		_, err := f.rec.Handle(context.Background(), succeeded(o.ID, 20500, "gbp"))
		require.NoError(t, err)
		out, err := f.rec.Handle(context.Background(), failed(o.ID))
		require.NoError(t, err)
		assert.Equal(t, payment.OutcomeConflict, out)

		got, err := f.orders.FindByID(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, got.Status)
	})
}

func TestReconciler_SupersededIntentCannotSettle(t *testing.T) {
	tests := []struct {
		name  string
		event func(orderID int64) payment.Event
	}{
		{name: "succeeded", event: func(id int64) payment.Event { return succeeded(id, 20500, "gbp") }},
		{name: "failed", event: failed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			o := f.pendingOrder(t)
			require.NoError(t, f.orders.UpdatePayment(context.Background(), o.ID, o.Totals(), "pi_456"))

			core, logs := observer.New(zapcore.ErrorLevel)
			ctx := zctx.Base(context.Background(), zap.New(core))

			out, err := f.rec.Handle(ctx, tt.event(o.ID))
			require.NoError(t, err)
			assert.Equal(t, payment.OutcomeConflict, out)
			assert.Equal(t, 1, logs.FilterMessage("Event intent does not match order").Len())

			got, err := f.orders.FindByID(context.Background(), o.ID)
			require.NoError(t, err)
			assert.Equal(t, order.StatusPending, got.Status)
			assert.Equal(t, "pi_456", got.PaymentIntentID)
			assert.False(t, got.PaidAmount.Valid)
			assert.Zero(t, f.notifier.count())
			assert.Zero(t, f.carts.Cleared(7))
			assert.Empty(t, f.publisher.events)
			car, _ := f.cars.Get(1)
			assert.False(t, car.Sold)
		})
	}
}

func TestReconciler_PaidBySupersededIntentIsConflict(t *testing.T) {
	f := newFixture()
	o := f.pendingOrder(t)

	_, err := f.rec.Handle(context.Background(), succeeded(o.ID, 20500, "gbp"))
	require.NoError(t, err)

	// A second charge on another intent for the same order.
	ev := succeeded(o.ID, 20500, "gbp")
	ev.ID = "evt_other"
	ev.Intent.ID = "pi_456"
	out, err := f.rec.Handle(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeConflict, out)
	assert.Equal(t, 1, f.notifier.count())
}

func TestReconciler_AmountMismatchIsLogged(t *testing.T) {
	f := newFixture()
	o := f.pendingOrder(t)

	core, logs := observer.New(zapcore.ErrorLevel)
	ctx := zctx.Base(context.Background(), zap.New(core))

	out, err := f.rec.Handle(ctx, succeeded(o.ID, 25000, "gbp"))
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomePaid, out)

	entries := logs.FilterMessage("Captured amount differs from order total").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(25000), fields["amount_received"])
	assert.Equal(t, int64(20500), fields["grand_total"])

	got, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("250.00").Equal(got.PaidAmount.Decimal))
}

func TestReconciler_FailedSendsNoEmail(t *testing.T) {
	f := newFixture()
	o := f.pendingOrder(t)

	out, err := f.rec.Handle(context.Background(), failed(o.ID))
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeFailed, out)
	assert.Zero(t, f.notifier.count())
	assert.Zero(t, f.carts.Cleared(7))
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, payment.EventOrderPaymentFailed, f.publisher.events[0].Type)
}

func TestReconciler_Unmatched(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name     string
		metadata map[string]string
	}{
		{name: "no metadata", metadata: nil},
		{name: "malformed id", metadata: map[string]string{payment.MetaOrderID: "abc"}},
		{name: "unknown order", metadata: map[string]string{payment.MetaOrderID: "999"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := succeeded(0, 100, "gbp")
			ev.Intent.Metadata = tt.metadata

			out, err := f.rec.Handle(context.Background(), ev)
			require.NoError(t, err)
			assert.Equal(t, payment.OutcomeUnmatched, out)
		})
	}
	assert.Zero(t, f.notifier.count())
}

func TestReconciler_UnknownKindIgnored(t *testing.T) {
	f := newFixture()
	o := f.pendingOrder(t)

	ev := succeeded(o.ID, 20500, "gbp")
	ev.Kind = payment.KindUnknown
	ev.Type = "charge.refunded"

	out, err := f.rec.Handle(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeIgnored, out)

	got, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, got.Status)
}

func TestReconciler_SideEffectFailuresDoNotUndoTransition(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("smtp down")
	f.publisher.err = errors.New("sns down")
	o := f.pendingOrder(t)

	out, err := f.rec.Handle(context.Background(), succeeded(o.ID, 20500, "gbp"))
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomePaid, out)

	got, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, got.Status)
	assert.Equal(t, 1, f.notifier.count())
}

func TestReconciler_UsesAmountWhenNothingReceived(t *testing.T) {
	f := newFixture()
	o := f.pendingOrder(t)

	ev := succeeded(o.ID, 20500, "usd")
	ev.Intent.AmountReceived = 0

	_, err := f.rec.Handle(context.Background(), ev)
	require.NoError(t, err)

	got, err := f.orders.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("205.00").Equal(got.PaidAmount.Decimal))
	assert.Equal(t, "USD", got.Currency)
}

func TestReconciler_InfrastructureErrors(t *testing.T) {
	pending := &order.Order{ID: 1, Status: order.StatusPending}

	tests := []struct {
		name    string
		orders  *failingOrders
		outcome payment.Outcome
		wantErr string
	}{
		{
			name:    "lookup failure",
			orders:  &failingOrders{findErr: errors.New("connection reset")},
			wantErr: "find order 1",
		},
		{
			name:    "transition failure",
			orders:  &failingOrders{o: pending, markErr: errors.New("connection reset")},
			wantErr: "mark order 1 paid",
		},
		{
			name:    "transition conflict is benign",
			orders:  &failingOrders{o: pending, markErr: order.ErrTransitionConflict},
			outcome: payment.OutcomeDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &mockNotifier{}
			rec := payment.NewReconciler(tt.orders, notifier, memory.NewCarts(), &mockPublisher{})

			out, err := rec.Handle(context.Background(), succeeded(1, 100, "gbp"))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, out)
			assert.Zero(t, notifier.count())
		})
	}
}

func TestMinorUnits(t *testing.T) {
	minor, err := payment.ToMinor(decimal.RequireFromString("205.00"))
	require.NoError(t, err)
	assert.Equal(t, int64(20500), minor)

	minor, err = payment.ToMinor(decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), minor)

	_, err = payment.ToMinor(decimal.RequireFromString("1.005"))
	require.Error(t, err)

	_, err = payment.ToMinor(decimal.RequireFromString("-1"))
	require.Error(t, err)

	assert.True(t, decimal.RequireFromString("205.00").Equal(payment.FromMinor(20500)))
	assert.Equal(t, "GBP", payment.NormalizeCurrency(" gbp "))
}

func TestIntentStatus_AwaitingPayment(t *testing.T) {
	assert.True(t, payment.IntentRequiresPaymentMethod.AwaitingPayment())
	assert.True(t, payment.IntentRequiresAction.AwaitingPayment())
	assert.False(t, payment.IntentSucceeded.AwaitingPayment())
	assert.False(t, payment.IntentCanceled.AwaitingPayment())
	assert.False(t, payment.IntentProcessing.AwaitingPayment())
}
