package payment

import (
	"context"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/internal/domain/order"
)

// Outcome describes what handling an event did.
type Outcome string

const (
	OutcomePaid      Outcome = "paid"
	OutcomeFailed    Outcome = "failed"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeConflict  Outcome = "conflict"
	OutcomeUnmatched Outcome = "unmatched"
)

// Event types published after a terminal transition commits.
const (
	EventOrderPaid          = "order.paid"
	EventOrderPaymentFailed = "order.payment_failed"
)

// Orders is the subset of order.Repository the reconciler needs.
type Orders interface {
	FindByID(ctx context.Context, id int64) (*order.Order, error)
	MarkPaid(ctx context.Context, id int64, c order.Capture) error
	MarkFailed(ctx context.Context, id int64, intentID string) error
}

// Notifier sends the payment confirmation to the customer.
type Notifier interface {
	OrderPaid(ctx context.Context, o *order.Order) error
}

// CartClearer empties a user's cart once their order is paid.
type CartClearer interface {
	Clear(ctx context.Context, userID int64) error
}

// OrderEvent is the message published for downstream consumers.
type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     int64           `json:"order_id"`
	OrderNumber uuid.UUID       `json:"order_number"`
	UserID      *int64          `json:"user_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	IntentID    string          `json:"payment_intent_id,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Publisher fans order events out to other systems.
type Publisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}

type handlerFunc func(ctx context.Context, ev Event) (Outcome, error)

// Reconciler applies verified webhook events to orders. Every mutation is a
// status-conditioned update, so replays and concurrent deliveries of the same
// event produce at most one transition. The first terminal transition wins;
// later conflicting events are logged and dropped. Only the intent currently
// stored on an order can settle it.
type Reconciler struct {
	orders    Orders
	notifier  Notifier
	carts     CartClearer
	publisher Publisher
	now       func() time.Time
	handlers  map[Kind]handlerFunc
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithClock overrides the capture timestamp source.
func WithClock(now func() time.Time) ReconcilerOption {
	return func(r *Reconciler) { r.now = now }
}

// NewReconciler creates a Reconciler. Notifier, carts and publisher receive
// post-commit side effects only; their failures are logged and never undo a
// transition.
func NewReconciler(
	orders Orders,
	notifier Notifier,
	carts CartClearer,
	publisher Publisher,
	opts ...ReconcilerOption,
) *Reconciler {
	r := &Reconciler{
		orders:    orders,
		notifier:  notifier,
		carts:     carts,
		publisher: publisher,
		now:       time.Now,
	}
	r.handlers = map[Kind]handlerFunc{
		KindIntentSucceeded: r.handleSucceeded,
		KindIntentFailed:    r.handleFailed,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle dispatches ev by kind. Unknown kinds are acknowledged without
// action. A non-nil error means an infrastructure failure, not a rejected
// event.
func (r *Reconciler) Handle(ctx context.Context, ev Event) (Outcome, error) {
	ctx = zctx.With(ctx,
		zap.String("event_id", ev.ID),
		zap.String("event_type", ev.Type),
		zap.String("payment_intent", ev.Intent.ID),
	)
	h, ok := r.handlers[ev.Kind]
	if !ok {
		zctx.From(ctx).Debug("Ignoring unhandled event type")
		return OutcomeIgnored, nil
	}
	return h(ctx, ev)
}

func (r *Reconciler) handleSucceeded(ctx context.Context, ev Event) (Outcome, error) {
	o, outcome, err := r.pendingOrder(ctx, ev, order.StatusPaid)
	if o == nil {
		return outcome, err
	}

	received := ev.Intent.AmountReceived
	if received == 0 {
		received = ev.Intent.Amount
	}
	if expected, err := ToMinor(o.GrandTotal); err != nil || expected != received {
		zctx.From(ctx).Error("Captured amount differs from order total",
			zap.Int64("order_id", o.ID),
			zap.Int64("amount_received", received),
			zap.Int64("grand_total", expected),
		)
	}
	capture := order.Capture{
		IntentID: ev.Intent.ID,
		Amount:   FromMinor(received),
		Currency: NormalizeCurrency(ev.Intent.Currency),
		At:       r.now().UTC(),
	}

	if err := r.orders.MarkPaid(ctx, o.ID, capture); err != nil {
		if errors.Is(err, order.ErrTransitionConflict) {
			return r.lostRace(ctx, ev, order.StatusPaid)
		}
		return "", errors.Wrapf(err, "mark order %d paid", o.ID)
	}

	o.Status = order.StatusPaid
	if o.PaymentIntentID == "" {
		o.PaymentIntentID = capture.IntentID
	}
	o.PaidAmount = decimal.NewNullDecimal(capture.Amount)
	o.Currency = capture.Currency
	o.PaidAt = &capture.At

	lg := zctx.From(ctx)
	lg.Info("Order paid",
		zap.String("amount", capture.Amount.StringFixed(2)),
		zap.String("currency", capture.Currency),
	)

	if err := r.notifier.OrderPaid(ctx, o); err != nil {
		lg.Error("Send confirmation email", zap.Error(err))
	}
	if o.UserID != nil {
		if err := r.carts.Clear(ctx, *o.UserID); err != nil {
			lg.Error("Clear cart", zap.Error(err))
		}
	}
	r.publish(ctx, EventOrderPaid, o)

	return OutcomePaid, nil
}

func (r *Reconciler) handleFailed(ctx context.Context, ev Event) (Outcome, error) {
	o, outcome, err := r.pendingOrder(ctx, ev, order.StatusFailed)
	if o == nil {
		return outcome, err
	}

	if err := r.orders.MarkFailed(ctx, o.ID, ev.Intent.ID); err != nil {
		if errors.Is(err, order.ErrTransitionConflict) {
			return r.lostRace(ctx, ev, order.StatusFailed)
		}
		return "", errors.Wrapf(err, "mark order %d failed", o.ID)
	}
	o.Status = order.StatusFailed

	zctx.From(ctx).Info("Order payment failed")
	r.publish(ctx, EventOrderPaymentFailed, o)

	return OutcomeFailed, nil
}

// pendingOrder resolves the order an event refers to. It returns a nil order
// with the outcome to report when there is nothing to transition.
func (r *Reconciler) pendingOrder(ctx context.Context, ev Event, target order.Status) (*order.Order, Outcome, error) {
	lg := zctx.From(ctx)

	raw, ok := ev.Intent.Metadata[MetaOrderID]
	if !ok {
		lg.Warn("Event has no order correlation id")
		return nil, OutcomeUnmatched, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		lg.Warn("Event has malformed order correlation id", zap.String("order_id", raw))
		return nil, OutcomeUnmatched, nil
	}

	o, err := r.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			lg.Warn("Event refers to unknown order", zap.Int64("order_id", id))
			return nil, OutcomeUnmatched, nil
		}
		return nil, "", errors.Wrapf(err, "find order %d", id)
	}

	if o.PaymentIntentID != "" && o.PaymentIntentID != ev.Intent.ID {
		lg.Error("Event intent does not match order",
			zap.Int64("order_id", id),
			zap.String("order_payment_intent", o.PaymentIntentID),
			zap.String("status", string(o.Status)),
		)
		return nil, OutcomeConflict, nil
	}

	switch {
	case o.Status == order.StatusPending:
		return o, "", nil
	case o.Status == target:
		lg.Debug("Order already in target state", zap.Int64("order_id", id), zap.String("status", string(o.Status)))
		return nil, OutcomeDuplicate, nil
	default:
		lg.Warn("Dropping event conflicting with terminal order state",
			zap.Int64("order_id", id),
			zap.String("status", string(o.Status)),
			zap.String("wanted", string(target)),
		)
		return nil, OutcomeConflict, nil
	}
}

// lostRace classifies an event whose conditional update matched no row
// because the order changed after it was read.
func (r *Reconciler) lostRace(ctx context.Context, ev Event, target order.Status) (Outcome, error) {
	zctx.From(ctx).Info("Order changed concurrently, re-reading")
	o, outcome, err := r.pendingOrder(ctx, ev, target)
	if err != nil {
		return "", err
	}
	if o != nil {
		return OutcomeDuplicate, nil
	}
	return outcome, nil
}

func (r *Reconciler) publish(ctx context.Context, typ string, o *order.Order) {
	ev := OrderEvent{
		Type:        typ,
		OrderID:     o.ID,
		OrderNumber: o.Number,
		UserID:      o.UserID,
		Amount:      o.GrandTotal,
		Currency:    o.Currency,
		IntentID:    o.PaymentIntentID,
		Timestamp:   r.now().UTC(),
	}
	if o.PaidAmount.Valid {
		ev.Amount = o.PaidAmount.Decimal
	}
	if err := r.publisher.Publish(ctx, ev); err != nil {
		zctx.From(ctx).Error("Publish order event", zap.String("type", typ), zap.Error(err))
	}
}
