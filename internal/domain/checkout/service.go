// Package checkout turns a user's cart into an order, obtains a payment
// intent for it and records shipping details.
package checkout

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/internal/domain/cart"
	"github.com/xenking/classics-showroom/internal/domain/catalog"
	"github.com/xenking/classics-showroom/internal/domain/delivery"
	"github.com/xenking/classics-showroom/internal/domain/order"
	"github.com/xenking/classics-showroom/internal/domain/payment"
)

// Config holds non-dependency settings for the Service.
type Config struct {
	// Currency is the lower-case ISO code intents are created in.
	Currency string
	// PageSize is the number of orders per history page.
	PageSize int
}

// Payment is the result of BeginPayment.
type Payment struct {
	Order        *order.Order
	IntentID     string
	ClientSecret string
	// Amount is the grand total in minor units.
	Amount   int64
	Currency string
}

// OrderPage is one page of a user's order history.
type OrderPage struct {
	Orders     []order.Order
	Page       int
	TotalPages int
	Total      int
}

// Service encapsulates checkout business logic.
type Service struct {
	orders   order.Repository
	cars     catalog.Repository
	carts    cart.Store
	intents  payment.Intents
	policy   delivery.Policy
	validate *validator.Validate
	currency string
	pageSize int
}

// NewService creates a checkout Service with the required domain
// dependencies.
func NewService(
	cfg Config,
	orders order.Repository,
	cars catalog.Repository,
	carts cart.Store,
	intents payment.Intents,
	policy delivery.Policy,
) *Service {
	currency := strings.ToLower(cfg.Currency)
	if currency == "" {
		currency = "gbp"
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{
		orders:   orders,
		cars:     cars,
		carts:    carts,
		intents:  intents,
		policy:   policy,
		validate: newValidator(),
		currency: currency,
		pageSize: pageSize,
	}
}

// CreateOrder snapshots the user's cart into a new pending order. Unit prices
// come from the catalog, never from the cart. The cart is left intact until
// payment succeeds. accountEmail is the address on the user's account and may
// be empty.
func (s *Service) CreateOrder(ctx context.Context, userID int64, accountEmail string) (*order.Order, error) {
	c, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	ids := make([]int64, len(c.Items))
	for i, it := range c.Items {
		ids[i] = it.CarID
	}

	fetched, err := s.cars.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get cars: %w", err)
	}
	carMap := make(map[int64]catalog.Car, len(fetched))
	for _, car := range fetched {
		carMap[car.ID] = car
	}

	items := make([]order.LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		car, ok := carMap[it.CarID]
		if !ok || car.Sold {
			return nil, &CarUnavailableError{CarID: it.CarID}
		}
		items = append(items, order.LineItem{
			CarID:     car.ID,
			CarName:   car.Name(),
			Quantity:  it.Quantity,
			UnitPrice: car.Price,
		})
	}

	o := order.New(userID, items)
	o.AccountEmail = strings.TrimSpace(accountEmail)
	if err := s.recalculate(o); err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	zctx.From(ctx).Info("Order created",
		zap.Int64("order_id", o.ID),
		zap.Stringer("order_number", o.Number),
		zap.String("grand_total", o.GrandTotal.StringFixed(2)),
	)
	return o, nil
}

// BeginPayment recomputes the order totals and returns a payment intent for
// the grand total. An existing intent is reused while the provider still
// reports it awaiting payment for the same amount; otherwise it is cancelled
// and a new one is created.
func (s *Service) BeginPayment(ctx context.Context, userID int64, number uuid.UUID) (*Payment, error) {
	o, err := s.ownedOrder(ctx, userID, number)
	if err != nil {
		return nil, err
	}
	if o.Status != order.StatusPending {
		return nil, ErrOrderNotPending
	}
	if err := o.Recalculate(s.policy); err != nil {
		return nil, fmt.Errorf("recalculate order %d: %w", o.ID, err)
	}

	amount, err := payment.ToMinor(o.GrandTotal)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", o.ID, err)
	}

	intent, err := s.reusableIntent(ctx, o, amount)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		intent, err = s.intents.CreateIntent(ctx, payment.IntentRequest{
			Amount:   amount,
			Currency: s.currency,
			Metadata: map[string]string{
				payment.MetaOrderID:     strconv.FormatInt(o.ID, 10),
				payment.MetaOrderNumber: o.Number.String(),
				payment.MetaUserID:      strconv.FormatInt(userID, 10),
			},
		})
		if err != nil {
			return nil, &ProviderError{Op: "create intent", Err: err}
		}
	}

	if err := s.orders.UpdatePayment(ctx, o.ID, o.Totals(), intent.ID); err != nil {
		if errors.Is(err, order.ErrTransitionConflict) {
			return nil, ErrOrderNotPending
		}
		return nil, fmt.Errorf("store payment intent: %w", err)
	}
	o.PaymentIntentID = intent.ID

	return &Payment{
		Order:        o,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Currency:     s.currency,
	}, nil
}

// reusableIntent returns the stored intent when it can still be confirmed for
// amount. An intent that no longer fits is cancelled so the customer cannot
// confirm it for a stale total. An intent the provider is already settling is
// never replaced.
func (s *Service) reusableIntent(ctx context.Context, o *order.Order, amount int64) (*payment.Intent, error) {
	if o.PaymentIntentID == "" {
		return nil, nil
	}
	intent, err := s.intents.GetIntent(ctx, o.PaymentIntentID)
	if err != nil {
		return nil, &ProviderError{Op: "get intent", Err: err}
	}

	switch {
	case intent.Status == payment.IntentSucceeded || intent.Status == payment.IntentProcessing:
		zctx.From(ctx).Warn("Payment already in progress for order",
			zap.String("payment_intent", intent.ID),
			zap.String("intent_status", string(intent.Status)),
		)
		return nil, ErrPaymentInProgress
	case !intent.Status.AwaitingPayment():
		return nil, nil
	case intent.Amount == amount && strings.EqualFold(intent.Currency, s.currency):
		return intent, nil
	}

	zctx.From(ctx).Info("Cancelling stale payment intent",
		zap.String("payment_intent", intent.ID),
		zap.Int64("intent_amount", intent.Amount),
		zap.Int64("amount", amount),
	)
	if err := s.intents.CancelIntent(ctx, intent.ID); err != nil {
		return nil, &ProviderError{Op: "cancel intent", Err: err}
	}
	return nil, nil
}

// SetDeliveryDistance stores the delivery distance of a pending order and
// recomputes its totals.
func (s *Service) SetDeliveryDistance(ctx context.Context, userID int64, number uuid.UUID, miles int) (*order.Order, error) {
	if miles < 0 {
		return nil, &ValidationError{Fields: map[string]string{
			"delivery_distance": "Ensure this value is greater than or equal to 0.",
		}}
	}
	o, err := s.ownedOrder(ctx, userID, number)
	if err != nil {
		return nil, err
	}
	if o.Status != order.StatusPending {
		return nil, ErrOrderNotPending
	}

	o.DeliveryDistance = &miles
	if err := s.recalculate(o); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateDelivery(ctx, o.ID, miles, o.Totals()); err != nil {
		if errors.Is(err, order.ErrTransitionConflict) {
			return nil, ErrOrderNotPending
		}
		return nil, fmt.Errorf("store delivery distance: %w", err)
	}
	return o, nil
}

// RecordShippingDetails validates and stores the contact and shipping fields.
// It never changes the order status.
func (s *Service) RecordShippingDetails(ctx context.Context, userID int64, number uuid.UUID, form ShippingForm) (*order.Order, error) {
	form.trim()
	if err := validateForm(s.validate, form); err != nil {
		return nil, err
	}

	o, err := s.ownedOrder(ctx, userID, number)
	if err != nil {
		return nil, err
	}
	if form.ClientSecret != "" && !secretBelongsTo(form.ClientSecret, o.PaymentIntentID) {
		return nil, &ValidationError{Fields: map[string]string{
			"client_secret": "Payment confirmation does not match this order.",
		}}
	}

	sh := form.Shipping()
	if err := s.orders.UpdateShipping(ctx, o.ID, sh); err != nil {
		return nil, fmt.Errorf("store shipping details: %w", err)
	}
	o.Shipping = sh
	return o, nil
}

// secretBelongsTo reports whether a client secret was issued for intentID.
// Provider client secrets have the form "<intent id>_secret_<random>".
func secretBelongsTo(secret, intentID string) bool {
	if intentID == "" {
		return false
	}
	prefix, _, ok := strings.Cut(secret, "_secret_")
	return ok && prefix == intentID
}

// GetOrder returns one of the user's orders.
func (s *Service) GetOrder(ctx context.Context, userID int64, number uuid.UUID) (*order.Order, error) {
	return s.ownedOrder(ctx, userID, number)
}

// ListOrders returns a page of the user's orders, newest first. Pages start
// at 1; out-of-range pages are clamped.
func (s *Service) ListOrders(ctx context.Context, userID int64, page int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	orders, total, err := s.orders.ListByUser(ctx, userID, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	totalPages := (total + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
		orders, total, err = s.orders.ListByUser(ctx, userID, s.pageSize, (page-1)*s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
	}

	return &OrderPage{Orders: orders, Page: page, TotalPages: totalPages, Total: total}, nil
}

func (s *Service) ownedOrder(ctx context.Context, userID int64, number uuid.UUID) (*order.Order, error) {
	o, err := s.orders.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	if !o.OwnedBy(userID) {
		return nil, ErrNotFound
	}
	return o, nil
}

// recalculate derives totals, tolerating a policy that is still missing
// input such as the delivery distance. BeginPayment is strict about it.
func (s *Service) recalculate(o *order.Order) error {
	err := o.Recalculate(s.policy)
	if err != nil && !errors.Is(err, delivery.ErrDistanceRequired) {
		return fmt.Errorf("recalculate order: %w", err)
	}
	return nil
}
