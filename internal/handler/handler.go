// Package handler implements the generated showroom API: checkout, order
// history and the payment provider webhook.
package handler

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/classics-showroom/gen/oas"
	"github.com/xenking/classics-showroom/internal/domain/checkout"
	"github.com/xenking/classics-showroom/internal/domain/order"
	"github.com/xenking/classics-showroom/internal/domain/payment"
)

// Checkout is the subset of checkout.Service used by the handlers.
type Checkout interface {
	CreateOrder(ctx context.Context, userID int64, accountEmail string) (*order.Order, error)
	BeginPayment(ctx context.Context, userID int64, number uuid.UUID) (*checkout.Payment, error)
	SetDeliveryDistance(ctx context.Context, userID int64, number uuid.UUID, miles int) (*order.Order, error)
	RecordShippingDetails(ctx context.Context, userID int64, number uuid.UUID, form checkout.ShippingForm) (*order.Order, error)
	GetOrder(ctx context.Context, userID int64, number uuid.UUID) (*order.Order, error)
	ListOrders(ctx context.Context, userID int64, page int) (*checkout.OrderPage, error)
}

// Reconciler applies verified provider events.
type Reconciler interface {
	Handle(ctx context.Context, ev payment.Event) (payment.Outcome, error)
}

var (
	_ Checkout    = (*checkout.Service)(nil)
	_ oas.Handler = (*Handler)(nil)
)

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// PublishableKey is handed to the browser with the client secret.
	PublishableKey string
	// CartURL is where an empty cart checkout redirects to.
	CartURL string
	// CheckoutURL and SuccessURL may contain {number}, replaced by the
	// order number.
	CheckoutURL string
	SuccessURL  string
	// MaxWebhookBytes caps the webhook body. Defaults to 64KiB.
	MaxWebhookBytes int64
}

// Handler implements the ogen-generated Handler interface, delegating to the
// checkout service and the payment reconciler.
type Handler struct {
	oas.UnimplementedHandler

	cfg        Config
	checkout   Checkout
	verifier   payment.Verifier
	reconciler Reconciler

	webhookEvents  metric.Int64Counter
	checkoutOrders metric.Int64Counter
}

// New constructs a Handler. meter may be a noop meter.
func New(
	cfg Config,
	svc Checkout,
	verifier payment.Verifier,
	reconciler Reconciler,
	meter metric.Meter,
) (*Handler, error) {
	if cfg.CartURL == "" {
		cfg.CartURL = "/cart/"
	}
	if cfg.CheckoutURL == "" {
		cfg.CheckoutURL = "/checkout/{number}/"
	}
	if cfg.SuccessURL == "" {
		cfg.SuccessURL = "/checkout/{number}/success/"
	}
	if cfg.MaxWebhookBytes <= 0 {
		cfg.MaxWebhookBytes = 64 << 10
	}

	webhookEvents, err := meter.Int64Counter("showroom.webhook.events",
		metric.WithDescription("Verified payment provider events by outcome"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "webhook counter")
	}
	checkoutOrders, err := meter.Int64Counter("showroom.checkout.orders",
		metric.WithDescription("Orders created at checkout"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "checkout counter")
	}

	return &Handler{
		cfg:            cfg,
		checkout:       svc,
		verifier:       verifier,
		reconciler:     reconciler,
		webhookEvents:  webhookEvents,
		checkoutOrders: checkoutOrders,
	}, nil
}

func orderURL(tmpl string, number uuid.UUID) string {
	return strings.ReplaceAll(tmpl, "{number}", number.String())
}
