// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// BeginPayment implements beginPayment operation.
	//
	// Obtain a payment intent for the order's grand total.
	//
	// POST /api/checkout/orders/{number}/payment
	BeginPayment(ctx context.Context, params BeginPaymentParams) (BeginPaymentRes, error)
	// CreateOrder implements createOrder operation.
	//
	// Snapshot the caller's cart into a pending order.
	//
	// POST /api/checkout/orders
	CreateOrder(ctx context.Context) (CreateOrderRes, error)
	// GetOrder implements getOrder operation.
	//
	// Return one of the caller's orders.
	//
	// GET /api/checkout/orders/{number}
	GetOrder(ctx context.Context, params GetOrderParams) (GetOrderRes, error)
	// ListOrders implements listOrders operation.
	//
	// Page through the caller's orders, newest first.
	//
	// GET /api/orders
	ListOrders(ctx context.Context, params ListOrdersParams) (*OrderPage, error)
	// RecordShipping implements recordShipping operation.
	//
	// Record contact and shipping details.
	//
	// POST /api/checkout/orders/{number}/shipping
	RecordShipping(ctx context.Context, req *ShippingForm, params RecordShippingParams) (RecordShippingRes, error)
	// SetDeliveryDistance implements setDeliveryDistance operation.
	//
	// Store the delivery distance and recompute totals.
	//
	// POST /api/checkout/orders/{number}/distance
	SetDeliveryDistance(ctx context.Context, req *DistanceForm, params SetDeliveryDistanceParams) (SetDeliveryDistanceRes, error)
	// StripeWebhook implements stripeWebhook operation.
	//
	// Receive a signed Stripe event.
	//
	// POST /webhooks/stripe
	StripeWebhook(ctx context.Context, req StripeWebhookReq, params StripeWebhookParams) (StripeWebhookRes, error)
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
