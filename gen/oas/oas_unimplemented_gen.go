// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// BeginPayment implements beginPayment operation.
//
// Obtain a payment intent for the order's grand total.
//
// POST /api/checkout/orders/{number}/payment
func (UnimplementedHandler) BeginPayment(ctx context.Context, params BeginPaymentParams) (r BeginPaymentRes, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateOrder implements createOrder operation.
//
// Snapshot the caller's cart into a pending order.
//
// POST /api/checkout/orders
func (UnimplementedHandler) CreateOrder(ctx context.Context) (r CreateOrderRes, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// Return one of the caller's orders.
//
// GET /api/checkout/orders/{number}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r GetOrderRes, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// Page through the caller's orders, newest first.
//
// GET /api/orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r *OrderPage, _ error) {
	return r, ht.ErrNotImplemented
}

// RecordShipping implements recordShipping operation.
//
// Record contact and shipping details.
//
// POST /api/checkout/orders/{number}/shipping
func (UnimplementedHandler) RecordShipping(ctx context.Context, req *ShippingForm, params RecordShippingParams) (r RecordShippingRes, _ error) {
	return r, ht.ErrNotImplemented
}

// SetDeliveryDistance implements setDeliveryDistance operation.
//
// Store the delivery distance and recompute totals.
//
// POST /api/checkout/orders/{number}/distance
func (UnimplementedHandler) SetDeliveryDistance(ctx context.Context, req *DistanceForm, params SetDeliveryDistanceParams) (r SetDeliveryDistanceRes, _ error) {
	return r, ht.ErrNotImplemented
}

// StripeWebhook implements stripeWebhook operation.
//
// Receive a signed Stripe event.
//
// POST /webhooks/stripe
func (UnimplementedHandler) StripeWebhook(ctx context.Context, req StripeWebhookReq, params StripeWebhookParams) (r StripeWebhookRes, _ error) {
	return r, ht.ErrNotImplemented
}
