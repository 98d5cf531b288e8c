package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/gen/oas"
	"github.com/xenking/classics-showroom/internal/domain/checkout"
)

const (
	msgEmptyCart       = "Your cart is empty."
	msgProviderFailure = "Sorry, we could not start your payment. Please try again in a moment."
)

func (h *Handler) countOrder(ctx context.Context, result string) {
	h.checkoutOrders.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// CreateOrder snapshots the caller's cart. An empty cart sends the browser
// back to the cart page with a flash message.
func (h *Handler) CreateOrder(ctx context.Context) (oas.CreateOrderRes, error) {
	id, _ := IdentityFromContext(ctx)

	o, err := h.checkout.CreateOrder(ctx, id.UserID, id.Email)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			h.countOrder(ctx, "empty_cart")
			return &oas.CreateOrderSeeOther{Location: h.cfg.CartURL, SetCookie: flash(msgEmptyCart)}, nil
		}
		if f, ok := classify(err); ok && f.status == http.StatusConflict {
			h.countOrder(ctx, "rejected")
			return &oas.Error{Code: http.StatusConflict, Message: f.message}, nil
		}
		return nil, errors.Wrap(err, "create order")
	}

	h.countOrder(ctx, "created")
	return toOrder(o), nil
}

// GetOrder returns one of the caller's orders.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (oas.GetOrderRes, error) {
	id, _ := IdentityFromContext(ctx)

	o, err := h.checkout.GetOrder(ctx, id.UserID, params.Number)
	if err != nil {
		if f, ok := classify(err); ok && f.status == http.StatusNotFound {
			return &oas.Error{Code: http.StatusNotFound, Message: f.message}, nil
		}
		return nil, errors.Wrap(err, "get order")
	}
	return toOrder(o), nil
}

// SetDeliveryDistance stores the delivery distance from the form and returns
// the recomputed totals.
func (h *Handler) SetDeliveryDistance(ctx context.Context, req *oas.DistanceForm, params oas.SetDeliveryDistanceParams) (oas.SetDeliveryDistanceRes, error) {
	id, _ := IdentityFromContext(ctx)

	raw := strings.TrimSpace(req.DeliveryDistance.Or(""))
	if raw == "" {
		return fieldFailure("delivery_distance", "This field is required.").validation(), nil
	}
	miles, err := strconv.Atoi(raw)
	if err != nil {
		return fieldFailure("delivery_distance", "Enter a whole number.").validation(), nil
	}

	o, err := h.checkout.SetDeliveryDistance(ctx, id.UserID, params.Number, miles)
	if err != nil {
		f, ok := classify(err)
		switch {
		case !ok:
		case f.status == http.StatusNotFound:
			return &oas.SetDeliveryDistanceNotFound{Code: http.StatusNotFound, Message: f.message}, nil
		case f.status == http.StatusConflict:
			return &oas.SetDeliveryDistanceConflict{Code: http.StatusConflict, Message: f.message}, nil
		case f.status == http.StatusUnprocessableEntity:
			return f.validation(), nil
		}
		return nil, errors.Wrap(err, "set delivery distance")
	}

	return &oas.DeliveryQuote{
		OrderNumber:      o.Number,
		DeliveryDistance: miles,
		Subtotal:         money(o.Subtotal),
		DeliveryFee:      money(o.DeliveryFee),
		GrandTotal:       money(o.GrandTotal),
	}, nil
}

// BeginPayment returns the client secret for the order's payment intent.
// Provider failures send the browser back to the checkout page with a flash
// message.
func (h *Handler) BeginPayment(ctx context.Context, params oas.BeginPaymentParams) (oas.BeginPaymentRes, error) {
	id, _ := IdentityFromContext(ctx)

	p, err := h.checkout.BeginPayment(ctx, id.UserID, params.Number)
	if err != nil {
		var perr *checkout.ProviderError
		if errors.As(err, &perr) {
			zctx.From(ctx).Error("Payment provider unavailable",
				zap.Stringer("order_number", params.Number),
				zap.Error(err),
			)
			return &oas.BeginPaymentSeeOther{
				Location:  orderURL(h.cfg.CheckoutURL, params.Number),
				SetCookie: flash(msgProviderFailure),
			}, nil
		}

		f, ok := classify(err)
		switch {
		case !ok:
		case f.status == http.StatusNotFound:
			return &oas.BeginPaymentNotFound{Code: http.StatusNotFound, Message: f.message}, nil
		case f.status == http.StatusConflict:
			return &oas.BeginPaymentConflict{Code: http.StatusConflict, Message: f.message}, nil
		case f.status == http.StatusUnprocessableEntity:
			return f.validation(), nil
		}
		return nil, errors.Wrap(err, "begin payment")
	}

	return &oas.PaymentSession{
		OrderNumber:    p.Order.Number,
		ClientSecret:   p.ClientSecret,
		PublishableKey: h.cfg.PublishableKey,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Subtotal:       money(p.Order.Subtotal),
		DeliveryFee:    money(p.Order.DeliveryFee),
		GrandTotal:     money(p.Order.GrandTotal),
	}, nil
}

// RecordShipping stores the contact and shipping form and redirects to the
// success page.
func (h *Handler) RecordShipping(ctx context.Context, req *oas.ShippingForm, params oas.RecordShippingParams) (oas.RecordShippingRes, error) {
	id, _ := IdentityFromContext(ctx)

	form := checkout.ShippingForm{
		FullName:       req.FullName.Or(""),
		Email:          req.Email.Or(""),
		PhoneNumber:    req.PhoneNumber.Or(""),
		StreetAddress1: req.StreetAddress1.Or(""),
		StreetAddress2: req.StreetAddress2.Or(""),
		TownOrCity:     req.TownOrCity.Or(""),
		County:         req.County.Or(""),
		Postcode:       req.Postcode.Or(""),
		Country:        req.Country.Or(""),
		ClientSecret:   req.ClientSecret.Or(""),
	}

	o, err := h.checkout.RecordShippingDetails(ctx, id.UserID, params.Number, form)
	if err != nil {
		f, ok := classify(err)
		switch {
		case !ok:
		case f.status == http.StatusNotFound:
			return &oas.Error{Code: http.StatusNotFound, Message: f.message}, nil
		case f.status == http.StatusUnprocessableEntity:
			return f.validation(), nil
		}
		return nil, errors.Wrap(err, "record shipping details")
	}
	return &oas.RecordShippingSeeOther{Location: orderURL(h.cfg.SuccessURL, o.Number)}, nil
}

// ListOrders returns a page of the caller's orders. Pages start at 1.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) (*oas.OrderPage, error) {
	id, _ := IdentityFromContext(ctx)

	p, err := h.checkout.ListOrders(ctx, id.UserID, params.Page.Or(1))
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return toPage(p), nil
}
