package handler

import (
	"net/http"
	"net/url"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/classics-showroom/gen/oas"
	"github.com/xenking/classics-showroom/internal/domain/checkout"
	"github.com/xenking/classics-showroom/internal/domain/delivery"
	"github.com/xenking/classics-showroom/internal/domain/order"
)

const (
	flashCookie = "flash"
	msgFixForm  = "Please fix the errors in the form."
)

// flash renders a one-shot message cookie for the storefront to display
// after a 303 redirect.
func flash(msg string) string {
	c := &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return c.String()
}

// failure is a checkout error the caller can act on.
type failure struct {
	status  int
	message string
	fields  map[string]string
}

func (f failure) validation() *oas.ValidationError {
	return &oas.ValidationError{
		Code:    http.StatusUnprocessableEntity,
		Message: msgFixForm,
		Errors:  oas.ValidationErrorErrors(f.fields),
	}
}

func fieldFailure(field, msg string) failure {
	return failure{status: http.StatusUnprocessableEntity, fields: map[string]string{field: msg}}
}

// classify maps checkout errors to a response. ok is false for errors that
// are not the caller's fault; those surface as 500 through ErrorHandler.
func classify(err error) (f failure, ok bool) {
	var (
		verr *checkout.ValidationError
		cerr *checkout.CarUnavailableError
	)
	switch {
	case errors.As(err, &verr):
		return failure{status: http.StatusUnprocessableEntity, fields: verr.Fields}, true
	case errors.Is(err, checkout.ErrNotFound):
		return failure{status: http.StatusNotFound, message: checkout.ErrNotFound.Error()}, true
	case errors.As(err, &cerr):
		return failure{status: http.StatusConflict, message: cerr.Error()}, true
	case errors.Is(err, checkout.ErrOrderNotPending):
		return failure{status: http.StatusConflict, message: checkout.ErrOrderNotPending.Error()}, true
	case errors.Is(err, checkout.ErrPaymentInProgress):
		return failure{status: http.StatusConflict, message: checkout.ErrPaymentInProgress.Error()}, true
	case errors.Is(err, delivery.ErrDistanceRequired):
		return fieldFailure("delivery_distance", "Enter the delivery distance in miles."), true
	case errors.Is(err, delivery.ErrInvalidDistance):
		return fieldFailure("delivery_distance", "Ensure this value is greater than or equal to 0."), true
	default:
		return failure{}, false
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toOrder(o *order.Order) *oas.Order {
	out := &oas.Order{
		OrderNumber: o.Number,
		Status:      oas.OrderStatus(o.Status),
		LineItems:   make([]oas.LineItem, len(o.Items)),
		Subtotal:    money(o.Subtotal),
		DeliveryFee: money(o.DeliveryFee),
		GrandTotal:  money(o.GrandTotal),
		Shipping:    toShipping(o.Shipping),
		CreatedAt:   o.CreatedAt.UTC(),
	}
	for i, li := range o.Items {
		out.LineItems[i] = oas.LineItem{
			CarID:     li.CarID,
			CarName:   li.CarName,
			Quantity:  li.Quantity,
			UnitPrice: money(li.UnitPrice),
			LineTotal: money(li.Total()),
		}
	}
	if o.DeliveryDistance != nil {
		out.DeliveryDistance = oas.NewOptInt(*o.DeliveryDistance)
	}
	if o.Currency != "" {
		out.Currency = oas.NewOptString(o.Currency)
	}
	if o.PaymentIntentID != "" {
		out.PaymentIntentID = oas.NewOptString(o.PaymentIntentID)
	}
	if o.PaidAmount.Valid {
		out.PaidAmount = oas.NewOptString(money(o.PaidAmount.Decimal))
	}
	if o.PaidAt != nil {
		out.PaidAt = oas.NewOptDateTime(o.PaidAt.UTC())
	}
	return out
}

func toShipping(s order.Shipping) oas.Shipping {
	return oas.Shipping{
		FullName:       s.FullName,
		Email:          s.Email,
		PhoneNumber:    s.PhoneNumber,
		StreetAddress1: s.StreetAddress1,
		StreetAddress2: s.StreetAddress2,
		TownOrCity:     s.TownOrCity,
		County:         s.County,
		Postcode:       s.Postcode,
		Country:        s.Country,
	}
}

func toPage(p *checkout.OrderPage) *oas.OrderPage {
	orders := make([]oas.Order, len(p.Orders))
	for i := range p.Orders {
		orders[i] = *toOrder(&p.Orders[i])
	}
	return &oas.OrderPage{
		Orders:     orders,
		Page:       p.Page,
		TotalPages: p.TotalPages,
		Total:      p.Total,
	}
}
