package checkout

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"

	"github.com/xenking/classics-showroom/internal/domain/order"
)

// ShippingForm is the checkout form submitted by the browser.
type ShippingForm struct {
	FullName       string `form:"full_name" validate:"required,max=254"`
	Email          string `form:"email" validate:"required,email,max=254"`
	PhoneNumber    string `form:"phone_number" validate:"required,max=20"`
	StreetAddress1 string `form:"street_address1" validate:"required,max=80"`
	StreetAddress2 string `form:"street_address2" validate:"max=80"`
	TownOrCity     string `form:"town_or_city" validate:"required,max=40"`
	County         string `form:"county" validate:"max=80"`
	Postcode       string `form:"postcode" validate:"required,max=20"`
	Country        string `form:"country" validate:"required,max=40"`
	// ClientSecret is the payment confirmation token the browser received
	// from BeginPayment. Optional; when present it must belong to the
	// order's payment intent.
	ClientSecret string `form:"client_secret" validate:"max=255"`
}

// Shipping converts the form to the order's shipping fields.
func (f ShippingForm) Shipping() order.Shipping {
	return order.Shipping{
		FullName:       f.FullName,
		Email:          f.Email,
		PhoneNumber:    f.PhoneNumber,
		StreetAddress1: f.StreetAddress1,
		StreetAddress2: f.StreetAddress2,
		TownOrCity:     f.TownOrCity,
		County:         f.County,
		Postcode:       f.Postcode,
		Country:        f.Country,
	}
}

func (f *ShippingForm) trim() {
	for _, p := range []*string{
		&f.FullName, &f.Email, &f.PhoneNumber, &f.StreetAddress1, &f.StreetAddress2,
		&f.TownOrCity, &f.County, &f.Postcode, &f.Country, &f.ClientSecret,
	} {
		*p = strings.TrimSpace(*p)
	}
}

// newValidator reports fields by their form name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func validateForm(v *validator.Validate, f ShippingForm) error {
	err := v.Struct(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate shipping form: %w", err)
	}
	ve := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fe.Field()] = fieldMessage(fe)
	}
	return ve
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return "Enter a valid value."
	}
}
