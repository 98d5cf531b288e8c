// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"net/http"
	"net/url"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/ogen-go/ogen/conv"
	"github.com/ogen-go/ogen/middleware"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/uri"
	"github.com/ogen-go/ogen/validate"
)

// BeginPaymentParams is parameters of beginPayment operation.
type BeginPaymentParams struct {
	Number uuid.UUID
}

func unpackBeginPaymentParams(packed middleware.Parameters) (params BeginPaymentParams) {
	{
		key := middleware.ParameterKey{
			Name: "number",
			In:   "path",
		}
		params.Number = packed[key].(uuid.UUID)
	}
	return params
}

func decodeBeginPaymentParams(args [1]string, argsEscaped bool, r *http.Request) (params BeginPaymentParams, _ error) {
	// Decode path: number.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "number",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.Number = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "number",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// GetOrderParams is parameters of getOrder operation.
type GetOrderParams struct {
	Number uuid.UUID
}

func unpackGetOrderParams(packed middleware.Parameters) (params GetOrderParams) {
	{
		key := middleware.ParameterKey{
			Name: "number",
			In:   "path",
		}
		params.Number = packed[key].(uuid.UUID)
	}
	return params
}

func decodeGetOrderParams(args [1]string, argsEscaped bool, r *http.Request) (params GetOrderParams, _ error) {
	// Decode path: number.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "number",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.Number = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "number",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// ListOrdersParams is parameters of listOrders operation.
type ListOrdersParams struct {
	Page OptInt `json:",omitempty,omitzero"`
}

func unpackListOrdersParams(packed middleware.Parameters) (params ListOrdersParams) {
	{
		key := middleware.ParameterKey{
			Name: "page",
			In:   "query",
		}
		if v, ok := packed[key]; ok {
			params.Page = v.(OptInt)
		}
	}
	return params
}

func decodeListOrdersParams(args [0]string, argsEscaped bool, r *http.Request) (params ListOrdersParams, _ error) {
	q := uri.NewQueryDecoder(r.URL.Query())
	// Decode query: page.
	if err := func() error {
		cfg := uri.QueryParameterDecodingConfig{
			Name:    "page",
			Style:   uri.QueryStyleForm,
			Explode: true,
		}

		if err := q.HasParam(cfg); err == nil {
			if err := q.DecodeParam(cfg, func(d uri.Decoder) error {
				var paramsDotPageVal int
				if err := func() error {
					val, err := d.DecodeValue()
					if err != nil {
						return err
					}

					c, err := conv.ToInt(val)
					if err != nil {
						return err
					}

					paramsDotPageVal = c
					return nil
				}(); err != nil {
					return err
				}
				params.Page.SetTo(paramsDotPageVal)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "page",
			In:   "query",
			Err:  err,
		}
	}
	return params, nil
}

// RecordShippingParams is parameters of recordShipping operation.
type RecordShippingParams struct {
	Number uuid.UUID
}

func unpackRecordShippingParams(packed middleware.Parameters) (params RecordShippingParams) {
	{
		key := middleware.ParameterKey{
			Name: "number",
			In:   "path",
		}
		params.Number = packed[key].(uuid.UUID)
	}
	return params
}

func decodeRecordShippingParams(args [1]string, argsEscaped bool, r *http.Request) (params RecordShippingParams, _ error) {
	// Decode path: number.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "number",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.Number = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "number",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// SetDeliveryDistanceParams is parameters of setDeliveryDistance operation.
type SetDeliveryDistanceParams struct {
	Number uuid.UUID
}

func unpackSetDeliveryDistanceParams(packed middleware.Parameters) (params SetDeliveryDistanceParams) {
	{
		key := middleware.ParameterKey{
			Name: "number",
			In:   "path",
		}
		params.Number = packed[key].(uuid.UUID)
	}
	return params
}

func decodeSetDeliveryDistanceParams(args [1]string, argsEscaped bool, r *http.Request) (params SetDeliveryDistanceParams, _ error) {
	// Decode path: number.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "number",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToUUID(val)
				if err != nil {
					return err
				}

				params.Number = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "number",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// StripeWebhookParams is parameters of stripeWebhook operation.
type StripeWebhookParams struct {
	StripeSignature OptString `json:",omitempty,omitzero"`
}

func unpackStripeWebhookParams(packed middleware.Parameters) (params StripeWebhookParams) {
	{
		key := middleware.ParameterKey{
			Name: "Stripe-Signature",
			In:   "header",
		}
		if v, ok := packed[key]; ok {
			params.StripeSignature = v.(OptString)
		}
	}
	return params
}

func decodeStripeWebhookParams(args [0]string, argsEscaped bool, r *http.Request) (params StripeWebhookParams, _ error) {
	h := uri.NewHeaderDecoder(r.Header)
	// Decode header: Stripe-Signature.
	if err := func() error {
		cfg := uri.HeaderParameterDecodingConfig{
			Name:    "Stripe-Signature",
			Explode: false,
		}
		if err := h.HasParam(cfg); err == nil {
			if err := h.DecodeParam(cfg, func(d uri.Decoder) error {
				var paramsDotStripeSignatureVal string
				if err := func() error {
					val, err := d.DecodeValue()
					if err != nil {
						return err
					}

					c, err := conv.ToString(val)
					if err != nil {
						return err
					}

					paramsDotStripeSignatureVal = c
					return nil
				}(); err != nil {
					return err
				}
				params.StripeSignature.SetTo(paramsDotStripeSignatureVal)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "Stripe-Signature",
			In:   "header",
			Err:  err,
		}
	}
	return params, nil
}
