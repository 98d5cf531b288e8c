// Package stripe adapts the Stripe API to the payment provider port.
package stripe

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	stripego "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"github.com/stripe/stripe-go/v80/webhook"

	"github.com/xenking/classics-showroom/internal/domain/payment"
)

var _ payment.Provider = (*Client)(nil)

// Config holds Stripe credentials and transport settings.
type Config struct {
	SecretKey     string
	WebhookSecret string
	// APIURL overrides the API base URL, e.g. for stripe-mock.
	APIURL string
	// Tolerance bounds the age of a signed webhook timestamp.
	Tolerance  time.Duration
	HTTPClient *http.Client
	MaxRetries int64
}

// Client is a Stripe payment provider. It is constructed once at startup and
// shared; it holds no package-level state.
type Client struct {
	api           *client.API
	webhookSecret string
	tolerance     time.Duration
}

// New creates a Client.
func New(cfg Config) *Client {
	var backends *stripego.Backends
	if cfg.APIURL != "" || cfg.HTTPClient != nil || cfg.MaxRetries > 0 {
		bc := &stripego.BackendConfig{
			HTTPClient:        cfg.HTTPClient,
			MaxNetworkRetries: stripego.Int64(cfg.MaxRetries),
			LeveledLogger:     &stripego.LeveledLogger{Level: stripego.LevelError},
		}
		if cfg.APIURL != "" {
			bc.URL = stripego.String(cfg.APIURL)
		}
		backend := stripego.GetBackendWithConfig(stripego.APIBackend, bc)
		backends = &stripego.Backends{API: backend, Connect: backend, Uploads: backend}
	}

	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &Client{
		api:           client.New(cfg.SecretKey, backends),
		webhookSecret: cfg.WebhookSecret,
		tolerance:     tolerance,
	}
}

// CreateIntent creates a card payment intent.
func (c *Client) CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(req.Amount),
		Currency: stripego.String(req.Currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "create payment intent")
	}
	return intentFromStripe(pi), nil
}

// GetIntent retrieves a payment intent by id.
func (c *Client) GetIntent(ctx context.Context, id string) (*payment.Intent, error) {
	params := &stripego.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, errors.Wrapf(err, "get payment intent %s", id)
	}
	return intentFromStripe(pi), nil
}

// CancelIntent cancels an intent the customer must no longer confirm.
func (c *Client) CancelIntent(ctx context.Context, id string) error {
	params := &stripego.PaymentIntentCancelParams{
		CancellationReason: stripego.String(string(stripego.PaymentIntentCancellationReasonAbandoned)),
	}
	params.Context = ctx

	if _, err := c.api.PaymentIntents.Cancel(id, params); err != nil {
		return errors.Wrapf(err, "cancel payment intent %s", id)
	}
	return nil
}

// VerifyEvent checks the Stripe-Signature header against the webhook secret
// and decodes the event. Signature problems wrap payment.ErrSignature; any
// other decoding problem wraps payment.ErrMalformedEvent.
func (c *Client) VerifyEvent(payload []byte, signature string) (payment.Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		Tolerance:                c.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return payment.Event{}, errors.Wrap(payment.ErrSignature, err.Error())
		}
		return payment.Event{}, errors.Wrap(payment.ErrMalformedEvent, err.Error())
	}

	out := payment.Event{ID: ev.ID, Type: string(ev.Type), Kind: kindOf(ev.Type)}
	if out.Kind == payment.KindUnknown {
		return out, nil
	}
	if ev.Data == nil {
		return payment.Event{}, errors.Wrap(payment.ErrMalformedEvent, "event has no data")
	}

	var pi stripego.PaymentIntent
	if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
		return payment.Event{}, errors.Wrap(payment.ErrMalformedEvent, err.Error())
	}
	out.Intent = *intentFromStripe(&pi)
	return out, nil
}

func kindOf(t stripego.EventType) payment.Kind {
	switch t {
	case stripego.EventTypePaymentIntentSucceeded:
		return payment.KindIntentSucceeded
	case stripego.EventTypePaymentIntentPaymentFailed:
		return payment.KindIntentFailed
	default:
		return payment.KindUnknown
	}
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrTooOld)
}

func intentFromStripe(pi *stripego.PaymentIntent) *payment.Intent {
	return &payment.Intent{
		ID:             pi.ID,
		ClientSecret:   pi.ClientSecret,
		Amount:         pi.Amount,
		AmountReceived: pi.AmountReceived,
		Currency:       string(pi.Currency),
		Status:         payment.IntentStatus(pi.Status),
		Metadata:       pi.Metadata,
	}
}
