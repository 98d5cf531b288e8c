// Package payment defines the payment provider port and reconciles provider
// webhook events against orders.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Metadata keys attached to every payment intent.
const (
	MetaOrderID     = "order_id"
	MetaOrderNumber = "order_number"
	MetaUserID      = "user_id"
)

// Errors returned by Verifier implementations. Both mean the request must be
// rejected without touching any order.
var (
	ErrSignature      = fmt.Errorf("webhook signature verification failed")
	ErrMalformedEvent = fmt.Errorf("malformed webhook event")
)

// IntentStatus mirrors the provider's payment intent lifecycle.
type IntentStatus string

const (
	IntentRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentRequiresConfirmation  IntentStatus = "requires_confirmation"
	IntentRequiresAction        IntentStatus = "requires_action"
	IntentProcessing            IntentStatus = "processing"
	IntentSucceeded             IntentStatus = "succeeded"
	IntentCanceled              IntentStatus = "canceled"
)

// AwaitingPayment reports whether the customer can still confirm an intent in
// this state.
func (s IntentStatus) AwaitingPayment() bool {
	switch s {
	case IntentRequiresPaymentMethod, IntentRequiresConfirmation, IntentRequiresAction:
		return true
	default:
		return false
	}
}

// Intent is the provider-side authorization to capture an amount. Amounts
// are in minor currency units.
type Intent struct {
	ID             string
	ClientSecret   string
	Amount         int64
	AmountReceived int64
	Currency       string
	Status         IntentStatus
	Metadata       map[string]string
}

// IntentRequest is the input for creating an intent.
type IntentRequest struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// Kind is the closed set of webhook events the reconciler understands.
type Kind int

const (
	KindUnknown Kind = iota
	KindIntentSucceeded
	KindIntentFailed
)

func (k Kind) String() string {
	switch k {
	case KindIntentSucceeded:
		return "intent_succeeded"
	case KindIntentFailed:
		return "intent_failed"
	default:
		return "unknown"
	}
}

// Event is a verified webhook callback. Type is the provider's raw event type
// and is kept for logging; dispatch uses Kind.
type Event struct {
	ID     string
	Type   string
	Kind   Kind
	Intent Intent
}

// Intents creates, retrieves and cancels payment intents.
type Intents interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
	CancelIntent(ctx context.Context, id string) error
}

// Verifier authenticates and decodes a raw webhook payload.
type Verifier interface {
	VerifyEvent(payload []byte, signature string) (Event, error)
}

// Provider is a payment provider client shared by checkout and the webhook
// endpoint.
type Provider interface {
	Intents
	Verifier
}

// ToMinor converts a major-unit amount to integer minor units. Amounts with
// more than two decimal places are rejected rather than rounded.
func ToMinor(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("amount %s is negative", amount)
	}
	minor := amount.Shift(2)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has sub-minor precision", amount)
	}
	return minor.IntPart(), nil
}

// FromMinor converts integer minor units to a major-unit decimal.
func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// NormalizeCurrency returns the ISO code in upper case.
func NormalizeCurrency(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}
