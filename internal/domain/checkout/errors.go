package checkout

import (
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for checkout operations.
var (
	ErrEmptyCart = fmt.Errorf("your cart is empty")
	// ErrNotFound covers both missing orders and orders owned by someone
	// else.
	ErrNotFound        = fmt.Errorf("order not found")
	ErrOrderNotPending = fmt.Errorf("order is no longer awaiting payment")
	ErrCarUnavailable  = fmt.Errorf("car is no longer available")
	// ErrPaymentInProgress means the provider is already settling the
	// order's current intent.
	ErrPaymentInProgress = fmt.Errorf("payment is already being processed")
)

// CarUnavailableError identifies the cart entry that can no longer be bought.
type CarUnavailableError struct {
	CarID int64
}

func (e *CarUnavailableError) Error() string {
	return fmt.Sprintf("car %d is no longer available", e.CarID)
}

// Unwrap allows errors.Is(err, ErrCarUnavailable).
func (e *CarUnavailableError) Unwrap() error { return ErrCarUnavailable }

// ValidationError lists per-field messages keyed by form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// ProviderError wraps a failed call to the payment provider. The order is
// left pending and the user may retry.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
