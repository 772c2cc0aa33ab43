package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrCustomerNotFound = errors.New("business customer not found")

	ErrValidation         = errors.New("validation failed")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrTermsNotEligible   = errors.New("account is not eligible for net terms")
	ErrTermsPendingReview = errors.New("net terms application is pending review")
	ErrProfileUnavailable = errors.New("profile unavailable")

	ErrOrderNotPending     = errors.New("order is not pending")
	ErrIntentUnknown       = errors.New("payment intent is not linked to an order")
	ErrIntentOrderMismatch = errors.New("payment intent belongs to another order")
	ErrAmountMismatch      = errors.New("payment amount does not match order total")
	ErrCurrencyMismatch    = errors.New("payment currency does not match order currency")
	ErrDuplicatePayment    = errors.New("order already confirmed by another payment")
	ErrGateway             = errors.New("payment gateway error")
	ErrInvalidTransition   = errors.New("invalid checkout transition")
)

// ValidationError is a local, recoverable rejection of checkout input.
// Fields maps a field name to the failed rule.
type ValidationError struct {
	Reason string
	Fields map[string]string
	Cause  error
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason, Fields: map[string]string{}}
}

// Reject wraps a sentinel so that both errors.Is(err, cause) and
// errors.Is(err, ErrValidation) hold.
func Reject(cause error) *ValidationError {
	return &ValidationError{Reason: cause.Error(), Fields: map[string]string{}, Cause: cause}
}

func (e *ValidationError) With(field, rule string) *ValidationError {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = rule
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return fmt.Sprintf("%s (%s)", e.Reason, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}

// PaymentNotSettledError reports a gateway status other than succeeded.
type PaymentNotSettledError struct {
	IntentID string
	Status   string
}

func (e *PaymentNotSettledError) Error() string {
	return fmt.Sprintf("payment intent %s is %s", e.IntentID, e.Status)
}

var ErrPaymentNotSettled = errors.New("payment not settled")

func (e *PaymentNotSettledError) Is(target error) bool {
	return target == ErrPaymentNotSettled
}
