package checkout

import (
	"strings"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

const (
	msgProfileUnavailable = "We could not load your account. Please refresh the page and try again."
	msgIntentFailed       = "We could not start the payment. Please try again."
	msgSupportRequired    = "Your payment went through but we could not confirm your order. Please contact support and quote your order number."
	msgPaymentMissing     = "We could not find the payment for this checkout. Please contact support if you were charged."
)

// StatusMessage maps a gateway redirect status to what the shopper sees.
func StatusMessage(status entities.IntentStatus) string {
	switch status {
	case entities.IntentStatusRequiresPaymentMethod:
		return "Your card was declined. Please try a different payment method."
	case entities.IntentStatusCanceled:
		return "The payment was canceled. You can try again when you are ready."
	case entities.IntentStatusProcessing:
		return "Your payment is still processing. We will confirm your order once it completes."
	case entities.IntentStatusRequiresAction:
		return "Your bank needs you to authenticate this payment. Please try again."
	}
	return "We could not complete your payment. Please try again."
}

// FormatAmount renders minor units as a major-unit amount, e.g. 14500 USD as "145.00 USD".
func FormatAmount(cents int64, currency string) string {
	s := decimal.New(cents, -2).StringFixed(2)
	if currency == "" {
		return s
	}
	return s + " " + strings.ToUpper(currency)
}
