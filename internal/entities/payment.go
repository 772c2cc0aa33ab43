package entities

import "time"

// IntentStatus is the gateway-reported state of a payment intent.
type IntentStatus string

const (
	IntentStatusSucceeded             IntentStatus = "succeeded"
	IntentStatusProcessing            IntentStatus = "processing"
	IntentStatusRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentStatusRequiresAction        IntentStatus = "requires_action"
	IntentStatusRequiresConfirmation  IntentStatus = "requires_confirmation"
	IntentStatusCanceled              IntentStatus = "canceled"
)

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
	Amount       int64
	Currency     string
	OrderID      string
}

// IntentLink binds a gateway intent to exactly one order.
type IntentLink struct {
	IntentID    string
	OrderID     string
	Amount      int64
	Currency    string
	CreatedAt   time.Time
	FinalizedAt *time.Time
}

type OrderConfirmedEvent struct {
	EventID     string        `json:"event_id"`
	OrderID     string        `json:"order_id"`
	Method      PaymentMethod `json:"method"`
	Total       int64         `json:"total"`
	Currency    string        `json:"currency"`
	CustomerID  string        `json:"customer_id,omitempty"`
	ConfirmedAt time.Time     `json:"confirmed_at"`
}

type IntentRequest struct {
	OrderID        string
	Amount         int64
	Currency       string
	ReceiptEmail   string
	IdempotencyKey string
}

// PaymentEvent is a gateway notification forwarded to the payment events topic.
type PaymentEvent struct {
	EventID  string       `json:"event_id"`
	Type     string       `json:"type" validate:"required"`
	IntentID string       `json:"payment_intent_id" validate:"required"`
	Status   IntentStatus `json:"status"`
}

const PaymentEventSucceeded = "payment_intent.succeeded"
