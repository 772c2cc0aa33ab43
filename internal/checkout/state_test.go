package checkout

import (
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	payment := State{Step: StepPayment, OrderID: "o-1", Amount: 14500, Email: "a@b.com", Method: entities.PaymentMethodCard}

	testCases := []struct {
		name    string
		from    State
		event   Event
		want    State
		wantErr bool
	}{
		{
			name:  "load with pending payment ignores the cart",
			from:  State{},
			event: Loaded{Pending: &entities.PendingPayment{OrderID: "o-1", Amount: 14500, Email: "a@b.com"}, CartEmpty: true},
			want:  payment,
		},
		{
			name:  "load with empty cart",
			from:  State{},
			event: Loaded{CartEmpty: true},
			want:  State{Step: StepEmpty},
		},
		{
			name:  "load with cart",
			from:  State{},
			event: Loaded{},
			want:  State{Step: StepDetails},
		},
		{
			name:    "load twice",
			from:    State{Step: StepDetails},
			event:   Loaded{},
			wantErr: true,
		},
		{
			name:  "submit card",
			from:  State{Step: StepDetails},
			event: Submitted{OrderID: "o-1", Amount: 14500, Email: "a@b.com", Method: entities.PaymentMethodCard},
			want:  payment,
		},
		{
			name:  "submit terms",
			from:  State{Step: StepDetails},
			event: Submitted{OrderID: "o-2", Amount: 12000, Method: entities.PaymentMethodTerms},
			want:  State{Step: StepComplete, OrderID: "o-2", Amount: 12000, Method: entities.PaymentMethodTerms},
		},
		{
			name:    "submit from payment",
			from:    payment,
			event:   Submitted{OrderID: "o-1", Method: entities.PaymentMethodCard},
			wantErr: true,
		},
		{
			name:  "payment succeeded",
			from:  State{Step: StepPayment, OrderID: "o-1", Amount: 14500, Method: entities.PaymentMethodCard, Error: "declined"},
			event: PaymentSucceeded{OrderID: "o-1"},
			want:  State{Step: StepComplete, OrderID: "o-1", Amount: 14500, Method: entities.PaymentMethodCard},
		},
		{
			name:  "payment failed stays in payment",
			from:  payment,
			event: PaymentFailed{Reason: "declined"},
			want:  State{Step: StepPayment, OrderID: "o-1", Amount: 14500, Email: "a@b.com", Method: entities.PaymentMethodCard, Error: "declined"},
		},
		{
			name:  "reconciliation failure asks for support",
			from:  payment,
			event: ReconciliationFailed{Reason: "contact support"},
			want: State{
				Step: StepPayment, OrderID: "o-1", Amount: 14500, Email: "a@b.com", Method: entities.PaymentMethodCard,
				Error: "contact support", SupportRequired: true,
			},
		},
		{
			name:  "back to details",
			from:  payment,
			event: Back{},
			want:  State{Step: StepDetails},
		},
		{
			name:    "back from details",
			from:    State{Step: StepDetails},
			event:   Back{},
			wantErr: true,
		},
		{
			name:    "payment succeeded outside payment",
			from:    State{Step: StepDetails},
			event:   PaymentSucceeded{OrderID: "o-1"},
			wantErr: true,
		},
		{
			name:    "complete is terminal",
			from:    State{Step: StepComplete, OrderID: "o-1"},
			event:   Back{},
			wantErr: true,
		},
		{
			name:    "complete ignores a second success",
			from:    State{Step: StepComplete, OrderID: "o-1"},
			event:   PaymentSucceeded{OrderID: "o-1"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transition(tc.from, tc.event)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidTransition)
				assert.Equal(t, tc.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusMessage_Distinct(t *testing.T) {
	statuses := []entities.IntentStatus{
		entities.IntentStatusRequiresPaymentMethod,
		entities.IntentStatusCanceled,
		entities.IntentStatusProcessing,
		"unexpected",
	}
	seen := map[string]bool{}
	for _, s := range statuses {
		msg := StatusMessage(s)
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "duplicate message for %s", s)
		seen[msg] = true
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "145.00 USD", FormatAmount(14500, "usd"))
	assert.Equal(t, "0.05", FormatAmount(5, ""))
}

func TestParseReturnParams(t *testing.T) {
	testCases := []struct {
		name      string
		query     map[string]string
		want      ReturnParams
		succeeded bool
	}{
		{
			name:      "succeeded",
			query:     map[string]string{"payment_intent": "pi_1", "redirect_status": "succeeded"},
			want:      ReturnParams{IntentID: "pi_1", RedirectStatus: entities.IntentStatusSucceeded},
			succeeded: true,
		},
		{
			name:      "legacy flag",
			query:     map[string]string{"payment_intent": "pi_1", "success": "true"},
			want:      ReturnParams{IntentID: "pi_1", Legacy: true},
			succeeded: true,
		},
		{
			name:  "declined",
			query: map[string]string{"payment_intent": "pi_1", "redirect_status": "requires_payment_method"},
			want:  ReturnParams{IntentID: "pi_1", RedirectStatus: entities.IntentStatusRequiresPaymentMethod},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseReturnParams(func(k string) string { return tc.query[k] })
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.succeeded, got.Succeeded())
		})
	}
}
