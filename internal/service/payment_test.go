package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreatePaymentIntent(t *testing.T) {
	type MockBehavior func(m serviceMocks)

	pending := entities.Order{
		ID: draftID, Status: entities.OrderStatusPending, Currency: "USD", Total: 14500, ContactEmail: "a@b.com",
	}

	testCases := []struct {
		name         string
		req          service.CreateIntentRequest
		mockBehavior MockBehavior
		want         service.CreateIntentResult
		wantErr      error
	}{
		{
			name: "charges the stored total",
			req:  service.CreateIntentRequest{OrderID: draftID, Currency: "usd"},
			mockBehavior: func(m serviceMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, draftID).Return(pending, nil).Once()
				m.gateway.EXPECT().CreateIntent(mock.Anything, mock.MatchedBy(func(r entities.IntentRequest) bool {
					return r.OrderID == draftID && r.Amount == 14500 && r.Currency == "USD" &&
						r.ReceiptEmail == "a@b.com" && strings.HasPrefix(r.IdempotencyKey, "order-"+draftID+"-")
				})).Return(entities.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 14500}, nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.MatchedBy(func(l entities.IntentLink) bool {
					return l.IntentID == "pi_1" && l.OrderID == draftID && l.Amount == 14500
				})).Return(entities.IntentLink{IntentID: "pi_1", OrderID: draftID}, nil).Once()
			},
			want: service.CreateIntentResult{IntentID: "pi_1", ClientSecret: "pi_1_secret"},
		},
		{
			name: "canceled intent is replaced with a fresh one",
			req:  service.CreateIntentRequest{OrderID: draftID},
			mockBehavior: func(m serviceMocks) {
				var keys []string
				m.orders.EXPECT().GetOrder(mock.Anything, draftID).Return(pending, nil).Once()
				m.gateway.EXPECT().CreateIntent(mock.Anything, mock.Anything).
					Run(func(_ context.Context, r entities.IntentRequest) { keys = append(keys, r.IdempotencyKey) }).
					Return(entities.PaymentIntent{ID: "pi_1", Status: entities.IntentStatusCanceled, Amount: 14500}, nil).Once()
				m.gateway.EXPECT().CreateIntent(mock.Anything, mock.MatchedBy(func(r entities.IntentRequest) bool {
					return len(keys) == 1 && r.IdempotencyKey != keys[0]
				})).Return(entities.PaymentIntent{
					ID: "pi_2", ClientSecret: "pi_2_secret", Status: entities.IntentStatusRequiresPaymentMethod, Amount: 14500,
				}, nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.MatchedBy(func(l entities.IntentLink) bool {
					return l.IntentID == "pi_2"
				})).Return(entities.IntentLink{IntentID: "pi_2", OrderID: draftID}, nil).Once()
			},
			want: service.CreateIntentResult{IntentID: "pi_2", ClientSecret: "pi_2_secret"},
		},
		{
			name: "gives up when every intent is canceled",
			req:  service.CreateIntentRequest{OrderID: draftID},
			mockBehavior: func(m serviceMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, draftID).Return(pending, nil).Once()
				m.gateway.EXPECT().CreateIntent(mock.Anything, mock.Anything).
					Return(entities.PaymentIntent{ID: "pi_1", Status: entities.IntentStatusCanceled}, nil)
			},
			wantErr: entities.ErrGateway,
		},
		{
			name:         "order id is required",
			req:          service.CreateIntentRequest{},
			mockBehavior: func(_ serviceMocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "order not found",
			req:  service.CreateIntentRequest{OrderID: draftID},
			mockBehavior: func(m serviceMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, draftID).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "confirmed order cannot be charged again",
			req:  service.CreateIntentRequest{OrderID: draftID},
			mockBehavior: func(m serviceMocks) {
				confirmed := pending
				confirmed.Status = entities.OrderStatusConfirmed
				m.orders.EXPECT().GetOrder(mock.Anything, draftID).Return(confirmed, nil).Once()
			},
			wantErr: entities.ErrOrderNotPending,
		},
		{
			name: "currency mismatch",
			req:  service.CreateIntentRequest{OrderID: draftID, Currency: "EUR"},
			mockBehavior: func(m serviceMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, draftID).Return(pending, nil).Once()
			},
			wantErr: entities.ErrCurrencyMismatch,
		},
		{
			name: "gateway failure leaves order pending",
			req:  service.CreateIntentRequest{OrderID: draftID},
			mockBehavior: func(m serviceMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, draftID).Return(pending, nil).Once()
				m.gateway.EXPECT().CreateIntent(mock.Anything, mock.Anything).
					Return(entities.PaymentIntent{}, errors.New("card_declined")).Once()
			},
			wantErr: entities.ErrGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			tc.mockBehavior(m)

			got, err := m.newService().CreatePaymentIntent(context.Background(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
