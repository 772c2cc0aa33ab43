package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func succeededIntent() entities.PaymentIntent {
	return entities.PaymentIntent{
		ID: "pi_1", Status: entities.IntentStatusSucceeded, Amount: 14500, Currency: "usd", OrderID: draftID,
	}
}

func pendingOrder() entities.Order {
	return entities.Order{
		ID: draftID, Status: entities.OrderStatusPending, Currency: "USD", Total: 14500,
		PaymentMethod: entities.PaymentMethodCard, CheckoutSession: "sess-1",
	}
}

func TestOrderService_Finalize(t *testing.T) {
	type MockBehavior func(m serviceMocks)

	link := entities.IntentLink{IntentID: "pi_1", OrderID: draftID, Amount: 14500, Currency: "USD"}
	finalizedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		intentID     string
		mockBehavior MockBehavior
		want         service.FinalizeResult
		wantErr      error
	}{
		{
			name:     "first finalize confirms the order",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeededIntent(), nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(link, nil).Once()
				m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(pendingOrder(), nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.Anything).Return(link, nil).Once()
				m.orders.EXPECT().ConfirmOrder(mock.Anything, draftID, entities.PaymentStatusPaid, mock.Anything).Return(true, nil).Once()
				m.orders.EXPECT().MarkIntentFinalized(mock.Anything, "pi_1", mock.Anything).Return(nil).Once()
				m.carts.EXPECT().ClearCart(mock.Anything, "sess-1").Return(nil).Once()
				m.events.EXPECT().PublishOrderConfirmed(mock.Anything, mock.MatchedBy(func(e entities.OrderConfirmedEvent) bool {
					return e.OrderID == draftID && e.Method == entities.PaymentMethodCard && e.Total == 14500
				})).Return(nil).Once()
			},
			want: service.FinalizeResult{OrderID: draftID},
		},
		{
			name:     "falls back to intent metadata",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeededIntent(), nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(entities.IntentLink{}, entities.ErrIntentUnknown).Once()
				m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(pendingOrder(), nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.MatchedBy(func(l entities.IntentLink) bool {
					return l.IntentID == "pi_1" && l.OrderID == draftID && l.Currency == "USD"
				})).Return(link, nil).Once()
				m.orders.EXPECT().ConfirmOrder(mock.Anything, draftID, entities.PaymentStatusPaid, mock.Anything).Return(true, nil).Once()
				m.orders.EXPECT().MarkIntentFinalized(mock.Anything, "pi_1", mock.Anything).Return(nil).Once()
				m.carts.EXPECT().ClearCart(mock.Anything, "sess-1").Return(nil).Once()
				m.events.EXPECT().PublishOrderConfirmed(mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: service.FinalizeResult{OrderID: draftID},
		},
		{
			name:     "already confirmed by this intent is a replay",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				confirmed := pendingOrder()
				confirmed.Status = entities.OrderStatusConfirmed
				finalized := link
				finalized.FinalizedAt = &finalizedAt
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeededIntent(), nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(finalized, nil).Once()
				m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(confirmed, nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.Anything).Return(finalized, nil).Once()
			},
			want: service.FinalizeResult{OrderID: draftID, Replayed: true},
		},
		{
			name:     "second intent on a confirmed order",
			intentID: "pi_2",
			mockBehavior: func(m serviceMocks) {
				confirmed := pendingOrder()
				confirmed.Status = entities.OrderStatusConfirmed
				intent := succeededIntent()
				intent.ID = "pi_2"
				intent.Amount = 99999
				second := entities.IntentLink{IntentID: "pi_2", OrderID: draftID, Amount: 99999, Currency: "USD"}
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_2").Return(intent, nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_2").Return(entities.IntentLink{}, entities.ErrIntentUnknown).Once()
				m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(confirmed, nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.Anything).Return(second, nil).Once()
			},
			wantErr: entities.ErrDuplicatePayment,
		},
		{
			name:     "card intent on an order confirmed under net terms",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				terms := pendingOrder()
				terms.Status = entities.OrderStatusConfirmed
				terms.PaymentMethod = entities.PaymentMethodTerms
				terms.PaymentStatus = entities.PaymentStatusTerms
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeededIntent(), nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(link, nil).Once()
				m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(terms, nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.Anything).Return(link, nil).Once()
			},
			wantErr: entities.ErrDuplicatePayment,
		},
		{
			name:     "payment not settled",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				intent := succeededIntent()
				intent.Status = entities.IntentStatusRequiresPaymentMethod
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(intent, nil).Once()
			},
			wantErr: entities.ErrPaymentNotSettled,
		},
		{
			name:     "amount mismatch",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				intent := succeededIntent()
				intent.Amount = 100
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(intent, nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(link, nil).Once()
				m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(pendingOrder(), nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.Anything).Return(link, nil).Once()
			},
			wantErr: entities.ErrAmountMismatch,
		},
		{
			name:     "intent linked to another order",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeededIntent(), nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(entities.IntentLink{}, entities.ErrIntentUnknown).Once()
				m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(pendingOrder(), nil).Once()
				m.orders.EXPECT().LinkIntent(mock.Anything, mock.Anything).
					Return(entities.IntentLink{IntentID: "pi_1", OrderID: "other"}, nil).Once()
			},
			wantErr: entities.ErrIntentOrderMismatch,
		},
		{
			name:     "unknown intent",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				intent := succeededIntent()
				intent.OrderID = ""
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(intent, nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(entities.IntentLink{}, entities.ErrIntentUnknown).Once()
			},
			wantErr: entities.ErrIntentUnknown,
		},
		{
			name:     "metadata order id is not a uuid",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				intent := succeededIntent()
				intent.OrderID = "order-42"
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(intent, nil).Once()
				m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(entities.IntentLink{}, entities.ErrIntentUnknown).Once()
			},
			wantErr: entities.ErrIntentUnknown,
		},
		{
			name:     "gateway failure",
			intentID: "pi_1",
			mockBehavior: func(m serviceMocks) {
				m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").
					Return(entities.PaymentIntent{}, errors.New("timeout")).Once()
			},
			wantErr: entities.ErrGateway,
		},
		{
			name:         "empty intent id",
			intentID:     "",
			mockBehavior: func(_ serviceMocks) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			tc.mockBehavior(m)

			got, err := m.newService().Finalize(context.Background(), tc.intentID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_Finalize_Twice(t *testing.T) {
	m := newServiceMocks(t)
	link := entities.IntentLink{IntentID: "pi_1", OrderID: draftID, Amount: 14500, Currency: "USD"}
	finalizedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	confirmed := pendingOrder()
	confirmed.Status = entities.OrderStatusConfirmed

	m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(succeededIntent(), nil).Times(2)
	m.orders.EXPECT().GetIntentLink(mock.Anything, "pi_1").Return(link, nil).Times(2)
	finalized := link
	finalized.FinalizedAt = &finalizedAt
	m.orders.EXPECT().LinkIntent(mock.Anything, mock.Anything).Return(link, nil).Once()
	m.orders.EXPECT().LinkIntent(mock.Anything, mock.Anything).Return(finalized, nil).Once()
	m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(pendingOrder(), nil).Once()
	m.orders.EXPECT().LockOrder(mock.Anything, draftID).Return(confirmed, nil).Once()
	m.orders.EXPECT().ConfirmOrder(mock.Anything, draftID, entities.PaymentStatusPaid, mock.Anything).Return(true, nil).Once()
	m.orders.EXPECT().MarkIntentFinalized(mock.Anything, "pi_1", mock.Anything).Return(nil).Once()
	m.carts.EXPECT().ClearCart(mock.Anything, "sess-1").Return(nil).Once()
	m.events.EXPECT().PublishOrderConfirmed(mock.Anything, mock.Anything).Return(nil).Once()

	svc := m.newService()

	first, err := svc.Finalize(context.Background(), "pi_1")
	require.NoError(t, err)
	second, err := svc.Finalize(context.Background(), "pi_1")
	require.NoError(t, err)

	assert.Equal(t, draftID, first.OrderID)
	assert.Equal(t, first.OrderID, second.OrderID)
	assert.False(t, first.Replayed)
	assert.True(t, second.Replayed)
}

func TestPaymentNotSettledError(t *testing.T) {
	m := newServiceMocks(t)
	intent := succeededIntent()
	intent.Status = entities.IntentStatusCanceled
	m.gateway.EXPECT().RetrieveIntent(mock.Anything, "pi_1").Return(intent, nil).Once()

	_, err := m.newService().Finalize(context.Background(), "pi_1")

	var notSettled *entities.PaymentNotSettledError
	require.ErrorAs(t, err, &notSettled)
	assert.Equal(t, "canceled", notSettled.Status)
}
