package handler_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentHandler_Payments(t *testing.T) {
	const orderID = "6f1c1c0e-8a53-4a43-9f3e-5b0d1f8f7c11"

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "create",
			body: `{"action":"create","orderId":"` + orderID + `","currency":"USD","receiptEmail":"a@b.com"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CreatePaymentIntent(mock.Anything, service.CreateIntentRequest{
					OrderID: orderID, Currency: "USD", ReceiptEmail: "a@b.com",
				}).Return(service.CreateIntentResult{IntentID: "pi_1", ClientSecret: "pi_1_secret"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"clientSecret":"pi_1_secret"}`,
		},
		{
			name: "finalize",
			body: `{"action":"finalize","paymentIntentId":"pi_1"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().Finalize(mock.Anything, "pi_1").Return(service.FinalizeResult{OrderID: orderID}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"orderId":"` + orderID + `"}`,
		},
		{
			name:       "unknown action",
			body:       `{"action":"refund"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Action":"oneof"`,
		},
		{
			name:       "create without order",
			body:       `{"action":"create"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"OrderID":"required_if"`,
		},
		{
			name:       "finalize without intent",
			body:       `{"action":"finalize"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"PaymentIntentID":"required_if"`,
		},
		{
			name:       "malformed body",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name: "order not found",
			body: `{"action":"create","orderId":"missing"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CreatePaymentIntent(mock.Anything, mock.Anything).
					Return(service.CreateIntentResult{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "order not pending",
			body: `{"action":"create","orderId":"` + orderID + `"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CreatePaymentIntent(mock.Anything, mock.Anything).
					Return(service.CreateIntentResult{}, entities.ErrOrderNotPending).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "gateway failure",
			body: `{"action":"create","orderId":"` + orderID + `"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CreatePaymentIntent(mock.Anything, mock.Anything).
					Return(service.CreateIntentResult{}, fmt.Errorf("%w: %w", entities.ErrGateway, errors.New("timeout"))).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"payment gateway error"`,
		},
		{
			name: "unknown intent",
			body: `{"action":"finalize","paymentIntentId":"pi_x"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().Finalize(mock.Anything, "pi_x").Return(service.FinalizeResult{}, entities.ErrIntentUnknown).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "not settled",
			body: `{"action":"finalize","paymentIntentId":"pi_1"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().Finalize(mock.Anything, "pi_1").
					Return(service.FinalizeResult{}, &entities.PaymentNotSettledError{IntentID: "pi_1", Status: "processing"}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"paymentStatus":"processing"`,
		},
		{
			name: "duplicate payment",
			body: `{"action":"finalize","paymentIntentId":"pi_2"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().Finalize(mock.Anything, "pi_2").
					Return(service.FinalizeResult{}, fmt.Errorf("failed to finalize order: %w", entities.ErrDuplicatePayment)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order already confirmed by another payment"`,
		},
		{
			name: "amount mismatch",
			body: `{"action":"finalize","paymentIntentId":"pi_1"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().Finalize(mock.Anything, "pi_1").Return(service.FinalizeResult{}, entities.ErrAmountMismatch).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "service validation",
			body: `{"action":"create","orderId":"` + orderID + `"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().CreatePaymentIntent(mock.Anything, mock.Anything).
					Return(service.CreateIntentResult{}, entities.NewValidationError("order id is required").With("orderId", "required")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"orderId":"required"`,
		},
		{
			name: "internal error",
			body: `{"action":"finalize","paymentIntentId":"pi_1"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().Finalize(mock.Anything, "pi_1").Return(service.FinalizeResult{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			r := chi.NewRouter()
			handler.NewPaymentHandler(logger, svc).Init(r)

			req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
