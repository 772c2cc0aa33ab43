package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderHandler_GetConfirmation(t *testing.T) {
	const orderID = "6f1c1c0e-8a53-4a43-9f3e-5b0d1f8f7c11"
	confirmedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	order := entities.Order{
		ID:             orderID,
		Status:         entities.OrderStatusConfirmed,
		Currency:       "USD",
		Total:          14500,
		ShippingCost:   2500,
		ShippingMethod: "expedited",
		PaymentStatus:  entities.PaymentStatusPaid,
		PaymentMethod:  entities.PaymentMethodCard,
		ContactEmail:   "a@b.com",
		ConfirmedAt:    &confirmedAt,
		Lines: []entities.OrderLine{
			{SKU: "SKU-1", Title: "Widget", Qty: 1, UnitPrice: 12000},
		},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderGetter)
		wantStatus   int
		wantBody     []string
	}{
		{
			name:    "success",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"confirmed"`, `"subtotal":12000`, `"total":14500`, `"totalDisplay":"145.00 USD"`},
		},
		{
			name:       "invalid id",
			orderID:    "not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"invalid order id"`},
		},
		{
			name:    "not found",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   []string{`"order not found"`},
		},
		{
			name:    "internal error",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"internal server error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderGetter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			r := chi.NewRouter()
			handler.NewOrderHandler(logger, svc).Init(r)

			req := httptest.NewRequest(http.MethodGet, "/order-confirmation/"+tc.orderID+"?method=card", nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			for _, want := range tc.wantBody {
				assert.Contains(t, rr.Body.String(), want)
			}
		})
	}
}
