package checkout_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/checkout/mocks"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	sess    = entities.Session{Key: "sess-1"}
	pending = entities.PendingPayment{OrderID: "o-1", Amount: 14500, Email: "a@b.com"}
)

type orchestratorMocks struct {
	recovery *mocks.MockRecoveryStore
	backend  *mocks.MockBackend
	carts    *mocks.MockCarts
	orders   *mocks.MockOrderPlacer
	nav      *mocks.MockNavigator
}

func newOrchestrator(t *testing.T) (*checkout.Orchestrator, orchestratorMocks) {
	m := orchestratorMocks{
		recovery: mocks.NewMockRecoveryStore(t),
		backend:  mocks.NewMockBackend(t),
		carts:    mocks.NewMockCarts(t),
		orders:   mocks.NewMockOrderPlacer(t),
		nav:      mocks.NewMockNavigator(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	o := checkout.NewOrchestrator(logger, m.recovery, m.backend, m.carts, m.orders, "USD")
	return o, m
}

func cartWithLines() entities.Cart {
	return entities.Cart{ID: "sess-1", Currency: "USD", Lines: []entities.CartLine{
		{SKU: "SKU-1", ProductID: "p-1", Title: "Widget", UnitPrice: 12000, Qty: 1},
	}}
}

func TestOrchestrator_Load(t *testing.T) {
	t.Run("pending payment forces payment step", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
		m.backend.EXPECT().CreateIntent(mock.Anything, checkout.IntentRequest{
			OrderID: "o-1", Currency: "USD", ReceiptEmail: "a@b.com",
		}, "").Return("pi_1_secret", nil).Once()

		view, err := o.Load(context.Background(), sess)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, view.Step)
		assert.Equal(t, "o-1", view.OrderID)
		assert.Equal(t, int64(14500), view.Amount)
		assert.Equal(t, "pi_1_secret", view.ClientSecret)
	})

	t.Run("intent creation failure is shown in payment step", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
		m.backend.EXPECT().CreateIntent(mock.Anything, mock.Anything, "").Return("", errors.New("502")).Once()

		view, err := o.Load(context.Background(), sess)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, view.Step)
		assert.NotEmpty(t, view.Error)
		assert.Empty(t, view.ClientSecret)
	})

	t.Run("empty cart without pending payment", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(entities.PendingPayment{}, false).Once()
		m.carts.EXPECT().GetCart(mock.Anything, "sess-1").Return(entities.Cart{ID: "sess-1"}, nil).Once()

		view, err := o.Load(context.Background(), sess)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepEmpty, view.Step)
		assert.Empty(t, view.ShippingMethods)
	})

	t.Run("cart with lines shows details", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(entities.PendingPayment{}, false).Once()
		m.carts.EXPECT().GetCart(mock.Anything, "sess-1").Return(cartWithLines(), nil).Once()

		view, err := o.Load(context.Background(), sess)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepDetails, view.Step)
		assert.Len(t, view.ShippingMethods, 3)
		assert.Equal(t, cartWithLines(), view.Cart)
	})
}

func TestOrchestrator_Submit(t *testing.T) {
	input := service.DraftInput{Email: "a@b.com", ShippingMethod: "expedited", PaymentMethod: entities.PaymentMethodCard}

	t.Run("card caches the pending payment", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(entities.PendingPayment{}, false).Once()
		m.orders.EXPECT().PlaceOrder(mock.Anything, mock.MatchedBy(func(in service.DraftInput) bool {
			return in.Session == sess && in.Email == "a@b.com"
		})).Return(service.PlaceOrderResult{
			OrderID: "o-1", Amount: 14500, Currency: "USD", Email: "a@b.com", Method: entities.PaymentMethodCard,
		}, nil).Once()
		m.recovery.EXPECT().Set(mock.Anything, "sess-1", pending).Return(nil).Once()
		m.backend.EXPECT().CreateIntent(mock.Anything, mock.Anything, "").Return("pi_1_secret", nil).Once()

		view, err := o.Submit(context.Background(), sess, m.nav, input)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, view.Step)
		assert.Equal(t, int64(14500), view.Amount)
		assert.Equal(t, "pi_1_secret", view.ClientSecret)
	})

	t.Run("terms completes without payment step", func(t *testing.T) {
		o, m := newOrchestrator(t)
		terms := input
		terms.PaymentMethod = entities.PaymentMethodTerms
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(entities.PendingPayment{}, false).Once()
		m.orders.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(service.PlaceOrderResult{
			OrderID: "o-2", Amount: 12000, Method: entities.PaymentMethodTerms, Confirmed: true,
		}, nil).Once()
		m.carts.EXPECT().ClearCart(mock.Anything, "sess-1").Return(nil).Once()
		m.nav.EXPECT().RedirectTo("/order-confirmation/o-2?method=terms").Return().Once()

		view, err := o.Submit(context.Background(), sess, m.nav, terms)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepComplete, view.Step)
	})

	t.Run("pending terms review stays in details", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(entities.PendingPayment{}, false).Once()
		m.orders.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(service.PlaceOrderResult{}, entities.Reject(entities.ErrTermsPendingReview)).Once()
		m.carts.EXPECT().GetCart(mock.Anything, "sess-1").Return(cartWithLines(), nil).Once()

		view, err := o.Submit(context.Background(), sess, m.nav, input)
		require.NoError(t, err)
		assert.Equal(t, checkout.StepDetails, view.Step)
		assert.Contains(t, view.Error, "pending review")
		assert.Empty(t, view.OrderID)
	})

	t.Run("field errors are returned", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(entities.PendingPayment{}, false).Once()
		m.orders.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(service.PlaceOrderResult{}, entities.NewValidationError("invalid checkout details").With("billing.city", "required")).Once()
		m.carts.EXPECT().GetCart(mock.Anything, "sess-1").Return(cartWithLines(), nil).Once()

		view, err := o.Submit(context.Background(), sess, m.nav, input)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"billing.city": "required"}, view.Fields)
	})

	t.Run("persistence failure is blocking", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(entities.PendingPayment{}, false).Once()
		m.orders.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(service.PlaceOrderResult{}, errors.New("db down")).Once()

		_, err := o.Submit(context.Background(), sess, m.nav, input)
		assert.Error(t, err)
	})

	t.Run("submit while a payment is pending", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()

		_, err := o.Submit(context.Background(), sess, m.nav, input)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})
}

func TestOrchestrator_HandleOutcome(t *testing.T) {
	t.Run("success finalizes and clears the record", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
		m.backend.EXPECT().Finalize(mock.Anything, "pi_1", "").Return("o-1", nil).Once()
		m.recovery.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()
		m.carts.EXPECT().ClearCart(mock.Anything, "sess-1").Return(nil).Once()
		m.nav.EXPECT().RedirectTo("/order-confirmation/o-1?method=card").Return().Once()

		view, err := o.HandleOutcome(context.Background(), sess, m.nav, checkout.Succeeded{IntentID: "pi_1"})
		require.NoError(t, err)
		assert.Equal(t, checkout.StepComplete, view.Step)
		assert.Equal(t, "o-1", view.OrderID)
	})

	t.Run("finalize failure requires support and keeps the record", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
		m.backend.EXPECT().Finalize(mock.Anything, "pi_1", "").
			Return("", &checkout.BackendError{StatusCode: 500, Message: "boom"}).Once()

		view, err := o.HandleOutcome(context.Background(), sess, m.nav, checkout.Succeeded{IntentID: "pi_1"})
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, view.Step)
		assert.True(t, view.SupportRequired)
	})

	t.Run("empty order id after success requires support", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
		m.backend.EXPECT().Finalize(mock.Anything, "pi_1", "").Return("", nil).Once()

		view, err := o.HandleOutcome(context.Background(), sess, m.nav, checkout.Succeeded{IntentID: "pi_1"})
		require.NoError(t, err)
		assert.True(t, view.SupportRequired)
	})

	t.Run("not settled is a payment failure", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
		m.backend.EXPECT().Finalize(mock.Anything, "pi_1", "").
			Return("", &checkout.BackendError{StatusCode: 409, PaymentStatus: "processing"}).Once()

		view, err := o.HandleOutcome(context.Background(), sess, m.nav, checkout.Succeeded{IntentID: "pi_1"})
		require.NoError(t, err)
		assert.False(t, view.SupportRequired)
		assert.Equal(t, checkout.StatusMessage(entities.IntentStatusProcessing), view.Error)
	})

	t.Run("requires action redirects to the hosted page", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
		m.nav.EXPECT().RedirectTo("https://hooks.stripe.test/3ds").Return().Once()

		view, err := o.HandleOutcome(context.Background(), sess, m.nav, checkout.RequiresAction{RedirectURL: "https://hooks.stripe.test/3ds"})
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, view.Step)
	})

	t.Run("failure keeps the order pending", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()

		view, err := o.HandleOutcome(context.Background(), sess, m.nav, checkout.Failed{Reason: "Your card has insufficient funds."})
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, view.Step)
		assert.Equal(t, "Your card has insufficient funds.", view.Error)
		assert.Equal(t, "o-1", view.OrderID)
	})

	t.Run("no pending payment", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(entities.PendingPayment{}, false).Once()

		_, err := o.HandleOutcome(context.Background(), sess, m.nav, checkout.Succeeded{IntentID: "pi_1"})
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})
}

func TestOrchestrator_HandleReturn(t *testing.T) {
	testCases := []struct {
		name   string
		status entities.IntentStatus
	}{
		{name: "canceled", status: entities.IntentStatusCanceled},
		{name: "requires payment method", status: entities.IntentStatusRequiresPaymentMethod},
		{name: "processing", status: entities.IntentStatusProcessing},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" keeps the pending payment", func(t *testing.T) {
			o, m := newOrchestrator(t)
			m.nav.EXPECT().ReplaceURL("/checkout").Return().Once()
			m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()

			view, err := o.HandleReturn(context.Background(), sess, m.nav, checkout.ReturnParams{IntentID: "pi_1", RedirectStatus: tc.status})
			require.NoError(t, err)
			assert.Equal(t, checkout.StepPayment, view.Step)
			assert.Equal(t, "o-1", view.OrderID)
			assert.Equal(t, checkout.StatusMessage(tc.status), view.Error)
		})
	}

	t.Run("succeeded finalizes", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.nav.EXPECT().ReplaceURL("/checkout").Return().Once()
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
		m.backend.EXPECT().Finalize(mock.Anything, "pi_1", "").Return("o-1", nil).Once()
		m.recovery.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()
		m.carts.EXPECT().ClearCart(mock.Anything, "sess-1").Return(nil).Once()
		m.nav.EXPECT().RedirectTo("/order-confirmation/o-1?method=card").Return().Once()

		view, err := o.HandleReturn(context.Background(), sess, m.nav, checkout.ReturnParams{IntentID: "pi_1", RedirectStatus: "succeeded"})
		require.NoError(t, err)
		assert.Equal(t, checkout.StepComplete, view.Step)
	})

	t.Run("legacy success without intent requires support", func(t *testing.T) {
		o, m := newOrchestrator(t)
		m.nav.EXPECT().ReplaceURL("/checkout").Return().Once()
		m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()

		view, err := o.HandleReturn(context.Background(), sess, m.nav, checkout.ReturnParams{Legacy: true})
		require.NoError(t, err)
		assert.True(t, view.SupportRequired)
	})
}

func TestOrchestrator_Back(t *testing.T) {
	o, m := newOrchestrator(t)
	m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
	m.recovery.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()
	m.carts.EXPECT().GetCart(mock.Anything, "sess-1").Return(cartWithLines(), nil).Once()

	view, err := o.Back(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepDetails, view.Step)
	assert.Equal(t, "o-1", view.DraftOrderID)
	assert.Empty(t, view.OrderID)
}

func TestOrchestrator_RetryIntent(t *testing.T) {
	o, m := newOrchestrator(t)
	m.recovery.EXPECT().Get(mock.Anything, "sess-1").Return(pending, true).Once()
	m.backend.EXPECT().CreateIntent(mock.Anything, mock.Anything, "").Return("pi_2_secret", nil).Once()

	view, err := o.RetryIntent(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "pi_2_secret", view.ClientSecret)
	assert.Empty(t, view.Error)
}
