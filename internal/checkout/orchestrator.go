package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
)

const checkoutPath = "/checkout"

// Navigator moves the browser. Implementations write headers, they do not block.
type Navigator interface {
	RedirectTo(url string)
	// ReplaceURL rewrites the address bar without a reload.
	ReplaceURL(url string)
}

type RecoveryStore interface {
	Get(ctx context.Context, sessionKey string) (entities.PendingPayment, bool)
	Set(ctx context.Context, sessionKey string, p entities.PendingPayment) error
	Clear(ctx context.Context, sessionKey string) error
}

type IntentRequest struct {
	OrderID      string
	Currency     string
	ReceiptEmail string
}

type Backend interface {
	CreateIntent(ctx context.Context, req IntentRequest, credential string) (string, error)
	Finalize(ctx context.Context, intentID, credential string) (string, error)
}

type Carts interface {
	GetCart(ctx context.Context, sessionKey string) (entities.Cart, error)
	ClearCart(ctx context.Context, sessionKey string) error
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in service.DraftInput) (service.PlaceOrderResult, error)
}

// View is what a checkout page renders for the current state.
type View struct {
	State

	Cart            entities.Cart
	ShippingMethods []entities.ShippingMethod
	ClientSecret    string
	DraftOrderID    string
	Fields          map[string]string
}

type Orchestrator struct {
	logger   *slog.Logger
	recovery RecoveryStore
	backend  Backend
	carts    Carts
	orders   OrderPlacer
	currency string
}

func NewOrchestrator(logger *slog.Logger, recovery RecoveryStore, backend Backend, carts Carts, orders OrderPlacer, currency string) *Orchestrator {
	return &Orchestrator{
		logger:   logger.With(slog.String("component", "orchestrator")),
		recovery: recovery,
		backend:  backend,
		carts:    carts,
		orders:   orders,
		currency: currency,
	}
}

// Load decides the initial step. A pending payment forces the payment step
// whatever the cart holds.
func (o *Orchestrator) Load(ctx context.Context, sess entities.Session) (View, error) {
	if pending, ok := o.recovery.Get(ctx, sess.Key); ok {
		state, err := Transition(State{}, Loaded{Pending: &pending})
		if err != nil {
			return View{}, err
		}
		view := View{State: state}
		o.startPayment(ctx, sess, &view)
		return view, nil
	}

	cart, err := o.carts.GetCart(ctx, sess.Key)
	if err != nil {
		return View{}, fmt.Errorf("failed to load cart: %w", err)
	}
	state, err := Transition(State{}, Loaded{CartEmpty: cart.Empty()})
	if err != nil {
		return View{}, err
	}
	return o.detailsView(state, cart), nil
}

// Submit places the order from the details form.
func (o *Orchestrator) Submit(ctx context.Context, sess entities.Session, nav Navigator, in service.DraftInput) (View, error) {
	current, err := o.current(ctx, sess)
	if err != nil {
		return View{}, err
	}
	if current.Step != StepDetails {
		return View{}, invalid(current, Submitted{})
	}

	in.Session = sess
	result, err := o.orders.PlaceOrder(ctx, in)
	if err != nil {
		return o.rejectDetails(ctx, sess, current, in.DraftOrderID, err)
	}

	state, err := Transition(current, Submitted{
		OrderID: result.OrderID,
		Amount:  result.Amount,
		Email:   result.Email,
		Method:  result.Method,
	})
	if err != nil {
		return View{}, err
	}

	if state.Step == StepComplete {
		if err := o.carts.ClearCart(ctx, sess.Key); err != nil {
			o.logger.Error("failed to clear cart", slog.String("order_id", state.OrderID), slog.Any("error", err))
		}
		nav.RedirectTo(ConfirmationURL(state.OrderID, state.Method))
		return View{State: state}, nil
	}

	if err := o.recovery.Set(ctx, sess.Key, entities.PendingPayment{
		OrderID: state.OrderID,
		Amount:  state.Amount,
		Email:   state.Email,
	}); err != nil {
		return View{}, err
	}

	view := View{State: state}
	o.startPayment(ctx, sess, &view)
	return view, nil
}

// HandleOutcome reacts to the embedded card form.
func (o *Orchestrator) HandleOutcome(ctx context.Context, sess entities.Session, nav Navigator, outcome Outcome) (View, error) {
	current, err := o.paymentState(ctx, sess)
	if err != nil {
		return View{}, err
	}

	switch out := outcome.(type) {
	case Succeeded:
		return o.finalize(ctx, sess, nav, current, out.IntentID)
	case RequiresAction:
		nav.RedirectTo(out.RedirectURL)
		return View{State: current}, nil
	case Failed:
		reason := out.Reason
		if reason == "" {
			reason = StatusMessage("")
		}
		state, err := Transition(current, PaymentFailed{Reason: reason})
		if err != nil {
			return View{}, err
		}
		return View{State: state}, nil
	}
	return View{}, fmt.Errorf("unknown payment outcome %T", outcome)
}

// HandleReturn handles the browser coming back from a hosted confirmation page.
func (o *Orchestrator) HandleReturn(ctx context.Context, sess entities.Session, nav Navigator, params ReturnParams) (View, error) {
	nav.ReplaceURL(checkoutPath)

	current, err := o.current(ctx, sess)
	if err != nil {
		return View{}, err
	}

	if !params.Succeeded() {
		if current.Step != StepPayment {
			return o.Load(ctx, sess)
		}
		state, err := Transition(current, PaymentFailed{Reason: StatusMessage(params.RedirectStatus)})
		if err != nil {
			return View{}, err
		}
		return View{State: state}, nil
	}

	// The record may already be gone when another tab finished first.
	if current.Step != StepPayment {
		current = State{Step: StepPayment, Method: entities.PaymentMethodCard}
	}
	if params.IntentID == "" {
		state, err := Transition(current, ReconciliationFailed{Reason: msgPaymentMissing})
		if err != nil {
			return View{}, err
		}
		return View{State: state}, nil
	}
	return o.finalize(ctx, sess, nav, current, params.IntentID)
}

// Back abandons the current payment attempt. The order stays pending.
func (o *Orchestrator) Back(ctx context.Context, sess entities.Session) (View, error) {
	current, err := o.paymentState(ctx, sess)
	if err != nil {
		return View{}, err
	}
	state, err := Transition(current, Back{})
	if err != nil {
		return View{}, err
	}
	if err := o.recovery.Clear(ctx, sess.Key); err != nil {
		return View{}, err
	}

	cart, err := o.carts.GetCart(ctx, sess.Key)
	if err != nil {
		return View{}, fmt.Errorf("failed to load cart: %w", err)
	}
	view := o.detailsView(state, cart)
	view.DraftOrderID = current.OrderID
	return view, nil
}

// RetryIntent asks the backend for a fresh client secret for the same order.
func (o *Orchestrator) RetryIntent(ctx context.Context, sess entities.Session) (View, error) {
	current, err := o.paymentState(ctx, sess)
	if err != nil {
		return View{}, err
	}
	view := View{State: current}
	o.startPayment(ctx, sess, &view)
	return view, nil
}

func (o *Orchestrator) finalize(ctx context.Context, sess entities.Session, nav Navigator, current State, intentID string) (View, error) {
	orderID, err := o.backend.Finalize(ctx, intentID, sess.Credential)

	var backendErr *BackendError
	switch {
	case errors.As(err, &backendErr) && backendErr.NotSettled():
		state, terr := Transition(current, PaymentFailed{Reason: StatusMessage(entities.IntentStatus(backendErr.PaymentStatus))})
		if terr != nil {
			return View{}, terr
		}
		return View{State: state}, nil
	case err != nil || orderID == "":
		o.logger.Error("reconciliation failed",
			slog.String("intent_id", intentID),
			slog.String("order_id", current.OrderID),
			slog.Any("error", err),
		)
		state, terr := Transition(current, ReconciliationFailed{Reason: msgSupportRequired})
		if terr != nil {
			return View{}, terr
		}
		return View{State: state}, nil
	}

	state, err := Transition(current, PaymentSucceeded{OrderID: orderID})
	if err != nil {
		return View{}, err
	}

	if err := o.recovery.Clear(ctx, sess.Key); err != nil {
		o.logger.Error("failed to clear pending payment", slog.String("order_id", orderID), slog.Any("error", err))
	}
	if err := o.carts.ClearCart(ctx, sess.Key); err != nil {
		o.logger.Error("failed to clear cart", slog.String("order_id", orderID), slog.Any("error", err))
	}

	nav.RedirectTo(ConfirmationURL(orderID, entities.PaymentMethodCard))
	return View{State: state}, nil
}

// startPayment fills the client secret. A failure is shown in the payment
// step and the order stays pending.
func (o *Orchestrator) startPayment(ctx context.Context, sess entities.Session, view *View) {
	secret, err := o.backend.CreateIntent(ctx, IntentRequest{
		OrderID:      view.OrderID,
		Currency:     o.currency,
		ReceiptEmail: view.Email,
	}, sess.Credential)
	if err != nil {
		o.logger.Error("failed to create payment intent", slog.String("order_id", view.OrderID), slog.Any("error", err))
		view.Error = msgIntentFailed
		return
	}
	view.ClientSecret = secret
}

func (o *Orchestrator) rejectDetails(ctx context.Context, sess entities.Session, current State, draftID string, err error) (View, error) {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		current.Error = verr.Reason
	case errors.Is(err, entities.ErrProfileUnavailable):
		current.Error = msgProfileUnavailable
	default:
		return View{}, err
	}

	cart, cerr := o.carts.GetCart(ctx, sess.Key)
	if cerr != nil {
		return View{}, fmt.Errorf("failed to load cart: %w", cerr)
	}
	view := o.detailsView(current, cart)
	view.DraftOrderID = draftID
	if verr != nil {
		view.Fields = verr.Fields
	}
	return view, nil
}

func (o *Orchestrator) detailsView(state State, cart entities.Cart) View {
	view := View{State: state, Cart: cart}
	if state.Step == StepDetails {
		view.ShippingMethods = entities.ShippingMethods()
	}
	return view
}

// current rebuilds the state from the recovery record, details otherwise.
func (o *Orchestrator) current(ctx context.Context, sess entities.Session) (State, error) {
	if pending, ok := o.recovery.Get(ctx, sess.Key); ok {
		return Transition(State{}, Loaded{Pending: &pending})
	}
	return State{Step: StepDetails}, nil
}

func (o *Orchestrator) paymentState(ctx context.Context, sess entities.Session) (State, error) {
	pending, ok := o.recovery.Get(ctx, sess.Key)
	if !ok {
		return State{}, fmt.Errorf("%w: no pending payment", entities.ErrInvalidTransition)
	}
	return Transition(State{}, Loaded{Pending: &pending})
}

func ConfirmationURL(orderID string, method entities.PaymentMethod) string {
	return "/order-confirmation/" + url.PathEscape(orderID) + "?method=" + url.QueryEscape(string(method))
}
