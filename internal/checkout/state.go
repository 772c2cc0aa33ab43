package checkout

import (
	"fmt"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type Step string

const (
	StepEmpty    Step = "empty"
	StepDetails  Step = "details"
	StepPayment  Step = "payment"
	StepComplete Step = "complete"
)

// State is the serialisable position of one checkout session.
type State struct {
	Step    Step
	OrderID string
	Amount  int64
	Email   string
	Method  entities.PaymentMethod

	// Error is the message shown in the current step, if any.
	Error           string
	SupportRequired bool
}

type Event interface {
	event()
}

// Loaded starts the machine. A pending payment wins over the cart.
type Loaded struct {
	Pending   *entities.PendingPayment
	CartEmpty bool
}

type Submitted struct {
	OrderID string
	Amount  int64
	Email   string
	Method  entities.PaymentMethod
}

type PaymentSucceeded struct {
	OrderID string
}

type PaymentFailed struct {
	Reason string
}

type Back struct{}

// ReconciliationFailed means the gateway took the money but the order could
// not be confirmed.
type ReconciliationFailed struct {
	Reason string
}

func (Loaded) event()               {}
func (Submitted) event()            {}
func (PaymentSucceeded) event()     {}
func (PaymentFailed) event()        {}
func (Back) event()                 {}
func (ReconciliationFailed) event() {}

// Transition is the whole checkout state machine. It has no side effects.
func Transition(s State, e Event) (State, error) {
	if s.Step == StepComplete {
		return s, invalid(s, e)
	}

	switch ev := e.(type) {
	case Loaded:
		if s.Step != "" {
			return s, invalid(s, e)
		}
		switch {
		case ev.Pending != nil:
			return State{
				Step:    StepPayment,
				OrderID: ev.Pending.OrderID,
				Amount:  ev.Pending.Amount,
				Email:   ev.Pending.Email,
				Method:  entities.PaymentMethodCard,
			}, nil
		case ev.CartEmpty:
			return State{Step: StepEmpty}, nil
		}
		return State{Step: StepDetails}, nil

	case Submitted:
		if s.Step != StepDetails {
			return s, invalid(s, e)
		}
		next := State{OrderID: ev.OrderID, Amount: ev.Amount, Email: ev.Email, Method: ev.Method}
		switch ev.Method {
		case entities.PaymentMethodTerms:
			next.Step = StepComplete
		case entities.PaymentMethodCard:
			next.Step = StepPayment
		default:
			return s, invalid(s, e)
		}
		return next, nil

	case PaymentSucceeded:
		if s.Step != StepPayment {
			return s, invalid(s, e)
		}
		next := s
		next.Step = StepComplete
		next.Error = ""
		next.SupportRequired = false
		if ev.OrderID != "" {
			next.OrderID = ev.OrderID
		}
		return next, nil

	case PaymentFailed:
		if s.Step != StepPayment {
			return s, invalid(s, e)
		}
		next := s
		next.Error = ev.Reason
		next.SupportRequired = false
		return next, nil

	case ReconciliationFailed:
		if s.Step != StepPayment {
			return s, invalid(s, e)
		}
		next := s
		next.Error = ev.Reason
		next.SupportRequired = true
		return next, nil

	case Back:
		if s.Step != StepPayment {
			return s, invalid(s, e)
		}
		return State{Step: StepDetails}, nil
	}

	return s, invalid(s, e)
}

func invalid(s State, e Event) error {
	return fmt.Errorf("%w: %T in %q", entities.ErrInvalidTransition, e, s.Step)
}
