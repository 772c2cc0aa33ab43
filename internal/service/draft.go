package service

import (
	"errors"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// DraftInput is what the details form submits.
type DraftInput struct {
	Session entities.Session
	Email   string

	Billing entities.Address
	// Nil means shipping is the same as billing.
	Shipping *entities.Address

	ShippingMethod string
	PaymentMethod  entities.PaymentMethod
	PONumber       string
	Notes          string

	// Set when the shopper resubmits details for an existing pending order.
	DraftOrderID string
}

type draftBuilder struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
	currency string
}

func newDraftBuilder(currency string) *draftBuilder {
	return &draftBuilder{
		validate: validator.New(),
		policy:   bluemonday.StrictPolicy(),
		currency: strings.ToUpper(currency),
	}
}

// Build validates the input against the cart and identity and returns a
// pending order. Nothing is written.
func (b *draftBuilder) Build(cart entities.Cart, identity entities.Identity, in DraftInput, id string, now time.Time) (entities.Order, error) {
	if cart.Empty() {
		return entities.Order{}, entities.Reject(entities.ErrCartEmpty)
	}

	verr := entities.NewValidationError("invalid checkout details")

	email := strings.TrimSpace(in.Email)
	if !identity.Authenticated {
		if err := b.validate.Var(email, "required,email"); err != nil {
			verr.With("email", firstTag(err))
		}
	}
	if email == "" {
		email = identity.Email
	}

	billing := trimAddress(in.Billing)
	b.validateAddress(verr, "billing", billing)

	shipping := billing
	if in.Shipping != nil {
		shipping = trimAddress(*in.Shipping)
		b.validateAddress(verr, "shipping", shipping)
	}

	method, ok := entities.LookupShippingMethod(in.ShippingMethod)
	if !ok {
		verr.With("shipping_method", "oneof")
	}
	if !in.PaymentMethod.Valid() {
		verr.With("payment_method", "oneof")
	}

	if len(verr.Fields) > 0 {
		return entities.Order{}, verr
	}

	if in.PaymentMethod == entities.PaymentMethodTerms {
		if err := checkTerms(identity); err != nil {
			return entities.Order{}, err
		}
	}

	currency := strings.ToUpper(cart.Currency)
	if currency == "" {
		currency = b.currency
	}

	order := entities.Order{
		ID:              id,
		CustomerID:      identity.CustomerID,
		Status:          entities.OrderStatusPending,
		Currency:        currency,
		ShippingCost:    method.Cost,
		ShippingMethod:  method.Code,
		BillingAddress:  billing,
		ShippingAddress: shipping,
		PONumber:        b.sanitize(in.PONumber),
		Notes:           b.sanitize(in.Notes),
		PaymentStatus:   entities.PaymentStatusPending,
		PaymentMethod:   in.PaymentMethod,
		ContactEmail:    email,
		CheckoutSession: in.Session.Key,
		PlacedAt:        now,
		CreatedBy:       identity.UserID,
	}

	order.Lines = make([]entities.OrderLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		order.Lines = append(order.Lines, entities.OrderLine{
			OrderID:   id,
			ProductID: l.ProductID,
			SKU:       l.SKU,
			Title:     l.Title,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
			Currency:  currency,
		})
	}
	order.Total = order.Subtotal() + order.ShippingCost

	return order, nil
}

func (b *draftBuilder) validateAddress(verr *entities.ValidationError, prefix string, a entities.Address) {
	err := b.validate.Struct(a)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return
	}
	for _, fe := range fieldErrs {
		verr.With(prefix+"."+strings.ToLower(fe.Field()), fe.Tag())
	}
}

func trimAddress(a entities.Address) entities.Address {
	return entities.Address{
		Name:       strings.TrimSpace(a.Name),
		Company:    strings.TrimSpace(a.Company),
		Line1:      strings.TrimSpace(a.Line1),
		Line2:      strings.TrimSpace(a.Line2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.TrimSpace(a.Country),
		Phone:      strings.TrimSpace(a.Phone),
	}
}

func (b *draftBuilder) sanitize(s string) string {
	return strings.TrimSpace(b.policy.Sanitize(s))
}

func checkTerms(identity entities.Identity) error {
	if identity.Authenticated && identity.NetTermsEligible && identity.CustomerID != "" {
		return nil
	}
	if identity.NetTermsStatus == entities.TermsStatusPending {
		return entities.Reject(entities.ErrTermsPendingReview)
	}
	return entities.Reject(entities.ErrTermsNotEligible)
}

func firstTag(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Tag()
	}
	return "invalid"
}
