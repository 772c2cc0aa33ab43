package handler

import (
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
)

// Address is a postal address as submitted by the details form
type Address struct {
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// DetailsRequest is the checkout details form
type DetailsRequest struct {
	Email          string   `json:"email"`
	Billing        Address  `json:"billing"`
	Shipping       *Address `json:"shipping,omitempty"`
	ShippingMethod string   `json:"shippingMethod"`
	PaymentMethod  string   `json:"paymentMethod"`
	PONumber       string   `json:"poNumber,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	DraftOrderID   string   `json:"draftOrderId,omitempty"`
}

// OutcomeRequest is what the embedded card form reports
type OutcomeRequest struct {
	Status          string `json:"status" validate:"required,oneof=succeeded requires_action failed"`
	PaymentIntentID string `json:"paymentIntentId" validate:"required_if=Status succeeded"`
	RedirectURL     string `json:"redirectUrl" validate:"required_if=Status requires_action"`
	Message         string `json:"message,omitempty"`
}

// PaymentRequest is the body of the payment backend function
type PaymentRequest struct {
	Action          string `json:"action" validate:"required,oneof=create finalize"`
	OrderID         string `json:"orderId" validate:"required_if=Action create"`
	Currency        string `json:"currency,omitempty" validate:"omitempty,len=3"`
	ReceiptEmail    string `json:"receiptEmail,omitempty" validate:"omitempty,email"`
	PaymentIntentID string `json:"paymentIntentId" validate:"required_if=Action finalize"`
}

// PaymentResponse carries clientSecret for create and orderId for finalize
type PaymentResponse struct {
	ClientSecret string `json:"clientSecret,omitempty"`
	OrderID      string `json:"orderId,omitempty"`
}

// PaymentErrorResponse is returned when the gateway did not settle the payment
type PaymentErrorResponse struct {
	Error         string `json:"error"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

type CartLine struct {
	SKU       string `json:"sku"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"qty"`
	LineTotal int64  `json:"lineTotal"`
}

type Cart struct {
	Lines    []CartLine `json:"lines"`
	Subtotal int64      `json:"subtotal"`
	Currency string     `json:"currency"`
}

type ShippingMethod struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Cost int64  `json:"cost"`
}

// CheckoutView is the state of one checkout session
type CheckoutView struct {
	Step            string            `json:"step"`
	OrderID         string            `json:"orderId,omitempty"`
	Amount          int64             `json:"amount,omitempty"`
	AmountDisplay   string            `json:"amountDisplay,omitempty"`
	Email           string            `json:"email,omitempty"`
	Method          string            `json:"method,omitempty"`
	Error           string            `json:"error,omitempty"`
	SupportRequired bool              `json:"supportRequired,omitempty"`
	ClientSecret    string            `json:"clientSecret,omitempty"`
	DraftOrderID    string            `json:"draftOrderId,omitempty"`
	Fields          map[string]string `json:"fields,omitempty"`
	Cart            *Cart             `json:"cart,omitempty"`
	ShippingMethods []ShippingMethod  `json:"shippingMethods,omitempty"`
}

type OrderLine struct {
	SKU       string `json:"sku"`
	Title     string `json:"title"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
}

// OrderConfirmation is the confirmation page view of an order
type OrderConfirmation struct {
	OrderID        string      `json:"orderId"`
	Status         string      `json:"status"`
	PaymentStatus  string      `json:"paymentStatus"`
	Method         string      `json:"method"`
	Email          string      `json:"email"`
	Currency       string      `json:"currency"`
	Subtotal       int64       `json:"subtotal"`
	ShippingCost   int64       `json:"shippingCost"`
	ShippingMethod string      `json:"shippingMethod"`
	Total          int64       `json:"total"`
	TotalDisplay   string      `json:"totalDisplay"`
	PONumber       string      `json:"poNumber,omitempty"`
	Lines          []OrderLine `json:"lines"`
	PlacedAt       time.Time   `json:"placedAt"`
	ConfirmedAt    *time.Time  `json:"confirmedAt,omitempty"`
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Name:       a.Name,
		Company:    a.Company,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func DetailsJSONToInput(d DetailsRequest) service.DraftInput {
	in := service.DraftInput{
		Email:          d.Email,
		Billing:        AddressJSONToEntity(d.Billing),
		ShippingMethod: d.ShippingMethod,
		PaymentMethod:  entities.PaymentMethod(d.PaymentMethod),
		PONumber:       d.PONumber,
		Notes:          d.Notes,
		DraftOrderID:   d.DraftOrderID,
	}
	if d.Shipping != nil {
		shipping := AddressJSONToEntity(*d.Shipping)
		in.Shipping = &shipping
	}
	return in
}

func OutcomeJSONToEntity(o OutcomeRequest) checkout.Outcome {
	switch o.Status {
	case "succeeded":
		return checkout.Succeeded{IntentID: o.PaymentIntentID}
	case "requires_action":
		return checkout.RequiresAction{RedirectURL: o.RedirectURL}
	default:
		return checkout.Failed{Reason: o.Message}
	}
}

func CartEntityToJSON(c entities.Cart) *Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLine{
			SKU:       l.SKU,
			Title:     l.Title,
			UnitPrice: l.UnitPrice,
			Qty:       l.Qty,
			LineTotal: l.UnitPrice * int64(l.Qty),
		})
	}
	return &Cart{Lines: lines, Subtotal: c.Subtotal(), Currency: c.Currency}
}

func ViewEntityToJSON(v checkout.View, currency string) CheckoutView {
	out := CheckoutView{
		Step:            string(v.Step),
		OrderID:         v.OrderID,
		Amount:          v.Amount,
		Email:           v.Email,
		Method:          string(v.Method),
		Error:           v.Error,
		SupportRequired: v.SupportRequired,
		ClientSecret:    v.ClientSecret,
		DraftOrderID:    v.DraftOrderID,
		Fields:          v.Fields,
	}
	if v.Amount > 0 {
		out.AmountDisplay = checkout.FormatAmount(v.Amount, currency)
	}
	if v.Step == checkout.StepDetails {
		out.Cart = CartEntityToJSON(v.Cart)
		for _, m := range v.ShippingMethods {
			out.ShippingMethods = append(out.ShippingMethods, ShippingMethod{Code: m.Code, Name: m.Name, Cost: m.Cost})
		}
	}
	return out
}

func OrderEntityToJSON(o entities.Order) OrderConfirmation {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{SKU: l.SKU, Title: l.Title, Qty: l.Qty, UnitPrice: l.UnitPrice})
	}
	return OrderConfirmation{
		OrderID:        o.ID,
		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		Method:         string(o.PaymentMethod),
		Email:          o.ContactEmail,
		Currency:       o.Currency,
		Subtotal:       o.Subtotal(),
		ShippingCost:   o.ShippingCost,
		ShippingMethod: o.ShippingMethod,
		Total:          o.Total,
		TotalDisplay:   checkout.FormatAmount(o.Total, o.Currency),
		PONumber:       o.PONumber,
		Lines:          lines,
		PlacedAt:       o.PlacedAt,
		ConfirmedAt:    o.ConfirmedAt,
	}
}
