package entities

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type PaymentMethod string

const (
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodTerms PaymentMethod = "terms"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodTerms
}

// PaymentStatus is the payment tag stored next to the order status.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusTerms   PaymentStatus = "terms"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Address struct {
	Name       string `validate:"required"`
	Company    string
	Line1      string `validate:"required"`
	Line2      string
	City       string `validate:"required"`
	State      string `validate:"required"`
	PostalCode string `validate:"required"`
	Country    string
	Phone      string
}

type OrderLine struct {
	OrderID   string
	ProductID string
	SKU       string
	Title     string
	Qty       int
	UnitPrice int64
	Currency  string
}

type Order struct {
	ID              string
	CustomerID      string
	Status          OrderStatus
	Currency        string
	Total           int64
	ShippingCost    int64
	ShippingMethod  string
	BillingAddress  Address
	ShippingAddress Address
	PONumber        string
	Notes           string
	PaymentStatus   PaymentStatus
	PaymentMethod   PaymentMethod
	ContactEmail    string
	CheckoutSession string
	PlacedAt        time.Time
	CreatedBy       string
	ConfirmedAt     *time.Time

	Lines []OrderLine
}

// Subtotal sums the line amounts without shipping.
func (o Order) Subtotal() int64 {
	var sum int64
	for _, l := range o.Lines {
		sum += l.UnitPrice * int64(l.Qty)
	}
	return sum
}

func (o Order) IsConfirmed() bool {
	return o.Status == OrderStatusConfirmed
}
