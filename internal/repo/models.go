package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

type Order struct {
	ID              string         `db:"id"`
	CustomerID      sql.NullString `db:"customer_id"`
	Status          string         `db:"status"`
	Currency        string         `db:"currency"`
	Total           int64          `db:"total"`
	ShippingCost    int64          `db:"shipping_cost"`
	ShippingMethod  string         `db:"shipping_method"`
	BillingAddress  []byte         `db:"billing_address"`
	ShippingAddress []byte         `db:"shipping_address"`
	PONumber        sql.NullString `db:"po_number"`
	Notes           sql.NullString `db:"notes"`
	PaymentStatus   string         `db:"payment_status"`
	PaymentMethod   string         `db:"payment_method"`
	ContactEmail    sql.NullString `db:"contact_email"`
	CheckoutSession string         `db:"checkout_session"`
	PlacedAt        time.Time      `db:"placed_at"`
	CreatedBy       sql.NullString `db:"created_by"`
	ConfirmedAt     sql.NullTime   `db:"confirmed_at"`
}

type OrderLine struct {
	OrderID   string `db:"order_id"`
	LineNo    int    `db:"line_no"`
	ProductID string `db:"product_id"`
	SKU       string `db:"sku"`
	Title     string `db:"title"`
	Qty       int    `db:"qty"`
	UnitPrice int64  `db:"unit_price"`
	Currency  string `db:"currency"`
}

type IntentLink struct {
	IntentID    string       `db:"intent_id"`
	OrderID     string       `db:"order_id"`
	Amount      int64        `db:"amount"`
	Currency    string       `db:"currency"`
	CreatedAt   time.Time    `db:"created_at"`
	FinalizedAt sql.NullTime `db:"finalized_at"`
}

type Profile struct {
	UserID            string         `db:"user_id"`
	Email             string         `db:"email"`
	AccountType       string         `db:"account_type"`
	CustomerID        sql.NullString `db:"customer_id"`
	TermsReviewStatus string         `db:"terms_review_status"`
}

type BusinessCustomer struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	NetTermsStatus string `db:"net_terms_status"`
}

type Cart struct {
	SessionKey string `db:"session_key"`
	Currency   string `db:"currency"`
}

type CartLine struct {
	SKU       string `db:"sku"`
	ProductID string `db:"product_id"`
	Title     string `db:"title"`
	UnitPrice int64  `db:"unit_price"`
	Qty       int    `db:"qty"`
}

// address is the JSONB shape of billing and shipping columns.
type address struct {
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

func marshalAddress(a entities.Address) ([]byte, error) {
	return json.Marshal(address(a))
}

func unmarshalAddress(data []byte) (entities.Address, error) {
	if len(data) == 0 {
		return entities.Address{}, nil
	}
	var a address
	if err := json.Unmarshal(data, &a); err != nil {
		return entities.Address{}, err
	}
	return entities.Address(a), nil
}

func OrderToEntity(o Order, lines []OrderLine) (entities.Order, error) {
	billing, err := unmarshalAddress(o.BillingAddress)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode billing address: %w", err)
	}
	shipping, err := unmarshalAddress(o.ShippingAddress)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode shipping address: %w", err)
	}

	order := entities.Order{
		ID:              o.ID,
		CustomerID:      nullStringToString(o.CustomerID),
		Status:          entities.OrderStatus(o.Status),
		Currency:        o.Currency,
		Total:           o.Total,
		ShippingCost:    o.ShippingCost,
		ShippingMethod:  o.ShippingMethod,
		BillingAddress:  billing,
		ShippingAddress: shipping,
		PONumber:        nullStringToString(o.PONumber),
		Notes:           nullStringToString(o.Notes),
		PaymentStatus:   entities.PaymentStatus(o.PaymentStatus),
		PaymentMethod:   entities.PaymentMethod(o.PaymentMethod),
		ContactEmail:    nullStringToString(o.ContactEmail),
		CheckoutSession: o.CheckoutSession,
		PlacedAt:        o.PlacedAt,
		CreatedBy:       nullStringToString(o.CreatedBy),
	}
	if o.ConfirmedAt.Valid {
		t := o.ConfirmedAt.Time
		order.ConfirmedAt = &t
	}

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Lines = append(order.Lines, OrderLineToEntity(l))
		}
	}

	return order, nil
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		OrderID:   l.OrderID,
		ProductID: l.ProductID,
		SKU:       l.SKU,
		Title:     l.Title,
		Qty:       l.Qty,
		UnitPrice: l.UnitPrice,
		Currency:  l.Currency,
	}
}

func IntentLinkToEntity(l IntentLink) entities.IntentLink {
	link := entities.IntentLink{
		IntentID:  l.IntentID,
		OrderID:   l.OrderID,
		Amount:    l.Amount,
		Currency:  l.Currency,
		CreatedAt: l.CreatedAt,
	}
	if l.FinalizedAt.Valid {
		t := l.FinalizedAt.Time
		link.FinalizedAt = &t
	}
	return link
}

func ProfileToEntity(p Profile) entities.Profile {
	return entities.Profile{
		UserID:            p.UserID,
		Email:             p.Email,
		AccountType:       p.AccountType,
		CustomerID:        nullStringToString(p.CustomerID),
		TermsReviewStatus: entities.TermsStatus(p.TermsReviewStatus),
	}
}

func BusinessCustomerToEntity(c BusinessCustomer) entities.BusinessCustomer {
	return entities.BusinessCustomer{
		ID:             c.ID,
		Name:           c.Name,
		NetTermsStatus: entities.TermsStatus(c.NetTermsStatus),
	}
}

func CartToEntity(c Cart, lines []CartLine) entities.Cart {
	cart := entities.Cart{ID: c.SessionKey, Currency: c.Currency}
	for _, l := range lines {
		cart.Lines = append(cart.Lines, entities.CartLine{
			SKU:       l.SKU,
			ProductID: l.ProductID,
			Title:     l.Title,
			UnitPrice: l.UnitPrice,
			Qty:       l.Qty,
		})
	}
	return cart
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
