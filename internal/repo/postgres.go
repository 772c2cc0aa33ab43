package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "customer_id", "status", "currency", "total", "shipping_cost",
	"shipping_method", "billing_address", "shipping_address", "po_number",
	"notes", "payment_status", "payment_method", "contact_email",
	"checkout_session", "placed_at", "created_by", "confirmed_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	billing, shipping, err := encodeAddresses(o)
	if err != nil {
		return err
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, nullString(o.CustomerID), o.Status, o.Currency, o.Total, o.ShippingCost,
			o.ShippingMethod, billing, shipping, nullString(o.PONumber),
			nullString(o.Notes), o.PaymentStatus, o.PaymentMethod, nullString(o.ContactEmail),
			o.CheckoutSession, o.PlacedAt, nullString(o.CreatedBy), nullTime(o.ConfirmedAt),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateDraft rewrites the header of a pending order. Confirmed orders are never touched.
func (r *postgresRepo) UpdateDraft(ctx context.Context, o entities.Order) error {
	billing, shipping, err := encodeAddresses(o)
	if err != nil {
		return err
	}

	query, args := r.qb.Update("orders").
		SetMap(map[string]any{
			"customer_id":      nullString(o.CustomerID),
			"currency":         o.Currency,
			"total":            o.Total,
			"shipping_cost":    o.ShippingCost,
			"shipping_method":  o.ShippingMethod,
			"billing_address":  billing,
			"shipping_address": shipping,
			"po_number":        nullString(o.PONumber),
			"notes":            nullString(o.Notes),
			"payment_method":   o.PaymentMethod,
			"payment_status":   o.PaymentStatus,
			"contact_email":    nullString(o.ContactEmail),
			"created_by":       nullString(o.CreatedBy),
		}).
		Where(sq.Eq{"id": o.ID, "status": entities.OrderStatusPending}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotPending
	}
	return nil
}

func (r *postgresRepo) ReplaceLines(ctx context.Context, orderID string, lines []entities.OrderLine) error {
	query, args := r.qb.Delete("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").
		Columns("order_id", "line_no", "product_id", "sku", "title", "qty", "unit_price", "currency")
	for i, l := range lines {
		q = q.Values(orderID, i+1, l.ProductID, l.SKU, l.Title, l.Qty, l.UnitPrice, l.Currency)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order lines: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "line_no", "product_id", "sku", "title", "qty", "unit_price", "currency").
		From("order_lines").
		Where(sq.Eq{"order_id": id}).
		OrderBy("line_no").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order lines: %w", err)
	}

	return OrderToEntity(order, lines)
}

// LockOrder reads the order header with a row lock. Must run inside a transaction.
func (r *postgresRepo) LockOrder(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to lock order: %w", err)
	}
	return OrderToEntity(order, nil)
}

// ConfirmOrder moves a pending order to confirmed. It reports false when
// the order was no longer pending.
func (r *postgresRepo) ConfirmOrder(ctx context.Context, id string, status entities.PaymentStatus, at time.Time) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", entities.OrderStatusConfirmed).
		Set("payment_status", status).
		Set("confirmed_at", at).
		Where(sq.Eq{"id": id, "status": entities.OrderStatusPending}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to confirm order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to confirm order: %w", err)
	}
	return n == 1, nil
}

// LinkIntent stores the intent link unless one exists and returns the stored row.
func (r *postgresRepo) LinkIntent(ctx context.Context, link entities.IntentLink) (entities.IntentLink, error) {
	query, args := r.qb.Insert("payment_intents").
		Columns("intent_id", "order_id", "amount", "currency", "created_at").
		Values(link.IntentID, link.OrderID, link.Amount, link.Currency, link.CreatedAt).
		Suffix("ON CONFLICT (intent_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.IntentLink{}, fmt.Errorf("failed to link intent: %w", err)
	}
	return r.GetIntentLink(ctx, link.IntentID)
}

func (r *postgresRepo) GetIntentLink(ctx context.Context, intentID string) (entities.IntentLink, error) {
	query, args := r.qb.Select("intent_id", "order_id", "amount", "currency", "created_at", "finalized_at").
		From("payment_intents").
		Where(sq.Eq{"intent_id": intentID}).
		MustSql()

	var link IntentLink
	err := r.getContext(ctx, &link, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.IntentLink{}, entities.ErrIntentUnknown
	}
	if err != nil {
		return entities.IntentLink{}, fmt.Errorf("failed to get intent link: %w", err)
	}
	return IntentLinkToEntity(link), nil
}

func (r *postgresRepo) MarkIntentFinalized(ctx context.Context, intentID string, at time.Time) error {
	query, args := r.qb.Update("payment_intents").
		Set("finalized_at", at).
		Where(sq.Eq{"intent_id": intentID, "finalized_at": nil}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark intent finalized: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetProfile(ctx context.Context, userID string) (entities.Profile, error) {
	query, args := r.qb.Select("user_id", "email", "account_type", "customer_id", "terms_review_status").
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var p Profile
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Profile{}, entities.ErrProfileNotFound
	}
	if err != nil {
		return entities.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return ProfileToEntity(p), nil
}

func (r *postgresRepo) GetBusinessCustomer(ctx context.Context, id string) (entities.BusinessCustomer, error) {
	query, args := r.qb.Select("id", "name", "net_terms_status").
		From("business_customers").
		Where(sq.Eq{"id": id}).
		MustSql()

	var c BusinessCustomer
	err := r.getContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.BusinessCustomer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.BusinessCustomer{}, fmt.Errorf("failed to get business customer: %w", err)
	}
	return BusinessCustomerToEntity(c), nil
}

// GetCart returns an empty cart when the session has none.
func (r *postgresRepo) GetCart(ctx context.Context, sessionKey string) (entities.Cart, error) {
	query, args := r.qb.Select("session_key", "currency").
		From("carts").
		Where(sq.Eq{"session_key": sessionKey}).
		MustSql()

	var c Cart
	err := r.getContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{ID: sessionKey}, nil
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	query, args = r.qb.Select("sku", "product_id", "title", "unit_price", "qty").
		From("cart_lines").
		Where(sq.Eq{"session_key": sessionKey}).
		OrderBy("sku").
		MustSql()

	var lines []CartLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart lines: %w", err)
	}
	return CartToEntity(c, lines), nil
}

func (r *postgresRepo) ClearCart(ctx context.Context, sessionKey string) error {
	query, args := r.qb.Delete("cart_lines").
		Where(sq.Eq{"session_key": sessionKey}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func encodeAddresses(o entities.Order) ([]byte, []byte, error) {
	billing, err := marshalAddress(o.BillingAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode billing address: %w", err)
	}
	shipping, err := marshalAddress(o.ShippingAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode shipping address: %w", err)
	}
	return billing, shipping, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
