package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/google/uuid"
)

// Upper bound on fresh intents per set of charge parameters once earlier ones were canceled.
const maxIntentAttempts = 10

var idempotencyNamespace = uuid.MustParse("5d8f2c1e-3b7a-4e0f-9c6d-2a1b4e7f8c90")

type CreateIntentRequest struct {
	OrderID      string
	Currency     string
	ReceiptEmail string
}

type CreateIntentResult struct {
	IntentID     string
	ClientSecret string
}

// CreatePaymentIntent charges the total stored with the order, never an
// amount supplied by the caller.
func (s *orderService) CreatePaymentIntent(ctx context.Context, req CreateIntentRequest) (CreateIntentResult, error) {
	if req.OrderID == "" {
		return CreateIntentResult{}, entities.NewValidationError("order id is required").With("orderId", "required")
	}

	order, err := s.orders.GetOrder(ctx, req.OrderID)
	if err != nil {
		return CreateIntentResult{}, err
	}
	if order.Status != entities.OrderStatusPending {
		return CreateIntentResult{}, entities.ErrOrderNotPending
	}
	if req.Currency != "" && !strings.EqualFold(req.Currency, order.Currency) {
		return CreateIntentResult{}, entities.ErrCurrencyMismatch
	}

	email := req.ReceiptEmail
	if email == "" {
		email = order.ContactEmail
	}

	intent, err := s.createUsableIntent(ctx, order, email)
	if err != nil {
		s.logger.Error("failed to create payment intent", slog.String("order_id", order.ID), slog.Any("error", err))
		return CreateIntentResult{}, fmt.Errorf("%w: %w", entities.ErrGateway, err)
	}

	link, err := s.orders.LinkIntent(ctx, entities.IntentLink{
		IntentID:  intent.ID,
		OrderID:   order.ID,
		Amount:    intent.Amount,
		Currency:  order.Currency,
		CreatedAt: s.now(),
	})
	if err != nil {
		return CreateIntentResult{}, fmt.Errorf("failed to link intent: %w", err)
	}
	if link.OrderID != order.ID {
		return CreateIntentResult{}, entities.ErrIntentOrderMismatch
	}

	intentsCreated.Inc()
	s.logger.Info("payment intent created", slog.String("order_id", order.ID), slog.String("intent_id", intent.ID))

	return CreateIntentResult{IntentID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

// createUsableIntent walks the attempt counter past intents that were
// canceled, so a retry after cancellation gets a confirmable client secret.
func (s *orderService) createUsableIntent(ctx context.Context, order entities.Order, email string) (entities.PaymentIntent, error) {
	for attempt := 0; attempt < maxIntentAttempts; attempt++ {
		intent, err := s.gateway.CreateIntent(ctx, entities.IntentRequest{
			OrderID:        order.ID,
			Amount:         order.Total,
			Currency:       order.Currency,
			ReceiptEmail:   email,
			IdempotencyKey: intentIdempotencyKey(order, email, attempt),
		})
		if err != nil {
			return entities.PaymentIntent{}, err
		}
		if intent.Status != entities.IntentStatusCanceled {
			return intent, nil
		}
		s.logger.Info("payment intent canceled, creating a new one",
			slog.String("order_id", order.ID),
			slog.String("intent_id", intent.ID),
			slog.Int("attempt", attempt),
		)
	}
	return entities.PaymentIntent{}, fmt.Errorf("no usable payment intent after %d attempts", maxIntentAttempts)
}

// intentIdempotencyKey covers every parameter sent to the gateway. The gateway
// rejects a reused key whose parameters differ.
func intentIdempotencyKey(order entities.Order, email string, attempt int) string {
	parts := []string{
		order.ID,
		strconv.FormatInt(order.Total, 10),
		strings.ToUpper(order.Currency),
		strings.ToLower(email),
		strconv.Itoa(attempt),
	}
	return "order-" + order.ID + "-" + uuid.NewSHA1(idempotencyNamespace, []byte(strings.Join(parts, "|"))).String()
}
