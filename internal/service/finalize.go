package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type FinalizeResult struct {
	OrderID  string
	Replayed bool
}

// Finalize confirms the order paid by intentID. The gateway is the source of
// truth for the payment status. Repeated calls for the same intent return the
// same order id and have no further side effects.
func (s *orderService) Finalize(ctx context.Context, intentID string) (result FinalizeResult, err error) {
	ctx, span := tracer.Start(ctx, "Finalize")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("payment.intent_id", intentID))

	if intentID == "" {
		return FinalizeResult{}, entities.NewValidationError("payment intent id is required").With("paymentIntentId", "required")
	}

	intent, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		finalizeOutcomes.WithLabelValues("gateway_error").Inc()
		return FinalizeResult{}, fmt.Errorf("%w: %w", entities.ErrGateway, err)
	}
	if intent.Status != entities.IntentStatusSucceeded {
		finalizeOutcomes.WithLabelValues("not_settled").Inc()
		return FinalizeResult{}, &entities.PaymentNotSettledError{IntentID: intent.ID, Status: string(intent.Status)}
	}

	orderID, err := s.resolveOrderID(ctx, intent)
	if err != nil {
		finalizeOutcomes.WithLabelValues("unknown_intent").Inc()
		return FinalizeResult{}, err
	}

	var order entities.Order
	replayed := false
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}

		link, err := s.orders.LinkIntent(ctx, entities.IntentLink{
			IntentID:  intent.ID,
			OrderID:   orderID,
			Amount:    intent.Amount,
			Currency:  strings.ToUpper(intent.Currency),
			CreatedAt: s.now(),
		})
		if err != nil {
			return err
		}
		if link.OrderID != orderID {
			return entities.ErrIntentOrderMismatch
		}

		if order.IsConfirmed() {
			// Only the intent that confirmed the order replays.
			if link.FinalizedAt == nil {
				return entities.ErrDuplicatePayment
			}
			replayed = true
			return nil
		}

		if intent.Amount != order.Total {
			return entities.ErrAmountMismatch
		}
		if intent.Currency != "" && !strings.EqualFold(intent.Currency, order.Currency) {
			return entities.ErrCurrencyMismatch
		}

		now := s.now()
		confirmed, err := s.orders.ConfirmOrder(ctx, orderID, entities.PaymentStatusPaid, now)
		if err != nil {
			return err
		}
		if !confirmed {
			replayed = true
			return nil
		}
		order.Status = entities.OrderStatusConfirmed
		order.PaymentStatus = entities.PaymentStatusPaid
		order.ConfirmedAt = &now

		return s.orders.MarkIntentFinalized(ctx, intent.ID, now)
	})
	if err != nil {
		finalizeOutcomes.WithLabelValues(finalizeErrorOutcome(err)).Inc()
		s.logger.Error("finalize failed",
			slog.String("intent_id", intent.ID),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
		return FinalizeResult{}, fmt.Errorf("failed to finalize order: %w", err)
	}

	if replayed {
		finalizeOutcomes.WithLabelValues("replayed").Inc()
		s.logger.Debug("finalize replayed", slog.String("intent_id", intent.ID), slog.String("order_id", orderID))
		return FinalizeResult{OrderID: orderID, Replayed: true}, nil
	}

	finalizeOutcomes.WithLabelValues("confirmed").Inc()
	s.logger.Info("order confirmed", slog.String("intent_id", intent.ID), slog.String("order_id", orderID))
	s.afterConfirm(ctx, order)

	return FinalizeResult{OrderID: orderID}, nil
}

// resolveOrderID prefers the stored link and falls back to intent metadata.
func (s *orderService) resolveOrderID(ctx context.Context, intent entities.PaymentIntent) (string, error) {
	link, err := s.orders.GetIntentLink(ctx, intent.ID)
	switch {
	case err == nil:
		return link.OrderID, nil
	case !errors.Is(err, entities.ErrIntentUnknown):
		return "", fmt.Errorf("failed to resolve order: %w", err)
	}

	if _, err := uuid.Parse(intent.OrderID); err != nil {
		return "", entities.ErrIntentUnknown
	}
	return intent.OrderID, nil
}

func finalizeErrorOutcome(err error) string {
	switch {
	case errors.Is(err, entities.ErrAmountMismatch), errors.Is(err, entities.ErrCurrencyMismatch):
		return "mismatch"
	case errors.Is(err, entities.ErrIntentOrderMismatch):
		return "intent_mismatch"
	case errors.Is(err, entities.ErrDuplicatePayment):
		return "duplicate_payment"
	case errors.Is(err, entities.ErrOrderNotFound):
		return "unknown_order"
	}
	return "error"
}
