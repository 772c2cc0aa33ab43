package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

const maxWebhookBody = 64 << 10

type PaymentEventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event entities.PaymentEvent) error
}

type WebhookHandler struct {
	logger    *slog.Logger
	secret    string
	publisher PaymentEventPublisher
}

func NewWebhookHandler(logger *slog.Logger, secret string, publisher PaymentEventPublisher) *WebhookHandler {
	return &WebhookHandler{
		logger:    logger.With(slog.String("handler", "webhook")),
		secret:    secret,
		publisher: publisher,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/stripe", h.Stripe)
}

// Stripe receives gateway notifications and forwards settled payments to the payment events topic.
// @Summary      Stripe webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Webhook signature"
// @Success      200               {object}  map[string]bool
// @Failure      400               {object}  utils.ErrorResponse
// @Failure      500               {object}  utils.ErrorResponse
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, r.Header.Get("Stripe-Signature"), h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		h.logger.WarnContext(ctx, "rejected webhook", slog.Any("error", err))
		webhookEventsTotal.WithLabelValues("unknown", "rejected").Inc()
		utils.WriteError(w, "invalid signature", http.StatusBadRequest)
		return
	}

	if event.Type != stripe.EventTypePaymentIntentSucceeded {
		webhookEventsTotal.WithLabelValues(string(event.Type), "ignored").Inc()
		utils.WriteJSON(w, map[string]bool{"received": true}, http.StatusOK)
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil || intent.ID == "" {
		webhookEventsTotal.WithLabelValues(string(event.Type), "rejected").Inc()
		utils.WriteError(w, "invalid payment intent payload", http.StatusBadRequest)
		return
	}

	err = h.publisher.PublishPaymentEvent(ctx, entities.PaymentEvent{
		EventID:  event.ID,
		Type:     string(event.Type),
		IntentID: intent.ID,
		Status:   entities.IntentStatus(intent.Status),
	})
	if err != nil {
		// Non-2xx makes the gateway redeliver.
		h.logger.ErrorContext(ctx, "failed to forward payment event", slog.String("intent_id", intent.ID), slog.Any("error", err))
		webhookEventsTotal.WithLabelValues(string(event.Type), "failed").Inc()
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	webhookEventsTotal.WithLabelValues(string(event.Type), "forwarded").Inc()
	utils.WriteJSON(w, map[string]bool{"received": true}, http.StatusOK)
}
