package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

const metadataOrderID = "order_id"

type paymentIntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeGateway struct {
	logger  *slog.Logger
	intents paymentIntentAPI
}

func NewStripeGateway(logger *slog.Logger, secretKey string) (*stripeGateway, error) {
	key := strings.TrimSpace(secretKey)
	if key == "" {
		return nil, errors.New("stripe: secret key is required")
	}
	sc := client.New(key, nil)
	return newStripeGateway(logger, sc.PaymentIntents), nil
}

func newStripeGateway(logger *slog.Logger, intents paymentIntentAPI) *stripeGateway {
	return &stripeGateway{
		logger:  logger.With(slog.String("gateway", "stripe")),
		intents: intents,
	}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, req entities.IntentRequest) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{metadataOrderID: req.OrderID},
	}
	params.Context = ctx
	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		params.SetIdempotencyKey(key)
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}

	intent, err := g.intents.New(params)
	if err != nil {
		return entities.PaymentIntent{}, fmt.Errorf("stripe: create payment intent: %w", err)
	}

	// A replayed response carries the status from creation time.
	if replayed(intent) {
		g.logger.Debug("idempotent replay, refreshing payment intent", slog.String("intent_id", intent.ID))
		return g.RetrieveIntent(ctx, intent.ID)
	}

	g.logger.Debug("payment intent created",
		slog.String("intent_id", intent.ID),
		slog.String("order_id", req.OrderID),
		slog.String("status", string(intent.Status)),
	)
	return toPaymentIntent(intent), nil
}

func (g *stripeGateway) RetrieveIntent(ctx context.Context, intentID string) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.intents.Get(intentID, params)
	if err != nil {
		return entities.PaymentIntent{}, fmt.Errorf("stripe: retrieve payment intent: %w", err)
	}
	return toPaymentIntent(intent), nil
}

func replayed(intent *stripe.PaymentIntent) bool {
	return intent != nil && intent.LastResponse != nil &&
		intent.LastResponse.Header.Get("Idempotent-Replayed") == "true"
}

func toPaymentIntent(intent *stripe.PaymentIntent) entities.PaymentIntent {
	if intent == nil {
		return entities.PaymentIntent{}
	}
	return entities.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       normalizeStatus(intent.Status),
		Amount:       intent.Amount,
		Currency:     strings.ToUpper(string(intent.Currency)),
		OrderID:      intent.Metadata[metadataOrderID],
	}
}

func normalizeStatus(status stripe.PaymentIntentStatus) entities.IntentStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return entities.IntentStatusSucceeded
	case stripe.PaymentIntentStatusProcessing:
		return entities.IntentStatusProcessing
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		return entities.IntentStatusRequiresPaymentMethod
	case stripe.PaymentIntentStatusRequiresAction:
		return entities.IntentStatusRequiresAction
	case stripe.PaymentIntentStatusRequiresConfirmation:
		return entities.IntentStatusRequiresConfirmation
	case stripe.PaymentIntentStatusCanceled:
		return entities.IntentStatusCanceled
	}
	return entities.IntentStatus(status)
}
