package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("service/order")

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	// UpdateDraft fails with ErrOrderNotPending once the order left pending.
	UpdateDraft(ctx context.Context, o entities.Order) error
	ReplaceLines(ctx context.Context, orderID string, lines []entities.OrderLine) error
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	LockOrder(ctx context.Context, id string) (entities.Order, error)
	ConfirmOrder(ctx context.Context, id string, status entities.PaymentStatus, at time.Time) (bool, error)

	// LinkIntent is idempotent, it returns the link already stored for the intent.
	LinkIntent(ctx context.Context, link entities.IntentLink) (entities.IntentLink, error)
	GetIntentLink(ctx context.Context, intentID string) (entities.IntentLink, error)
	MarkIntentFinalized(ctx context.Context, intentID string, at time.Time) error
}

type CartRepo interface {
	GetCart(ctx context.Context, sessionKey string) (entities.Cart, error)
	ClearCart(ctx context.Context, sessionKey string) error
}

type IdentityResolver interface {
	Resolve(ctx context.Context, session entities.Session) (entities.Identity, error)
}

type Gateway interface {
	CreateIntent(ctx context.Context, req entities.IntentRequest) (entities.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, intentID string) (entities.PaymentIntent, error)
}

type EventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event entities.OrderConfirmedEvent) error
}

type Cache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

type Deps struct {
	TxManager trm.Manager
	Orders    OrderRepo
	Carts     CartRepo
	Identity  IdentityResolver
	Gateway   Gateway
	Events    EventPublisher
	Cache     Cache
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	carts     CartRepo
	identity  IdentityResolver
	gateway   Gateway
	events    EventPublisher
	cache     Cache
	drafts    *draftBuilder
	retry     utils.RetryConfig

	now   func() time.Time
	newID func() string
}

func NewOrderService(logger *slog.Logger, deps Deps, currency string) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: deps.TxManager,
		orders:    deps.Orders,
		carts:     deps.Carts,
		identity:  deps.Identity,
		gateway:   deps.Gateway,
		events:    deps.Events,
		cache:     deps.Cache,
		drafts:    newDraftBuilder(currency),
		retry:     utils.DefaultRetry,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

type PlaceOrderResult struct {
	OrderID   string
	Amount    int64
	Currency  string
	Email     string
	Method    entities.PaymentMethod
	Confirmed bool
}

// PlaceOrder validates the details form, writes the order with its lines in
// one transaction and, for NET terms, confirms it right away.
func (s *orderService) PlaceOrder(ctx context.Context, in DraftInput) (PlaceOrderResult, error) {
	ctx, span := tracer.Start(ctx, "PlaceOrder")
	defer span.End()

	identity, err := s.identity.Resolve(ctx, in.Session)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	cart, err := s.carts.GetCart(ctx, in.Session.Key)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("failed to load cart: %w", err)
	}

	order, err := s.drafts.Build(cart, identity, in, s.newID(), s.now())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.saveDraft(ctx, &order, in.DraftOrderID); err != nil {
				return err
			}
			if order.PaymentMethod != entities.PaymentMethodTerms {
				return nil
			}
			confirmed, err := s.orders.ConfirmOrder(ctx, order.ID, entities.PaymentStatusTerms, order.PlacedAt)
			if err != nil {
				return err
			}
			if !confirmed {
				return entities.ErrOrderNotPending
			}
			return nil
		})
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotPending); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return PlaceOrderResult{}, fmt.Errorf("failed to save order: %w", err)
	}

	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.String("order.payment_method", string(order.PaymentMethod)),
	)
	ordersPlaced.WithLabelValues(string(order.PaymentMethod)).Inc()
	s.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("method", string(order.PaymentMethod)),
		slog.Int64("total", order.Total),
	)

	result := PlaceOrderResult{
		OrderID:  order.ID,
		Amount:   order.Total,
		Currency: order.Currency,
		Email:    order.ContactEmail,
		Method:   order.PaymentMethod,
	}

	if order.PaymentMethod == entities.PaymentMethodTerms {
		now := order.PlacedAt
		order.Status = entities.OrderStatusConfirmed
		order.PaymentStatus = entities.PaymentStatusTerms
		order.ConfirmedAt = &now
		s.afterConfirm(ctx, order)
		result.Confirmed = true
	}

	return result, nil
}

// saveDraft reuses the draft order when it is still pending and belongs to the
// same checkout session, otherwise it creates a new order.
func (s *orderService) saveDraft(ctx context.Context, order *entities.Order, draftID string) error {
	reused := false
	if _, err := uuid.Parse(draftID); err == nil {
		existing, err := s.orders.LockOrder(ctx, draftID)
		switch {
		case errors.Is(err, entities.ErrOrderNotFound):
		case err != nil:
			return err
		case existing.Status == entities.OrderStatusPending && existing.CheckoutSession == order.CheckoutSession:
			order.ID = existing.ID
			order.PlacedAt = existing.PlacedAt
			for i := range order.Lines {
				order.Lines[i].OrderID = existing.ID
			}
			if err := s.orders.UpdateDraft(ctx, *order); err != nil {
				return err
			}
			reused = true
		}
	}

	if !reused {
		if err := s.orders.CreateOrder(ctx, *order); err != nil {
			return err
		}
	}
	return s.orders.ReplaceLines(ctx, order.ID, order.Lines)
}

// afterConfirm runs the side effects of the first pending to confirmed
// transition. Failures are logged, the order stays confirmed.
func (s *orderService) afterConfirm(ctx context.Context, order entities.Order) {
	if order.CheckoutSession != "" {
		if err := s.carts.ClearCart(ctx, order.CheckoutSession); err != nil {
			s.logger.Error("failed to clear cart", slog.String("order_id", order.ID), slog.Any("error", err))
		}
	}

	confirmedAt := s.now()
	if order.ConfirmedAt != nil {
		confirmedAt = *order.ConfirmedAt
	}
	event := entities.OrderConfirmedEvent{
		EventID:     ulid.Make().String(),
		OrderID:     order.ID,
		Method:      order.PaymentMethod,
		Total:       order.Total,
		Currency:    order.Currency,
		CustomerID:  order.CustomerID,
		ConfirmedAt: confirmedAt,
	}
	if err := s.events.PublishOrderConfirmed(ctx, event); err != nil {
		s.logger.Error("failed to publish order confirmed", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	ordersConfirmed.WithLabelValues(string(order.PaymentMethod)).Inc()
}

// GetOrder serves the confirmation view. Only confirmed orders are cached.
func (s *orderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	if order, ok := s.cache.Get(id); ok {
		return order, nil
	}

	if _, err := uuid.Parse(id); err != nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrder(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if order.IsConfirmed() {
		s.cache.Set(id, order)
	}
	return order, nil
}
