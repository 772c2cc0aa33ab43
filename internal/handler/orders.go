package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderGetter interface {
	GetOrder(ctx context.Context, id string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderGetter
}

func NewOrderHandler(logger *slog.Logger, svc OrderGetter) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Get("/order-confirmation/{orderId}", h.GetConfirmation)
}

// GetConfirmation returns the order confirmation view.
// @Summary      Order confirmation
// @Description  Returns the order placed by checkout. The method query parameter is informational.
// @Tags         orders
// @Produce      json
// @Param        orderId  path      string  true   "Order id"
// @Param        method   query     string  false  "card or terms"
// @Success      200      {object}  OrderConfirmation
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /order-confirmation/{orderId} [get]
func (h *OrderHandler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, "invalid order id", map[string]string{"orderId": "uuid"})
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
