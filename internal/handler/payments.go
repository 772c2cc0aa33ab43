package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req service.CreateIntentRequest) (service.CreateIntentResult, error)
	Finalize(ctx context.Context, intentID string) (service.FinalizeResult, error)
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      PaymentService
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger.With(slog.String("handler", "payments")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Post("/payments", h.Payments)
}

// Payments is the payment backend function.
// @Summary      Create or finalize a payment
// @Description  action=create returns the client secret of a payment intent charging the stored order total.
// @Description  action=finalize verifies the intent with the gateway and confirms the order. It is idempotent.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      PaymentRequest  true  "Payment action"
// @Success      200      {object}  PaymentResponse
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Failure      409      {object}  PaymentErrorResponse
// @Failure      422      {object}  utils.ErrorResponse
// @Failure      502      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Payments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	paymentRequestsInProgress.Inc()
	defer paymentRequestsInProgress.Dec()

	var req PaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, "invalid payment request", utils.ValidationFields(err))
		return
	}

	status := http.StatusOK
	defer func() {
		paymentRequestTotal.WithLabelValues(req.Action, strconv.Itoa(status)).Inc()
		paymentRequestDuration.WithLabelValues(req.Action).Observe(time.Since(start).Seconds())
	}()

	ctx := r.Context()
	switch req.Action {
	case "create":
		result, err := h.svc.CreatePaymentIntent(ctx, service.CreateIntentRequest{
			OrderID:      req.OrderID,
			Currency:     req.Currency,
			ReceiptEmail: req.ReceiptEmail,
		})
		if err != nil {
			status = h.writeError(ctx, w, err, slog.String("order_id", req.OrderID))
			return
		}
		utils.WriteJSON(w, PaymentResponse{ClientSecret: result.ClientSecret}, status)

	case "finalize":
		result, err := h.svc.Finalize(ctx, req.PaymentIntentID)
		if err != nil {
			status = h.writeError(ctx, w, err, slog.String("intent_id", req.PaymentIntentID))
			return
		}
		utils.WriteJSON(w, PaymentResponse{OrderID: result.OrderID}, status)
	}
}

func (h *PaymentHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, attr slog.Attr) int {
	var (
		verr       *entities.ValidationError
		notSettled *entities.PaymentNotSettledError
	)

	switch {
	case errors.As(err, &verr):
		utils.WriteValidationError(w, verr.Reason, verr.Fields)
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrCurrencyMismatch):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrOrderNotFound), errors.Is(err, entities.ErrIntentUnknown):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return http.StatusNotFound
	case errors.As(err, &notSettled):
		utils.WriteJSON(w, PaymentErrorResponse{Error: err.Error(), PaymentStatus: notSettled.Status}, http.StatusConflict)
		return http.StatusConflict
	case errors.Is(err, entities.ErrDuplicatePayment):
		h.logger.ErrorContext(ctx, "second payment for a confirmed order", attr, slog.Any("error", err))
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return http.StatusConflict
	case errors.Is(err, entities.ErrOrderNotPending), errors.Is(err, entities.ErrIntentOrderMismatch):
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return http.StatusConflict
	case errors.Is(err, entities.ErrAmountMismatch):
		h.logger.ErrorContext(ctx, "payment amount mismatch", attr, slog.Any("error", err))
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrGateway):
		h.logger.ErrorContext(ctx, "payment gateway failed", attr, slog.Any("error", err))
		utils.WriteError(w, "payment gateway error", http.StatusBadGateway)
		return http.StatusBadGateway
	}

	h.logger.ErrorContext(ctx, "payment request failed", attr, slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	return http.StatusInternalServerError
}
