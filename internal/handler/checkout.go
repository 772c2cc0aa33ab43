package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/checkout-service/internal/checkout"
	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutFlow interface {
	Load(ctx context.Context, sess entities.Session) (checkout.View, error)
	Submit(ctx context.Context, sess entities.Session, nav checkout.Navigator, in service.DraftInput) (checkout.View, error)
	HandleOutcome(ctx context.Context, sess entities.Session, nav checkout.Navigator, outcome checkout.Outcome) (checkout.View, error)
	HandleReturn(ctx context.Context, sess entities.Session, nav checkout.Navigator, params checkout.ReturnParams) (checkout.View, error)
	Back(ctx context.Context, sess entities.Session) (checkout.View, error)
	RetryIntent(ctx context.Context, sess entities.Session) (checkout.View, error)
}

type CheckoutHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	flow     CheckoutFlow
	currency string
}

func NewCheckoutHandler(logger *slog.Logger, flow CheckoutFlow, currency string) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger.With(slog.String("handler", "checkout")),
		validate: validator.New(),
		flow:     flow,
		currency: currency,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Route("/checkout", func(r chi.Router) {
		r.Get("/", h.Load)
		r.Post("/details", h.SubmitDetails)
		r.Post("/payment/outcome", h.PaymentOutcome)
		r.Post("/payment/back", h.Back)
		r.Post("/payment/retry", h.RetryIntent)
		r.Get("/return", h.Return)
	})
}

// Load returns the current checkout step.
// @Summary      Load checkout
// @Description  Resumes a pending card payment if there is one, otherwise shows the details form or an empty cart
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  CheckoutView
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /checkout [get]
func (h *CheckoutHandler) Load(w http.ResponseWriter, r *http.Request) {
	view, err := h.flow.Load(r.Context(), middleware.SessionFrom(r.Context()))
	h.respond(w, r, nil, view, err)
}

// SubmitDetails places the order.
// @Summary      Submit checkout details
// @Description  Creates or updates the pending order. Net terms orders are confirmed immediately.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      DetailsRequest  true  "Checkout details"
// @Success      200      {object}  CheckoutView
// @Failure      400      {object}  utils.ErrorResponse
// @Failure      409      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /checkout/details [post]
func (h *CheckoutHandler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	var req DetailsRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	nav := newNavigator(w)
	view, err := h.flow.Submit(r.Context(), middleware.SessionFrom(r.Context()), nav, DetailsJSONToInput(req))
	h.respond(w, r, nav, view, err)
}

// PaymentOutcome handles the result of the embedded card form.
// @Summary      Report payment outcome
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      OutcomeRequest  true  "Card form outcome"
// @Success      200      {object}  CheckoutView
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      409      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /checkout/payment/outcome [post]
func (h *CheckoutHandler) PaymentOutcome(w http.ResponseWriter, r *http.Request) {
	var req OutcomeRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, "invalid payment outcome", utils.ValidationFields(err))
		return
	}

	nav := newNavigator(w)
	view, err := h.flow.HandleOutcome(r.Context(), middleware.SessionFrom(r.Context()), nav, OutcomeJSONToEntity(req))
	h.respond(w, r, nav, view, err)
}

// Back returns to the details form, the order stays pending.
// @Summary      Back to details
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  CheckoutView
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/payment/back [post]
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.flow.Back(r.Context(), middleware.SessionFrom(r.Context()))
	h.respond(w, r, nil, view, err)
}

// RetryIntent creates the payment intent again after a failure.
// @Summary      Retry payment intent
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  CheckoutView
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/payment/retry [post]
func (h *CheckoutHandler) RetryIntent(w http.ResponseWriter, r *http.Request) {
	view, err := h.flow.RetryIntent(r.Context(), middleware.SessionFrom(r.Context()))
	h.respond(w, r, nil, view, err)
}

// Return handles the browser coming back from a hosted payment page.
// @Summary      Gateway return URL
// @Tags         checkout
// @Produce      json
// @Param        payment_intent   query     string  false  "Payment intent id"
// @Param        redirect_status  query     string  false  "Gateway status"
// @Param        success          query     bool    false  "Legacy success flag"
// @Success      200              {object}  CheckoutView
// @Success      303              {string}  string  "Redirect to the order confirmation"
// @Router       /checkout/return [get]
func (h *CheckoutHandler) Return(w http.ResponseWriter, r *http.Request) {
	params := checkout.ParseReturnParams(r.URL.Query().Get)

	nav := newNavigator(w)
	view, err := h.flow.HandleReturn(r.Context(), middleware.SessionFrom(r.Context()), nav, params)
	h.respond(w, r, nav, view, err)
}

func (h *CheckoutHandler) respond(w http.ResponseWriter, r *http.Request, nav *navigator, view checkout.View, err error) {
	ctx := r.Context()

	switch {
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, "checkout is not in a state that allows this action", http.StatusConflict)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "checkout action failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// A full page navigation cannot follow HX-Redirect.
	if nav != nil && nav.redirect != "" && r.Header.Get("HX-Request") == "" && r.Method == http.MethodGet {
		http.Redirect(w, r, nav.redirect, http.StatusSeeOther)
		return
	}
	utils.WriteJSON(w, ViewEntityToJSON(view, h.currency), http.StatusOK)
}

// navigator drives the browser through htmx response headers.
type navigator struct {
	w        http.ResponseWriter
	redirect string
}

func newNavigator(w http.ResponseWriter) *navigator {
	return &navigator{w: w}
}

func (n *navigator) RedirectTo(url string) {
	n.redirect = url
	n.w.Header().Set("HX-Redirect", url)
}

func (n *navigator) ReplaceURL(url string) {
	n.w.Header().Set("HX-Replace-Url", url)
}
