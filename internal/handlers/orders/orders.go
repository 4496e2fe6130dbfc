package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/dto"
	"github.com/GlebRadaev/authordash/internal/handlers/httperr"
	"github.com/GlebRadaev/authordash/internal/service/orderservice"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

type Service interface {
	Place(ctx context.Context, cred auth.Credential, req domain.OrderRequest) (*orderservice.Placement, error)
	VerifyPayment(ctx context.Context, cred auth.Credential, v domain.PaymentVerification) (*domain.PaymentVerificationResult, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder godoc
//
//	@Summary		Buy copies of an own book
//	@Description	Prices the order as book price times quantity. Wallet orders are compared with the wallet balance; a short balance adds a warning and the ledger decides.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OrderRequestDTO	true	"Order"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Rejected by the ledger"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Router			/api/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	order := req.ToDomain()
	p, err := h.orderService.Place(r.Context(), auth.CredentialFrom(r.Context()), order)
	if err != nil {
		if isInvalidOrder(err) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		httperr.Respond(w, err, orderservice.OrderFailedMessage)
		return
	}

	resp := dto.OrderResponseDTO{
		Order:   p.Order,
		Total:   p.Total,
		Balance: p.Balance,
		Warning: p.Warning,
	}
	if order.PaymentMethod == domain.PayFromWallet {
		resp.Message = orderservice.WalletSuccessMessage
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// VerifyPayment godoc
//
//	@Summary		Confirm a razorpay payment
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentVerificationDTO	true	"Checkout result"
//	@Success		200		{object}	utils.Response
//	@Failure		402		{object}	utils.Response	"Payment verification failed"
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Router			/api/orders/verify-payment [post]
func (h *OrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentVerificationDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	_, err := h.orderService.VerifyPayment(r.Context(), auth.CredentialFrom(r.Context()), req.ToDomain())
	switch {
	case errors.Is(err, orderservice.ErrPaymentNotVerified):
		utils.RespondWithError(w, http.StatusPaymentRequired, orderservice.VerificationFailedMessage)
	case errors.Is(err, orderservice.ErrIncompleteTransaction):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		httperr.Respond(w, err, orderservice.VerificationFailedMessage)
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: orderservice.PaymentSuccessMessage})
	}
}

func isInvalidOrder(err error) bool {
	return errors.Is(err, orderservice.ErrBookRequired) ||
		errors.Is(err, orderservice.ErrInvalidQuantity) ||
		errors.Is(err, orderservice.ErrInvalidPaymentMethod)
}
