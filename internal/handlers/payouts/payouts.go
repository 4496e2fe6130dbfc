package payouts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/dto"
	"github.com/GlebRadaev/authordash/internal/handlers/httperr"
	"github.com/GlebRadaev/authordash/internal/service/payoutservice"
	"github.com/GlebRadaev/authordash/internal/workflow"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

type Sessions interface {
	Get(cred auth.Credential) *workflow.Controller
}

type PayoutHandler struct {
	sessions Sessions
}

func New(sessions Sessions) *PayoutHandler {
	return &PayoutHandler{
		sessions: sessions,
	}
}

func toDTO(s workflow.State) dto.PayoutStateDTO {
	payouts := s.Visible
	if payouts == nil {
		payouts = []domain.Payout{}
	}
	return dto.PayoutStateDTO{
		Phase:         string(s.Phase),
		Tab:           string(s.Tab),
		Balance:       s.Balance,
		BalanceLoaded: s.BalanceLoaded,
		Amount:        s.Amount,
		PaymentMethod: string(s.PaymentMethod),
		Filter:        s.Filter,
		Payouts:       payouts,
		Loading:       s.Loading,
		Error:         s.Error,
		Success:       s.Success,
		Warning:       s.Warning,
	}
}

func (h *PayoutHandler) controller(r *http.Request) *workflow.Controller {
	return h.sessions.Get(auth.CredentialFrom(r.Context()))
}

// GetState godoc
//
//	@Summary		Get payout page state
//	@Description	Current balance, form, filtered history and alerts of the caller's payout session.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PayoutStateDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/payouts/state [get]
func (h *PayoutHandler) GetState(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, toDTO(h.controller(r).Snapshot()))
}

// SwitchTab godoc
//
//	@Summary		Enter a payout tab
//	@Description	Refreshes the balance; entering the history tab also reloads the payout history.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TabRequestDTO	true	"Tab to enter"
//	@Success		200		{object}	dto.PayoutStateDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Unknown tab"
//	@Router			/api/payouts/tab [post]
func (h *PayoutHandler) SwitchTab(w http.ResponseWriter, r *http.Request) {
	var req dto.TabRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	state, err := h.controller(r).SwitchTab(r.Context(), workflow.Tab(req.Tab))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(state))
}

// RequestPayout godoc
//
//	@Summary		Request a payout
//	@Description	Submits a withdrawal of at least 10. On success the balance and history are refreshed and the amount is cleared; on failure the state carries the error and keeps the amount.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout request"
//	@Success		200		{object}	dto.PayoutStateDTO		"Payout request submitted"
//	@Failure		400		{object}	dto.PayoutStateDTO		"Rejected by the ledger"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		409		{object}	dto.PayoutStateDTO		"A payout request is already being submitted"
//	@Failure		422		{object}	dto.PayoutStateDTO		"Minimum payout amount is ₹10"
//	@Failure		502		{object}	dto.PayoutStateDTO		"Ledger unavailable"
//	@Router			/api/payouts/request [post]
func (h *PayoutHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	state, err := h.controller(r).Submit(r.Context(), string(req.Amount), domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		status, _ := httperr.Status(err, payoutservice.SubmitFailedMessage)
		if status == http.StatusUnauthorized {
			utils.RespondWithError(w, status, httperr.UnauthorizedMessage)
			return
		}
		if errors.Is(err, workflow.ErrSubmitInFlight) {
			state.Error = err.Error()
		}
		utils.RespondWithJSON(w, status, toDTO(state))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(state))
}

// GetHistory godoc
//
//	@Summary		Get payout history
//	@Description	Filters the fetched payout history by status (case-insensitive). "all" or no status returns the full list. The history is loaded first if the history tab was never entered.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"pending, approved, completed, rejected or all"
//	@Success		200		{object}	dto.PayoutStateDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/payouts/history [get]
func (h *PayoutHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	c := h.controller(r)
	if c.Snapshot().Tab != workflow.TabHistory {
		if _, err := c.SwitchTab(r.Context(), workflow.TabHistory); err != nil {
			httperr.Respond(w, err, payoutservice.HistoryFailedMessage)
			return
		}
	}
	state := c.SetFilter(r.URL.Query().Get("status"))
	utils.RespondWithJSON(w, http.StatusOK, toDTO(state))
}

// Dismiss godoc
//
//	@Summary		Dismiss payout alerts
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PayoutStateDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/payouts/dismiss [post]
func (h *PayoutHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, toDTO(h.controller(r).Dismiss()))
}
