package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/dto"
	"github.com/GlebRadaev/authordash/internal/handlers/httperr"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/service/authservice"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.Session, error)
	Logout(ctx context.Context, cred auth.Credential)
	Profile(ctx context.Context, cred auth.Credential) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, cred auth.Credential, update domain.ProfileUpdate) (*domain.Profile, error)
	RequestKYCUpdate(ctx context.Context, cred auth.Credential, update domain.KYCUpdate) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// rejected reports a 4xx answer of the ledger to a public auth call.
func rejected(err error) bool {
	var srvErr *ledger.ServerError
	return errors.As(err, &srvErr) && srvErr.Status >= 400 && srvErr.Status < 500
}

// Register godoc
//
//	@Summary		Register a new author
//	@Description	Create an account on the ledger and return its session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Failure		502		{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	session, err := h.authService.Register(r.Context(), domain.Registration{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if rejected(err) {
			utils.RespondWithError(w, http.StatusConflict, ledger.UserMessage(err, "Registration failed"))
			return
		}
		httperr.Respond(w, err, "Registration failed")
		return
	}
	w.Header().Set("Authorization", "Bearer "+session.Token)
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		Message: "User successfully registered",
		Token:   session.Token,
		User:    session.User,
	})
}

// Login godoc
//
//	@Summary		Authenticate author
//	@Description	Log in on the ledger and get a JWT session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		502		{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	session, err := h.authService.Login(r.Context(), domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		if rejected(err) {
			utils.RespondWithError(w, http.StatusUnauthorized, ledger.UserMessage(err, "Invalid credentials"))
			return
		}
		httperr.Respond(w, err, "Login failed")
		return
	}
	w.Header().Set("Authorization", "Bearer "+session.Token)
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		Message: "User successfully authenticated",
		Token:   session.Token,
		User:    session.User,
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Forget the caller's payout session
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context(), auth.CredentialFrom(r.Context()))
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.Profile
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.authService.Profile(r.Context(), auth.CredentialFrom(r.Context()))
	if err != nil {
		httperr.Respond(w, err, "Failed to fetch profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// UpdateProfile godoc
//
//	@Summary		Update profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProfileUpdateRequestDTO	true	"Profile fields"
//	@Success		200		{object}	domain.Profile
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Router			/api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	profile, err := h.authService.UpdateProfile(r.Context(), auth.CredentialFrom(r.Context()), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err, "Failed to update profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// RequestKYCUpdate godoc
//
//	@Summary		Request KYC or bank update
//	@Description	File a change of bank account or KYC details for admin review
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.KYCUpdateRequestDTO	true	"KYC and bank fields"
//	@Success		202		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Router			/api/auth/kyc [post]
func (h *AuthHandler) RequestKYCUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.KYCUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	err := h.authService.RequestKYCUpdate(r.Context(), auth.CredentialFrom(r.Context()), req.ToDomain())
	if err != nil {
		if errors.Is(err, authservice.ErrEmptyKYCUpdate) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		httperr.Respond(w, err, "Failed to request KYC update")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, utils.Response{Message: "KYC update request submitted for review"})
}
