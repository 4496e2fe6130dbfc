package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/dto"
	"github.com/GlebRadaev/authordash/internal/handlers/httperr"
	"github.com/GlebRadaev/authordash/internal/service/adminservice"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

type Service interface {
	Users(ctx context.Context, cred auth.Credential) ([]domain.User, error)
	User(ctx context.Context, cred auth.Credential, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, cred auth.Credential, id string, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, cred auth.Credential, id string) error
	ChangeRole(ctx context.Context, cred auth.Credential, id, role string) (*domain.User, error)
	UserStats(ctx context.Context, cred auth.Credential) (*domain.UserStats, error)
	Books(ctx context.Context, cred auth.Credential) ([]domain.Book, error)
	UpdateBook(ctx context.Context, cred auth.Credential, id string, book domain.Book) (*domain.Book, error)
	DeleteBook(ctx context.Context, cred auth.Credential, id string) error
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func respond(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, adminservice.ErrInvalidRole) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	httperr.Respond(w, err, fallback)
}

// GetUsers godoc
//
//	@Summary		List users
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.User
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.Users(r.Context(), auth.CredentialFrom(r.Context()))
	if err != nil {
		respond(w, err, "Failed to fetch users")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GetUser godoc
//
//	@Summary		Get a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	domain.User
//	@Router			/api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.adminService.User(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, err, "Failed to fetch user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateUser godoc
//
//	@Summary		Update a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		dto.UserUpdateRequestDTO	true	"User fields"
//	@Success		200		{object}	domain.User
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Router			/api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	user, err := h.adminService.UpdateUser(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id"), req.ToDomain())
	if err != nil {
		respond(w, err, "Failed to update user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204
//	@Router			/api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteUser(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		respond(w, err, "Failed to delete user")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// ChangeRole godoc
//
//	@Summary		Change a user's role
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"User ID"
//	@Param			request	body		dto.RoleRequestDTO	true	"New role"
//	@Success		200		{object}	domain.User
//	@Failure		422		{object}	utils.Response	"Invalid role"
//	@Router			/api/admin/users/{id}/role [patch]
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req dto.RoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	user, err := h.adminService.ChangeRole(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id"), req.Role)
	if err != nil {
		respond(w, err, "Failed to change role")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// GetUserStats godoc
//
//	@Summary		User statistics
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.UserStats
//	@Router			/api/admin/users/stats [get]
func (h *AdminHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.UserStats(r.Context(), auth.CredentialFrom(r.Context()))
	if err != nil {
		respond(w, err, "Failed to fetch user stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// GetBooks godoc
//
//	@Summary		List all books
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	domain.Book
//	@Router			/api/admin/books [get]
func (h *AdminHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.adminService.Books(r.Context(), auth.CredentialFrom(r.Context()))
	if err != nil {
		respond(w, err, "Failed to fetch books")
		return
	}
	if books == nil {
		books = []domain.Book{}
	}
	utils.RespondWithJSON(w, http.StatusOK, books)
}

// UpdateBook godoc
//
//	@Summary		Update any book
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Book ID"
//	@Param			request	body		dto.BookRequestDTO	true	"Book"
//	@Success		200		{object}	domain.Book
//	@Router			/api/admin/books/{id} [put]
func (h *AdminHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var req dto.BookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	book, err := h.adminService.UpdateBook(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id"), req.ToDomain())
	if err != nil {
		respond(w, err, "Failed to update book")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, book)
}

// DeleteBook godoc
//
//	@Summary		Delete any book
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Book ID"
//	@Success		204
//	@Router			/api/admin/books/{id} [delete]
func (h *AdminHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteBook(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		respond(w, err, "Failed to delete book")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
