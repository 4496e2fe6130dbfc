package books

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/dto"
	"github.com/GlebRadaev/authordash/internal/handlers/httperr"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

type Service interface {
	List(ctx context.Context, cred auth.Credential) ([]domain.Book, error)
	Get(ctx context.Context, cred auth.Credential, id string) (*domain.Book, error)
	Create(ctx context.Context, cred auth.Credential, book domain.Book) (*domain.Book, error)
	Update(ctx context.Context, cred auth.Credential, id string, book domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, cred auth.Credential, id string) error
	Dashboard(ctx context.Context, cred auth.Credential) (*domain.DashboardStats, error)
}

type BookHandler struct {
	bookService Service
}

func New(bookService Service) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

func decodeBook(w http.ResponseWriter, r *http.Request) (domain.Book, bool) {
	var req dto.BookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return domain.Book{}, false
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return domain.Book{}, false
	}
	return req.ToDomain(), true
}

// GetBooks godoc
//
//	@Summary		List the author's books
//	@Tags			Books
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Book
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/books [get]
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.List(r.Context(), auth.CredentialFrom(r.Context()))
	if err != nil {
		httperr.Respond(w, err, "Failed to fetch books")
		return
	}
	if books == nil {
		books = []domain.Book{}
	}
	utils.RespondWithJSON(w, http.StatusOK, books)
}

// GetBook godoc
//
//	@Summary		Get a book
//	@Tags			Books
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Book ID"
//	@Success		200	{object}	domain.Book
//	@Failure		404	{object}	utils.Response	"Book not found"
//	@Router			/api/books/{id} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.bookService.Get(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Respond(w, err, "Failed to fetch book")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, book)
}

// CreateBook godoc
//
//	@Summary		Add a book
//	@Tags			Books
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BookRequestDTO	true	"Book"
//	@Success		201		{object}	domain.Book
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Router			/api/books [post]
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	book, ok := decodeBook(w, r)
	if !ok {
		return
	}
	created, err := h.bookService.Create(r.Context(), auth.CredentialFrom(r.Context()), book)
	if err != nil {
		httperr.Respond(w, err, "Failed to create book")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// UpdateBook godoc
//
//	@Summary		Update a book
//	@Tags			Books
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Book ID"
//	@Param			request	body		dto.BookRequestDTO	true	"Book"
//	@Success		200		{object}	domain.Book
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Router			/api/books/{id} [put]
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	book, ok := decodeBook(w, r)
	if !ok {
		return
	}
	updated, err := h.bookService.Update(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id"), book)
	if err != nil {
		httperr.Respond(w, err, "Failed to update book")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteBook godoc
//
//	@Summary		Delete a book
//	@Tags			Books
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Book ID"
//	@Success		204
//	@Router			/api/books/{id} [delete]
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.bookService.Delete(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		httperr.Respond(w, err, "Failed to delete book")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetDashboard godoc
//
//	@Summary		Author dashboard statistics
//	@Tags			Books
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.DashboardStats
//	@Router			/api/books/dashboard [get]
func (h *BookHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bookService.Dashboard(r.Context(), auth.CredentialFrom(r.Context()))
	if err != nil {
		httperr.Respond(w, err, "Failed to fetch dashboard")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
