package books

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

var cred = auth.NewCredential("token-1")

func NewMock(t *testing.T) (*BookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, id, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx := auth.WithCredential(r.Context(), cred)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if expected == "" {
		return
	}
	var resp utils.Response
	_ = json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, expected, resp.Message)
}

func TestGetBooks(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedBody  string
		expectedError string
	}{
		{
			name: "Books listed",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), cred).Return([]domain.Book{{ID: "b1", Title: "Monsoon Letters"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No books",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), cred).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "[]\n",
		},
		{
			name: "Token rejected",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), cred).Return(nil, &ledger.ServerError{Status: http.StatusUnauthorized})
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.GetBooks(w, newRequest(http.MethodGet, "/api/books", "", ""))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			assertError(t, w, tt.expectedError)
		})
	}
}

func TestGetBook(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Book found",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), cred, "b1").Return(&domain.Book{ID: "b1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Book not found",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), cred, "b1").
					Return(nil, &ledger.ServerError{Status: http.StatusNotFound, Message: "Book not found"})
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Book not found",
		},
		{
			name: "Ledger unreachable",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), cred, "b1").Return(nil, &ledger.NetworkError{Err: errors.New("timeout")})
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "Failed to fetch book",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.GetBook(w, newRequest(http.MethodGet, "/api/books/b1", "b1", ""))
			assert.Equal(t, tt.expectedCode, w.Code)
			assertError(t, w, tt.expectedError)
		})
	}
}

func TestCreateBook(t *testing.T) {
	handler, service := NewMock(t)
	book := domain.Book{Title: "Monsoon Letters", Price: decimal.NewFromInt(299), Stock: 40, Category: "Fiction"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Book created",
			body: `{"title":"Monsoon Letters","price":299,"stock":40,"category":"Fiction"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), cred, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ auth.Credential, got domain.Book) (*domain.Book, error) {
						assert.Equal(t, book.Title, got.Title)
						assert.True(t, book.Price.Equal(got.Price))
						got.ID = "b1"
						return &got, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing title",
			body:          `{"price":299,"stock":40}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "title is required",
		},
		{
			name:          "Negative price",
			body:          `{"title":"Monsoon Letters","price":-1}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "price must not be negative",
		},
		{
			name:          "Invalid request body",
			body:          `{"title":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateBook(w, newRequest(http.MethodPost, "/api/books", "", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var created domain.Book
				require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
				assert.Equal(t, "b1", created.ID)
			}
			assertError(t, w, tt.expectedError)
		})
	}
}

func TestUpdateBook(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), cred, "b1", gomock.Any()).Return(&domain.Book{ID: "b1", Title: "Monsoon Letters"}, nil)

	w := httptest.NewRecorder()
	handler.UpdateBook(w, newRequest(http.MethodPut, "/api/books/b1", "b1", `{"title":"Monsoon Letters","price":199}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteBook(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Book deleted",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), cred, "b1").Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Ledger failure",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), cred, "b1").Return(&ledger.ServerError{Status: http.StatusInternalServerError})
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "Failed to delete book",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.DeleteBook(w, newRequest(http.MethodDelete, "/api/books/b1", "b1", ""))
			assert.Equal(t, tt.expectedCode, w.Code)
			assertError(t, w, tt.expectedError)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Dashboard(gomock.Any(), cred).Return(&domain.DashboardStats{TotalBooks: 3, CopiesSold: 120}, nil)

	w := httptest.NewRecorder()
	handler.GetDashboard(w, newRequest(http.MethodGet, "/api/books/dashboard", "", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var stats domain.DashboardStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	assert.Equal(t, 3, stats.TotalBooks)
	assert.Equal(t, 120, stats.CopiesSold)
}
