package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/service/authservice"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

var cred = auth.NewCredential("token-1")

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withCred(r *http.Request) *http.Request {
	return r.WithContext(auth.WithCredential(r.Context(), cred))
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

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	reg := domain.Registration{Username: "rkapoor", Name: "Riya Kapoor", Email: "riya@example.com", Password: "secret123"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"rkapoor","name":"Riya Kapoor","email":"riya@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), reg).Return(&domain.Session{Token: "jwt-token"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User already exists",
			body: `{"username":"rkapoor","name":"Riya Kapoor","email":"riya@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), reg).
					Return(nil, &ledger.ServerError{Status: http.StatusBadRequest, Message: "User already exists"})
			},
			expectedCode:  http.StatusConflict,
			expectedError: "User already exists",
		},
		{
			name: "Ledger unavailable",
			body: `{"username":"rkapoor","name":"Riya Kapoor","email":"riya@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), reg).Return(nil, &ledger.NetworkError{Err: errors.New("refused")})
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "Registration failed",
		},
		{
			name:          "Short password",
			body:          `{"username":"rkapoor","name":"Riya Kapoor","email":"riya@example.com","password":"123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "password must satisfy min=6",
		},
		{
			name:          "Invalid request body",
			body:          `{"username":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer jwt-token", w.Header().Get("Authorization"))
			}
			assertError(t, w, tt.expectedError)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	creds := domain.Credentials{Email: "riya@example.com", Password: "secret123"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"riya@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), creds).
					Return(&domain.Session{Token: "jwt-token", User: &domain.Profile{Email: creds.Email}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"riya@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), creds).
					Return(nil, &ledger.ServerError{Status: http.StatusBadRequest, Message: "Invalid credentials"})
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Ledger returned no token",
			body: `{"email":"riya@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), creds).Return(nil, authservice.ErrNoToken)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Bad email",
			body:          `{"email":"riya","password":"secret123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "email must be a valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			assertError(t, w, tt.expectedError)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Logout(gomock.Any(), cred).Times(1)

	r := withCred(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	w := httptest.NewRecorder()
	handler.Logout(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestProfileHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Profile(gomock.Any(), cred).Return(&domain.Profile{Name: "Riya"}, nil)
	w := httptest.NewRecorder()
	handler.GetProfile(w, withCred(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().Profile(gomock.Any(), cred).Return(nil, ledger.ErrCredentialExpired)
	w = httptest.NewRecorder()
	handler.GetProfile(w, withCred(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	update := domain.ProfileUpdate{Name: "Riya K", PhoneNumber: "9876543210", Details: domain.ProfileDetails{Bio: "Poet"}}
	service.EXPECT().UpdateProfile(gomock.Any(), cred, update).Return(&domain.Profile{Name: "Riya K"}, nil)
	w = httptest.NewRecorder()
	body := `{"name":"Riya K","phoneNumber":"9876543210","bio":"Poet"}`
	handler.UpdateProfile(w, withCred(httptest.NewRequest(http.MethodPut, "/api/auth/profile", bytes.NewBufferString(body))))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.UpdateProfile(w, withCred(httptest.NewRequest(http.MethodPut, "/api/auth/profile", bytes.NewBufferString(`{"name":""}`))))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRequestKYCUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Bank update requested",
			body: `{"accountNumber":"123456789012","ifscCode":"SBIN0001234","bankName":"SBI"}`,
			prepareMock: func() {
				service.EXPECT().RequestKYCUpdate(gomock.Any(), cred, domain.KYCUpdate{
					BankAccount: domain.BankAccount{AccountNumber: "123456789012", IFSCCode: "SBIN0001234", BankName: "SBI"},
				}).Return(nil)
			},
			expectedCode:  http.StatusAccepted,
			expectedError: "KYC update request submitted for review",
		},
		{
			name: "Nothing to update",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().RequestKYCUpdate(gomock.Any(), cred, domain.KYCUpdate{}).Return(authservice.ErrEmptyKYCUpdate)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: authservice.ErrEmptyKYCUpdate.Error(),
		},
		{
			name:          "Bad Aadhaar",
			body:          `{"aadhaarNumber":"12"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "aadhaarNumber must satisfy len=12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/kyc", bytes.NewBufferString(tt.body))
			r = r.WithContext(auth.WithCredential(context.Background(), cred))
			w := httptest.NewRecorder()
			handler.RequestKYCUpdate(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			assertError(t, w, tt.expectedError)
		})
	}
}
