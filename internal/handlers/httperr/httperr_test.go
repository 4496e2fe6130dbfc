package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/service/payoutservice"
	"github.com/GlebRadaev/authordash/internal/workflow"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        &payoutservice.ValidationError{Message: payoutservice.MinimumAmountMessage},
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    payoutservice.MinimumAmountMessage,
		},
		{
			name:       "in flight",
			err:        workflow.ErrSubmitInFlight,
			wantStatus: http.StatusConflict,
			wantMsg:    workflow.ErrSubmitInFlight.Error(),
		},
		{
			name:       "duplicate",
			err:        fmt.Errorf("journal: %w", domain.ErrDuplicateSubmission),
			wantStatus: http.StatusConflict,
			wantMsg:    "journal: " + domain.ErrDuplicateSubmission.Error(),
		},
		{
			name:       "no credential",
			err:        ledger.ErrNoCredential,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    UnauthorizedMessage,
		},
		{
			name:       "upstream 401",
			err:        &ledger.ServerError{Status: http.StatusUnauthorized, Message: "Token is not valid"},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    UnauthorizedMessage,
		},
		{
			name:       "upstream 403",
			err:        &ledger.ServerError{Status: http.StatusForbidden, Message: "Access denied"},
			wantStatus: http.StatusForbidden,
			wantMsg:    "Access denied",
		},
		{
			name:       "upstream 403 without message",
			err:        &ledger.ServerError{Status: http.StatusForbidden},
			wantStatus: http.StatusForbidden,
			wantMsg:    ForbiddenMessage,
		},
		{
			name:       "upstream 400 with message",
			err:        &ledger.ServerError{Status: http.StatusBadRequest, Message: "Insufficient balance"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Insufficient balance",
		},
		{
			name:       "upstream 500",
			err:        &ledger.ServerError{Status: http.StatusInternalServerError},
			wantStatus: http.StatusBadGateway,
			wantMsg:    "fallback",
		},
		{
			name:       "network",
			err:        &ledger.NetworkError{Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
			wantMsg:    "fallback",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    InternalMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Status(tt.err, "fallback")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	Respond(w, &ledger.ServerError{Status: http.StatusNotFound, Message: "Book not found"}, "fallback")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body utils.Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Book not found", body.Message)
}
