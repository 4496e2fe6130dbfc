// Package httperr maps ledger and workflow errors onto BFF responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/service/payoutservice"
	"github.com/GlebRadaev/authordash/internal/workflow"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

const (
	UnauthorizedMessage = "Unauthorized"
	ForbiddenMessage    = "Forbidden"
	InternalMessage     = "Internal server error"
)

// Status returns the HTTP status and user-facing message for err. fallback
// replaces messages the user should not see verbatim.
func Status(err error, fallback string) (int, string) {
	var (
		vErr   *payoutservice.ValidationError
		srvErr *ledger.ServerError
		netErr *ledger.NetworkError
	)
	switch {
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity, vErr.Message
	case errors.Is(err, workflow.ErrSubmitInFlight), errors.Is(err, domain.ErrDuplicateSubmission):
		return http.StatusConflict, err.Error()
	case errors.As(err, &srvErr) && srvErr.Status == http.StatusForbidden:
		// a valid token without the right role
		return http.StatusForbidden, ledger.UserMessage(err, ForbiddenMessage)
	case ledger.IsAuth(err):
		return http.StatusUnauthorized, UnauthorizedMessage
	case errors.As(err, &srvErr):
		status := srvErr.Status
		if status >= http.StatusInternalServerError || status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return status, ledger.UserMessage(err, fallback)
	case errors.As(err, &netErr):
		return http.StatusBadGateway, fallback
	}
	return http.StatusInternalServerError, InternalMessage
}

func Respond(w http.ResponseWriter, err error, fallback string) {
	status, msg := Status(err, fallback)
	utils.RespondWithError(w, status, msg)
}
