package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoCredential      = errors.New("no session token")
	ErrCredentialExpired = errors.New("session token expired")
	ErrUnauthorized      = errors.New("ledger rejected session token")
)

// ServerError is a non-2xx answer from the ledger.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("ledger responded with status %d", e.Status)
}

func (e *ServerError) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

// NetworkError means the request never got an answer from the ledger.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "ledger unreachable: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsAuth(err error) bool {
	return errors.Is(err, ErrNoCredential) ||
		errors.Is(err, ErrCredentialExpired) ||
		errors.Is(err, ErrUnauthorized)
}

// UserMessage turns err into the text shown to the author. Only a message the
// ledger put in its error body is forwarded; everything else becomes fallback.
func UserMessage(err error, fallback string) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}
	return fallback
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newServerError(status int, body []byte) *ServerError {
	var eb errorBody
	if len(body) > 0 {
		_ = json.Unmarshal(body, &eb)
	}
	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	return &ServerError{Status: status, Message: msg}
}
