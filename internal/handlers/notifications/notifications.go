package notifications

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/dto"
	"github.com/GlebRadaev/authordash/internal/handlers/httperr"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

type Service interface {
	Feed(ctx context.Context, cred auth.Credential) (*domain.NotificationFeed, error)
	MarkRead(ctx context.Context, cred auth.Credential, id string) error
	MarkAllRead(ctx context.Context, cred auth.Credential) (int, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetNotifications godoc
//
//	@Summary		List notifications
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.NotificationFeed
//	@Router			/api/notifications [get]
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	feed, err := h.notificationService.Feed(r.Context(), auth.CredentialFrom(r.Context()))
	if err != nil {
		httperr.Respond(w, err, "Failed to fetch notifications")
		return
	}
	if feed.Notifications == nil {
		feed.Notifications = []domain.Notification{}
	}
	utils.RespondWithJSON(w, http.StatusOK, feed)
}

// MarkRead godoc
//
//	@Summary		Mark a notification read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204
//	@Router			/api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationService.MarkRead(r.Context(), auth.CredentialFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		httperr.Respond(w, err, "Failed to update notification")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// MarkAllRead godoc
//
//	@Summary		Mark all notifications read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MarkAllReadResponseDTO
//	@Router			/api/notifications/read [patch]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.notificationService.MarkAllRead(r.Context(), auth.CredentialFrom(r.Context()))
	if err != nil {
		httperr.Respond(w, err, "Failed to update notifications")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MarkAllReadResponseDTO{Marked: n})
}
