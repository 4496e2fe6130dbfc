package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

func (c *Client) Notifications(ctx context.Context, cred auth.Credential) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/notifications", out: &notifications}); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, cred auth.Credential, id string) error {
	return c.do(ctx, cred, call{method: http.MethodPatch, path: "/notifications/" + url.PathEscape(id) + "/read", in: struct{}{}})
}
