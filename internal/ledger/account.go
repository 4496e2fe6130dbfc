package ledger

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	var session domain.Session
	err := c.do(ctx, auth.Credential{}, call{method: http.MethodPost, path: "/auth/login", in: creds, out: &session, public: true})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	var session domain.Session
	err := c.do(ctx, auth.Credential{}, call{method: http.MethodPost, path: "/auth/register", in: reg, out: &session, public: true})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Profile returns the author profile, including the withdrawable wallet balance.
func (c *Client) Profile(ctx context.Context, cred auth.Credential) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/auth/profile", out: &profile}); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, cred auth.Credential, update domain.ProfileUpdate) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, cred, call{method: http.MethodPut, path: "/auth/profile", in: update, out: &profile}); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) RequestKYCUpdate(ctx context.Context, cred auth.Credential, update domain.KYCUpdate) error {
	return c.do(ctx, cred, call{method: http.MethodPost, path: "/auth/kyc/update-request", in: update})
}
