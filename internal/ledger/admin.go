package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

type roleUpdate struct {
	Role string `json:"role"`
}

func (c *Client) Users(ctx context.Context, cred auth.Credential) ([]domain.User, error) {
	users := []domain.User{}
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/admin/users", out: &users}); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) User(ctx context.Context, cred auth.Credential, id string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/admin/users/" + url.PathEscape(id), out: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, cred auth.Credential, id string, user domain.User) (*domain.User, error) {
	var updated domain.User
	if err := c.do(ctx, cred, call{method: http.MethodPut, path: "/admin/users/" + url.PathEscape(id), in: user, out: &updated}); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, cred auth.Credential, id string) error {
	return c.do(ctx, cred, call{method: http.MethodDelete, path: "/admin/users/" + url.PathEscape(id)})
}

func (c *Client) UpdateUserRole(ctx context.Context, cred auth.Credential, id, role string) (*domain.User, error) {
	var updated domain.User
	err := c.do(ctx, cred, call{
		method: http.MethodPatch,
		path:   "/admin/users/" + url.PathEscape(id) + "/role",
		in:     roleUpdate{Role: role},
		out:    &updated,
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UserStats(ctx context.Context, cred auth.Credential) (*domain.UserStats, error) {
	var stats domain.UserStats
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/admin/users/stats", out: &stats}); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) AdminBooks(ctx context.Context, cred auth.Credential) ([]domain.Book, error) {
	books := []domain.Book{}
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/admin/books", out: &books}); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) AdminUpdateBook(ctx context.Context, cred auth.Credential, id string, book domain.Book) (*domain.Book, error) {
	var updated domain.Book
	if err := c.do(ctx, cred, call{method: http.MethodPut, path: "/admin/books/" + url.PathEscape(id), in: book, out: &updated}); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminDeleteBook(ctx context.Context, cred auth.Credential, id string) error {
	return c.do(ctx, cred, call{method: http.MethodDelete, path: "/admin/books/" + url.PathEscape(id)})
}
