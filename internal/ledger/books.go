package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

func (c *Client) Books(ctx context.Context, cred auth.Credential) ([]domain.Book, error) {
	books := []domain.Book{}
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/books", out: &books}); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) Book(ctx context.Context, cred auth.Credential, id string) (*domain.Book, error) {
	var book domain.Book
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/books/" + url.PathEscape(id), out: &book}); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) CreateBook(ctx context.Context, cred auth.Credential, book domain.Book) (*domain.Book, error) {
	var created domain.Book
	if err := c.do(ctx, cred, call{method: http.MethodPost, path: "/books", in: book, out: &created}); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBook(ctx context.Context, cred auth.Credential, id string, book domain.Book) (*domain.Book, error) {
	var updated domain.Book
	if err := c.do(ctx, cred, call{method: http.MethodPut, path: "/books/" + url.PathEscape(id), in: book, out: &updated}); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBook(ctx context.Context, cred auth.Credential, id string) error {
	return c.do(ctx, cred, call{method: http.MethodDelete, path: "/books/" + url.PathEscape(id)})
}

func (c *Client) DashboardStats(ctx context.Context, cred auth.Credential) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.do(ctx, cred, call{method: http.MethodGet, path: "/books/dashboard", out: &stats}); err != nil {
		return nil, err
	}
	return &stats, nil
}
