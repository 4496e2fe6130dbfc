package ledger

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

const IdempotencyHeader = "Idempotency-Key"

type royaltyRequest struct {
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

// Royalties lists every payout record of the caller in server order.
func (c *Client) Royalties(ctx context.Context, cred auth.Credential) ([]domain.Payout, error) {
	var payouts []domain.Payout
	err := c.do(ctx, cred, call{method: http.MethodGet, path: "/royalties", out: &payouts})
	if err != nil {
		return nil, err
	}
	if payouts == nil {
		payouts = []domain.Payout{}
	}
	return payouts, nil
}

// RequestRoyalty creates a payout request. The key is sent as Idempotency-Key
// so a ledger that honours it can collapse repeated submissions.
func (c *Client) RequestRoyalty(ctx context.Context, cred auth.Credential, key string, amount decimal.Decimal, method domain.PaymentMethod) (*domain.Payout, error) {
	headers := http.Header{}
	if key != "" {
		headers.Set(IdempotencyHeader, key)
	}

	var payout domain.Payout
	err := c.do(ctx, cred, call{
		method:  http.MethodPost,
		path:    "/royalties/request",
		in:      royaltyRequest{Amount: amount, PaymentMethod: method},
		out:     &payout,
		headers: headers,
	})
	if err != nil {
		return nil, err
	}
	return &payout, nil
}
