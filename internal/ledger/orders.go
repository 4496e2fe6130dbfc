package ledger

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

func (c *Client) PlaceOrder(ctx context.Context, cred auth.Credential, req domain.OrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, cred, call{method: http.MethodPost, path: "/orders", in: req, out: &order}); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) VerifyOrderPayment(ctx context.Context, cred auth.Credential, v domain.PaymentVerification) (*domain.PaymentVerificationResult, error) {
	var result domain.PaymentVerificationResult
	if err := c.do(ctx, cred, call{method: http.MethodPost, path: "/orders/verify-payment", in: v, out: &result}); err != nil {
		return nil, err
	}
	return &result, nil
}
