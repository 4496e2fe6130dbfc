package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/clients"
)

func init() {
	// the ledger speaks JSON numbers for money
	decimal.MarshalJSONWithoutQuotes = true
}

// Client talks to the publishing platform API that owns balances, payouts,
// books and users.
type Client struct {
	baseURL string
	client  clients.HTTPClientI
	jwt     auth.JWTServiceInterface
	now     func() time.Time
}

func New(baseURL string, client clients.HTTPClientI, jwt auth.JWTServiceInterface) *Client {
	return &Client{
		baseURL: baseURL,
		client:  client,
		jwt:     jwt,
		now:     time.Now,
	}
}

type call struct {
	method  string
	path    string
	in      interface{}
	out     interface{}
	headers http.Header
	public  bool
}

func (c *Client) do(ctx context.Context, cred auth.Credential, req call) error {
	headers := http.Header{}
	for k, v := range req.headers {
		headers[k] = v
	}
	headers.Set("Accept", "application/json")

	if !req.public {
		if cred.Empty() {
			return ErrNoCredential
		}
		if c.jwt != nil && c.jwt.Expired(cred.Token, c.now()) {
			return ErrCredentialExpired
		}
		headers.Set("Authorization", cred.Bearer())
	}

	var body []byte
	if req.in != nil {
		var err error
		body, err = json.Marshal(req.in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", req.method, req.path, err)
		}
		headers.Set("Content-Type", "application/json")
	}

	status, respBody, _, err := c.client.Send(ctx, req.method, c.baseURL+req.path, headers, body)
	if err != nil {
		zap.L().Error("ledger request failed",
			zap.String("method", req.method), zap.String("path", req.path), zap.Error(err))
		return &NetworkError{Err: err}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		serverErr := newServerError(status, respBody)
		zap.L().Warn("ledger returned error",
			zap.String("method", req.method), zap.String("path", req.path),
			zap.Int("status", status), zap.String("message", serverErr.Message))
		return serverErr
	}

	if req.out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, req.out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.method, req.path, err)
	}
	return nil
}
