package clients

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Auth", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}))
	defer server.Close()

	client := NewHTTPClient(time.Second)
	headers := http.Header{}
	headers.Set("Authorization", "Bearer token")

	status, body, respHeaders, err := client.Send(context.Background(), http.MethodPost, server.URL, headers, []byte(`{"amount":500}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, `{"amount":500}`, string(body))
	assert.Equal(t, http.MethodPost, respHeaders.Get("X-Method"))
	assert.Equal(t, "Bearer token", respHeaders.Get("X-Auth"))
}

func TestHTTPClient_SendDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	headers := http.Header{}
	status, body, _, err := NewHTTPClient(0).Send(context.Background(), http.MethodGet, server.URL, headers, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `[]`, string(body))
	assert.Empty(t, headers.Get("User-Agent"), "caller headers must not be modified")
}

func TestHTTPClient_SendTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("a"), maxResponseBody+1))
	}))
	defer server.Close()

	_, _, _, err := NewHTTPClient(time.Second).Send(context.Background(), http.MethodGet, server.URL, nil, nil)
	assert.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestHTTPClient_SendCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := NewHTTPClient(time.Second).Send(ctx, http.MethodGet, server.URL, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().
		Send(gomock.Any(), http.MethodGet, "http://ledger/api/royalties", gomock.Any(), gomock.Nil()).
		Return(0, nil, nil, errors.New("connection refused"))

	client := NewHTTPClient(time.Second)
	client.SetClient(mock)

	_, _, _, err := client.Send(context.Background(), http.MethodGet, "http://ledger/api/royalties", nil, nil)
	assert.EqualError(t, err, "connection refused")
}
