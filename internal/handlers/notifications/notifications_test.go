package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/dto"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

var cred = auth.NewCredential("token-1")

func NewMock(t *testing.T) (*NotificationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, id string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := auth.WithCredential(r.Context(), cred)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestGetNotifications(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedFeed domain.NotificationFeed
	}{
		{
			name: "Feed with unread",
			prepareMock: func() {
				service.EXPECT().Feed(gomock.Any(), cred).Return(&domain.NotificationFeed{
					Notifications: []domain.Notification{{ID: "n1", Message: "Payout approved"}},
					Unread:        1,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedFeed: domain.NotificationFeed{
				Notifications: []domain.Notification{{ID: "n1", Message: "Payout approved"}},
				Unread:        1,
			},
		},
		{
			name: "Empty feed",
			prepareMock: func() {
				service.EXPECT().Feed(gomock.Any(), cred).Return(&domain.NotificationFeed{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedFeed: domain.NotificationFeed{Notifications: []domain.Notification{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.GetNotifications(w, newRequest(http.MethodGet, "/api/notifications", ""))
			assert.Equal(t, tt.expectedCode, w.Code)

			var feed domain.NotificationFeed
			require.NoError(t, json.NewDecoder(w.Body).Decode(&feed))
			assert.Equal(t, tt.expectedFeed.Unread, feed.Unread)
			assert.Len(t, feed.Notifications, len(tt.expectedFeed.Notifications))
			assert.NotNil(t, feed.Notifications)
		})
	}
}

func TestGetNotifications_Unauthorized(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Feed(gomock.Any(), cred).Return(nil, &ledger.ServerError{Status: http.StatusUnauthorized, Message: "jwt expired"})

	w := httptest.NewRecorder()
	handler.GetNotifications(w, newRequest(http.MethodGet, "/api/notifications", ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMarkRead(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Marked",
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), cred, "n1").Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Not found",
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), cred, "n1").
					Return(&ledger.ServerError{Status: http.StatusNotFound, Message: "Notification not found"})
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.MarkRead(w, newRequest(http.MethodPatch, "/api/notifications/n1/read", "n1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().MarkAllRead(gomock.Any(), cred).Return(3, nil)

	w := httptest.NewRecorder()
	handler.MarkAllRead(w, newRequest(http.MethodPatch, "/api/notifications/read", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MarkAllReadResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 3, resp.Marked)
}
