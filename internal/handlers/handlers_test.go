package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/GlebRadaev/authordash/docs"
	"github.com/GlebRadaev/authordash/internal/handlers/admin"
	"github.com/GlebRadaev/authordash/internal/handlers/auth"
	"github.com/GlebRadaev/authordash/internal/handlers/books"
	"github.com/GlebRadaev/authordash/internal/handlers/notifications"
	"github.com/GlebRadaev/authordash/internal/handlers/orders"
	"github.com/GlebRadaev/authordash/internal/handlers/payouts"
	"github.com/GlebRadaev/authordash/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         auth.NewMockService(ctrl),
		PayoutSessions:      payouts.NewMockSessions(ctrl),
		BookService:         books.NewMockService(ctrl),
		AdminService:        admin.NewMockService(ctrl),
		NotificationService: notifications.NewMockService(ctrl),
		OrderService:        orders.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.PayoutHandler)
	assert.NotNil(t, h.OrderHandler)
}

func newRoutedHandlers(ctrl *gomock.Controller) *Handlers {
	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockPayoutHandler := NewMockPayoutHandler(ctrl)
	mockBookHandler := NewMockBookHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockNotificationHandler := NewMockNotificationHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().RequestKYCUpdate(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().GetState(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().SwitchTab(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().Dismiss(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookHandler.EXPECT().GetBooks(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookHandler.EXPECT().GetBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookHandler.EXPECT().CreateBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookHandler.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookHandler.EXPECT().DeleteBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookHandler.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetUsers(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ChangeRole(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetUserStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetBooks(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().DeleteBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockNotificationHandler.EXPECT().GetNotifications(gomock.Any(), gomock.Any()).AnyTimes()
	mockNotificationHandler.EXPECT().MarkRead(gomock.Any(), gomock.Any()).AnyTimes()
	mockNotificationHandler.EXPECT().MarkAllRead(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).AnyTimes()

	return &Handlers{
		AuthHandler:         mockAuthHandler,
		PayoutHandler:       mockPayoutHandler,
		BookHandler:         mockBookHandler,
		AdminHandler:        mockAdminHandler,
		NotificationHandler: mockNotificationHandler,
		OrderHandler:        mockOrderHandler,
	}
}

var protectedRoutes = []struct {
	method string
	url    string
}{
	{"POST", "/api/auth/logout"},
	{"GET", "/api/auth/profile"},
	{"PUT", "/api/auth/profile"},
	{"POST", "/api/auth/kyc"},
	{"GET", "/api/payouts/state"},
	{"POST", "/api/payouts/tab"},
	{"POST", "/api/payouts/request"},
	{"GET", "/api/payouts/history"},
	{"POST", "/api/payouts/dismiss"},
	{"GET", "/api/books"},
	{"POST", "/api/books"},
	{"GET", "/api/books/dashboard"},
	{"GET", "/api/books/b1"},
	{"PUT", "/api/books/b1"},
	{"DELETE", "/api/books/b1"},
	{"GET", "/api/admin/users"},
	{"GET", "/api/admin/users/stats"},
	{"GET", "/api/admin/users/u1"},
	{"PUT", "/api/admin/users/u1"},
	{"DELETE", "/api/admin/users/u1"},
	{"PATCH", "/api/admin/users/u1/role"},
	{"GET", "/api/admin/books"},
	{"PUT", "/api/admin/books/b1"},
	{"DELETE", "/api/admin/books/b1"},
	{"GET", "/api/notifications"},
	{"PATCH", "/api/notifications/read"},
	{"PATCH", "/api/notifications/n1/read"},
	{"POST", "/api/orders"},
	{"POST", "/api/orders/verify-payment"},
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	newRoutedHandlers(ctrl).InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/unknown", http.StatusNotFound},
	}
	for _, pr := range protectedRoutes {
		tests = append(tests, struct {
			method string
			url    string
			status int
		}{pr.method, pr.url, http.StatusUnauthorized})
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_Authorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	newRoutedHandlers(ctrl).InitRoutes(router)

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer token-1")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
