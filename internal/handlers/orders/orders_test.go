package orders

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/dto"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/service/orderservice"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/utils"
)

var cred = auth.NewCredential("token-1")

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(target, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	return r.WithContext(auth.WithCredential(r.Context(), cred))
}

func assertMessage(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if expected == "" {
		return
	}
	var resp utils.Response
	_ = json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, expected, resp.Message)
}

func TestPlaceOrder(t *testing.T) {
	handler, service := NewMock(t)

	walletReq := domain.OrderRequest{BookID: "b-1", Quantity: 2, PaymentMethod: domain.PayFromWallet}
	razorpayReq := domain.OrderRequest{BookID: "b-1", Quantity: 2, PaymentMethod: domain.PayRazorpay}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		check         func(t *testing.T, resp dto.OrderResponseDTO)
	}{
		{
			name: "Wallet order defaults method",
			body: `{"bookId":"b-1","quantity":2}`,
			prepareMock: func() {
				service.EXPECT().Place(gomock.Any(), cred, walletReq).Return(&orderservice.Placement{
					Order:   &domain.Order{OrderID: "o-1", PaymentMethod: domain.PayFromWallet},
					Total:   decimal.NewFromInt(598),
					Balance: decimal.NewFromInt(1000),
				}, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, resp dto.OrderResponseDTO) {
				assert.Equal(t, orderservice.WalletSuccessMessage, resp.Message)
				assert.True(t, decimal.NewFromInt(598).Equal(resp.Total))
				assert.Empty(t, resp.Warning)
				require.NotNil(t, resp.Order)
				assert.Equal(t, "o-1", resp.Order.OrderID)
			},
		},
		{
			name: "Short wallet carries warning",
			body: `{"bookId":"b-1","quantity":2,"paymentMethod":"wallet"}`,
			prepareMock: func() {
				service.EXPECT().Place(gomock.Any(), cred, walletReq).Return(&orderservice.Placement{
					Order:   &domain.Order{OrderID: "o-2"},
					Total:   decimal.NewFromInt(598),
					Balance: decimal.NewFromInt(100),
					Warning: orderservice.LowBalanceWarning,
				}, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, resp dto.OrderResponseDTO) {
				assert.Equal(t, orderservice.LowBalanceWarning, resp.Warning)
			},
		},
		{
			name: "Razorpay order returns checkout data",
			body: `{"bookId":"b-1","quantity":2,"paymentMethod":"razorpay"}`,
			prepareMock: func() {
				service.EXPECT().Place(gomock.Any(), cred, razorpayReq).Return(&orderservice.Placement{
					Order: &domain.Order{OrderID: "order_9", RazorpayKeyID: "rzp_test", PaymentMethod: domain.PayRazorpay},
					Total: decimal.NewFromInt(598),
				}, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, resp dto.OrderResponseDTO) {
				assert.Empty(t, resp.Message)
				require.NotNil(t, resp.Order)
				assert.Equal(t, "rzp_test", resp.Order.RazorpayKeyID)
			},
		},
		{
			name:          "Invalid JSON",
			body:          `{"bookId":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Zero quantity",
			body:          `{"bookId":"b-1","quantity":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "quantity must satisfy min=1",
		},
		{
			name:          "Unknown method",
			body:          `{"bookId":"b-1","quantity":1,"paymentMethod":"cash"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "paymentMethod must be one of: wallet razorpay",
		},
		{
			name:          "Missing book",
			body:          `{"quantity":1}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "bookId is required",
		},
		{
			name: "Ledger message forwarded",
			body: `{"bookId":"b-1","quantity":2}`,
			prepareMock: func() {
				service.EXPECT().Place(gomock.Any(), cred, walletReq).
					Return(nil, &ledger.ServerError{Status: http.StatusBadRequest, Message: "Insufficient wallet balance"})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Insufficient wallet balance",
		},
		{
			name: "Ledger unreachable",
			body: `{"bookId":"b-1","quantity":2}`,
			prepareMock: func() {
				service.EXPECT().Place(gomock.Any(), cred, walletReq).
					Return(nil, &ledger.NetworkError{Err: errors.New("refused")})
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: orderservice.OrderFailedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.PlaceOrder(w, newRequest("/api/orders", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				var resp dto.OrderResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				tt.check(t, resp)
			}
			assertMessage(t, w, tt.expectedError)
		})
	}
}

func TestVerifyPayment(t *testing.T) {
	handler, service := NewMock(t)

	v := domain.PaymentVerification{OrderID: "order_9", PaymentID: "pay_1", Signature: "sig"}
	body := `{"orderId":"order_9","paymentId":"pay_1","signature":"sig"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedMessage string
	}{
		{
			name: "Verified",
			body: body,
			prepareMock: func() {
				service.EXPECT().VerifyPayment(gomock.Any(), cred, v).Return(&domain.PaymentVerificationResult{Success: true}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedMessage: orderservice.PaymentSuccessMessage,
		},
		{
			name: "Not verified",
			body: body,
			prepareMock: func() {
				service.EXPECT().VerifyPayment(gomock.Any(), cred, v).
					Return(&domain.PaymentVerificationResult{Success: false}, orderservice.ErrPaymentNotVerified)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedMessage: orderservice.VerificationFailedMessage,
		},
		{
			name:          "Missing signature",
			body:          `{"orderId":"order_9","paymentId":"pay_1"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedMessage: "signature is required",
		},
		{
			name: "Token rejected",
			body: body,
			prepareMock: func() {
				service.EXPECT().VerifyPayment(gomock.Any(), cred, v).Return(nil, ledger.ErrCredentialExpired)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedMessage: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.VerifyPayment(w, newRequest("/api/orders/verify-payment", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			assertMessage(t, w, tt.expectedMessage)
		})
	}
}
