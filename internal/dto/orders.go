package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/authordash/internal/domain"
)

type OrderRequestDTO struct {
	BookID        string `json:"bookId" validate:"required" example:"66f1c2a9e4b0a1b2c3d4e5f6"`
	Quantity      int    `json:"quantity" validate:"min=1,max=100" example:"2"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=wallet razorpay" example:"wallet"`
}

func (r OrderRequestDTO) ToDomain() domain.OrderRequest {
	method := domain.OrderPaymentMethod(r.PaymentMethod)
	if method == "" {
		method = domain.PayFromWallet
	}
	return domain.OrderRequest{BookID: r.BookID, Quantity: r.Quantity, PaymentMethod: method}
}

type OrderResponseDTO struct {
	Order   *domain.Order   `json:"order"`
	Total   decimal.Decimal `json:"total" swaggertype:"number" example:"598"`
	Balance decimal.Decimal `json:"balance" swaggertype:"number" example:"1500"`
	Message string          `json:"message,omitempty" example:"Order placed successfully using wallet!"`
	Warning string          `json:"warning,omitempty"`
}

type PaymentVerificationDTO struct {
	OrderID   string `json:"orderId" validate:"required" example:"order_9"`
	PaymentID string `json:"paymentId" validate:"required" example:"pay_1"`
	Signature string `json:"signature" validate:"required"`
}

func (r PaymentVerificationDTO) ToDomain() domain.PaymentVerification {
	return domain.PaymentVerification{OrderID: r.OrderID, PaymentID: r.PaymentID, Signature: r.Signature}
}
