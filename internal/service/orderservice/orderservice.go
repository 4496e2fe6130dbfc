package orderservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

type Ledger interface {
	Book(ctx context.Context, cred auth.Credential, id string) (*domain.Book, error)
	PlaceOrder(ctx context.Context, cred auth.Credential, req domain.OrderRequest) (*domain.Order, error)
	VerifyOrderPayment(ctx context.Context, cred auth.Credential, v domain.PaymentVerification) (*domain.PaymentVerificationResult, error)
}

type BalanceFetcher interface {
	Fetch(ctx context.Context, cred auth.Credential) decimal.Decimal
}

type Service struct {
	ledger  Ledger
	balance BalanceFetcher
}

func New(ledger Ledger, balance BalanceFetcher) *Service {
	return &Service{
		ledger:  ledger,
		balance: balance,
	}
}

const (
	MaxQuantity = 100

	OrderFailedMessage        = "Order failed. Please try again."
	VerificationFailedMessage = "Payment verification failed"
	WalletSuccessMessage      = "Order placed successfully using wallet!"
	PaymentSuccessMessage     = "Payment successful! Your order has been placed."
	LowBalanceWarning         = "Order total exceeds your wallet balance"
)

var (
	ErrBookRequired          = errors.New("bookId is required")
	ErrInvalidQuantity       = errors.New("quantity must be between 1 and 100")
	ErrInvalidPaymentMethod  = errors.New("paymentMethod must be one of: wallet razorpay")
	ErrIncompleteTransaction = errors.New("orderId, paymentId and signature are required")
	ErrPaymentNotVerified    = errors.New(VerificationFailedMessage)
)

// Placement is a placed order together with the figures the purchase page
// shows next to it.
type Placement struct {
	Order   *domain.Order
	Book    *domain.Book
	Total   decimal.Decimal
	Balance decimal.Decimal
	Warning string
}

func Total(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

func Check(req domain.OrderRequest) error {
	switch {
	case req.BookID == "":
		return ErrBookRequired
	case req.Quantity < 1 || req.Quantity > MaxQuantity:
		return ErrInvalidQuantity
	case !req.PaymentMethod.Valid():
		return ErrInvalidPaymentMethod
	}
	return nil
}

// Place prices the order and, for wallet payments, compares the total with the
// wallet balance. A short balance only produces a warning: the ledger decides.
func (s *Service) Place(ctx context.Context, cred auth.Credential, req domain.OrderRequest) (*Placement, error) {
	if err := Check(req); err != nil {
		return nil, err
	}

	p := &Placement{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		book, err := s.ledger.Book(gctx, cred, req.BookID)
		if err != nil {
			return err
		}
		p.Book = book
		return nil
	})
	if req.PaymentMethod == domain.PayFromWallet {
		g.Go(func() error {
			p.Balance = s.balance.Fetch(gctx, cred)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("can't price order", zap.String("book", req.BookID), zap.Error(err))
		return nil, err
	}

	p.Total = Total(p.Book.Price, req.Quantity)
	if req.PaymentMethod == domain.PayFromWallet && p.Balance.LessThan(p.Total) {
		p.Warning = LowBalanceWarning
		zap.L().Info("order total exceeds wallet balance",
			zap.String("total", p.Total.String()),
			zap.String("balance", p.Balance.String()))
	}

	order, err := s.ledger.PlaceOrder(ctx, cred, req)
	if err != nil {
		zap.L().Error("can't place order", zap.String("book", req.BookID), zap.Error(err))
		return nil, err
	}
	p.Order = order
	zap.L().Info("order placed",
		zap.String("order", order.OrderID),
		zap.String("method", string(req.PaymentMethod)))
	return p, nil
}

func (s *Service) VerifyPayment(ctx context.Context, cred auth.Credential, v domain.PaymentVerification) (*domain.PaymentVerificationResult, error) {
	if v.OrderID == "" || v.PaymentID == "" || v.Signature == "" {
		return nil, ErrIncompleteTransaction
	}

	result, err := s.ledger.VerifyOrderPayment(ctx, cred, v)
	if err != nil {
		zap.L().Error("can't verify order payment", zap.String("order", v.OrderID), zap.Error(err))
		return nil, err
	}
	if !result.Success {
		zap.L().Warn("order payment not verified", zap.String("order", v.OrderID))
		return result, ErrPaymentNotVerified
	}
	return result, nil
}
