package payoutservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

const (
	MinimumAmountMessage = "Minimum payout amount is ₹10"
	SubmitFailedMessage  = "Failed to submit payout request"
	HistoryFailedMessage = "Failed to fetch payout history"
)

// MinimumAmount mirrors the ledger's own rule. Checking it here only saves a
// round trip; the ledger remains the authority.
var MinimumAmount = decimal.NewFromInt(10)

type Ledger interface {
	Royalties(ctx context.Context, cred auth.Credential) ([]domain.Payout, error)
	RequestRoyalty(ctx context.Context, cred auth.Credential, key string, amount decimal.Decimal, method domain.PaymentMethod) (*domain.Payout, error)
}

type Journal interface {
	Begin(ctx context.Context, submission *domain.Submission, since time.Time) (*domain.Submission, error)
	Finish(ctx context.Context, key string, status domain.SubmissionStatus, payoutID string) error
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Service struct {
	ledger  Ledger
	journal Journal
	window  time.Duration
	newKey  func() string
	now     func() time.Time
}

func New(ledger Ledger, journal Journal, window time.Duration) *Service {
	return &Service{
		ledger:  ledger,
		journal: journal,
		window:  window,
		newKey:  uuid.NewString,
		now:     time.Now,
	}
}

// ParseAmount accepts a plain decimal number of at least MinimumAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || amount.LessThan(MinimumAmount) {
		return decimal.Zero, &ValidationError{Message: MinimumAmountMessage}
	}
	return amount, nil
}

func Validate(req domain.PayoutRequest) (decimal.Decimal, error) {
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return decimal.Zero, err
	}
	if !req.PaymentMethod.Valid() {
		return decimal.Zero, &ValidationError{Message: "Unsupported payment method"}
	}
	return amount, nil
}

// Submit creates one payout request on the ledger. Invalid input and
// duplicates of a submission still in flight never reach the network.
func (s *Service) Submit(ctx context.Context, cred auth.Credential, req domain.PayoutRequest) (*domain.Payout, error) {
	amount, err := Validate(req)
	if err != nil {
		return nil, err
	}
	if cred.Empty() {
		return nil, ledger.ErrNoCredential
	}

	key := s.newKey()
	now := s.now()
	_, err = s.journal.Begin(ctx, &domain.Submission{
		IdempotencyKey: key,
		Session:        cred.Fingerprint(),
		Amount:         amount,
		PaymentMethod:  req.PaymentMethod,
		Status:         domain.SubmissionInFlight,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, now.Add(-s.window))
	switch {
	case errors.Is(err, domain.ErrDuplicateSubmission):
		zap.L().Info("duplicate payout submission rejected", zap.String("amount", amount.String()))
		return nil, err
	case err != nil:
		// a journal outage must not block payouts
		zap.L().Error("failed to journal payout submission", zap.Error(err))
	}

	payout, err := s.ledger.RequestRoyalty(ctx, cred, key, amount, req.PaymentMethod)
	if err != nil {
		zap.L().Error("payout request failed", zap.String("key", key), zap.Error(err))
		s.finish(ctx, key, domain.SubmissionFailed, "")
		return nil, err
	}

	s.finish(ctx, key, domain.SubmissionSucceeded, payout.ID)
	zap.L().Info("payout requested",
		zap.String("key", key), zap.String("payout", payout.ID), zap.String("amount", amount.String()))
	return payout, nil
}

func (s *Service) finish(ctx context.Context, key string, status domain.SubmissionStatus, payoutID string) {
	// the submit outcome must be recorded even if the caller went away
	ctx = context.WithoutCancel(ctx)
	if err := s.journal.Finish(ctx, key, status, payoutID); err != nil {
		zap.L().Error("failed to finish journaled submission", zap.String("key", key), zap.Error(err))
	}
}

// History returns the caller's payout records in ledger order.
func (s *Service) History(ctx context.Context, cred auth.Credential) ([]domain.Payout, error) {
	payouts, err := s.ledger.Royalties(ctx, cred)
	if err != nil {
		zap.L().Error("failed to fetch payout history", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
