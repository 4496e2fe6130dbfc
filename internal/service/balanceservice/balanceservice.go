package balanceservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

type ProfileSource interface {
	Profile(ctx context.Context, cred auth.Credential) (*domain.Profile, error)
}

type Service struct {
	profiles ProfileSource
}

func New(profiles ProfileSource) *Service {
	return &Service{
		profiles: profiles,
	}
}

// Fetch returns the withdrawable balance. It never fails: any error is logged
// and reported as zero so there is always a number to show.
func (s *Service) Fetch(ctx context.Context, cred auth.Credential) decimal.Decimal {
	profile, err := s.profiles.Profile(ctx, cred)
	if err != nil {
		zap.L().Error("failed to fetch balance", zap.Error(err))
		return decimal.Zero
	}
	if profile == nil || profile.WalletBalance.IsNegative() {
		return decimal.Zero
	}
	return profile.WalletBalance
}
