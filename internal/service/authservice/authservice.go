package authservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

var (
	ErrNoToken        = errors.New("ledger returned no session token")
	ErrEmptyKYCUpdate = errors.New("please provide at least one KYC or bank detail to update")
)

type Ledger interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.Session, error)
	Profile(ctx context.Context, cred auth.Credential) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, cred auth.Credential, update domain.ProfileUpdate) (*domain.Profile, error)
	RequestKYCUpdate(ctx context.Context, cred auth.Credential, update domain.KYCUpdate) error
}

type Sessions interface {
	Drop(cred auth.Credential)
}

type Service struct {
	ledger   Ledger
	sessions Sessions
}

func New(ledger Ledger, sessions Sessions) *Service {
	return &Service{
		ledger:   ledger,
		sessions: sessions,
	}
}

func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	session, err := s.ledger.Login(ctx, creds)
	if err != nil {
		zap.L().Info("login rejected", zap.String("email", creds.Email), zap.Error(err))
		return nil, err
	}
	if session.Token == "" {
		zap.L().Error("login without token", zap.String("email", creds.Email))
		return nil, ErrNoToken
	}
	zap.L().Info("user successfully authenticated", zap.String("email", creds.Email))
	return session, nil
}

func (s *Service) Register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	session, err := s.ledger.Register(ctx, reg)
	if err != nil {
		zap.L().Info("registration rejected", zap.String("email", reg.Email), zap.Error(err))
		return nil, err
	}
	if session.Token == "" {
		zap.L().Error("registration without token", zap.String("email", reg.Email))
		return nil, ErrNoToken
	}
	zap.L().Info("user successfully registered", zap.String("email", reg.Email))
	return session, nil
}

// Logout forgets the payout session of cred. The ledger keeps no server
// side session, so nothing is sent upstream.
func (s *Service) Logout(_ context.Context, cred auth.Credential) {
	s.sessions.Drop(cred)
}

func (s *Service) Profile(ctx context.Context, cred auth.Credential) (*domain.Profile, error) {
	profile, err := s.ledger.Profile(ctx, cred)
	if err != nil {
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, cred auth.Credential, update domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.ledger.UpdateProfile(ctx, cred, update)
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// RequestKYCUpdate files a KYC or bank change for admin review.
func (s *Service) RequestKYCUpdate(ctx context.Context, cred auth.Credential, update domain.KYCUpdate) error {
	if update.Empty() {
		return ErrEmptyKYCUpdate
	}
	if err := s.ledger.RequestKYCUpdate(ctx, cred, update); err != nil {
		zap.L().Error("can't request KYC update", zap.Error(err))
		return err
	}
	zap.L().Info("KYC update requested")
	return nil
}
