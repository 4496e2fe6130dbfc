package adminservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

var ErrInvalidRole = errors.New("role must be author or admin")

type Ledger interface {
	Users(ctx context.Context, cred auth.Credential) ([]domain.User, error)
	User(ctx context.Context, cred auth.Credential, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, cred auth.Credential, id string, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, cred auth.Credential, id string) error
	UpdateUserRole(ctx context.Context, cred auth.Credential, id, role string) (*domain.User, error)
	UserStats(ctx context.Context, cred auth.Credential) (*domain.UserStats, error)
	AdminBooks(ctx context.Context, cred auth.Credential) ([]domain.Book, error)
	AdminUpdateBook(ctx context.Context, cred auth.Credential, id string, book domain.Book) (*domain.Book, error)
	AdminDeleteBook(ctx context.Context, cred auth.Credential, id string) error
}

type Service struct {
	ledger Ledger
}

func New(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

func (s *Service) Users(ctx context.Context, cred auth.Credential) ([]domain.User, error) {
	users, err := s.ledger.Users(ctx, cred)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) User(ctx context.Context, cred auth.Credential, id string) (*domain.User, error) {
	user, err := s.ledger.User(ctx, cred, id)
	if err != nil {
		zap.L().Error("can't get user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, cred auth.Credential, id string, user domain.User) (*domain.User, error) {
	if user.Role != "" && !domain.ValidRole(user.Role) {
		return nil, ErrInvalidRole
	}
	updated, err := s.ledger.UpdateUser(ctx, cred, id, user)
	if err != nil {
		zap.L().Error("can't update user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteUser(ctx context.Context, cred auth.Credential, id string) error {
	if err := s.ledger.DeleteUser(ctx, cred, id); err != nil {
		zap.L().Error("can't delete user", zap.String("id", id), zap.Error(err))
		return err
	}
	zap.L().Info("user deleted", zap.String("id", id))
	return nil
}

func (s *Service) ChangeRole(ctx context.Context, cred auth.Credential, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	user, err := s.ledger.UpdateUserRole(ctx, cred, id, role)
	if err != nil {
		zap.L().Error("can't change role", zap.String("id", id), zap.String("role", role), zap.Error(err))
		return nil, err
	}
	zap.L().Info("user role changed", zap.String("id", id), zap.String("role", role))
	return user, nil
}

func (s *Service) UserStats(ctx context.Context, cred auth.Credential) (*domain.UserStats, error) {
	stats, err := s.ledger.UserStats(ctx, cred)
	if err != nil {
		zap.L().Error("can't get user stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *Service) Books(ctx context.Context, cred auth.Credential) ([]domain.Book, error) {
	books, err := s.ledger.AdminBooks(ctx, cred)
	if err != nil {
		zap.L().Error("can't list all books", zap.Error(err))
		return nil, err
	}
	return books, nil
}

func (s *Service) UpdateBook(ctx context.Context, cred auth.Credential, id string, book domain.Book) (*domain.Book, error) {
	updated, err := s.ledger.AdminUpdateBook(ctx, cred, id, book)
	if err != nil {
		zap.L().Error("can't update book", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteBook(ctx context.Context, cred auth.Credential, id string) error {
	if err := s.ledger.AdminDeleteBook(ctx, cred, id); err != nil {
		zap.L().Error("can't delete book", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
