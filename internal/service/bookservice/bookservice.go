package bookservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

type Ledger interface {
	Books(ctx context.Context, cred auth.Credential) ([]domain.Book, error)
	Book(ctx context.Context, cred auth.Credential, id string) (*domain.Book, error)
	CreateBook(ctx context.Context, cred auth.Credential, book domain.Book) (*domain.Book, error)
	UpdateBook(ctx context.Context, cred auth.Credential, id string, book domain.Book) (*domain.Book, error)
	DeleteBook(ctx context.Context, cred auth.Credential, id string) error
	DashboardStats(ctx context.Context, cred auth.Credential) (*domain.DashboardStats, error)
}

type Service struct {
	ledger Ledger
}

func New(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

func (s *Service) List(ctx context.Context, cred auth.Credential) ([]domain.Book, error) {
	books, err := s.ledger.Books(ctx, cred)
	if err != nil {
		zap.L().Error("can't list books", zap.Error(err))
		return nil, err
	}
	return books, nil
}

func (s *Service) Get(ctx context.Context, cred auth.Credential, id string) (*domain.Book, error) {
	book, err := s.ledger.Book(ctx, cred, id)
	if err != nil {
		zap.L().Error("can't get book", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return book, nil
}

func (s *Service) Create(ctx context.Context, cred auth.Credential, book domain.Book) (*domain.Book, error) {
	created, err := s.ledger.CreateBook(ctx, cred, book)
	if err != nil {
		zap.L().Error("can't create book", zap.String("title", book.Title), zap.Error(err))
		return nil, err
	}
	zap.L().Info("book created", zap.String("id", created.ID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, cred auth.Credential, id string, book domain.Book) (*domain.Book, error) {
	updated, err := s.ledger.UpdateBook(ctx, cred, id, book)
	if err != nil {
		zap.L().Error("can't update book", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, cred auth.Credential, id string) error {
	if err := s.ledger.DeleteBook(ctx, cred, id); err != nil {
		zap.L().Error("can't delete book", zap.String("id", id), zap.Error(err))
		return err
	}
	zap.L().Info("book deleted", zap.String("id", id))
	return nil
}

func (s *Service) Dashboard(ctx context.Context, cred auth.Credential) (*domain.DashboardStats, error) {
	stats, err := s.ledger.DashboardStats(ctx, cred)
	if err != nil {
		zap.L().Error("can't get dashboard stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
