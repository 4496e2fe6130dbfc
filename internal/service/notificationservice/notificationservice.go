package notificationservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

const markAllLimit = 4

type Ledger interface {
	Notifications(ctx context.Context, cred auth.Credential) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, cred auth.Credential, id string) error
}

type Service struct {
	ledger Ledger
}

func New(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

func (s *Service) Feed(ctx context.Context, cred auth.Credential) (*domain.NotificationFeed, error) {
	notifications, err := s.ledger.Notifications(ctx, cred)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	feed := &domain.NotificationFeed{Notifications: notifications}
	for _, n := range notifications {
		if !n.Read {
			feed.Unread++
		}
	}
	return feed, nil
}

func (s *Service) MarkRead(ctx context.Context, cred auth.Credential, id string) error {
	if err := s.ledger.MarkNotificationRead(ctx, cred, id); err != nil {
		zap.L().Error("can't mark notification read", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// MarkAllRead marks every unread notification and returns how many were
// marked. The ledger has no bulk endpoint, so each one is a separate call.
func (s *Service) MarkAllRead(ctx context.Context, cred auth.Credential) (int, error) {
	feed, err := s.Feed(ctx, cred)
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(markAllLimit)
	for _, n := range feed.Notifications {
		if n.Read {
			continue
		}
		id := n.ID
		g.Go(func() error {
			return s.MarkRead(gctx, cred, id)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return feed.Unread, nil
}
