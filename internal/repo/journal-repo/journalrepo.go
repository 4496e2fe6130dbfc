package journalrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/pg"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Begin records s as in flight unless an identical submission of the same
// session is still in flight since the given time.
func (r *Repository) Begin(ctx context.Context, s *domain.Submission, since time.Time) (*domain.Submission, error) {
	lock := `SELECT pg_advisory_xact_lock(hashtext($1))`
	query := `
		INSERT INTO payout_submissions (idempotency_key, session, amount, payment_method, status, created_at, updated_at)
		SELECT $1::uuid, $2::text, $3::numeric, $4::text, $5::text, $6::timestamptz, $6::timestamptz
		WHERE NOT EXISTS (
			SELECT 1 FROM payout_submissions
			WHERE session = $2::text AND amount = $3::numeric AND payment_method = $4::text
				AND status = 'in_flight' AND created_at > $7::timestamptz
		)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, lock, s.Session); err != nil {
			zap.L().Error("can't lock submission session", zap.Error(err))
			return err
		}
		err := r.db.QueryRow(ctx, query,
			s.IdempotencyKey, s.Session, s.Amount.String(), string(s.PaymentMethod), string(s.Status), s.CreatedAt, since,
		).Scan(&s.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDuplicateSubmission
		}
		if err != nil {
			zap.L().Error("can't save submission", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repository) Finish(ctx context.Context, key string, status domain.SubmissionStatus, payoutID string) error {
	query := `
		UPDATE payout_submissions
		SET status = $1, payout_id = $2, updated_at = now()
		WHERE idempotency_key = $3
	`
	tag, err := r.db.Exec(ctx, query, string(status), payoutID, key)
	if err != nil {
		zap.L().Error("failed to update submission", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("finish %s: %w", key, ErrSubmissionNotFound)
	}
	return nil
}
