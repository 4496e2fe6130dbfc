package journalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/pg"
)

const (
	lockQuery   = `SELECT pg_advisory_xact_lock(hashtext($1))`
	insertQuery = `INSERT INTO payout_submissions (idempotency_key, session, amount, payment_method, status, created_at, updated_at)`
	updateQuery = `UPDATE payout_submissions SET status = $1, payout_id = $2, updated_at = now() WHERE idempotency_key = $3`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func submission(now time.Time) *domain.Submission {
	return &domain.Submission{
		IdempotencyKey: "3f9a1c2e-8a4b-4a61-9d1e-1b2c3d4e5f60",
		Session:        "fp-1",
		Amount:         decimal.NewFromInt(500),
		PaymentMethod:  domain.BankTransfer,
		Status:         domain.SubmissionInFlight,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestRepository_Begin(t *testing.T) {
	ctx := context.Background()
	repo, mock, tx := NewMock(t)
	now := time.Now()
	since := now.Add(-10 * time.Second)

	runInTx := func() {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		anyErr    bool
		wantID    int64
	}{
		{
			name: "Submission recorded",
			mockSetup: func() {
				runInTx()
				mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
					WithArgs("fp-1").
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("3f9a1c2e-8a4b-4a61-9d1e-1b2c3d4e5f60", "fp-1", "500", "bank_transfer", "in_flight", now, since).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		{
			name: "Identical submission in flight",
			mockSetup: func() {
				runInTx()
				mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
					WithArgs("fp-1").
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			expectErr: domain.ErrDuplicateSubmission,
		},
		{
			name: "Lock error",
			mockSetup: func() {
				runInTx()
				mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
					WithArgs("fp-1").
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
		{
			name: "Insert error",
			mockSetup: func() {
				runInTx()
				mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
					WithArgs("fp-1").
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
		{
			name: "Transaction error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("begin tx: conn closed"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Begin(ctx, submission(now), since)

			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Finish(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		notFound  bool
	}{
		{
			name: "Submission finished",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("succeeded", "p-1", "key-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Unknown key",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("succeeded", "p-1", "key-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: true,
			notFound:  true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("succeeded", "p-1", "key-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Finish(ctx, "key-1", domain.SubmissionSucceeded, "p-1")

			if tt.expectErr {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, ErrSubmissionNotFound))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
