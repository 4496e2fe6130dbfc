package journalrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/authordash/internal/domain"
)

// Memory is the journal used when no database is configured. It forgets
// everything on restart; finished entries older than the dedupe window are
// pruned on the next Begin.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	byKey  map[string]*domain.Submission
}

func NewMemory() *Memory {
	return &Memory{byKey: make(map[string]*domain.Submission)}
}

func (m *Memory) Begin(_ context.Context, s *domain.Submission, since time.Time) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, prev := range m.byKey {
		if prev.Status != domain.SubmissionInFlight {
			if prev.UpdatedAt.Before(since) {
				delete(m.byKey, key)
			}
			continue
		}
		if prev.Session == s.Session &&
			prev.PaymentMethod == s.PaymentMethod &&
			prev.Amount.Equal(s.Amount) &&
			prev.CreatedAt.After(since) {
			return nil, domain.ErrDuplicateSubmission
		}
	}

	m.nextID++
	s.ID = m.nextID
	stored := *s
	m.byKey[s.IdempotencyKey] = &stored
	return s, nil
}

func (m *Memory) Finish(_ context.Context, key string, status domain.SubmissionStatus, payoutID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byKey[key]
	if !ok {
		return fmt.Errorf("finish %s: %w", key, ErrSubmissionNotFound)
	}
	s.Status = status
	s.PayoutID = payoutID
	s.UpdatedAt = time.Now()
	return nil
}
