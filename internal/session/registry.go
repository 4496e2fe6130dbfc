package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/authordash/internal/workflow"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

const defaultSweepInterval = time.Minute

type Factory func(cred auth.Credential) *workflow.Controller

// Registry keeps one payout controller per credential. Controllers are keyed
// by the credential fingerprint so raw tokens are never held as map keys.
type Registry struct {
	newController Factory
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	mu          sync.Mutex
	controllers sync.Map
}

func NewRegistry(factory Factory, ttl time.Duration) *Registry {
	return &Registry{
		newController: factory,
		ttl:           ttl,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
	}
}

func (r *Registry) Get(cred auth.Credential) *workflow.Controller {
	key := cred.Fingerprint()
	if c, ok := r.controllers.Load(key); ok {
		return c.(*workflow.Controller)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.controllers.Load(key); ok {
		return c.(*workflow.Controller)
	}
	c := r.newController(cred)
	r.controllers.Store(key, c)
	zap.L().Debug("Payout session opened", zap.String("session", key[:12]))
	return c
}

// Drop forgets the controller of cred, e.g. on logout.
func (r *Registry) Drop(cred auth.Credential) {
	if c, ok := r.controllers.LoadAndDelete(cred.Fingerprint()); ok {
		c.(*workflow.Controller).Close()
	}
}

func (r *Registry) Len() int {
	n := 0
	r.controllers.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (r *Registry) Start(ctx context.Context) {
	zap.L().Info("Session sweeper started", zap.Duration("ttl", r.ttl))
	go r.run(ctx)
}

func (r *Registry) run(ctx context.Context) {
	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping session sweeper")
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Sweep closes controllers idle for longer than the ttl.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	deadline := r.now().Add(-r.ttl)
	evicted := 0
	r.controllers.Range(func(key, value any) bool {
		c := value.(*workflow.Controller)
		if c.LastActive().Before(deadline) {
			if r.controllers.CompareAndDelete(key, value) {
				c.Close()
				evicted++
			}
		}
		return true
	})
	if evicted > 0 {
		zap.L().Info("Idle payout sessions evicted", zap.Int("count", evicted))
	}
	return evicted
}
