package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/authordash/internal/workflow"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

func newRegistry(ttl time.Duration) (*Registry, *int) {
	created := 0
	r := NewRegistry(func(cred auth.Credential) *workflow.Controller {
		created++
		return workflow.New(cred, nil, nil)
	}, ttl)
	return r, &created
}

func TestRegistry_Get(t *testing.T) {
	r, created := newRegistry(time.Minute)
	alice := auth.NewCredential("token-alice")
	bob := auth.NewCredential("token-bob")

	a1 := r.Get(alice)
	a2 := r.Get(auth.NewCredential(" token-alice "))
	b := r.Get(bob)

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)
	assert.Equal(t, 2, *created)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_Drop(t *testing.T) {
	r, created := newRegistry(time.Minute)
	cred := auth.NewCredential("token-1")

	first := r.Get(cred)
	r.Drop(cred)
	assert.Equal(t, 0, r.Len())

	second := r.Get(cred)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, *created)

	r.Drop(auth.NewCredential("unknown"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Sweep(t *testing.T) {
	tests := []struct {
		name        string
		ttl         time.Duration
		elapsed     time.Duration
		wantEvicted int
	}{
		{name: "idle sessions evicted", ttl: 30 * time.Minute, elapsed: time.Hour, wantEvicted: 2},
		{name: "active sessions kept", ttl: 30 * time.Minute, elapsed: time.Minute, wantEvicted: 0},
		{name: "zero ttl disables eviction", ttl: 0, elapsed: 24 * time.Hour, wantEvicted: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRegistry(tt.ttl)
			r.Get(auth.NewCredential("a"))
			r.Get(auth.NewCredential("b"))

			r.now = func() time.Time { return time.Now().Add(tt.elapsed) }

			assert.Equal(t, tt.wantEvicted, r.Sweep())
			assert.Equal(t, 2-tt.wantEvicted, r.Len())
		})
	}
}

func TestRegistry_Start(t *testing.T) {
	r, _ := newRegistry(time.Millisecond)
	r.sweepInterval = 5 * time.Millisecond
	r.Get(auth.NewCredential("a"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
}
