package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/authordash/internal/config"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/repo"
	"github.com/GlebRadaev/authordash/internal/service/payoutservice"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := ledger.New("http://ledger.test/api", clients.NewMockHTTPClientI(ctrl), &auth.JWTService{})
	repos := &repo.Repositories{
		Journal: payoutservice.NewMockJournal(ctrl),
	}
	cfg := &config.Config{SessionTTL: time.Minute, DedupeWindow: 10 * time.Second}

	services := New(client, repos, cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PayoutSessions)
	assert.NotNil(t, services.BookService)
	assert.NotNil(t, services.AdminService)
	assert.NotNil(t, services.NotificationService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.Registry)
}

func TestNew_SessionsShareRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := ledger.New("http://ledger.test/api", clients.NewMockHTTPClientI(ctrl), &auth.JWTService{})
	services := New(client, repo.NewInMemory(), &config.Config{SessionTTL: time.Minute})

	cred := auth.NewCredential("token-1")
	c := services.PayoutSessions.Get(cred)
	assert.Same(t, c, services.Registry.Get(cred))
	assert.Equal(t, 1, services.Registry.Len())

	services.AuthService.Logout(context.Background(), cred)
	assert.Equal(t, 0, services.Registry.Len())
}
