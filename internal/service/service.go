package service

import (
	"github.com/GlebRadaev/authordash/internal/config"
	"github.com/GlebRadaev/authordash/internal/handlers/admin"
	"github.com/GlebRadaev/authordash/internal/handlers/auth"
	"github.com/GlebRadaev/authordash/internal/handlers/books"
	"github.com/GlebRadaev/authordash/internal/handlers/notifications"
	"github.com/GlebRadaev/authordash/internal/handlers/orders"
	"github.com/GlebRadaev/authordash/internal/handlers/payouts"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/repo"
	"github.com/GlebRadaev/authordash/internal/service/adminservice"
	"github.com/GlebRadaev/authordash/internal/service/authservice"
	"github.com/GlebRadaev/authordash/internal/service/balanceservice"
	"github.com/GlebRadaev/authordash/internal/service/bookservice"
	"github.com/GlebRadaev/authordash/internal/service/notificationservice"
	"github.com/GlebRadaev/authordash/internal/service/orderservice"
	"github.com/GlebRadaev/authordash/internal/service/payoutservice"
	"github.com/GlebRadaev/authordash/internal/session"
	"github.com/GlebRadaev/authordash/internal/workflow"
	pkgauth "github.com/GlebRadaev/authordash/pkg/auth"
)

type Services struct {
	AuthService         auth.Service
	PayoutSessions      payouts.Sessions
	BookService         books.Service
	AdminService        admin.Service
	NotificationService notifications.Service
	OrderService        orders.Service

	// Registry is the concrete PayoutSessions; the app drives its sweeper.
	Registry *session.Registry
}

func New(client *ledger.Client, repo *repo.Repositories, cfg *config.Config) *Services {
	balanceService := balanceservice.New(client)
	payoutService := payoutservice.New(client, repo.Journal, cfg.DedupeWindow)

	registry := session.NewRegistry(func(cred pkgauth.Credential) *workflow.Controller {
		return workflow.New(cred, balanceService, payoutService)
	}, cfg.SessionTTL)

	return &Services{
		AuthService:         authservice.New(client, registry),
		PayoutSessions:      registry,
		BookService:         bookservice.New(client),
		AdminService:        adminservice.New(client),
		NotificationService: notificationservice.New(client),
		OrderService:        orderservice.New(client, balanceService),
		Registry:            registry,
	}
}
