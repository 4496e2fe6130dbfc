package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/authordash/internal/config"
	"github.com/GlebRadaev/authordash/internal/handlers"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/internal/pg"
	"github.com/GlebRadaev/authordash/internal/repo"
	"github.com/GlebRadaev/authordash/internal/service"
	"github.com/GlebRadaev/authordash/pkg/auth"
	"github.com/GlebRadaev/authordash/pkg/clients"
	"github.com/GlebRadaev/authordash/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// Application owns everything the BFF process starts and releases it on
// shutdown.
type Application struct {
	cfg      *config.Config
	services *service.Services

	group    *errgroup.Group
	groupCtx context.Context
	release  []func()
	ready    bool
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	a.cfg = config.New()
	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	repos, err := a.buildRepositories(ctx, a.cfg)
	if err != nil {
		return err
	}
	client := ledger.New(a.cfg.LedgerAddress, clients.NewHTTPClient(a.cfg.HTTPTimeout), &auth.JWTService{})
	a.services = service.New(client, repos, a.cfg)

	router := chi.NewRouter()
	handlers.New(a.services).InitRoutes(router)

	a.group, a.groupCtx = errgroup.WithContext(ctx)
	a.serve(router)
	a.services.Registry.Start(a.groupCtx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("address", a.cfg.Address))
	return nil
}

// buildRepositories picks the journal backend. Without a DSN submissions are
// journaled in process memory.
func (a *Application) buildRepositories(ctx context.Context, cfg *config.Config) (*repo.Repositories, error) {
	if cfg.Database == "" {
		zap.L().Warn("no database configured, payout submissions are journaled in memory")
		return repo.NewInMemory(), nil
	}

	pool, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("can't connect to postgres", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		zap.L().Error("journal migrations failed", zap.Error(err))
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	a.release = append(a.release, pool.Close)

	return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
}

// serve runs handler until the group context ends, then drains in-flight
// requests for at most shutdownTimeout.
func (a *Application) serve(handler http.Handler) {
	server := &http.Server{
		Addr:    a.cfg.Address,
		Handler: handler,
	}

	a.group.Go(func() error {
		zap.L().Info("starting http server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})
	a.group.Go(func() error {
		<-a.groupCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
		return nil
	})
}

// Wait blocks until every component stopped. The first component failure
// cancels the rest and is returned.
func (a *Application) Wait(_ context.Context, cancel context.CancelFunc) error {
	err := a.group.Wait()
	cancel()
	for i := len(a.release) - 1; i >= 0; i-- {
		a.release[i]()
	}
	a.ready = false
	if err != nil {
		zap.L().Error("application stopped", zap.Error(err))
	}
	return err
}
