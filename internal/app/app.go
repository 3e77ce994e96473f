package app

import (
	"context"
	"dealTracker/internal/config"
	"dealTracker/internal/handlers"
	"dealTracker/internal/logger"
	"dealTracker/internal/repository/inmemory"
	"dealTracker/internal/repository/postgres"
	"dealTracker/internal/service"
	"dealTracker/internal/worker"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type App struct {
	config    *config.Config
	server    *http.Server
	services  *service.Services
	worker    *worker.OverdueWorker
	shutdowns []func() // run in reverse order on shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development, a.config.Logging.Level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("App: flushing logs")
		logger.Sync()
	})

	repos, err := a.initRepositories(ctx)
	if err != nil {
		a.Shutdown()
		return err
	}

	a.services = service.New(repos)

	h := handlers.NewHandler(a.services)
	router := handlers.NewRouter(h, handlers.RouterOptions{
		AllowedOrigins: a.config.CORS.AllowedOrigins,
		RateLimit:      a.config.RateLimit.RPM,
	})

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	if interval := a.config.Worker.OverdueInterval; interval > 0 {
		a.worker = worker.NewOverdueWorker(a.services.Overview, &interval)
		logger.Info("App: overdue monitor enabled", zap.Duration("interval", a.worker.Interval()))
	}

	logger.Info("App: initialised",
		zap.String("repository", a.config.Repository.Type),
		zap.String("addr", a.server.Addr),
		zap.Bool("overdue_monitor", a.worker != nil))
	return nil
}

func (a *App) initRepositories(ctx context.Context) (service.Repositories, error) {
	switch a.config.Repository.Type {
	case config.RepositoryPostgres:
		db := a.config.Database
		if db.MigrateOnStart {
			if err := postgres.Migrate(db.URL); err != nil {
				return service.Repositories{}, fmt.Errorf("migrate: %w", err)
			}
		}

		storage, err := postgres.New(ctx, db.URL, postgres.PoolOptions{
			MaxConnections: db.MaxConnections,
			MinConnections: db.MinConnections,
			IdleTimeout:    db.IdleTimeout,
		})
		if err != nil {
			return service.Repositories{}, fmt.Errorf("connect postgres: %w", err)
		}
		a.shutdowns = append(a.shutdowns, func() {
			logger.Info("App: closing database pool")
			storage.Close()
		})

		return service.Repositories{
			Health:         storage,
			Deals:          storage.Deals(),
			Tasks:          storage.Tasks(),
			Documents:      storage.Documents(),
			Communications: storage.Communications(),
			Contacts:       storage.Contacts(),
		}, nil

	case config.RepositoryInMemory:
		storage := inmemory.NewStorage()
		logger.Warn("App: using in-memory repository, data is lost on restart")

		return service.Repositories{
			Health:         storage,
			Deals:          storage.Deals(),
			Tasks:          storage.Tasks(),
			Documents:      storage.Documents(),
			Communications: storage.Communications(),
			Contacts:       storage.Contacts(),
		}, nil
	}

	return service.Repositories{}, fmt.Errorf("unknown repository type %q", a.config.Repository.Type)
}

// Run serves HTTP until ctx is cancelled or the server fails, then shuts down
// gracefully within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	if a.server == nil {
		return errors.New("app: Run called before Init")
	}
	defer a.Shutdown()

	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()

	var wg sync.WaitGroup
	if a.worker != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.worker.Start(workerCtx)
		}()
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("App: server started", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("App: shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			runErr = fmt.Errorf("server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("App: graceful shutdown failed", err)
		if runErr == nil {
			runErr = fmt.Errorf("shutdown: %w", err)
		}
	}

	stopWorker()
	wg.Wait()

	logger.Info("App: server stopped")
	return runErr
}

func (a *App) Handler() http.Handler {
	if a.server == nil {
		return nil
	}
	return a.server.Handler
}

func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
