package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/config"
	"github.com/a2sh3r/settlement/internal/database"
	"github.com/a2sh3r/settlement/internal/handlers"
	"github.com/a2sh3r/settlement/internal/indexer"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/monitoring"
	"github.com/a2sh3r/settlement/internal/payout"
	"github.com/a2sh3r/settlement/internal/repository"
	"github.com/a2sh3r/settlement/internal/service"
)

type App struct {
	cfg     *config.Config
	server  *http.Server
	db      *sql.DB
	watcher *service.DepositWatcher
	sweeper *service.SettlementSweeper
	wg      sync.WaitGroup
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.SentryDSN != "" {
		if err := monitoring.Initialize(cfg.SentryDSN, cfg.Environment); err != nil {
			logger.Log.Warn("sentry initialization failed, critical alerts go to logs only", zap.Error(err))
		}
	}
	if cfg.Deposit.ReceivingAddress == "" {
		logger.Log.Warn("no default deposit receiving address configured")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("database connection failed", zap.Error(err))
		return nil, err
	}

	a := newApp(cfg, db, payout.NewClient(cfg.Gateway), indexer.NewClient(cfg.Indexer), monitoring.NewReporter())
	return a, nil
}

func newApp(cfg *config.Config, db *sql.DB, gateway payout.Gateway, chain indexer.ClientInterface, reporter monitoring.Reporter) *App {
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	depositRepo := repository.NewDepositRepository(db)
	userRepo := repository.NewUserRepository(db)
	controlRepo := repository.NewControlRepository(db)

	settlement := service.NewSettlementService(withdrawalRepo, gateway, reporter, service.SettlementOptions{
		Network:         cfg.Gateway.Network,
		MinPayoutAmount: cfg.Threshold.MinPayoutAmount,
		PayoutTimeout:   cfg.Gateway.PayoutTimeout,
	})
	withdrawals := service.NewWithdrawalService(withdrawalRepo, userRepo, cfg.Gateway.Network, cfg.Threshold.MinWithdrawalAmount)
	deposits := service.NewDepositService(depositRepo, chain, service.DepositOptions{
		ReceivingAddress:   cfg.Deposit.ReceivingAddress,
		TokenSymbol:        cfg.Deposit.TokenSymbol,
		TokenContract:      cfg.Deposit.TokenContract,
		Window:             cfg.Deposit.Window,
		Tolerance:          cfg.Deposit.MatchTolerance,
		RequireSenderMatch: cfg.Deposit.RequireSenderMatch,
	})
	sweeper := service.NewSettlementSweeper(withdrawalRepo, controlRepo, settlement, service.SweeperOptions{
		GracePeriod: cfg.Sweep.GracePeriod,
		BatchSize:   cfg.Sweep.BatchSize,
		ItemDelay:   cfg.Sweep.ItemDelay,
		LockTTL:     cfg.Sweep.LockTTL,
		Interval:    cfg.Sweep.Interval,
	})
	profit := service.NewProfitService(userRepo, controlRepo)

	handler := handlers.NewHandler(withdrawals, deposits, settlement, sweeper, profit)
	router := handlers.NewRouter(handler, handlers.RouterConfig{
		SecretKey:  cfg.SecretKey,
		CronSecret: cfg.CronSecret,
		RateLimit:  cfg.RateLimit,
		RateBurst:  cfg.RateBurst,
	})

	return &App{
		cfg: cfg,
		server: &http.Server{
			Addr:              cfg.RunAddress,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		db:      db,
		watcher: service.NewDepositWatcher(depositRepo, deposits, cfg.Deposit.PollInterval, cfg.Deposit.Workers),
		sweeper: sweeper,
	}
}

// Run starts the HTTP server and the background loops. The loops stop when
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.watcher.Run(ctx)
	}()

	if a.cfg.Sweep.Enabled {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			a.sweeper.Run(ctx)
		}()
	}

	go func() {
		logger.Log.Info("starting server", zap.String("address", a.cfg.RunAddress))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		logger.Log.Warn("background workers did not stop in time")
	}

	monitoring.Flush()
	_ = logger.Log.Sync()

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}
	return nil
}
