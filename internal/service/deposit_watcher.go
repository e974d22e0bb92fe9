package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/repository"
)

const depositBatchSize = 100

// DepositWatcher periodically expires lapsed deposits and verifies the
// remaining pending ones against the chain.
type DepositWatcher struct {
	repo         repository.DepositRepository
	verifier     DepositService
	pollInterval time.Duration
	workers      int
	now          func() time.Time
}

func NewDepositWatcher(repo repository.DepositRepository, verifier DepositService, interval time.Duration, workers int) *DepositWatcher {
	if workers < 1 {
		workers = 1
	}
	return &DepositWatcher{
		repo:         repo,
		verifier:     verifier,
		pollInterval: interval,
		workers:      workers,
		now:          time.Now,
	}
}

func (w *DepositWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.checkDeposits(ctx)
		}
	}
}

func (w *DepositWatcher) checkDeposits(ctx context.Context) {
	expired, err := w.repo.ExpireStaleDeposits(ctx, w.now())
	if err != nil {
		logger.Log.Error("failed to expire stale deposits", zap.Error(err))
	} else if expired > 0 {
		logger.Log.Info("expired stale deposits", zap.Int64("count", expired))
	}

	deposits, err := w.repo.ListPendingDeposits(ctx, depositBatchSize)
	if err != nil {
		logger.Log.Error("failed to get pending deposits", zap.Error(err))
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)

	for _, d := range deposits {
		id := d.ID
		g.Go(func() error {
			res, err := w.verifier.VerifyDeposit(gctx, id)
			if err != nil {
				logger.Log.Warn("failed to verify deposit", zap.Int64("deposit_id", id), zap.Error(err))
				return nil
			}
			if res.Verified {
				logger.Log.Info("deposit credited by watcher", zap.Int64("deposit_id", id))
			}
			return nil
		})
	}

	_ = g.Wait()
}
