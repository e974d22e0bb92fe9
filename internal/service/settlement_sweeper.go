package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/models"
	"github.com/a2sh3r/settlement/internal/repository"
)

const sweepLockName = "settlement-sweep"

type SweeperService interface {
	RunSweep(ctx context.Context) ([]models.SweepResult, error)
	SetAutomatic(ctx context.Context, enabled bool) error
	Automatic(ctx context.Context) (bool, error)
}

type SweeperOptions struct {
	GracePeriod time.Duration
	BatchSize   int
	ItemDelay   time.Duration
	LockTTL     time.Duration
	Interval    time.Duration
}

// SettlementSweeper drives old pending withdrawals through completion. Runs
// are single-flight across instances through a durable lock.
type SettlementSweeper struct {
	withdrawals repository.WithdrawalRepository
	control     repository.ControlRepository
	settlement  SettlementService
	opts        SweeperOptions
	now         func() time.Time
}

func NewSettlementSweeper(withdrawals repository.WithdrawalRepository, control repository.ControlRepository, settlement SettlementService, opts SweeperOptions) *SettlementSweeper {
	return &SettlementSweeper{
		withdrawals: withdrawals,
		control:     control,
		settlement:  settlement,
		opts:        opts,
		now:         time.Now,
	}
}

func (s *SettlementSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			results, err := s.RunSweep(ctx)
			if err != nil {
				if errors.Is(err, apperrors.ErrSweepInProgress) {
					logger.Log.Info("settlement sweep skipped, another run holds the lock")
					continue
				}
				logger.Log.Error("settlement sweep failed", zap.Error(err))
				continue
			}
			if len(results) > 0 {
				logger.Log.Info("settlement sweep finished", zap.Int("processed", len(results)))
			}
		}
	}
}

// RunSweep processes up to BatchSize pending withdrawals older than the grace
// period, one at a time. With automatic payouts disabled it does nothing.
func (s *SettlementSweeper) RunSweep(ctx context.Context) ([]models.SweepResult, error) {
	enabled, err := s.control.IsAutomaticEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if !enabled {
		logger.Log.Info("automatic processing is disabled")
		return []models.SweepResult{}, nil
	}

	holder := uuid.NewString()
	acquired, err := s.control.AcquireLock(ctx, sweepLockName, holder, s.opts.LockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, apperrors.ErrSweepInProgress
	}
	defer func() {
		if err := s.control.ReleaseLock(context.WithoutCancel(ctx), sweepLockName, holder); err != nil {
			logger.Log.Error("failed to release sweep lock", zap.Error(err))
		}
	}()

	candidates, err := s.withdrawals.ListSweepCandidates(ctx, s.now().Add(-s.opts.GracePeriod), s.opts.BatchSize)
	if err != nil {
		return nil, err
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if s.opts.ItemDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(s.opts.ItemDelay), 1)
	}

	results := make([]models.SweepResult, 0, len(candidates))
	for _, w := range candidates {
		if err := limiter.Wait(ctx); err != nil {
			logger.Log.Warn("settlement sweep interrupted", zap.Error(err))
			break
		}
		results = append(results, s.settle(ctx, w))
	}
	return results, nil
}

func (s *SettlementSweeper) settle(ctx context.Context, w models.Withdrawal) models.SweepResult {
	result := models.SweepResult{ID: w.ID, CreatedAt: w.CreatedAt}

	updated, err := s.settlement.Complete(ctx, w.ID)
	switch {
	case err == nil:
		result.Outcome = models.SweepCompleted
		result.Reference = deref(updated.TransactionReference)
		return result
	case errors.Is(err, apperrors.ErrCriticalInconsistency):
		result.Outcome = models.SweepCritical
	case errors.Is(err, apperrors.ErrInvalidTransition):
		result.Outcome = models.SweepSkipped
	default:
		result.Outcome = models.SweepFailed
	}
	result.Error = err.Error()

	logger.Log.Warn("automatic settlement failed",
		zap.Int64("withdrawal_id", w.ID),
		zap.String("outcome", string(result.Outcome)),
		zap.Error(err),
	)

	// Gateway and critical outcomes already carry the reason written by the
	// state machine.
	if result.Outcome == models.SweepFailed && !errors.Is(err, apperrors.ErrGateway) {
		if rerr := s.withdrawals.SetReason(context.WithoutCancel(ctx), w.ID, err.Error()); rerr != nil {
			logger.Log.Error("failed to record sweep failure", zap.Int64("withdrawal_id", w.ID), zap.Error(rerr))
		}
	}
	return result
}

func (s *SettlementSweeper) SetAutomatic(ctx context.Context, enabled bool) error {
	if err := s.control.SetAutomaticEnabled(ctx, enabled); err != nil {
		return err
	}
	logger.Log.Info("automatic processing toggled", zap.Bool("enabled", enabled))
	return nil
}

func (s *SettlementSweeper) Automatic(ctx context.Context) (bool, error) {
	return s.control.IsAutomaticEnabled(ctx)
}
