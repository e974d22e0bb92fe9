package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/repository"
)

const (
	profitLockName = "profit-accrual"
	profitWindow   = 24 * time.Hour
)

type ProfitService interface {
	AccrueDailyProfit(ctx context.Context) (int64, error)
}

type profitService struct {
	userRepo repository.UserRepository
	control  repository.ControlRepository
}

func NewProfitService(userRepo repository.UserRepository, control repository.ControlRepository) ProfitService {
	return &profitService{userRepo: userRepo, control: control}
}

// AccrueDailyProfit adds daily profit to every user's accumulated profit at
// most once per window. After a successful run the lock is left to expire on
// its own.
func (s *profitService) AccrueDailyProfit(ctx context.Context) (int64, error) {
	holder := uuid.NewString()
	acquired, err := s.control.AcquireLock(ctx, profitLockName, holder, profitWindow)
	if err != nil {
		return 0, err
	}
	if !acquired {
		return 0, apperrors.ErrAccrualAlreadyRan
	}

	n, err := s.userRepo.AccrueDailyProfit(ctx)
	if err != nil {
		logger.Log.Error("daily profit accrual failed", zap.Error(err))
		if relErr := s.control.ReleaseLock(context.WithoutCancel(ctx), profitLockName, holder); relErr != nil {
			logger.Log.Error("failed to release profit lock", zap.Error(relErr))
		}
		return 0, err
	}

	logger.Log.Info("daily profit accrued", zap.Int64("users", n))
	return n, nil
}
