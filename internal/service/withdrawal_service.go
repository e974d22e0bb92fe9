package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/models"
	"github.com/a2sh3r/settlement/internal/repository"
	"github.com/a2sh3r/settlement/internal/utils"
)

type WithdrawalService interface {
	CreateWithdrawal(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error)
	ListUserWithdrawals(ctx context.Context, userID int64) ([]models.UserWithdrawal, error)
	ListPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	GetLedger(ctx context.Context, userID int64) (*models.Ledger, error)
	ListSettlements(ctx context.Context, withdrawalID int64) ([]models.Settlement, error)
}

type withdrawalService struct {
	repo          repository.WithdrawalRepository
	userRepo      repository.UserRepository
	network       string
	minWithdrawal decimal.Decimal
}

func NewWithdrawalService(repo repository.WithdrawalRepository, userRepo repository.UserRepository, network string, minWithdrawal decimal.Decimal) WithdrawalService {
	return &withdrawalService{
		repo:          repo,
		userRepo:      userRepo,
		network:       network,
		minWithdrawal: minWithdrawal,
	}
}

func (s *withdrawalService) CreateWithdrawal(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if s.minWithdrawal.IsPositive() && req.Amount.LessThan(s.minWithdrawal) {
		return nil, apperrors.ErrAmountTooSmall
	}

	address := strings.TrimSpace(req.Address)
	if !utils.IsValidAddress(s.network, address) {
		return nil, apperrors.ErrInvalidAddress
	}

	ledger, err := s.userRepo.GetLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ledger.WithdrawalEligible() {
		return nil, apperrors.ErrWithdrawalCriteriaNotMet
	}

	w, err := s.repo.CreateWithdrawal(ctx, userID, req.Amount, address)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("withdrawal requested",
		zap.Int64("withdrawal_id", w.ID),
		zap.Int64("user_id", userID),
		zap.String("amount", req.Amount.String()),
	)
	return w, nil
}

func (s *withdrawalService) ListUserWithdrawals(ctx context.Context, userID int64) ([]models.UserWithdrawal, error) {
	withdrawals, err := s.repo.ListUserWithdrawals(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.UserWithdrawal, 0, len(withdrawals))
	for i := range withdrawals {
		views = append(views, withdrawals[i].UserView())
	}
	return views, nil
}

func (s *withdrawalService) ListPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return s.repo.ListPendingWithdrawals(ctx)
}

func (s *withdrawalService) GetLedger(ctx context.Context, userID int64) (*models.Ledger, error) {
	return s.userRepo.GetLedger(ctx, userID)
}

// ListSettlements returns the payout audit rows of a withdrawal.
func (s *withdrawalService) ListSettlements(ctx context.Context, withdrawalID int64) ([]models.Settlement, error) {
	if _, err := s.repo.GetWithdrawal(ctx, withdrawalID); err != nil {
		return nil, err
	}
	return s.repo.ListSettlements(ctx, withdrawalID)
}
