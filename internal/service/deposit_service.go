package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/indexer"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/models"
	"github.com/a2sh3r/settlement/internal/repository"
	"github.com/a2sh3r/settlement/internal/utils"
)

type DepositService interface {
	CreateDeposit(ctx context.Context, userID int64, req models.DepositRequest) (*models.Deposit, error)
	GetDeposit(ctx context.Context, userID, id int64) (*models.Deposit, error)
	ListUserDeposits(ctx context.Context, userID int64) ([]models.Deposit, error)
	VerifyDeposit(ctx context.Context, id int64) (*models.VerifyResult, error)
}

type DepositOptions struct {
	ReceivingAddress   string
	TokenSymbol        string
	TokenContract      string
	Window             time.Duration
	Tolerance          decimal.Decimal
	RequireSenderMatch bool
}

type depositService struct {
	repo    repository.DepositRepository
	indexer indexer.ClientInterface
	opts    DepositOptions
	now     func() time.Time
}

func NewDepositService(repo repository.DepositRepository, client indexer.ClientInterface, opts DepositOptions) DepositService {
	return &depositService{
		repo:    repo,
		indexer: client,
		opts:    opts,
		now:     time.Now,
	}
}

func (s *depositService) CreateDeposit(ctx context.Context, userID int64, req models.DepositRequest) (*models.Deposit, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	address := s.opts.ReceivingAddress
	if address == "" {
		return nil, apperrors.ErrNoReceivingAddress
	}

	var sender *string
	if v := strings.TrimSpace(req.SenderAddress); v != "" {
		if !utils.IsValidTRC20Address(v) {
			return nil, apperrors.ErrInvalidAddress
		}
		sender = &v
	} else if s.opts.RequireSenderMatch {
		return nil, apperrors.ErrInvalidAddress
	}

	now := s.now()
	d, err := s.repo.CreateDeposit(ctx, &models.Deposit{
		UserID:        userID,
		Amount:        req.Amount,
		Address:       address,
		SenderAddress: sender,
		Status:        models.DepositPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.opts.Window),
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("deposit created",
		zap.Int64("deposit_id", d.ID),
		zap.Int64("user_id", userID),
		zap.String("amount", req.Amount.String()),
		zap.Time("expires_at", d.ExpiresAt),
	)
	return d, nil
}

// GetDeposit returns the user's deposit with its effective status. Another
// user's deposit is reported as not found.
func (s *depositService) GetDeposit(ctx context.Context, userID, id int64) (*models.Deposit, error) {
	d, err := s.repo.GetDeposit(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, apperrors.ErrDepositNotFound
	}
	d.Status = d.EffectiveStatus(s.now())
	return d, nil
}

func (s *depositService) ListUserDeposits(ctx context.Context, userID int64) ([]models.Deposit, error) {
	deposits, err := s.repo.ListUserDeposits(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range deposits {
		deposits[i].Status = deposits[i].EffectiveStatus(now)
	}
	return deposits, nil
}

// VerifyDeposit looks for a confirmed on-chain transfer fulfilling a pending
// deposit and credits it. Completed deposits verify without a chain query.
func (s *depositService) VerifyDeposit(ctx context.Context, id int64) (*models.VerifyResult, error) {
	d, err := s.repo.GetDeposit(ctx, id)
	if err != nil {
		return nil, err
	}

	switch d.Status {
	case models.DepositCompleted:
		return completedResult(d), nil
	case models.DepositExpired:
		return expiredResult(), nil
	}

	now := s.now()
	if !now.Before(d.ExpiresAt) {
		if _, err := s.repo.ExpireDeposit(ctx, id, now); err != nil {
			return nil, err
		}
		logger.Log.Info("deposit expired", zap.Int64("deposit_id", id))
		return expiredResult(), nil
	}

	transfers, err := s.indexer.ListTransfers(ctx, s.opts.ReceivingAddress, d.CreatedAt, d.ExpiresAt)
	if err != nil {
		return nil, &apperrors.GatewayError{
			Kind:   apperrors.GatewayRailUnavailable,
			Detail: "chain indexer query failed",
			Err:    err,
		}
	}

	for _, tr := range transfers {
		if !s.matches(d, tr) {
			continue
		}

		used, err := s.repo.IsTransactionUsed(ctx, tr.TxID)
		if err != nil {
			return nil, err
		}
		if used {
			logger.Log.Info("transfer already credited", zap.Int64("deposit_id", id), zap.String("tx_id", tr.TxID))
			continue
		}

		err = s.repo.CompleteDeposit(ctx, id, tr.TxID)
		switch {
		case err == nil:
			logger.Log.Info("deposit verified",
				zap.Int64("deposit_id", id),
				zap.Int64("user_id", d.UserID),
				zap.String("tx_id", tr.TxID),
				zap.String("sender", tr.From),
			)
			d.Status = models.DepositCompleted
			d.TransactionHash = &tr.TxID
			return completedResult(d), nil
		case errors.Is(err, apperrors.ErrTransactionUsed):
			continue
		case errors.Is(err, apperrors.ErrDepositNotPending):
			return s.currentResult(ctx, id)
		default:
			return nil, err
		}
	}

	return &models.VerifyResult{
		Verified: false,
		Status:   models.DepositPending,
		Message:  "no matching transfer found yet",
	}, nil
}

func (s *depositService) matches(d *models.Deposit, tr indexer.Transfer) bool {
	if tr.Symbol != s.opts.TokenSymbol || tr.Contract != s.opts.TokenContract {
		return false
	}
	if !strings.EqualFold(tr.To, s.opts.ReceivingAddress) {
		return false
	}
	if tr.Timestamp.Before(d.CreatedAt) || tr.Timestamp.After(d.ExpiresAt) {
		return false
	}
	if !tr.Amount.Sub(d.Amount).Abs().LessThan(s.opts.Tolerance) {
		return false
	}

	if d.SenderAddress != nil && tr.From != *d.SenderAddress {
		if s.opts.RequireSenderMatch {
			return false
		}
		logger.Log.Info("deposit matched from a different sender",
			zap.Int64("deposit_id", d.ID),
			zap.String("expected_sender", *d.SenderAddress),
			zap.String("sender", tr.From),
		)
	}
	return true
}

func (s *depositService) currentResult(ctx context.Context, id int64) (*models.VerifyResult, error) {
	d, err := s.repo.GetDeposit(ctx, id)
	if err != nil {
		return nil, err
	}
	switch d.Status {
	case models.DepositCompleted:
		return completedResult(d), nil
	case models.DepositExpired:
		return expiredResult(), nil
	}
	return &models.VerifyResult{Status: d.Status, Message: "deposit is not pending"}, nil
}

func completedResult(d *models.Deposit) *models.VerifyResult {
	return &models.VerifyResult{
		Verified:        true,
		Status:          models.DepositCompleted,
		TransactionHash: deref(d.TransactionHash),
		Message:         "deposit verified",
	}
}

func expiredResult() *models.VerifyResult {
	return &models.VerifyResult{
		Verified: false,
		Status:   models.DepositExpired,
		Message:  "deposit expired, create a new deposit request",
	}
}
