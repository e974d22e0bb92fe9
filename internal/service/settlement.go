package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/models"
	"github.com/a2sh3r/settlement/internal/monitoring"
	"github.com/a2sh3r/settlement/internal/payout"
	"github.com/a2sh3r/settlement/internal/repository"
	"github.com/a2sh3r/settlement/internal/utils"
)

// Reason markers written to withdrawals that need a human decision.
const (
	InconsistencyMarker = "PAYOUT_INCONSISTENCY"
	UnconfirmedMarker   = "PAYOUT_UNCONFIRMED"
)

const defaultCancelReason = "Cancelled by operator"

// SettlementService is the only component allowed to change a withdrawal's
// status.
type SettlementService interface {
	Delay(ctx context.Context, id int64, reason string) (*models.Withdrawal, error)
	Cancel(ctx context.Context, id int64, reason string) (*models.Withdrawal, error)
	Complete(ctx context.Context, id int64) (*models.Withdrawal, error)
	UpdateStatus(ctx context.Context, id int64, status, reason string) (*models.Withdrawal, error)
	Requeue(ctx context.Context, id int64, reason string) (*models.Withdrawal, error)
	ConfirmPayout(ctx context.Context, id int64, reference string) (*models.Withdrawal, error)
}

type SettlementOptions struct {
	Network         string
	MinPayoutAmount decimal.Decimal
	PayoutTimeout   time.Duration
}

type settlementService struct {
	repo     repository.WithdrawalRepository
	gateway  payout.Gateway
	reporter monitoring.Reporter
	opts     SettlementOptions
}

func NewSettlementService(repo repository.WithdrawalRepository, gateway payout.Gateway, reporter monitoring.Reporter, opts SettlementOptions) SettlementService {
	return &settlementService{
		repo:     repo,
		gateway:  gateway,
		reporter: reporter,
		opts:     opts,
	}
}

// UpdateStatus maps a requested target status onto the matching operation.
func (s *settlementService) UpdateStatus(ctx context.Context, id int64, status, reason string) (*models.Withdrawal, error) {
	target, err := models.ParseWithdrawalStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	switch target {
	case models.WithdrawalDelayed:
		return s.Delay(ctx, id, reason)
	case models.WithdrawalCancelled:
		return s.Cancel(ctx, id, reason)
	case models.WithdrawalCompleted:
		return s.Complete(ctx, id)
	case models.WithdrawalPending:
		return s.Requeue(ctx, id, reason)
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
}

func (s *settlementService) Delay(ctx context.Context, id int64, reason string) (*models.Withdrawal, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.ErrReasonRequired
	}

	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Status != models.WithdrawalPending {
		return nil, fmt.Errorf("%w: cannot delay a %s withdrawal", apperrors.ErrInvalidTransition, w.Status)
	}
	// A claimed record keeps its review marker until ConfirmPayout or Requeue.
	if w.PayoutClaimed() {
		return nil, apperrors.ErrPayoutClaimed
	}

	ok, err := s.repo.TransitionStatus(ctx, id, models.WithdrawalPending, models.WithdrawalDelayed, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrStatusChanged
	}

	logger.Log.Info("withdrawal delayed", zap.Int64("withdrawal_id", id), zap.String("reason", reason))
	w.Status = models.WithdrawalDelayed
	w.Reason = &reason
	return w, nil
}

func (s *settlementService) Cancel(ctx context.Context, id int64, reason string) (*models.Withdrawal, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultCancelReason
	}

	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.PayoutClaimed() {
		return nil, apperrors.ErrPayoutClaimed
	}

	ok, err := s.repo.CancelWithdrawal(ctx, id, w.Status, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrStatusChanged
	}

	logger.Log.Info("withdrawal cancelled", zap.Int64("withdrawal_id", id), zap.String("reason", reason))
	w.Status = models.WithdrawalCancelled
	w.Reason = &reason
	return w, nil
}

// Complete pays the withdrawal out through the rail and records the result.
// At most one rail call is made per withdrawal: the payout claim taken before
// the call is only released when the rail definitely rejected the payout.
func (s *settlementService) Complete(ctx context.Context, id int64) (*models.Withdrawal, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.PayoutClaimed() {
		return nil, apperrors.ErrPayoutClaimed
	}
	if err := s.validatePayout(w); err != nil {
		return nil, err
	}

	claimed, err := s.repo.ClaimPayout(ctx, id, w.Status)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, apperrors.ErrStatusChanged
	}

	reference, err := s.submit(ctx, w)

	// Once the rail was contacted the bookkeeping must finish even if the
	// caller has gone away.
	bctx := context.WithoutCancel(ctx)

	if err != nil {
		return nil, s.handlePayoutFailure(bctx, w, err)
	}

	if err := s.repo.CompleteWithdrawal(bctx, id, reference); err != nil {
		return nil, s.escalate(bctx, w, reference, err)
	}

	logger.Log.Info("withdrawal completed",
		zap.Int64("withdrawal_id", id),
		zap.Int64("user_id", w.UserID),
		zap.String("reference", reference),
	)
	w.Status = models.WithdrawalCompleted
	w.TransactionReference = &reference
	w.Reason = nil
	return w, nil
}

// Requeue puts a delayed or review-flagged withdrawal back to plain pending.
// For a review-flagged record this is the operator asserting that no payout
// happened.
func (s *settlementService) Requeue(ctx context.Context, id int64, reason string) (*models.Withdrawal, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Status == models.WithdrawalPending && !w.PayoutClaimed() {
		return nil, apperrors.ErrPayoutNotClaimed
	}
	// Without a review marker the claim belongs to a payout still in flight.
	if w.PayoutClaimed() && !underReview(w) {
		return nil, apperrors.ErrPayoutClaimed
	}

	reason = strings.TrimSpace(reason)
	ok, err := s.repo.Requeue(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrStatusChanged
	}

	if w.PayoutClaimed() {
		logger.Log.Warn("payout claim cleared by operator",
			zap.Int64("withdrawal_id", id),
			zap.String("previous_reason", deref(w.Reason)),
		)
	}

	w.Status = models.WithdrawalPending
	w.PayoutClaimedAt = nil
	w.Reason = nil
	if reason != "" {
		w.Reason = &reason
	}
	return w, nil
}

// ConfirmPayout finishes the bookkeeping for a claimed withdrawal whose payout
// is known to have gone through. The rail is not called.
func (s *settlementService) ConfirmPayout(ctx context.Context, id int64, reference string) (*models.Withdrawal, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, apperrors.ErrReferenceRequired
	}

	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !w.PayoutClaimed() {
		return nil, apperrors.ErrPayoutNotClaimed
	}

	if err := s.repo.CompleteWithdrawal(ctx, id, reference); err != nil {
		return nil, err
	}

	logger.Log.Info("payout confirmed by operator", zap.Int64("withdrawal_id", id), zap.String("reference", reference))
	w.Status = models.WithdrawalCompleted
	w.TransactionReference = &reference
	w.Reason = nil
	return w, nil
}

func (s *settlementService) load(ctx context.Context, id int64) (*models.Withdrawal, error) {
	w, err := s.repo.GetWithdrawal(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: withdrawal %d is %s", apperrors.ErrTerminalStatus, id, w.Status)
	}
	return w, nil
}

func (s *settlementService) validatePayout(w *models.Withdrawal) error {
	if !utils.IsValidAddress(s.opts.Network, w.Address) {
		return apperrors.ErrInvalidAddress
	}
	if !w.Amount.GreaterThan(s.opts.MinPayoutAmount) {
		return fmt.Errorf("%w: %s must be greater than %s", apperrors.ErrAmountTooSmall, w.Amount, s.opts.MinPayoutAmount)
	}
	return nil
}

func (s *settlementService) submit(ctx context.Context, w *models.Withdrawal) (string, error) {
	pctx := ctx
	if s.opts.PayoutTimeout > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, s.opts.PayoutTimeout)
		defer cancel()
	}

	reference, err := s.gateway.SubmitPayout(pctx, payout.PayoutRequest{
		WithdrawalID: w.ID,
		Address:      w.Address,
		Amount:       w.Amount,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reference) == "" {
		return "", &apperrors.GatewayError{
			Kind:           apperrors.GatewayUnknown,
			Detail:         "rail returned an empty reference",
			OutcomeUnknown: true,
		}
	}
	return reference, nil
}

// handlePayoutFailure releases the claim after a definite rejection and
// parks the withdrawal for review when the outcome is unknown.
func (s *settlementService) handlePayoutFailure(ctx context.Context, w *models.Withdrawal, err error) error {
	var gwErr *apperrors.GatewayError
	if !errors.As(err, &gwErr) {
		gwErr = &apperrors.GatewayError{
			Kind:           apperrors.GatewayUnknown,
			Detail:         "payout call failed",
			OutcomeUnknown: true,
			Err:            err,
		}
	}

	if !gwErr.OutcomeUnknown {
		reason := "Payout rejected: " + gwErr.Error()
		if relErr := s.repo.ReleasePayoutClaim(ctx, w.ID, reason); relErr != nil {
			logger.Log.Error("failed to release payout claim", zap.Int64("withdrawal_id", w.ID), zap.Error(relErr))
		}
		logger.Log.Warn("payout rejected by rail", zap.Int64("withdrawal_id", w.ID), zap.Error(gwErr))
		return gwErr
	}

	reason := fmt.Sprintf("%s: payout outcome unknown, verify on the rail before any retry: %s", UnconfirmedMarker, gwErr.Error())
	if flagErr := s.repo.FlagForReview(ctx, w.ID, reason); flagErr != nil {
		logger.Log.Error("failed to flag withdrawal for review", zap.Int64("withdrawal_id", w.ID), zap.Error(flagErr))
	}
	logger.Log.Error("payout outcome unknown",
		zap.Int64("withdrawal_id", w.ID),
		zap.String("client_oid", payout.ClientOid(w.ID)),
		zap.Error(gwErr),
	)
	s.reporter.Message(fmt.Sprintf("withdrawal %d: %s", w.ID, reason))
	return gwErr
}

// escalate handles a payout that succeeded on the rail but could not be
// recorded. The payout is never retried.
func (s *settlementService) escalate(ctx context.Context, w *models.Withdrawal, reference string, cause error) error {
	critErr := &apperrors.CriticalInconsistencyError{WithdrawalID: w.ID, Reference: reference, Err: cause}

	reason := fmt.Sprintf("%s: payout sent with reference %s but ledger update failed; confirm manually", InconsistencyMarker, reference)
	if flagErr := s.repo.FlagForReview(ctx, w.ID, reason); flagErr != nil {
		logger.Log.Error("failed to flag inconsistent withdrawal",
			zap.Bool("critical", true),
			zap.Int64("withdrawal_id", w.ID),
			zap.Error(flagErr),
		)
	}

	logger.Log.Error("payout succeeded but ledger update failed",
		zap.Bool("critical", true),
		zap.Int64("withdrawal_id", w.ID),
		zap.Int64("user_id", w.UserID),
		zap.String("amount", w.Amount.String()),
		zap.String("reference", reference),
		zap.Error(cause),
	)
	s.reporter.ReportCritical(critErr, map[string]string{
		"withdrawal_id": strconv.FormatInt(w.ID, 10),
		"reference":     reference,
	})
	return critErr
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func underReview(w *models.Withdrawal) bool {
	reason := deref(w.Reason)
	return strings.HasPrefix(reason, UnconfirmedMarker) || strings.HasPrefix(reason, InconsistencyMarker)
}
