package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/models"
)

const withdrawalColumns = `id, user_id, amount, wallet_address, status, reason, transaction_reference,
	payout_claimed_at, created_at, updated_at`

// WithdrawalRepository persists withdrawal requests. Every status mutation is
// a conditional update on the expected current status and reports whether it
// took effect.
type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, userID int64, amount decimal.Decimal, address string) (*models.Withdrawal, error)
	GetWithdrawal(ctx context.Context, id int64) (*models.Withdrawal, error)
	ListPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ListUserWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	ListSweepCandidates(ctx context.Context, createdBefore time.Time, limit int) ([]models.Withdrawal, error)
	ListSettlements(ctx context.Context, withdrawalID int64) ([]models.Settlement, error)
	TransitionStatus(ctx context.Context, id int64, from, to models.WithdrawalStatus, reason string) (bool, error)
	CancelWithdrawal(ctx context.Context, id int64, from models.WithdrawalStatus, reason string) (bool, error)
	ClaimPayout(ctx context.Context, id int64, from models.WithdrawalStatus) (bool, error)
	ReleasePayoutClaim(ctx context.Context, id int64, reason string) error
	FlagForReview(ctx context.Context, id int64, reason string) error
	CompleteWithdrawal(ctx context.Context, id int64, reference string) error
	Requeue(ctx context.Context, id int64, reason string) (bool, error)
	SetReason(ctx context.Context, id int64, reason string) error
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

// CreateWithdrawal inserts a pending withdrawal and adds its amount to the
// user's withdrawn total in one transaction. The eligibility rule is checked
// against the locked user row.
func (r *withdrawalRepo) CreateWithdrawal(ctx context.Context, userID int64, amount decimal.Decimal, address string) (*models.Withdrawal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	var eligible bool
	err = tx.QueryRowContext(ctx, `
		SELECT total_dp >= profit_balance - ref_profit FROM users WHERE id = $1 FOR UPDATE
	`, userID).Scan(&eligible)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, apperrors.ErrWithdrawalCriteriaNotMet
	}

	w, err := scanWithdrawal(tx.QueryRowContext(ctx, `
		INSERT INTO withdrawal_queue (user_id, amount, wallet_address, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING `+withdrawalColumns,
		userID, amount, address))
	if err != nil {
		if isUniqueViolation(err, "withdrawal_queue_one_outstanding_per_user") {
			return nil, apperrors.ErrOutstandingWithdrawal
		}
		logger.Log.Error("failed to insert withdrawal", zap.Error(err))
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE users SET amount_withdrawn = amount_withdrawn + $1 WHERE id = $2
	`, amount, userID); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *withdrawalRepo) GetWithdrawal(ctx context.Context, id int64) (*models.Withdrawal, error) {
	w, err := scanWithdrawal(r.db.QueryRowContext(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawal_queue WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListPendingWithdrawals returns every withdrawal awaiting action, oldest first.
func (r *withdrawalRepo) ListPendingWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return r.list(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_queue
		WHERE status IN ('pending', 'delayed')
		ORDER BY created_at ASC, id ASC
	`)
}

func (r *withdrawalRepo) ListUserWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return r.list(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_queue
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
}

// ListSweepCandidates returns up to limit pending, unclaimed withdrawals
// created at or before createdBefore, oldest first.
func (r *withdrawalRepo) ListSweepCandidates(ctx context.Context, createdBefore time.Time, limit int) ([]models.Withdrawal, error) {
	return r.list(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_queue
		WHERE status = 'pending' AND payout_claimed_at IS NULL AND created_at <= $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2
	`, createdBefore, limit)
}

func (r *withdrawalRepo) ListSettlements(ctx context.Context, withdrawalID int64) ([]models.Settlement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, withdrawal_id, amount, transaction_reference, wallet_address, created_at
		FROM withdrawal_list WHERE withdrawal_id = $1 ORDER BY id
	`, withdrawalID)
	if err != nil {
		logger.Log.Error("failed to query settlements", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var settlements []models.Settlement
	for rows.Next() {
		var s models.Settlement
		if err := rows.Scan(&s.ID, &s.UserID, &s.WithdrawalID, &s.Amount, &s.Reference, &s.Address, &s.CreatedAt); err != nil {
			logger.Log.Error("failed to scan settlement", zap.Error(err))
			return nil, err
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}

func (r *withdrawalRepo) TransitionStatus(ctx context.Context, id int64, from, to models.WithdrawalStatus, reason string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_queue
		SET status = $3, reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2 AND payout_claimed_at IS NULL
	`, id, string(from), string(to), reason)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

// CancelWithdrawal cancels an unclaimed withdrawal and reverts the withdrawn
// total recorded at intake.
func (r *withdrawalRepo) CancelWithdrawal(ctx context.Context, id int64, from models.WithdrawalStatus, reason string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer rollback(tx)

	var (
		userID int64
		amount decimal.Decimal
	)
	err = tx.QueryRowContext(ctx, `
		UPDATE withdrawal_queue
		SET status = 'cancelled', reason = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2 AND payout_claimed_at IS NULL
		RETURNING user_id, amount
	`, id, string(from), reason).Scan(&userID, &amount)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE users SET amount_withdrawn = GREATEST(amount_withdrawn - $1, 0) WHERE id = $2
	`, amount, userID); err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// ClaimPayout marks the withdrawal as handed to the rail. Only one caller can
// win the claim for a given record.
func (r *withdrawalRepo) ClaimPayout(ctx context.Context, id int64, from models.WithdrawalStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_queue
		SET payout_claimed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = $2 AND payout_claimed_at IS NULL
	`, id, string(from))
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *withdrawalRepo) ReleasePayoutClaim(ctx context.Context, id int64, reason string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_queue
		SET payout_claimed_at = NULL, reason = $2, updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'delayed')
	`, id, reason)
	return err
}

// FlagForReview resets a non-terminal withdrawal to pending while keeping the
// payout claim so no automated path can pay it again.
func (r *withdrawalRepo) FlagForReview(ctx context.Context, id int64, reason string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_queue
		SET status = 'pending', transaction_reference = NULL, reason = $2,
		    payout_claimed_at = COALESCE(payout_claimed_at, NOW()), updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'delayed')
	`, id, reason)
	if err != nil {
		return err
	}
	ok, err := affectedOne(res)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("withdrawal %d could not be flagged: %w", id, apperrors.ErrStatusChanged)
	}
	return nil
}

// CompleteWithdrawal records a successful payout: the withdrawal becomes
// completed with its reference and a settlement row is appended, atomically.
func (r *withdrawalRepo) CompleteWithdrawal(ctx context.Context, id int64, reference string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)

	var (
		userID  int64
		amount  decimal.Decimal
		address string
	)
	err = tx.QueryRowContext(ctx, `
		UPDATE withdrawal_queue
		SET status = 'completed', transaction_reference = $2, reason = NULL, updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'delayed') AND payout_claimed_at IS NOT NULL
		RETURNING user_id, amount, wallet_address
	`, id, reference).Scan(&userID, &amount, &address)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrStatusChanged
	}
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO withdrawal_list (user_id, withdrawal_id, amount, transaction_reference, wallet_address)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, id, amount, reference, address); err != nil {
		return err
	}

	return tx.Commit()
}

// Requeue returns an unclaimed delayed withdrawal, or a claimed one flagged
// for review, to plain pending and clears its payout claim. Claims without a
// review marker belong to a payout in flight and are left alone.
func (r *withdrawalRepo) Requeue(ctx context.Context, id int64, reason string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_queue
		SET status = 'pending', payout_claimed_at = NULL, reason = NULLIF($2, ''), updated_at = NOW()
		WHERE id = $1 AND (
			(status = 'delayed' AND payout_claimed_at IS NULL)
			OR (status = 'pending' AND payout_claimed_at IS NOT NULL
			    AND (reason LIKE 'PAYOUT\_UNCONFIRMED%' OR reason LIKE 'PAYOUT\_INCONSISTENCY%'))
		)
	`, id, reason)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *withdrawalRepo) SetReason(ctx context.Context, id int64, reason string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_queue SET reason = $2, updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'delayed')
	`, id, reason)
	return err
}

func (r *withdrawalRepo) list(ctx context.Context, query string, args ...any) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

func scanWithdrawal(row rowScanner) (*models.Withdrawal, error) {
	var (
		w         models.Withdrawal
		reason    sql.NullString
		reference sql.NullString
		claimedAt sql.NullTime
	)
	if err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.Address, &w.Status, &reason, &reference,
		&claimedAt, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	if reason.Valid {
		w.Reason = &reason.String
	}
	if reference.Valid {
		w.TransactionReference = &reference.String
	}
	if claimedAt.Valid {
		w.PayoutClaimedAt = &claimedAt.Time
	}
	return &w, nil
}
