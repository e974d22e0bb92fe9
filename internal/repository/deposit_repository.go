package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/models"
)

const depositColumns = `id, user_id, amount, wallet_address, sender_address, status, expires_at,
	transaction_hash, created_at`

type DepositRepository interface {
	CreateDeposit(ctx context.Context, deposit *models.Deposit) (*models.Deposit, error)
	GetDeposit(ctx context.Context, id int64) (*models.Deposit, error)
	ListUserDeposits(ctx context.Context, userID int64) ([]models.Deposit, error)
	ListPendingDeposits(ctx context.Context, limit int) ([]models.Deposit, error)
	ExpireDeposit(ctx context.Context, id int64, now time.Time) (bool, error)
	ExpireStaleDeposits(ctx context.Context, now time.Time) (int64, error)
	CompleteDeposit(ctx context.Context, id int64, txHash string) error
	IsTransactionUsed(ctx context.Context, txHash string) (bool, error)
}

type depositRepo struct {
	db *sql.DB
}

func NewDepositRepository(db *sql.DB) DepositRepository {
	return &depositRepo{db: db}
}

// CreateDeposit expires any lapsed pending deposit on the same address and
// inserts the new one. A still-live pending deposit on the address rejects
// the insert.
func (r *depositRepo) CreateDeposit(ctx context.Context, deposit *models.Deposit) (*models.Deposit, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	if _, err = tx.ExecContext(ctx, `
		UPDATE deposits SET status = 'expired', updated_at = NOW()
		WHERE user_id = $1 AND status = 'pending' AND expires_at <= $2
	`, deposit.UserID, deposit.CreatedAt); err != nil {
		return nil, err
	}

	created, err := scanDeposit(tx.QueryRowContext(ctx, `
		INSERT INTO deposits (user_id, amount, wallet_address, sender_address, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, 'pending', $5, $6)
		RETURNING `+depositColumns,
		deposit.UserID, deposit.Amount, deposit.Address, deposit.SenderAddress, deposit.ExpiresAt, deposit.CreatedAt))
	if err != nil {
		if isUniqueViolation(err, "deposits_one_pending_per_user") {
			return nil, apperrors.ErrPendingDepositExists
		}
		logger.Log.Error("failed to insert deposit", zap.Error(err))
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *depositRepo) GetDeposit(ctx context.Context, id int64) (*models.Deposit, error) {
	d, err := scanDeposit(r.db.QueryRowContext(ctx,
		`SELECT `+depositColumns+` FROM deposits WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrDepositNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *depositRepo) ListUserDeposits(ctx context.Context, userID int64) ([]models.Deposit, error) {
	return r.list(ctx, `
		SELECT `+depositColumns+` FROM deposits WHERE user_id = $1 ORDER BY created_at DESC, id DESC
	`, userID)
}

func (r *depositRepo) ListPendingDeposits(ctx context.Context, limit int) ([]models.Deposit, error) {
	return r.list(ctx, `
		SELECT `+depositColumns+` FROM deposits WHERE status = 'pending' ORDER BY created_at ASC, id ASC LIMIT $1
	`, limit)
}

func (r *depositRepo) ExpireDeposit(ctx context.Context, id int64, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE deposits SET status = 'expired', updated_at = NOW()
		WHERE id = $1 AND status = 'pending' AND expires_at <= $2
	`, id, now)
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *depositRepo) ExpireStaleDeposits(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE deposits SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND expires_at <= $1
	`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CompleteDeposit marks a pending deposit completed with its transfer hash
// and credits the user balance in the same transaction.
func (r *depositRepo) CompleteDeposit(ctx context.Context, id int64, txHash string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx)

	var (
		userID int64
		amount decimal.Decimal
	)
	err = tx.QueryRowContext(ctx, `
		UPDATE deposits SET status = 'completed', transaction_hash = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING user_id, amount
	`, id, txHash).Scan(&userID, &amount)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrDepositNotPending
	}
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.ErrTransactionUsed
		}
		return err
	}

	res, err := tx.ExecContext(ctx, `UPDATE users SET balance = balance + $1 WHERE id = $2`, amount, userID)
	if err != nil {
		return err
	}
	ok, err := affectedOne(res)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrUserNotFound
	}

	return tx.Commit()
}

func (r *depositRepo) IsTransactionUsed(ctx context.Context, txHash string) (bool, error) {
	var used bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM deposits WHERE transaction_hash = $1)`, txHash).Scan(&used)
	return used, err
}

func (r *depositRepo) list(ctx context.Context, query string, args ...any) ([]models.Deposit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query deposits", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var deposits []models.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			logger.Log.Error("failed to scan deposit", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *d)
	}
	return deposits, rows.Err()
}

func scanDeposit(row rowScanner) (*models.Deposit, error) {
	var (
		d      models.Deposit
		sender sql.NullString
		txHash sql.NullString
	)
	if err := row.Scan(&d.ID, &d.UserID, &d.Amount, &d.Address, &sender, &d.Status, &d.ExpiresAt,
		&txHash, &d.CreatedAt); err != nil {
		return nil, err
	}
	if sender.Valid {
		d.SenderAddress = &sender.String
	}
	if txHash.Valid {
		d.TransactionHash = &txHash.String
	}
	return &d, nil
}
