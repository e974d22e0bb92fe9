package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/models"
)

type UserRepository interface {
	GetLedger(ctx context.Context, userID int64) (*models.Ledger, error)
	AccrueDailyProfit(ctx context.Context) (int64, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetLedger(ctx context.Context, userID int64) (*models.Ledger, error) {
	query := `
		SELECT id, balance, total_dp, daily_profit, profit_balance, ref_profit, amount_withdrawn
		FROM users WHERE id = $1
	`
	var l models.Ledger
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&l.UserID, &l.Balance, &l.AccumulatedProfit,
		&l.DailyProfit, &l.ProfitBalance, &l.ReferralProfit, &l.AmountWithdrawn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// AccrueDailyProfit adds each user's daily profit to their accumulated profit
// in a single statement and returns the number of users touched.
func (r *userRepo) AccrueDailyProfit(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET total_dp = total_dp + daily_profit WHERE daily_profit <> 0
	`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
