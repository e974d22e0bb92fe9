package models

import "github.com/shopspring/decimal"

// Ledger holds the balance fields of a user record the pipeline reads.
type Ledger struct {
	UserID            int64           `json:"user_id" db:"id"`
	Balance           decimal.Decimal `json:"balance" db:"balance"`
	AccumulatedProfit decimal.Decimal `json:"total_dp" db:"total_dp"`
	DailyProfit       decimal.Decimal `json:"daily_profit" db:"daily_profit"`
	ProfitBalance     decimal.Decimal `json:"profit_balance" db:"profit_balance"`
	ReferralProfit    decimal.Decimal `json:"ref_profit" db:"ref_profit"`
	AmountWithdrawn   decimal.Decimal `json:"amount_withdrawn" db:"amount_withdrawn"`
}

// WithdrawalEligible reports whether accumulated profit covers the profit
// balance net of referral profit.
func (l Ledger) WithdrawalEligible() bool {
	return l.AccumulatedProfit.GreaterThanOrEqual(l.ProfitBalance.Sub(l.ReferralProfit))
}
