package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DepositStatus string

const (
	DepositPending   DepositStatus = "pending"
	DepositCompleted DepositStatus = "completed"
	DepositExpired   DepositStatus = "expired"
)

type Deposit struct {
	ID              int64           `json:"id" db:"id"`
	UserID          int64           `json:"user_id" db:"user_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Address         string          `json:"wallet_address" db:"wallet_address"`
	SenderAddress   *string         `json:"sender_address,omitempty" db:"sender_address"`
	Status          DepositStatus   `json:"status" db:"status"`
	ExpiresAt       time.Time       `json:"expires_at" db:"expires_at"`
	TransactionHash *string         `json:"transaction_hash,omitempty" db:"transaction_hash"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

// EffectiveStatus reports a pending deposit past its expiry as expired even
// if the store has not been swept yet.
func (d *Deposit) EffectiveStatus(now time.Time) DepositStatus {
	if d.Status == DepositPending && now.After(d.ExpiresAt) {
		return DepositExpired
	}
	return d.Status
}

// DepositRequest carries the user's own wallet only as the expected sender.
// Funds are always matched against the configured receiving address.
type DepositRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	SenderAddress string          `json:"wallet_address,omitempty"`
}

type VerifyResult struct {
	Verified        bool          `json:"verified"`
	Status          DepositStatus `json:"status"`
	TransactionHash string        `json:"transaction_hash,omitempty"`
	Message         string        `json:"message"`
}
