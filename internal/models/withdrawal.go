package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalDelayed   WithdrawalStatus = "delayed"
	WithdrawalCancelled WithdrawalStatus = "cancelled"
	WithdrawalCompleted WithdrawalStatus = "completed"
)

// ParseWithdrawalStatus accepts only the canonical spelling of each status.
func ParseWithdrawalStatus(s string) (WithdrawalStatus, error) {
	switch st := WithdrawalStatus(s); st {
	case WithdrawalPending, WithdrawalDelayed, WithdrawalCancelled, WithdrawalCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown withdrawal status %q", s)
}

func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalCompleted || s == WithdrawalCancelled
}

func (s WithdrawalStatus) AwaitingAction() bool {
	return s == WithdrawalPending || s == WithdrawalDelayed
}

type Withdrawal struct {
	ID                   int64            `json:"id" db:"id"`
	UserID               int64            `json:"user_id" db:"user_id"`
	Amount               decimal.Decimal  `json:"amount" db:"amount"`
	Address              string           `json:"wallet_address" db:"wallet_address"`
	Status               WithdrawalStatus `json:"status" db:"status"`
	Reason               *string          `json:"reason,omitempty" db:"reason"`
	TransactionReference *string          `json:"transaction_reference,omitempty" db:"transaction_reference"`
	PayoutClaimedAt      *time.Time       `json:"payout_claimed_at,omitempty" db:"payout_claimed_at"`
	CreatedAt            time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at" db:"updated_at"`
}

func (w *Withdrawal) PayoutClaimed() bool {
	return w.PayoutClaimedAt != nil
}

// UserWithdrawal is the end-user projection: operator reasons are shown only
// for delayed and cancelled records so internal failure detail never leaks.
type UserWithdrawal struct {
	ID        int64            `json:"id"`
	Amount    decimal.Decimal  `json:"amount"`
	Address   string           `json:"wallet_address"`
	Status    WithdrawalStatus `json:"status"`
	Reason    *string          `json:"reason,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (w *Withdrawal) UserView() UserWithdrawal {
	v := UserWithdrawal{
		ID:        w.ID,
		Amount:    w.Amount,
		Address:   w.Address,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
	}
	if w.Status == WithdrawalDelayed || w.Status == WithdrawalCancelled {
		v.Reason = w.Reason
	}
	return v
}

type WithdrawalRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Address string          `json:"address"`
}

// Settlement is one row of the append-only payout audit log.
type Settlement struct {
	ID           int64           `json:"id" db:"id"`
	UserID       int64           `json:"user_id" db:"user_id"`
	WithdrawalID int64           `json:"withdrawal_id" db:"withdrawal_id"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Reference    string          `json:"transaction_reference" db:"transaction_reference"`
	Address      string          `json:"wallet_address" db:"wallet_address"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

type SweepOutcome string

const (
	SweepCompleted SweepOutcome = "completed"
	SweepFailed    SweepOutcome = "failed"
	SweepSkipped   SweepOutcome = "skipped"
	SweepCritical  SweepOutcome = "critical"
)

type SweepResult struct {
	ID        int64        `json:"id"`
	Outcome   SweepOutcome `json:"outcome"`
	Reference string       `json:"transaction_reference,omitempty"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
