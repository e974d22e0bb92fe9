package apperrors

import (
	"errors"
	"fmt"
)

// Error classes. Concrete errors below wrap exactly one class so callers can
// branch with errors.Is on the class.
var (
	ErrValidation            = errors.New("validation error")
	ErrEligibility           = errors.New("eligibility error")
	ErrNotFound              = errors.New("not found")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrGateway               = errors.New("gateway error")
	ErrCriticalInconsistency = errors.New("critical inconsistency")
)

var (
	ErrInvalidRequest     = fmt.Errorf("%w: invalid request", ErrValidation)
	ErrInvalidAddress     = fmt.Errorf("%w: invalid destination address", ErrValidation)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrAmountTooSmall     = fmt.Errorf("%w: amount below minimum", ErrValidation)
	ErrReasonRequired     = fmt.Errorf("%w: reason is required", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: unknown withdrawal status", ErrValidation)
	ErrReferenceRequired  = fmt.Errorf("%w: transaction reference is required", ErrValidation)
	ErrNoReceivingAddress = fmt.Errorf("%w: no receiving address configured", ErrValidation)

	ErrWithdrawalCriteriaNotMet = fmt.Errorf("%w: withdrawal criteria not met", ErrEligibility)
	ErrOutstandingWithdrawal    = fmt.Errorf("%w: a previous withdrawal request is still outstanding", ErrEligibility)
	ErrPendingDepositExists     = fmt.Errorf("%w: a pending deposit already exists for this user", ErrEligibility)

	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)
	ErrWithdrawalNotFound = fmt.Errorf("%w: withdrawal", ErrNotFound)
	ErrDepositNotFound    = fmt.Errorf("%w: deposit", ErrNotFound)

	ErrTerminalStatus     = fmt.Errorf("%w: withdrawal is in a terminal status", ErrInvalidTransition)
	ErrStatusChanged      = fmt.Errorf("%w: withdrawal status changed concurrently", ErrInvalidTransition)
	ErrPayoutClaimed      = fmt.Errorf("%w: payout already attempted for this withdrawal", ErrInvalidTransition)
	ErrPayoutNotClaimed   = fmt.Errorf("%w: no payout was attempted for this withdrawal", ErrInvalidTransition)
	ErrDepositNotPending  = fmt.Errorf("%w: deposit is not pending", ErrInvalidTransition)
	ErrTransactionUsed    = errors.New("transaction already credited to another deposit")
	ErrSweepInProgress    = errors.New("settlement sweep already in progress")
	ErrAccrualAlreadyRan  = errors.New("profit accrual already ran in the current window")
)

type GatewayErrorKind string

const (
	GatewayInvalidAddress        GatewayErrorKind = "InvalidAddress"
	GatewayInsufficientRailFunds GatewayErrorKind = "InsufficientRailFunds"
	GatewayRailUnavailable       GatewayErrorKind = "RailUnavailable"
	GatewayUnknown               GatewayErrorKind = "Unknown"
)

// GatewayError is a normalized payout rail failure. OutcomeUnknown is true
// when the rail may have executed the payout despite the error.
type GatewayError struct {
	Kind           GatewayErrorKind
	Code           string
	Detail         string
	OutcomeUnknown bool
	Err            error
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("gateway %s", e.Kind)
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GatewayError) Unwrap() error { return e.Err }

func (e *GatewayError) Is(target error) bool { return target == ErrGateway }

// CriticalInconsistencyError means the rail paid out but the ledger does not
// reflect it. It must reach an operator.
type CriticalInconsistencyError struct {
	WithdrawalID int64
	Reference    string
	Err          error
}

func (e *CriticalInconsistencyError) Error() string {
	return fmt.Sprintf("critical inconsistency on withdrawal %d (reference %q): %v", e.WithdrawalID, e.Reference, e.Err)
}

func (e *CriticalInconsistencyError) Unwrap() error { return e.Err }

func (e *CriticalInconsistencyError) Is(target error) bool { return target == ErrCriticalInconsistency }
