package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/models"
)

const testAddress = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"

func TestWithdrawalRepo_CreateWithdrawal(t *testing.T) {
	db := requireDB(t)
	r := NewWithdrawalRepository(db)
	ctx := context.Background()

	setupTestData(t, db)

	tests := []struct {
		name    string
		userID  int64
		amount  decimal.Decimal
		wantErr error
	}{
		{"eligible user", 1, decimal.NewFromInt(50), nil},
		{"second outstanding request", 1, decimal.NewFromInt(10), apperrors.ErrOutstandingWithdrawal},
		{"criteria not met", 2, decimal.NewFromInt(10), apperrors.ErrWithdrawalCriteriaNotMet},
		{"unknown user", 99, decimal.NewFromInt(10), apperrors.ErrUserNotFound},
		{"referral profit counts", 3, decimal.NewFromInt(20), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := r.CreateWithdrawal(ctx, tt.userID, tt.amount, testAddress)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.WithdrawalPending, w.Status)
			assert.True(t, w.Amount.Equal(tt.amount))
			assert.Nil(t, w.TransactionReference)
			assert.Nil(t, w.PayoutClaimedAt)
		})
	}

	var withdrawn decimal.Decimal
	require.NoError(t, db.QueryRow(`SELECT amount_withdrawn FROM users WHERE id = 1`).Scan(&withdrawn))
	assert.True(t, withdrawn.Equal(decimal.NewFromInt(50)), "got %s", withdrawn)

	require.NoError(t, db.QueryRow(`SELECT amount_withdrawn FROM users WHERE id = 2`).Scan(&withdrawn))
	assert.True(t, withdrawn.IsZero())
}

func TestWithdrawalRepo_ClaimAndComplete(t *testing.T) {
	db := requireDB(t)
	r := NewWithdrawalRepository(db)
	ctx := context.Background()

	setupTestData(t, db)

	w, err := r.CreateWithdrawal(ctx, 1, decimal.NewFromInt(50), testAddress)
	require.NoError(t, err)

	err = r.CompleteWithdrawal(ctx, w.ID, "TX-unclaimed")
	assert.ErrorIs(t, err, apperrors.ErrStatusChanged)

	ok, err := r.ClaimPayout(ctx, w.ID, models.WithdrawalPending)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ClaimPayout(ctx, w.ID, models.WithdrawalPending)
	require.NoError(t, err)
	assert.False(t, ok, "second claim must lose")

	require.NoError(t, r.CompleteWithdrawal(ctx, w.ID, "TX123"))

	got, err := r.GetWithdrawal(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalCompleted, got.Status)
	require.NotNil(t, got.TransactionReference)
	assert.Equal(t, "TX123", *got.TransactionReference)

	settlements, err := r.ListSettlements(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, settlements, 1)
	assert.Equal(t, "TX123", settlements[0].Reference)
	assert.Equal(t, testAddress, settlements[0].Address)

	err = r.CompleteWithdrawal(ctx, w.ID, "TX124")
	assert.ErrorIs(t, err, apperrors.ErrStatusChanged)

	ok, err = r.TransitionStatus(ctx, w.ID, models.WithdrawalPending, models.WithdrawalDelayed, "late")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWithdrawalRepo_CancelRevertsWithdrawnTotal(t *testing.T) {
	db := requireDB(t)
	r := NewWithdrawalRepository(db)
	ctx := context.Background()

	setupTestData(t, db)

	w, err := r.CreateWithdrawal(ctx, 3, decimal.NewFromInt(20), testAddress)
	require.NoError(t, err)

	ok, err := r.TransitionStatus(ctx, w.ID, models.WithdrawalPending, models.WithdrawalDelayed, "kyc")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.CancelWithdrawal(ctx, w.ID, models.WithdrawalPending, "wrong status")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.CancelWithdrawal(ctx, w.ID, models.WithdrawalDelayed, "user request")
	require.NoError(t, err)
	assert.True(t, ok)

	var withdrawn decimal.Decimal
	require.NoError(t, db.QueryRow(`SELECT amount_withdrawn FROM users WHERE id = 3`).Scan(&withdrawn))
	assert.True(t, withdrawn.Equal(decimal.NewFromInt(40)), "got %s", withdrawn)

	// a cancelled request no longer blocks a new one
	_, err = r.CreateWithdrawal(ctx, 3, decimal.NewFromInt(5), testAddress)
	assert.NoError(t, err)
}

func TestWithdrawalRepo_ClaimedCannotBeCancelled(t *testing.T) {
	db := requireDB(t)
	r := NewWithdrawalRepository(db)
	ctx := context.Background()

	setupTestData(t, db)

	w, err := r.CreateWithdrawal(ctx, 1, decimal.NewFromInt(50), testAddress)
	require.NoError(t, err)

	ok, err := r.ClaimPayout(ctx, w.ID, models.WithdrawalPending)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.CancelWithdrawal(ctx, w.ID, models.WithdrawalPending, "operator")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Requeue(ctx, w.ID, "")
	require.NoError(t, err)
	assert.False(t, ok, "an in-flight claim is not released by requeue")

	require.NoError(t, r.FlagForReview(ctx, w.ID, "PAYOUT_INCONSISTENCY reference=TX9"))

	got, err := r.GetWithdrawal(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalPending, got.Status)
	assert.True(t, got.PayoutClaimed())
	require.NotNil(t, got.Reason)
	assert.Contains(t, *got.Reason, "PAYOUT_INCONSISTENCY")

	ok, err = r.TransitionStatus(ctx, w.ID, models.WithdrawalPending, models.WithdrawalDelayed, "waiting for docs")
	require.NoError(t, err)
	assert.False(t, ok, "claimed withdrawals cannot be delayed")

	got, err = r.GetWithdrawal(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalPending, got.Status)
	require.NotNil(t, got.Reason)
	assert.Contains(t, *got.Reason, "PAYOUT_INCONSISTENCY")

	candidates, err := r.ListSweepCandidates(ctx, time.Now().Add(time.Hour), 50)
	require.NoError(t, err)
	assert.Empty(t, candidates, "claimed withdrawals are never swept")

	ok, err = r.Requeue(ctx, w.ID, "")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = r.GetWithdrawal(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, got.PayoutClaimed())
	assert.Nil(t, got.Reason)
}

func TestWithdrawalRepo_ReleasePayoutClaim(t *testing.T) {
	db := requireDB(t)
	r := NewWithdrawalRepository(db)
	ctx := context.Background()

	setupTestData(t, db)

	w, err := r.CreateWithdrawal(ctx, 1, decimal.NewFromInt(50), testAddress)
	require.NoError(t, err)

	ok, err := r.ClaimPayout(ctx, w.ID, models.WithdrawalPending)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, r.ReleasePayoutClaim(ctx, w.ID, "rail rejected"))

	got, err := r.GetWithdrawal(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, got.PayoutClaimed())
	assert.Equal(t, "rail rejected", *got.Reason)
}

func TestWithdrawalRepo_ListSweepCandidates(t *testing.T) {
	db := requireDB(t)
	r := NewWithdrawalRepository(db)
	ctx := context.Background()

	setupTestData(t, db)

	_, err := db.Exec(`
		INSERT INTO withdrawal_queue (user_id, amount, wallet_address, status, created_at) VALUES
		(1, 10, $1, 'pending', NOW() - INTERVAL '5 days'),
		(2, 20, $1, 'pending', NOW() - INTERVAL '4 days'),
		(3, 30, $1, 'pending', NOW() - INTERVAL '1 day')
	`, testAddress)
	require.NoError(t, err)

	candidates, err := r.ListSweepCandidates(ctx, time.Now().Add(-72*time.Hour), 50)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, int64(1), candidates[0].UserID)
	assert.Equal(t, int64(2), candidates[1].UserID)

	limited, err := r.ListSweepCandidates(ctx, time.Now().Add(-72*time.Hour), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	pending, err := r.ListPendingWithdrawals(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	mine, err := r.ListUserWithdrawals(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestWithdrawalRepo_GetWithdrawal_NotFound(t *testing.T) {
	db := requireDB(t)
	r := NewWithdrawalRepository(db)

	setupTestData(t, db)

	_, err := r.GetWithdrawal(context.Background(), 12345)
	assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
}
