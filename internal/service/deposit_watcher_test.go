package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/a2sh3r/settlement/internal/mocks/repository_mocks"
	"github.com/a2sh3r/settlement/internal/mocks/service_mocks"
	"github.com/a2sh3r/settlement/internal/models"
)

func TestDepositWatcher_checkDeposits(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		setup func(repo *repository_mocks.MockDepositRepository, verifier *service_mocks.MockDepositService, seen *sync.Map)
		want  []int64
	}{
		{
			name: "проверка всех ожидающих депозитов",
			setup: func(repo *repository_mocks.MockDepositRepository, verifier *service_mocks.MockDepositService, seen *sync.Map) {
				repo.EXPECT().ExpireStaleDeposits(ctx, now).Return(int64(1), nil)
				repo.EXPECT().ListPendingDeposits(ctx, depositBatchSize).Return([]models.Deposit{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
				verifier.EXPECT().VerifyDeposit(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, id int64) (*models.VerifyResult, error) {
						seen.Store(id, true)
						if id == 2 {
							return nil, errors.New("indexer down")
						}
						return &models.VerifyResult{Verified: id == 1}, nil
					}).Times(3)
			},
			want: []int64{1, 2, 3},
		},
		{
			name: "ошибка истечения не мешает проверке",
			setup: func(repo *repository_mocks.MockDepositRepository, verifier *service_mocks.MockDepositService, seen *sync.Map) {
				repo.EXPECT().ExpireStaleDeposits(ctx, now).Return(int64(0), errors.New("db error"))
				repo.EXPECT().ListPendingDeposits(ctx, depositBatchSize).Return([]models.Deposit{{ID: 7}}, nil)
				verifier.EXPECT().VerifyDeposit(gomock.Any(), int64(7)).DoAndReturn(
					func(_ context.Context, id int64) (*models.VerifyResult, error) {
						seen.Store(id, true)
						return &models.VerifyResult{}, nil
					})
			},
			want: []int64{7},
		},
		{
			name: "ошибка получения списка",
			setup: func(repo *repository_mocks.MockDepositRepository, verifier *service_mocks.MockDepositService, seen *sync.Map) {
				repo.EXPECT().ExpireStaleDeposits(ctx, now).Return(int64(0), nil)
				repo.EXPECT().ListPendingDeposits(ctx, depositBatchSize).Return(nil, errors.New("db error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockDepositRepository(ctrl)
			verifier := service_mocks.NewMockDepositService(ctrl)
			var seen sync.Map
			tt.setup(repo, verifier, &seen)

			w := NewDepositWatcher(repo, verifier, time.Minute, 2)
			w.now = func() time.Time { return now }
			w.checkDeposits(ctx)

			var got []int64
			seen.Range(func(k, _ any) bool {
				got = append(got, k.(int64))
				return true
			})
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestDepositWatcher_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockDepositRepository(ctrl)
	verifier := service_mocks.NewMockDepositService(ctrl)
	repo.EXPECT().ExpireStaleDeposits(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	repo.EXPECT().ListPendingDeposits(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	w := NewDepositWatcher(repo, verifier, 10*time.Millisecond, 0)
	assert.Equal(t, 1, w.workers)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}
