package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/mocks/repository_mocks"
)

func TestProfitService_AccrueDailyProfit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(u *repository_mocks.MockUserRepository, c *repository_mocks.MockControlRepository)
		wantUsers   int64
		wantErr     error
		wantErrText string
	}{
		{
			name: "успешное начисление",
			setup: func(u *repository_mocks.MockUserRepository, c *repository_mocks.MockControlRepository) {
				c.EXPECT().AcquireLock(ctx, profitLockName, gomock.Any(), profitWindow).Return(true, nil)
				u.EXPECT().AccrueDailyProfit(ctx).Return(int64(2), nil)
			},
			wantUsers: 2,
		},
		{
			name: "повторный запуск в том же окне",
			setup: func(u *repository_mocks.MockUserRepository, c *repository_mocks.MockControlRepository) {
				c.EXPECT().AcquireLock(ctx, profitLockName, gomock.Any(), profitWindow).Return(false, nil)
			},
			wantErr: apperrors.ErrAccrualAlreadyRan,
		},
		{
			name: "ошибка начисления снимает блокировку",
			setup: func(u *repository_mocks.MockUserRepository, c *repository_mocks.MockControlRepository) {
				c.EXPECT().AcquireLock(ctx, profitLockName, gomock.Any(), profitWindow).Return(true, nil)
				u.EXPECT().AccrueDailyProfit(ctx).Return(int64(0), errors.New("update failed"))
				c.EXPECT().ReleaseLock(gomock.Any(), profitLockName, gomock.Any()).Return(nil)
			},
			wantErrText: "update failed",
		},
		{
			name: "ошибка блокировки",
			setup: func(u *repository_mocks.MockUserRepository, c *repository_mocks.MockControlRepository) {
				c.EXPECT().AcquireLock(ctx, profitLockName, gomock.Any(), profitWindow).Return(false, errors.New("db down"))
			},
			wantErrText: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := repository_mocks.NewMockUserRepository(ctrl)
			control := repository_mocks.NewMockControlRepository(ctrl)
			tt.setup(userRepo, control)

			svc := NewProfitService(userRepo, control)
			n, err := svc.AccrueDailyProfit(ctx)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrText != "":
				assert.EqualError(t, err, tt.wantErrText)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUsers, n)
			}
		})
	}
}
