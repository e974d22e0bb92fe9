package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ControlRepository holds process-wide switches and durable job locks.
type ControlRepository interface {
	IsAutomaticEnabled(ctx context.Context) (bool, error)
	SetAutomaticEnabled(ctx context.Context, enabled bool) error
	AcquireLock(ctx context.Context, name, holder string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, name, holder string) error
}

type controlRepo struct {
	db *sql.DB
}

func NewControlRepository(db *sql.DB) ControlRepository {
	return &controlRepo{db: db}
}

// IsAutomaticEnabled reads the global automatic payout flag. A missing row
// means disabled.
func (r *controlRepo) IsAutomaticEnabled(ctx context.Context) (bool, error) {
	var enabled bool
	err := r.db.QueryRowContext(ctx, `SELECT enabled FROM automatic WHERE id = 1`).Scan(&enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return enabled, err
}

func (r *controlRepo) SetAutomaticEnabled(ctx context.Context, enabled bool) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO automatic (id, enabled) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET enabled = EXCLUDED.enabled
	`, enabled)
	return err
}

// AcquireLock takes the named lock for ttl unless another holder has an
// unexpired lease on it.
func (r *controlRepo) AcquireLock(ctx context.Context, name, holder string, ttl time.Duration) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO job_locks (name, holder, expires_at)
		VALUES ($1, $2, NOW() + make_interval(secs => $3::double precision))
		ON CONFLICT (name) DO UPDATE
		SET holder = EXCLUDED.holder, expires_at = EXCLUDED.expires_at
		WHERE job_locks.expires_at <= NOW()
	`, name, holder, ttl.Seconds())
	if err != nil {
		return false, err
	}
	return affectedOne(res)
}

func (r *controlRepo) ReleaseLock(ctx context.Context, name, holder string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM job_locks WHERE name = $1 AND holder = $2`, name, holder)
	return err
}
