package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"pgx any constraint", &pgconn.PgError{Code: "23505", ConstraintName: "x"}, "", true},
		{"pgx matching constraint", &pgconn.PgError{Code: "23505", ConstraintName: "x"}, "x", true},
		{"pgx other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "y"}, "x", false},
		{"pgx other code", &pgconn.PgError{Code: "23503"}, "", false},
		{"pq matching constraint", &pq.Error{Code: "23505", Constraint: "x"}, "x", true},
		{"pq other code", &pq.Error{Code: "40001"}, "", false},
		{"plain error", errors.New("boom"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err, tt.constraint))
		})
	}
}
