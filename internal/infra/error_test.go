//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"pharmashift/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{"explicit kind wins", errors.New("no rows"), []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, nil, infra.KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, nil, infra.KindForeignKeyViolated},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, nil, infra.KindConflict},
		{"anything else", errors.New("boom"), nil, infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
