//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"pharmashift/internal/pkg/pgconv"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableRoundTrip(t *testing.T) {
	id := uuid.New()
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	ts := time.Date(2026, 11, 20, 9, 0, 0, 0, time.UTC)
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))
	gotTime := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&ts))
	require.NotNil(t, gotTime)
	assert.True(t, ts.Equal(*gotTime))

	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))
	assert.Equal(t, "x", *pgconv.StringPtrFromPgtype(pgconv.StringToPgtype("x")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errors.Wrap(pgx.ErrNoRows, "get shift")))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
}
