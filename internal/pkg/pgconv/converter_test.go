//go:build unit

package pgconv_test

import (
	"math"
	"testing"
	"time"

	"github.com/Technologic101/nextjs-dashboard/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateToPgtype(t *testing.T) {
	d := pgconv.DateToPgtype(time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC))

	assert.True(t, d.Valid)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(d))
}

func TestInt64ToInt32(t *testing.T) {
	v, err := pgconv.Int64ToInt32(1530)
	require.NoError(t, err)
	assert.Equal(t, int32(1530), v)

	_, err = pgconv.Int64ToInt32(math.MaxInt32 + 1)
	assert.ErrorIs(t, err, pgconv.ErrInt32Overflow)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
