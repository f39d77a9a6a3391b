package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-10-21")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("21/10/2025")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestInclusiveDays(t *testing.T) {
	start := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, InclusiveDays(start, start))
	assert.Equal(t, 3, InclusiveDays(start, AddDays(start, 2)))
	assert.Equal(t, 0, InclusiveDays(start, AddDays(start, -1)))
	// crosses a month boundary
	assert.Equal(t, 12, InclusiveDays(start, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2025-01-02", FormatDate(time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC)))
}
