package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		date, err := ParseDate("2026-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 2026, date.Year)
		assert.Equal(t, 1, date.Month)
		assert.Equal(t, 15, date.Day)
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2026/01/15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("Invalid month", func(t *testing.T) {
		_, err := ParseDate("2026-13-15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "month must be between 1 and 12")
	})

	t.Run("Invalid day", func(t *testing.T) {
		_, err := ParseDate("2026-01-32")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "day must be between 1 and 31")
	})
}

func TestParseDateRange(t *testing.T) {
	t.Run("To is exclusive start of next day", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-01-01", "2026-01-31")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("Same day covers the whole day", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-01-15", "2026-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 24*time.Hour, to.Sub(from))
	})

	t.Run("Empty strings mean unbounded", func(t *testing.T) {
		from, to, err := ParseDateRange("", "")
		assert.NoError(t, err)
		assert.True(t, from.IsZero())
		assert.True(t, to.IsZero())
	})

	t.Run("Reversed range is rejected", func(t *testing.T) {
		_, _, err := ParseDateRange("2026-02-01", "2026-01-01")
		assert.Error(t, err)
	})
}
