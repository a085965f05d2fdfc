package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/error"
)

func TestPeriodString(t *testing.T) {
	testCases := []struct {
		name     string
		period   Period
		expected string
	}{
		{"January", Period{Year: 2024, Month: time.January}, "2024-01"},
		{"December", Period{Year: 2023, Month: time.December}, "2023-12"},
		{"SingleDigitMonth", Period{Year: 2025, Month: time.March}, "2025-03"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.period.String())
		})
	}
}

func TestParsePeriod(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		period, err := ParsePeriod("2024-07")
		require.NoError(t, err)
		assert.Equal(t, Period{Year: 2024, Month: time.July}, period)
		assert.Equal(t, "2024-07", period.String())
	})

	t.Run("Invalid format", func(t *testing.T) {
		for _, input := range []string{"", "2024", "2024-13", "07-2024", "2024/07"} {
			_, err := ParsePeriod(input)
			assert.ErrorIs(t, err, errs.ErrInvalidInput, "input %q", input)
		}
	})
}

func TestPeriodOf(t *testing.T) {
	period := PeriodOf(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, Period{Year: 2024, Month: time.February}, period)
}

func TestPeriodBounds(t *testing.T) {
	t.Run("January", func(t *testing.T) {
		p := Period{Year: 2024, Month: time.January}
		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), p.Start())
		assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), p.End())
	})

	t.Run("Leap February", func(t *testing.T) {
		p := Period{Year: 2024, Month: time.February}
		assert.Equal(t, 29, p.End().Day())
	})

	t.Run("Non-leap February", func(t *testing.T) {
		p := Period{Year: 2023, Month: time.February}
		assert.Equal(t, 28, p.End().Day())
	})
}
