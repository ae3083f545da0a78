//go:build unit

package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday(t *testing.T) {
	t.Parallel()

	today := Today()

	assert.Len(t, today, 10)
	assert.True(t, IsValidDate(today))

	parsed, err := time.Parse(DateLayout, today)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 25*time.Hour)
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{name: "valid date", date: "2024-01-15", expected: true},
		{name: "single digit month and day rejected", date: "2024-1-5", expected: false},
		{name: "year boundary", date: "2024-12-31", expected: true},
		{name: "missing dashes", date: "20240115", expected: false},
		{name: "wrong separator", date: "2024/01/15", expected: false},
		{name: "with time", date: "2024-01-15 14:30:45", expected: false},
		{name: "empty string", date: "", expected: false},
		{name: "invalid month", date: "2024-13-15", expected: false},
		{name: "invalid day", date: "2024-01-32", expected: false},
		{name: "leap year february 29", date: "2024-02-29", expected: true},
		{name: "non-leap year february 29", date: "2023-02-29", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsValidDate(tt.date))
		})
	}
}

func TestIsValidDateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{name: "valid date time", value: "2024-01-15 14:30:45", expected: true},
		{name: "start of day", value: "2024-01-15 00:00:00", expected: true},
		{name: "date only", value: "2024-01-15", expected: false},
		{name: "rfc3339", value: "2024-01-15T14:30:45Z", expected: false},
		{name: "missing seconds", value: "2024-01-15 14:30", expected: false},
		{name: "invalid hour", value: "2024-01-15 25:30:45", expected: false},
		{name: "single digit values rejected", value: "2024-1-5 1:2:3", expected: false},
		{name: "leading zeros accepted", value: "2024-01-05 01:02:03", expected: true},
		{name: "empty string", value: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsValidDateTime(tt.value))
		})
	}
}
