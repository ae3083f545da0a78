package common

import (
	"time"
)

const (
	// DateLayout is the canonical YYYY-MM-DD date format.
	DateLayout = "2006-01-02"

	// DateTimeLayout is the canonical date and time format.
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Today returns the current date formatted as DateLayout. The clock is
// read on every call rather than captured at startup.
func Today() string {
	return time.Now().Format(DateLayout)
}

// IsValidDate reports whether date is a real calendar date in strict
// DateLayout form. Lenient spellings such as "2024-1-5" are rejected
// even though time.Parse would accept them.
func IsValidDate(date string) bool {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}

	return parsed.Format(DateLayout) == date
}

// IsValidDateTime reports whether value is a real timestamp in strict
// DateTimeLayout form.
func IsValidDateTime(value string) bool {
	parsed, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return false
	}

	return parsed.Format(DateTimeLayout) == value
}
