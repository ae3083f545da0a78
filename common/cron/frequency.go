package cron

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/malek0x1/starlake/common/assert"
	"github.com/malek0x1/starlake/common/safe"
)

// Period selects the measurement window for frequency counting.
type Period string

// Supported measurement windows.
const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

const (
	dayWindow  = 24 * time.Hour
	weekWindow = 7 * dayWindow

	// monthWindow is a fixed 30-day approximation, not calendar-aware.
	monthWindow = 30 * dayWindow
)

// ErrUnsupportedPeriod is returned when a period is not one of the
// recognized measurement windows.
var ErrUnsupportedPeriod = errors.New("unsupported period: choose from day, week, month")

// window returns the period's duration, or ErrUnsupportedPeriod.
func (period Period) window() (time.Duration, error) {
	switch period {
	case PeriodDay:
		return dayWindow, nil
	case PeriodWeek:
		return weekWindow, nil
	case PeriodMonth:
		return monthWindow, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrUnsupportedPeriod, string(period))
	}
}

// ExpressionFrequency pairs a cron expression with its occurrence count.
type ExpressionFrequency struct {
	Expression string
	Count      int
}

// Frequency counts how many times expression fires within one period
// starting at start. Occurrences are counted strictly after start and
// strictly before start plus the period's window. A zero start means
// the current time, read when the call is made.
//
// The period is validated before the expression is parsed and before
// any iteration begins. An expression that never fires within the
// window yields 0 without error.
func Frequency(expression string, start time.Time, period Period) (int, error) {
	window, err := period.window()
	if err != nil {
		return 0, err
	}

	sched, err := Parse(expression)
	if err != nil {
		return 0, err
	}

	if start.IsZero() {
		start = time.Now()
	}

	end := start.Add(window)
	cursor := start
	count := 0

	for {
		next, err := sched.Next(cursor)
		if err != nil {
			if errors.Is(err, ErrNoOccurrence) {
				return count, nil
			}

			return count, err
		}

		if !next.Before(end) {
			return count, nil
		}

		// Each occurrence must land strictly after the cursor,
		// otherwise the loop would never reach end.
		if !next.After(cursor) {
			asserter := assert.New(context.Background(), nil, "cron", "Frequency")

			return count, asserter.Never(context.Background(),
				"occurrence iterator failed to advance",
				"expression", expression,
				"cursor", cursor.Format(time.RFC3339),
				"next", next.Format(time.RFC3339),
			)
		}

		cursor = next
		count++
	}
}

// SortByFrequency ranks expressions by how often they fire during the
// period, most frequent first. The clock is read once and shared by
// every expression so counts are mutually comparable.
func SortByFrequency(expressions []string, period Period) ([]ExpressionFrequency, error) {
	return SortByFrequencyAt(expressions, time.Now(), period)
}

// SortByFrequencyAt ranks expressions against an explicit shared start
// time, most frequent first. The sort is stable: expressions with equal
// counts keep their relative input order. Any malformed expression or
// unsupported period fails the whole call with no partial results.
func SortByFrequencyAt(expressions []string, start time.Time, period Period) ([]ExpressionFrequency, error) {
	if _, err := period.window(); err != nil {
		return nil, err
	}

	if start.IsZero() {
		start = time.Now()
	}

	frequencies := make([]ExpressionFrequency, 0, len(expressions))

	for _, expression := range expressions {
		count, err := Frequency(expression, start, period)
		if err != nil {
			return nil, err
		}

		frequencies = append(frequencies, ExpressionFrequency{
			Expression: expression,
			Count:      count,
		})
	}

	slices.SortStableFunc(frequencies, func(a, b ExpressionFrequency) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return frequencies, nil
}

// MostFrequent returns the expression that fires most often during the
// period, evaluated against a single clock reading. An empty input
// yields safe.ErrEmptySlice.
func MostFrequent(expressions []string, period Period) (ExpressionFrequency, error) {
	ranked, err := SortByFrequency(expressions, period)
	if err != nil {
		return ExpressionFrequency{}, err
	}

	return safe.First(ranked)
}
