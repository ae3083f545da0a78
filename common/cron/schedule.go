package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/malek0x1/starlake/common/assert"
)

// StampLayout is the compact timestamp layout used for schedule stamps,
// producing values like "20240115T0930".
const StampLayout = "20060102T1504"

// lookbacks are the widening windows PrevBefore brackets a reference
// time with. The final window covers leap-day schedules that fire once
// every four years.
//
//nolint:gochecknoglobals
var lookbacks = []time.Duration{
	dayWindow,
	weekWindow,
	32 * dayWindow,
	367 * dayWindow,
	1500 * dayWindow,
}

// PrevBefore returns the last occurrence of expression strictly before
// ref. The engine only iterates forward, so the reference time is
// bracketed with widening lookback windows, each walked forward until
// it crosses ref. A zero ref means the current time. Returns
// ErrNoOccurrence when no window contains an occurrence.
func PrevBefore(expression string, ref time.Time) (time.Time, error) {
	sched, err := Parse(expression)
	if err != nil {
		return time.Time{}, err
	}

	if ref.IsZero() {
		ref = time.Now()
	}

	for _, lookback := range lookbacks {
		prev, found, err := lastBefore(sched, ref.Add(-lookback), ref)
		if err != nil {
			return time.Time{}, err
		}

		if found {
			return prev, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: nothing before %s", ErrNoOccurrence, ref.Format(time.RFC3339))
}

// ScheduleStamp formats the last occurrence of expression strictly
// before at using StampLayout. Orchestrators use the stamp to name the
// logical run a pipeline execution belongs to. A zero at means the
// current time.
func ScheduleStamp(expression string, at time.Time) (string, error) {
	prev, err := PrevBefore(expression, at)
	if err != nil {
		return "", err
	}

	return prev.Format(StampLayout), nil
}

// lastBefore walks the occurrences inside (begin, ref) and returns the
// last one, reporting found=false when the interval holds none.
func lastBefore(sched Schedule, begin, ref time.Time) (time.Time, bool, error) {
	var (
		prev  time.Time
		found bool
	)

	cursor := begin

	for {
		next, err := sched.Next(cursor)
		if err != nil {
			if errors.Is(err, ErrNoOccurrence) {
				return prev, found, nil
			}

			return time.Time{}, false, err
		}

		if !next.Before(ref) {
			return prev, found, nil
		}

		if !next.After(cursor) {
			asserter := assert.New(context.Background(), nil, "cron", "PrevBefore")

			return time.Time{}, false, asserter.Never(context.Background(),
				"occurrence iterator failed to advance",
				"cursor", cursor.Format(time.RFC3339),
				"next", next.Format(time.RFC3339),
			)
		}

		prev = next
		found = true
		cursor = next
	}
}
