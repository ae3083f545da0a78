package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	cronv3 "github.com/robfig/cron/v3"

	"github.com/malek0x1/starlake/common/assert"
)

// ErrInvalidExpression is returned when a cron expression cannot be parsed
// due to incorrect field count, out-of-range values, or malformed syntax.
var ErrInvalidExpression = errors.New("invalid cron expression")

// ErrNoOccurrence is returned when the engine cannot find a matching
// occurrence within its scheduling horizon, such as for day-of-month
// and month combinations that never exist.
var ErrNoOccurrence = errors.New("cron: no occurrence found within scheduling horizon")

// ErrNilSchedule is returned when Next is called on a nil schedule receiver.
var ErrNilSchedule = errors.New("cron schedule is nil")

// parser accepts the standard 5-field form (minute, hour, day-of-month,
// month, day-of-week) plus descriptors such as "@daily".
//
//nolint:gochecknoglobals
var parser = cronv3.NewParser(
	cronv3.Minute | cronv3.Hour | cronv3.Dom | cronv3.Month | cronv3.Dow | cronv3.Descriptor,
)

// Schedule represents a parsed cron schedule capable of computing
// the next occurrence strictly after a given reference time.
type Schedule interface {
	Next(time.Time) (time.Time, error)
}

type schedule struct {
	spec cronv3.Schedule
}

// Parse parses a standard 5-field cron expression and returns a Schedule
// that can compute occurrence times. The expression format is:
// minute hour day-of-month month day-of-week
// Descriptors such as "@daily" and "@every 1h" are also accepted.
// Returns ErrInvalidExpression if the expression is malformed or contains out-of-range values.
//
//nolint:ireturn
func Parse(expression string) (Schedule, error) {
	spec, err := parser.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	return &schedule{spec: spec}, nil
}

// Validate reports whether expression is parseable, returning
// ErrInvalidExpression when it is not.
func Validate(expression string) error {
	_, err := Parse(expression)

	return err
}

// Next computes the next occurrence strictly after the given reference
// time, in the same location. Returns ErrNoOccurrence when the engine
// finds no match within its horizon.
func (sched *schedule) Next(from time.Time) (time.Time, error) {
	if sched == nil || sched.spec == nil {
		asserter := assert.New(context.Background(), nil, "cron", "Next")
		_ = asserter.NoError(context.Background(), ErrNilSchedule, "cannot compute next occurrence from nil schedule")

		return time.Time{}, ErrNilSchedule
	}

	next := sched.spec.Next(from)
	if next.IsZero() {
		return time.Time{}, ErrNoOccurrence
	}

	return next, nil
}
