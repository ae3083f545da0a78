// Package assert provides always-on runtime assertions for detecting programming bugs.
//
// Unlike test assertions, these assertions are intended to remain enabled in production
// code. They are designed for detecting invariant violations, programming errors, and
// impossible states - NOT for input validation or expected error conditions.
//
// Assertions are for catching bugs, not for handling user input:
//
//   - Use assertions for conditions that should NEVER be false if the code is correct
//   - Use error returns for conditions that CAN legitimately fail (I/O, user input, etc.)
//   - Assertions return errors so callers can stop execution immediately
//
// Good assertion usage:
//
//	a := assert.New(ctx, logger, "cron", "frequency")
//	if err := a.That(ctx, next.After(cursor), "occurrence iterator must advance"); err != nil {
//	    return err
//	}
//
// Bad assertion usage (use error returns instead):
//
//	// DON'T: Input validation
//	_ = a.That(ctx, expr != "", "expression is required") // Use validation errors
//
// All assertion methods accept optional key-value pairs to provide context in logs
// and errors. Odd numbers of key-value arguments are handled gracefully with a
// "MISSING_VALUE" marker.
//
// Failed assertions are logged, recorded as assertion.failed span events on the
// active OpenTelemetry span, and returned as *AssertionError matching
// ErrAssertionFailed via errors.Is. Stack traces are included only in
// non-production environments (ENV != production and GO_ENV != production).
package assert
