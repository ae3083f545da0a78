package log

import (
	"context"
	"fmt"
)

// SafeError logs err through logger at error level. When production is
// true only the error type is logged, keeping identifiers and secrets
// embedded in error strings out of production logs. A nil logger or nil
// error is a no-op, as is a logger with error level disabled.
func SafeError(logger Logger, ctx context.Context, msg string, err error, production bool) {
	if logger == nil || err == nil || !logger.Enabled(LevelError) {
		return
	}

	logger.Log(ctx, LevelError, msg, errorField(err, production))
}

// errorField renders err either redacted (type only) or in full.
func errorField(err error, redact bool) Field {
	if redact {
		return String("error_type", fmt.Sprintf("%T", err))
	}

	return Err(err)
}
