package common

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/malek0x1/starlake/common/log"
)

// ErrNilParentContext indicates that a nil parent context was provided
var ErrNilParentContext = errors.New("cannot create context from nil parent")

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("custom_context")

// CustomContextKeyValue holds the run-scoped facilities attached to a context.
type CustomContextKeyValue struct {
	// RunID correlates every log line and span produced while
	// evaluating one scheduled run.
	RunID  string
	Logger log.Logger
}

// cloneContextValues returns a copy of the container stored in ctx so
// writers never mutate a container shared with the parent context.
// A missing or mistyped value yields an empty, non-nil container.
func cloneContextValues(ctx context.Context) *CustomContextKeyValue {
	existing, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue)
	if !ok || existing == nil {
		return &CustomContextKeyValue{}
	}

	clone := *existing

	return &clone
}

// NewLoggerFromContext extracts the Logger attached to ctx.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok &&
		values != nil && values.Logger != nil {
		return values.Logger
	}

	return &log.NopLogger{}
}

// ContextWithLogger returns a child context carrying logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	values := cloneContextValues(ctx)
	values.Logger = logger

	return context.WithValue(ctx, CustomContextKey, values)
}

// ContextWithRunID returns a child context carrying runID.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	values := cloneContextValues(ctx)
	values.RunID = runID

	return context.WithValue(ctx, CustomContextKey, values)
}

// RunIDFromContext returns the run identifier attached to ctx. When the
// context carries none, a fresh UUID is generated so every run still
// has a usable correlation identifier.
func RunIDFromContext(ctx context.Context) string {
	if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && values != nil {
		if trimmed := strings.TrimSpace(values.RunID); trimmed != "" {
			return trimmed
		}
	}

	return uuid.New().String()
}

// WithTimeoutSafe creates a context with the specified timeout while
// respecting any existing deadline on the parent. When the parent's
// deadline is already tighter than the requested timeout, the child
// inherits the parent's deadline and is merely cancellable.
func WithTimeoutSafe(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	if parent == nil {
		return nil, nil, ErrNilParentContext
	}

	if deadline, ok := parent.Deadline(); ok {
		if time.Until(deadline) < timeout {
			ctx, cancel := context.WithCancel(parent)
			return ctx, cancel, nil
		}
	}

	ctx, cancel := context.WithTimeout(parent, timeout)

	return ctx, cancel, nil
}
