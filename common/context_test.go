//go:build unit

package common

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malek0x1/starlake/common/log"
)

func TestCloneContextValues(t *testing.T) {
	t.Parallel()

	t.Run("nil context value returns empty non-nil struct", func(t *testing.T) {
		t.Parallel()

		clone := cloneContextValues(context.Background())

		require.NotNil(t, clone)
		assert.Empty(t, clone.RunID)
		assert.Nil(t, clone.Logger)
	})

	t.Run("context with wrong type returns empty non-nil struct", func(t *testing.T) {
		t.Parallel()

		ctx := context.WithValue(context.Background(), CustomContextKey, "not-a-struct")
		clone := cloneContextValues(ctx)

		require.NotNil(t, clone)
		assert.Empty(t, clone.RunID)
	})

	t.Run("preserves existing values", func(t *testing.T) {
		t.Parallel()

		nopLogger := &log.NopLogger{}
		original := &CustomContextKeyValue{
			RunID:  "run-abc",
			Logger: nopLogger,
		}
		ctx := context.WithValue(context.Background(), CustomContextKey, original)

		clone := cloneContextValues(ctx)

		require.NotNil(t, clone)
		assert.Equal(t, "run-abc", clone.RunID)
		assert.Equal(t, nopLogger, clone.Logger)
	})

	t.Run("clone is independent of the original", func(t *testing.T) {
		t.Parallel()

		nopLogger := &log.NopLogger{}
		original := &CustomContextKeyValue{
			RunID:  "run-independent",
			Logger: nopLogger,
		}
		ctx := context.WithValue(context.Background(), CustomContextKey, original)

		clone := cloneContextValues(ctx)
		clone.RunID = "CHANGED"
		clone.Logger = nil

		assert.Equal(t, "run-independent", original.RunID)
		assert.Equal(t, nopLogger, original.Logger)
	})
}

func TestCloneContextValues_Concurrent(t *testing.T) {
	t.Parallel()

	original := &CustomContextKeyValue{RunID: "run-concurrent"}
	parentCtx := context.WithValue(context.Background(), CustomContextKey, original)

	const goroutines = 50

	var wg sync.WaitGroup

	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			clone := cloneContextValues(parentCtx)
			clone.RunID = "modified"
		}()
	}

	wg.Wait()

	assert.Equal(t, "run-concurrent", original.RunID)
}

func TestNewLoggerFromContext(t *testing.T) {
	t.Parallel()

	t.Run("missing logger falls back to nop", func(t *testing.T) {
		t.Parallel()

		logger := NewLoggerFromContext(context.Background())

		assert.IsType(t, &log.NopLogger{}, logger)
	})

	t.Run("returns attached logger", func(t *testing.T) {
		t.Parallel()

		nopLogger := &log.NopLogger{}
		ctx := ContextWithLogger(context.Background(), nopLogger)

		assert.Equal(t, nopLogger, NewLoggerFromContext(ctx))
	})
}

func TestContextWithLogger_DoesNotMutateParent(t *testing.T) {
	t.Parallel()

	parent := ContextWithRunID(context.Background(), "run-parent")
	child := ContextWithLogger(parent, &log.NopLogger{})

	parentValues, ok := parent.Value(CustomContextKey).(*CustomContextKeyValue)
	require.True(t, ok)
	assert.Nil(t, parentValues.Logger)

	childValues, ok := child.Value(CustomContextKey).(*CustomContextKeyValue)
	require.True(t, ok)
	assert.NotNil(t, childValues.Logger)
	assert.Equal(t, "run-parent", childValues.RunID)
}

func TestRunIDFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns attached run id", func(t *testing.T) {
		t.Parallel()

		ctx := ContextWithRunID(context.Background(), "run-42")

		assert.Equal(t, "run-42", RunIDFromContext(ctx))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		ctx := ContextWithRunID(context.Background(), "  run-42  ")

		assert.Equal(t, "run-42", RunIDFromContext(ctx))
	})

	t.Run("missing run id generates a uuid", func(t *testing.T) {
		t.Parallel()

		got := RunIDFromContext(context.Background())

		_, err := uuid.Parse(got)
		require.NoError(t, err)
	})

	t.Run("blank run id generates a uuid", func(t *testing.T) {
		t.Parallel()

		ctx := ContextWithRunID(context.Background(), "   ")
		got := RunIDFromContext(ctx)

		_, err := uuid.Parse(got)
		require.NoError(t, err)
	})
}

func TestWithTimeoutSafe(t *testing.T) {
	t.Parallel()

	t.Run("nil parent returns error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel, err := WithTimeoutSafe(nil, time.Second) //nolint:staticcheck

		require.ErrorIs(t, err, ErrNilParentContext)
		assert.Nil(t, ctx)
		assert.Nil(t, cancel)
	})

	t.Run("parent without deadline gets the timeout", func(t *testing.T) {
		t.Parallel()

		ctx, cancel, err := WithTimeoutSafe(context.Background(), time.Minute)
		require.NoError(t, err)

		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})

	t.Run("tighter parent deadline wins", func(t *testing.T) {
		t.Parallel()

		parent, parentCancel := context.WithTimeout(context.Background(), time.Second)
		defer parentCancel()

		parentDeadline, ok := parent.Deadline()
		require.True(t, ok)

		ctx, cancel, err := WithTimeoutSafe(parent, time.Hour)
		require.NoError(t, err)

		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Equal(t, parentDeadline, deadline)
	})
}
