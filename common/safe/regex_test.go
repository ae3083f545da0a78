//go:build unit

package safe

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests share the package-level cache, so they deliberately do
// not run in parallel.

func TestCompile(t *testing.T) {
	ClearCache()

	t.Run("valid pattern", func(t *testing.T) {
		re, err := Compile(`[^a-zA-Z0-9\-_]`)

		require.NoError(t, err)
		require.NotNil(t, re)
		assert.True(t, re.MatchString("a b"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		re, err := Compile(`[unclosed`)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRegex)
		assert.Nil(t, re)
	})

	t.Run("caching returns the same instance", func(t *testing.T) {
		ClearCache()

		first, err := Compile(`\d+`)
		require.NoError(t, err)

		second, err := Compile(`\d+`)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, cacheLen())
	})

	t.Run("invalid patterns are not cached", func(t *testing.T) {
		ClearCache()

		_, err := Compile(`(`)
		require.Error(t, err)

		assert.Equal(t, 0, cacheLen())
	})
}

func TestMatchString(t *testing.T) {
	ClearCache()

	t.Run("match found", func(t *testing.T) {
		ok, err := MatchString(`^\d{8}T\d{4}$`, "20240115T0930")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		ok, err := MatchString(`^\d{8}T\d{4}$`, "2024-01-15")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		ok, err := MatchString(`+[`, "anything")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRegex)
		assert.False(t, ok)
	})
}

func TestFindString(t *testing.T) {
	ClearCache()

	t.Run("leftmost match", func(t *testing.T) {
		got, err := FindString(`\d+`, "run 42 of 99")

		require.NoError(t, err)
		assert.Equal(t, "42", got)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got, err := FindString(`\d+`, "no digits here")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		got, err := FindString(`)`, "anything")

		require.Error(t, err)
		assert.Empty(t, got)
	})
}

func TestClearCache(t *testing.T) {
	ClearCache()

	_, err := Compile(`[a-z]+`)
	require.NoError(t, err)
	require.Equal(t, 1, cacheLen())

	ClearCache()

	assert.Equal(t, 0, cacheLen())
}

func TestCacheBound(t *testing.T) {
	ClearCache()

	_, err := Compile(`stable`)
	require.NoError(t, err)

	regexMu.Lock()
	for i := 0; i < maxCacheSize; i++ {
		regexCache["filler-"+strconv.Itoa(i)] = nil
	}
	regexMu.Unlock()

	// The next store sees a full cache and resets it.
	_, err = Compile(`fresh`)
	require.NoError(t, err)

	assert.Equal(t, 1, cacheLen())
}
