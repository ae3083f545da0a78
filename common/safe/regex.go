package safe

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrInvalidRegex is returned when a pattern fails to compile.
var ErrInvalidRegex = errors.New("invalid regular expression")

// maxCacheSize bounds the number of compiled patterns kept in memory.
// When the cache is full it is cleared rather than evicted entry by
// entry, which keeps the implementation simple and the memory bounded.
const maxCacheSize = 1024

//nolint:gochecknoglobals
var (
	regexMu    sync.RWMutex
	regexCache = make(map[string]*regexp.Regexp, maxCacheSize)
)

func cacheLoad(pattern string) (*regexp.Regexp, bool) {
	regexMu.RLock()
	defer regexMu.RUnlock()

	re, ok := regexCache[pattern]

	return re, ok
}

func cacheStore(pattern string, re *regexp.Regexp) {
	regexMu.Lock()
	defer regexMu.Unlock()

	if len(regexCache) >= maxCacheSize {
		regexCache = make(map[string]*regexp.Regexp, maxCacheSize)
	}

	regexCache[pattern] = re
}

// Compile parses a regular expression, caching the compiled form.
// Identical patterns share a single compiled *regexp.Regexp, which is
// safe because Regexp is safe for concurrent use.
func Compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := cacheLoad(pattern); ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegex, err)
	}

	cacheStore(pattern, re)

	return re, nil
}

// MatchString reports whether s contains any match of pattern.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(s), nil
}

// FindString returns the leftmost match of pattern in s, or the empty
// string when there is no match.
func FindString(pattern, s string) (string, error) {
	re, err := Compile(pattern)
	if err != nil {
		return "", err
	}

	return re.FindString(s), nil
}

// ClearCache drops every cached pattern. Intended for tests and for
// long-running processes that churn through many one-off patterns.
func ClearCache() {
	regexMu.Lock()
	defer regexMu.Unlock()

	regexCache = make(map[string]*regexp.Regexp, maxCacheSize)
}

func cacheLen() int {
	regexMu.RLock()
	defer regexMu.RUnlock()

	return len(regexCache)
}
