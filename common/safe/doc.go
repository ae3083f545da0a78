// Package safe provides hardened wrappers around standard library
// primitives that are easy to misuse under load. The regexp helpers
// route compilation through a bounded package-level cache so hot paths
// can match user-supplied patterns without recompiling them on every
// call or letting the cache grow without limit. The slice helpers give
// bounds-checked element access with error returns instead of panics.
package safe
