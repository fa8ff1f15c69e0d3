// Package registry provides a small, generic owner for values that other
// parts of a program only refer to.
//
// A Registry holds values and hands out opaque Handles. Whoever holds a
// Handle can look the value up, but holding a Handle grants no control over
// the value's lifetime: only the Registry's owner ends it, via Retire.
//
// This is the Go shape of a non-owning reference:
//
//   - the Registry is the single owner (an arena keyed by Handle)
//   - containers store Handles, never the values themselves
//   - a Handle whose value was retired resolves as missing instead of dangling
//
// Design goals:
//   - Small API surface, no reflection-driven wiring.
//   - Explicit ownership: Register and Retire are the only lifetime operations.
//   - Test-friendly typed errors (MissingHandleError) and a panic-free Resolve.
//
// Import
//
//	"github.com/sghaida/campus/registry"
package registry
