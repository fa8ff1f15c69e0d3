package registry

import (
	"errors"
	"strconv"
)

var (
	// ErrNilRegistry is returned when an operation is invoked on a nil *Registry.
	ErrNilRegistry = errors.New("registry: nil registry")

	// ErrNilValue is returned by Register when the value is nil
	// (nil interface, or a typed nil pointer/map/slice/func/chan).
	ErrNilValue = errors.New("registry: nil value")

	// ErrRegistryPanic is returned if Resolve panics internally.
	ErrRegistryPanic = errors.New("registry: panic during Resolve")
)

// MissingHandleError is returned when a Handle has no live value:
// it was never registered, or its value has been retired.
type MissingHandleError struct{ Handle Handle }

// Error implements the error interface.
func (e MissingHandleError) Error() string {
	// Example: registry: handle "3f1c..." missing
	return "registry: handle " + strconv.Quote(e.Handle.String()) + " missing"
}

// InvalidHandleError is returned by ParseHandle for malformed input.
type InvalidHandleError struct{ Raw string }

// Error implements the error interface.
func (e InvalidHandleError) Error() string {
	return "registry: invalid handle " + strconv.Quote(e.Raw)
}
