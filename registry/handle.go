package registry

import (
	"github.com/google/uuid"
)

// Handle identifies a value owned by a Registry.
//
// Handles are comparable and cheap to copy. They carry no ownership.
type Handle struct {
	id uuid.UUID
}

// NilHandle is the zero Handle. No Registry ever issues it.
var NilHandle = Handle{}

// NewHandle returns a fresh random Handle.
func NewHandle() Handle { return Handle{id: uuid.New()} }

// ParseHandle parses the textual form produced by Handle.String.
func ParseHandle(s string) (Handle, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilHandle, InvalidHandleError{Raw: s}
	}
	return Handle{id: id}, nil
}

// MustParseHandle is like ParseHandle but panics on malformed input.
func MustParseHandle(s string) Handle {
	h, err := ParseHandle(s)
	if err != nil {
		panic(err)
	}
	return h
}

// IsZero reports whether h is NilHandle.
func (h Handle) IsZero() bool { return h.id == uuid.Nil }

// String implements fmt.Stringer.
func (h Handle) String() string { return h.id.String() }

// Short returns the first eight characters of the textual form, for logs.
func (h Handle) Short() string { return h.String()[:8] }
