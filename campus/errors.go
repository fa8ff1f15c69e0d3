package campus

import (
	"errors"
	"strconv"

	"github.com/sghaida/campus/registry"
)

var (
	// ErrInvalidTeacher is returned when a teacher is constructed without a name or subject.
	ErrInvalidTeacher = errors.New("campus: invalid teacher")

	// ErrInvalidUniversity is returned when a university is constructed without a name.
	ErrInvalidUniversity = errors.New("campus: invalid university")

	// ErrInvalidDepartment is returned when a department is opened without a name.
	ErrInvalidDepartment = errors.New("campus: invalid department")

	// ErrNilDirectory is returned when a university is constructed without a directory.
	ErrNilDirectory = errors.New("campus: nil directory")

	// ErrUniversityClosed is returned when a closed university is asked to link or open anything.
	ErrUniversityClosed = errors.New("campus: university closed")
)

// DuplicateMemberError is returned when a teacher is appointed twice to the same university.
type DuplicateMemberError struct {
	University string
	Handle     registry.Handle
}

// Error implements the error interface.
func (e DuplicateMemberError) Error() string {
	// Example: campus: "MIT" already links teacher "3f1c..."
	return "campus: " + strconv.Quote(e.University) + " already links teacher " + strconv.Quote(e.Handle.String())
}

// NotMemberError is returned when releasing a teacher the university does not link.
type NotMemberError struct {
	University string
	Handle     registry.Handle
}

// Error implements the error interface.
func (e NotMemberError) Error() string {
	return "campus: " + strconv.Quote(e.University) + " does not link teacher " + strconv.Quote(e.Handle.String())
}

// DuplicateDepartmentError is returned when a department name is opened twice.
type DuplicateDepartmentError struct {
	University string
	Department string
}

// Error implements the error interface.
func (e DuplicateDepartmentError) Error() string {
	return "campus: " + strconv.Quote(e.University) + " already has department " + strconv.Quote(e.Department)
}
