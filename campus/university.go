package campus

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sghaida/campus/registry"
)

// University aggregates teachers and composes departments.
//
// Faculty are linked by handle and resolved through the Directory, which the
// University does not own either. Departments are created by and owned by the
// University.
type University struct {
	mu sync.RWMutex

	name string
	dir  *Directory

	faculty     []registry.Handle
	departments []*Department
	closed      bool

	log zerolog.Logger
}

// NewUniversity returns an open University resolving faculty through dir.
func NewUniversity(name string, dir *Directory) (*University, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidUniversity
	}
	if dir == nil {
		return nil, ErrNilDirectory
	}
	return &University{
		name: name,
		dir:  dir,
		log:  dir.log.With().Str("university", name).Logger(),
	}, nil
}

// Name returns the university name.
func (u *University) Name() string { return u.name }

func (u *University) String() string { return u.name }

// Appoint links the teacher addressed by h.
func (u *University) Appoint(h registry.Handle) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return ErrUniversityClosed
	}
	if !u.dir.Has(h) {
		return registry.MissingHandleError{Handle: h}
	}
	for _, cur := range u.faculty {
		if cur == h {
			return DuplicateMemberError{University: u.name, Handle: h}
		}
	}
	u.faculty = append(u.faculty, h)
	u.log.Debug().Str("handle", h.Short()).Msg("teacher appointed")
	return nil
}

// AppointAll appoints handles in order and stops at the first error.
func (u *University) AppointAll(hs ...registry.Handle) error {
	for _, h := range hs {
		if err := u.Appoint(h); err != nil {
			return err
		}
	}
	return nil
}

// Release unlinks h. The teacher itself is not affected.
func (u *University) Release(h registry.Handle) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i, cur := range u.faculty {
		if cur == h {
			u.faculty = append(u.faculty[:i], u.faculty[i+1:]...)
			u.log.Debug().Str("handle", h.Short()).Msg("teacher released")
			return nil
		}
	}
	return NotMemberError{University: u.name, Handle: h}
}

// IsMember reports whether h is linked, live or stale.
func (u *University) IsMember(h registry.Handle) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, cur := range u.faculty {
		if cur == h {
			return true
		}
	}
	return false
}

// Members returns a copy of the linked handles in appointment order.
func (u *University) Members() []registry.Handle {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]registry.Handle, len(u.faculty))
	copy(out, u.faculty)
	return out
}

// Size returns the number of linked handles, live or stale.
func (u *University) Size() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.faculty)
}

// Faculty resolves the linked handles and returns the live teachers in
// appointment order. Stale handles are skipped.
func (u *University) Faculty() []Teacher {
	hs := u.Members()
	out := make([]Teacher, 0, len(hs))
	for _, h := range hs {
		if t, ok := u.dir.resolve(h); ok {
			out = append(out, t)
		}
	}
	return out
}

// Stale returns the linked handles whose teacher has been dismissed.
func (u *University) Stale() []registry.Handle {
	var out []registry.Handle
	for _, h := range u.Members() {
		if !u.dir.Has(h) {
			out = append(out, h)
		}
	}
	return out
}

// Prune drops stale handles and returns how many were dropped.
func (u *University) Prune() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	kept := u.faculty[:0]
	for _, h := range u.faculty {
		if u.dir.Has(h) {
			kept = append(kept, h)
		}
	}
	dropped := len(u.faculty) - len(kept)
	clear(u.faculty[len(kept):])
	u.faculty = kept
	if dropped > 0 {
		u.log.Debug().Int("dropped", dropped).Msg("stale handles pruned")
	}
	return dropped
}

// Lectures asks every live faculty member to teach and collects the results.
func (u *University) Lectures() []string {
	faculty := u.Faculty()
	out := make([]string, 0, len(faculty))
	for _, t := range faculty {
		out = append(out, t.Teach())
	}
	return out
}

// Roster writes the university's faculty, one per line.
func (u *University) Roster(w io.Writer) error {
	faculty := u.Faculty()
	if len(faculty) == 0 {
		_, err := fmt.Fprintf(w, "%s has no faculty\n", u.name)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s faculty:\n", u.name); err != nil {
		return err
	}
	for _, t := range faculty {
		if _, err := fmt.Fprintf(w, "- %s\n", t.Describe()); err != nil {
			return err
		}
	}
	return nil
}

// OpenDepartment creates a department owned by this university.
func (u *University) OpenDepartment(name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidDepartment
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil, ErrUniversityClosed
	}
	for _, d := range u.departments {
		if d.name == name {
			return nil, DuplicateDepartmentError{University: u.name, Department: name}
		}
	}
	d := &Department{name: name, university: u.name}
	u.departments = append(u.departments, d)
	return d, nil
}

// Departments returns the open departments in creation order.
func (u *University) Departments() []*Department {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]*Department, len(u.departments))
	copy(out, u.departments)
	return out
}

// Close dissolves the university. Departments are destroyed with it; linked
// teachers are only unlinked and remain owned by the Directory.
//
// It returns the handles that were linked. Closing twice is a no-op.
func (u *University) Close() []registry.Handle {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil
	}
	u.closed = true

	for _, d := range u.departments {
		d.destroy()
	}
	released := u.faculty
	u.faculty = nil
	u.departments = nil

	u.log.Info().Int("released", len(released)).Msg("university closed")
	return released
}

// Closed reports whether Close has been called.
func (u *University) Closed() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.closed
}
