package campus

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sghaida/campus/registry"
)

// Directory is the owner of every Teacher on campus.
//
// Hiring is the only way a teacher enters the directory and dismissal is the
// only way its lifetime ends. Universities hold the returned handles.
type Directory struct {
	teachers *registry.Registry[Teacher]
	log      zerolog.Logger
}

// NewDirectory returns an empty Directory logging to log.
func NewDirectory(log zerolog.Logger) *Directory {
	return &Directory{
		teachers: registry.New[Teacher](),
		log:      log.With().Str("component", "directory").Logger(),
	}
}

// Hire takes ownership of t and returns its handle.
func (d *Directory) Hire(t Teacher) (registry.Handle, error) {
	h, err := d.teachers.Register(t)
	if err != nil {
		return registry.NilHandle, fmt.Errorf("campus: hire: %w", err)
	}
	d.log.Debug().Str("handle", h.Short()).Str("teacher", t.Name()).Msg("teacher hired")
	return h, nil
}

// MustHire is like Hire but panics on error. Intended for examples and tests.
func (d *Directory) MustHire(t Teacher) registry.Handle {
	h, err := d.Hire(t)
	if err != nil {
		panic(err)
	}
	return h
}

// Dismiss ends the teacher's lifetime. Universities that still link h will
// see it as stale.
func (d *Directory) Dismiss(h registry.Handle) error {
	t, ok := d.teachers.Get(h)
	if err := d.teachers.Retire(h); err != nil {
		return err
	}
	if ok {
		d.log.Debug().Str("handle", h.Short()).Str("teacher", t.Name()).Msg("teacher dismissed")
	}
	return nil
}

// Lookup returns the teacher addressed by h, or registry.MissingHandleError.
func (d *Directory) Lookup(h registry.Handle) (Teacher, error) {
	return d.teachers.Lookup(h)
}

// Has reports whether h addresses a live teacher.
func (d *Directory) Has(h registry.Handle) bool { return d.teachers.Has(h) }

// resolve is the panic-free lookup used by universities while iterating.
func (d *Directory) resolve(h registry.Handle) (Teacher, bool) {
	t, ok, err := d.teachers.Resolve(h)
	if err != nil {
		d.log.Warn().Err(err).Str("handle", h.Short()).Msg("resolve failed")
		return nil, false
	}
	return t, ok
}

// Handles returns the live handles in hiring order.
func (d *Directory) Handles() []registry.Handle { return d.teachers.Handles() }

// Teachers returns the live teachers in hiring order.
func (d *Directory) Teachers() []Teacher {
	hs := d.teachers.Handles()
	out := make([]Teacher, 0, len(hs))
	for _, h := range hs {
		if t, ok := d.teachers.Get(h); ok {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of live teachers.
func (d *Directory) Len() int { return d.teachers.Len() }
