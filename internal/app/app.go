// Package app is the composition root: it turns a roster into a wired campus.
package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/sghaida/campus/campus"
	"github.com/sghaida/campus/config"
	"github.com/sghaida/campus/registry"
)

// Campus is a fully wired set of teachers and universities.
//
// Directory owns the teachers. Universities only link them.
type Campus struct {
	Directory    *campus.Directory
	Universities []*campus.University

	handles map[string]registry.Handle
	log     zerolog.Logger
}

// Build hires every teacher in roster, opens every university with its
// departments, and appoints faculty by roster id.
func Build(roster config.Roster, log zerolog.Logger) (*Campus, error) {
	if err := roster.Validate(); err != nil {
		return nil, err
	}

	c := &Campus{
		Directory: campus.NewDirectory(log),
		handles:   make(map[string]registry.Handle, len(roster.Teachers)),
		log:       log,
	}

	for _, spec := range roster.Teachers {
		t, err := newTeacher(spec)
		if err != nil {
			return nil, fmt.Errorf("app: teacher %q: %w", spec.ID, err)
		}
		h, err := c.Directory.Hire(t)
		if err != nil {
			return nil, fmt.Errorf("app: teacher %q: %w", spec.ID, err)
		}
		c.handles[spec.ID] = h
	}

	for _, spec := range roster.Universities {
		u, err := campus.NewUniversity(spec.Name, c.Directory)
		if err != nil {
			return nil, fmt.Errorf("app: university %q: %w", spec.Name, err)
		}
		for _, dept := range spec.Departments {
			if _, err := u.OpenDepartment(dept); err != nil {
				return nil, fmt.Errorf("app: university %q: %w", spec.Name, err)
			}
		}
		for _, id := range spec.Faculty {
			if err := u.Appoint(c.handles[id]); err != nil {
				return nil, fmt.Errorf("app: university %q: appoint %q: %w", spec.Name, id, err)
			}
		}
		c.Universities = append(c.Universities, u)
	}

	log.Info().
		Int("teachers", c.Directory.Len()).
		Int("universities", len(c.Universities)).
		Msg("campus built")
	return c, nil
}

func newTeacher(spec config.TeacherSpec) (campus.Teacher, error) {
	if spec.Kind == config.KindLecturer {
		l, err := campus.NewLecturer(spec.Name, spec.Subject, spec.Host)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
	p, err := campus.NewProfessor(spec.Title, spec.Name, spec.Subject,
		campus.WithDepartment(spec.Department),
		campus.WithOffice(spec.Office),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// University returns the university with the given name.
func (c *Campus) University(name string) (*campus.University, bool) {
	for _, u := range c.Universities {
		if u.Name() == name {
			return u, true
		}
	}
	return nil, false
}

// Handle returns the directory handle for a roster teacher id.
func (c *Campus) Handle(id string) (registry.Handle, bool) {
	h, ok := c.handles[id]
	return h, ok
}

// Demo runs the aggregation walkthrough and writes it to w:
//
//  1. every university prints its roster and lectures
//  2. the first university closes
//  3. its former faculty are looked up in the directory and still teach
func (c *Campus) Demo(w io.Writer) error {
	for _, u := range c.Universities {
		if err := u.Roster(w); err != nil {
			return err
		}
		for _, line := range u.Lectures() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	if len(c.Universities) == 0 {
		_, err := fmt.Fprintln(w, "no universities")
		return err
	}

	first := c.Universities[0]
	released := first.Close()
	if _, err := fmt.Fprintf(w, "%s closed; %d teacher(s) released\n", first.Name(), len(released)); err != nil {
		return err
	}
	for _, h := range released {
		t, err := c.Directory.Lookup(h)
		if err != nil {
			c.log.Warn().Err(err).Str("handle", h.Short()).Msg("released teacher no longer in directory")
			continue
		}
		if _, err := fmt.Fprintln(w, t.Teach()); err != nil {
			return err
		}
	}
	return nil
}
