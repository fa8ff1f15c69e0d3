package campus

import "sync/atomic"

// Department is owned by exactly one University. It cannot be created on its
// own and it is destroyed when the owning University closes.
type Department struct {
	name       string
	university string
	closed     atomic.Bool
}

// Name returns the department name.
func (d *Department) Name() string { return d.name }

// University returns the name of the owning university.
func (d *Department) University() string { return d.university }

// Closed reports whether the owning university has destroyed this department.
func (d *Department) Closed() bool { return d.closed.Load() }

func (d *Department) String() string { return d.university + "/" + d.name }

func (d *Department) destroy() { d.closed.Store(true) }
