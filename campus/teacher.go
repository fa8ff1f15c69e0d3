package campus

import (
	"strings"
)

// Teacher is anything that can teach, independent of where it is employed.
type Teacher interface {
	// Name is the teacher's display name (including any title).
	Name() string
	// Teach performs the teaching action and returns what happened.
	Teach() string
	// Describe returns the teacher's descriptive attributes on one line.
	Describe() string
}

// Professor is a permanent member of academic staff.
type Professor struct {
	title      string
	name       string
	subject    string
	department string
	office     string
}

// ProfessorOption sets an optional attribute on a Professor.
type ProfessorOption func(*Professor)

// WithDepartment records the department the professor belongs to.
func WithDepartment(dept string) ProfessorOption {
	return func(p *Professor) { p.department = strings.TrimSpace(dept) }
}

// WithOffice records the professor's office.
func WithOffice(office string) ProfessorOption {
	return func(p *Professor) { p.office = strings.TrimSpace(office) }
}

// NewProfessor constructs a Professor. title may be empty; name and subject may not.
// Nil options are skipped.
func NewProfessor(title, name, subject string, opts ...ProfessorOption) (*Professor, error) {
	p := &Professor{
		title:   strings.TrimSpace(title),
		name:    strings.TrimSpace(name),
		subject: strings.TrimSpace(subject),
	}
	if p.name == "" || p.subject == "" {
		return nil, ErrInvalidTeacher
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p, nil
}

// Name implements Teacher, e.g. "Dr. Smith".
func (p *Professor) Name() string {
	if p.title == "" {
		return p.name
	}
	return p.title + " " + p.name
}

// Title returns the academic title, possibly empty.
func (p *Professor) Title() string { return p.title }

// Subject returns the subject taught.
func (p *Professor) Subject() string { return p.subject }

// Department returns the department, possibly empty.
func (p *Professor) Department() string { return p.department }

// Office returns the office, possibly empty.
func (p *Professor) Office() string { return p.office }

// Teach implements Teacher, e.g. "Dr. Smith is teaching Computer Science".
func (p *Professor) Teach() string {
	return p.Name() + " is teaching " + p.subject
}

// Describe implements Teacher, e.g. "Dr. Smith (Computer Science, Engineering department, office B-204)".
func (p *Professor) Describe() string {
	attrs := []string{p.subject}
	if p.department != "" {
		attrs = append(attrs, p.department+" department")
	}
	if p.office != "" {
		attrs = append(attrs, "office "+p.office)
	}
	return p.Name() + " (" + strings.Join(attrs, ", ") + ")"
}

func (p *Professor) String() string { return p.Name() }

// Lecturer is a visiting teacher hosted by another institution.
type Lecturer struct {
	name    string
	subject string
	host    string
}

// NewLecturer constructs a Lecturer. host may be empty; name and subject may not.
func NewLecturer(name, subject, host string) (*Lecturer, error) {
	l := &Lecturer{
		name:    strings.TrimSpace(name),
		subject: strings.TrimSpace(subject),
		host:    strings.TrimSpace(host),
	}
	if l.name == "" || l.subject == "" {
		return nil, ErrInvalidTeacher
	}
	return l, nil
}

// Name implements Teacher.
func (l *Lecturer) Name() string { return l.name }

// Subject returns the subject lectured on.
func (l *Lecturer) Subject() string { return l.subject }

// Host returns the lecturer's home institution, possibly empty.
func (l *Lecturer) Host() string { return l.host }

// Teach implements Teacher, e.g. "Ada Lovelace is lecturing on Mathematics".
func (l *Lecturer) Teach() string {
	return l.name + " is lecturing on " + l.subject
}

// Describe implements Teacher.
func (l *Lecturer) Describe() string {
	if l.host == "" {
		return l.name + " (" + l.subject + ", visiting)"
	}
	return l.name + " (" + l.subject + ", visiting from " + l.host + ")"
}

func (l *Lecturer) String() string { return l.name }

var (
	_ Teacher = (*Professor)(nil)
	_ Teacher = (*Lecturer)(nil)
)
