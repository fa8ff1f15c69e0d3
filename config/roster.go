// Package config loads campus rosters and process settings.
//
// A roster names the teachers to hire and the universities to open. It can be
// written in TOML or YAML; DefaultRoster returns the embedded tutorial roster.
package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed default_roster.yaml
var defaultRosterFS embed.FS

const defaultRosterFile = "default_roster.yaml"

const (
	KindProfessor = "professor"
	KindLecturer  = "lecturer"
)

var (
	// ErrUnsupportedFormat is returned for roster files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported roster format")

	// ErrInvalidRoster wraps every validation failure.
	ErrInvalidRoster = errors.New("config: invalid roster")
)

// Roster is the declarative description of a campus.
type Roster struct {
	Teachers     []TeacherSpec    `toml:"teachers" yaml:"teachers"`
	Universities []UniversitySpec `toml:"universities" yaml:"universities"`
}

// TeacherSpec describes one teacher. Kind selects the variant.
type TeacherSpec struct {
	ID         string `toml:"id" yaml:"id"`
	Kind       string `toml:"kind" yaml:"kind"`
	Title      string `toml:"title" yaml:"title"`
	Name       string `toml:"name" yaml:"name"`
	Subject    string `toml:"subject" yaml:"subject"`
	Department string `toml:"department" yaml:"department"`
	Office     string `toml:"office" yaml:"office"`
	Host       string `toml:"host" yaml:"host"`
}

// UniversitySpec describes one university. Faculty lists teacher ids.
type UniversitySpec struct {
	Name        string   `toml:"name" yaml:"name"`
	Departments []string `toml:"departments" yaml:"departments"`
	Faculty     []string `toml:"faculty" yaml:"faculty"`
}

// LoadRoster reads, decodes and validates a roster file.
// The decoder is chosen by extension: .toml, .yaml or .yml.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	var r Roster
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		r, err = decodeTOML(data)
	case ".yaml", ".yml":
		r, err = decodeYAML(data)
	default:
		return Roster{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Roster{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}

	r.normalize()
	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}

// DefaultRoster returns the embedded tutorial roster.
func DefaultRoster() (Roster, error) {
	data, err := defaultRosterFS.ReadFile(defaultRosterFile)
	if err != nil {
		return Roster{}, fmt.Errorf("config: read embedded roster: %w", err)
	}
	r, err := decodeYAML(data)
	if err != nil {
		return Roster{}, fmt.Errorf("config: parse embedded roster: %w", err)
	}
	r.normalize()
	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}

func decodeTOML(data []byte) (Roster, error) {
	var r Roster
	meta, err := toml.Decode(string(data), &r)
	if err != nil {
		return Roster{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Roster{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return r, nil
}

func decodeYAML(data []byte) (Roster, error) {
	var r Roster
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		// an empty document is an empty roster, as in TOML
		if errors.Is(err, io.EOF) {
			return Roster{}, nil
		}
		return Roster{}, err
	}
	return r, nil
}

func (r *Roster) normalize() {
	for i := range r.Teachers {
		t := &r.Teachers[i]
		t.ID = strings.TrimSpace(t.ID)
		t.Kind = strings.ToLower(strings.TrimSpace(t.Kind))
		if t.Kind == "" {
			t.Kind = KindProfessor
		}
	}
	for i := range r.Universities {
		u := &r.Universities[i]
		u.Name = strings.TrimSpace(u.Name)
		for j := range u.Faculty {
			u.Faculty[j] = strings.TrimSpace(u.Faculty[j])
		}
		for j := range u.Departments {
			u.Departments[j] = strings.TrimSpace(u.Departments[j])
		}
	}
}

// Validate checks ids, kinds, names, departments and faculty references.
func (r Roster) Validate() error {
	ids := make(map[string]struct{}, len(r.Teachers))
	for i, t := range r.Teachers {
		if t.ID == "" {
			return invalidf("teachers[%d]: id is required", i)
		}
		if _, dup := ids[t.ID]; dup {
			return invalidf("teachers[%d]: duplicate id %s", i, strconv.Quote(t.ID))
		}
		ids[t.ID] = struct{}{}

		switch t.Kind {
		case "", KindProfessor, KindLecturer:
		default:
			return invalidf("teacher %s: unknown kind %s", strconv.Quote(t.ID), strconv.Quote(t.Kind))
		}
		if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Subject) == "" {
			return invalidf("teacher %s: name and subject are required", strconv.Quote(t.ID))
		}
	}

	names := make(map[string]struct{}, len(r.Universities))
	for i, u := range r.Universities {
		if u.Name == "" {
			return invalidf("universities[%d]: name is required", i)
		}
		if _, dup := names[u.Name]; dup {
			return invalidf("universities[%d]: duplicate name %s", i, strconv.Quote(u.Name))
		}
		names[u.Name] = struct{}{}

		depts := make(map[string]struct{}, len(u.Departments))
		for j, dept := range u.Departments {
			dept = strings.TrimSpace(dept)
			if dept == "" {
				return invalidf("university %s: departments[%d]: name is required", strconv.Quote(u.Name), j)
			}
			if _, dup := depts[dept]; dup {
				return invalidf("university %s: department %s listed twice", strconv.Quote(u.Name), strconv.Quote(dept))
			}
			depts[dept] = struct{}{}
		}

		seen := make(map[string]struct{}, len(u.Faculty))
		for _, id := range u.Faculty {
			if _, ok := ids[id]; !ok {
				return invalidf("university %s: unknown teacher %s", strconv.Quote(u.Name), strconv.Quote(id))
			}
			if _, dup := seen[id]; dup {
				return invalidf("university %s: teacher %s listed twice", strconv.Quote(u.Name), strconv.Quote(id))
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidRoster}, args...)...)
}
