// Package gender loads the creature gender table.
//
// The table is supplied next to the raw dataset as a list of {name, gender}
// pairs. It is read once and never mutated during a batch run.
package gender

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/cardwright/internal/card"
	"gopkg.in/yaml.v3"
)

// Entry is one row of the gender table artifact
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Gender string `json:"gender" yaml:"gender"`
}

// Lookup resolves a creature's gender by card name.
type Lookup interface {
	Lookup(name string) (card.Gender, error)
}

// Table is an immutable name -> gender snapshot
type Table struct {
	genders map[string]card.Gender
}

// EntryError reports a table row whose gender is not a known value.
type EntryError struct {
	Index int
	Name  string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("gender table entry %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// DuplicateError reports a name assigned two different genders.
type DuplicateError struct {
	Name   string
	First  card.Gender
	Second card.Gender
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("gender table assigns %q both %s and %s", e.Name, e.First, e.Second)
}

// New builds a table from entries. Every gender must parse; a name may
// repeat only with the same gender.
func New(entries []Entry) (*Table, error) {
	genders := make(map[string]card.Gender, len(entries))
	for i, e := range entries {
		g, err := card.ParseGender(e.Gender)
		if err != nil {
			return nil, &EntryError{Index: i, Name: e.Name, Err: err}
		}
		if prev, ok := genders[e.Name]; ok && prev != g {
			return nil, &DuplicateError{Name: e.Name, First: prev, Second: g}
		}
		genders[e.Name] = g
	}
	return &Table{genders: genders}, nil
}

// Lookup returns the gender assigned to name.
func (t *Table) Lookup(name string) (card.Gender, error) {
	g, ok := t.genders[name]
	if !ok {
		return "", &card.MissingGenderAssignmentError{Name: name}
	}
	return g, nil
}

// Len returns the number of distinct names in the table.
func (t *Table) Len() int { return len(t.genders) }

// Names returns every name in the table, in no particular order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.genders))
	for name := range t.genders {
		names = append(names, name)
	}
	return names
}

// LoadFile reads a gender table. Files ending in .yaml or .yml are parsed
// as YAML, everything else as JSON.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gender table %s: %w", path, err)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse gender table %s: %w", path, err)
	}

	t, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
