// Package source reads the external raw card dataset.
//
// The dataset is a JSON array of loosely typed objects. Records are read
// field by field so a malformed value is reported with its record index,
// card name and field instead of as one opaque decode failure.
package source

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tidwall/gjson"
)

// RawCard is one record of the external dataset
type RawCard struct {
	ID         string
	Name       string
	Rarity     string
	Set        string
	IsUnique   bool
	Type       string
	Attributes []string
	Cost       int
	Attack     int
	Health     int
	Race       string
	Keywords   []string
	Text       string
}

var (
	ErrInvalidJSON = errors.New("raw dataset is not valid JSON")
	ErrNotArray    = errors.New("raw dataset must be a JSON array")
)

// FieldError reports a missing or malformed field of one raw record.
type FieldError struct {
	Index  int
	Name   string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("record %d (%s): field %s: %s", e.Index, e.Name, e.Field, e.Reason)
	}
	return fmt.Sprintf("record %d: field %s: %s", e.Index, e.Field, e.Reason)
}

// LoadFile reads and decodes the raw dataset at path.
func LoadFile(path string) ([]RawCard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw dataset %s: %w", path, err)
	}

	cards, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// Decode reads every record of a raw dataset, in order.
func Decode(data []byte) ([]RawCard, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, ErrNotArray
	}

	elems := doc.Array()
	cards := make([]RawCard, 0, len(elems))
	for i, elem := range elems {
		c, err := decodeRecord(i, elem)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// record wraps one raw object and remembers the first field error.
type record struct {
	index int
	name  string
	obj   gjson.Result
	err   error
}

func decodeRecord(index int, obj gjson.Result) (RawCard, error) {
	if !obj.IsObject() {
		return RawCard{}, &FieldError{Index: index, Field: "(record)", Reason: "expected an object, got " + obj.Type.String()}
	}

	r := &record{index: index, obj: obj}
	c := RawCard{}
	c.Name = r.requiredString("name")
	r.name = c.Name
	c.Type = r.requiredString("type")
	c.ID = r.optionalString("id")
	c.Rarity = r.optionalString("rarity")
	c.Set = r.optionalString("set")
	c.IsUnique = r.optionalBool("isunique")
	c.Attributes = r.optionalStrings("attributes")
	c.Cost = r.optionalInt("cost")
	c.Attack = r.optionalInt("attack")
	c.Health = r.optionalInt("health")
	c.Race = r.optionalString("race")
	c.Keywords = r.optionalStrings("keywords")
	c.Text = r.optionalString("text")

	if r.err == nil && c.Cost < 0 {
		r.fail("cost", fmt.Sprintf("must be non-negative, got %d", c.Cost))
	}
	if r.err != nil {
		return RawCard{}, r.err
	}
	return c, nil
}

func (r *record) fail(field, reason string) {
	if r.err == nil {
		r.err = &FieldError{Index: r.index, Name: r.name, Field: field, Reason: reason}
	}
}

// get returns the field value. Absent and null fields report ok=false.
func (r *record) get(field string) (gjson.Result, bool) {
	v := r.obj.Get(gjson.Escape(field))
	if !v.Exists() || v.Type == gjson.Null {
		return v, false
	}
	return v, true
}

func (r *record) requiredString(field string) string {
	v, ok := r.get(field)
	if !ok {
		r.fail(field, "is required")
		return ""
	}
	if v.Type != gjson.String {
		r.fail(field, "expected a string, got "+v.Type.String())
		return ""
	}
	return v.Str
}

func (r *record) optionalString(field string) string {
	v, ok := r.get(field)
	if !ok {
		return ""
	}
	if v.Type != gjson.String {
		r.fail(field, "expected a string, got "+v.Type.String())
		return ""
	}
	return v.Str
}

func (r *record) optionalBool(field string) bool {
	v, ok := r.get(field)
	if !ok {
		return false
	}
	if v.Type != gjson.True && v.Type != gjson.False {
		r.fail(field, "expected a boolean, got "+v.Type.String())
		return false
	}
	return v.Bool()
}

func (r *record) optionalInt(field string) int {
	v, ok := r.get(field)
	if !ok {
		return 0
	}
	if v.Type != gjson.Number {
		r.fail(field, "expected a number, got "+v.Type.String())
		return 0
	}
	if v.Num != math.Trunc(v.Num) || math.Abs(v.Num) > math.MaxInt32 {
		r.fail(field, "expected an integer, got "+v.Raw)
		return 0
	}
	return int(v.Num)
}

func (r *record) optionalStrings(field string) []string {
	v, ok := r.get(field)
	if !ok {
		return []string{}
	}
	if !v.IsArray() {
		r.fail(field, "expected an array of strings, got "+v.Type.String())
		return nil
	}

	elems := v.Array()
	out := make([]string, 0, len(elems))
	for i, e := range elems {
		if e.Type != gjson.String {
			r.fail(fmt.Sprintf("%s[%d]", field, i), "expected a string, got "+e.Type.String())
			return nil
		}
		out = append(out, e.Str)
	}
	return out
}
