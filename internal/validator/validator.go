package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/arcanaland/cardwright/internal/card"
	"github.com/arcanaland/cardwright/internal/gender"
	"github.com/arcanaland/cardwright/internal/normalizer"
	"github.com/arcanaland/cardwright/internal/source"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a whole raw dataset and reports every problem instead of
// stopping at the first one like a batch run does.
type Validator struct {
	Records    []source.RawCard
	Genders    *gender.Table
	Results    ValidationResults
	normalizer *normalizer.Normalizer
}

func NewValidator(records []source.RawCard, genders *gender.Table, exclusions []string) *Validator {
	return &Validator{
		Records:    records,
		Genders:    genders,
		Results:    ValidationResults{},
		normalizer: normalizer.New(genders, normalizer.WithExclusions(exclusions)),
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.Genders == nil {
		return v.Results, errors.New("gender table is required")
	}

	v.validateRecords()
	v.validateDuplicateNames()
	v.validateGenderTable()
	v.validateExclusions()
	v.validateRetiredCards()

	return v.Results, nil
}

// validateRecords shapes every record that survives the pre-filter
func (v *Validator) validateRecords() {
	for i, raw := range v.Records {
		if v.normalizer.Excluded(raw) {
			continue
		}

		if _, err := normalizer.Shape(raw, v.Genders); err != nil {
			var recErr *normalizer.RecordError
			if errors.As(err, &recErr) {
				recErr.Index = i
			}
			v.Results.Errors = append(v.Results.Errors, err.Error())
		}
	}
}

// validateDuplicateNames warns about names that appear more than once
func (v *Validator) validateDuplicateNames() {
	counts := make(map[string]int)
	for _, raw := range v.normalizer.Filter(v.Records) {
		counts[raw.Name]++
	}

	var dups []string
	for name, n := range counts {
		if n > 1 {
			dups = append(dups, fmt.Sprintf("%s (x%d)", name, n))
		}
	}
	sort.Strings(dups)

	if len(dups) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("duplicate card names: %s", strings.Join(dups, ", ")))
	}
}

// validateGenderTable warns about table entries no creature uses
func (v *Validator) validateGenderTable() {
	creatures := make(map[string]bool)
	for _, raw := range v.normalizer.Filter(v.Records) {
		if raw.Type == string(card.CardTypeCreature) {
			creatures[raw.Name] = true
		}
	}

	var unused []string
	for _, name := range v.Genders.Names() {
		if !creatures[name] {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)

	if len(unused) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("gender table entries with no matching creature: %s", strings.Join(unused, ", ")))
	}
}

// validateExclusions warns about exclusion list names that match nothing
func (v *Validator) validateExclusions() {
	unused := v.normalizer.UnusedExclusions(v.Records)
	sort.Strings(unused)

	if len(unused) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("exclusion list entries with no matching card: %s", strings.Join(unused, ", ")))
	}
}

// validateRetiredCards lists the dual-sided cards the batch will drop
func (v *Validator) validateRetiredCards() {
	var retired []string
	for _, raw := range v.Records {
		if raw.Type == string(card.CardTypeDouble) {
			retired = append(retired, raw.Name)
		}
	}

	if len(retired) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d retired %s cards will be dropped: %s",
				len(retired), card.CardTypeDouble, strings.Join(retired, ", ")))
	}
}
