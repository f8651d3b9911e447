package validator

import (
	"testing"

	"github.com/arcanaland/cardwright/internal/gender"
	"github.com/arcanaland/cardwright/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name, cardType string) source.RawCard {
	return source.RawCard{
		Name:       name,
		Type:       cardType,
		Rarity:     "Rare",
		Set:        "Frostfall",
		Attributes: []string{"Agility"},
		Keywords:   []string{},
		Race:       "Khajiit",
	}
}

func table(t *testing.T, entries ...gender.Entry) *gender.Table {
	t.Helper()
	tbl, err := gender.New(entries)
	require.NoError(t, err)
	return tbl
}

func TestValidateCleanDataset(t *testing.T) {
	records := []source.RawCard{record("Quin'rawl Burglar", "Creature"), record("Shadowmarking", "Action")}
	genders := table(t, gender.Entry{Name: "Quin'rawl Burglar", Gender: "Female"})

	results, err := NewValidator(records, genders, nil).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateCollectsEveryError(t *testing.T) {
	records := []source.RawCard{
		record("Good", "Action"),
		record("Bad Rarity", "Action"),
		record("Bad Type", "Shout"),
		record("No Gender", "Creature"),
	}
	records[1].Rarity = "Mythic"

	results, err := NewValidator(records, table(t), nil).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 3)
	assert.Equal(t, `record 1 (Bad Rarity): field rarity: invalid rarity value "Mythic"`, results.Errors[0])
	assert.Contains(t, results.Errors[1], "record 2 (Bad Type)")
	assert.Contains(t, results.Errors[1], `invalid card type "Shout"`)
	assert.Contains(t, results.Errors[2], `creature "No Gender" has no assigned gender`)
}

func TestValidateWarnings(t *testing.T) {
	records := []source.RawCard{
		record("Twin", "Action"),
		record("Twin", "Action"),
		record("Flip Card", "Double"),
		record("Leveled Hero", "Creature"),
	}
	genders := table(t, gender.Entry{Name: "Retired Creature", Gender: "Male"})

	results, err := NewValidator(records, genders, []string{"Leveled Hero", "Never Seen"}).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{
		"duplicate card names: Twin (x2)",
		"gender table entries with no matching creature: Retired Creature",
		"exclusion list entries with no matching card: Never Seen",
		"1 retired Double cards will be dropped: Flip Card",
	}, results.Warnings)
}

func TestValidateRequiresGenderTable(t *testing.T) {
	_, err := NewValidator(nil, nil, nil).Validate()
	assert.Error(t, err)
}
