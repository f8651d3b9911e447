package normalizer

import (
	"testing"

	"github.com/arcanaland/cardwright/internal/card"
	"github.com/arcanaland/cardwright/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeUniqueLegendaryCreature(t *testing.T) {
	rawWolf := source.RawCard{
		Name:       "Test Wolf",
		Type:       "Creature",
		Race:       "Wolf",
		Rarity:     "Legendary",
		IsUnique:   true,
		Cost:       2,
		Attack:     3,
		Health:     3,
		Set:        "Core",
		Attributes: []string{"Strength"},
		Keywords:   []string{},
		Text:       "",
	}

	c, err := Shape(rawWolf, genders(t, "Test Wolf", "Unknown"))
	require.NoError(t, err)

	wolf, ok := c.(*card.Creature)
	require.True(t, ok)
	assert.Equal(t, card.RarityUniqueLegendary, wolf.Rarity)
	assert.Equal(t, []card.Race{card.RaceWolf}, wolf.Race)
	assert.Equal(t, 3, wolf.Power)
	assert.Equal(t, 3, wolf.Health)
	assert.Equal(t, 2, wolf.Cost)
	assert.Equal(t, card.GenderUnknown, wolf.Gender)
	assert.Equal(t, card.SetCore, wolf.Set)
	assert.Equal(t, []card.Attribute{card.AttributeStrength}, wolf.Attributes)
	assert.Nil(t, wolf.Text)

	_, hasText := card.Text(wolf)
	assert.False(t, hasText)
}

func TestShapeCreatureWithText(t *testing.T) {
	r := raw("Whiterun Protector", "Creature")
	r.Race = "Nord"
	r.Text = "Guard\r\nSummon: +1/+1."

	c, err := Shape(r, genders(t, "Whiterun Protector", "Male"))
	require.NoError(t, err)

	creature := c.(*card.Creature)
	assert.Equal(t, []string{"Guard", "Summon: +1/+1."}, creature.Text)
}

func TestShapeActionText(t *testing.T) {
	r := raw("Firebolt", "Action")
	r.Text = "Line one\nLine two\n\n"

	c, err := Shape(r, genders(t))
	require.NoError(t, err)

	action, ok := c.(*card.Action)
	require.True(t, ok)
	assert.Equal(t, []string{"Line one", "Line two"}, action.Text)
}

func TestShapeEmptyTextIsEmptyListForNonCreatures(t *testing.T) {
	for _, cardType := range []string{"Action", "Item", "Support"} {
		c, err := Shape(raw("Blank", cardType), genders(t))
		require.NoError(t, err)

		lines, ok := card.Text(c)
		assert.True(t, ok, cardType)
		assert.NotNil(t, lines, cardType)
		assert.Empty(t, lines, cardType)
	}
}

func TestShapeStatsAreCopiedVerbatim(t *testing.T) {
	r := raw("Odd Beast", "Creature")
	r.Race = "Beast"
	r.Attack = -2
	r.Health = 0

	c, err := Shape(r, genders(t, "Odd Beast", "Unknown"))
	require.NoError(t, err)
	assert.Equal(t, -2, c.(*card.Creature).Power)
	assert.Equal(t, 0, c.(*card.Creature).Health)
}

func TestShapeSetIsCaseInsensitive(t *testing.T) {
	r := raw("Firebolt", "Action")
	r.Set = "HEROES OF SKYRIM"

	c, err := Shape(r, genders(t))
	require.NoError(t, err)
	assert.Equal(t, card.SetHeroesOfSkyrim, c.Common().Set)
}

func TestShapeErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*source.RawCard)
		field  string
		enum   string
		value  string
	}{
		{"rarity", func(r *source.RawCard) { r.Rarity = "Mythic" }, "rarity", "rarity", "Mythic"},
		{"set", func(r *source.RawCard) { r.Set = "Morrowind" }, "set", "set", "Morrowind"},
		{"attribute", func(r *source.RawCard) { r.Attributes = []string{"Luck"} }, "attributes", "attribute", "Luck"},
		{"keyword", func(r *source.RawCard) { r.Keywords = []string{"Guard", "Slay"} }, "keywords", "keyword", "Slay"},
		{"race", func(r *source.RawCard) { r.Race = "Dragon" }, "race", "race", "Dragon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := raw("Broken", "Creature")
			r.Race = "Orc"
			tt.mutate(&r)

			_, err := Shape(r, genders(t, "Broken", "Female"))

			var recErr *RecordError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, "Broken", recErr.Name)
			assert.Equal(t, tt.field, recErr.Field)

			var enumErr *card.InvalidEnumValueError
			require.ErrorAs(t, err, &enumErr)
			assert.Equal(t, tt.enum, enumErr.Enum)
			assert.Equal(t, tt.value, enumErr.Value)
		})
	}
}

func TestShapeMissingGender(t *testing.T) {
	r := raw("Unlisted Orc", "Creature")
	r.Race = "Orc"

	_, err := Shape(r, genders(t, "Someone Else", "Male"))

	var missing *card.MissingGenderAssignmentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Unlisted Orc", missing.Name)
}

func TestShapeGenderOnlyNeededForCreatures(t *testing.T) {
	_, err := Shape(raw("Firebolt", "Action"), genders(t))
	assert.NoError(t, err)
}

func TestShapeRetiredTypeIsInvalidWhenShapedDirectly(t *testing.T) {
	_, err := Shape(raw("Two-Sided Card", "Double"), genders(t))

	var typeErr *card.InvalidCardTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "Double", typeErr.Value)
}
