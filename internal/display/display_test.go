package display

import (
	"bytes"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardwright/internal/card"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := colorize.NoColor
	colorize.NoColor = !enabled
	t.Cleanup(func() { colorize.NoColor = prev })
}

func TestRenderCreature(t *testing.T) {
	withColor(t, false)

	c := &card.Creature{
		Base: card.Base{
			Name:       "Test Wolf",
			Cost:       2,
			Rarity:     card.RarityUniqueLegendary,
			Set:        card.SetCore,
			Attributes: []card.Attribute{card.AttributeStrength},
			Keywords:   []card.Keyword{card.KeywordCharge},
		},
		Power:  3,
		Health: 3,
		Race:   []card.Race{card.RaceWolf},
		Gender: card.GenderUnknown,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, c, 80))

	out := buf.String()
	assert.Contains(t, out, "Card:   Test Wolf")
	assert.Contains(t, out, "Type:   Creature · Wolf · Unknown")
	assert.Contains(t, out, "Rarity: Unique Legendary")
	assert.Contains(t, out, "Stats:  3/3")
	assert.Contains(t, out, "Keys:   Charge")
	assert.NotContains(t, out, "Text:")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderWrapsText(t *testing.T) {
	withColor(t, false)

	a := &card.Action{
		Base: card.Base{Name: "Firebolt", Rarity: card.RarityCommon, Set: card.SetCore},
		Text: []string{"Deal 2 damage to a creature or player and draw a card."},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, a, 20))

	out := buf.String()
	assert.Contains(t, out, "Text:\n")
	assert.NotContains(t, out, "Stats:")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Deal") || strings.HasPrefix(line, "draw") {
			assert.LessOrEqual(t, len(line), 20)
		}
	}
}

func TestBanner(t *testing.T) {
	withColor(t, false)
	assert.Empty(t, Banner([]card.Attribute{card.AttributeStrength}, 10))

	withColor(t, true)
	banner := Banner([]card.Attribute{card.AttributeStrength, card.AttributeWillpower}, 10)
	assert.Equal(t, 10, strings.Count(banner, "\x1b[48;2;"))
	assert.True(t, strings.HasSuffix(banner, "\x1b[0m"))

	// neutral when there are no attributes
	assert.NotEmpty(t, Banner(nil, 4))
}

func TestGradientEndpoints(t *testing.T) {
	stops := []colorful.Color{
		attributeColors[card.AttributeStrength],
		attributeColors[card.AttributeIntelligence],
	}

	assert.Equal(t, stops[0], gradientAt(stops, 0, 10))
	assert.Equal(t, stops[1], gradientAt(stops, 9, 10))
	assert.Equal(t, stops[0], gradientAt(stops[:1], 5, 10))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 8))
	assert.Equal(t, []string{"unbreakableword"}, wrapText("unbreakableword", 5))
}
