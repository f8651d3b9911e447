// Package display renders normalized cards for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/cardwright/internal/card"
)

// attributeColors are the banner colours of each attribute
var attributeColors = map[card.Attribute]colorful.Color{
	card.AttributeStrength:     {R: 0.78, G: 0.17, B: 0.15},
	card.AttributeIntelligence: {R: 0.16, G: 0.45, B: 0.85},
	card.AttributeWillpower:    {R: 0.95, G: 0.77, B: 0.15},
	card.AttributeAgility:      {R: 0.15, G: 0.62, B: 0.30},
	card.AttributeEndurance:    {R: 0.50, G: 0.27, B: 0.62},
	card.AttributeNeutral:      {R: 0.58, G: 0.62, B: 0.63},
}

// Render writes c to w, wrapping rules text to width columns.
func Render(w io.Writer, c card.Card, width int) error {
	if width < 20 {
		width = 20
	}

	var lines []string
	if banner := Banner(c.Common().Attributes, min(width, 40)); banner != "" {
		lines = append(lines, banner)
	}
	lines = append(lines, infoLines(c)...)

	if text, ok := card.Text(c); ok && len(text) > 0 {
		lines = append(lines, "", colorize.CyanString("Text:"))
		for _, line := range text {
			lines = append(lines, wrapText(line, width)...)
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func field(label, value string) string {
	return colorize.CyanString(label) + colorize.HiWhiteString("%s", value)
}

func infoLines(c card.Card) []string {
	b := c.Common()
	lines := []string{
		field("Card:   ", b.Name),
		field("Type:   ", typeLine(c)),
		field("Cost:   ", fmt.Sprintf("%d", b.Cost)),
		field("Rarity: ", string(b.Rarity)),
		field("Set:    ", string(b.Set)),
		field("Attr:   ", joinAttributes(b.Attributes)),
	}

	if creature, ok := c.(*card.Creature); ok {
		lines = append(lines, field("Stats:  ", fmt.Sprintf("%d/%d", creature.Power, creature.Health)))
	}
	if len(b.Keywords) > 0 {
		lines = append(lines, field("Keys:   ", joinKeywords(b.Keywords)))
	}
	return lines
}

func typeLine(c card.Card) string {
	creature, ok := c.(*card.Creature)
	if !ok {
		return string(c.Type())
	}

	races := make([]string, len(creature.Race))
	for i, r := range creature.Race {
		races[i] = string(r)
	}
	return fmt.Sprintf("%s · %s · %s", c.Type(), strings.Join(races, ", "), creature.Gender)
}

func joinAttributes(attrs []card.Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}

func joinKeywords(kws []card.Keyword) string {
	parts := make([]string, len(kws))
	for i, k := range kws {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

// Banner returns a truecolor bar that fades between the attribute colours.
// It is empty when colour output is disabled.
func Banner(attrs []card.Attribute, width int) string {
	if colorize.NoColor || width <= 0 {
		return ""
	}

	stops := make([]colorful.Color, 0, len(attrs))
	for _, a := range attrs {
		stops = append(stops, attributeColors[a])
	}
	if len(stops) == 0 {
		stops = append(stops, attributeColors[card.AttributeNeutral])
	}

	var buffer strings.Builder
	for x := 0; x < width; x++ {
		r, g, b := gradientAt(stops, x, width).RGB255()
		buffer.WriteString(fmt.Sprintf("\x1b[48;2;%d;%d;%dm ", r, g, b))
	}
	buffer.WriteString("\x1b[0m")
	return buffer.String()
}

// gradientAt returns the colour at column x of a width-wide gradient through stops
func gradientAt(stops []colorful.Color, x, width int) colorful.Color {
	if len(stops) == 1 || width == 1 {
		return stops[0]
	}

	pos := float64(x) / float64(width-1) * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	frac := pos - float64(i)
	if frac == 0 {
		return stops[i]
	}
	return stops[i].BlendLab(stops[i+1], frac).Clamped()
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
