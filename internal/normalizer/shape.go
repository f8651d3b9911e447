package normalizer

import (
	"fmt"

	"github.com/arcanaland/cardwright/internal/card"
	"github.com/arcanaland/cardwright/internal/gender"
	"github.com/arcanaland/cardwright/internal/source"
)

// RecordError locates a shaping failure in the raw dataset. Err is one of
// the card package errors and can be reached with errors.As.
type RecordError struct {
	Index int // position in the raw dataset, set by the batch driver
	Name  string
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): field %s: %v", e.Index, e.Name, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Shape turns one raw record into the card variant named by its type.
func Shape(raw source.RawCard, genders gender.Lookup) (card.Card, error) {
	fail := func(field string, err error) (card.Card, error) {
		return nil, &RecordError{Name: raw.Name, Field: field, Err: err}
	}

	rarity, err := card.ParseRarity(raw.Rarity, raw.IsUnique)
	if err != nil {
		return fail("rarity", err)
	}
	set, err := card.ParseSet(raw.Set)
	if err != nil {
		return fail("set", err)
	}
	attributes, err := card.ParseAttributes(raw.Attributes)
	if err != nil {
		return fail("attributes", err)
	}
	keywords, err := card.ParseKeywords(raw.Keywords)
	if err != nil {
		return fail("keywords", err)
	}

	base := card.Base{
		Name:        raw.Name,
		Cost:        raw.Cost,
		Collectible: true,
		Rarity:      rarity,
		Set:         set,
		Attributes:  attributes,
		Keywords:    keywords,
	}

	cardType, err := card.ParseCardType(raw.Type)
	if err != nil {
		return fail("type", err)
	}

	switch cardType {
	case card.CardTypeCreature:
		g, err := genders.Lookup(raw.Name)
		if err != nil {
			return fail("gender", err)
		}
		race, err := card.ParseRace(raw.Race)
		if err != nil {
			return fail("race", err)
		}
		c := &card.Creature{
			Base:   base,
			Power:  raw.Attack,
			Health: raw.Health,
			Race:   []card.Race{race},
			Gender: g,
		}
		if raw.Text != "" {
			c.Text = card.NormalizeText(raw.Text)
		}
		return c, nil
	case card.CardTypeAction:
		return &card.Action{Base: base, Text: card.NormalizeText(raw.Text)}, nil
	case card.CardTypeItem:
		return &card.Item{Base: base, Text: card.NormalizeText(raw.Text)}, nil
	case card.CardTypeSupport:
		return &card.Support{Base: base, Text: card.NormalizeText(raw.Text)}, nil
	default:
		return fail("type", &card.InvalidCardTypeError{Value: raw.Type})
	}
}
