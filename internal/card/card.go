package card

import "encoding/json"

// Card is one normalized card. It is implemented by *Action, *Item,
// *Support and *Creature and by nothing else.
type Card interface {
	Type() CardType
	Common() *Base
	isCard()
}

// Base holds the fields every card variant carries
type Base struct {
	Name        string
	Cost        int
	Collectible bool
	Rarity      Rarity
	Set         Set
	Attributes  []Attribute
	Keywords    []Keyword
}

// Common returns the shared fields of a card
func (b *Base) Common() *Base { return b }

func (*Base) isCard() {}

// Action is a one-shot card. Text is required.
type Action struct {
	Base
	Text []string
}

// Item is an equipment card. Text is required.
type Item struct {
	Base
	Text []string
}

// Support is a card that stays on the board. Text is required.
type Support struct {
	Base
	Text []string
}

// Creature is a card with power and health.
// A nil Text means the card has no rules text at all.
type Creature struct {
	Base
	Power  int
	Health int
	Race   []Race
	Gender Gender
	Text   []string
}

func (*Action) Type() CardType   { return CardTypeAction }
func (*Item) Type() CardType     { return CardTypeItem }
func (*Support) Type() CardType  { return CardTypeSupport }
func (*Creature) Type() CardType { return CardTypeCreature }

// Text returns the rules text of c and whether the card carries a text field.
func Text(c Card) ([]string, bool) {
	switch v := c.(type) {
	case *Action:
		return v.Text, true
	case *Item:
		return v.Text, true
	case *Support:
		return v.Text, true
	case *Creature:
		return v.Text, v.Text != nil
	default:
		return nil, false
	}
}

// wireCard is the persisted shape of a normalized card
type wireCard struct {
	Name        string      `json:"name"`
	Cost        int         `json:"cost"`
	Collectible bool        `json:"collectible"`
	Rarity      Rarity      `json:"rarity"`
	Set         Set         `json:"set"`
	Attributes  []Attribute `json:"attributes"`
	Keywords    []Keyword   `json:"keywords"`
	Type        CardType    `json:"type"`
	Text        *[]string   `json:"text,omitempty"`
	Power       *int        `json:"power,omitempty"`
	Health      *int        `json:"health,omitempty"`
	Race        []Race      `json:"race,omitempty"`
	Gender      Gender      `json:"gender,omitempty"`
}

func (b *Base) wire(t CardType) wireCard {
	w := wireCard{
		Name:        b.Name,
		Cost:        b.Cost,
		Collectible: b.Collectible,
		Rarity:      b.Rarity,
		Set:         b.Set,
		Attributes:  b.Attributes,
		Keywords:    b.Keywords,
		Type:        t,
	}
	if w.Attributes == nil {
		w.Attributes = []Attribute{}
	}
	if w.Keywords == nil {
		w.Keywords = []Keyword{}
	}
	return w
}

func requiredText(text []string) *[]string {
	if text == nil {
		text = []string{}
	}
	return &text
}

func (a *Action) MarshalJSON() ([]byte, error) {
	w := a.wire(CardTypeAction)
	w.Text = requiredText(a.Text)
	return json.Marshal(w)
}

func (i *Item) MarshalJSON() ([]byte, error) {
	w := i.wire(CardTypeItem)
	w.Text = requiredText(i.Text)
	return json.Marshal(w)
}

func (s *Support) MarshalJSON() ([]byte, error) {
	w := s.wire(CardTypeSupport)
	w.Text = requiredText(s.Text)
	return json.Marshal(w)
}

func (c *Creature) MarshalJSON() ([]byte, error) {
	w := c.wire(CardTypeCreature)
	power, health := c.Power, c.Health
	w.Power = &power
	w.Health = &health
	w.Race = c.Race
	w.Gender = c.Gender
	if c.Text != nil {
		text := c.Text
		w.Text = &text
	}
	return json.Marshal(w)
}
