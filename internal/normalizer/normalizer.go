// Package normalizer runs a batch of raw card records through the shaping
// step. A batch either produces every card or fails on the first bad record;
// there is no partial output.
package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/arcanaland/cardwright/internal/card"
	"github.com/arcanaland/cardwright/internal/gender"
	"github.com/arcanaland/cardwright/internal/source"
	log "github.com/sirupsen/logrus"
)

// Normalizer holds the read-only inputs of a batch run
type Normalizer struct {
	genders gender.Lookup
	exclude map[string]struct{}
	logger  log.FieldLogger
}

type Option func(*Normalizer)

// WithExclusions drops records whose name is in names before shaping.
func WithExclusions(names []string) Option {
	return func(n *Normalizer) {
		for _, name := range names {
			n.exclude[name] = struct{}{}
		}
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

func New(genders gender.Lookup, opts ...Option) *Normalizer {
	n := &Normalizer{
		genders: genders,
		exclude: make(map[string]struct{}),
		logger:  log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Report summarises one batch run
type Report struct {
	Input    int
	Excluded int
	Retired  int
	ByType   map[card.CardType]int
}

// Output returns the number of cards produced.
func (r Report) Output() int {
	total := 0
	for _, n := range r.ByType {
		total += n
	}
	return total
}

type indexed struct {
	index int
	raw   source.RawCard
}

// Excluded reports whether a record is dropped before shaping, either by
// name or because it uses the retired dual-sided type.
func (n *Normalizer) Excluded(raw source.RawCard) bool {
	if raw.Type == string(card.CardTypeDouble) {
		return true
	}
	_, ok := n.exclude[raw.Name]
	return ok
}

// Filter returns the records that reach shaping, in input order.
func (n *Normalizer) Filter(raws []source.RawCard) []source.RawCard {
	kept := make([]source.RawCard, 0, len(raws))
	for _, item := range n.filter(raws, nil) {
		kept = append(kept, item.raw)
	}
	return kept
}

func (n *Normalizer) filter(raws []source.RawCard, report *Report) []indexed {
	kept := make([]indexed, 0, len(raws))
	for i, raw := range raws {
		if !n.Excluded(raw) {
			kept = append(kept, indexed{index: i, raw: raw})
			continue
		}
		if report == nil {
			continue
		}
		if raw.Type == string(card.CardTypeDouble) {
			report.Retired++
		} else {
			report.Excluded++
		}
	}
	return kept
}

// Run filters raws and shapes every surviving record in order. The first
// failure aborts the batch and no cards are returned.
func (n *Normalizer) Run(raws []source.RawCard) ([]card.Card, Report, error) {
	report := Report{Input: len(raws), ByType: make(map[card.CardType]int)}
	kept := n.filter(raws, &report)
	n.warnUnusedExclusions(raws)

	cards := make([]card.Card, 0, len(kept))
	for _, item := range kept {
		c, err := Shape(item.raw, n.genders)
		if err != nil {
			var recErr *RecordError
			if errors.As(err, &recErr) {
				recErr.Index = item.index
			}
			n.logger.WithFields(log.Fields{
				"index": item.index,
				"card":  item.raw.Name,
			}).WithError(err).Error("batch aborted")
			return nil, Report{}, err
		}

		report.ByType[c.Type()]++
		n.logger.WithFields(log.Fields{
			"card": c.Common().Name,
			"type": c.Type(),
		}).Debug("card normalized")
		cards = append(cards, c)
	}

	n.logger.WithFields(log.Fields{
		"input":    report.Input,
		"excluded": report.Excluded,
		"retired":  report.Retired,
		"output":   report.Output(),
	}).Info("batch complete")

	return cards, report, nil
}

// UnusedExclusions returns exclusion names that match no record in raws.
func (n *Normalizer) UnusedExclusions(raws []source.RawCard) []string {
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		seen[raw.Name] = true
	}

	var unused []string
	for name := range n.exclude {
		if !seen[name] {
			unused = append(unused, name)
		}
	}
	return unused
}

func (n *Normalizer) warnUnusedExclusions(raws []source.RawCard) {
	for _, name := range n.UnusedExclusions(raws) {
		n.logger.WithField("card", name).Warn("exclusion list entry matches no record")
	}
}

// Write serialises cards as an indented JSON array.
func Write(w io.Writer, cards []card.Card) error {
	if cards == nil {
		cards = []card.Card{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("failed to encode cards: %w", err)
	}
	return nil
}
