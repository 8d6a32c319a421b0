// Package resolver turns a spoken or typed place name into an IANA time zone.
//
// A Resolver runs a fixed cascade of strategies and stops at the first match:
//
//  1. alias table ("pacific time", "china")
//  2. geocoding the place, then mapping its coordinates to a zone
//  3. the text taken literally as a zone identifier ("America/Chicago", "UTC")
//  4. fuzzy matching against every zone name in the catalog
//
// Strategies never fail the cascade: lookup errors are logged and treated as
// "no match". Fuzzy guesses below the accept threshold are confirmed with the
// user through a Confirmer before they are used.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeGROOVE-dev/whattime/pkg/aliases"
	"github.com/codeGROOVE-dev/whattime/pkg/catalog"
	"github.com/codeGROOVE-dev/whattime/pkg/gazetteer"
	"github.com/codeGROOVE-dev/whattime/pkg/geo"
	"github.com/codeGROOVE-dev/whattime/pkg/geoindex"
	"github.com/codeGROOVE-dev/whattime/pkg/similarity"
)

// Geocoder finds coordinates for a place.
type Geocoder interface {
	Geocode(ctx context.Context, place geo.Place) (geo.Coordinates, error)
}

// ZoneIndex maps coordinates to a time zone identifier.
type ZoneIndex interface {
	ZoneAt(ctx context.Context, c geo.Coordinates) (string, error)
}

// Confirmer asks the user a yes/no question. Only an answer of "yes" accepts.
type Confirmer interface {
	AskYesNo(ctx context.Context, prompt string) (string, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (string, error)

// AskYesNo calls f.
func (f ConfirmFunc) AskYesNo(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Answer is a Confirmer that always replies with the same text.
type Answer string

// AskYesNo returns a.
func (a Answer) AskYesNo(context.Context, string) (string, error) {
	return string(a), nil
}

// Strategy is one step of the cascade. Lookup returns false for "no match".
type Strategy interface {
	Name() string
	Lookup(ctx context.Context, q Query) (Outcome, bool)
}

// Resolver resolves queries to time zones. It holds no per-query state and is
// safe for concurrent use.
type Resolver struct {
	logger     *slog.Logger
	confirmer  Confirmer
	strategies []Strategy
}

// New builds a Resolver. Without options it uses the embedded English alias
// table, the offline gazetteer and coordinate index, the full zone catalog
// and Levenshtein similarity with the default thresholds.
func New(opts ...Option) *Resolver {
	o := &OptionHolder{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	r := &Resolver{
		logger:    o.logger,
		confirmer: o.confirmer,
	}

	if len(o.strategies) > 0 {
		r.strategies = o.strategies
		return r
	}

	if o.aliases == nil {
		table, err := aliases.Load(aliases.DefaultLanguage)
		if err != nil {
			o.logger.Warn("default alias table unavailable", "error", err)
		}
		o.aliases = table
	}
	if o.zones == nil {
		o.zones = catalog.Zones()
	}
	if o.similarity == nil {
		o.similarity = similarity.Levenshtein
	}
	thresholds := o.thresholds
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds
	}
	if err := thresholds.Validate(); err != nil {
		o.logger.Warn("invalid fuzzy thresholds, using defaults", "error", err,
			"accept", thresholds.Accept, "confirm", thresholds.Confirm)
		thresholds = DefaultThresholds
	}

	zoneSet := make(map[string]struct{}, len(o.zones))
	for _, z := range o.zones {
		zoneSet[z] = struct{}{}
	}

	r.strategies = append(r.strategies, &AliasStrategy{Table: o.aliases})

	if !o.noGeocoding {
		geocoders := o.geocoders
		if len(geocoders) == 0 {
			geocoders = []Geocoder{gazetteer.Default()}
		}
		index := o.index
		if index == nil {
			index = geoindex.Offline{}
		}
		r.strategies = append(r.strategies, &GeocodeStrategy{
			Geocoder: Chain(geocoders...),
			Index:    index,
			Zones:    zoneSet,
			Logger:   o.logger,
		})
	}

	r.strategies = append(r.strategies,
		&DirectStrategy{Zones: zoneSet},
		NewFuzzyStrategy(o.zones, o.similarity, thresholds, o.logger),
	)
	return r
}

// WithConfirmer returns a copy of r that confirms guesses through c.
// A nil c makes Resolve return NeedsConfirmation outcomes to the caller.
func (r *Resolver) WithConfirmer(c Confirmer) *Resolver {
	cp := *r
	cp.confirmer = c
	return &cp
}

// Strategies returns the names of the cascade steps in order.
func (r *Resolver) Strategies() []string {
	names := make([]string, 0, len(r.strategies))
	for _, s := range r.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Resolve runs the cascade for q. It always returns a definite outcome; a
// NeedsConfirmation outcome is only returned when no Confirmer is set.
func (r *Resolver) Resolve(ctx context.Context, q Query) Outcome {
	if q.IsEmpty() {
		return Outcome{Status: NotFound}
	}

	for _, s := range r.strategies {
		out, ok := s.Lookup(ctx, q)
		if !ok {
			r.logger.Debug("strategy found no match", "strategy", s.Name(), "query", q.String())
			continue
		}
		r.logger.Debug("strategy matched", "strategy", s.Name(), "query", q.String(),
			"timezone", out.Zone, "status", out.Status, "score", out.Score)
		if out.Status == NeedsConfirmation {
			return r.confirm(ctx, out)
		}
		return out
	}
	return Outcome{Status: NotFound}
}

// Prompt is the question asked before accepting a low-confidence guess.
func Prompt(spoken string) string {
	return fmt.Sprintf("Did you mean %s?", spoken)
}

func (r *Resolver) confirm(ctx context.Context, out Outcome) Outcome {
	if r.confirmer == nil {
		return out
	}
	answer, err := r.confirmer.AskYesNo(ctx, Prompt(out.Spoken))
	if err != nil {
		r.logger.Debug("confirmation failed", "timezone", out.Zone, "error", err)
		return Outcome{Status: NotFound, Strategy: out.Strategy, Score: out.Score}
	}
	if !IsYes(answer) {
		r.logger.Debug("guess declined", "timezone", out.Zone, "answer", answer)
		return Outcome{Status: NotFound, Strategy: out.Strategy, Score: out.Score}
	}
	out.Status = Resolved
	return out
}

// IsYes reports whether a confirmation answer accepts the guess.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
