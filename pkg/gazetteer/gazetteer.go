// Package gazetteer is an offline geocoder over a curated table of well known
// places. It answers "seattle", "seattle, wa" and "paris texas" without any
// network access.
package gazetteer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/codeGROOVE-dev/whattime/pkg/geo"
)

// ErrUnknownPlace is returned when no entry matches the place.
var ErrUnknownPlace = errors.New("unknown place")

// Entry is one known place.
type Entry struct {
	Name        string
	Region      string
	RegionCode  string
	Country     string
	CountryCode string
	Latitude    float64
	Longitude   float64
}

// Coordinates returns the entry's position.
func (e Entry) Coordinates() geo.Coordinates {
	return geo.Coordinates{Latitude: e.Latitude, Longitude: e.Longitude}
}

// matches reports whether a qualifier names the entry's region or country.
func (e Entry) matches(qualifier string) bool {
	q := key(qualifier)
	switch q {
	case key(e.Region), key(e.RegionCode), key(e.Country), key(e.CountryCode):
		return true
	}
	return countryAliases[q] == e.CountryCode
}

// Gazetteer looks up places by name. It is immutable and safe for concurrent use.
type Gazetteer struct {
	byName   map[string][]Entry
	maxWords int
}

// New indexes entries by lowercase name, preserving their order.
func New(entries []Entry) *Gazetteer {
	g := &Gazetteer{byName: make(map[string][]Entry, len(entries))}
	for _, e := range entries {
		k := key(e.Name)
		g.byName[k] = append(g.byName[k], e)
		if n := len(strings.Fields(k)); n > g.maxWords {
			g.maxWords = n
		}
	}
	return g
}

var (
	defaultOnce sync.Once
	defaultGaz  *Gazetteer
)

// Default returns the gazetteer over the built-in place table.
func Default() *Gazetteer {
	defaultOnce.Do(func() {
		defaultGaz = New(knownPlaces)
	})
	return defaultGaz
}

// Len returns the number of indexed names.
func (g *Gazetteer) Len() int {
	return len(g.byName)
}

// Lookup finds the entry for p. Qualifiers must each match the entry's region
// or country. A city without qualifiers may carry them inline ("seattle
// washington"): the longest known name prefix is used and the remaining words
// become the qualifier.
func (g *Gazetteer) Lookup(p geo.Place) (Entry, error) {
	city := key(p.City)
	if city == "" {
		return Entry{}, fmt.Errorf("%w: empty city", ErrUnknownPlace)
	}

	if quals := p.Qualifiers(); len(quals) > 0 {
		if e, ok := pick(g.byName[city], quals); ok {
			return e, nil
		}
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownPlace, p.String())
	}

	words := strings.Fields(city)
	for n := min(len(words), g.maxWords); n > 0; n-- {
		entries, ok := g.byName[strings.Join(words[:n], " ")]
		if !ok {
			continue
		}
		var quals []string
		if rest := words[n:]; len(rest) > 0 {
			quals = []string{strings.Join(rest, " ")}
		}
		if e, ok := pick(entries, quals); ok {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrUnknownPlace, p.String())
}

// Geocode implements the resolver's Geocoder interface.
func (g *Gazetteer) Geocode(ctx context.Context, p geo.Place) (geo.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return geo.Coordinates{}, err
	}
	e, err := g.Lookup(p)
	if err != nil {
		return geo.Coordinates{}, err
	}
	return e.Coordinates(), nil
}

func pick(entries []Entry, quals []string) (Entry, bool) {
	for _, e := range entries {
		ok := true
		for _, q := range quals {
			if !e.matches(q) {
				ok = false
				break
			}
		}
		if ok {
			return e, true
		}
	}
	return Entry{}, false
}

func key(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
