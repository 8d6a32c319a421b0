package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeGROOVE-dev/whattime/pkg/aliases"
	"github.com/codeGROOVE-dev/whattime/pkg/geo"
)

// AliasStrategy matches colloquial names against a localized alias table.
type AliasStrategy struct {
	Table aliases.Table
}

// Name implements Strategy.
func (*AliasStrategy) Name() string { return "alias" }

// Lookup implements Strategy.
func (s *AliasStrategy) Lookup(_ context.Context, q Query) (Outcome, bool) {
	if len(s.Table) == 0 {
		return Outcome{}, false
	}
	for _, phrase := range q.phrases() {
		if zone, ok := s.Table.Lookup(phrase); ok {
			return resolved(s.Name(), zone), true
		}
	}
	return Outcome{}, false
}

// DirectStrategy accepts text that is already a catalog zone identifier.
type DirectStrategy struct {
	Zones map[string]struct{}
}

// Name implements Strategy.
func (*DirectStrategy) Name() string { return "direct" }

// Lookup implements Strategy.
func (s *DirectStrategy) Lookup(_ context.Context, q Query) (Outcome, bool) {
	if q.IsStructured() {
		return Outcome{}, false
	}
	id := q.Raw()
	if _, ok := s.Zones[id]; !ok {
		return Outcome{}, false
	}
	return resolved(s.Name(), id), true
}

// GeocodeStrategy locates the place and maps its coordinates to a zone.
// A single failed attempt is a miss; nothing is retried here.
type GeocodeStrategy struct {
	Geocoder Geocoder
	Index    ZoneIndex
	Zones    map[string]struct{}
	Logger   *slog.Logger
}

// Name implements Strategy.
func (*GeocodeStrategy) Name() string { return "geocode" }

// Lookup implements Strategy.
func (s *GeocodeStrategy) Lookup(ctx context.Context, q Query) (Outcome, bool) {
	if s.Geocoder == nil || s.Index == nil {
		return Outcome{}, false
	}
	if !q.IsStructured() {
		raw := strings.TrimSpace(q.Raw())
		if _, isZone := s.Zones[raw]; isZone || strings.Contains(raw, "/") {
			return Outcome{}, false
		}
	}

	place := q.Place()
	if place.IsZero() {
		return Outcome{}, false
	}

	coords, err := s.Geocoder.Geocode(ctx, place)
	if err != nil {
		s.logger().Debug("geocoding failed", "place", place.String(), "error", err)
		return Outcome{}, false
	}
	if !coords.Valid() {
		s.logger().Debug("geocoder returned invalid coordinates", "place", place.String(), "coordinates", coords.String())
		return Outcome{}, false
	}

	zone, err := s.Index.ZoneAt(ctx, coords)
	if err != nil {
		s.logger().Debug("no time zone at coordinates", "place", place.String(), "coordinates", coords.String(), "error", err)
		return Outcome{}, false
	}
	if _, ok := s.Zones[zone]; !ok {
		s.logger().Debug("coordinate index returned unknown zone", "place", place.String(), "timezone", zone)
		return Outcome{}, false
	}
	return resolved(s.Name(), zone), true
}

func (s *GeocodeStrategy) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Chain combines geocoders; the first one returning valid coordinates wins.
func Chain(geocoders ...Geocoder) Geocoder {
	if len(geocoders) == 1 {
		return geocoders[0]
	}
	return geocoderChain(geocoders)
}

type geocoderChain []Geocoder

func (c geocoderChain) Geocode(ctx context.Context, place geo.Place) (geo.Coordinates, error) {
	var errs []error
	for _, g := range c {
		coords, err := g.Geocode(ctx, place)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !coords.Valid() {
			errs = append(errs, fmt.Errorf("invalid coordinates %s", coords))
			continue
		}
		return coords, nil
	}
	if len(errs) == 0 {
		return geo.Coordinates{}, errors.New("no geocoders configured")
	}
	return geo.Coordinates{}, errors.Join(errs...)
}

// ChainIndex combines coordinate indexes; the first zone found wins.
func ChainIndex(indexes ...ZoneIndex) ZoneIndex {
	if len(indexes) == 1 {
		return indexes[0]
	}
	return indexChain(indexes)
}

type indexChain []ZoneIndex

func (c indexChain) ZoneAt(ctx context.Context, coords geo.Coordinates) (string, error) {
	var errs []error
	for _, idx := range c {
		zone, err := idx.ZoneAt(ctx, coords)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if zone != "" {
			return zone, nil
		}
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("no zone at %s", coords)
	}
	return "", errors.Join(errs...)
}
