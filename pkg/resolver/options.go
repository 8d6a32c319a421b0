package resolver

import (
	"log/slog"

	"github.com/codeGROOVE-dev/whattime/pkg/aliases"
	"github.com/codeGROOVE-dev/whattime/pkg/similarity"
)

// Option configures a Resolver.
type Option func(*OptionHolder)

// OptionHolder collects Resolver settings before construction.
type OptionHolder struct {
	logger      *slog.Logger
	aliases     aliases.Table
	geocoders   []Geocoder
	index       ZoneIndex
	similarity  similarity.Func
	confirmer   Confirmer
	zones       []string
	strategies  []Strategy
	thresholds  Thresholds
	noGeocoding bool
}

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *OptionHolder) {
		o.logger = logger
	}
}

// WithAliases sets the alias table. Without it the embedded default language
// table is loaded once when the Resolver is built.
func WithAliases(table aliases.Table) Option {
	return func(o *OptionHolder) {
		o.aliases = table
	}
}

// WithGeocoder appends a geocoder. Geocoders are tried in the order given and
// the first valid coordinates win.
func WithGeocoder(g Geocoder) Option {
	return func(o *OptionHolder) {
		if g != nil {
			o.geocoders = append(o.geocoders, g)
		}
	}
}

// WithZoneIndex sets the coordinate to time zone index.
func WithZoneIndex(idx ZoneIndex) Option {
	return func(o *OptionHolder) {
		o.index = idx
	}
}

// WithoutGeocoding disables the geocoding step entirely.
func WithoutGeocoding() Option {
	return func(o *OptionHolder) {
		o.noGeocoding = true
	}
}

// WithSimilarity sets the fuzzy matcher's scoring function.
func WithSimilarity(f similarity.Func) Option {
	return func(o *OptionHolder) {
		o.similarity = f
	}
}

// WithThresholds overrides the fuzzy confidence bands.
func WithThresholds(t Thresholds) Option {
	return func(o *OptionHolder) {
		o.thresholds = t
	}
}

// WithConfirmer sets the yes/no channel used for low-confidence matches.
func WithConfirmer(c Confirmer) Option {
	return func(o *OptionHolder) {
		o.confirmer = c
	}
}

// WithCatalog replaces the zone catalog used by the direct and fuzzy strategies.
func WithCatalog(zones []string) Option {
	return func(o *OptionHolder) {
		o.zones = append([]string{}, zones...)
	}
}

// WithStrategies replaces the default cascade.
func WithStrategies(s ...Strategy) Option {
	return func(o *OptionHolder) {
		o.strategies = s
	}
}
