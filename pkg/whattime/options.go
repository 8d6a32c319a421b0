package whattime

import (
	"time"

	"github.com/codeGROOVE-dev/whattime/pkg/aliases"
	"github.com/codeGROOVE-dev/whattime/pkg/clock"
	"github.com/codeGROOVE-dev/whattime/pkg/googlemaps"
)

// Option configures a Service.
type Option func(*OptionHolder)

// OptionHolder holds configuration options.
type OptionHolder struct {
	aliases      aliases.Table
	mapsClient   googlemaps.HTTPClient
	now          func() time.Time
	mapsAPIKey   string
	mapsBaseURL  string
	language     string
	similarity   string
	timeFormat   clock.Format
	dateOrder    clock.DateOrder
	accept       float64
	confirm      float64
	cacheTTL     time.Duration
	mapsAttempts uint
	noCache      bool
	offline      bool
}

// WithMapsAPIKey enables Google Maps geocoding after the built-in gazetteer.
func WithMapsAPIKey(key string) Option {
	return func(o *OptionHolder) {
		o.mapsAPIKey = key
	}
}

// WithMapsAttempts sets how many times a failing Maps request is tried.
func WithMapsAttempts(n uint) Option {
	return func(o *OptionHolder) {
		o.mapsAttempts = n
	}
}

// WithMapsBaseURL points the Maps client at another endpoint.
func WithMapsBaseURL(u string) Option {
	return func(o *OptionHolder) {
		o.mapsBaseURL = u
	}
}

// WithMapsHTTPClient sets the transport used for Maps requests, beneath the cache.
func WithMapsHTTPClient(c googlemaps.HTTPClient) Option {
	return func(o *OptionHolder) {
		o.mapsClient = c
	}
}

// WithLanguage selects the default alias table.
func WithLanguage(lang string) Option {
	return func(o *OptionHolder) {
		o.language = lang
	}
}

// WithAliases replaces the default language's alias table.
func WithAliases(table aliases.Table) Option {
	return func(o *OptionHolder) {
		o.aliases = table
	}
}

// WithSimilarity selects the fuzzy metric by name.
func WithSimilarity(name string) Option {
	return func(o *OptionHolder) {
		o.similarity = name
	}
}

// WithThresholds overrides the fuzzy accept and confirm bands.
func WithThresholds(accept, confirm float64) Option {
	return func(o *OptionHolder) {
		o.accept = accept
		o.confirm = confirm
	}
}

// WithTimeFormat sets how times are rendered.
func WithTimeFormat(f clock.Format) Option {
	return func(o *OptionHolder) {
		o.timeFormat = f
	}
}

// WithDateOrder sets how dates are rendered.
func WithDateOrder(d clock.DateOrder) Option {
	return func(o *OptionHolder) {
		o.dateOrder = d
	}
}

// WithCacheTTL sets how long Maps responses are cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *OptionHolder) {
		o.cacheTTL = ttl
	}
}

// WithNoCache disables the Maps response cache.
func WithNoCache() Option {
	return func(o *OptionHolder) {
		o.noCache = true
	}
}

// WithOffline disables geocoding, leaving aliases, direct ids and fuzzy matching.
func WithOffline() Option {
	return func(o *OptionHolder) {
		o.offline = true
	}
}

// WithNow sets the clock used for rendering.
func WithNow(now func() time.Time) Option {
	return func(o *OptionHolder) {
		o.now = now
	}
}
