// Package whattime answers "what time is it in <place>": it resolves a
// location to an IANA time zone and renders the current time there.
package whattime

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/whattime/pkg/aliases"
	"github.com/codeGROOVE-dev/whattime/pkg/clock"
	"github.com/codeGROOVE-dev/whattime/pkg/gazetteer"
	"github.com/codeGROOVE-dev/whattime/pkg/geoindex"
	"github.com/codeGROOVE-dev/whattime/pkg/googlemaps"
	"github.com/codeGROOVE-dev/whattime/pkg/httpcache"
	"github.com/codeGROOVE-dev/whattime/pkg/resolver"
	"github.com/codeGROOVE-dev/whattime/pkg/similarity"
)

// Report is the answer for one query.
type Report struct {
	Instant    time.Time `json:"-"`
	Status     string    `json:"status"`
	Query      string    `json:"query,omitempty"`
	Timezone   string    `json:"timezone,omitempty"`
	Spoken     string    `json:"spoken,omitempty"`
	Strategy   string    `json:"strategy,omitempty"`
	Prompt     string    `json:"prompt,omitempty"`
	Time       string    `json:"time,omitempty"`
	SpokenTime string    `json:"spoken_time,omitempty"`
	Date       string    `json:"date,omitempty"`
	MonthDate  string    `json:"month_date,omitempty"`
	Weekday    string    `json:"weekday,omitempty"`
	Offset     string    `json:"offset,omitempty"`
	Score      float64   `json:"score,omitempty"`
}

// Service resolves queries per language and renders times. It is safe for
// concurrent use.
type Service struct {
	logger      *slog.Logger
	now         func() time.Time
	cache       *httpcache.Cache
	resolvers   map[string]*resolver.Resolver
	defaultLang string
	format      clock.Format
	order       clock.DateOrder
	base        []resolver.Option
	mu          sync.Mutex
}

// NewWithLogger creates a Service. Configuration errors (unknown metric,
// language or inverted thresholds) are returned rather than papered over.
func NewWithLogger(logger *slog.Logger, opts ...Option) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	o := &OptionHolder{}
	for _, opt := range opts {
		opt(o)
	}

	name := o.similarity
	if name == "" {
		name = similarity.Default
	}
	sim, err := similarity.ByName(name)
	if err != nil {
		return nil, err
	}

	base := []resolver.Option{resolver.WithLogger(logger), resolver.WithSimilarity(sim)}

	if o.accept != 0 || o.confirm != 0 {
		t := resolver.Thresholds{Accept: o.accept, Confirm: o.confirm}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("fuzzy thresholds: %w", err)
		}
		base = append(base, resolver.WithThresholds(t))
	}

	s := &Service{
		logger:    logger,
		now:       o.now,
		format:    o.timeFormat,
		order:     o.dateOrder,
		resolvers: make(map[string]*resolver.Resolver),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.format == "" {
		s.format = clock.Format24h
	}
	if s.order == "" {
		s.order = clock.MDY
	}

	if o.offline {
		base = append(base, resolver.WithoutGeocoding())
	} else {
		base = append(base, s.geocoding(o)...)
	}
	s.base = base

	s.defaultLang = normalizeLanguage(o.language)
	if s.defaultLang == "" {
		s.defaultLang = aliases.DefaultLanguage
	}
	table := o.aliases
	if table == nil {
		table, err = aliases.Load(s.defaultLang)
		if err != nil {
			return nil, err
		}
	}
	s.resolvers[s.defaultLang] = s.build(table)

	logger.Debug("time service ready",
		"language", s.defaultLang,
		"similarity", name,
		"offline", o.offline,
		"has_maps_key", o.mapsAPIKey != "",
		"strategies", s.resolvers[s.defaultLang].Strategies())
	return s, nil
}

func (s *Service) geocoding(o *OptionHolder) []resolver.Option {
	geocoders := []resolver.Option{resolver.WithGeocoder(gazetteer.Default())}
	if o.mapsAPIKey == "" {
		return append(geocoders, resolver.WithZoneIndex(geoindex.Offline{}))
	}

	var transport googlemaps.HTTPClient = o.mapsClient
	if transport == nil {
		transport = &http.Client{Timeout: 10 * time.Second}
	}
	if !o.noCache {
		ttl := o.cacheTTL
		if ttl <= 0 {
			ttl = 12 * time.Hour
		}
		s.cache = httpcache.New(10_000, ttl, s.logger)
		transport = httpcache.NewClient(s.cache, transport, s.logger, httpcache.WithCacheable(googlemaps.Cacheable))
	}

	mapsOpts := []googlemaps.Option{
		googlemaps.WithHTTPClient(transport),
		googlemaps.WithLogger(s.logger),
		googlemaps.WithAttempts(o.mapsAttempts),
	}
	if o.mapsBaseURL != "" {
		mapsOpts = append(mapsOpts, googlemaps.WithBaseURL(o.mapsBaseURL))
	}
	maps := googlemaps.NewClient(o.mapsAPIKey, mapsOpts...)

	return append(geocoders,
		resolver.WithGeocoder(maps),
		resolver.WithZoneIndex(resolver.ChainIndex(geoindex.Offline{}, maps)),
	)
}

func (s *Service) build(table aliases.Table) *resolver.Resolver {
	opts := append([]resolver.Option{resolver.WithAliases(table)}, s.base...)
	return resolver.New(opts...)
}

func normalizeLanguage(lang string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(lang)), "_", "-")
}

// Resolver returns the resolver for lang, loading its alias table on first
// use. An empty lang selects the default language.
func (s *Service) Resolver(lang string) (*resolver.Resolver, error) {
	tag := normalizeLanguage(lang)
	if tag == "" {
		tag = s.defaultLang
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.resolvers[tag]; ok {
		return r, nil
	}
	table, err := aliases.Load(tag)
	if err != nil {
		return nil, err
	}
	r := s.build(table)
	s.resolvers[tag] = r
	return r, nil
}

// Lookup resolves q in lang and renders the time there. With a nil confirmer
// a low-confidence guess is reported as "needs_confirmation" with a prompt.
func (s *Service) Lookup(ctx context.Context, lang string, q resolver.Query, c resolver.Confirmer) (Report, error) {
	r, err := s.Resolver(lang)
	if err != nil {
		return Report{}, err
	}
	if c != nil {
		r = r.WithConfirmer(c)
	}
	out := r.Resolve(ctx, q)

	rep := Report{
		Status:   out.Status.String(),
		Query:    q.String(),
		Timezone: out.Zone,
		Spoken:   out.Spoken,
		Strategy: out.Strategy,
		Score:    out.Score,
	}
	switch out.Status {
	case resolver.NeedsConfirmation:
		rep.Prompt = resolver.Prompt(out.Spoken)
	case resolver.Resolved:
		loc, err := clock.Load(out.Zone)
		if err != nil {
			s.logger.Warn("resolved zone not loadable", "timezone", out.Zone, "error", err)
			return Report{Status: resolver.NotFound.String(), Query: rep.Query}, nil
		}
		if rep.Spoken == "" {
			rep.Spoken = resolver.Speakable(out.Zone)
		}
		s.render(&rep, loc)
	}
	return rep, nil
}

// Local renders the time in the host's zone.
func (s *Service) Local() Report {
	rep := Report{
		Status:   resolver.Resolved.String(),
		Timezone: time.Local.String(),
		Strategy: "local",
	}
	s.render(&rep, time.Local)
	return rep
}

// Zone renders the time in an IANA zone without resolving anything.
func (s *Service) Zone(zone string) (Report, error) {
	loc, err := clock.Load(zone)
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Status:   resolver.Resolved.String(),
		Timezone: zone,
		Spoken:   resolver.Speakable(zone),
		Strategy: "direct",
	}
	s.render(&rep, loc)
	return rep, nil
}

func (s *Service) render(rep *Report, loc *time.Location) {
	t := s.now().In(loc)
	rep.Instant = t
	rep.Time = clock.DisplayTime(t, s.format)
	rep.SpokenTime = clock.SpokenTime(t, s.format)
	rep.Date = clock.DisplayDate(t, s.order)
	rep.MonthDate = clock.MonthDate(t, s.order)
	rep.Weekday = clock.Weekday(t)
	rep.Offset = clock.OffsetLabel(loc, t)
}

// CachedResponses reports how many Maps responses are held in memory.
func (s *Service) CachedResponses() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}
