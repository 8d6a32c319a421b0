package resolver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/whattime/pkg/aliases"
	"github.com/codeGROOVE-dev/whattime/pkg/geo"
)

type fakeGeocoder struct {
	coords map[string]geo.Coordinates
	err    error
	calls  int
	places []geo.Place
}

func (f *fakeGeocoder) Geocode(_ context.Context, p geo.Place) (geo.Coordinates, error) {
	f.calls++
	f.places = append(f.places, p)
	if f.err != nil {
		return geo.Coordinates{}, f.err
	}
	c, ok := f.coords[p.City]
	if !ok {
		return geo.Coordinates{}, errors.New("not found")
	}
	return c, nil
}

type fakeIndex struct {
	zone string
	err  error
}

func (f fakeIndex) ZoneAt(context.Context, geo.Coordinates) (string, error) {
	return f.zone, f.err
}

type countingStrategy struct {
	name  string
	out   Outcome
	ok    bool
	calls int
}

func (s *countingStrategy) Name() string { return s.name }

func (s *countingStrategy) Lookup(context.Context, Query) (Outcome, bool) {
	s.calls++
	return s.out, s.ok
}

// scoreFor returns a similarity function that gives score only when the
// candidate form equals target.
func scoreFor(target string, score float64) func(a, b string) float64 {
	return func(_, b string) float64 {
		if b == target {
			return score
		}
		return 0
	}
}

func fuzzyOnly(sim func(a, b string) float64, opts ...Option) *Resolver {
	base := []Option{
		WithAliases(aliases.Table{}),
		WithoutGeocoding(),
		WithCatalog([]string{"America/Chicago", "Europe/Paris"}),
		WithSimilarity(sim),
	}
	return New(append(base, opts...)...)
}

func TestDefaultStrategyOrder(t *testing.T) {
	r := New()
	want := []string{"alias", "geocode", "direct", "fuzzy"}
	if diff := cmp.Diff(want, r.Strategies()); diff != "" {
		t.Errorf("strategy order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alias", "direct", "fuzzy"}, New(WithoutGeocoding()).Strategies()); diff != "" {
		t.Errorf("strategy order without geocoding mismatch (-want +got):\n%s", diff)
	}
}

func TestCascadeStopsAtFirstMatch(t *testing.T) {
	first := &countingStrategy{name: "first"}
	second := &countingStrategy{name: "second", ok: true, out: resolved("second", "Europe/Paris")}
	third := &countingStrategy{name: "third", ok: true, out: resolved("third", "Asia/Tokyo")}

	r := New(WithStrategies(first, second, third))
	got := r.Resolve(context.Background(), Text("anything"))

	if got.Zone != "Europe/Paris" || got.Strategy != "second" || got.Status != Resolved {
		t.Errorf("Resolve = %+v, want Europe/Paris from second", got)
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 0 {
		t.Errorf("calls = %d,%d,%d; want 1,1,0", first.calls, second.calls, third.calls)
	}
}

func TestCascadeAllMiss(t *testing.T) {
	a := &countingStrategy{name: "a"}
	b := &countingStrategy{name: "b"}
	got := New(WithStrategies(a, b)).Resolve(context.Background(), Text("nowhere"))
	if got.Status != NotFound || got.Zone != "" {
		t.Errorf("Resolve = %+v, want NotFound", got)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("every strategy should run once, got %d,%d", a.calls, b.calls)
	}
}

func TestEmptyQuery(t *testing.T) {
	s := &countingStrategy{name: "s", ok: true, out: resolved("s", "UTC")}
	r := New(WithStrategies(s))
	for _, q := range []Query{Text(""), Text("   "), Structured(geo.Place{})} {
		if got := r.Resolve(context.Background(), q); got.Status != NotFound {
			t.Errorf("Resolve(%q) = %+v, want NotFound", q, got)
		}
	}
	if s.calls != 0 {
		t.Errorf("strategies ran for empty queries: %d calls", s.calls)
	}
}

func TestAliasMatchBypassesLaterStrategies(t *testing.T) {
	geocoder := &fakeGeocoder{}
	simCalls := 0
	sim := func(_, _ string) float64 {
		simCalls++
		return 1
	}
	r := New(
		WithAliases(aliases.Table{"pacific time": "America/Los_Angeles", "china": "Asia/Shanghai"}),
		WithGeocoder(geocoder),
		WithZoneIndex(fakeIndex{zone: "Europe/Paris"}),
		WithSimilarity(sim),
	)

	for _, in := range []string{"Pacific Time", "  pacific   time ", "CHINA", "china."} {
		got := r.Resolve(context.Background(), Text(in))
		if !got.Found() || got.Strategy != "alias" {
			t.Errorf("Resolve(%q) = %+v, want alias match", in, got)
		}
	}
	if geocoder.calls != 0 || simCalls != 0 {
		t.Errorf("alias hits must not reach geocoding or fuzzy matching: geocoder=%d similarity=%d", geocoder.calls, simCalls)
	}
}

func TestAliasStripsFillerWords(t *testing.T) {
	r := New(WithAliases(aliases.Table{"los angeles": "America/Los_Angeles"}), WithoutGeocoding())
	for _, in := range []string{"los angeles time", "Los Angeles time zone", "los angeles timezone"} {
		got := r.Resolve(context.Background(), Text(in))
		if got.Zone != "America/Los_Angeles" || got.Strategy != "alias" {
			t.Errorf("Resolve(%q) = %+v", in, got)
		}
	}
}

func TestDirectCodes(t *testing.T) {
	geocoder := &fakeGeocoder{}
	r := New(WithAliases(aliases.Table{}), WithGeocoder(geocoder), WithZoneIndex(fakeIndex{}))
	for _, code := range []string{"UTC", "EST", "America/Chicago", "America/Los_Angeles", "America/North_Dakota/Center"} {
		got := r.Resolve(context.Background(), Text(code))
		if got.Zone != code || got.Strategy != "direct" || got.Status != Resolved {
			t.Errorf("Resolve(%q) = %+v, want unchanged direct match", code, got)
		}
	}
	if geocoder.calls != 0 {
		t.Errorf("zone codes must not be geocoded, got %d calls", geocoder.calls)
	}
}

func TestDirectStrategyExactOnly(t *testing.T) {
	s := &DirectStrategy{Zones: map[string]struct{}{"UTC": {}, "America/Chicago": {}}}
	for in, want := range map[string]bool{
		"UTC":             true,
		"America/Chicago": true,
		"utc":             false,
		"america/chicago": false,
		" UTC":            false,
	} {
		if _, ok := s.Lookup(context.Background(), Text(in)); ok != want {
			t.Errorf("Lookup(%q) ok = %v, want %v", in, ok, want)
		}
	}
	if _, ok := s.Lookup(context.Background(), Structured(geo.Place{City: "UTC"})); ok {
		t.Error("structured queries are never zone codes")
	}
}

func TestGeocodeStrategy(t *testing.T) {
	zones := map[string]struct{}{"America/Los_Angeles": {}}
	seattle := geo.Coordinates{Latitude: 47.6, Longitude: -122.3}

	tests := []struct {
		name     string
		geocoder *fakeGeocoder
		index    fakeIndex
		query    Query
		want     bool
	}{
		{"match", &fakeGeocoder{coords: map[string]geo.Coordinates{"seattle": seattle}}, fakeIndex{zone: "America/Los_Angeles"}, Text("Seattle"), true},
		{"structured", &fakeGeocoder{coords: map[string]geo.Coordinates{"seattle": seattle}}, fakeIndex{zone: "America/Los_Angeles"}, Structured(geo.Place{City: "seattle", State: "washington"}), true},
		{"geocoder error", &fakeGeocoder{err: errors.New("network down")}, fakeIndex{zone: "America/Los_Angeles"}, Text("seattle"), false},
		{"sentinel coordinates", &fakeGeocoder{coords: map[string]geo.Coordinates{"seattle": {}}}, fakeIndex{zone: "America/Los_Angeles"}, Text("seattle"), false},
		{"index error", &fakeGeocoder{coords: map[string]geo.Coordinates{"seattle": seattle}}, fakeIndex{err: errors.New("ocean")}, Text("seattle"), false},
		{"unknown zone", &fakeGeocoder{coords: map[string]geo.Coordinates{"seattle": seattle}}, fakeIndex{zone: "Mars/Base"}, Text("seattle"), false},
		{"empty zone", &fakeGeocoder{coords: map[string]geo.Coordinates{"seattle": seattle}}, fakeIndex{}, Text("seattle"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &GeocodeStrategy{Geocoder: tt.geocoder, Index: tt.index, Zones: zones}
			out, ok := s.Lookup(context.Background(), tt.query)
			if ok != tt.want {
				t.Fatalf("Lookup ok = %v, want %v (outcome %+v)", ok, tt.want, out)
			}
			if ok && out.Zone != "America/Los_Angeles" {
				t.Errorf("zone = %q", out.Zone)
			}
			if tt.geocoder.calls != 1 {
				t.Errorf("geocoder called %d times, want exactly 1", tt.geocoder.calls)
			}
		})
	}
}

func TestGeocodeStrategyPlaces(t *testing.T) {
	g := &fakeGeocoder{}
	s := &GeocodeStrategy{Geocoder: g, Index: fakeIndex{}, Zones: map[string]struct{}{"UTC": {}}}
	ctx := context.Background()

	s.Lookup(ctx, Text("Los Angeles time"))
	s.Lookup(ctx, Text("seattle, wa"))
	s.Lookup(ctx, Structured(geo.Place{City: "Seattle", Country: "United States"}))
	s.Lookup(ctx, Text("UTC"))
	s.Lookup(ctx, Text("Europe/Nowhere"))

	want := []geo.Place{
		{City: "los angeles"},
		{City: "seattle", State: "wa"},
		{City: "Seattle", Country: "United States"},
	}
	if diff := cmp.Diff(want, g.places); diff != "" {
		t.Errorf("geocoded places mismatch (-want +got):\n%s", diff)
	}
}

func TestChain(t *testing.T) {
	failing := &fakeGeocoder{err: errors.New("quota")}
	sentinel := &fakeGeocoder{coords: map[string]geo.Coordinates{"x": {}}}
	good := &fakeGeocoder{coords: map[string]geo.Coordinates{"x": {Latitude: 1, Longitude: 2}}}
	unused := &fakeGeocoder{}

	c, err := Chain(failing, sentinel, good, unused).Geocode(context.Background(), geo.Place{City: "x"})
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if c.Latitude != 1 || c.Longitude != 2 {
		t.Errorf("coords = %v", c)
	}
	if unused.calls != 0 {
		t.Error("chain continued after a valid answer")
	}

	if _, err := Chain(failing, sentinel).Geocode(context.Background(), geo.Place{City: "x"}); err == nil {
		t.Error("expected error when every geocoder fails")
	}
}

func TestChainIndex(t *testing.T) {
	coords := geo.Coordinates{Latitude: 1, Longitude: 2}
	idx := ChainIndex(fakeIndex{err: errors.New("no tables")}, fakeIndex{}, fakeIndex{zone: "Asia/Tokyo"})
	zone, err := idx.ZoneAt(context.Background(), coords)
	if err != nil || zone != "Asia/Tokyo" {
		t.Errorf("ZoneAt() = %q, %v; want Asia/Tokyo", zone, err)
	}

	if _, err := ChainIndex(fakeIndex{err: errors.New("a")}, fakeIndex{err: errors.New("b")}).ZoneAt(context.Background(), coords); err == nil {
		t.Error("expected error when every index fails")
	}
}

func TestFuzzyThresholdBands(t *testing.T) {
	above := func(v float64) float64 { return math.Nextafter(v, 1) }

	tests := []struct {
		name  string
		score float64
		want  Status
	}{
		{"well above accept", 0.95, Resolved},
		{"just above accept", above(0.8), Resolved},
		{"exactly accept", 0.8, NeedsConfirmation},
		{"middle of confirm band", 0.5, NeedsConfirmation},
		{"just above confirm", above(0.3), NeedsConfirmation},
		{"exactly confirm", 0.3, NotFound},
		{"below confirm", 0.1, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fuzzyOnly(scoreFor("chicago", tt.score))
			got := r.Resolve(context.Background(), Text("chicagoish"))
			if got.Status != tt.want {
				t.Fatalf("score %v: status = %v, want %v", tt.score, got.Status, tt.want)
			}
			switch tt.want {
			case Resolved:
				if got.Zone != "America/Chicago" || got.Spoken != "" {
					t.Errorf("resolved outcome = %+v", got)
				}
			case NeedsConfirmation:
				if got.Zone != "America/Chicago" || got.Spoken != "Chicago America" {
					t.Errorf("confirmation outcome = %+v", got)
				}
			case NotFound:
				if got.Zone != "" {
					t.Errorf("not found outcome carries zone %q", got.Zone)
				}
			}
		})
	}
}

func TestFuzzyCustomThresholds(t *testing.T) {
	r := fuzzyOnly(scoreFor("chicago", 0.6), WithThresholds(Thresholds{Accept: 0.5, Confirm: 0.2}))
	if got := r.Resolve(context.Background(), Text("chicagoish")); got.Status != Resolved {
		t.Errorf("status = %v, want Resolved with lowered accept threshold", got.Status)
	}

	// Inverted bands fall back to the defaults.
	r = fuzzyOnly(scoreFor("chicago", 0.6), WithThresholds(Thresholds{Accept: 0.2, Confirm: 0.5}))
	if got := r.Resolve(context.Background(), Text("chicagoish")); got.Status != NeedsConfirmation {
		t.Errorf("status = %v, want NeedsConfirmation with default thresholds", got.Status)
	}
}

func TestConfirmationFlow(t *testing.T) {
	tests := []struct {
		name      string
		confirmer Confirmer
		want      Status
	}{
		{"yes", Answer("yes"), Resolved},
		{"Yes with spaces", Answer("  Yes "), Resolved},
		{"no", Answer("no"), NotFound},
		{"yeah", Answer("yeah"), NotFound},
		{"empty", Answer(""), NotFound},
		{"error", ConfirmFunc(func(context.Context, string) (string, error) { return "", errors.New("timeout") }), NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fuzzyOnly(scoreFor("chicago", 0.5), WithConfirmer(tt.confirmer))
			got := r.Resolve(context.Background(), Text("chicagoish"))
			if got.Status != tt.want {
				t.Fatalf("status = %v, want %v", got.Status, tt.want)
			}
			if tt.want == Resolved && got.Zone != "America/Chicago" {
				t.Errorf("zone = %q", got.Zone)
			}
			if tt.want == NotFound && got.Zone != "" {
				t.Errorf("declined outcome carries zone %q", got.Zone)
			}
		})
	}
}

func TestConfirmationPrompt(t *testing.T) {
	var prompts []string
	c := ConfirmFunc(func(_ context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return "yes", nil
	})
	r := fuzzyOnly(scoreFor("chicago", 0.9)).WithConfirmer(c)

	// Confident matches are never confirmed.
	r.Resolve(context.Background(), Text("chicagoish"))
	if len(prompts) != 0 {
		t.Fatalf("unexpected prompt for confident match: %v", prompts)
	}

	r = fuzzyOnly(scoreFor("chicago", 0.5)).WithConfirmer(c)
	r.Resolve(context.Background(), Text("chicagoish"))
	if diff := cmp.Diff([]string{"Did you mean Chicago America?"}, prompts); diff != "" {
		t.Errorf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestWithConfirmerCopies(t *testing.T) {
	base := fuzzyOnly(scoreFor("chicago", 0.5))
	confirmed := base.WithConfirmer(Answer("yes"))
	if got := confirmed.Resolve(context.Background(), Text("chicagoish")); got.Status != Resolved {
		t.Errorf("copy status = %v, want Resolved", got.Status)
	}
	if got := base.Resolve(context.Background(), Text("chicagoish")); got.Status != NeedsConfirmation {
		t.Errorf("original status = %v, want NeedsConfirmation", got.Status)
	}
}

func TestFuzzyTieKeepsFirst(t *testing.T) {
	sim := func(_, b string) float64 {
		if b == "paris" || b == "chicago" {
			return 0.9
		}
		return 0
	}
	s := NewFuzzyStrategy([]string{"Europe/Paris", "America/Chicago"}, sim, DefaultThresholds, nil)
	if got := s.Best("x"); got.Zone != "Europe/Paris" {
		t.Errorf("tie resolved to %q, want first seen Europe/Paris", got.Zone)
	}
	s = NewFuzzyStrategy([]string{"America/Chicago", "Europe/Paris"}, sim, DefaultThresholds, nil)
	if got := s.Best("x"); got.Zone != "America/Chicago" {
		t.Errorf("tie resolved to %q, want first seen America/Chicago", got.Zone)
	}
}

func TestFuzzyScoresEveryForm(t *testing.T) {
	var seen []string
	sim := func(a, b string) float64 {
		if a != "center north dakota" {
			t.Errorf("input not normalized: %q", a)
		}
		seen = append(seen, b)
		return 0
	}
	s := NewFuzzyStrategy([]string{"America/North_Dakota/Center", "UTC"}, sim, DefaultThresholds, nil)
	s.Best("Center North Dakota")

	want := []string{"center", "center north dakota", "north dakota center", "utc"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("scored forms mismatch (-want +got):\n%s", diff)
	}
}

func TestFuzzyMaxPerCandidate(t *testing.T) {
	sim := func(_, b string) float64 {
		switch b {
		case "center":
			return 0.2
		case "north dakota center":
			return 0.85
		}
		return 0.1
	}
	s := NewFuzzyStrategy([]string{"America/North_Dakota/Center"}, sim, DefaultThresholds, nil)
	got := s.Best("north dakota center")
	if got.Zone != "America/North_Dakota/Center" || got.Score != 0.85 {
		t.Errorf("Best = %+v, want max score 0.85", got)
	}
}

func TestFuzzyLevenshteinLosAngeles(t *testing.T) {
	r := New(WithAliases(aliases.Table{}), WithoutGeocoding())
	got := r.Resolve(context.Background(), Text("los angeles"))
	if got.Zone != "America/Los_Angeles" || got.Strategy != "fuzzy" || got.Status != Resolved {
		t.Errorf("Resolve(los angeles) = %+v", got)
	}
}

func TestThresholdsValidate(t *testing.T) {
	if err := DefaultThresholds.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	for _, bad := range []Thresholds{{Accept: 0.2, Confirm: 0.5}, {Accept: 1.5, Confirm: 0.3}, {Accept: 0.8, Confirm: -0.1}} {
		if err := bad.Validate(); err == nil {
			t.Errorf("%+v should be invalid", bad)
		}
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{Resolved: "resolved", NeedsConfirmation: "needs_confirmation", NotFound: "not_found", Status(9): "Status(9)"} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(s), got, want)
		}
	}
}
