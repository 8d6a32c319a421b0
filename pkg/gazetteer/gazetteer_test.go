package gazetteer

import (
	"context"
	"errors"
	"testing"

	"github.com/codeGROOVE-dev/whattime/pkg/geo"
)

func TestLookup(t *testing.T) {
	g := Default()

	tests := []struct {
		name        string
		place       geo.Place
		wantRegion  string
		wantCountry string
	}{
		{"bare city", geo.Place{City: "seattle"}, "Washington", "US"},
		{"state name", geo.Place{City: "Seattle", State: "washington"}, "Washington", "US"},
		{"state code", geo.Place{City: "seattle", State: "wa"}, "Washington", "US"},
		{"country", geo.Place{City: "seattle", Country: "united states"}, "Washington", "US"},
		{"country alias", geo.Place{City: "seattle", Country: "USA"}, "Washington", "US"},
		{"inline state", geo.Place{City: "seattle washington"}, "Washington", "US"},
		{"namesake by state", geo.Place{City: "paris", State: "texas"}, "Texas", "US"},
		{"namesake inline", geo.Place{City: "paris texas"}, "Texas", "US"},
		{"default namesake", geo.Place{City: "paris"}, "Ile-de-France", "FR"},
		{"multi word city", geo.Place{City: "salt lake city"}, "Utah", "US"},
		{"second listed", geo.Place{City: "portland", State: "me"}, "Maine", "US"},
		{"perth australia", geo.Place{City: "perth"}, "Western Australia", "AU"},
		{"perth scotland", geo.Place{City: "perth", Country: "uk"}, "Scotland", "GB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := g.Lookup(tt.place)
			if err != nil {
				t.Fatalf("Lookup(%+v): %v", tt.place, err)
			}
			if e.Region != tt.wantRegion || e.CountryCode != tt.wantCountry {
				t.Errorf("Lookup(%+v) = %s, %s; want %s, %s", tt.place, e.Region, e.CountryCode, tt.wantRegion, tt.wantCountry)
			}
		})
	}
}

func TestLookupMisses(t *testing.T) {
	g := Default()
	for _, p := range []geo.Place{
		{City: "not-a-real-place-xyz"},
		{City: "seattle", State: "texas"},
		{City: "london europe"},
		{City: ""},
	} {
		if _, err := g.Lookup(p); !errors.Is(err, ErrUnknownPlace) {
			t.Errorf("Lookup(%+v) error = %v, want ErrUnknownPlace", p, err)
		}
	}
}

func TestGeocode(t *testing.T) {
	g := New([]Entry{{"Testville", "Nowhere", "NW", "Utopia", "UT", 10.5, -20.25}})
	c, err := g.Geocode(context.Background(), geo.Place{City: "testville", State: "nw"})
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if c.Latitude != 10.5 || c.Longitude != -20.25 {
		t.Errorf("Geocode = %v", c)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Geocode(ctx, geo.Place{City: "testville"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestKnownPlacesValid(t *testing.T) {
	for _, e := range knownPlaces {
		if !e.Coordinates().Valid() {
			t.Errorf("%s has invalid coordinates %v", e.Name, e.Coordinates())
		}
		if e.CountryCode == "" || e.Region == "" {
			t.Errorf("%s lacks region or country", e.Name)
		}
	}
	if Default().Len() == 0 {
		t.Error("default gazetteer is empty")
	}
}
