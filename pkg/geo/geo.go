// Package geo holds the place and coordinate types shared by geocoders,
// coordinate indexes and the resolver.
package geo

import (
	"math"
	"strconv"
	"strings"
)

// Place is a structured location hint. Only City is required.
type Place struct {
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// ParsePlace splits comma separated text into city, state and country.
// "seattle, wa" becomes {City: "seattle", State: "wa"}; text without commas is
// all city. Anything after a third comma is folded into Country.
func ParsePlace(text string) Place {
	parts := strings.SplitN(text, ",", 3)
	for i := range parts {
		parts[i] = strings.Join(strings.Fields(parts[i]), " ")
	}
	p := Place{City: parts[0]}
	if len(parts) > 1 {
		p.State = parts[1]
	}
	if len(parts) > 2 {
		p.Country = parts[2]
	}
	return p
}

// Qualifiers returns the non-empty state and country parts.
func (p Place) Qualifiers() []string {
	var q []string
	for _, s := range []string{p.State, p.Country} {
		if s = strings.TrimSpace(s); s != "" {
			q = append(q, s)
		}
	}
	return q
}

// IsZero reports whether the place carries no city.
func (p Place) IsZero() bool {
	return strings.TrimSpace(p.City) == ""
}

// String renders "city, state, country" skipping empty parts.
func (p Place) String() string {
	parts := []string{strings.TrimSpace(p.City)}
	parts = append(parts, p.Qualifiers()...)
	return strings.Join(parts, ", ")
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Valid rejects NaN, out of range values and the (0,0) sentinel that some
// geocoders return instead of an error.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return false
	}
	return c.Latitude != 0 || c.Longitude != 0
}

func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', 4, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', 4, 64)
}
