// Package geoindex maps coordinates to IANA time zones without network access.
package geoindex

import (
	"context"
	"errors"
	"fmt"

	"github.com/bradfitz/latlong"

	"github.com/codeGROOVE-dev/whattime/pkg/geo"
)

var (
	// ErrNoZone is returned for coordinates outside every zone polygon, such
	// as open ocean.
	ErrNoZone = errors.New("no time zone at coordinates")
	// ErrNoTables is returned when latlong was built without its data tables.
	ErrNoTables = errors.New("latlong tables not generated")
	// ErrInvalidCoordinates is returned for out of range or sentinel input.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// latlong reports missing tables through this zone name instead of an error.
const noTablesSentinel = "tables not generated yet"

// Offline looks zones up in the latlong shapefile-derived tables.
type Offline struct{}

// ZoneAt implements the resolver's ZoneIndex interface.
func (Offline) ZoneAt(ctx context.Context, c geo.Coordinates) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidCoordinates, c)
	}
	zone := latlong.LookupZoneName(c.Latitude, c.Longitude)
	switch zone {
	case noTablesSentinel:
		return "", ErrNoTables
	case "":
		return "", fmt.Errorf("%w: %s", ErrNoZone, c)
	}
	return zone, nil
}
