// Package geo implements the geofence membership check used as a hard
// precondition for proof submissions: great-circle distance on a spherical
// Earth and an inclusive radius test.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

var (
	// ErrInvalidCoordinate indicates a latitude or longitude outside the
	// valid degree range. This is a caller error and is never clamped.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrNoLocation indicates the device could not supply a position.
	// Callers must treat this as a failed precondition, never as a
	// zero-distance pass.
	ErrNoLocation = errors.New("no location available")
)

// Point is a WGS 84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Validate reports whether the point is a legal degree coordinate.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrInvalidCoordinate, p.Lat)
	}
	if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrInvalidCoordinate, p.Lon)
	}
	return nil
}

// Geofence is the area within which a proof submission is accepted. It is
// owned by the opportunity record and read-only here.
type Geofence struct {
	Center       Point   `json:"center"`
	RadiusMeters float64 `json:"radius_meters"`
}

// Distance returns the great-circle distance between a and b in meters,
// computed with the haversine formula.
func Distance(a, b Point) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c, nil
}

// WithinRadius reports whether p lies inside the geofence. The boundary is
// inclusive: a distance exactly equal to the radius is within.
func WithinRadius(p Point, fence Geofence) (bool, error) {
	d, err := Distance(p, fence.Center)
	if err != nil {
		return false, err
	}
	return d <= fence.RadiusMeters, nil
}

// MicroDegrees encodes a coordinate as degrees scaled by 1e6, truncated
// toward zero. This is the integer convention the ledger consumes.
func MicroDegrees(deg float64) int64 {
	return int64(math.Trunc(deg * 1e6))
}
