package geo

import (
	"errors"
	"math"
	"testing"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := Point{Lat: 52.37, Lon: 4.89}
	d, err := Distance(p, p)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if d != 0 {
		t.Fatalf("expected zero distance, got %f", d)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Point{Lat: 52.37, Lon: 4.89}
	b := Point{Lat: 48.8566, Lon: 2.3522}

	ab, err := Distance(a, b)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	ba, err := Distance(b, a)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %f and %f", ab, ba)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// Amsterdam to Paris, roughly 430 km great-circle.
	a := Point{Lat: 52.37, Lon: 4.89}
	b := Point{Lat: 48.8566, Lon: 2.3522}

	d, err := Distance(a, b)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if d < 425_000 || d > 435_000 {
		t.Fatalf("expected roughly 430km, got %f meters", d)
	}
}

func TestDistanceRejectsInvalidCoordinates(t *testing.T) {
	cases := []struct {
		name string
		p    Point
	}{
		{"latitude too high", Point{Lat: 90.1, Lon: 0}},
		{"latitude too low", Point{Lat: -90.1, Lon: 0}},
		{"longitude too high", Point{Lat: 0, Lon: 180.1}},
		{"longitude too low", Point{Lat: 0, Lon: -180.1}},
		{"latitude NaN", Point{Lat: math.NaN(), Lon: 0}},
	}
	valid := Point{Lat: 0, Lon: 0}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Distance(tc.p, valid); !errors.Is(err, ErrInvalidCoordinate) {
				t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
			}
		})
	}
}

func TestValidateAcceptsBoundaryCoordinates(t *testing.T) {
	for _, p := range []Point{
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
		{Lat: 0, Lon: 0},
	} {
		if err := p.Validate(); err != nil {
			t.Fatalf("expected %+v to be valid, got %v", p, err)
		}
	}
}

func TestWithinRadiusBoundaryIsInclusive(t *testing.T) {
	center := Point{Lat: 0, Lon: 0}
	p := Point{Lat: 0, Lon: 0.01}

	d, err := Distance(p, center)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	within, err := WithinRadius(p, Geofence{Center: center, RadiusMeters: d})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !within {
		t.Fatal("expected a point exactly on the boundary to be within")
	}

	within, err = WithinRadius(p, Geofence{Center: center, RadiusMeters: d - 0.001})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if within {
		t.Fatal("expected a point just outside the radius to be excluded")
	}
}

func TestWithinRadiusPropagatesCoordinateError(t *testing.T) {
	fence := Geofence{Center: Point{Lat: 0, Lon: 0}, RadiusMeters: 100}
	if _, err := WithinRadius(Point{Lat: 91, Lon: 0}, fence); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestMicroDegreesTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		deg  float64
		want int64
	}{
		{52.37, 52_370_000},
		{0, 0},
		{1.9999999, 1_999_999},
		{-1.9999999, -1_999_999},
		{-73.9855499, -73_985_549},
		{90, 90_000_000},
		{-180, -180_000_000},
	}
	for _, tc := range cases {
		if got := MicroDegrees(tc.deg); got != tc.want {
			t.Fatalf("MicroDegrees(%v) = %d, want %d", tc.deg, got, tc.want)
		}
	}
}
