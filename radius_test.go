package boule

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// The surface radius must hit the three semi-axes exactly on the principal
// directions: a on the semimajor meridian at the equator, b a quarter turn
// away, c at the poles.
func TestGeocentricRadiusPrincipalAxes(t *testing.T) {
	for _, body := range []TriaxialEllipsoid{Vesta, Io, Phobos, Earth} {
		if !scalar.EqualWithinRel(body.GeocentricRadius(0, 0, 0), body.SemimajorAxis(), 1e-12) {
			t.Fatalf("%s: equatorial radius on the semimajor meridian != a", body.Name())
		}
		if !scalar.EqualWithinRel(body.GeocentricRadius(90, 0, 0), body.SemimediumAxis(), 1e-12) {
			t.Fatalf("%s: equatorial radius at 90° != b", body.Name())
		}
		if !scalar.EqualWithinRel(body.GeocentricRadius(-90, 0, 0), body.SemimediumAxis(), 1e-12) {
			t.Fatalf("%s: equatorial radius at -90° != b", body.Name())
		}
		for _, lon := range []float64{-180, -45, 0, 77.5, 360} {
			if !scalar.EqualWithinRel(body.GeocentricRadius(lon, 90, 0), body.SemiminorAxis(), 1e-9) {
				t.Fatalf("%s: north polar radius != c at lon %g", body.Name(), lon)
			}
			if !scalar.EqualWithinRel(body.GeocentricRadius(lon, -90, 0), body.SemiminorAxis(), 1e-9) {
				t.Fatalf("%s: south polar radius != c at lon %g", body.Name(), lon)
			}
		}
	}
}

// For a sphere f1 = f2 = 0 and the formula must collapse to the radius.
func TestGeocentricRadiusSphere(t *testing.T) {
	const r = 262700.0
	sphere := mustNew(Def{Name: "SPHERE", SemimajorAxis: r, SemimediumAxis: r, SemiminorAxis: r})
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -180.0; lon <= 180; lon += 15 {
			if got := sphere.GeocentricRadius(lon, lat, 0); !scalar.EqualWithinRel(got, r, 1e-14) {
				t.Fatalf("sphere radius %f != %f at (%g, %g)", got, r, lon, lat)
			}
		}
	}
}

// Rotating the semimajor meridian must rotate the whole longitude profile.
func TestGeocentricRadiusOrientation(t *testing.T) {
	const λa = 45.0
	if !scalar.EqualWithinRel(Vesta.GeocentricRadius(45, 0, λa), Vesta.SemimajorAxis(), 1e-12) {
		t.Fatal("semimajor axis not found on the rotated meridian")
	}
	if !scalar.EqualWithinRel(Vesta.GeocentricRadius(135, 0, λa), Vesta.SemimediumAxis(), 1e-12) {
		t.Fatal("semimedium axis not found 90° from the rotated meridian")
	}
	for lat := -80.0; lat <= 80; lat += 20 {
		for lon := -180.0; lon <= 180; lon += 20 {
			shifted := Vesta.GeocentricRadius(lon+λa, lat, λa)
			if !scalar.EqualWithinRel(shifted, Vesta.GeocentricRadius(lon, lat, 0), 1e-12) {
				t.Fatalf("profile not shift-invariant at (%g, %g)", lon, lat)
			}
		}
	}
}

func TestGeocentricRadiusPure(t *testing.T) {
	first := Vesta.GeocentricRadius(12.3, -45.6, 7.8)
	second := Vesta.GeocentricRadius(12.3, -45.6, 7.8)
	if first != second {
		t.Fatalf("identical inputs, different outputs: %v != %v", first, second)
	}
	lon := []float64{0, 90, 180}
	lat := []float64{10, 20, 30}
	if _, err := Vesta.GeocentricRadii(lon, lat, 0); err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(lon, []float64{0, 90, 180}) || !floats.Equal(lat, []float64{10, 20, 30}) {
		t.Fatal("input slices were mutated")
	}
}

func TestGeocentricRadii(t *testing.T) {
	// On a non-spherical body the equatorial radii at 0° and 90° must
	// differ, the first matching a, the second matching b.
	radii, err := Vesta.GeocentricRadii([]float64{0, 90}, []float64{0, 0}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(radii) != 2 || radii[0] <= radii[1] {
		t.Fatalf("expected a > b asymmetry, got %v", radii)
	}
	if !scalar.EqualWithinRel(radii[0], Vesta.SemimajorAxis(), 1e-12) || !scalar.EqualWithinRel(radii[1], Vesta.SemimediumAxis(), 1e-12) {
		t.Fatalf("unexpected equatorial radii %v", radii)
	}

	// Length-one broadcast on either side.
	radii, err = Vesta.GeocentricRadii([]float64{0}, []float64{0, 45, 90}, 0)
	if err != nil || len(radii) != 3 {
		t.Fatalf("longitude broadcast failed: %v %v", radii, err)
	}
	if radii[0] != Vesta.GeocentricRadius(0, 0, 0) || radii[2] != Vesta.GeocentricRadius(0, 90, 0) {
		t.Fatalf("broadcast disagrees with the scalar form: %v", radii)
	}
	radii, err = Vesta.GeocentricRadii([]float64{0, 45, 90, 135}, []float64{30}, 0)
	if err != nil || len(radii) != 4 {
		t.Fatalf("latitude broadcast failed: %v %v", radii, err)
	}

	// Incompatible lengths.
	if _, err = Vesta.GeocentricRadii([]float64{0, 90}, []float64{0, 45, 90}, 0); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestGeocentricRadiusGrid(t *testing.T) {
	lon := []float64{-120, 0, 60, 180}
	lat := []float64{-45, 0, 45}
	grid, err := Vesta.GeocentricRadiusGrid(lon, lat, 0)
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := grid.Dims()
	if rows != len(lat) || cols != len(lon) {
		t.Fatalf("grid is %dx%d, want %dx%d", rows, cols, len(lat), len(lon))
	}
	for i, φ := range lat {
		for j, λ := range lon {
			if grid.At(i, j) != Vesta.GeocentricRadius(λ, φ, 0) {
				t.Fatalf("grid disagrees with the scalar form at (%g, %g)", λ, φ)
			}
		}
	}
	if _, err = Vesta.GeocentricRadiusGrid(nil, lat, 0); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for an empty grid axis, got %v", err)
	}
}

// For a biaxial figure the formula reduces to the oblate-spheroid geocentric
// radius, which Meeus computes independently through the parallax constants
// ρ sin φ′ and ρ cos φ′ (Astronomical Algorithms, Chapter 11).
func TestGeocentricRadiusEarthParallax(t *testing.T) {
	for _, geodeticLat := range []float64{-89, -66.5, -20, 0, 19.75, 33.356111, 51.4778, 90} {
		s, c := globe.Earth76.ParallaxConstants(unit.AngleFromDeg(geodeticLat), 0)
		ρ := math.Hypot(s, c)             // in equatorial radii
		geocentricLat := math.Atan2(s, c) // radians
		want := ρ * Earth.SemimajorAxis()
		got := Earth.GeocentricRadius(12.5, geocentricLat/deg2rad, 0)
		if !scalar.EqualWithinRel(got, want, 1e-9) {
			t.Fatalf("geodetic lat %g: %f != %f", geodeticLat, got, want)
		}
	}
}
