package boule

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const deg2rad = math.Pi / 180

// geocentricRadiusRad evaluates the surface radius at geocentric spherical
// longitude λ and latitude φ (radians), with λa the longitude of the meridian
// containing the semimajor axis. This is Eq. 1 of Pec & Martinec (1983),
// written for latitude instead of co-latitude, with the flattening factors
// f1 = (a-c)/a and f2 = (a-b)/a.
// The radicand only goes non-positive for extreme axis ratios; in that case
// the NaN from math.Sqrt propagates to the caller.
func (e TriaxialEllipsoid) geocentricRadiusRad(λ, φ, λa float64) float64 {
	f1 := (e.a - e.c) / e.a
	f2 := (e.a - e.b) / e.a
	sφ, cφ := math.Sincos(φ)
	cλ := math.Cos(λ - λa)
	return e.a * (1 - f1) * (1 - f2) / math.Sqrt(
		1-(2*f1-f1*f1)*cφ*cφ-(2*f2-f2*f2)*sφ*sφ-(1-f1)*(1-f1)*(2*f2-f2*f2)*cφ*cφ*cλ*cλ)
}

// GeocentricRadius returns the radial distance from the center of the
// ellipsoid to its surface at the given geocentric spherical longitude and
// latitude, in degrees. lonSemimajorAxis is the longitude of the meridian
// containing the semimajor axis, usually 0. The result is in the same length
// unit as the semi-axes. No elevation is taken into account.
func (e TriaxialEllipsoid) GeocentricRadius(longitude, latitude, lonSemimajorAxis float64) float64 {
	return e.geocentricRadiusRad(longitude*deg2rad, latitude*deg2rad, lonSemimajorAxis*deg2rad)
}

// GeocentricRadii is the elementwise form of GeocentricRadius. The two slices
// must have the same length, or either may have length one and broadcast
// against the other; anything else returns ErrDimensionMismatch. The result
// has the broadcast length.
func (e TriaxialEllipsoid) GeocentricRadii(longitude, latitude []float64, lonSemimajorAxis float64) ([]float64, error) {
	n, err := broadcastLen(len(longitude), len(latitude))
	if err != nil {
		return nil, err
	}
	λ := degToRad(longitude)
	φ := degToRad(latitude)
	λa := lonSemimajorAxis * deg2rad
	radii := make([]float64, n)
	for i := range radii {
		radii[i] = e.geocentricRadiusRad(broadcastAt(λ, i), broadcastAt(φ, i), λa)
	}
	return radii, nil
}

// GeocentricRadiusGrid evaluates the surface radius over the outer product of
// the longitude and latitude slices (degrees). Row i of the result holds
// latitude[i], column j holds longitude[j].
func (e TriaxialEllipsoid) GeocentricRadiusGrid(longitude, latitude []float64, lonSemimajorAxis float64) (*mat.Dense, error) {
	if len(longitude) == 0 || len(latitude) == 0 {
		return nil, fmt.Errorf("%w: grid needs at least one longitude and one latitude", ErrDimensionMismatch)
	}
	λ := degToRad(longitude)
	φ := degToRad(latitude)
	λa := lonSemimajorAxis * deg2rad
	grid := mat.NewDense(len(latitude), len(longitude), nil)
	for i := range φ {
		for j := range λ {
			grid.Set(i, j, e.geocentricRadiusRad(λ[j], φ[i], λa))
		}
	}
	return grid, nil
}

// degToRad returns a radian copy of a slice of angles in degrees.
func degToRad(deg []float64) []float64 {
	rad := make([]float64, len(deg))
	copy(rad, deg)
	floats.Scale(deg2rad, rad)
	return rad
}

// broadcastLen returns the common length of two slices under length-one
// broadcasting.
func broadcastLen(nLon, nLat int) (int, error) {
	switch {
	case nLon == nLat:
		return nLon, nil
	case nLon == 1:
		return nLat, nil
	case nLat == 1:
		return nLon, nil
	default:
		return 0, fmt.Errorf("%w: len(longitude)=%d len(latitude)=%d", ErrDimensionMismatch, nLon, nLat)
	}
}

func broadcastAt(v []float64, i int) float64 {
	if len(v) == 1 {
		return v[0]
	}
	return v[i]
}
