package boule

import (
	"fmt"
	"math"
)

// Def holds the defining parameters of a triaxial reference ellipsoid.
// All lengths share one unit (use SI meters for the catalog bodies), GM is in
// length³/time² and the angular velocity in rad/time. LongName and Reference
// are optional; empty means absent.
type Def struct {
	Name                string
	SemimajorAxis       float64
	SemimediumAxis      float64
	SemiminorAxis       float64
	GeocentricGravConst float64
	AngularVelocity     float64
	LongName            string
	Reference           string
}

// TriaxialEllipsoid is a rotating triaxial reference figure defined by its
// three semi-axes (a ≥ b ≥ c), its geocentric gravitational constant GM and
// its angular velocity ω. It is read-only after construction and therefore
// safe to share between goroutines.
type TriaxialEllipsoid struct {
	name      string
	a, b, c   float64
	μ         float64 // GM
	ω         float64 // angular velocity
	longName  string
	reference string
}

// New validates def and returns the ellipsoid. A non-positive axis yields an
// InvalidParameterError, axes out of major ≥ medium ≥ minor order yield an
// InvalidAxisOrderingError. A negative GM is physically implausible but not
// rejected: construction succeeds and a warning goes to the warning logger.
func New(def Def) (TriaxialEllipsoid, error) {
	if !(def.SemimajorAxis > 0) {
		return TriaxialEllipsoid{}, InvalidParameterError{"semimajor axis", def.SemimajorAxis}
	}
	if def.SemimediumAxis > def.SemimajorAxis {
		return TriaxialEllipsoid{}, InvalidAxisOrderingError{def.SemimajorAxis, def.SemimediumAxis, def.SemiminorAxis}
	}
	if !(def.SemimediumAxis > 0) {
		return TriaxialEllipsoid{}, InvalidParameterError{"semimedium axis", def.SemimediumAxis}
	}
	if def.SemiminorAxis > def.SemimediumAxis {
		return TriaxialEllipsoid{}, InvalidAxisOrderingError{def.SemimajorAxis, def.SemimediumAxis, def.SemiminorAxis}
	}
	if !(def.SemiminorAxis > 0) {
		// No ordering check needed: if the two checks above passed, the minor
		// axis is already the smallest.
		return TriaxialEllipsoid{}, InvalidParameterError{"semiminor axis", def.SemiminorAxis}
	}
	if def.GeocentricGravConst < 0 {
		warn("warning", "negative geocentric gravitational constant",
			"ellipsoid", def.Name, "geocentric_grav_const", def.GeocentricGravConst)
	}
	return TriaxialEllipsoid{
		name:      def.Name,
		a:         def.SemimajorAxis,
		b:         def.SemimediumAxis,
		c:         def.SemiminorAxis,
		μ:         def.GeocentricGravConst,
		ω:         def.AngularVelocity,
		longName:  def.LongName,
		reference: def.Reference,
	}, nil
}

// mustNew is for the static catalog definitions, which are known valid.
func mustNew(def Def) TriaxialEllipsoid {
	e, err := New(def)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the short identifier of the ellipsoid.
func (e TriaxialEllipsoid) Name() string {
	return e.name
}

// SemimajorAxis returns a, the largest semi-axis.
func (e TriaxialEllipsoid) SemimajorAxis() float64 {
	return e.a
}

// SemimediumAxis returns b, the middle semi-axis.
func (e TriaxialEllipsoid) SemimediumAxis() float64 {
	return e.b
}

// SemiminorAxis returns c, the smallest semi-axis.
func (e TriaxialEllipsoid) SemiminorAxis() float64 {
	return e.c
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (e TriaxialEllipsoid) GM() float64 {
	return e.μ
}

// AngularVelocity returns ω.
func (e TriaxialEllipsoid) AngularVelocity() float64 {
	return e.ω
}

// LongName returns the descriptive name, or the empty string if absent.
func (e TriaxialEllipsoid) LongName() string {
	return e.longName
}

// Reference returns the citation for the parameter values, or the empty
// string if absent.
func (e TriaxialEllipsoid) Reference() string {
	return e.reference
}

// MeanRadius returns the arithmetic mean of the three semi-axes, (a+b+c)/3.
func (e TriaxialEllipsoid) MeanRadius() float64 {
	return (e.a + e.b + e.c) / 3
}

// Volume returns the volume bounded by the ellipsoid, 4/3·π·a·b·c.
func (e TriaxialEllipsoid) Volume() float64 {
	return (4. / 3. * math.Pi) * e.a * e.b * e.c
}

// Equals returns whether the provided ellipsoid has the same parameters.
func (e TriaxialEllipsoid) Equals(o TriaxialEllipsoid) bool {
	return e.name == o.name && e.a == o.a && e.b == o.b && e.c == o.c && e.μ == o.μ && e.ω == o.ω
}

// String implements the Stringer interface.
func (e TriaxialEllipsoid) String() string {
	return fmt.Sprintf("TriaxialEllipsoid(name=%q, a=%v, b=%v, c=%v, GM=%v, ω=%v, longName=%q, reference=%q)",
		e.name, e.a, e.b, e.c, e.μ, e.ω, e.longName, e.reference)
}
