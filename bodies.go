package boule

import (
	"fmt"
	"strings"

	"github.com/soniakeys/meeus/v3/globe"
)

// FromString returns the catalog ellipsoid from its name.
func FromString(name string) (TriaxialEllipsoid, error) {
	switch strings.ToLower(name) {
	case "vesta":
		return Vesta, nil
	case "io":
		return Io, nil
	case "phobos":
		return Phobos, nil
	case "earth":
		return Earth, nil
	default:
		return TriaxialEllipsoid{}, fmt.Errorf("undefined body '%s'", name)
	}
}

// Catalog returns the built-in reference ellipsoids.
func Catalog() []TriaxialEllipsoid {
	return []TriaxialEllipsoid{Earth, Io, Phobos, Vesta}
}

/* Definitions (SI units: m, m³/s², rad/s) */

// Vesta is the protoplanet the Dawn mission went to first.
var Vesta = mustNew(Def{
	Name:                "VESTA",
	SemimajorAxis:       286300,
	SemimediumAxis:      278600,
	SemiminorAxis:       223200,
	GeocentricGravConst: 1.729094e10,
	AngularVelocity:     326.71050958367e-6,
	LongName:            "Vesta Triaxial Ellipsoid",
	Reference: "Russell, C. T., Raymond, C. A., Coradini, A., McSween, H. Y., " +
		"Zuber, M. T., Nathues, A., et al. (2012). Dawn at Vesta: Testing the " +
		"Protoplanetary Paradigm. Science. doi:10.1126/science.1219381",
})

// Io is the most volcanically active body in the solar system.
var Io = mustNew(Def{
	Name:                "IO",
	SemimajorAxis:       1829400,
	SemimediumAxis:      1819300,
	SemiminorAxis:       1815700,
	GeocentricGravConst: 5.959916e12,
	AngularVelocity:     4.1105e-5,
	LongName:            "Io Triaxial Ellipsoid",
	Reference: "Thomas, P. C., Davies, M. E., Colvin, T. R., Oberst, J., " +
		"Schuster, P., Neukum, G., et al. (1998). The Shape of Io from Galileo " +
		"Limb Measurements. Icarus, 135(1), 175-180. doi:10.1006/icar.1998.5987",
})

// Phobos is doomed: tidal decay will bring it down on Mars eventually.
var Phobos = mustNew(Def{
	Name:                "PHOBOS",
	SemimajorAxis:       13030,
	SemimediumAxis:      11400,
	SemiminorAxis:       9140,
	GeocentricGravConst: 7.0875e5,
	AngularVelocity:     2.2804e-4,
	LongName:            "Phobos Triaxial Ellipsoid",
	Reference: "Willner, K., Shi, X., Oberst, J. (2014). Phobos' shape and " +
		"topography models. Planetary and Space Science, 102, 51-59. " +
		"doi:10.1016/j.pss.2013.12.006",
})

// Earth is home. The IAU 1976 figure is biaxial, so the semimedium axis
// equals the semimajor axis (the ordering checks accept equality).
var Earth = mustNew(Def{
	Name:                "EARTH",
	SemimajorAxis:       globe.Earth76.Er * 1000,
	SemimediumAxis:      globe.Earth76.Er * 1000,
	SemiminorAxis:       globe.Earth76.Er * (1 - globe.Earth76.Fl) * 1000,
	GeocentricGravConst: 3.986004418e14,
	AngularVelocity:     7.292115e-5,
	LongName:            "Earth IAU 1976 Reference Figure",
	Reference:           "Meeus, J. (1998). Astronomical Algorithms, 2nd ed., Chapter 11",
})
