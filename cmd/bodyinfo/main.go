package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/blazej-bucha/boule"
)

// This tool prints the reference ellipsoid catalog, or evaluates the surface
// radius of one body at a point or over a grid. Extra bodies may be defined
// in $BOULE_CONFIG/conf.toml.

var (
	body    string
	lon     float64
	lat     float64
	lonA    float64
	grid    bool
	step    float64
	verbose bool
)

func init() {
	flag.StringVar(&body, "body", "", "body name (empty lists the catalog)")
	flag.Float64Var(&lon, "lon", 0, "geocentric spherical longitude in degrees")
	flag.Float64Var(&lat, "lat", 0, "geocentric spherical latitude in degrees")
	flag.Float64Var(&lonA, "lonA", 0, "longitude of the semimajor axis meridian in degrees")
	flag.BoolVar(&grid, "grid", false, "print a radius grid instead of a single point")
	flag.Float64Var(&step, "step", 30, "grid step in degrees")
	flag.BoolVar(&verbose, "verbose", false, "also print long names and references")
}

func main() {
	flag.Parse()
	extra, err := boule.LoadBodies()
	if err != nil {
		log.Fatalf("configuration: %s", err)
	}
	bodies := append(boule.Catalog(), extra...)

	if body == "" {
		list(bodies)
		return
	}
	target, err := lookup(bodies, body)
	if err != nil {
		log.Fatal(err)
	}
	if grid {
		printGrid(target)
		return
	}
	r := target.GeocentricRadius(lon, lat, lonA)
	fmt.Printf("%s: R(lon=%g°, lat=%g°) = %f\n", target.Name(), lon, lat, r)
}

func lookup(bodies []boule.TriaxialEllipsoid, name string) (boule.TriaxialEllipsoid, error) {
	for _, b := range bodies {
		if strings.EqualFold(b.Name(), name) {
			return b, nil
		}
	}
	return boule.TriaxialEllipsoid{}, fmt.Errorf("undefined body '%s'", name)
}

func list(bodies []boule.TriaxialEllipsoid) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tA (m)\tB (m)\tC (m)\tMEAN RADIUS (m)\tVOLUME (m³)\tGM (m³/s²)\tω (rad/s)")
	for _, b := range bodies {
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%.0f\t%.4e\t%g\t%g\n",
			b.Name(), b.SemimajorAxis(), b.SemimediumAxis(), b.SemiminorAxis(),
			b.MeanRadius(), b.Volume(), b.GM(), b.AngularVelocity())
		if verbose && b.LongName() != "" {
			fmt.Fprintf(w, "\t%s\t\t\t\t\t\t\n", b.LongName())
		}
	}
	w.Flush()
}

func printGrid(b boule.TriaxialEllipsoid) {
	if step <= 0 {
		log.Fatalf("invalid grid step %g", step)
	}
	var lons, lats []float64
	for l := -180.0; l <= 180; l += step {
		lons = append(lons, l)
	}
	for l := -90.0; l <= 90; l += step {
		lats = append(lats, l)
	}
	radii, err := b.GeocentricRadiusGrid(lons, lats, lonA)
	if err != nil {
		log.Fatal(err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprint(w, "LAT\\LON")
	for _, l := range lons {
		fmt.Fprintf(w, "\t%g", l)
	}
	fmt.Fprintln(w)
	for i, φ := range lats {
		fmt.Fprintf(w, "%g", φ)
		for j := range lons {
			fmt.Fprintf(w, "\t%.0f", radii.At(i, j))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
