package boule

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when longitude and latitude slices cannot
// be broadcast against each other.
var ErrDimensionMismatch = errors.New("longitude and latitude dimensions do not broadcast")

// InvalidParameterError reports a non-positive defining parameter.
type InvalidParameterError struct {
	Param string
	Value float64
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s '%v': must be greater than zero", e.Param, e.Value)
}

// InvalidAxisOrderingError reports semi-axes which violate major ≥ medium ≥ minor.
type InvalidAxisOrderingError struct {
	Major, Medium, Minor float64
}

func (e InvalidAxisOrderingError) Error() string {
	return fmt.Sprintf("invalid triaxial ellipsoid axes: major=%v medium=%v minor=%v: must be major > medium > minor", e.Major, e.Medium, e.Minor)
}
