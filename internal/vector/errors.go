package vector

import "errors"

// Common errors.
var (
	ErrZeroComponents            = errors.New("vector has zero components")
	ErrNoComponentWithGivenIndex = errors.New("no component with given index")
	ErrDimensionMismatch         = errors.New("component count does not match dimension")
	ErrZeroLength                = errors.New("vector has zero length")
)
