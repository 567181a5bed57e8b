package matrix

import "errors"

// Shape and transform-parameter errors.
var (
	// ErrNotSquare is returned by operations that need COLUMNS == ROWS.
	ErrNotSquare = errors.New("matrix is not square")

	// ErrTooFewRows is returned when the row count is too small for the operation.
	ErrTooFewRows = errors.New("matrix has too few rows")

	// ErrTooFewColumns is returned when the column count is too small for the operation.
	ErrTooFewColumns = errors.New("matrix has too few columns")

	// ErrOutOfRangeFOV is returned by Projection unless 0 < fov < π.
	ErrOutOfRangeFOV = errors.New("field of view out of range")

	// ErrIncorrectNearFarPlanes is returned by Projection unless 0 < near < far.
	ErrIncorrectNearFarPlanes = errors.New("incorrect near and far planes")
)
