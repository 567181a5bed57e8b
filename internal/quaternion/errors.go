package quaternion

import "errors"

// ErrZeroLength is returned when a quaternion's squared length is below
// the normalization threshold.
var ErrZeroLength = errors.New("quaternion has zero length")
