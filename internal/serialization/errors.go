package serialization

import "errors"

// Common errors.
var (
	ErrTruncated        = errors.New("stream ended before the expected value")
	ErrUnknownByteOrder = errors.New("unknown byte order")
)
