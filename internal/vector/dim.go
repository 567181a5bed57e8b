package vector

// Dim is a compile-time dimension marker.
//
// Each marker is a zero-size type whose Len method reports the number of
// components. Distinct markers make Vector[float32, D3] and
// Vector[float32, D4] distinct types, so mixing dimensions is a compile error
// rather than a runtime check.
//
// Additional dimensions are declared the same way:
//
//	type D7 struct{}
//
//	func (D7) Len() int { return 7 }
type Dim interface {
	Len() int
}

// D1 is the one-component dimension.
type D1 struct{}

// D2 is the two-component dimension.
type D2 struct{}

// D3 is the three-component dimension.
type D3 struct{}

// D4 is the four-component dimension.
type D4 struct{}

// Len returns 1.
func (D1) Len() int { return 1 }

// Len returns 2.
func (D2) Len() int { return 2 }

// Len returns 3.
func (D3) Len() int { return 3 }

// Len returns 4.
func (D4) Len() int { return 4 }

// Len returns the number of components described by D.
func Len[D Dim]() int {
	var d D
	return d.Len()
}
