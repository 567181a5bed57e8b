package vector

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/born-ml/fixedmath/internal/scalar"
)

// Hash returns a structural hash of the components.
//
// Vectors that are Equal hash identically; in particular +0 and -0 hash the
// same. NaN components never compare Equal, so their hash is unspecified.
func (v Vector[T, D]) Hash() uint64 {
	d := xxhash.New()
	WriteHash(d, v)
	return d.Sum64()
}

// WriteHash feeds the components of v into d. Matrix hashing uses it to chain
// column hashes into a single digest.
func WriteHash[T scalar.Number, D Dim](d *xxhash.Digest, v Vector[T, D]) {
	isFloat := scalar.IsFloat[T]()
	var buf [8]byte
	for _, c := range v.data() {
		var bits uint64
		switch {
		case c == 0:
			bits = 0
		case isFloat:
			bits = math.Float64bits(float64(c))
		default:
			bits = uint64(c)
		}
		binary.LittleEndian.PutUint64(buf[:], bits)
		_, _ = d.Write(buf[:])
	}
}
