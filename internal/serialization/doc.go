// Package serialization encodes streams of fixed-width floating-point values
// for the network weight format.
//
// The format is deliberately bare:
//
//	[8 bytes: float64 IEEE-754 bits] × N
//
// There is no magic, version, length prefix or padding. Producer and consumer
// must agree on the value count and the byte order out of band. Big-endian
// (network order) is the default; little-endian matches the in-memory layout
// written by x86 and ARM hosts that dump their arrays directly.
//
// Example usage:
//
//	w, err := serialization.Create("model.bin", binary.BigEndian)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//	if err := w.WriteFloat64s(weights); err != nil {
//	    log.Fatal(err)
//	}
package serialization
