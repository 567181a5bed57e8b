package serialization

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Reader decodes float64 values from an io.Reader.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [ValueSize]byte
	n     int64
}

// NewReader returns a Reader using the given byte order.
func NewReader(r io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{r: r, order: order}
}

// ReadFloat64 reads one value. A stream that ends early yields an error
// wrapping ErrTruncated.
func (r *Reader) ReadFloat64() (float64, error) {
	n, err := io.ReadFull(r.r, r.buf[:])
	r.n += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: offset %d", ErrTruncated, r.n-int64(n))
		}
		return 0, fmt.Errorf("failed to read value at offset %d: %w", r.n-int64(n), err)
	}
	return math.Float64frombits(r.order.Uint64(r.buf[:])), nil
}

// ReadFloat64s fills dst with consecutive values.
func (r *Reader) ReadFloat64s(dst []float64) error {
	for i := range dst {
		v, err := r.ReadFloat64()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// Consumed returns the number of bytes read so far.
func (r *Reader) Consumed() int64 {
	return r.n
}

// FileReader is a Reader backed by a buffered file.
type FileReader struct {
	*Reader
	file   *os.File
	closed bool
}

// Open opens path for reading.
func Open(path string, order binary.ByteOrder) (*FileReader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for weight files
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &FileReader{
		Reader: NewReader(bufio.NewReader(file), order),
		file:   file,
	}, nil
}

// Close closes the underlying file.
func (r *FileReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

// ParseByteOrder maps "big" or "little" to a binary.ByteOrder.
// The empty string selects big-endian.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch s {
	case "", "big", "network":
		return binary.BigEndian, nil
	case "little", "native":
		return binary.LittleEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownByteOrder, s)
	}
}
