package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_ByteOrder(t *testing.T) {
	var big, little bytes.Buffer
	require.NoError(t, NewWriter(&big, binary.BigEndian).WriteFloat64(1))
	require.NoError(t, NewWriter(&little, binary.LittleEndian).WriteFloat64(1))

	assert.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, big.Bytes())
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, little.Bytes())
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, -1.5, math.Pi, math.Inf(1), math.SmallestNonzeroFloat64, math.Copysign(0, -1)}

	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, order)
			require.NoError(t, w.WriteFloat64s(values))
			assert.Equal(t, int64(len(values)*ValueSize), w.Written())

			r := NewReader(&buf, order)
			got := make([]float64, len(values))
			require.NoError(t, r.ReadFloat64s(got))
			assert.Equal(t, w.Written(), r.Consumed())
			for i := range values {
				assert.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "value %d", i)
			}
		})
	}
}

func TestReader_Truncated(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3}), binary.BigEndian)
	_, err := r.ReadFloat64()
	assert.ErrorIs(t, err, ErrTruncated)

	r = NewReader(bytes.NewReader(nil), binary.BigEndian)
	_, err = r.ReadFloat64()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestWriter_Error(t *testing.T) {
	err := NewWriter(failingWriter{}, binary.BigEndian).WriteFloat64s([]float64{1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.bin")

	w, err := Create(path, binary.LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteFloat64s([]float64{1, 2, 3}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	r, err := Open(path, binary.LittleEndian)
	require.NoError(t, err)
	defer r.Close()

	got := make([]float64, 3)
	require.NoError(t, r.ReadFloat64s(got))
	assert.Equal(t, []float64{1, 2, 3}, got)

	_, err = r.ReadFloat64()
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = Open(filepath.Join(t.TempDir(), "missing.bin"), binary.BigEndian)
	assert.Error(t, err)
}

func TestFileWriter_Abort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.bin")

	w, err := Create(path, binary.BigEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteFloat64s([]float64{1, 2}))
	require.NoError(t, w.Abort())
	assert.NoFileExists(t, path)

	require.NoError(t, w.Abort(), "second abort is a no-op")
	require.NoError(t, w.Close(), "close after abort is a no-op")
}

func TestFileWriter_FlushFailureRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readonly.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	// A read-only descriptor makes the final flush fail.
	file, err := os.Open(path)
	require.NoError(t, err)
	buf := bufio.NewWriter(file)
	w := &FileWriter{Writer: NewWriter(buf, binary.BigEndian), file: file, path: path, buf: buf}

	require.NoError(t, w.WriteFloat64(1), "value stays in the buffer")
	err = w.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to flush")
	assert.NoFileExists(t, path)
}

func TestParseByteOrder(t *testing.T) {
	tests := []struct {
		in   string
		want binary.ByteOrder
	}{
		{"", binary.BigEndian},
		{"big", binary.BigEndian},
		{"network", binary.BigEndian},
		{"little", binary.LittleEndian},
		{"native", binary.LittleEndian},
	}
	for _, tt := range tests {
		got, err := ParseByteOrder(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseByteOrder("middle")
	assert.ErrorIs(t, err, ErrUnknownByteOrder)
}

func TestChecksum(t *testing.T) {
	data := []byte("weights")
	sum, err := ComputeChecksumReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ComputeChecksum(data), sum)
	assert.NotEqual(t, ComputeChecksum([]byte("weight")), sum)

	path := filepath.Join(t.TempDir(), "w.bin")
	w, err := Create(path, binary.BigEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteFloat64(2))
	require.NoError(t, w.Close())

	fileSum, err := ChecksumFile(path)
	require.NoError(t, err)
	assert.Equal(t, ComputeChecksum([]byte{0x40, 0, 0, 0, 0, 0, 0, 0}), fileSum)
}
