package nnet

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failAfter struct {
	n int
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("device full")
	}
	w.n--
	return len(p), nil
}

func trainedNet(t *testing.T) *Network {
	t.Helper()
	net := newBoolNet(t)
	_, err := NewTrainer(net, WithEpochs(50)).Train(context.Background(), boolSamples)
	require.NoError(t, err)
	return net
}

func TestEncodedSize(t *testing.T) {
	net := newBoolNet(t)
	// input: 3 + 2·3 + 1, output: 1 + 0 + 1, hidden: 2 × (2 + 2·2 + 1)
	assert.Equal(t, int64((10+2+14)*8), net.EncodedSize())

	var buf bytes.Buffer
	require.NoError(t, net.SaveLayers(&buf))
	assert.Equal(t, net.EncodedSize(), int64(buf.Len()))
}

func TestSaveLayers_Layout(t *testing.T) {
	net := newBoolNet(t)
	_, err := net.Forward([]float64{0.25, 0.5, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, net.SaveLayers(&buf))
	raw := buf.Bytes()

	value := func(i int) float64 {
		return math.Float64frombits(binary.BigEndian.Uint64(raw[i*8:]))
	}
	in := net.Input()
	assert.Equal(t, 0.25, value(0))
	assert.Equal(t, 1.0, value(2))
	assert.Equal(t, in.Weights(0)[0], value(3))
	assert.Equal(t, in.Weights(1)[2], value(8))
	assert.Equal(t, in.Bias(), value(9))
	assert.Equal(t, net.Output().Outputs()[0], value(10))
	assert.Equal(t, net.Output().Bias(), value(11))
	assert.Equal(t, net.Hidden(0).Outputs()[0], value(12))
	assert.Equal(t, net.Hidden(1).Bias(), value(25))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			src := trainedNet(t)

			var buf bytes.Buffer
			require.NoError(t, src.SaveLayers(&buf, WithByteOrder(order)))
			saved := append([]byte(nil), buf.Bytes()...)

			seed := uint64(1)
			dst, err := New(boolShape, &seed, 0.02)
			require.NoError(t, err)
			require.NoError(t, dst.LoadLayers(bytes.NewReader(saved), WithByteOrder(order)))

			var again bytes.Buffer
			require.NoError(t, dst.SaveLayers(&again, WithByteOrder(order)))
			assert.Equal(t, saved, again.Bytes(), "round trip must be byte-exact")

			for _, s := range boolSamples {
				want, err := src.Forward(s.Input)
				require.NoError(t, err)
				got, err := dst.Forward(s.Input)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestSaveLoad_ByteOrderMatters(t *testing.T) {
	src := trainedNet(t)

	var big, little bytes.Buffer
	require.NoError(t, src.SaveLayers(&big))
	require.NoError(t, src.SaveLayers(&little, WithByteOrder(binary.LittleEndian)))
	assert.NotEqual(t, big.Bytes(), little.Bytes())

	var explicit bytes.Buffer
	require.NoError(t, src.SaveLayers(&explicit, WithByteOrder(binary.BigEndian)))
	assert.Equal(t, big.Bytes(), explicit.Bytes(), "big-endian is the default")
}

func TestLoadLayers_Truncated(t *testing.T) {
	src := trainedNet(t)
	var buf bytes.Buffer
	require.NoError(t, src.SaveLayers(&buf))

	dst := newBoolNet(t)
	before := dst.Input().Weights(0)

	err := dst.LoadLayers(bytes.NewReader(buf.Bytes()[:buf.Len()-3]))
	assert.ErrorIs(t, err, ErrCouldNotReadBuffer)
	assert.Equal(t, before, dst.Input().Weights(0), "failed load leaves the network unchanged")

	err = dst.LoadLayers(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrCouldNotReadBuffer)
}

func TestSaveLayers_WriteError(t *testing.T) {
	err := newBoolNet(t).SaveLayers(&failAfter{n: 5})
	assert.ErrorIs(t, err, ErrCouldNotWriteBuffer)
	assert.Contains(t, err.Error(), "device full")
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.bin")
	src := trainedNet(t)

	require.NoError(t, src.SaveFile(path, WithByteOrder(binary.LittleEndian)))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, src.EncodedSize(), info.Size())

	dst := newBoolNet(t)
	require.NoError(t, dst.LoadFile(path, WithByteOrder(binary.LittleEndian)))
	for _, s := range boolSamples {
		want, _ := src.Forward(s.Input)
		got, _ := dst.Forward(s.Input)
		assert.Equal(t, want, got)
	}

	err = dst.LoadFile(filepath.Join(dir, "missing.bin"))
	assert.ErrorIs(t, err, ErrCouldNotReadBuffer)

	err = src.SaveFile(filepath.Join(dir, "no", "such", "dir", "model.bin"))
	assert.ErrorIs(t, err, ErrCouldNotWriteBuffer)
}
