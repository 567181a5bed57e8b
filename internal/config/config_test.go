package config

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/fixedmath/internal/nnet"
	"github.com/born-ml/fixedmath/internal/serialization"
)

const boolRun = `
network: {input: 3, output: 1, width: 2, layers: 2}
seed: 7
learning_rate: 0.05
epochs: 500
weights: model.bin
byte_order: little
bias_update: downstream
log_level: debug
samples:
  - {input: [0, 0, 1], target: [0]}
  - {input: [1, 1, 0], target: [1]}
`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(boolRun))
	require.NoError(t, err)

	assert.Equal(t, nnet.Shape{Input: 3, Output: 1, Width: 2, Layers: 2}, c.Shape())
	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, 0.05, c.LearningRate)
	assert.Equal(t, 500, c.Epochs)
	assert.Equal(t, "model.bin", c.Weights)
	require.Len(t, c.Samples, 2)
	assert.Equal(t, []float64{1, 1, 0}, c.Samples[1].Input)
	assert.Equal(t, []float64{1}, c.Samples[1].Target)

	order, err := c.Order()
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, order)

	rule, err := c.BiasRule()
	require.NoError(t, err)
	assert.Equal(t, nnet.DownstreamBias, rule)
}

func TestDecode_Defaults(t *testing.T) {
	c, err := Decode(strings.NewReader("network: {input: 2, output: 1, width: 1, layers: 1}\n"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Seed, c.Seed)
	assert.Equal(t, 0.02, c.LearningRate)
	assert.Equal(t, 1000, c.Epochs)
	assert.Empty(t, c.Samples)

	order, err := c.Order()
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, order)

	rule, err := c.BiasRule()
	require.NoError(t, err)
	assert.Equal(t, nnet.UpstreamBias, rule)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "", nnet.ErrInvalidShape},
		{"output too wide", "network: {input: 1, output: 3, width: 2, layers: 1}", nnet.ErrOutputLargerThanHiddenLayer},
		{"learning rate", "network: {input: 1, output: 1, width: 1, layers: 1}\nlearning_rate: 0", ErrInvalid},
		{"epochs", "network: {input: 1, output: 1, width: 1, layers: 1}\nepochs: -1", ErrInvalid},
		{"workers", "network: {input: 1, output: 1, width: 1, layers: 1}\nworkers: -2", ErrInvalid},
		{"byte order", "network: {input: 1, output: 1, width: 1, layers: 1}\nbyte_order: middle", serialization.ErrUnknownByteOrder},
		{"bias rule", "network: {input: 1, output: 1, width: 1, layers: 1}\nbias_update: sideways", ErrInvalid},
		{"log level", "network: {input: 1, output: 1, width: 1, layers: 1}\nlog_level: loud", ErrInvalid},
		{"sample input", "network: {input: 2, output: 1, width: 1, layers: 1}\nsamples: [{input: [1], target: [0]}]", ErrInvalid},
		{"sample target", "network: {input: 1, output: 1, width: 1, layers: 1}\nsamples: [{input: [1], target: [0, 1]}]", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("network: {input: 1, output: 1, width: 1, layers: 1}\nlearnin_rate: 0.1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "learnin_rate")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(boolRun), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, c.Epochs)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLogger(t *testing.T) {
	c := Default()
	c.LogLevel = "warn"
	logger, err := c.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	c.LogLevel = "nope"
	_, err = c.Logger()
	assert.ErrorIs(t, err, ErrInvalid)
}
