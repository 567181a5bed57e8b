// Package config loads the YAML run description used by the fixedmath CLI.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/fixedmath/internal/nnet"
	"github.com/born-ml/fixedmath/internal/serialization"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Network is the shape section of a run.
type Network struct {
	Input  int `yaml:"input"`
	Output int `yaml:"output"`
	Width  int `yaml:"width"`
	Layers int `yaml:"layers"`
}

// Config describes one training or evaluation run.
type Config struct {
	Network      Network       `yaml:"network"`
	Seed         uint64        `yaml:"seed"`
	LearningRate float64       `yaml:"learning_rate"`
	Epochs       int           `yaml:"epochs"`
	BiasUpdate   string        `yaml:"bias_update"`
	Weights      string        `yaml:"weights,omitempty"`
	ByteOrder    string        `yaml:"byte_order"`
	Samples      []nnet.Sample `yaml:"samples"`
	LogLevel     string        `yaml:"log_level"`
	LogEvery     int           `yaml:"log_every,omitempty"`
	Workers      int           `yaml:"workers,omitempty"`
}

// Default returns the values used for keys missing from a file.
func Default() Config {
	return Config{
		Seed:         13473,
		LearningRate: 0.02,
		Epochs:       1000,
		BiasUpdate:   nnet.UpstreamBias.String(),
		ByteOrder:    "big",
		LogLevel:     "info",
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a config from r on top of Default and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Shape returns the network shape.
func (c *Config) Shape() nnet.Shape {
	return nnet.Shape{
		Input:  c.Network.Input,
		Output: c.Network.Output,
		Width:  c.Network.Width,
		Layers: c.Network.Layers,
	}
}

// Order returns the byte order of the weight file.
func (c *Config) Order() (binary.ByteOrder, error) {
	return serialization.ParseByteOrder(c.ByteOrder)
}

// BiasRule returns the configured bias update rule.
func (c *Config) BiasRule() (nnet.BiasRule, error) {
	return nnet.ParseBiasRule(c.BiasUpdate)
}

// Validate checks c for values no run could use.
func (c *Config) Validate() error {
	if err := c.Shape().Validate(); err != nil {
		return fmt.Errorf("%w: network: %w", ErrInvalid, err)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning_rate must be positive, got %g", ErrInvalid, c.LearningRate)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be positive, got %d", ErrInvalid, c.Epochs)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	if _, err := c.Order(); err != nil {
		return fmt.Errorf("%w: byte_order: %w", ErrInvalid, err)
	}
	if _, err := c.BiasRule(); err != nil {
		return fmt.Errorf("%w: bias_update: %w", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	for i, s := range c.Samples {
		if len(s.Input) != c.Network.Input {
			return fmt.Errorf("%w: sample %d: input has %d values, network takes %d",
				ErrInvalid, i, len(s.Input), c.Network.Input)
		}
		if len(s.Target) != c.Network.Output {
			return fmt.Errorf("%w: sample %d: target has %d values, network produces %d",
				ErrInvalid, i, len(s.Target), c.Network.Output)
		}
	}
	return nil
}

// Logger builds a JSON logger on stderr at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return zc.Build()
}
