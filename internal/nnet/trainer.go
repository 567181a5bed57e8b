package nnet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sample is one training pair.
type Sample struct {
	Input  []float64 `yaml:"input"`
	Target []float64 `yaml:"target"`
}

// EpochStats summarizes one pass over the samples.
type EpochStats struct {
	Epoch int
	Cost  float64 // mean of the per-sample costs, measured before each update
}

// Result is returned by Trainer.Train.
type Result struct {
	RunID    uuid.UUID
	Epochs   int
	Costs    []float64 // one mean cost per completed epoch
	Duration time.Duration
}

// FinalCost returns the mean cost of the last completed epoch, or 0 if no
// epoch completed.
func (r Result) FinalCost() float64 {
	if len(r.Costs) == 0 {
		return 0
	}
	return r.Costs[len(r.Costs)-1]
}

// Trainer runs per-sample gradient descent over a fixed sample set.
type Trainer struct {
	net      *Network
	epochs   int
	logEvery int
	logger   *zap.Logger
	runID    uuid.UUID
	onEpoch  func(EpochStats)
}

// TrainerOption configures a Trainer.
type TrainerOption func(*Trainer)

// WithEpochs sets the number of passes over the samples (default 1000).
func WithEpochs(n int) TrainerOption {
	return func(t *Trainer) { t.epochs = n }
}

// WithLogger sets the logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) TrainerOption {
	return func(t *Trainer) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithLogEvery logs progress every n epochs. Zero disables progress logs.
func WithLogEvery(n int) TrainerOption {
	return func(t *Trainer) { t.logEvery = n }
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id uuid.UUID) TrainerOption {
	return func(t *Trainer) { t.runID = id }
}

// WithEpochCallback registers fn to be called after every epoch.
func WithEpochCallback(fn func(EpochStats)) TrainerOption {
	return func(t *Trainer) { t.onEpoch = fn }
}

// NewTrainer creates a trainer for net.
func NewTrainer(net *Network, opts ...TrainerOption) *Trainer {
	t := &Trainer{
		net:    net,
		epochs: 1000,
		logger: zap.NewNop(),
		runID:  uuid.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RunID returns the identifier attached to every log entry of this trainer.
func (t *Trainer) RunID() uuid.UUID { return t.runID }

// Train runs the configured number of epochs. Cancelling ctx stops training
// between samples; the partial result is returned with ctx's error.
func (t *Trainer) Train(ctx context.Context, samples []Sample) (Result, error) {
	res := Result{RunID: t.runID}
	if t.epochs < 1 {
		return res, fmt.Errorf("%w: got %d", ErrInvalidEpochs, t.epochs)
	}
	if len(samples) == 0 {
		return res, ErrNoSamples
	}

	log := t.logger.With(
		zap.String("run_id", t.runID.String()),
		zap.Stringer("shape", t.net.Shape()),
	)
	log.Info("training started",
		zap.Int("epochs", t.epochs),
		zap.Int("samples", len(samples)),
		zap.Float64("learning_rate", t.net.LearningRate()),
	)

	start := time.Now()

	res.Costs = make([]float64, 0, t.epochs)
	for epoch := 1; epoch <= t.epochs; epoch++ {
		var sum float64
		for i, s := range samples {
			if err := ctx.Err(); err != nil {
				log.Warn("training cancelled", zap.Int("epoch", epoch), zap.Error(err))
				res.Duration = time.Since(start)
				return res, err
			}
			cost, err := t.net.Step(s.Input, s.Target)
			if err != nil {
				return res, fmt.Errorf("epoch %d, sample %d: %w", epoch, i, err)
			}
			sum += cost
		}

		stats := EpochStats{Epoch: epoch, Cost: sum / float64(len(samples))}
		res.Costs = append(res.Costs, stats.Cost)
		res.Epochs = epoch
		if t.onEpoch != nil {
			t.onEpoch(stats)
		}
		if t.logEvery > 0 && epoch%t.logEvery == 0 {
			log.Debug("epoch finished", zap.Int("epoch", epoch), zap.Float64("cost", stats.Cost))
		}
	}

	res.Duration = time.Since(start)
	log.Info("training finished",
		zap.Int("epochs", res.Epochs),
		zap.Float64("cost", res.FinalCost()),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

// Evaluate runs every sample forward without updating the weights and
// returns the outputs together with their mean cost.
func (t *Trainer) Evaluate(samples []Sample) ([][]float64, float64, error) {
	return Evaluate(t.net, samples)
}

// Evaluate runs every sample through net without updating its weights and
// returns the outputs together with their mean cost.
func Evaluate(net *Network, samples []Sample) ([][]float64, float64, error) {
	outputs := make([][]float64, len(samples))
	var sum float64
	for i, s := range samples {
		out, err := net.Forward(s.Input)
		if err != nil {
			return nil, 0, fmt.Errorf("sample %d: %w", i, err)
		}
		cost, err := net.Cost(s.Target)
		if err != nil {
			return nil, 0, fmt.Errorf("sample %d: %w", i, err)
		}
		outputs[i] = out
		sum += cost
	}
	if len(samples) == 0 {
		return outputs, 0, nil
	}
	return outputs, sum / float64(len(samples)), nil
}
