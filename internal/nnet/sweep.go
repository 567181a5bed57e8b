package nnet

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/born-ml/fixedmath/internal/parallel"
)

// SweepSpec describes a batch of identically shaped networks that differ
// only in their initial seed.
type SweepSpec struct {
	Shape        Shape
	LearningRate float64
	BiasRule     BiasRule
	Epochs       int
	Seeds        []uint64
	Logger       *zap.Logger
}

// SweepResult is the outcome of training one seed.
type SweepResult struct {
	Seed    uint64
	Network *Network
	Result  Result
}

// Sweep trains one network per seed concurrently and returns the results
// ordered by final cost, lowest first. Ties keep seed order.
//
// Networks share no state, so the outcome does not depend on cfg. The first
// failure cancels the remaining runs.
func Sweep(ctx context.Context, spec SweepSpec, samples []Sample, cfg parallel.Config) ([]SweepResult, error) {
	if err := spec.Shape.Validate(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	logger := spec.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	epochs := spec.Epochs
	if epochs <= 0 {
		epochs = 1000
	}

	results, err := parallel.Map(ctx, len(spec.Seeds), cfg, func(ctx context.Context, i int) (SweepResult, error) {
		seed := spec.Seeds[i]
		state := seed
		net, err := New(spec.Shape, &state, spec.LearningRate, WithBiasRule(spec.BiasRule))
		if err != nil {
			return SweepResult{}, fmt.Errorf("seed %d: %w", seed, err)
		}
		tr := NewTrainer(net,
			WithEpochs(epochs),
			WithLogger(logger.With(zap.Uint64("seed", seed))),
		)
		res, err := tr.Train(ctx, samples)
		if err != nil {
			return SweepResult{}, fmt.Errorf("seed %d: %w", seed, err)
		}
		return SweepResult{Seed: seed, Network: net, Result: res}, nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b SweepResult) int {
		return cmp.Compare(a.Result.FinalCost(), b.Result.FinalCost())
	})
	return results, nil
}
