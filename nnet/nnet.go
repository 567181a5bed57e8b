// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nnet provides the public API for the seeded feed-forward network.
//
// Example:
//
//	seed := uint64(13473)
//	net, err := nnet.New(nnet.Shape{Input: 3, Output: 1, Width: 2, Layers: 2}, &seed, 0.02)
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := nnet.NewTrainer(net, nnet.WithEpochs(10000)).Train(ctx, samples)
package nnet

import (
	"context"
	"encoding/binary"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/born-ml/fixedmath/internal/nnet"
	"github.com/born-ml/fixedmath/internal/parallel"
	"github.com/born-ml/fixedmath/internal/scalar"
)

// Network is a feed-forward network with one shared bias per layer.
type Network = nnet.Network

// Layer is one layer of a Network.
type Layer = nnet.Layer

// Shape fixes the topology of a network.
type Shape = nnet.Shape

// BiasRule selects which layer's bias a backward step moves.
type BiasRule = nnet.BiasRule

// Bias rules.
const (
	UpstreamBias   BiasRule = nnet.UpstreamBias
	DownstreamBias BiasRule = nnet.DownstreamBias
)

// Option configures weight persistence.
type Option = nnet.Option

// NetworkOption configures New.
type NetworkOption = nnet.NetworkOption

// Source draws initial weights from a seed.
type Source = scalar.Source[float64]

// Common errors.
var (
	ErrOutputLargerThanHiddenLayer = nnet.ErrOutputLargerThanHiddenLayer
	ErrCouldNotWriteBuffer         = nnet.ErrCouldNotWriteBuffer
	ErrCouldNotReadBuffer          = nnet.ErrCouldNotReadBuffer
	ErrInvalidShape                = nnet.ErrInvalidShape
	ErrInputWidth                  = nnet.ErrInputWidth
	ErrTargetWidth                 = nnet.ErrTargetWidth
	ErrNoSamples                   = nnet.ErrNoSamples
	ErrInvalidEpochs               = nnet.ErrInvalidEpochs
)

// New creates a network whose weights are drawn from *seed. The seed is
// advanced once per drawn value.
func New(shape Shape, seed *uint64, learningRate float64, opts ...NetworkOption) (*Network, error) {
	return nnet.New(shape, seed, learningRate, opts...)
}

// WithSource draws the initial weights from src.
func WithSource(src Source) NetworkOption { return nnet.WithSource(src) }

// WithBiasRule selects the bias update rule.
func WithBiasRule(rule BiasRule) NetworkOption { return nnet.WithBiasRule(rule) }

// ParseBiasRule maps "upstream" or "downstream" to a BiasRule.
func ParseBiasRule(s string) (BiasRule, error) { return nnet.ParseBiasRule(s) }

// WithByteOrder selects the byte order of saved weights.
func WithByteOrder(order binary.ByteOrder) Option { return nnet.WithByteOrder(order) }

// FastSigmoid is the activation used by every non-input layer.
func FastSigmoid(x float64) float64 { return nnet.FastSigmoid(x) }

// Training

// Sample is one training pair.
type Sample = nnet.Sample

// Trainer runs per-sample gradient descent.
type Trainer = nnet.Trainer

// TrainerOption configures a Trainer.
type TrainerOption = nnet.TrainerOption

// EpochStats summarizes one epoch.
type EpochStats = nnet.EpochStats

// Result is returned by Trainer.Train.
type Result = nnet.Result

// NewTrainer creates a trainer for net.
func NewTrainer(net *Network, opts ...TrainerOption) *Trainer { return nnet.NewTrainer(net, opts...) }

// WithEpochs sets the number of epochs.
func WithEpochs(n int) TrainerOption { return nnet.WithEpochs(n) }

// WithLogger sets the trainer logger.
func WithLogger(l *zap.Logger) TrainerOption { return nnet.WithLogger(l) }

// WithLogEvery logs progress every n epochs.
func WithLogEvery(n int) TrainerOption { return nnet.WithLogEvery(n) }

// WithRunID fixes the run identifier.
func WithRunID(id uuid.UUID) TrainerOption { return nnet.WithRunID(id) }

// WithEpochCallback registers fn to be called after every epoch.
func WithEpochCallback(fn func(EpochStats)) TrainerOption { return nnet.WithEpochCallback(fn) }

// Evaluate runs samples forward without training.
func Evaluate(net *Network, samples []Sample) ([][]float64, float64, error) {
	return nnet.Evaluate(net, samples)
}

// Seed sweeps

// SweepSpec describes a batch of networks differing only in seed.
type SweepSpec = nnet.SweepSpec

// SweepResult is the outcome of training one seed.
type SweepResult = nnet.SweepResult

// ParallelConfig bounds the number of concurrently trained networks.
type ParallelConfig = parallel.Config

// DefaultParallelConfig uses one worker per CPU.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// Sweep trains one network per seed concurrently, best first.
func Sweep(ctx context.Context, spec SweepSpec, samples []Sample, cfg ParallelConfig) ([]SweepResult, error) {
	return nnet.Sweep(ctx, spec, samples, cfg)
}
