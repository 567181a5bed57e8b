// Package nnet implements a small fixed-topology feed-forward network:
// an input layer, a stack of equally wide hidden layers and an output layer,
// trained one sample at a time by plain gradient descent.
package nnet

import (
	"fmt"
	"strings"

	"github.com/born-ml/fixedmath/internal/scalar"
)

// BiasRule selects which layer's bias Backward moves.
type BiasRule int

const (
	// UpstreamBias moves the bias of the layer feeding the erroneous
	// neurons. The forward pass never reads that bias for those neurons, so
	// the output layer's bias keeps its initial value.
	UpstreamBias BiasRule = iota

	// DownstreamBias moves the bias of the layer whose neurons produced the
	// error, the conventional gradient for a shared per-layer bias.
	DownstreamBias
)

// String returns "upstream" or "downstream".
func (r BiasRule) String() string {
	switch r {
	case UpstreamBias:
		return "upstream"
	case DownstreamBias:
		return "downstream"
	default:
		return fmt.Sprintf("BiasRule(%d)", int(r))
	}
}

// ParseBiasRule maps "upstream" or "downstream" to a BiasRule. The empty
// string selects UpstreamBias.
func ParseBiasRule(s string) (BiasRule, error) {
	switch strings.ToLower(s) {
	case "", "upstream":
		return UpstreamBias, nil
	case "downstream":
		return DownstreamBias, nil
	default:
		return 0, fmt.Errorf("unknown bias rule %q", s)
	}
}

// NetworkOption configures New.
type NetworkOption func(*networkOptions)

type networkOptions struct {
	source scalar.Source[float64]
	rule   BiasRule
}

// WithSource draws the initial weights from src instead of scalar.LCG.
func WithSource(src scalar.Source[float64]) NetworkOption {
	return func(o *networkOptions) {
		if src != nil {
			o.source = src
		}
	}
}

// WithBiasRule selects the bias update used by Backward (default
// UpstreamBias).
func WithBiasRule(rule BiasRule) NetworkOption {
	return func(o *networkOptions) { o.rule = rule }
}

// Shape fixes the topology of a network.
type Shape struct {
	Input  int // neurons in the input layer
	Output int // neurons in the output layer
	Width  int // neurons in every hidden layer
	Layers int // number of hidden layers
}

// Validate checks that every dimension is positive and that the output
// layer is no wider than the hidden layers.
func (s Shape) Validate() error {
	if s.Input < 1 || s.Output < 1 || s.Width < 1 || s.Layers < 1 {
		return fmt.Errorf("%w: %s", ErrInvalidShape, s)
	}
	if s.Output > s.Width {
		return fmt.Errorf("%w: output %d, hidden %d", ErrOutputLargerThanHiddenLayer, s.Output, s.Width)
	}
	return nil
}

// String formats s as "input-[width×layers]-output".
func (s Shape) String() string {
	return fmt.Sprintf("%d-[%d×%d]-%d", s.Input, s.Width, s.Layers, s.Output)
}

// Network is a feed-forward network with a shared bias per layer and a
// fast-sigmoid activation.
//
// A Network is not safe for concurrent use. Independent networks share no
// state and can be trained in parallel.
//
// Example:
//
//	seed := uint64(13473)
//	net, err := nnet.New(nnet.Shape{Input: 3, Output: 1, Width: 2, Layers: 2}, &seed, 0.02)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := net.Forward([]float64{1, 1, 0})
type Network struct {
	shape        Shape
	learningRate float64
	biasRule     BiasRule
	input        *Layer
	output       *Layer
	hidden       []*Layer
}

// New creates a network with weights drawn from a seeded generator.
//
// Parameters:
//   - shape: Topology of the network
//   - seed: Caller-owned generator state, advanced once per drawn value
//   - learningRate: Step size used by Backward
//   - opts: Optional generator and bias rule
//
// Layers are initialized in the order input, output, then hidden layers by
// index; within a layer the weights are drawn row by row before the bias.
// The same shape and seed always produce the same network.
func New(shape Shape, seed *uint64, learningRate float64, opts ...NetworkOption) (*Network, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	o := networkOptions{source: scalar.LCG[float64]{}}
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network{
		shape:        shape,
		learningRate: learningRate,
		biasRule:     o.rule,
	}
	n.input = newLayer(shape.Input, shape.Width, o.source, seed)
	n.output = newLayer(shape.Output, 0, o.source, seed)
	n.hidden = make([]*Layer, shape.Layers)
	for i := range n.hidden {
		n.hidden[i] = newLayer(shape.Width, shape.Width, o.source, seed)
	}
	return n, nil
}

// Shape returns the topology.
func (n *Network) Shape() Shape { return n.shape }

// LearningRate returns the gradient-descent step size.
func (n *Network) LearningRate() float64 { return n.learningRate }

// SetLearningRate changes the gradient-descent step size.
func (n *Network) SetLearningRate(lr float64) { n.learningRate = lr }

// BiasRule returns the bias update used by Backward.
func (n *Network) BiasRule() BiasRule { return n.biasRule }

// Input returns the input layer.
func (n *Network) Input() *Layer { return n.input }

// Output returns the output layer.
func (n *Network) Output() *Layer { return n.output }

// Hidden returns hidden layer i.
func (n *Network) Hidden(i int) *Layer { return n.hidden[i] }

// Forward runs inputs through the network and returns the output
// activations.
//
// The inputs are copied verbatim into the input layer; every later layer
// computes FastSigmoid(prev·w_j + bias) for each of its neurons j.
func (n *Network) Forward(inputs []float64) ([]float64, error) {
	if len(inputs) != n.shape.Input {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInputWidth, len(inputs), n.shape.Input)
	}
	copy(n.input.outputs, inputs)

	prev := n.input
	for _, l := range n.hidden {
		l.calculateOutputs(prev)
		prev = l
	}
	n.output.calculateOutputs(prev)

	return n.output.Outputs(), nil
}

// Backward applies one gradient-descent step towards targets, using the
// activations left by the last Forward call.
//
// Each hidden layer and then the output layer pushes its error back onto
// the weights and bias of the layer before it. The same targets are used at
// every depth, limited to the first min(width, len(targets)) neurons.
func (n *Network) Backward(targets []float64) error {
	if len(targets) != n.shape.Output {
		return fmt.Errorf("%w: got %d, want %d", ErrTargetWidth, len(targets), n.shape.Output)
	}

	prev := n.input
	for _, l := range n.hidden {
		l.backpropagate(targets, prev, n.learningRate, n.biasRule)
		prev = l
	}
	n.output.backpropagate(targets, prev, n.learningRate, n.biasRule)
	return nil
}

// Cost returns the mean squared error of the current output activations
// against targets.
func (n *Network) Cost(targets []float64) (float64, error) {
	if len(targets) != n.shape.Output {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrTargetWidth, len(targets), n.shape.Output)
	}
	return n.output.cost(targets), nil
}

// Step runs Forward, measures the cost and runs Backward for one sample.
// The returned cost is measured before the weights change.
func (n *Network) Step(inputs, targets []float64) (float64, error) {
	if _, err := n.Forward(inputs); err != nil {
		return 0, err
	}
	cost, err := n.Cost(targets)
	if err != nil {
		return 0, err
	}
	return cost, n.Backward(targets)
}

// Clone returns an independent deep copy of n.
func (n *Network) Clone() *Network {
	c := &Network{
		shape:        n.shape,
		learningRate: n.learningRate,
		biasRule:     n.biasRule,
		input:        n.input.clone(),
		output:       n.output.clone(),
		hidden:       make([]*Layer, len(n.hidden)),
	}
	for i, l := range n.hidden {
		c.hidden[i] = l.clone()
	}
	return c
}

// layers returns the layers in construction and persistence order.
func (n *Network) layers() []*Layer {
	out := make([]*Layer, 0, 2+len(n.hidden))
	out = append(out, n.input, n.output)
	return append(out, n.hidden...)
}
