package nnet

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/fixedmath/internal/scalar"
	"github.com/born-ml/fixedmath/internal/serialization"
)

// Layer is one stage of the network.
//
// A layer owns its activations, one weight row per neuron of the next layer
// and a single bias shared by all of its outputs. The output layer has no
// next layer and therefore no weights.
type Layer struct {
	outputs []float64
	weights [][]float64 // nextWidth rows of width values
	bias    float64
}

// newLayer draws the weights row by row, then the bias, from src.
// Outputs start at zero.
func newLayer(width, nextWidth int, src scalar.Source[float64], seed *uint64) *Layer {
	l := &Layer{
		outputs: make([]float64, width),
		weights: make([][]float64, nextWidth),
	}
	for j := range l.weights {
		row := make([]float64, width)
		for i := range row {
			row[i] = src.Next(seed)
		}
		l.weights[j] = row
	}
	l.bias = src.Next(seed)
	return l
}

// Width returns the number of neurons in the layer.
func (l *Layer) Width() int { return len(l.outputs) }

// NextWidth returns the number of weight rows, one per downstream neuron.
func (l *Layer) NextWidth() int { return len(l.weights) }

// Outputs returns a copy of the current activations.
func (l *Layer) Outputs() []float64 {
	out := make([]float64, len(l.outputs))
	copy(out, l.outputs)
	return out
}

// Weights returns a copy of the weight row feeding downstream neuron j.
func (l *Layer) Weights(j int) []float64 {
	out := make([]float64, len(l.weights[j]))
	copy(out, l.weights[j])
	return out
}

// Bias returns the shared bias.
func (l *Layer) Bias() float64 { return l.bias }

// calculateOutputs recomputes l's activations from the previous layer.
// Neuron j reads prev's weight row j and adds l's own bias.
func (l *Layer) calculateOutputs(prev *Layer) {
	for j := range l.outputs {
		l.outputs[j] = FastSigmoid(floats.Dot(prev.outputs, prev.weights[j]) + l.bias)
	}
}

// backpropagate applies one gradient-descent step to the weights feeding l.
//
// Every neuron j below both l's width and the target count contributes
// err·f'(out) to prev's weight row j and to one bias, chosen by rule. Under
// UpstreamBias the bias that moves is prev's, while calculateOutputs reads l's.
func (l *Layer) backpropagate(targets []float64, prev *Layer, learningRate float64, rule BiasRule) {
	bias := &prev.bias
	if rule == DownstreamBias {
		bias = &l.bias
	}

	n := min(len(l.outputs), len(targets))
	for j := 0; j < n; j++ {
		out := l.outputs[j]
		grad := (out - targets[j]) * FastSigmoidDerivative(out)
		floats.AddScaled(prev.weights[j], -learningRate*grad, prev.outputs)
		*bias += -learningRate * grad
	}
}

// cost is the mean squared error of l's activations against targets.
func (l *Layer) cost(targets []float64) float64 {
	var sum float64
	for i, out := range l.outputs {
		sum += scalar.Square(targets[i] - out)
	}
	return (1 / float64(len(l.outputs))) * sum
}

// values returns how many float64 values the layer encodes to.
func (l *Layer) values() int {
	return len(l.outputs) + len(l.weights)*len(l.outputs) + 1
}

func (l *Layer) save(w *serialization.Writer) error {
	if err := w.WriteFloat64s(l.outputs); err != nil {
		return err
	}
	for _, row := range l.weights {
		if err := w.WriteFloat64s(row); err != nil {
			return err
		}
	}
	return w.WriteFloat64(l.bias)
}

func (l *Layer) load(r *serialization.Reader) error {
	if err := r.ReadFloat64s(l.outputs); err != nil {
		return err
	}
	for _, row := range l.weights {
		if err := r.ReadFloat64s(row); err != nil {
			return err
		}
	}
	bias, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	l.bias = bias
	return nil
}

// clone returns a deep copy of l.
func (l *Layer) clone() *Layer {
	c := &Layer{
		outputs: l.Outputs(),
		weights: make([][]float64, len(l.weights)),
		bias:    l.bias,
	}
	for j := range l.weights {
		c.weights[j] = l.Weights(j)
	}
	return c
}
