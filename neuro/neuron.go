package neuro

import "fmt"

// Neuron is the smallest computational unit of a feedforward network.
// It holds one bias and one weight per expected input.
type Neuron struct {
	Bias    float32
	Weights []float32
}

// NewRandomNeuron creates a Neuron for inputSize inputs with its bias and
// weights drawn from r. The bias is drawn first, then the weights in index
// order, consuming exactly 1+inputSize samples. A seeded source therefore
// reproduces the exact same neuron.
func NewRandomNeuron(r Rand, inputSize uint) Neuron {
	neuron := Neuron{
		Bias:    r.Sample(),
		Weights: make([]float32, inputSize),
	}
	for i := range neuron.Weights {
		neuron.Weights[i] = r.Sample()
	}
	return neuron
}

// Propagate computes the neuron's activation for the given inputs: the
// weighted sum of the inputs plus the bias, passed through a rectified-linear
// clamp. The sum runs in ascending index order, so identical float32 inputs
// always round to the identical result.
//
// The input length must equal the weight count. A mismatch means the caller
// wired up an inconsistent topology, so it panics rather than returning an
// error.
func (n Neuron) Propagate(inputs []float32) float32 {
	if len(inputs) != len(n.Weights) {
		panic(fmt.Sprintf("neuro: dimension mismatch: %d inputs for %d weights", len(inputs), len(n.Weights)))
	}

	var sum float32
	for i, input := range inputs {
		sum += input * n.Weights[i]
	}
	return max(0, n.Bias+sum)
}
