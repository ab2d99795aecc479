package neuro

// Layer is an ordered collection of Neurons sharing the same input width.
// Neurons within a Layer are independent: none observes another's output.
type Layer struct {
	Neurons []Neuron
}

// NewRandomLayer creates a Layer of outputNeurons Neurons, each expecting
// inputNeurons inputs. Neurons are drawn left to right from the same
// advancing source r; the source is never reset between neurons.
func NewRandomLayer(r Rand, inputNeurons, outputNeurons uint) Layer {
	neurons := make([]Neuron, outputNeurons)
	for i := range neurons {
		neurons[i] = NewRandomNeuron(r, inputNeurons)
	}
	return Layer{Neurons: neurons}
}

// Propagate applies every Neuron to the same input vector and returns one
// output per Neuron, in neuron order.
func (l Layer) Propagate(inputs []float32) []float32 {
	outputs := make([]float32, len(l.Neurons))
	for i, neuron := range l.Neurons {
		outputs[i] = neuron.Propagate(inputs)
	}
	return outputs
}
