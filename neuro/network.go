package neuro

import "fmt"

// LayerTopology describes the width of one layer boundary when constructing a
// random Network. It is a pure construction-time descriptor: consumed by
// NewRandomNetwork and then discarded.
type LayerTopology struct {
	Neurons uint
}

// Network is a feedforward neural network: an ordered sequence of Layers
// forming a computation graph with no cycles. A Network is immutable once
// constructed, so concurrent Propagate calls need no synchronization.
type Network struct {
	Layers []Layer
}

// NewRandomNetwork creates a Network shaped by topology with biases and
// weights drawn from r. Entry i of topology is the input width of layer i and
// entry i+1 its neuron count, so n topology entries yield n-1 layers. Layers
// are built strictly in order on the same advancing source: layer i is fully
// constructed, all of its neurons included, before layer i+1 begins. Seeded
// sources therefore reproduce the whole network bit for bit.
//
// The topology must contain at least two entries; anything shorter cannot
// describe a single layer and panics.
func NewRandomNetwork(r Rand, topology []LayerTopology) Network {
	if len(topology) <= 1 {
		panic(fmt.Sprintf("neuro: invalid topology: need at least 2 entries, got %d", len(topology)))
	}

	layers := make([]Layer, len(topology)-1)
	for i := range layers {
		layers[i] = NewRandomLayer(r, topology[i].Neurons, topology[i+1].Neurons)
	}
	return Network{Layers: layers}
}

// Propagate feeds inputs through every Layer in order, threading each Layer's
// output into the next, and returns the final Layer's output. No layer is
// skipped and there is no branching.
func (n Network) Propagate(inputs []float32) []float32 {
	for _, layer := range n.Layers {
		inputs = layer.Propagate(inputs)
	}
	return inputs
}
