package neuro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomLayerDrawOrder(t *testing.T) {
	r := &sequenceRand{samples: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}}

	layer := NewRandomLayer(r, 3, 2)

	// Neurons are drawn left to right on the same advancing source.
	require.Len(t, layer.Neurons, 2)
	assert.InDelta(t, 0.1, layer.Neurons[0].Bias, 1e-6)
	assert.InDeltaSlice(t, []float32{0.2, 0.3, 0.4}, layer.Neurons[0].Weights, 1e-6)
	assert.InDelta(t, 0.5, layer.Neurons[1].Bias, 1e-6)
	assert.InDeltaSlice(t, []float32{0.6, 0.7, 0.8}, layer.Neurons[1].Weights, 1e-6)
	assert.Equal(t, 8, r.calls)
}

func TestLayerPropagate(t *testing.T) {
	neurons := []Neuron{
		{Bias: 0.1, Weights: []float32{0.2, 0.3, 0.4}},
		{Bias: 0.5, Weights: []float32{0.6, 0.7, 0.8}},
	}
	layer := Layer{Neurons: neurons}
	inputs := []float32{-0.5, 0.0, 0.5}

	outputs := layer.Propagate(inputs)

	// One output per neuron, each computed independently from the same inputs.
	require.Len(t, outputs, len(neurons))
	for i, neuron := range neurons {
		assert.InDelta(t, neuron.Propagate(inputs), outputs[i], 1e-6)
	}
}

func TestLayerPropagateOutputLength(t *testing.T) {
	r := NewRand(3)

	for _, count := range []uint{1, 2, 5} {
		layer := NewRandomLayer(r, 4, count)
		outputs := layer.Propagate([]float32{0.1, 0.2, 0.3, 0.4})
		assert.Len(t, outputs, int(count))
	}
}
