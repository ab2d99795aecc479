// Package neuro provides a small feedforward neural network core with
// randomized, reproducible construction.
//
// A Network is an ordered sequence of Layers, each an ordered sequence of
// Neurons holding a bias and one weight per input. Propagation is a pure
// forward pass: the input vector is threaded through the layers in order,
// each neuron computing a ReLU-clamped weighted sum. There is no training;
// weights come either from explicit construction or from a seeded uniform
// random source, which makes every constructed network exactly reproducible.
//
// Basic usage:
//
//	// Load construction parameters
//	config, err := neuro.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Build a random network from the configured topology and seed
//	network := neuro.NewRandomNetwork(neuro.NewRand(config.Seed), config.LayerTopologies())
//
//	// Query it as often as needed
//	outputs := network.Propagate([]float32{0.5, 0.25, 0.75})
//	fmt.Println(outputs)
package neuro
