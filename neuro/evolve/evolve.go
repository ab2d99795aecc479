// Package evolve holds the genetic-algorithm boundary for evolving
// populations of individuals, such as networks built by the neuro package.
// The per-individual evolution step (selection, crossover, mutation) is not
// implemented yet; Evolve currently stops there.
package evolve

// GeneticAlgorithm produces the next generation of a population.
type GeneticAlgorithm[I any] struct{}

// New creates a GeneticAlgorithm.
func New[I any]() GeneticAlgorithm[I] {
	return GeneticAlgorithm[I]{}
}

// Evolve produces the next generation from population, which must not be
// empty. The new generation has the same size as the old one.
func (GeneticAlgorithm[I]) Evolve(population []I) []I {
	if len(population) == 0 {
		panic("evolve: empty population")
	}

	next := make([]I, 0, len(population))
	for range population {
		// TODO selection
		// TODO crossover
		// TODO mutation
		panic("evolve: not implemented")
	}
	return next
}
