package evolution

import (
	"github.com/go-genalg/genalg/random"
)

// CrossoverOperator recombines exactly two parent chromosomes into two
// children. Parents are left intact; each child has the same length as its
// corresponding parent.
type CrossoverOperator[G any] interface {
	Crossover(parent1, parent2 Chromosome[G], src *random.Source) (Chromosome[G], Chromosome[G])
}

// BlockExchangeCrossover exchanges a random number of randomly sized
// alternating gene blocks between the two parents, generalizing single- and
// multi-point crossover to variable-length chromosomes. Only positions below
// the shorter parent's length are eligible; the longer parent's trailing
// suffix stays with its owner.
type BlockExchangeCrossover[G any] struct{}

// Crossover produces the two children. Swapping the same block layout twice
// returns the original parents, so the operator is an involution on its
// exchange set.
func (BlockExchangeCrossover[G]) Crossover(parent1, parent2 Chromosome[G], src *random.Source) (Chromosome[G], Chromosome[G]) {
	child1 := parent1.Clone()
	child2 := parent2.Clone()

	shorter := min(len(parent1), len(parent2))

	// Walk [0, shorter) cutting it into runs of random length, swapping
	// every other run.
	exchange := true
	for index := 0; index < shorter; {
		next := src.Int(index, shorter)
		if exchange {
			for i := index; i < next; i++ {
				child1[i], child2[i] = child2[i], child1[i]
			}
		}
		exchange = !exchange
		index = next
	}

	return child1, child2
}
