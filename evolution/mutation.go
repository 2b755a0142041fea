package evolution

import (
	"github.com/go-genalg/genalg/random"
)

// Mutator stochastically perturbs chromosomes in place: once per
// chromosome, with the configured probability, a random gene range
// [begin, end) is replaced with freshly generated random genes.
type Mutator[G any] struct {
	probability float64
	problem     Problem[G]
}

// NewMutator creates a mutator drawing replacement genes from problem.
func NewMutator[G any](problem Problem[G], probability float64) *Mutator[G] {
	return &Mutator[G]{probability: probability, problem: problem}
}

// Mutate perturbs c in place. The chromosome length never changes. A
// single-gene chromosome has no mutable range (begin and end collapse to
// the same position) and is always left unchanged.
func (m *Mutator[G]) Mutate(c Chromosome[G], src *random.Source) {
	if len(c) < 2 || m.probability <= 0 {
		return
	}
	if src.Float64(0, 1) > m.probability {
		return
	}

	begin := src.Int(0, len(c)-1)
	end := src.Int(begin, len(c))
	for i := begin; i < end; i++ {
		c[i] = m.problem.RandomGene(src)
	}
}
