// Package evolution implements a generic evolutionary-optimization engine:
// selection, recombination and mutation over a scored population of
// chromosomes, searching for a high-fitness candidate across generations.
package evolution

import (
	"github.com/go-genalg/genalg/random"
)

// Chromosome is an ordered sequence of genes representing one candidate
// solution. The engine never inspects genes beyond copying and positional
// indexing.
type Chromosome[G any] []G

// Clone returns an independent copy of the chromosome.
func (c Chromosome[G]) Clone() Chromosome[G] {
	if c == nil {
		return nil
	}
	out := make(Chromosome[G], len(c))
	copy(out, c)
	return out
}

// Population is the unordered working buffer of chromosomes between
// generations.
type Population[G any] []Chromosome[G]

// Problem supplies the domain semantics the engine is generic over.
type Problem[G any] interface {
	// RandomGene generates a fresh random gene. It must be callable
	// concurrently with itself when the engine runs in the background and
	// caller-side code generates genes of its own; passing each logical
	// thread its own random.Source satisfies this.
	RandomGene(src *random.Source) G

	// Score computes the fitness of a chromosome. Higher is better.
	// It must be pure and deterministic given the chromosome; negative
	// scores are allowed, though proportional selection strategies
	// degrade under a non-positive total score.
	Score(c Chromosome[G]) float64
}

// Printer is optionally implemented by a Problem to render chromosomes in
// progress events. Problems that do not implement it print as the empty
// string.
type Printer[G any] interface {
	Print(c Chromosome[G]) string
}
