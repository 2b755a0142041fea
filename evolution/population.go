package evolution

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// scoredEntry pairs a chromosome with its fitness score for one generation.
type scoredEntry[G any] struct {
	score      float64
	chromosome Chromosome[G]
}

// ScoredPopulation is the scored form of one generation: (score, chromosome)
// entries kept in ascending score order, duplicates preserving insertion
// order. It is rebuilt from scratch every generation and read-only once
// built; its last entry is always the best chromosome of the generation.
type ScoredPopulation[G any] struct {
	entries []scoredEntry[G]
}

// ScorePopulation scores every chromosome in pop and builds the sorted
// collection for this generation.
func ScorePopulation[G any](pop Population[G], problem Problem[G]) *ScoredPopulation[G] {
	entries := make([]scoredEntry[G], len(pop))
	for i, c := range pop {
		entries[i] = scoredEntry[G]{score: problem.Score(c), chromosome: c}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score < entries[j].score
	})
	return &ScoredPopulation[G]{entries: entries}
}

// Len returns the number of scored chromosomes.
func (p *ScoredPopulation[G]) Len() int {
	return len(p.entries)
}

// Best returns the maximal-scoring entry. For an empty population it
// returns zero values.
func (p *ScoredPopulation[G]) Best() (float64, Chromosome[G]) {
	if len(p.entries) == 0 {
		return 0, nil
	}
	last := p.entries[len(p.entries)-1]
	return last.score, last.chromosome
}

// TotalScore returns the sum of all scores. The result may be negative when
// the problem scores negatively; proportional selection is then ill-defined.
func (p *ScoredPopulation[G]) TotalScore() float64 {
	var sum float64
	for _, e := range p.entries {
		sum += e.score
	}
	return sum
}

// AtCumulative walks the entries in ascending order accumulating scores and
// returns the first chromosome whose cumulative sum reaches target. When
// target lies past the total score, it falls back to the best chromosome.
func (p *ScoredPopulation[G]) AtCumulative(target float64) Chromosome[G] {
	var cumulative float64
	for _, e := range p.entries {
		cumulative += e.score
		if target <= cumulative {
			return e.chromosome
		}
	}
	_, best := p.Best()
	return best
}

// AtRank returns the chromosome at the given ascending rank. An
// out-of-range rank falls back to the best chromosome, never an error.
func (p *ScoredPopulation[G]) AtRank(index int) Chromosome[G] {
	if index < 0 || index >= len(p.entries) {
		_, best := p.Best()
		return best
	}
	return p.entries[index].chromosome
}

// scoreAtRank returns the score at the given ascending rank, 0 when out of
// range.
func (p *ScoredPopulation[G]) scoreAtRank(index int) float64 {
	if index < 0 || index >= len(p.entries) {
		return 0
	}
	return p.entries[index].score
}

// Scores returns all scores in ascending order.
func (p *ScoredPopulation[G]) Scores() []float64 {
	out := make([]float64, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.score
	}
	return out
}

// GenerationStats holds per-generation progress numbers.
type GenerationStats struct {
	Generation  int
	BestScore   float64
	MeanScore   float64
	ScoreStdDev float64
	Size        int
	Timestamp   time.Time
}

// Stats computes the statistics of this generation.
func (p *ScoredPopulation[G]) Stats(generation int) GenerationStats {
	s := GenerationStats{
		Generation: generation,
		Size:       len(p.entries),
		Timestamp:  time.Now(),
	}
	if len(p.entries) == 0 {
		return s
	}
	scores := p.Scores()
	s.BestScore = scores[len(scores)-1]
	s.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.ScoreStdDev = stat.StdDev(scores, nil)
	}
	return s
}
