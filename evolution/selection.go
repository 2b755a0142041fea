package evolution

import (
	"fmt"

	"github.com/go-genalg/genalg/random"
)

// SelectionType selects the strategy used to draw parents from a scored
// population.
type SelectionType int

const (
	// SelectionTournament samples a fixed number of chromosomes with
	// replacement and keeps the best one.
	SelectionTournament SelectionType = iota
	// SelectionRouletteWheel picks a single chromosome with probability
	// proportional to its fitness score.
	SelectionRouletteWheel
	// SelectionStochasticUniversal picks several chromosomes at evenly
	// spaced positions across the fitness distribution in one call.
	SelectionStochasticUniversal
)

// String returns the selection type name.
func (t SelectionType) String() string {
	switch t {
	case SelectionTournament:
		return "tournament"
	case SelectionRouletteWheel:
		return "roulette-wheel"
	case SelectionStochasticUniversal:
		return "stochastic-universal"
	default:
		return fmt.Sprintf("selection(%d)", int(t))
	}
}

// Selector draws one or more parent chromosomes from the current scored
// population. Implementations only read the population; returned
// chromosomes are copies, so parents stay intact while children are built.
type Selector[G any] interface {
	Select(pop *ScoredPopulation[G], src *random.Source) []Chromosome[G]
}

// newSelector builds the configured selection strategy. An unrecognized
// type is a configuration error.
func newSelector[G any](config *Config) (Selector[G], error) {
	switch config.Selection {
	case SelectionTournament:
		return &TournamentSelector[G]{Size: config.TournamentSize}, nil
	case SelectionRouletteWheel:
		return &RouletteWheelSelector[G]{}, nil
	case SelectionStochasticUniversal:
		return &StochasticUniversalSelector[G]{}, nil
	default:
		return nil, fmt.Errorf("unknown selection type %d", int(config.Selection))
	}
}

// RouletteWheelSelector implements fitness-proportionate selection: the
// wheel is spun once over [0, totalScore) and the chromosome at that
// cumulative fitness is returned. Preference ordering is undefined when the
// total score is not positive; problems with negative scores should prefer
// tournament selection.
type RouletteWheelSelector[G any] struct{}

// Select returns a single chromosome.
func (s *RouletteWheelSelector[G]) Select(pop *ScoredPopulation[G], src *random.Source) []Chromosome[G] {
	spin := src.Float64(0, pop.TotalScore())
	return []Chromosome[G]{pop.AtCumulative(spin).Clone()}
}

// StochasticUniversalSelector implements stochastic universal sampling: a
// random number of chromosomes are selected at equidistant fitness
// positions, giving weaker individuals nonzero selection odds.
type StochasticUniversalSelector[G any] struct{}

// Select returns the chromosomes at evenly spaced cumulative-fitness
// positions starting from a random offset.
func (s *StochasticUniversalSelector[G]) Select(pop *ScoredPopulation[G], src *random.Source) []Chromosome[G] {
	total := pop.TotalScore()
	count := src.Int(1, max(1, pop.Len()/10))
	spacing := total / float64(count)
	if spacing <= 0 {
		// Non-positive total score: sampling positions cannot advance.
		// Degrade to a single pick rather than fail.
		return []Chromosome[G]{pop.AtCumulative(total).Clone()}
	}

	start := src.Float64(0, spacing)
	var selected []Chromosome[G]
	for position := start; position <= total; position += spacing {
		selected = append(selected, pop.AtCumulative(position).Clone())
	}
	return selected
}

// TournamentSelector draws Size independent uniform ranks with replacement
// and returns the chromosome among them with the strictly highest score,
// first seen winning ties.
type TournamentSelector[G any] struct {
	Size int
}

// Select returns the tournament winner. Size not exceeding the population
// size is validated at run start.
func (s *TournamentSelector[G]) Select(pop *ScoredPopulation[G], src *random.Source) []Chromosome[G] {
	bestRank := src.Int(0, pop.Len()-1)
	bestScore := pop.scoreAtRank(bestRank)
	for i := 1; i < s.Size; i++ {
		rank := src.Int(0, pop.Len()-1)
		if score := pop.scoreAtRank(rank); score > bestScore {
			bestRank, bestScore = rank, score
		}
	}
	return []Chromosome[G]{pop.AtRank(bestRank).Clone()}
}
