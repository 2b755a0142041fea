package evolution

import (
	"fmt"
)

// Config holds the parameters of an evolutionary run. It is read at run
// start and must not change during a run.
type Config struct {
	PopulationSize      int     // Target number of chromosomes per generation (soft target, see Engine)
	MutationProbability float64 // Per-chromosome mutation probability in [0, 1]
	MinChromosomeLength int     // Minimum chromosome length at creation
	MaxChromosomeLength int     // Maximum chromosome length at creation

	Selection      SelectionType // Parent selection strategy
	TournamentSize int           // Tournament size (tournament selection only)

	Criterion         CriterionType // Ending criterion
	MaxScoreThreshold float64       // Score to reach (max-score criterion only)
	SteadyGenerations int           // Plateau window length (best-score criterion only)

	Seed    uint64 // Random seed (0 = non-reproducible run)
	Verbose bool   // Log per-generation progress to the engine logger
}

// DefaultConfig returns the default run parameters.
func DefaultConfig() *Config {
	return &Config{
		PopulationSize:      100,
		MutationProbability: 0.01,
		MinChromosomeLength: 1,
		MaxChromosomeLength: 100,
		Selection:           SelectionTournament,
		TournamentSize:      10,
		Criterion:           CriterionBestScore,
		SteadyGenerations:   10,
	}
}

// Validate reports the first configuration error. It is called once at run
// start; nothing is re-checked mid-run.
func (c *Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("population size must be positive, got %d", c.PopulationSize)
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return fmt.Errorf("mutation probability must be in [0, 1], got %g", c.MutationProbability)
	}
	if c.MinChromosomeLength < 1 || c.MinChromosomeLength > c.MaxChromosomeLength {
		return fmt.Errorf("chromosome length bounds must satisfy 1 <= min <= max, got [%d, %d]",
			c.MinChromosomeLength, c.MaxChromosomeLength)
	}
	if c.Selection == SelectionTournament {
		if c.TournamentSize < 1 {
			return fmt.Errorf("tournament size must be positive, got %d", c.TournamentSize)
		}
		if c.TournamentSize > c.PopulationSize {
			return fmt.Errorf("tournament size %d cannot be greater than the population size %d",
				c.TournamentSize, c.PopulationSize)
		}
	}
	if c.Criterion == CriterionBestScore && c.SteadyGenerations < 1 {
		return fmt.Errorf("steady generations must be positive, got %d", c.SteadyGenerations)
	}
	return nil
}
