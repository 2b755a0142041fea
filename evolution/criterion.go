package evolution

import (
	"fmt"
)

// CriterionType selects the rule deciding when the search stops.
type CriterionType int

const (
	// CriterionBestScore stops once the best score has not improved for a
	// configured number of consecutive generations.
	CriterionBestScore CriterionType = iota
	// CriterionMaxScore stops once the best score reaches a configured
	// threshold.
	CriterionMaxScore
	// CriterionNeverStop never stops on its own; the run ends only through
	// an explicit stop request.
	CriterionNeverStop
)

// String returns the criterion name.
func (t CriterionType) String() string {
	switch t {
	case CriterionBestScore:
		return "best-score"
	case CriterionMaxScore:
		return "max-score"
	case CriterionNeverStop:
		return "never-stop"
	default:
		return fmt.Sprintf("criterion(%d)", int(t))
	}
}

// Criterion decides whether evolution should halt. Done is consulted once
// per generation with that generation's scored population; implementations
// may keep state across calls, so a fresh Criterion is built for every run.
type Criterion[G any] interface {
	Done(pop *ScoredPopulation[G]) bool
}

// newCriterion builds the configured ending criterion. An unrecognized type
// is a configuration error.
func newCriterion[G any](config *Config) (Criterion[G], error) {
	switch config.Criterion {
	case CriterionBestScore:
		return &bestScoreCriterion[G]{window: config.SteadyGenerations}, nil
	case CriterionMaxScore:
		return &maxScoreCriterion[G]{threshold: config.MaxScoreThreshold}, nil
	case CriterionNeverStop:
		return neverStopCriterion[G]{}, nil
	default:
		return nil, fmt.Errorf("unknown ending criterion %d", int(config.Criterion))
	}
}

// maxScoreCriterion fires at the first generation whose best score reaches
// the threshold.
type maxScoreCriterion[G any] struct {
	threshold float64
}

func (c *maxScoreCriterion[G]) Done(pop *ScoredPopulation[G]) bool {
	best, _ := pop.Best()
	return best >= c.threshold
}

// bestScoreCriterion keeps a trailing window of per-generation best scores
// and fires once the window is full and no entry strictly improves on the
// oldest one.
type bestScoreCriterion[G any] struct {
	window  int
	history []float64
}

func (c *bestScoreCriterion[G]) Done(pop *ScoredPopulation[G]) bool {
	best, _ := pop.Best()
	c.history = append(c.history, best)

	// Not enough generations observed yet.
	if len(c.history) <= c.window {
		return false
	}
	c.history = c.history[1:]

	oldest := c.history[0]
	for _, score := range c.history[1:] {
		if score > oldest {
			return false
		}
	}
	return true
}

type neverStopCriterion[G any] struct{}

func (neverStopCriterion[G]) Done(*ScoredPopulation[G]) bool {
	return false
}
