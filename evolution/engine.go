package evolution

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/go-genalg/genalg/random"
)

// State describes where the engine is in its run lifecycle.
type State int32

const (
	// StateIdle means no run has started yet.
	StateIdle State = iota
	// StateRunning means a generation loop is in progress.
	StateRunning
	// StateStopped means the last run has ended; a fresh run may start.
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Snapshot is the immutable published view of the best chromosome of a
// generation.
type Snapshot[G any] struct {
	Generation int
	Score      float64
	Chromosome Chromosome[G]
}

// Engine owns the generation loop: it seeds an initial population from the
// problem, scores it, consults the ending criterion, draws parents through
// the configured selection strategy, recombines and mutates them into the
// next generation, and publishes a consistent best-so-far snapshot at every
// generation boundary.
//
// The engine runs either blocking (Run) or in the background (Start). In
// background mode the worker goroutine owns the population; the caller may
// concurrently request a stop and query the published snapshot, generation
// counter and state. Stopping is cooperative: the worker observes the
// request once per generation boundary and may complete one more full
// generation first.
type Engine[G any] struct {
	// Config is read once at run start and must not change during a run.
	Config *Config
	// Logger receives per-generation progress events when Config.Verbose
	// is set. Defaults to a discarding logger.
	Logger *slog.Logger
	// OnGeneration, when set, is called once per generation with that
	// generation's statistics and the printed best chromosome. The engine
	// calls it from the generation loop and never waits for acknowledgement
	// beyond the call returning.
	OnGeneration func(stats GenerationStats, best string)

	problem Problem[G]
	src     *random.Source

	selector  Selector[G]
	crossover CrossoverOperator[G]
	mutator   *Mutator[G]

	state      atomic.Int32
	stopFlag   atomic.Bool
	generation atomic.Int64
	best       atomic.Pointer[Snapshot[G]]

	mu      sync.Mutex
	history []GenerationStats
	done    chan struct{}
}

// New creates an engine for the given problem. A nil config uses
// DefaultConfig. Configuration is validated at run start, not here.
func New[G any](problem Problem[G], config *Config) *Engine[G] {
	if config == nil {
		config = DefaultConfig()
	}
	closed := make(chan struct{})
	close(closed)
	return &Engine[G]{
		Config:  config,
		Logger:  slog.New(slog.DiscardHandler),
		problem: problem,
		src:     random.New(config.Seed),
		done:    closed,
	}
}

// Run executes the generation loop on the caller's goroutine. It returns
// when the ending criterion fires, the context is cancelled, or Stop was
// called. Configuration errors are returned before any generation runs.
func (e *Engine[G]) Run(ctx context.Context) error {
	criterion, done, err := e.begin()
	if err != nil {
		return err
	}
	e.evolve(ctx, criterion, e.seedPopulation(), done)
	return nil
}

// Start executes the generation loop on a background goroutine and returns
// immediately. The engine is the caller's handle on the run: Stop requests
// a cooperative stop, Done is closed when the loop exits, and Best,
// Generation and State may be queried concurrently with the worker.
// Configuration errors are returned before the goroutine starts.
func (e *Engine[G]) Start(ctx context.Context) error {
	criterion, done, err := e.begin()
	if err != nil {
		return err
	}
	go e.evolve(ctx, criterion, e.seedPopulation(), done)
	return nil
}

// Stop requests a stop. The request is observed once per generation
// boundary; there is no timeout and the worker may run one more full
// generation before honoring it.
func (e *Engine[G]) Stop() {
	e.stopFlag.Store(true)
}

// Best returns the most recently published best snapshot. The returned
// chromosome is a copy; ok is false before the first generation of the
// first run completes scoring.
func (e *Engine[G]) Best() (snap Snapshot[G], ok bool) {
	p := e.best.Load()
	if p == nil {
		return Snapshot[G]{}, false
	}
	return Snapshot[G]{
		Generation: p.Generation,
		Score:      p.Score,
		Chromosome: p.Chromosome.Clone(),
	}, true
}

// Generation returns the current generation counter of the run.
func (e *Engine[G]) Generation() int {
	return int(e.generation.Load())
}

// State returns the engine's run state.
func (e *Engine[G]) State() State {
	return State(e.state.Load())
}

// Done returns a channel closed when the current run's generation loop has
// exited. Before any run it returns an already closed channel.
func (e *Engine[G]) Done() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

// Stats returns the per-generation statistics recorded so far.
func (e *Engine[G]) Stats() []GenerationStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]GenerationStats, len(e.history))
	copy(out, e.history)
	return out
}

// begin validates the configuration, builds the run's operators and
// criterion, and resets the run state. It fails when a run is already in
// progress. The returned channel belongs to this run alone; the worker
// closes it on exit, so a later run replacing e.done cannot be affected by
// a previous worker.
func (e *Engine[G]) begin() (Criterion[G], chan struct{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if State(e.state.Load()) == StateRunning {
		return nil, nil, fmt.Errorf("a run is already in progress")
	}
	if err := e.Config.Validate(); err != nil {
		return nil, nil, err
	}
	selector, err := newSelector[G](e.Config)
	if err != nil {
		return nil, nil, err
	}
	criterion, err := newCriterion[G](e.Config)
	if err != nil {
		return nil, nil, err
	}

	e.selector = selector
	e.crossover = BlockExchangeCrossover[G]{}
	e.mutator = NewMutator(e.problem, e.Config.MutationProbability)

	e.stopFlag.Store(false)
	e.generation.Store(0)
	e.history = e.history[:0]
	e.done = make(chan struct{})
	e.state.Store(int32(StateRunning))
	return criterion, e.done, nil
}

// seedPopulation creates the initial population of random chromosomes.
func (e *Engine[G]) seedPopulation() Population[G] {
	pop := make(Population[G], e.Config.PopulationSize)
	for i := range pop {
		pop[i] = e.randomChromosome()
	}
	return pop
}

// randomChromosome generates a chromosome with a random length inside the
// configured bounds.
func (e *Engine[G]) randomChromosome() Chromosome[G] {
	length := e.src.Int(e.Config.MinChromosomeLength, e.Config.MaxChromosomeLength)
	c := make(Chromosome[G], length)
	for i := range c {
		c[i] = e.problem.RandomGene(e.src)
	}
	return c
}

// evolve is the generation loop. The worker owns pop exclusively; the only
// state shared with callers is the atomically published snapshot, the
// generation counter, the state word and the stop flag.
func (e *Engine[G]) evolve(ctx context.Context, criterion Criterion[G], pop Population[G], done chan struct{}) {
	// The run's own channel closes before the state flips to stopped, so
	// once a caller observes StateStopped this worker is fully finished and
	// a restart cannot race the cleanup.
	defer func() {
		close(done)
		e.state.Store(int32(StateStopped))
	}()

	for {
		scored := ScorePopulation(pop, e.problem)
		stats := e.publish(scored)

		if criterion.Done(scored) {
			e.Logger.Info("ending criterion reached",
				"generation", stats.Generation, "best", stats.BestScore)
			return
		}
		// Stop requests and context cancellation are observed here only,
		// at the generation boundary.
		if e.stopFlag.Load() || ctx.Err() != nil {
			e.Logger.Info("run stopped",
				"generation", stats.Generation, "best", stats.BestScore)
			return
		}

		pop = e.nextGeneration(scored)
		e.generation.Add(1)
	}
}

// publish records the generation's statistics, swaps in the immutable best
// snapshot and emits the progress event.
func (e *Engine[G]) publish(scored *ScoredPopulation[G]) GenerationStats {
	stats := scored.Stats(int(e.generation.Load()))

	score, chromosome := scored.Best()
	e.best.Store(&Snapshot[G]{
		Generation: stats.Generation,
		Score:      score,
		Chromosome: chromosome.Clone(),
	})

	e.mu.Lock()
	e.history = append(e.history, stats)
	e.mu.Unlock()

	if !e.Config.Verbose && e.OnGeneration == nil {
		return stats
	}
	printed := ""
	if printer, ok := e.problem.(Printer[G]); ok {
		printed = printer.Print(chromosome)
	}
	if e.Config.Verbose {
		e.Logger.Info("generation",
			"generation", stats.Generation,
			"best", stats.BestScore,
			"mean", stats.MeanScore,
			"chromosome", printed)
	}
	if e.OnGeneration != nil {
		e.OnGeneration(stats, printed)
	}
	return stats
}

// nextGeneration builds the following population: selection rounds fill a
// buffer of at least two parents, the buffer is consumed in disjoint pairs
// through crossover (an odd leftover is discarded), and the round repeats
// while the new population is below the target size. A round can append
// more chromosomes than the remaining deficit, so the population size is a
// soft target that may overshoot. Every chromosome of the new population is
// then mutated independently.
func (e *Engine[G]) nextGeneration(scored *ScoredPopulation[G]) Population[G] {
	next := make(Population[G], 0, e.Config.PopulationSize)
	for len(next) < e.Config.PopulationSize {
		var selection []Chromosome[G]
		for len(selection) < 2 {
			selection = append(selection, e.selector.Select(scored, e.src)...)
		}
		for i := 0; i+1 < len(selection); i += 2 {
			child1, child2 := e.crossover.Crossover(selection[i], selection[i+1], e.src)
			next = append(next, child1, child2)
		}
	}
	for _, c := range next {
		e.mutator.Mutate(c, e.src)
	}
	return next
}
