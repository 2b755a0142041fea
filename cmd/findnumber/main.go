// Command findnumber evolves a sequence of digits toward a target number.
// A chromosome is a series of digits; its score is the count of positions
// matching the target, with penalties for length mismatch.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/go-genalg/genalg/evolution"
	"github.com/go-genalg/genalg/random"
)

type digitsProblem struct {
	objective []int
}

func (p *digitsProblem) RandomGene(src *random.Source) int {
	return src.Int(0, 9)
}

// Score rewards every position matching the objective and penalizes extra
// or missing digits. Scores go negative for badly sized chromosomes, which
// is why this problem pairs with tournament selection.
func (p *digitsProblem) Score(c evolution.Chromosome[int]) float64 {
	var score float64
	for i, g := range c {
		switch {
		case i >= len(p.objective):
			score--
		case g == p.objective[i]:
			score++
		}
	}
	if len(c) < len(p.objective) {
		score -= float64(len(p.objective) - len(c))
	}
	return score
}

func (p *digitsProblem) Print(c evolution.Chromosome[int]) string {
	var b strings.Builder
	for _, g := range c {
		b.WriteByte(byte('0' + g))
	}
	return b.String()
}

func digitsOf(n uint64) []int {
	s := strconv.FormatUint(n, 10)
	digits := make([]int, len(s))
	for i := range s {
		digits[i] = int(s[i] - '0')
	}
	return digits
}

func loadEnv(filenames ...string) {
	for _, filename := range filenames {
		if s, err := os.Stat(filename); err == nil && !s.IsDir() {
			godotenv.Load(filename)
		}
	}
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	loadEnv(".env.local", ".env")

	target := flag.Uint64("target", 1871, "Number to find")
	population := flag.Int("population", envInt("GENALG_POPULATION", 100), "Population size")
	mutation := flag.Float64("mutation", 0.01, "Mutation probability")
	tournament := flag.Int("tournament", 10, "Tournament size")
	seed := flag.Uint64("seed", 0, "Random seed (0 = non-reproducible)")
	flag.Parse()

	objective := digitsOf(*target)
	problem := &digitsProblem{objective: objective}

	config := evolution.DefaultConfig()
	config.PopulationSize = *population
	config.MutationProbability = *mutation
	config.MinChromosomeLength = 1
	config.MaxChromosomeLength = 2 * len(objective)
	// Length penalties make scores negative, which degrades proportional
	// selection; tournament selection is unaffected.
	config.Selection = evolution.SelectionTournament
	config.TournamentSize = *tournament
	config.Criterion = evolution.CriterionMaxScore
	config.MaxScoreThreshold = float64(len(objective))
	config.Seed = *seed

	engine := evolution.New[int](problem, config)

	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stdout)
	pw.SetMessageLength(40)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	go pw.Render()

	tracker := progress.Tracker{
		Message: "Searching",
		Total:   int64(len(objective)),
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(&tracker)

	engine.OnGeneration = func(stats evolution.GenerationStats, best string) {
		tracker.UpdateMessage(fmt.Sprintf("Generation %d: %s", stats.Generation, best))
		if stats.BestScore > 0 {
			tracker.SetValue(int64(stats.BestScore))
		}
	}

	started := time.Now()
	if err := engine.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tracker.MarkAsDone()
	pw.Stop()
	for pw.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}

	snap, ok := engine.Best()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no result published")
		os.Exit(1)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Target", "Found", "Score", "Generations", "Elapsed"})
	tw.AppendRow(table.Row{
		*target,
		problem.Print(snap.Chromosome),
		snap.Score,
		engine.Generation(),
		time.Since(started).Round(time.Millisecond),
	})
	tw.Render()
}
