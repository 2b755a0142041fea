// Command regress evolves a symbolic function fitting noisy samples of a
// hidden target function. A chromosome is a token sequence (operators,
// constants, the input variable) evaluated left to right; the run stops
// once the best fit plateaus.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/go-genalg/genalg/evolution"
	"github.com/go-genalg/genalg/random"
)

func loadEnv(filenames ...string) {
	for _, filename := range filenames {
		if s, err := os.Stat(filename); err == nil && !s.IsDir() {
			godotenv.Load(filename)
		}
	}
}

func envFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func main() {
	loadEnv(".env.local", ".env")

	population := flag.Int("population", 150, "Population size")
	mutation := flag.Float64("mutation", envFloat("GENALG_MUTATION", 0.05), "Mutation probability")
	steady := flag.Int("steady", 40, "Generations without improvement before stopping")
	noise := flag.Float64("noise", 0.5, "Noise amplitude added to the samples")
	seed := flag.Uint64("seed", 0, "Random seed (0 = non-reproducible)")
	verbose := flag.Bool("verbose", false, "Log per-generation progress")
	flag.Parse()

	// The hidden function the run should rediscover.
	target := func(x float64) float64 { return 3*x + 7 }

	src := random.New(*seed)
	samples := make([]sample, 20)
	for i := range samples {
		x := float64(i) - 10
		samples[i] = sample{X: x, Y: target(x) + src.Float64(-*noise, *noise)}
	}
	problem := &regressionProblem{samples: samples}

	config := evolution.DefaultConfig()
	config.PopulationSize = *population
	config.MutationProbability = *mutation
	config.MinChromosomeLength = 1
	config.MaxChromosomeLength = 16
	config.Selection = evolution.SelectionTournament
	config.TournamentSize = 10
	config.Criterion = evolution.CriterionBestScore
	config.SteadyGenerations = *steady
	config.Seed = *seed
	config.Verbose = *verbose

	engine := evolution.New[Token](problem, config)
	if *verbose {
		engine.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	started := time.Now()
	if err := engine.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, ok := engine.Best()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no result published")
		os.Exit(1)
	}

	fmt.Printf("Best function after %d generations (%s): %s\n",
		engine.Generation(), time.Since(started).Round(time.Millisecond), formatTokens(snap.Chromosome))
	fmt.Printf("Mean squared error: %g\n\n", -snap.Score)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"x", "Sampled", "Predicted"})
	for _, s := range samples {
		tw.AppendRow(table.Row{s.X, fmt.Sprintf("%.3f", s.Y), fmt.Sprintf("%.3f", evaluate(snap.Chromosome, s.X))})
	}
	tw.Render()
}
