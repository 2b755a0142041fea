// Command packing evolves positions for a random set of rectangles so that
// they pack tightly without overlapping, rendering the best placement live
// in the terminal. Press q or Escape to stop.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-genalg/genalg/evolution"
	"github.com/go-genalg/genalg/random"
)

var rectStyles = []tcell.Style{
	tcell.StyleDefault.Background(tcell.ColorRed),
	tcell.StyleDefault.Background(tcell.ColorGreen),
	tcell.StyleDefault.Background(tcell.ColorBlue),
	tcell.StyleDefault.Background(tcell.ColorYellow),
	tcell.StyleDefault.Background(tcell.ColorPurple),
	tcell.StyleDefault.Background(tcell.ColorTeal),
	tcell.StyleDefault.Background(tcell.ColorOlive),
	tcell.StyleDefault.Background(tcell.ColorSilver),
}

func main() {
	population := flag.Int("population", 100, "Population size")
	mutation := flag.Float64("mutation", 0.05, "Mutation probability")
	seed := flag.Uint64("seed", 0, "Random seed (0 = non-reproducible)")
	flag.Parse()

	src := random.New(*seed)
	problem := newPackingProblem(src)

	config := evolution.DefaultConfig()
	config.PopulationSize = *population
	config.MutationProbability = *mutation
	// One gene per rectangle, so the length is fixed.
	config.MinChromosomeLength = len(problem.rects)
	config.MaxChromosomeLength = len(problem.rects)
	config.Selection = evolution.SelectionTournament
	config.TournamentSize = 10
	config.Criterion = evolution.CriterionNeverStop
	config.Seed = *seed

	engine := evolution.New[Point](problem, config)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if err := engine.Start(context.Background()); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

loop:
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					break loop
				}
			}
		case <-ticker.C:
			draw(screen, problem, engine)
		}
	}

	engine.Stop()
	<-engine.Done()
	screen.Fini()

	if snap, ok := engine.Best(); ok {
		fmt.Printf("Stopped after %d generations: %d rectangles, score %.1f, %d collisions\n",
			engine.Generation(), len(problem.rects), snap.Score, problem.collisions(snap.Chromosome))
	}
}

// draw renders the best placement so far, scaled to the terminal, with a
// status line in the bottom row.
func draw(screen tcell.Screen, problem *packingProblem, engine *evolution.Engine[Point]) {
	snap, ok := engine.Best()
	if !ok {
		return
	}

	width, height := screen.Size()
	if width < 1 || height < 2 {
		return
	}
	scaleX := float64(width) / stripWidth
	scaleY := float64(height-1) / stripHeight

	screen.Clear()
	for i, pos := range snap.Chromosome {
		if i >= len(problem.rects) {
			break
		}
		r := problem.rects[i]
		style := rectStyles[i%len(rectStyles)]
		x0 := int(float64(pos.X) * scaleX)
		y0 := int(float64(pos.Y) * scaleY)
		x1 := int(float64(pos.X+r.W) * scaleX)
		y1 := int(float64(pos.Y+r.H) * scaleY)
		for y := y0; y < y1 && y < height-1; y++ {
			for x := x0; x < x1 && x < width; x++ {
				screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}

	status := fmt.Sprintf(" generation %d  score %.1f  collisions %d  (q to quit)",
		snap.Generation, snap.Score, problem.collisions(snap.Chromosome))
	for x, r := range []rune(status) {
		if x >= width {
			break
		}
		screen.SetContent(x, height-1, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}
