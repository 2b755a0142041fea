package main

import (
	"github.com/go-genalg/genalg/evolution"
	"github.com/go-genalg/genalg/random"
)

// The placement area rectangles are positioned in.
const (
	stripWidth  = 800
	stripHeight = 500
)

// Point is the gene: the top-left position of one rectangle.
type Point struct {
	X, Y int
}

// Rect is one rectangle of the packing instance (width x height).
type Rect struct {
	W, H int
}

// packingProblem evolves placements for a fixed cluster of rectangles.
// Gene i positions rectangle i; the score favors a tight bounding box with
// no overlaps.
type packingProblem struct {
	rects []Rect
}

func newPackingProblem(src *random.Source) *packingProblem {
	rects := make([]Rect, src.Int(50, 100))
	for i := range rects {
		rects[i] = Rect{W: src.Int(10, 60), H: src.Int(10, 60)}
	}
	return &packingProblem{rects: rects}
}

func (p *packingProblem) RandomGene(src *random.Source) Point {
	return Point{X: src.Int(0, stripWidth), Y: src.Int(0, stripHeight)}
}

// boundingBox returns the corners of the box enclosing every placed
// rectangle.
func (p *packingProblem) boundingBox(c evolution.Chromosome[Point]) (min, max Point) {
	min = Point{X: stripWidth, Y: stripHeight}
	for i, pos := range c {
		if i >= len(p.rects) {
			break
		}
		r := p.rects[i]
		if pos.X < min.X {
			min.X = pos.X
		}
		if pos.Y < min.Y {
			min.Y = pos.Y
		}
		if pos.X+r.W > max.X {
			max.X = pos.X + r.W
		}
		if pos.Y+r.H > max.Y {
			max.Y = pos.Y + r.H
		}
	}
	return min, max
}

// collisions counts overlapping rectangle pairs.
func (p *packingProblem) collisions(c evolution.Chromosome[Point]) int {
	n := min(len(c), len(p.rects))
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := p.rects[i], p.rects[j]
			if c[i].X < c[j].X+b.W && c[j].X < c[i].X+a.W &&
				c[i].Y < c[j].Y+b.H && c[j].Y < c[i].Y+a.H {
				count++
			}
		}
	}
	return count
}

// Score penalizes the bounding-box half-perimeter and, much more heavily,
// every colliding pair.
func (p *packingProblem) Score(c evolution.Chromosome[Point]) float64 {
	bbMin, bbMax := p.boundingBox(c)
	halfPerimeter := (bbMax.X - bbMin.X) + (bbMax.Y - bbMin.Y)
	return 10000 - float64(halfPerimeter) - 10*float64(p.collisions(c))
}
