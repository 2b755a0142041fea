package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-genalg/genalg/evolution"
	"github.com/go-genalg/genalg/random"
)

// TokenKind enumerates what a gene of the function chromosome can be.
type TokenKind int

const (
	KindAdd TokenKind = iota
	KindSub
	KindMul
	KindDiv
	KindConst
	KindInput
)

// Token is one gene of a function chromosome: an operator, a constant, or
// the input variable.
type Token struct {
	Kind  TokenKind
	Value float64 // constant tokens only
}

func randomToken(src *random.Source) Token {
	t := Token{Kind: TokenKind(src.Int(0, int(KindInput)))}
	if t.Kind == KindConst {
		t.Value = src.Float64(0, 100)
	}
	return t
}

// evaluate folds the token sequence left to right into an accumulator:
// operator tokens set the pending operation (addition initially), operand
// tokens apply it. Division by zero leaves the accumulator unchanged.
func evaluate(tokens evolution.Chromosome[Token], x float64) float64 {
	acc := 0.0
	op := KindAdd
	for _, t := range tokens {
		switch t.Kind {
		case KindAdd, KindSub, KindMul, KindDiv:
			op = t.Kind
		case KindConst, KindInput:
			operand := t.Value
			if t.Kind == KindInput {
				operand = x
			}
			switch op {
			case KindAdd:
				acc += operand
			case KindSub:
				acc -= operand
			case KindMul:
				acc *= operand
			case KindDiv:
				if operand != 0 {
					acc /= operand
				}
			}
		}
	}
	return acc
}

func formatTokens(tokens evolution.Chromosome[Token]) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case KindAdd:
			parts = append(parts, "+")
		case KindSub:
			parts = append(parts, "-")
		case KindMul:
			parts = append(parts, "*")
		case KindDiv:
			parts = append(parts, "/")
		case KindConst:
			parts = append(parts, strconv.FormatFloat(t.Value, 'g', 4, 64))
		case KindInput:
			parts = append(parts, "x")
		}
	}
	return strings.Join(parts, " ")
}

type sample struct {
	X, Y float64
}

// regressionProblem scores a function chromosome by its mean squared error
// against the sampled data, negated so that higher is better.
type regressionProblem struct {
	samples []sample
}

func (p *regressionProblem) RandomGene(src *random.Source) Token {
	return randomToken(src)
}

func (p *regressionProblem) Score(c evolution.Chromosome[Token]) float64 {
	var sumSq float64
	for _, s := range p.samples {
		diff := evaluate(c, s.X) - s.Y
		sumSq += diff * diff
	}
	if math.IsNaN(sumSq) || math.IsInf(sumSq, 0) {
		return -math.MaxFloat64
	}
	return -sumSq / float64(len(p.samples))
}

func (p *regressionProblem) Print(c evolution.Chromosome[Token]) string {
	return formatTokens(c)
}
