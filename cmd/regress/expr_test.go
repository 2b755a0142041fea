package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-genalg/genalg/evolution"
)

func TestEvaluateLeftToRight(t *testing.T) {
	// 0 + x + 3
	tokens := evolution.Chromosome[Token]{
		{Kind: KindInput},
		{Kind: KindAdd},
		{Kind: KindConst, Value: 3},
	}
	assert.InDelta(t, 5, evaluate(tokens, 2), 1e-12)

	// ((0 + x) * 2) + 1
	tokens = evolution.Chromosome[Token]{
		{Kind: KindInput},
		{Kind: KindMul},
		{Kind: KindConst, Value: 2},
		{Kind: KindAdd},
		{Kind: KindConst, Value: 1},
	}
	assert.InDelta(t, 9, evaluate(tokens, 4), 1e-12)
}

func TestEvaluateDivisionByZeroIsIgnored(t *testing.T) {
	tokens := evolution.Chromosome[Token]{
		{Kind: KindConst, Value: 5},
		{Kind: KindDiv},
		{Kind: KindConst, Value: 0},
	}
	assert.InDelta(t, 5, evaluate(tokens, 0), 1e-12)
}

func TestEvaluateEmptyChromosome(t *testing.T) {
	assert.Zero(t, evaluate(nil, 3))
}

func TestFormatTokens(t *testing.T) {
	tokens := evolution.Chromosome[Token]{
		{Kind: KindInput},
		{Kind: KindMul},
		{Kind: KindConst, Value: 2.5},
		{Kind: KindSub},
		{Kind: KindConst, Value: 1},
		{Kind: KindDiv},
	}
	assert.Equal(t, "x * 2.5 - 1 /", formatTokens(tokens))
}

func TestScorePerfectFitIsZero(t *testing.T) {
	// Samples of f(x) = 3x + 7 without noise.
	samples := make([]sample, 10)
	for i := range samples {
		x := float64(i)
		samples[i] = sample{X: x, Y: 3*x + 7}
	}
	problem := &regressionProblem{samples: samples}

	// x * 3 + 7 evaluated left to right reproduces f exactly.
	perfect := evolution.Chromosome[Token]{
		{Kind: KindInput},
		{Kind: KindMul},
		{Kind: KindConst, Value: 3},
		{Kind: KindAdd},
		{Kind: KindConst, Value: 7},
	}
	require.InDelta(t, 0, problem.Score(perfect), 1e-12)

	// Any other constant offset scores strictly worse.
	worse := evolution.Chromosome[Token]{
		{Kind: KindInput},
		{Kind: KindMul},
		{Kind: KindConst, Value: 3},
		{Kind: KindAdd},
		{Kind: KindConst, Value: 8},
	}
	assert.Less(t, problem.Score(worse), problem.Score(perfect))
}
