package evolution

import (
	"testing"
)

func TestMaxScoreFiresAtThreshold(t *testing.T) {
	criterion := &maxScoreCriterion[float64]{threshold: 8}

	if criterion.Done(scoredPop(1, 5, 7)) {
		t.Error("fired below the threshold")
	}
	if !criterion.Done(scoredPop(1, 5, 8)) {
		t.Error("did not fire at exactly the threshold")
	}
	if !criterion.Done(scoredPop(9)) {
		t.Error("did not fire above the threshold")
	}
}

func TestBestScorePlateauFires(t *testing.T) {
	criterion := &bestScoreCriterion[float64]{window: 3}

	// The window needs more than three observations before it can fire.
	for i := 0; i < 3; i++ {
		if criterion.Done(scoredPop(5)) {
			t.Fatalf("fired while filling the window (generation %d)", i)
		}
	}
	if !criterion.Done(scoredPop(5)) {
		t.Error("did not fire after the best score stagnated for the whole window")
	}
}

func TestBestScoreImprovementResetsPlateau(t *testing.T) {
	criterion := &bestScoreCriterion[float64]{window: 3}

	bests := []float64{5, 5, 5, 6, 6}
	for i, b := range bests {
		if criterion.Done(scoredPop(b)) {
			t.Fatalf("fired at generation %d despite a recent improvement", i)
		}
	}
	// Once the improvement to 6 ages out of the window the plateau is back.
	if !criterion.Done(scoredPop(6)) {
		t.Error("did not fire once the improvement left the window")
	}
}

func TestBestScoreDeclineCountsAsPlateau(t *testing.T) {
	criterion := &bestScoreCriterion[float64]{window: 3}

	for _, b := range []float64{5, 4, 3} {
		if criterion.Done(scoredPop(b)) {
			t.Fatal("fired while filling the window")
		}
	}
	// No entry strictly improves on the oldest windowed score.
	if !criterion.Done(scoredPop(2)) {
		t.Error("a declining best score should fire the plateau criterion")
	}
}

func TestBestScoreConfiguredWindowIsHonored(t *testing.T) {
	criterion := &bestScoreCriterion[float64]{window: 25}

	for i := 0; i < 25; i++ {
		if criterion.Done(scoredPop(5)) {
			t.Fatalf("fired at generation %d, before the configured window filled", i)
		}
	}
	if !criterion.Done(scoredPop(5)) {
		t.Error("did not fire after the configured window filled")
	}
}

func TestNeverStop(t *testing.T) {
	criterion := neverStopCriterion[float64]{}

	for i := 0; i < 100; i++ {
		if criterion.Done(scoredPop(float64(i))) {
			t.Fatal("never-stop criterion fired")
		}
	}
}

func TestNewCriterionUnknownType(t *testing.T) {
	config := DefaultConfig()
	config.Criterion = CriterionType(99)

	if _, err := newCriterion[float64](config); err == nil {
		t.Error("expected an error for an unknown criterion type")
	}
}
