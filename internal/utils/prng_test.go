package utils

import (
	"testing"
	"time"
)

func TestChooseWeightedEdgeCases(t *testing.T) {
	rng := NewPRNGService(7)
	if got := rng.ChooseWeighted(nil); got != -1 {
		t.Errorf("empty = %d, want -1", got)
	}
	if got := rng.ChooseWeighted([]float64{0, 0, 0}); got != 0 {
		t.Errorf("zero total = %d, want 0", got)
	}
	for i := 0; i < 200; i++ {
		if got := rng.ChooseWeighted([]float64{0, 5, 0}); got != 1 {
			t.Fatalf("single positive weight chose %d", got)
		}
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	rng := NewPRNGService(42)
	counts := make([]int, 2)
	for i := 0; i < 10000; i++ {
		counts[rng.ChooseWeighted([]float64{1, 3})]++
	}
	if counts[1] < 2*counts[0] {
		t.Errorf("counts = %v, want index 1 about three times as frequent", counts)
	}
}

func TestSeededSequencesRepeat(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestRangesStayInBounds(t *testing.T) {
	rng := NewPRNGService(3)
	for i := 0; i < 500; i++ {
		d := rng.DurationBetween(3*time.Second, 5*time.Second)
		if d < 3*time.Second || d > 5*time.Second {
			t.Fatalf("DurationBetween = %v", d)
		}
		f := rng.Range(10, 20)
		if f < 10 || f >= 20 {
			t.Fatalf("Range = %v", f)
		}
	}
	if rng.Roll(0) || !rng.Roll(1) {
		t.Error("Roll bounds")
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
