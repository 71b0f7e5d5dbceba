package utils

import (
	"math"
	"testing"
)

func TestSeededSequencesAreReproducible(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed diverged")
		}
	}
}

func TestIntRangeIsInclusive(t *testing.T) {
	rng := NewPRNGService(5)
	sawLo, sawHi := false, false
	for i := 0; i < 1000; i++ {
		v := rng.IntRange(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("out of range: %d", v)
		}
		sawLo = sawLo || v == 3
		sawHi = sawHi || v == 6
	}
	if !sawLo || !sawHi {
		t.Error("bounds never produced in 1000 draws")
	}
	if rng.IntRange(4, 4) != 4 {
		t.Error("degenerate range must return its bound")
	}
}

func TestAngleStaysInTurn(t *testing.T) {
	rng := NewPRNGService(5)
	for i := 0; i < 100; i++ {
		a := rng.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle out of range: %v", a)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	rng := NewPRNGService(5)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("zero percent chance hit")
		}
		if !rng.Chance(100) {
			t.Fatal("certain chance missed")
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("got %v, want 5", d)
	}
}
