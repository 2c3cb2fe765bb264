package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		x, y := a.IntN(100), b.IntN(100)
		if x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
		if x < 0 || x >= 100 {
			t.Fatalf("draw %d out of range: %d", i, x)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}
