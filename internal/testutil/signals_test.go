package testutil

import (
	"testing"
)

func TestRamp(t *testing.T) {
	r := Ramp(4, -1, 0.5)
	want := []float64{-1, -0.5, 0, 0.5}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("r[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicInts(t *testing.T) {
	a := DeterministicInts[int16](7, 100)
	b := DeterministicInts[int16](7, 100)
	negative := false
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		negative = negative || a[i] < 0
	}
	if !negative {
		t.Fatal("expected negative values from full-range draw")
	}
}
