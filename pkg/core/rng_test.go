package core

import (
	"slices"
	"testing"
)

func TestUniformStaysInRange(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 10000; i++ {
		v := rng.Uniform(160, 240)
		if v < 160 || v >= 240 {
			t.Fatalf("draw %d = %f outside [160,240)", i, v)
		}
	}
	if got := rng.Uniform(3, 3); got != 3 {
		t.Fatalf("empty range returned %f, expected lower bound", got)
	}
}

func TestChanceBounds(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if rng.Chance(0, 255) {
			t.Fatal("0/255 must never fire")
		}
		if !rng.Chance(255, 255) {
			t.Fatal("255/255 must always fire")
		}
	}
}

func TestShuffleIsPermutationAndDeterministic(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := slices.Clone(a)
	NewRNG(42).ShuffleInts(a)
	NewRNG(42).ShuffleInts(b)
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different orders: %v vs %v", a, b)
	}
	sorted := slices.Clone(a)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("shuffle lost or duplicated values: %v", a)
		}
	}
}

func TestSeedOrNow(t *testing.T) {
	if SeedOrNow(99) != 99 {
		t.Fatal("explicit seed must pass through")
	}
	if SeedOrNow(0) == 0 {
		t.Fatal("zero seed must be replaced")
	}
}
