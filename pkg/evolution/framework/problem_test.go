package framework

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDomainRandomSolutionWithinBounds(t *testing.T) {
	d := NewDomain(4, -5.12, 5.12)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		x := d.RandomSolution(rng)
		if len(x) != 4 {
			t.Fatalf("expected 4 components, got %d", len(x))
		}
		if !d.InBounds(x) {
			t.Fatalf("random solution out of bounds: %v", x)
		}

		// Repairing an in-bounds vector must be a no-op.
		before := append([]float64(nil), x...)
		d.Repair(x)
		for j := range x {
			if x[j] != before[j] {
				t.Errorf("repair changed in-bounds component %d: %v -> %v", j, before[j], x[j])
			}
		}
	}
}

func TestDomainRepairIdempotent(t *testing.T) {
	d := NewDomain(3, -2.0, 2.0)

	vectors := [][]float64{
		{-10, 0, 10},
		{2.0001, -2.0001, 0},
		{1, 1, 1},
		{-2, 2, 0},
	}
	for _, v := range vectors {
		once := d.Repair(append([]float64(nil), v...))
		if !d.InBounds(once) {
			t.Errorf("repair(%v) = %v is still out of bounds", v, once)
		}
		twice := d.Repair(append([]float64(nil), once...))
		for i := range once {
			if once[i] != twice[i] {
				t.Errorf("repair not idempotent at %d: %v vs %v", i, once[i], twice[i])
			}
		}
	}
}

func TestDomainCheckDimension(t *testing.T) {
	d := NewDomain(2, 0, 1)

	if err := d.CheckDimension([]float64{0.5, 0.5}); err != nil {
		t.Fatalf("unexpected error for matching dimension: %v", err)
	}
	err := d.CheckDimension([]float64{0.5})
	if err == nil {
		t.Fatal("expected error for mismatched dimension")
	}
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("error %v does not wrap ErrDimensionMismatch", err)
	}
}

func TestDomainInBoundsRejectsWrongLength(t *testing.T) {
	d := NewDomain(2, 0, 1)
	if d.InBounds([]float64{0.5}) {
		t.Error("InBounds accepted a vector of the wrong length")
	}
}

func TestNewDomainWithBounds(t *testing.T) {
	src := []Bounds{{L: -1, H: 1}, {L: 0, H: 10}}
	d := NewDomainWithBounds(src)

	src[0].H = 99
	got := d.Bounds()
	if got[0].H != 1 {
		t.Errorf("domain shares storage with caller bounds: %v", got[0])
	}
	if d.Dimension() != 2 {
		t.Errorf("expected dimension 2, got %d", d.Dimension())
	}
}
