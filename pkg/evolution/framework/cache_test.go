package framework

import (
	"errors"
	"testing"
)

// countingProblem tallies raw Evaluate calls so cache tests can tell a
// memo hit from a recomputation.
type countingProblem struct {
	Domain
	calls int
}

func (p *countingProblem) Name() string   { return "counting" }
func (p *countingProblem) Minimize() bool { return true }

func (p *countingProblem) Evaluate(x []float64) (float64, error) {
	if err := p.CheckDimension(x); err != nil {
		return 0, err
	}
	p.calls++
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum, nil
}

func TestCachedProblemMemoizes(t *testing.T) {
	inner := &countingProblem{Domain: NewDomain(2, -1, 1)}
	c := NewCachedProblem(inner)

	x := []float64{0.25, -0.5}
	first, err := c.Evaluate(x)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	second, err := c.Evaluate(x)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if first != second {
		t.Errorf("cached value %v differs from computed %v", second, first)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 raw evaluation, got %d", inner.calls)
	}
	if c.Lookups() != 2 || c.Hits() != 1 {
		t.Errorf("lookups=%d hits=%d, want 2/1", c.Lookups(), c.Hits())
	}

	if _, err := c.Evaluate([]float64{0.25, 0.5}); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("distinct genotype should miss the memo, raw calls = %d", inner.calls)
	}
}

func TestCachedProblemPropagatesErrors(t *testing.T) {
	inner := &countingProblem{Domain: NewDomain(2, -1, 1)}
	c := NewCachedProblem(inner)

	_, err := c.Evaluate([]float64{1})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
	if inner.calls != 0 {
		t.Errorf("failed evaluation should not count as computed, calls = %d", inner.calls)
	}
}
