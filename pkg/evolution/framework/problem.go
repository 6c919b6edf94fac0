package framework

import (
	"fmt"
	"math/rand"
)

// Domain is a bounded real search space. It supplies every Problem method
// except Name, Minimize and Evaluate, so concrete problems only add the
// objective itself.
type Domain struct {
	bounds []Bounds
}

// NewDomain builds a dim-dimensional domain with the same bound on every
// dimension.
func NewDomain(dim int, low, high float64) Domain {
	b := make([]Bounds, dim)
	for i := range b {
		b[i] = Bounds{L: low, H: high}
	}
	return Domain{bounds: b}
}

// NewDomainWithBounds builds a domain from per-dimension bounds.
func NewDomainWithBounds(bounds []Bounds) Domain {
	b := make([]Bounds, len(bounds))
	copy(b, bounds)
	return Domain{bounds: b}
}

func (d Domain) Dimension() int {
	return len(d.bounds)
}

func (d Domain) Bounds() []Bounds {
	out := make([]Bounds, len(d.bounds))
	copy(out, d.bounds)
	return out
}

// CheckDimension fails when x does not match the domain dimension.
func (d Domain) CheckDimension(x []float64) error {
	if len(x) != len(d.bounds) {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x), len(d.bounds))
	}
	return nil
}

// RandomSolution samples each component uniformly within its bound.
func (d Domain) RandomSolution(rng *rand.Rand) []float64 {
	x := make([]float64, len(d.bounds))
	for i, b := range d.bounds {
		x[i] = b.L + rng.Float64()*(b.H-b.L)
	}
	return x
}

// Repair clamps every component of x into its bound, in place.
func (d Domain) Repair(x []float64) []float64 {
	for i := range x {
		x[i] = Clamp(x[i], d.bounds[i])
	}
	return x
}

func (d Domain) InBounds(x []float64) bool {
	if len(x) != len(d.bounds) {
		return false
	}
	for i, b := range d.bounds {
		if x[i] < b.L || x[i] > b.H {
			return false
		}
	}
	return true
}
