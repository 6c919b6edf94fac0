package benchmarks

import "math"

// Schwefel222 is Schwefel's problem 2.22: f(x) = sum(|x_i|) + prod(|x_i|),
// global minimum 0 at the origin.
type Schwefel222 struct {
	problem
}

func NewSchwefel222(dim int) *Schwefel222 {
	return &Schwefel222{
		problem: newProblem("Schwefel 2.22", dim, -10, 10),
	}
}

func (p *Schwefel222) Evaluate(x []float64) (float64, error) {
	if err := p.CheckDimension(x); err != nil {
		return 0, err
	}
	var sum float64
	prod := 1.0
	for _, v := range x {
		a := math.Abs(v)
		sum += a
		prod *= a
	}
	return sum + prod, nil
}
