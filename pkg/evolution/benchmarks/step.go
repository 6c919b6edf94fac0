package benchmarks

import "math"

// Step is De Jong's step function: f(x) = sum(floor(x_i + 0.5)^2). The
// plateaus give zero gradient information everywhere; the global minimum 0
// covers the whole cell [-0.5, 0.5)^n.
type Step struct {
	problem
}

func NewStep(dim int) *Step {
	return &Step{
		problem: newProblem("Step", dim, -100, 100),
	}
}

func (p *Step) Evaluate(x []float64) (float64, error) {
	if err := p.CheckDimension(x); err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range x {
		f := math.Floor(v + 0.5)
		sum += f * f
	}
	return sum, nil
}
