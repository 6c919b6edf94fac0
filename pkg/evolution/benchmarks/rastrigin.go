package benchmarks

import "math"

// Rastrigin is a highly multimodal benchmark with a regular grid of local
// minima: f(x) = 10n + sum(x_i^2 - 10cos(2*pi*x_i)), global minimum 0 at
// the origin.
type Rastrigin struct {
	problem
}

func NewRastrigin(dim int) *Rastrigin {
	return &Rastrigin{
		problem: newProblem("Rastrigin", dim, -5.12, 5.12),
	}
}

func (p *Rastrigin) Evaluate(x []float64) (float64, error) {
	if err := p.CheckDimension(x); err != nil {
		return 0, err
	}
	sum := 10.0 * float64(len(x))
	for _, v := range x {
		sum += v*v - 10*math.Cos(2*math.Pi*v)
	}
	return sum, nil
}
