package benchmarks

// Sphere is the simplest unimodal benchmark: f(x) = sum(x_i^2), global
// minimum 0 at the origin.
type Sphere struct {
	problem
}

func NewSphere(dim int) *Sphere {
	return &Sphere{
		problem: newProblem("Sphere", dim, -5.12, 5.12),
	}
}

func (p *Sphere) Evaluate(x []float64) (float64, error) {
	if err := p.CheckDimension(x); err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum, nil
}
