package benchmarks

// Rosenbrock is the classic banana-valley benchmark:
// f(x) = sum(100*(x_{i+1} - x_i^2)^2 + (x_i - 1)^2), global minimum 0 at
// (1, ..., 1). The valley floor is easy to reach and hard to follow.
type Rosenbrock struct {
	problem
}

func NewRosenbrock(dim int) *Rosenbrock {
	return &Rosenbrock{
		problem: newProblem("Rosenbrock", dim, -2.048, 2.048),
	}
}

func (p *Rosenbrock) Evaluate(x []float64) (float64, error) {
	if err := p.CheckDimension(x); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i+1 < len(x); i++ {
		a := x[i+1] - x[i]*x[i]
		b := x[i] - 1
		sum += 100*a*a + b*b
	}
	return sum, nil
}
