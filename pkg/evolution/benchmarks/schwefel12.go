package benchmarks

// Schwefel12 is Schwefel's problem 1.2, the rotated hyper-ellipsoid:
// f(x) = sum_i (sum_{j<=i} x_j)^2, global minimum 0 at the origin. The
// nested sum couples the dimensions, unlike Sphere.
type Schwefel12 struct {
	problem
}

func NewSchwefel12(dim int) *Schwefel12 {
	return &Schwefel12{
		problem: newProblem("Schwefel 1.2", dim, -100, 100),
	}
}

func (p *Schwefel12) Evaluate(x []float64) (float64, error) {
	if err := p.CheckDimension(x); err != nil {
		return 0, err
	}
	var sum, prefix float64
	for _, v := range x {
		prefix += v
		sum += prefix * prefix
	}
	return sum, nil
}
