package benchmarks

import "math"

// Ackley combines a flat outer region with a deep central funnel:
// f(x) = -20*exp(-0.2*sqrt(mean(x_i^2))) - exp(mean(cos(2*pi*x_i))) + 20 + e,
// global minimum 0 at the origin.
type Ackley struct {
	problem
}

func NewAckley(dim int) *Ackley {
	return &Ackley{
		problem: newProblem("Ackley", dim, -32.768, 32.768),
	}
}

func (p *Ackley) Evaluate(x []float64) (float64, error) {
	if err := p.CheckDimension(x); err != nil {
		return 0, err
	}
	n := float64(len(x))
	var sumSq, sumCos float64
	for _, v := range x {
		sumSq += v * v
		sumCos += math.Cos(2 * math.Pi * v)
	}
	return -20*math.Exp(-0.2*math.Sqrt(sumSq/n)) - math.Exp(sumCos/n) + 20 + math.E, nil
}
