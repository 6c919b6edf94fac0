// Package baseline cross-checks the native engines against a third-party
// evolutionary library running on the same benchmark problems.
package baseline

import (
	"fmt"
	"math/rand"

	"github.com/MaxHalford/eaopt"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

// vectorGenome adapts a bounded real vector to the eaopt genome contract.
type vectorGenome struct {
	problem framework.Problem
	x       []float64
}

func (g *vectorGenome) Evaluate() (float64, error) {
	value, err := g.problem.Evaluate(g.x)
	if err != nil {
		return 0, err
	}
	if !g.problem.Minimize() {
		value = -value
	}
	return value, nil
}

func (g *vectorGenome) Mutate(rng *rand.Rand) {
	bounds := g.problem.Bounds()
	d := rng.Intn(len(g.x))
	g.x[d] += rng.NormFloat64() * 0.1 * (bounds[d].H - bounds[d].L)
	g.problem.Repair(g.x)
}

func (g *vectorGenome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	mate, ok := other.(*vectorGenome)
	if !ok || len(mate.x) != len(g.x) {
		return
	}
	alpha := rng.Float64()
	for i := range g.x {
		g.x[i], mate.x[i] = alpha*g.x[i]+(1-alpha)*mate.x[i],
			(1-alpha)*g.x[i]+alpha*mate.x[i]
	}
}

func (g *vectorGenome) Clone() eaopt.Genome {
	x := make([]float64, len(g.x))
	copy(x, g.x)
	return &vectorGenome{problem: g.problem, x: x}
}

// RunGA minimizes the problem with the library's generational GA and
// returns the best solution and its raw objective value.
func RunGA(problem framework.Problem, popSize, generations int) ([]float64, float64, error) {
	config := eaopt.NewDefaultGAConfig()
	config.NPops = 1
	config.PopSize = uint(popSize)
	config.NGenerations = uint(generations)

	ga, err := config.NewGA()
	if err != nil {
		return nil, 0, fmt.Errorf("creating baseline GA: %w", err)
	}

	factory := func(rng *rand.Rand) eaopt.Genome {
		return &vectorGenome{problem: problem, x: problem.RandomSolution(rng)}
	}
	if err := ga.Minimize(factory); err != nil {
		return nil, 0, fmt.Errorf("baseline GA run: %w", err)
	}
	if len(ga.HallOfFame) == 0 {
		return nil, 0, fmt.Errorf("baseline GA produced no solutions")
	}

	best := ga.HallOfFame[0]
	genome, ok := best.Genome.(*vectorGenome)
	if !ok {
		return nil, 0, fmt.Errorf("unexpected genome type %T", best.Genome)
	}

	x := make([]float64, len(genome.x))
	copy(x, genome.x)
	value := best.Fitness
	if !problem.Minimize() {
		value = -value
	}
	return x, value, nil
}
