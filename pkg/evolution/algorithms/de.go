package algorithms

import (
	"fmt"
	"math/rand"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

const DEName = "DE"

// Mutation strategies for differential evolution, named base/diffs.
const (
	StrategyRand1 = "rand/1"
	StrategyBest1 = "best/1"
	StrategyRand2 = "rand/2"
	StrategyBest2 = "best/2"
)

var _ framework.Algorithm = &DE{}

// DE is classic differential evolution: each target vector competes
// against a trial built from a mutant donor and binomial crossover, and
// the fitter of the two survives into the next generation.
type DE struct {
	params  framework.Params
	problem framework.Problem
	bounds  []framework.Bounds
	rng     *rand.Rand

	population    []framework.Individual
	best          framework.Individual
	hasBest       bool
	generation    int
	lastDiversity float64
	tracker       *framework.Tracker
}

func NewDE(params framework.Params) *DE {
	fillDEDefaults(&params)
	return &DE{
		params:  params,
		rng:     newRNG(params.Seed),
		tracker: framework.NewTracker(params.HistoryLimit),
	}
}

func fillDEDefaults(p *framework.Params) {
	if p.PopulationSize == 0 {
		p.PopulationSize = 50
	}
	if p.MaxGenerations == 0 {
		p.MaxGenerations = 100
	}
	if p.DifferentialWeight == 0 {
		p.DifferentialWeight = 0.8
	}
	if p.CrossoverProbability == 0 {
		p.CrossoverProbability = 0.9
	}
	if p.MutationStrategy == "" {
		p.MutationStrategy = StrategyRand1
	}
}

// minDEPopulation is the smallest population that still yields the
// distinct donor indices a strategy samples.
func minDEPopulation(strategy string) int {
	switch strategy {
	case StrategyRand1:
		return 4
	case StrategyBest1:
		return 3
	case StrategyRand2:
		return 6
	case StrategyBest2:
		return 5
	}
	return 0
}

func validateDEParams(p framework.Params) error {
	min := minDEPopulation(p.MutationStrategy)
	if min == 0 {
		return fmt.Errorf("unsupported mutation strategy: %q", p.MutationStrategy)
	}
	if p.PopulationSize < min {
		return fmt.Errorf("strategy %q needs a population of at least %d, got %d",
			p.MutationStrategy, min, p.PopulationSize)
	}
	if p.MaxGenerations < 1 {
		return fmt.Errorf("max generations must be positive, got %d", p.MaxGenerations)
	}
	if p.DifferentialWeight <= 0 || p.DifferentialWeight > 2 {
		return fmt.Errorf("differential weight must be in (0,2], got %v", p.DifferentialWeight)
	}
	if p.CrossoverProbability < 0 || p.CrossoverProbability > 1 {
		return fmt.Errorf("crossover probability must be in [0,1], got %v", p.CrossoverProbability)
	}
	return nil
}

func (d *DE) Name() string {
	return DEName
}

// Params returns the effective parameters after default filling.
func (d *DE) Params() framework.Params {
	return d.params
}

func (d *DE) Initialize(p framework.Problem) error {
	if p == nil {
		return fmt.Errorf("problem is required")
	}
	if err := validateDEParams(d.params); err != nil {
		return err
	}
	d.problem = p
	d.bounds = p.Bounds()
	d.Reset()
	return nil
}

func (d *DE) InitializePopulation() error {
	if d.problem == nil {
		return fmt.Errorf("no problem bound, call Initialize first")
	}
	pop := make([]framework.Individual, d.params.PopulationSize)
	for i := range pop {
		x := d.problem.RandomSolution(d.rng)
		fit, err := signedFitness(d.problem, x)
		if err != nil {
			return err
		}
		pop[i] = framework.Individual{Genotype: x, Fitness: fit}
	}
	d.population = pop
	d.updateBest()
	return nil
}

// Step builds one trial per target from the frozen current population,
// so donors within a generation never see replacements made earlier in
// the same sweep.
func (d *DE) Step() error {
	if len(d.population) == 0 {
		if err := d.InitializePopulation(); err != nil {
			return err
		}
	}

	dim := d.problem.Dimension()
	popBest := d.population[framework.BestIndex(d.population)]
	next := make([]framework.Individual, len(d.population))

	for i, target := range d.population {
		donor := d.mutant(i, popBest)

		trial := target.Clone()
		jrand := d.rng.Intn(dim)
		for j := 0; j < dim; j++ {
			if d.rng.Float64() < d.params.CrossoverProbability || j == jrand {
				trial.Genotype[j] = donor[j]
			}
		}
		d.problem.Repair(trial.Genotype)

		fit, err := signedFitness(d.problem, trial.Genotype)
		if err != nil {
			return err
		}
		trial.Fitness = fit

		if trial.Fitness >= target.Fitness {
			next[i] = trial
		} else {
			next[i] = target
		}
	}

	d.population = next
	d.updateBest()
	d.generation++
	d.record()
	return nil
}

// mutant assembles the donor vector for target i under the configured
// strategy.
func (d *DE) mutant(i int, popBest framework.Individual) []float64 {
	f := d.params.DifferentialWeight
	donor := make([]float64, len(d.bounds))

	switch d.params.MutationStrategy {
	case StrategyBest1:
		r := d.pickDistinct(i, 2)
		a, b := d.population[r[0]].Genotype, d.population[r[1]].Genotype
		for j := range donor {
			donor[j] = popBest.Genotype[j] + f*(a[j]-b[j])
		}
	case StrategyRand2:
		r := d.pickDistinct(i, 5)
		base := d.population[r[0]].Genotype
		a, b := d.population[r[1]].Genotype, d.population[r[2]].Genotype
		c, e := d.population[r[3]].Genotype, d.population[r[4]].Genotype
		for j := range donor {
			donor[j] = base[j] + f*(a[j]-b[j]) + f*(c[j]-e[j])
		}
	case StrategyBest2:
		r := d.pickDistinct(i, 4)
		a, b := d.population[r[0]].Genotype, d.population[r[1]].Genotype
		c, e := d.population[r[2]].Genotype, d.population[r[3]].Genotype
		for j := range donor {
			donor[j] = popBest.Genotype[j] + f*(a[j]-b[j]) + f*(c[j]-e[j])
		}
	default:
		r := d.pickDistinct(i, 3)
		base := d.population[r[0]].Genotype
		a, b := d.population[r[1]].Genotype, d.population[r[2]].Genotype
		for j := range donor {
			donor[j] = base[j] + f*(a[j]-b[j])
		}
	}
	return donor
}

// pickDistinct draws count population indices, all different from each
// other and from the excluded target index.
func (d *DE) pickDistinct(exclude, count int) []int {
	picked := make([]int, 0, count)
	for len(picked) < count {
		c := d.rng.Intn(len(d.population))
		if c == exclude {
			continue
		}
		dup := false
		for _, p := range picked {
			if p == c {
				dup = true
				break
			}
		}
		if !dup {
			picked = append(picked, c)
		}
	}
	return picked
}

func (d *DE) Run() error {
	for !d.Converged() {
		if err := d.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (d *DE) Population() []framework.Individual {
	return framework.ClonePopulation(d.population)
}

func (d *DE) Best() framework.Individual {
	return d.best.Clone()
}

func (d *DE) Stats() framework.Stats {
	return d.tracker.Snapshot()
}

func (d *DE) Reset() {
	d.population = nil
	d.best = framework.Individual{}
	d.hasBest = false
	d.generation = 0
	d.lastDiversity = 0
	d.rng = newRNG(d.params.Seed)
	d.tracker.Reset()
}

func (d *DE) SetParams(p framework.Params) error {
	fillDEDefaults(&p)
	if err := validateDEParams(p); err != nil {
		return err
	}
	resize := p.PopulationSize != d.params.PopulationSize
	reseed := p.Seed != d.params.Seed
	d.params = p
	d.tracker.SetLimit(p.HistoryLimit)
	if reseed {
		d.rng = newRNG(p.Seed)
	}
	if resize && len(d.population) > 0 {
		d.generation = 0
		d.best = framework.Individual{}
		d.hasBest = false
		d.tracker.Reset()
		return d.InitializePopulation()
	}
	return nil
}

func (d *DE) Converged() bool {
	if d.generation >= d.params.MaxGenerations {
		return true
	}
	if d.generation == 0 {
		return false
	}
	return d.lastDiversity < diversityThreshold(d.params, 1e-6)
}

func (d *DE) updateBest() {
	i := framework.BestIndex(d.population)
	if !d.hasBest || d.population[i].Fitness > d.best.Fitness {
		d.best = d.population[i].Clone()
		d.hasBest = true
	}
}

func (d *DE) record() {
	d.lastDiversity = framework.Diversity(d.population)
	d.tracker.Record(d.generation, d.best.Fitness,
		framework.AverageFitness(d.population), d.lastDiversity)
}
