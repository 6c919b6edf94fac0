package algorithms

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

const ESName = "ES"

// Survivor selection schemes for the evolution strategy.
const (
	SchemePlus  = "plus"
	SchemeComma = "comma"
)

var _ framework.Algorithm = &ES{}

// esIndividual pairs a solution with its self-adaptive per-dimension
// step sizes.
type esIndividual struct {
	framework.Individual
	steps []float64
}

func (e esIndividual) clone() esIndividual {
	c := esIndividual{Individual: e.Individual.Clone()}
	c.steps = make([]float64, len(e.steps))
	copy(c.steps, e.steps)
	return c
}

// ES is a (mu,lambda) / (mu+lambda) evolution strategy with log-normal
// self-adaptation of mutation step sizes.
type ES struct {
	params  framework.Params
	problem framework.Problem
	bounds  []framework.Bounds
	rng     *rand.Rand
	tau     float64

	parents       []esIndividual
	best          framework.Individual
	hasBest       bool
	generation    int
	lastDiversity float64
	tracker       *framework.Tracker
}

func NewES(params framework.Params) *ES {
	fillESDefaults(&params)
	return &ES{
		params:  params,
		rng:     newRNG(params.Seed),
		tracker: framework.NewTracker(params.HistoryLimit),
	}
}

func fillESDefaults(p *framework.Params) {
	if p.Mu == 0 {
		if p.PopulationSize > 0 {
			p.Mu = p.PopulationSize
		} else {
			p.Mu = 15
		}
	}
	p.PopulationSize = p.Mu
	if p.Lambda == 0 {
		p.Lambda = 7 * p.Mu
	}
	if p.SelectionScheme == "" {
		p.SelectionScheme = SchemePlus
	}
	if p.InitialStepFraction == 0 {
		p.InitialStepFraction = 0.1
	}
	if p.MaxGenerations == 0 {
		p.MaxGenerations = 100
	}
}

func validateESParams(p framework.Params) error {
	if p.Mu < 1 {
		return fmt.Errorf("mu must be positive, got %d", p.Mu)
	}
	if p.Lambda < 1 {
		return fmt.Errorf("lambda must be positive, got %d", p.Lambda)
	}
	if p.MaxGenerations < 1 {
		return fmt.Errorf("max generations must be positive, got %d", p.MaxGenerations)
	}
	if p.InitialStepFraction <= 0 {
		return fmt.Errorf("initial step fraction must be positive, got %v", p.InitialStepFraction)
	}
	switch p.SelectionScheme {
	case SchemePlus:
	case SchemeComma:
		if p.Lambda < p.Mu {
			return fmt.Errorf("comma selection needs lambda >= mu, got lambda=%d mu=%d", p.Lambda, p.Mu)
		}
	default:
		return fmt.Errorf("unsupported selection scheme: %q", p.SelectionScheme)
	}
	return nil
}

func (e *ES) Name() string {
	return ESName
}

// Params returns the effective parameters after default filling.
func (e *ES) Params() framework.Params {
	return e.params
}

func (e *ES) Initialize(p framework.Problem) error {
	if p == nil {
		return fmt.Errorf("problem is required")
	}
	if err := validateESParams(e.params); err != nil {
		return err
	}
	e.problem = p
	e.bounds = p.Bounds()
	e.tau = 1 / math.Sqrt(float64(p.Dimension()))
	e.Reset()
	return nil
}

func (e *ES) InitializePopulation() error {
	if e.problem == nil {
		return fmt.Errorf("no problem bound, call Initialize first")
	}
	parents := make([]esIndividual, e.params.Mu)
	for i := range parents {
		x := e.problem.RandomSolution(e.rng)
		fit, err := signedFitness(e.problem, x)
		if err != nil {
			return err
		}
		steps := make([]float64, len(e.bounds))
		for d, b := range e.bounds {
			steps[d] = e.params.InitialStepFraction * (b.H - b.L)
		}
		parents[i] = esIndividual{
			Individual: framework.Individual{Genotype: x, Fitness: fit},
			steps:      steps,
		}
	}
	e.parents = parents
	e.updateBest()
	return nil
}

// Step produces lambda offspring by mutation of random parents and keeps
// the mu fittest survivors, drawn from offspring only under comma
// selection or from parents and offspring combined under plus.
func (e *ES) Step() error {
	if len(e.parents) == 0 {
		if err := e.InitializePopulation(); err != nil {
			return err
		}
	}

	offspring := make([]esIndividual, 0, e.params.Lambda)
	for k := 0; k < e.params.Lambda; k++ {
		child := e.parents[e.rng.Intn(len(e.parents))].clone()
		e.mutate(&child)
		fit, err := signedFitness(e.problem, child.Genotype)
		if err != nil {
			return err
		}
		child.Fitness = fit
		offspring = append(offspring, child)
	}

	pool := offspring
	if e.params.SelectionScheme == SchemePlus {
		pool = append(pool, e.parents...)
	}
	sort.SliceStable(pool, func(a, b int) bool {
		return pool[a].Fitness > pool[b].Fitness
	})
	e.parents = pool[:e.params.Mu]

	e.updateBest()
	e.generation++
	e.record()
	return nil
}

func (e *ES) Run() error {
	for !e.Converged() {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (e *ES) Population() []framework.Individual {
	pop := make([]framework.Individual, len(e.parents))
	for i, ind := range e.parents {
		pop[i] = ind.Individual.Clone()
	}
	return pop
}

func (e *ES) Best() framework.Individual {
	return e.best.Clone()
}

func (e *ES) Stats() framework.Stats {
	return e.tracker.Snapshot()
}

func (e *ES) Reset() {
	e.parents = nil
	e.best = framework.Individual{}
	e.hasBest = false
	e.generation = 0
	e.lastDiversity = 0
	e.rng = newRNG(e.params.Seed)
	e.tracker.Reset()
}

func (e *ES) SetParams(p framework.Params) error {
	fillESDefaults(&p)
	if err := validateESParams(p); err != nil {
		return err
	}
	resize := p.Mu != e.params.Mu
	reseed := p.Seed != e.params.Seed
	e.params = p
	e.tracker.SetLimit(p.HistoryLimit)
	if reseed {
		e.rng = newRNG(p.Seed)
	}
	if resize && len(e.parents) > 0 {
		e.generation = 0
		e.best = framework.Individual{}
		e.hasBest = false
		e.tracker.Reset()
		return e.InitializePopulation()
	}
	return nil
}

func (e *ES) Converged() bool {
	if e.generation >= e.params.MaxGenerations {
		return true
	}
	if e.generation == 0 {
		return false
	}
	return e.lastDiversity < diversityThreshold(e.params, 1e-6)
}

// mutate first perturbs the step sizes log-normally, then uses the new
// steps to perturb the genes. Steps are floored to stay usable.
func (e *ES) mutate(ind *esIndividual) {
	for d := range ind.Genotype {
		ind.steps[d] *= math.Exp(e.tau * e.rng.NormFloat64())
		if ind.steps[d] < 1e-10 {
			ind.steps[d] = 1e-10
		}
		ind.Genotype[d] += ind.steps[d] * e.rng.NormFloat64()
		ind.Genotype[d] = framework.Clamp(ind.Genotype[d], e.bounds[d])
	}
}

func (e *ES) updateBest() {
	pop := make([]framework.Individual, len(e.parents))
	for i, ind := range e.parents {
		pop[i] = ind.Individual
	}
	i := framework.BestIndex(pop)
	if !e.hasBest || pop[i].Fitness > e.best.Fitness {
		e.best = pop[i].Clone()
		e.hasBest = true
	}
}

func (e *ES) record() {
	pop := make([]framework.Individual, len(e.parents))
	for i, ind := range e.parents {
		pop[i] = ind.Individual
	}
	e.lastDiversity = framework.Diversity(pop)
	e.tracker.Record(e.generation, e.best.Fitness,
		framework.AverageFitness(pop), e.lastDiversity)
}
