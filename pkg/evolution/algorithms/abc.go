package algorithms

import (
	"fmt"
	"math/rand"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

const ABCName = "ABC"

var _ framework.Algorithm = &ABC{}

// ABC is the artificial bee colony heuristic: employed bees refine their
// own food source, onlookers reinforce promising ones proportionally to
// quality, and scouts abandon sources that stalled past the trial limit.
// Food sources keep the problem's raw objective value and comparisons
// respect the problem direction.
type ABC struct {
	params  framework.Params
	problem framework.Problem
	bounds  []framework.Bounds
	rng     *rand.Rand

	foods         []framework.Individual
	trials        []int
	best          framework.Individual
	hasBest       bool
	generation    int
	lastDiversity float64
	tracker       *framework.Tracker
}

func NewABC(params framework.Params) *ABC {
	fillABCDefaults(&params)
	return &ABC{
		params:  params,
		rng:     newRNG(params.Seed),
		tracker: framework.NewTracker(params.HistoryLimit),
	}
}

func fillABCDefaults(p *framework.Params) {
	if p.PopulationSize == 0 {
		p.PopulationSize = 50
	}
	if p.MaxGenerations == 0 {
		p.MaxGenerations = 100
	}
	if p.Limit == 0 {
		p.Limit = 50
	}
	if p.ScalingFactor == 0 {
		p.ScalingFactor = 1.0
	}
}

func validateABCParams(p framework.Params) error {
	if p.PopulationSize < 2 {
		return fmt.Errorf("colony needs at least 2 food sources, got %d", p.PopulationSize)
	}
	if p.MaxGenerations < 1 {
		return fmt.Errorf("max generations must be positive, got %d", p.MaxGenerations)
	}
	if p.Limit < 1 {
		return fmt.Errorf("abandonment limit must be positive, got %d", p.Limit)
	}
	if p.ScalingFactor <= 0 {
		return fmt.Errorf("scaling factor must be positive, got %v", p.ScalingFactor)
	}
	return nil
}

func (a *ABC) Name() string {
	return ABCName
}

// Params returns the effective parameters after default filling.
func (a *ABC) Params() framework.Params {
	return a.params
}

func (a *ABC) Initialize(p framework.Problem) error {
	if p == nil {
		return fmt.Errorf("problem is required")
	}
	if err := validateABCParams(a.params); err != nil {
		return err
	}
	a.problem = p
	a.bounds = p.Bounds()
	a.Reset()
	return nil
}

func (a *ABC) InitializePopulation() error {
	if a.problem == nil {
		return fmt.Errorf("no problem bound, call Initialize first")
	}
	foods := make([]framework.Individual, a.params.PopulationSize)
	for i := range foods {
		x := a.problem.RandomSolution(a.rng)
		fit, err := a.problem.Evaluate(x)
		if err != nil {
			return err
		}
		foods[i] = framework.Individual{Genotype: x, Fitness: fit}
	}
	a.foods = foods
	a.trials = make([]int, len(foods))
	for _, f := range foods {
		a.offerBest(f)
	}
	return nil
}

// better reports whether objective value x beats y for this problem.
func (a *ABC) better(x, y float64) bool {
	if a.problem.Minimize() {
		return x < y
	}
	return x > y
}

func (a *ABC) offerBest(candidate framework.Individual) {
	if !a.hasBest || a.better(candidate.Fitness, a.best.Fitness) {
		a.best = candidate.Clone()
		a.hasBest = true
	}
}

// Step runs one colony cycle: an employed visit per source, a full round
// of onlooker visits weighted by quality, then scout replacement of
// sources whose trial counter passed the limit.
func (a *ABC) Step() error {
	if len(a.foods) == 0 {
		if err := a.InitializePopulation(); err != nil {
			return err
		}
	}

	for i := range a.foods {
		if err := a.tryNeighbor(i); err != nil {
			return err
		}
	}

	weights := a.weights()
	var total float64
	for _, w := range weights {
		total += w
	}
	for n := 0; n < a.params.PopulationSize; n++ {
		spin := a.rng.Float64() * total
		chosen := len(weights) - 1
		for i, w := range weights {
			spin -= w
			if spin <= 0 {
				chosen = i
				break
			}
		}
		if err := a.tryNeighbor(chosen); err != nil {
			return err
		}
	}

	for i := range a.foods {
		if a.trials[i] > a.params.Limit {
			x := a.problem.RandomSolution(a.rng)
			fit, err := a.problem.Evaluate(x)
			if err != nil {
				return err
			}
			a.foods[i] = framework.Individual{Genotype: x, Fitness: fit}
			a.trials[i] = 0
			a.offerBest(a.foods[i])
		}
	}

	a.generation++
	a.record()
	return nil
}

// tryNeighbor perturbs one dimension of source i towards or away from a
// random partner and keeps the candidate only on strict improvement.
func (a *ABC) tryNeighbor(i int) error {
	j := a.rng.Intn(len(a.foods) - 1)
	if j >= i {
		j++
	}
	d := a.rng.Intn(len(a.bounds))

	candidate := a.foods[i].Clone()
	phi := (2*a.rng.Float64() - 1) * a.params.ScalingFactor
	candidate.Genotype[d] += phi * (candidate.Genotype[d] - a.foods[j].Genotype[d])
	a.problem.Repair(candidate.Genotype)

	fit, err := a.problem.Evaluate(candidate.Genotype)
	if err != nil {
		return err
	}
	candidate.Fitness = fit

	if a.better(candidate.Fitness, a.foods[i].Fitness) {
		a.foods[i] = candidate
		a.trials[i] = 0
		a.offerBest(candidate)
	} else {
		a.trials[i]++
	}
	return nil
}

// weights maps raw objective values to positive onlooker preferences.
// The offset keeps denominators sane when objectives go negative.
func (a *ABC) weights() []float64 {
	offset := a.foods[0].Fitness
	for _, f := range a.foods[1:] {
		if f.Fitness < offset {
			offset = f.Fitness
		}
	}
	if offset > 0 {
		offset = 0
	}

	weights := make([]float64, len(a.foods))
	minimize := a.problem.Minimize()
	for i, f := range a.foods {
		if minimize {
			weights[i] = 1 / (1 + f.Fitness - offset)
		} else {
			weights[i] = 1 + f.Fitness - offset
		}
	}
	return weights
}

func (a *ABC) Run() error {
	for !a.Converged() {
		if err := a.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (a *ABC) Population() []framework.Individual {
	return framework.ClonePopulation(a.foods)
}

func (a *ABC) Best() framework.Individual {
	return a.best.Clone()
}

func (a *ABC) Stats() framework.Stats {
	return a.tracker.Snapshot()
}

func (a *ABC) Reset() {
	a.foods = nil
	a.trials = nil
	a.best = framework.Individual{}
	a.hasBest = false
	a.generation = 0
	a.lastDiversity = 0
	a.rng = newRNG(a.params.Seed)
	a.tracker.Reset()
}

func (a *ABC) SetParams(p framework.Params) error {
	fillABCDefaults(&p)
	if err := validateABCParams(p); err != nil {
		return err
	}
	resize := p.PopulationSize != a.params.PopulationSize
	reseed := p.Seed != a.params.Seed
	a.params = p
	a.tracker.SetLimit(p.HistoryLimit)
	if reseed {
		a.rng = newRNG(p.Seed)
	}
	if resize && len(a.foods) > 0 {
		a.generation = 0
		a.best = framework.Individual{}
		a.hasBest = false
		a.tracker.Reset()
		return a.InitializePopulation()
	}
	return nil
}

func (a *ABC) Converged() bool {
	if a.generation >= a.params.MaxGenerations {
		return true
	}
	if a.generation == 0 {
		return false
	}
	return a.lastDiversity < diversityThreshold(a.params, 1e-4)
}

// record normalizes objective values to the maximizing convention the
// history uses, so the tracked best never decreases.
func (a *ABC) record() {
	sign := 1.0
	if a.problem.Minimize() {
		sign = -1
	}
	var sum float64
	for _, f := range a.foods {
		sum += sign * f.Fitness
	}
	a.lastDiversity = framework.Diversity(a.foods)
	a.tracker.Record(a.generation, sign*a.best.Fitness,
		sum/float64(len(a.foods)), a.lastDiversity)
}
