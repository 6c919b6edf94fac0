package algorithms

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

const SAName = "SA"

var _ framework.Algorithm = &SA{}

// SA is simulated annealing over a single solution. Worse neighbors are
// accepted with probability exp(-delta/T) and the temperature cools
// geometrically every iteration. The solution keeps the problem's raw
// objective value; history entries are normalized to the maximizing
// convention like every other engine.
type SA struct {
	params  framework.Params
	problem framework.Problem
	bounds  []framework.Bounds
	rng     *rand.Rand

	current     framework.Individual
	best        framework.Individual
	hasCurrent  bool
	hasBest     bool
	temperature float64
	iteration   int
	tracker     *framework.Tracker
}

func NewSA(params framework.Params) *SA {
	fillSADefaults(&params)
	return &SA{
		params:      params,
		rng:         newRNG(params.Seed),
		temperature: params.InitialTemperature,
		tracker:     framework.NewTracker(params.HistoryLimit),
	}
}

func fillSADefaults(p *framework.Params) {
	p.PopulationSize = 1
	if p.MaxGenerations == 0 {
		p.MaxGenerations = 1000
	}
	if p.InitialTemperature == 0 {
		p.InitialTemperature = 100
	}
	if p.CoolingRate == 0 {
		p.CoolingRate = 0.95
	}
	if p.MinTemperature == 0 {
		p.MinTemperature = 1e-3
	}
	if p.NeighborhoodSize == 0 {
		p.NeighborhoodSize = 0.1
	}
}

func validateSAParams(p framework.Params) error {
	if p.MaxGenerations < 1 {
		return fmt.Errorf("max iterations must be positive, got %d", p.MaxGenerations)
	}
	if p.InitialTemperature <= 0 {
		return fmt.Errorf("initial temperature must be positive, got %v", p.InitialTemperature)
	}
	if p.CoolingRate <= 0 || p.CoolingRate >= 1 {
		return fmt.Errorf("cooling rate must be in (0,1), got %v", p.CoolingRate)
	}
	if p.MinTemperature <= 0 {
		return fmt.Errorf("minimum temperature must be positive, got %v", p.MinTemperature)
	}
	if p.NeighborhoodSize <= 0 {
		return fmt.Errorf("neighborhood size must be positive, got %v", p.NeighborhoodSize)
	}
	return nil
}

func (s *SA) Name() string {
	return SAName
}

// Params returns the effective parameters after default filling.
func (s *SA) Params() framework.Params {
	return s.params
}

// Temperature reports the current annealing temperature.
func (s *SA) Temperature() float64 {
	return s.temperature
}

func (s *SA) Initialize(p framework.Problem) error {
	if p == nil {
		return fmt.Errorf("problem is required")
	}
	if err := validateSAParams(s.params); err != nil {
		return err
	}
	s.problem = p
	s.bounds = p.Bounds()
	s.Reset()
	return nil
}

func (s *SA) InitializePopulation() error {
	if s.problem == nil {
		return fmt.Errorf("no problem bound, call Initialize first")
	}
	x := s.problem.RandomSolution(s.rng)
	fit, err := s.problem.Evaluate(x)
	if err != nil {
		return err
	}
	s.current = framework.Individual{Genotype: x, Fitness: fit}
	s.hasCurrent = true
	s.best = s.current.Clone()
	s.hasBest = true
	return nil
}

// Step proposes one neighbor, applies the Metropolis acceptance rule
// and cools the temperature whether or not the move was taken.
func (s *SA) Step() error {
	if !s.hasCurrent {
		if err := s.InitializePopulation(); err != nil {
			return err
		}
	}

	candidate := s.neighbor()
	fit, err := s.problem.Evaluate(candidate.Genotype)
	if err != nil {
		return err
	}
	candidate.Fitness = fit

	delta := candidate.Fitness - s.current.Fitness
	if !s.problem.Minimize() {
		delta = -delta
	}
	if delta < 0 || s.rng.Float64() < math.Exp(-delta/s.temperature) {
		s.current = candidate
		if s.betterThanBest(candidate.Fitness) {
			s.best = candidate.Clone()
		}
	}

	s.temperature *= s.params.CoolingRate
	s.iteration++
	s.record()
	return nil
}

func (s *SA) betterThanBest(fit float64) bool {
	if !s.hasBest {
		return true
	}
	if s.problem.Minimize() {
		return fit < s.best.Fitness
	}
	return fit > s.best.Fitness
}

// neighbor perturbs each dimension with probability one half by a
// uniform offset scaled to the dimension's bound range.
func (s *SA) neighbor() framework.Individual {
	candidate := s.current.Clone()
	for d, b := range s.bounds {
		if s.rng.Float64() >= 0.5 {
			continue
		}
		span := s.params.NeighborhoodSize * (b.H - b.L)
		candidate.Genotype[d] += (2*s.rng.Float64() - 1) * span
	}
	s.problem.Repair(candidate.Genotype)
	return candidate
}

func (s *SA) Run() error {
	for !s.Converged() {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *SA) Population() []framework.Individual {
	if !s.hasCurrent {
		return nil
	}
	return []framework.Individual{s.current.Clone()}
}

func (s *SA) Best() framework.Individual {
	return s.best.Clone()
}

func (s *SA) Stats() framework.Stats {
	return s.tracker.Snapshot()
}

func (s *SA) Reset() {
	s.current = framework.Individual{}
	s.best = framework.Individual{}
	s.hasCurrent = false
	s.hasBest = false
	s.iteration = 0
	s.temperature = s.params.InitialTemperature
	s.rng = newRNG(s.params.Seed)
	s.tracker.Reset()
}

func (s *SA) SetParams(p framework.Params) error {
	fillSADefaults(&p)
	if err := validateSAParams(p); err != nil {
		return err
	}
	retemper := p.InitialTemperature != s.params.InitialTemperature
	reseed := p.Seed != s.params.Seed
	s.params = p
	s.tracker.SetLimit(p.HistoryLimit)
	if reseed {
		s.rng = newRNG(p.Seed)
	}
	if retemper && !s.hasCurrent {
		s.temperature = p.InitialTemperature
	}
	return nil
}

func (s *SA) Converged() bool {
	return s.iteration >= s.params.MaxGenerations || s.temperature < s.params.MinTemperature
}

func (s *SA) record() {
	sign := 1.0
	if s.problem.Minimize() {
		sign = -1
	}
	s.tracker.Record(s.iteration, sign*s.best.Fitness, sign*s.current.Fitness, 0)
}
