package algorithms

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

const PSOName = "PSO"

// Swarm topologies: who a particle learns from besides itself.
const (
	TopologyGlobal     = "global"
	TopologyRing       = "ring"
	TopologyVonNeumann = "vonNeumann"
)

var _ framework.Algorithm = &PSO{}

// particle carries a moving position, its velocity and the best position
// it has personally visited.
type particle struct {
	current  framework.Individual
	velocity []float64
	best     framework.Individual
}

// PSO is an inertia-weight particle swarm with velocity clamping and a
// configurable neighborhood topology. The swarm best is updated the
// moment any personal best improves on it.
type PSO struct {
	params  framework.Params
	problem framework.Problem
	bounds  []framework.Bounds
	rng     *rand.Rand
	vmax    float64

	swarm         []particle
	neighborhoods [][]int
	gbest         framework.Individual
	gbestIndex    int
	hasBest       bool
	generation    int
	lastDiversity float64
	tracker       *framework.Tracker
}

func NewPSO(params framework.Params) *PSO {
	fillPSODefaults(&params)
	return &PSO{
		params:  params,
		rng:     newRNG(params.Seed),
		tracker: framework.NewTracker(params.HistoryLimit),
	}
}

func fillPSODefaults(p *framework.Params) {
	if p.PopulationSize == 0 {
		p.PopulationSize = 50
	}
	if p.MaxGenerations == 0 {
		p.MaxGenerations = 100
	}
	if p.InertiaWeight == 0 {
		p.InertiaWeight = 0.729
	}
	if p.CognitiveCoeff == 0 {
		p.CognitiveCoeff = 1.49445
	}
	if p.SocialCoeff == 0 {
		p.SocialCoeff = 1.49445
	}
	if p.Topology == "" {
		p.Topology = TopologyGlobal
	}
	if p.RingNeighbors == 0 {
		p.RingNeighbors = 2
	}
	if p.MaxVelocity == 0 {
		p.MaxVelocity = 0.2
	}
}

func validatePSOParams(p framework.Params) error {
	if p.PopulationSize < 2 {
		return fmt.Errorf("swarm needs at least 2 particles, got %d", p.PopulationSize)
	}
	if p.MaxGenerations < 1 {
		return fmt.Errorf("max generations must be positive, got %d", p.MaxGenerations)
	}
	if p.InertiaWeight < 0 {
		return fmt.Errorf("inertia weight must be non-negative, got %v", p.InertiaWeight)
	}
	if p.MaxVelocity <= 0 {
		return fmt.Errorf("max velocity fraction must be positive, got %v", p.MaxVelocity)
	}
	if p.RingNeighbors < 1 {
		return fmt.Errorf("ring neighbors must be positive, got %d", p.RingNeighbors)
	}
	switch p.Topology {
	case TopologyGlobal, TopologyRing, TopologyVonNeumann:
	default:
		return fmt.Errorf("unsupported topology: %q", p.Topology)
	}
	return nil
}

func (s *PSO) Name() string {
	return PSOName
}

// Params returns the effective parameters after default filling.
func (s *PSO) Params() framework.Params {
	return s.params
}

func (s *PSO) Initialize(p framework.Problem) error {
	if p == nil {
		return fmt.Errorf("problem is required")
	}
	if err := validatePSOParams(s.params); err != nil {
		return err
	}
	s.problem = p
	s.bounds = p.Bounds()
	s.vmax = maxVelocity(s.params.MaxVelocity, s.bounds)
	s.Reset()
	return nil
}

// maxVelocity turns the velocity fraction into an absolute clamp over the
// average bound range.
func maxVelocity(fraction float64, bounds []framework.Bounds) float64 {
	var span float64
	for _, b := range bounds {
		span += b.H - b.L
	}
	return fraction * span / float64(len(bounds))
}

func (s *PSO) InitializePopulation() error {
	if s.problem == nil {
		return fmt.Errorf("no problem bound, call Initialize first")
	}
	swarm := make([]particle, s.params.PopulationSize)
	for i := range swarm {
		x := s.problem.RandomSolution(s.rng)
		fit, err := signedFitness(s.problem, x)
		if err != nil {
			return err
		}
		ind := framework.Individual{Genotype: x, Fitness: fit}
		swarm[i] = particle{
			current:  ind,
			velocity: make([]float64, len(s.bounds)),
			best:     ind.Clone(),
		}
	}
	s.swarm = swarm
	s.neighborhoods = buildNeighborhoods(s.params.Topology, len(swarm), s.params.RingNeighbors)

	s.gbestIndex = 0
	for i, p := range swarm {
		if !s.hasBest || p.best.Fitness > s.gbest.Fitness {
			s.gbest = p.best.Clone()
			s.gbestIndex = i
			s.hasBest = true
		}
	}
	return nil
}

// buildNeighborhoods precomputes the informant indices per particle.
// Global topology returns nil since every particle follows the swarm
// best directly.
func buildNeighborhoods(topology string, n, ringK int) [][]int {
	switch topology {
	case TopologyRing:
		hoods := make([][]int, n)
		for i := 0; i < n; i++ {
			hood := []int{i}
			for k := 1; k <= ringK; k++ {
				hood = append(hood, (i+k)%n, (i-k+n)%n)
			}
			hoods[i] = hood
		}
		return hoods
	case TopologyVonNeumann:
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		hoods := make([][]int, n)
		for i := 0; i < n; i++ {
			hoods[i] = []int{
				i,
				(i + 1) % n,
				(i - 1 + n) % n,
				(i + cols) % n,
				(i - cols + n) % n,
			}
		}
		return hoods
	}
	return nil
}

// Step moves every particle once: velocity update against the personal
// and neighborhood bests, position shift, bound clamp, then best
// bookkeeping.
func (s *PSO) Step() error {
	if len(s.swarm) == 0 {
		if err := s.InitializePopulation(); err != nil {
			return err
		}
	}

	w := s.params.InertiaWeight
	c1 := s.params.CognitiveCoeff
	c2 := s.params.SocialCoeff

	for i := range s.swarm {
		p := &s.swarm[i]
		nb := s.neighborhoodBest(i)

		for d := range p.current.Genotype {
			r1 := s.rng.Float64()
			r2 := s.rng.Float64()
			v := w*p.velocity[d] +
				c1*r1*(p.best.Genotype[d]-p.current.Genotype[d]) +
				c2*r2*(nb.Genotype[d]-p.current.Genotype[d])
			if v > s.vmax {
				v = s.vmax
			} else if v < -s.vmax {
				v = -s.vmax
			}
			p.velocity[d] = v
			p.current.Genotype[d] = framework.Clamp(p.current.Genotype[d]+v, s.bounds[d])
		}

		fit, err := signedFitness(s.problem, p.current.Genotype)
		if err != nil {
			return err
		}
		p.current.Fitness = fit

		if fit > p.best.Fitness {
			p.best = p.current.Clone()
			if fit > s.gbest.Fitness {
				s.gbest = p.best.Clone()
				s.gbestIndex = i
			}
		}
	}

	s.generation++
	s.record()
	return nil
}

// neighborhoodBest returns the best personal best visible to particle i.
func (s *PSO) neighborhoodBest(i int) framework.Individual {
	if s.neighborhoods == nil {
		return s.gbest
	}
	best := s.swarm[s.neighborhoods[i][0]].best
	for _, j := range s.neighborhoods[i][1:] {
		if s.swarm[j].best.Fitness > best.Fitness {
			best = s.swarm[j].best
		}
	}
	return best
}

func (s *PSO) Run() error {
	for !s.Converged() {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *PSO) Population() []framework.Individual {
	pop := make([]framework.Individual, len(s.swarm))
	for i, p := range s.swarm {
		pop[i] = p.current.Clone()
	}
	return pop
}

func (s *PSO) Best() framework.Individual {
	return s.gbest.Clone()
}

// BestIndex reports which particle currently owns the swarm best.
func (s *PSO) BestIndex() int {
	return s.gbestIndex
}

func (s *PSO) Stats() framework.Stats {
	return s.tracker.Snapshot()
}

func (s *PSO) Reset() {
	s.swarm = nil
	s.neighborhoods = nil
	s.gbest = framework.Individual{}
	s.gbestIndex = 0
	s.hasBest = false
	s.generation = 0
	s.lastDiversity = 0
	s.rng = newRNG(s.params.Seed)
	s.tracker.Reset()
}

func (s *PSO) SetParams(p framework.Params) error {
	fillPSODefaults(&p)
	if err := validatePSOParams(p); err != nil {
		return err
	}
	resize := p.PopulationSize != s.params.PopulationSize
	retopo := p.Topology != s.params.Topology || p.RingNeighbors != s.params.RingNeighbors
	reseed := p.Seed != s.params.Seed
	s.params = p
	s.tracker.SetLimit(p.HistoryLimit)
	if s.problem != nil {
		s.vmax = maxVelocity(p.MaxVelocity, s.bounds)
	}
	if reseed {
		s.rng = newRNG(p.Seed)
	}
	if len(s.swarm) > 0 {
		if resize {
			s.generation = 0
			s.gbest = framework.Individual{}
			s.hasBest = false
			s.tracker.Reset()
			return s.InitializePopulation()
		}
		if retopo {
			s.neighborhoods = buildNeighborhoods(p.Topology, len(s.swarm), p.RingNeighbors)
		}
	}
	return nil
}

func (s *PSO) Converged() bool {
	if s.generation >= s.params.MaxGenerations {
		return true
	}
	if s.generation == 0 {
		return false
	}
	return s.lastDiversity < diversityThreshold(s.params, 1e-6)
}

func (s *PSO) record() {
	pop := make([]framework.Individual, len(s.swarm))
	for i, p := range s.swarm {
		pop[i] = p.current
	}
	s.lastDiversity = framework.Diversity(pop)
	s.tracker.Record(s.generation, s.gbest.Fitness,
		framework.AverageFitness(pop), s.lastDiversity)
}
