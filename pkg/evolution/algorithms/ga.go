package algorithms

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

const GAName = "GA"

// Selection methods understood by the genetic algorithm.
const (
	SelectionTournament = "tournament"
	SelectionRoulette   = "roulette"
	SelectionRank       = "rank"
)

var _ framework.Algorithm = &GA{}

// GA is a generational genetic algorithm: arithmetic crossover, Gaussian
// per-gene mutation and single-individual elitism over a fixed-size
// population. Minimization problems are handled by negating the raw
// objective, so all comparisons maximize.
type GA struct {
	params  framework.Params
	problem framework.Problem
	bounds  []framework.Bounds
	rng     *rand.Rand

	population []framework.Individual
	best       framework.Individual
	hasBest    bool
	generation int
	tracker    *framework.Tracker
}

func NewGA(params framework.Params) *GA {
	fillGADefaults(&params)
	return &GA{
		params:  params,
		rng:     newRNG(params.Seed),
		tracker: framework.NewTracker(params.HistoryLimit),
	}
}

func fillGADefaults(p *framework.Params) {
	if p.PopulationSize == 0 {
		p.PopulationSize = 50
	}
	if p.MaxGenerations == 0 {
		p.MaxGenerations = 100
	}
	if p.SelectionMethod == "" {
		p.SelectionMethod = SelectionTournament
	}
	if p.TournamentSize == 0 {
		p.TournamentSize = 3
	}
	if p.CrossoverRate == 0 {
		p.CrossoverRate = 0.8
	}
	if p.MutationRate == 0 {
		p.MutationRate = 0.1
	}
}

func validateGAParams(p framework.Params) error {
	if p.PopulationSize < 1 {
		return fmt.Errorf("population size must be positive, got %d", p.PopulationSize)
	}
	if p.MaxGenerations < 1 {
		return fmt.Errorf("max generations must be positive, got %d", p.MaxGenerations)
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return fmt.Errorf("crossover rate must be in [0,1], got %v", p.CrossoverRate)
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be in [0,1], got %v", p.MutationRate)
	}
	if p.TournamentSize < 1 {
		return fmt.Errorf("tournament size must be positive, got %d", p.TournamentSize)
	}
	switch p.SelectionMethod {
	case SelectionTournament, SelectionRoulette, SelectionRank:
	default:
		return fmt.Errorf("unsupported selection method: %q", p.SelectionMethod)
	}
	return nil
}

func (g *GA) Name() string {
	return GAName
}

// Params returns the effective parameters after default filling.
func (g *GA) Params() framework.Params {
	return g.params
}

func (g *GA) Initialize(p framework.Problem) error {
	if p == nil {
		return fmt.Errorf("problem is required")
	}
	if err := validateGAParams(g.params); err != nil {
		return err
	}
	g.problem = p
	g.bounds = p.Bounds()
	g.Reset()
	return nil
}

func (g *GA) InitializePopulation() error {
	if g.problem == nil {
		return fmt.Errorf("no problem bound, call Initialize first")
	}
	pop := make([]framework.Individual, g.params.PopulationSize)
	for i := range pop {
		x := g.problem.RandomSolution(g.rng)
		fit, err := signedFitness(g.problem, x)
		if err != nil {
			return err
		}
		pop[i] = framework.Individual{Genotype: x, Fitness: fit}
	}
	g.population = pop
	g.updateBest()
	return nil
}

// Step runs one full generational replacement: the previous best survives
// unconditionally, every other slot is filled by selection, crossover and
// mutation.
func (g *GA) Step() error {
	if len(g.population) == 0 {
		if err := g.InitializePopulation(); err != nil {
			return err
		}
	}

	elite := g.population[framework.BestIndex(g.population)].Clone()
	next := make([]framework.Individual, 0, g.params.PopulationSize)
	next = append(next, elite)

	for len(next) < g.params.PopulationSize {
		p1 := g.selectParent()
		p2 := g.selectParent()
		c1, c2 := g.crossover(p1, p2)

		g.mutate(&c1)
		if err := g.evaluate(&c1); err != nil {
			return err
		}
		next = append(next, c1)

		if len(next) < g.params.PopulationSize {
			g.mutate(&c2)
			if err := g.evaluate(&c2); err != nil {
				return err
			}
			next = append(next, c2)
		}
	}

	g.population = next
	g.updateBest()
	g.generation++
	g.record()
	return nil
}

func (g *GA) Run() error {
	for !g.Converged() {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *GA) Population() []framework.Individual {
	return framework.ClonePopulation(g.population)
}

func (g *GA) Best() framework.Individual {
	return g.best.Clone()
}

func (g *GA) Stats() framework.Stats {
	return g.tracker.Snapshot()
}

func (g *GA) Reset() {
	g.population = nil
	g.best = framework.Individual{}
	g.hasBest = false
	g.generation = 0
	g.rng = newRNG(g.params.Seed)
	g.tracker.Reset()
}

func (g *GA) SetParams(p framework.Params) error {
	fillGADefaults(&p)
	if err := validateGAParams(p); err != nil {
		return err
	}
	resize := p.PopulationSize != g.params.PopulationSize
	reseed := p.Seed != g.params.Seed
	g.params = p
	g.tracker.SetLimit(p.HistoryLimit)
	if reseed {
		g.rng = newRNG(p.Seed)
	}
	if resize && len(g.population) > 0 {
		g.generation = 0
		g.best = framework.Individual{}
		g.hasBest = false
		g.tracker.Reset()
		return g.InitializePopulation()
	}
	return nil
}

func (g *GA) Converged() bool {
	return g.generation >= g.params.MaxGenerations
}

func (g *GA) selectParent() framework.Individual {
	switch g.params.SelectionMethod {
	case SelectionRoulette:
		return g.rouletteSelect()
	case SelectionRank:
		return g.rankSelect()
	default:
		return g.tournamentSelect()
	}
}

func (g *GA) tournamentSelect() framework.Individual {
	best := g.population[g.rng.Intn(len(g.population))]
	for i := 1; i < g.params.TournamentSize; i++ {
		contestant := g.population[g.rng.Intn(len(g.population))]
		if contestant.Fitness > best.Fitness {
			best = contestant
		}
	}
	return best
}

// rouletteSelect spins a wheel over fitness shifted non-negative. When all
// weights collapse to zero the pick is uniform.
func (g *GA) rouletteSelect() framework.Individual {
	low := g.population[0].Fitness
	for _, ind := range g.population[1:] {
		if ind.Fitness < low {
			low = ind.Fitness
		}
	}
	var total float64
	for _, ind := range g.population {
		total += ind.Fitness - low
	}
	if total == 0 {
		return g.population[g.rng.Intn(len(g.population))]
	}
	spin := g.rng.Float64() * total
	for _, ind := range g.population {
		spin -= ind.Fitness - low
		if spin <= 0 {
			return ind
		}
	}
	return g.population[len(g.population)-1]
}

// rankSelect weights individuals linearly by their fitness rank, so the
// worst has weight 1 and the best weight n.
func (g *GA) rankSelect() framework.Individual {
	order := make([]int, len(g.population))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return g.population[order[a]].Fitness < g.population[order[b]].Fitness
	})

	total := len(order) * (len(order) + 1) / 2
	spin := g.rng.Intn(total) + 1
	for rank, idx := range order {
		spin -= rank + 1
		if spin <= 0 {
			return g.population[idx]
		}
	}
	return g.population[order[len(order)-1]]
}

// crossover blends two parents into a complementary pair with one shared
// alpha. Parents pass through unchanged when the crossover roll fails.
func (g *GA) crossover(p1, p2 framework.Individual) (framework.Individual, framework.Individual) {
	c1 := p1.Clone()
	c2 := p2.Clone()
	if g.rng.Float64() >= g.params.CrossoverRate {
		return c1, c2
	}
	alpha := g.rng.Float64()
	for i := range c1.Genotype {
		c1.Genotype[i] = alpha*p1.Genotype[i] + (1-alpha)*p2.Genotype[i]
		c2.Genotype[i] = (1-alpha)*p1.Genotype[i] + alpha*p2.Genotype[i]
	}
	return c1, c2
}

// mutate applies Gaussian noise per gene with probability MutationRate.
// The noise scale is a tenth of the dimension's bound range.
func (g *GA) mutate(ind *framework.Individual) {
	for i := range ind.Genotype {
		if g.rng.Float64() >= g.params.MutationRate {
			continue
		}
		sigma := 0.1 * (g.bounds[i].H - g.bounds[i].L)
		ind.Genotype[i] += g.rng.NormFloat64() * sigma
		ind.Genotype[i] = framework.Clamp(ind.Genotype[i], g.bounds[i])
	}
}

func (g *GA) evaluate(ind *framework.Individual) error {
	fit, err := signedFitness(g.problem, ind.Genotype)
	if err != nil {
		return err
	}
	ind.Fitness = fit
	return nil
}

func (g *GA) updateBest() {
	i := framework.BestIndex(g.population)
	if !g.hasBest || g.population[i].Fitness > g.best.Fitness {
		g.best = g.population[i].Clone()
		g.hasBest = true
	}
}

func (g *GA) record() {
	g.tracker.Record(g.generation, g.best.Fitness,
		framework.AverageFitness(g.population), framework.Diversity(g.population))
}
