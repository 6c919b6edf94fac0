package framework

// Individual pairs a genotype with the fitness assigned to it. Fitness is
// stored in whatever convention the owning algorithm uses: GA, ES, DE and
// PSO keep the internal maximize value (minimization problems negated),
// ABC and SA keep the problem's raw value.
type Individual struct {
	Genotype []float64
	Fitness  float64
}

// Clone returns a copy whose genotype shares no storage with ind.
func (ind Individual) Clone() Individual {
	g := make([]float64, len(ind.Genotype))
	copy(g, ind.Genotype)
	return Individual{Genotype: g, Fitness: ind.Fitness}
}

// Params configures an algorithm instance. One flat struct serves all six
// algorithms; each engine reads the fields it understands, ignores the
// rest, and fills its own defaults for zero values.
type Params struct {
	PopulationSize int   `json:"populationSize,omitempty"`
	MaxGenerations int   `json:"maxGenerations,omitempty"`
	Seed           int64 `json:"seed,omitempty"`

	// HistoryLimit caps the recorded stats history. Zero keeps everything.
	HistoryLimit int `json:"historyLimit,omitempty"`
	// DiversityThreshold overrides an engine's diversity-based stopping
	// threshold. Zero keeps the engine default.
	DiversityThreshold float64 `json:"diversityThreshold,omitempty"`

	// Genetic algorithm.
	SelectionMethod string  `json:"selectionMethod,omitempty"`
	TournamentSize  int     `json:"tournamentSize,omitempty"`
	CrossoverRate   float64 `json:"crossoverRate,omitempty"`
	MutationRate    float64 `json:"mutationRate,omitempty"`

	// Evolution strategy.
	Mu                  int     `json:"mu,omitempty"`
	Lambda              int     `json:"lambda,omitempty"`
	SelectionScheme     string  `json:"selectionScheme,omitempty"`
	InitialStepFraction float64 `json:"initialStepFraction,omitempty"`

	// Differential evolution.
	DifferentialWeight   float64 `json:"differentialWeight,omitempty"`
	CrossoverProbability float64 `json:"crossoverProbability,omitempty"`
	MutationStrategy     string  `json:"mutationStrategy,omitempty"`

	// Particle swarm.
	InertiaWeight  float64 `json:"inertiaWeight,omitempty"`
	CognitiveCoeff float64 `json:"cognitiveCoeff,omitempty"`
	SocialCoeff    float64 `json:"socialCoeff,omitempty"`
	Topology       string  `json:"topology,omitempty"`
	RingNeighbors  int     `json:"ringNeighbors,omitempty"`
	MaxVelocity    float64 `json:"maxVelocity,omitempty"`

	// Artificial bee colony.
	Limit         int     `json:"limit,omitempty"`
	ScalingFactor float64 `json:"scalingFactor,omitempty"`

	// Simulated annealing.
	InitialTemperature float64 `json:"initialTemperature,omitempty"`
	CoolingRate        float64 `json:"coolingRate,omitempty"`
	MinTemperature     float64 `json:"minTemperature,omitempty"`
	NeighborhoodSize   float64 `json:"neighborhoodSize,omitempty"`
}
