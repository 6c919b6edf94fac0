package v1alpha1

func fp(v float64) *float64 {
	return &v
}

// BuiltinAlgorithms returns the descriptive catalog of the shipped
// engines. Defaults mirror what each engine applies to zero-valued
// params.
func BuiltinAlgorithms() []AlgorithmSpec {
	return []AlgorithmSpec{
		{
			ID:          "ga",
			DisplayName: "Genetic Algorithm",
			Parameters: []ParameterSpec{
				{Name: "populationSize", Kind: ParameterInt, Default: 50, Min: fp(1),
					Description: "Number of individuals per generation."},
				{Name: "maxGenerations", Kind: ParameterInt, Default: 100, Min: fp(1)},
				{Name: "selectionMethod", Kind: ParameterChoice, DefaultChoice: "tournament",
					Choices: []string{"tournament", "roulette", "rank"}},
				{Name: "tournamentSize", Kind: ParameterInt, Default: 3, Min: fp(1),
					VisibleWhen: &VisibleWhen{Parameter: "selectionMethod", Equals: "tournament"}},
				{Name: "crossoverRate", Kind: ParameterFloat, Default: 0.8, Min: fp(0), Max: fp(1)},
				{Name: "mutationRate", Kind: ParameterFloat, Default: 0.1, Min: fp(0), Max: fp(1)},
			},
		},
		{
			ID:          "es",
			DisplayName: "Evolution Strategy",
			Parameters: []ParameterSpec{
				{Name: "mu", Kind: ParameterInt, Default: 15, Min: fp(1),
					Description: "Parent population size."},
				{Name: "lambda", Kind: ParameterInt, Default: 105, Min: fp(1),
					Description: "Offspring per generation."},
				{Name: "selectionScheme", Kind: ParameterChoice, DefaultChoice: "plus",
					Choices: []string{"plus", "comma"}},
				{Name: "initialStepFraction", Kind: ParameterFloat, Default: 0.1, Min: fp(0)},
				{Name: "maxGenerations", Kind: ParameterInt, Default: 100, Min: fp(1)},
			},
		},
		{
			ID:          "de",
			DisplayName: "Differential Evolution",
			Parameters: []ParameterSpec{
				{Name: "populationSize", Kind: ParameterInt, Default: 50, Min: fp(4)},
				{Name: "maxGenerations", Kind: ParameterInt, Default: 100, Min: fp(1)},
				{Name: "differentialWeight", Kind: ParameterFloat, Default: 0.8, Min: fp(0), Max: fp(2)},
				{Name: "crossoverProbability", Kind: ParameterFloat, Default: 0.9, Min: fp(0), Max: fp(1)},
				{Name: "mutationStrategy", Kind: ParameterChoice, DefaultChoice: "rand/1",
					Choices: []string{"rand/1", "best/1", "rand/2", "best/2"}},
			},
		},
		{
			ID:          "pso",
			DisplayName: "Particle Swarm Optimization",
			Parameters: []ParameterSpec{
				{Name: "populationSize", Kind: ParameterInt, Default: 50, Min: fp(2),
					Description: "Swarm size."},
				{Name: "maxGenerations", Kind: ParameterInt, Default: 100, Min: fp(1)},
				{Name: "inertiaWeight", Kind: ParameterFloat, Default: 0.729, Min: fp(0)},
				{Name: "cognitiveCoeff", Kind: ParameterFloat, Default: 1.49445, Min: fp(0)},
				{Name: "socialCoeff", Kind: ParameterFloat, Default: 1.49445, Min: fp(0)},
				{Name: "topology", Kind: ParameterChoice, DefaultChoice: "global",
					Choices: []string{"global", "ring", "vonNeumann"}},
				{Name: "ringNeighbors", Kind: ParameterInt, Default: 2, Min: fp(1),
					VisibleWhen: &VisibleWhen{Parameter: "topology", Equals: "ring"}},
				{Name: "maxVelocity", Kind: ParameterFloat, Default: 0.2, Min: fp(0),
					Description: "Velocity clamp as a fraction of each dimension's range."},
			},
		},
		{
			ID:          "abc",
			DisplayName: "Artificial Bee Colony",
			Parameters: []ParameterSpec{
				{Name: "populationSize", Kind: ParameterInt, Default: 50, Min: fp(2),
					Description: "Number of food sources."},
				{Name: "maxGenerations", Kind: ParameterInt, Default: 100, Min: fp(1)},
				{Name: "limit", Kind: ParameterInt, Default: 50, Min: fp(1),
					Description: "Stalled-trial count before a scout replaces a source."},
				{Name: "scalingFactor", Kind: ParameterFloat, Default: 1.0, Min: fp(0)},
			},
		},
		{
			ID:          "sa",
			DisplayName: "Simulated Annealing",
			Parameters: []ParameterSpec{
				{Name: "maxGenerations", Kind: ParameterInt, Default: 1000, Min: fp(1),
					Description: "Iteration cap."},
				{Name: "initialTemperature", Kind: ParameterFloat, Default: 100, Min: fp(0)},
				{Name: "coolingRate", Kind: ParameterFloat, Default: 0.95, Min: fp(0), Max: fp(1)},
				{Name: "minTemperature", Kind: ParameterFloat, Default: 1e-3, Min: fp(0)},
				{Name: "neighborhoodSize", Kind: ParameterFloat, Default: 0.1, Min: fp(0)},
			},
		},
	}
}

// BuiltinProblems returns the descriptive catalog of the shipped
// benchmarks with their canonical bounds.
func BuiltinProblems() []ProblemSpec {
	return []ProblemSpec{
		{ID: "sphere", DisplayName: "Sphere", Dimension: 2, LowerBound: -5.12, UpperBound: 5.12},
		{ID: "rastrigin", DisplayName: "Rastrigin", Dimension: 2, LowerBound: -5.12, UpperBound: 5.12},
		{ID: "rosenbrock", DisplayName: "Rosenbrock", Dimension: 2, LowerBound: -2.048, UpperBound: 2.048},
		{ID: "ackley", DisplayName: "Ackley", Dimension: 2, LowerBound: -32.768, UpperBound: 32.768},
		{ID: "schwefel222", DisplayName: "Schwefel 2.22", Dimension: 2, LowerBound: -10, UpperBound: 10},
		{ID: "schwefel12", DisplayName: "Schwefel 1.2", Dimension: 2, LowerBound: -100, UpperBound: 100},
		{ID: "step", DisplayName: "Step", Dimension: 2, LowerBound: -100, UpperBound: 100},
	}
}
