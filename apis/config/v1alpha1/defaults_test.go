package v1alpha1

import (
	"testing"

	"github.com/evolab/evolve/pkg/evolution/algorithms"
	"github.com/evolab/evolve/pkg/evolution/benchmarks"
	"github.com/evolab/evolve/pkg/evolution/framework"
)

type defaulter interface {
	Params() framework.Params
}

func TestBuiltinAlgorithmsResolve(t *testing.T) {
	specs := BuiltinAlgorithms()
	if got, want := len(specs), len(algorithms.IDs()); got != want {
		t.Fatalf("catalog lists %d algorithms, registry has %d", got, want)
	}
	for _, spec := range specs {
		if _, ok := algorithms.New(spec.ID, framework.Params{}); !ok {
			t.Errorf("catalog id %q does not resolve in the registry", spec.ID)
		}
	}
}

func TestBuiltinProblemsResolve(t *testing.T) {
	specs := BuiltinProblems()
	if got, want := len(specs), len(benchmarks.IDs()); got != want {
		t.Fatalf("catalog lists %d problems, registry has %d", got, want)
	}
	for _, spec := range specs {
		problem, ok := benchmarks.New(spec.ID, spec.Dimension)
		if !ok {
			t.Errorf("catalog id %q does not resolve in the registry", spec.ID)
			continue
		}
		bounds := problem.Bounds()
		if bounds[0].L != spec.LowerBound || bounds[0].H != spec.UpperBound {
			t.Errorf("%s: catalog bounds [%v,%v] differ from problem bounds [%v,%v]",
				spec.ID, spec.LowerBound, spec.UpperBound, bounds[0].L, bounds[0].H)
		}
	}
}

// The catalog is descriptive only, so its defaults must match what the
// engines actually apply to zero-valued params.
func TestCatalogDefaultsMatchEngines(t *testing.T) {
	for _, spec := range BuiltinAlgorithms() {
		alg, ok := algorithms.New(spec.ID, framework.Params{})
		if !ok {
			t.Fatalf("algorithm %q not registered", spec.ID)
		}
		engine, ok := alg.(defaulter)
		if !ok {
			t.Fatalf("algorithm %q does not expose its effective params", spec.ID)
		}
		applied := engine.Params()

		for _, param := range spec.Parameters {
			switch param.Kind {
			case ParameterChoice:
				if got := choiceValue(applied, param.Name); got != param.DefaultChoice {
					t.Errorf("%s.%s: catalog default %q, engine applies %q",
						spec.ID, param.Name, param.DefaultChoice, got)
				}
			case ParameterInt, ParameterFloat:
				if got := numericValue(t, applied, param.Name); got != param.Default {
					t.Errorf("%s.%s: catalog default %v, engine applies %v",
						spec.ID, param.Name, param.Default, got)
				}
			}
		}
	}
}

func numericValue(t *testing.T, p framework.Params, name string) float64 {
	t.Helper()
	switch name {
	case "populationSize":
		return float64(p.PopulationSize)
	case "maxGenerations":
		return float64(p.MaxGenerations)
	case "tournamentSize":
		return float64(p.TournamentSize)
	case "crossoverRate":
		return p.CrossoverRate
	case "mutationRate":
		return p.MutationRate
	case "mu":
		return float64(p.Mu)
	case "lambda":
		return float64(p.Lambda)
	case "initialStepFraction":
		return p.InitialStepFraction
	case "differentialWeight":
		return p.DifferentialWeight
	case "crossoverProbability":
		return p.CrossoverProbability
	case "inertiaWeight":
		return p.InertiaWeight
	case "cognitiveCoeff":
		return p.CognitiveCoeff
	case "socialCoeff":
		return p.SocialCoeff
	case "ringNeighbors":
		return float64(p.RingNeighbors)
	case "maxVelocity":
		return p.MaxVelocity
	case "limit":
		return float64(p.Limit)
	case "scalingFactor":
		return p.ScalingFactor
	case "initialTemperature":
		return p.InitialTemperature
	case "coolingRate":
		return p.CoolingRate
	case "minTemperature":
		return p.MinTemperature
	case "neighborhoodSize":
		return p.NeighborhoodSize
	}
	t.Fatalf("catalog names unknown parameter %q", name)
	return 0
}

func choiceValue(p framework.Params, name string) string {
	switch name {
	case "selectionMethod":
		return p.SelectionMethod
	case "selectionScheme":
		return p.SelectionScheme
	case "mutationStrategy":
		return p.MutationStrategy
	case "topology":
		return p.Topology
	}
	return ""
}
