package algorithms

import (
	"testing"

	"github.com/evolab/evolve/pkg/evolution/benchmarks"
	"github.com/evolab/evolve/pkg/evolution/framework"
)

func TestESDefaults(t *testing.T) {
	es := NewES(framework.Params{})
	p := es.Params()

	if p.Mu != 15 {
		t.Errorf("expected default mu 15, got %d", p.Mu)
	}
	if p.Lambda != 105 {
		t.Errorf("expected default lambda 7*mu=105, got %d", p.Lambda)
	}
	if p.SelectionScheme != SchemePlus {
		t.Errorf("expected default scheme %q, got %q", SchemePlus, p.SelectionScheme)
	}
	if p.InitialStepFraction != 0.1 {
		t.Errorf("expected default step fraction 0.1, got %v", p.InitialStepFraction)
	}
}

func TestESPopulationSizeMapsToMu(t *testing.T) {
	es := NewES(framework.Params{PopulationSize: 8})
	if got := es.Params().Mu; got != 8 {
		t.Fatalf("expected population size to set mu=8, got %d", got)
	}
	if err := es.Initialize(benchmarks.NewSphere(3)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := es.Step(); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if got := len(es.Population()); got != 8 {
		t.Fatalf("expected 8 parents, got %d", got)
	}
}

func TestESCommaRequiresEnoughOffspring(t *testing.T) {
	es := NewES(framework.Params{Mu: 10, Lambda: 5, SelectionScheme: SchemeComma})
	if err := es.Initialize(benchmarks.NewSphere(2)); err == nil {
		t.Fatal("expected error for comma selection with lambda < mu")
	}
}

func TestESUnsupportedScheme(t *testing.T) {
	es := NewES(framework.Params{SelectionScheme: "elitist"})
	if err := es.Initialize(benchmarks.NewSphere(2)); err == nil {
		t.Fatal("expected error for unsupported selection scheme")
	}
}

func TestESPlusSurvivorsNeverRegress(t *testing.T) {
	es := NewES(framework.Params{Mu: 10, Lambda: 30, MaxGenerations: 20, Seed: 21})
	if err := es.Initialize(benchmarks.NewRastrigin(3)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := es.Step(); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		before := bestFitness(es.Population())
		if err := es.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
		after := bestFitness(es.Population())
		if after < before {
			t.Fatalf("plus selection lost its best survivor: %v -> %v", before, after)
		}
	}
}

func TestESCommaRun(t *testing.T) {
	es := NewES(framework.Params{
		Mu:              5,
		Lambda:          35,
		SelectionScheme: SchemeComma,
		MaxGenerations:  15,
		Seed:            13,
	})
	if err := es.Initialize(benchmarks.NewAckley(3)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := es.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !es.Converged() {
		t.Error("expected convergence after run")
	}
	stats := es.Stats()
	if stats.Generation > 15 {
		t.Errorf("ran past the generation cap: %d", stats.Generation)
	}
	for i := 1; i < len(stats.History.BestFitness); i++ {
		if stats.History.BestFitness[i] < stats.History.BestFitness[i-1] {
			t.Fatalf("best fitness regressed at generation %d", i)
		}
	}
}

func TestESConvergesOnSphere(t *testing.T) {
	es := NewES(framework.Params{Mu: 15, Lambda: 105, MaxGenerations: 100, Seed: 42})
	if err := es.Initialize(benchmarks.NewSphere(2)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := es.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	raw, err := benchmarks.NewSphere(2).Evaluate(es.Best().Genotype)
	if err != nil {
		t.Fatalf("evaluating best failed: %v", err)
	}
	if raw > 1.0 {
		t.Errorf("expected near-optimal solution, got objective %v", raw)
	}
}

func TestESStepImplicitlyInitializes(t *testing.T) {
	es := NewES(framework.Params{Mu: 6, Lambda: 12, Seed: 4})
	if err := es.Initialize(benchmarks.NewSphere(2)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := es.Step(); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if got := len(es.Population()); got != 6 {
		t.Fatalf("expected implicit init to yield 6 parents, got %d", got)
	}
}

func TestESResize(t *testing.T) {
	es := NewES(framework.Params{Mu: 6, Lambda: 12, Seed: 8})
	if err := es.Initialize(benchmarks.NewSphere(2)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := es.Step(); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	p := es.Params()
	p.Mu = 12
	p.Lambda = 24
	if err := es.SetParams(p); err != nil {
		t.Fatalf("set params failed: %v", err)
	}
	if got := len(es.Population()); got != 12 {
		t.Fatalf("expected resized parent set of 12, got %d", got)
	}
	if got := es.Stats().Generation; got != 0 {
		t.Errorf("expected generation counter reset after resize, got %d", got)
	}
}

func bestFitness(pop []framework.Individual) float64 {
	best := pop[0].Fitness
	for _, ind := range pop[1:] {
		if ind.Fitness > best {
			best = ind.Fitness
		}
	}
	return best
}
