package algorithms

import (
	"testing"

	"github.com/evolab/evolve/pkg/evolution/benchmarks"
	"github.com/evolab/evolve/pkg/evolution/framework"
)

func TestSADefaults(t *testing.T) {
	sa := NewSA(framework.Params{})
	p := sa.Params()

	if p.PopulationSize != 1 {
		t.Errorf("expected population size pinned to 1, got %d", p.PopulationSize)
	}
	if p.InitialTemperature != 100 {
		t.Errorf("expected default initial temperature 100, got %v", p.InitialTemperature)
	}
	if p.CoolingRate != 0.95 {
		t.Errorf("expected default cooling rate 0.95, got %v", p.CoolingRate)
	}
	if p.MinTemperature != 1e-3 {
		t.Errorf("expected default minimum temperature 1e-3, got %v", p.MinTemperature)
	}
	if p.NeighborhoodSize != 0.1 {
		t.Errorf("expected default neighborhood size 0.1, got %v", p.NeighborhoodSize)
	}
}

func TestSATemperatureTrace(t *testing.T) {
	sa := NewSA(framework.Params{InitialTemperature: 50, CoolingRate: 0.9, Seed: 5})
	if err := sa.Initialize(benchmarks.NewSphere(2)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	expected := 50.0
	for k := 1; k <= 40; k++ {
		if err := sa.Step(); err != nil {
			t.Fatalf("step %d failed: %v", k, err)
		}
		expected *= 0.9
		if got := sa.Temperature(); got != expected {
			t.Fatalf("after %d iterations temperature is %v, want %v", k, got, expected)
		}
	}
}

func TestSASingletonPopulation(t *testing.T) {
	sa := NewSA(framework.Params{Seed: 11})
	if err := sa.Initialize(benchmarks.NewRastrigin(3)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if got := sa.Population(); got != nil {
		t.Fatalf("expected no population before init, got %d members", len(got))
	}
	if err := sa.Step(); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if got := len(sa.Population()); got != 1 {
		t.Fatalf("expected a single-member population, got %d", got)
	}
}

func TestSAConvergesOnMinTemperature(t *testing.T) {
	sa := NewSA(framework.Params{
		InitialTemperature: 10,
		CoolingRate:        0.8,
		MinTemperature:     0.01,
		MaxGenerations:     10000,
		Seed:               13,
	})
	if err := sa.Initialize(benchmarks.NewSphere(2)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := sa.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !sa.Converged() {
		t.Fatal("expected convergence")
	}
	if got := sa.Temperature(); got >= 0.01 {
		t.Errorf("expected temperature below 0.01, got %v", got)
	}
	if got := sa.Stats().Generation; got >= 10000 {
		t.Errorf("expected the temperature floor to end the run early, took %d iterations", got)
	}
}

func TestSABestNeverWorseThanCurrent(t *testing.T) {
	sa := NewSA(framework.Params{Seed: 17})
	if err := sa.Initialize(benchmarks.NewAckley(3)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	for k := 0; k < 50; k++ {
		if err := sa.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
		if sa.Best().Fitness > sa.Population()[0].Fitness {
			t.Fatalf("best %v worse than current %v at iteration %d",
				sa.Best().Fitness, sa.Population()[0].Fitness, k)
		}
	}
}

func TestSAHistoryMonotone(t *testing.T) {
	sa := NewSA(framework.Params{MaxGenerations: 200, Seed: 42})
	if err := sa.Initialize(benchmarks.NewSphere(2)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := sa.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	stats := sa.Stats()
	for i := 1; i < len(stats.History.BestFitness); i++ {
		if stats.History.BestFitness[i] < stats.History.BestFitness[i-1] {
			t.Fatalf("best fitness regressed at iteration %d", i)
		}
	}
	for _, d := range stats.History.Diversity {
		if d != 0 {
			t.Fatalf("expected zero diversity for single-point search, got %v", d)
		}
	}
}

func TestSAMaximizes(t *testing.T) {
	sa := NewSA(framework.Params{MaxGenerations: 300, Seed: 23})
	if err := sa.Initialize(newPeakProblem(2)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if err := sa.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if best := sa.Best().Fitness; best < -1.0 {
		t.Errorf("expected best near the peak value 0, got %v", best)
	}
}

func TestSAResetRestoresTemperature(t *testing.T) {
	sa := NewSA(framework.Params{InitialTemperature: 25, Seed: 29})
	if err := sa.Initialize(benchmarks.NewSphere(2)); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	for k := 0; k < 10; k++ {
		if err := sa.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
	if sa.Temperature() >= 25 {
		t.Fatal("expected cooling to lower the temperature")
	}

	sa.Reset()
	if got := sa.Temperature(); got != 25 {
		t.Errorf("expected reset to restore temperature 25, got %v", got)
	}
	if got := sa.Population(); got != nil {
		t.Errorf("expected no population after reset, got %d members", len(got))
	}
}

func TestSAInvalidCoolingRate(t *testing.T) {
	sa := NewSA(framework.Params{CoolingRate: 1.5})
	if err := sa.Initialize(benchmarks.NewSphere(2)); err == nil {
		t.Fatal("expected error for cooling rate outside (0,1)")
	}
}
