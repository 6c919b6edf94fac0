package framework

import (
	"errors"
	"math/rand"
)

// ErrDimensionMismatch reports a genotype whose length does not match the
// problem dimension. It indicates a bug in operator construction and is
// never recovered internally.
var ErrDimensionMismatch = errors.New("genotype dimension mismatch")

// Bounds is the closed feasible interval of one dimension.
type Bounds struct {
	L float64
	H float64
}

// Problem describes the contract a benchmark problem needs to implement.
// Problems are immutable and stateless across evaluations.
type Problem interface {
	Name() string

	Dimension() int
	Bounds() []Bounds
	// Minimize reports whether lower objective values are better.
	Minimize() bool

	// Evaluate returns the raw objective value for x. It fails with an
	// error wrapping ErrDimensionMismatch when len(x) != Dimension().
	Evaluate(x []float64) (float64, error)
	// RandomSolution samples each component uniformly within its bound.
	RandomSolution(rng *rand.Rand) []float64
	// Repair clamps x into the bounds in place and returns it. Repair is
	// deterministic and idempotent.
	Repair(x []float64) []float64
	// InBounds reports whether x already satisfies every bound.
	InBounds(x []float64) bool
}

// Algorithm describes the lifecycle contract every optimization engine
// implements. The six engines share this contract and nothing else; there
// is no common base implementation.
//
// Lifecycle: Initialize binds a problem and resets state,
// InitializePopulation creates the starting population, Step advances one
// generation (implicitly initializing the population first when needed),
// Run steps until Converged. Reset returns to the configured,
// uninitialized state. Calling Step after convergence is allowed; drivers
// are expected to consult Converged themselves.
type Algorithm interface {
	Name() string

	Initialize(Problem) error
	InitializePopulation() error
	Step() error
	Run() error

	// Population returns a deep-copied snapshot of the current population.
	Population() []Individual
	// Best returns a copy of the best individual seen so far. It never
	// regresses, even when the current population loses the optimum.
	Best() Individual
	Stats() Stats

	Reset()
	// SetParams applies new parameters. Population-altering fields
	// (PopulationSize, Mu) trigger a full re-initialization.
	SetParams(Params) error
	Converged() bool
}
