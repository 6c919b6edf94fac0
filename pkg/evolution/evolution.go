// Package evolution drives single-objective evolutionary optimization runs:
// it binds a benchmark problem to an algorithm instance, paces the step loop,
// and collects the outcome in a reportable result.
package evolution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/evolab/evolve/pkg/evolution/algorithms"
	"github.com/evolab/evolve/pkg/evolution/benchmarks"
	"github.com/evolab/evolve/pkg/evolution/framework"
)

// Options configures a single optimization session.
type Options struct {
	// Problem is the benchmark id, Dimension its genotype length
	// (defaults to 2).
	Problem   string
	Dimension int

	// Algorithm is the engine id; Params applies on construction.
	Algorithm string
	Params    framework.Params

	// StepInterval throttles the driver loop when positive. MaxSteps
	// caps the number of steps regardless of convergence, 0 meaning
	// run to convergence.
	StepInterval time.Duration
	MaxSteps     int

	// CacheEvaluations wraps the problem in a memoizing layer and
	// enables evaluation accounting on the result.
	CacheEvaluations bool
}

// Result is the outcome of a finished session.
type Result struct {
	RunID     string
	Problem   string
	Algorithm string

	// Best is the best-ever individual; BestValue is its raw objective
	// value, re-evaluated so both conventions read the same.
	Best      framework.Individual
	BestValue float64

	Generations int
	Elapsed     time.Duration
	Stats       framework.Stats

	// Evaluations and CacheHits are populated only when the session
	// caches evaluations.
	Evaluations int64
	CacheHits   int64
}

// Session owns one algorithm instance bound to one problem. A session is
// driven by a single caller; the engines do no internal locking.
type Session struct {
	id        string
	opts      Options
	problem   framework.Problem
	cached    *framework.CachedProblem
	algorithm framework.Algorithm
}

// NewSession resolves the problem and algorithm ids, binds them and
// returns a ready-to-run session.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	logger := klog.FromContext(ctx)

	if opts.Dimension == 0 {
		opts.Dimension = 2
	}
	problem, ok := benchmarks.New(opts.Problem, opts.Dimension)
	if !ok {
		return nil, fmt.Errorf("unknown problem: %q", opts.Problem)
	}

	var cached *framework.CachedProblem
	if opts.CacheEvaluations {
		cached = framework.NewCachedProblem(problem)
		problem = cached
	}

	algorithm, ok := algorithms.New(opts.Algorithm, opts.Params)
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %q", opts.Algorithm)
	}
	if err := algorithm.Initialize(problem); err != nil {
		return nil, fmt.Errorf("initializing %s: %w", opts.Algorithm, err)
	}

	s := &Session{
		id:        uuid.NewString(),
		opts:      opts,
		problem:   problem,
		cached:    cached,
		algorithm: algorithm,
	}
	logger.V(5).Info(fmt.Sprintf("created session %s: %s on %s (dim %d)",
		s.id, algorithm.Name(), problem.Name(), opts.Dimension))
	return s, nil
}

// ID returns the session's run identifier.
func (s *Session) ID() string {
	return s.id
}

// Algorithm exposes the driven engine for callers that step manually.
func (s *Session) Algorithm() framework.Algorithm {
	return s.algorithm
}

// Run steps the algorithm until it converges, the step cap is reached or
// the context ends. Pacing, when configured, waits between steps without
// blocking cancellation.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	logger := klog.FromContext(ctx)
	start := time.Now()

	var ticker *time.Ticker
	if s.opts.StepInterval > 0 {
		ticker = time.NewTicker(s.opts.StepInterval)
		defer ticker.Stop()
	}

	steps := 0
	for !s.algorithm.Converged() {
		if s.opts.MaxSteps > 0 && steps >= s.opts.MaxSteps {
			break
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.algorithm.Step(); err != nil {
			return nil, fmt.Errorf("step %d: %w", steps+1, err)
		}
		steps++
	}

	result, err := s.result(start)
	if err != nil {
		return nil, err
	}
	logger.V(5).Info(fmt.Sprintf("session %s finished: %s best %v after %d generations",
		s.id, result.Algorithm, result.BestValue, result.Generations))
	return result, nil
}

func (s *Session) result(start time.Time) (*Result, error) {
	best := s.algorithm.Best()
	value, err := s.problem.Evaluate(best.Genotype)
	if err != nil {
		return nil, fmt.Errorf("evaluating best: %w", err)
	}

	stats := s.algorithm.Stats()
	result := &Result{
		RunID:       s.id,
		Problem:     s.problem.Name(),
		Algorithm:   s.algorithm.Name(),
		Best:        best,
		BestValue:   value,
		Generations: stats.Generation,
		Elapsed:     time.Since(start),
		Stats:       stats,
	}
	if s.cached != nil {
		result.Evaluations = s.cached.Lookups()
		result.CacheHits = s.cached.Hits()
	}
	return result, nil
}
