package evolution

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"k8s.io/klog/v2"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

// CompareOptions configures a side-by-side run of several algorithms on
// the same problem.
type CompareOptions struct {
	Problem   string
	Dimension int

	// Algorithms lists the engine ids to race; Params applies to all
	// of them.
	Algorithms []string
	Params     framework.Params

	// MaxConcurrent caps the worker goroutines, 0 meaning one worker
	// per algorithm.
	MaxConcurrent    int
	CacheEvaluations bool
}

// Compare runs every listed algorithm on its own session and returns the
// results in input order. Each session lives on one worker goroutine, so
// the engines keep their single-caller contract.
func Compare(ctx context.Context, opts CompareOptions) ([]*Result, error) {
	logger := klog.FromContext(ctx)
	if len(opts.Algorithms) == 0 {
		return nil, fmt.Errorf("no algorithms to compare")
	}

	workers := opts.MaxConcurrent
	if workers <= 0 {
		workers = len(opts.Algorithms)
	}
	logger.V(5).Info(fmt.Sprintf("comparing %d algorithms on %s with %d workers",
		len(opts.Algorithms), opts.Problem, workers))

	results := make([]*Result, len(opts.Algorithms))
	errs := make([]error, len(opts.Algorithms))

	p := pool.New().WithMaxGoroutines(workers)
	for i, id := range opts.Algorithms {
		// Per-iteration copies: required while go.mod declares go < 1.22,
		// where range variables are shared across iterations.
		i, id := i, id
		p.Go(func() {
			session, err := NewSession(ctx, Options{
				Problem:          opts.Problem,
				Dimension:        opts.Dimension,
				Algorithm:        id,
				Params:           opts.Params,
				CacheEvaluations: opts.CacheEvaluations,
			})
			if err != nil {
				errs[i] = fmt.Errorf("algorithm %q: %w", id, err)
				return
			}
			result, err := session.Run(ctx)
			if err != nil {
				errs[i] = fmt.Errorf("algorithm %q: %w", id, err)
				return
			}
			results[i] = result
		})
	}
	p.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
