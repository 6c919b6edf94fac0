// Package benchmarks provides the classic continuous test functions the
// engines are exercised against. Every function is a pure, stateless
// minimization map over a bounded box domain. For background on the suite
// see https://www.sfu.ca/~ssurjano/optimization.html
package benchmarks

import (
	"sort"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

// Registry ids.
const (
	SphereID      = "sphere"
	RastriginID   = "rastrigin"
	RosenbrockID  = "rosenbrock"
	AckleyID      = "ackley"
	Schwefel222ID = "schwefel222"
	Schwefel12ID  = "schwefel12"
	StepID        = "step"
)

// constructors maps ids to problem constructors. The table is fixed at
// compile time.
var constructors = map[string]func(int) framework.Problem{
	SphereID:      func(dim int) framework.Problem { return NewSphere(dim) },
	RastriginID:   func(dim int) framework.Problem { return NewRastrigin(dim) },
	RosenbrockID:  func(dim int) framework.Problem { return NewRosenbrock(dim) },
	AckleyID:      func(dim int) framework.Problem { return NewAckley(dim) },
	Schwefel222ID: func(dim int) framework.Problem { return NewSchwefel222(dim) },
	Schwefel12ID:  func(dim int) framework.Problem { return NewSchwefel12(dim) },
	StepID:        func(dim int) framework.Problem { return NewStep(dim) },
}

// New builds the benchmark registered under id with the given dimension.
// The second return is false for unknown ids.
func New(id string, dim int) (framework.Problem, bool) {
	ctor, ok := constructors[id]
	if !ok {
		return nil, false
	}
	return ctor(dim), true
}

// IDs lists the registered benchmark ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(constructors))
	for id := range constructors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// problem carries the pieces every benchmark shares: a display name and a
// bounded minimization domain.
type problem struct {
	framework.Domain
	name string
}

func newProblem(name string, dim int, low, high float64) problem {
	return problem{
		Domain: framework.NewDomain(dim, low, high),
		name:   name,
	}
}

func (p problem) Name() string {
	return p.name
}

func (p problem) Minimize() bool {
	return true
}
