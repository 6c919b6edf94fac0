// Package algorithms implements the six optimization engines. Each engine
// is an independent type satisfying framework.Algorithm; they share the
// contract and a handful of free helpers, nothing more.
package algorithms

import (
	"math/rand"
	"sort"
	"time"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

// Registry ids.
const (
	GAID  = "ga"
	ESID  = "es"
	DEID  = "de"
	PSOID = "pso"
	ABCID = "abc"
	SAID  = "sa"
)

// constructors maps ids to engine constructors. The table is fixed at
// compile time.
var constructors = map[string]func(framework.Params) framework.Algorithm{
	GAID:  func(p framework.Params) framework.Algorithm { return NewGA(p) },
	ESID:  func(p framework.Params) framework.Algorithm { return NewES(p) },
	DEID:  func(p framework.Params) framework.Algorithm { return NewDE(p) },
	PSOID: func(p framework.Params) framework.Algorithm { return NewPSO(p) },
	ABCID: func(p framework.Params) framework.Algorithm { return NewABC(p) },
	SAID:  func(p framework.Params) framework.Algorithm { return NewSA(p) },
}

// New builds the engine registered under id with the given parameters.
// The second return is false for unknown ids.
func New(id string, params framework.Params) (framework.Algorithm, bool) {
	ctor, ok := constructors[id]
	if !ok {
		return nil, false
	}
	return ctor(params), true
}

// IDs lists the registered engine ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(constructors))
	for id := range constructors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// newRNG builds the engine's private random source. Seed 0 picks a
// time-based seed.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// signedFitness evaluates x and negates minimization values, so engines
// that compare on the internal maximize scale can use > uniformly.
func signedFitness(p framework.Problem, x []float64) (float64, error) {
	v, err := p.Evaluate(x)
	if err != nil {
		return 0, err
	}
	if p.Minimize() {
		return -v, nil
	}
	return v, nil
}

// diversityThreshold resolves the configured stagnation threshold, falling
// back to the engine default.
func diversityThreshold(p framework.Params, def float64) float64 {
	if p.DiversityThreshold > 0 {
		return p.DiversityThreshold
	}
	return def
}
