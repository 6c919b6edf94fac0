package framework

import (
	"encoding/binary"
	"math"

	gocache "github.com/patrickmn/go-cache"
)

// CachedProblem decorates a Problem with an evaluation memo, so repeated
// evaluations of identical genotypes are served from memory. Like the
// algorithms themselves it expects a single caller.
type CachedProblem struct {
	Problem

	memo    *gocache.Cache
	lookups int64
	hits    int64
}

func NewCachedProblem(p Problem) *CachedProblem {
	return &CachedProblem{
		Problem: p,
		memo:    gocache.New(gocache.NoExpiration, 0),
	}
}

func (c *CachedProblem) Evaluate(x []float64) (float64, error) {
	c.lookups++
	key := genotypeKey(x)
	if v, ok := c.memo.Get(key); ok {
		c.hits++
		return v.(float64), nil
	}
	v, err := c.Problem.Evaluate(x)
	if err != nil {
		return 0, err
	}
	c.memo.Set(key, v, gocache.NoExpiration)
	return v, nil
}

// Lookups counts Evaluate calls since construction.
func (c *CachedProblem) Lookups() int64 {
	return c.lookups
}

// Hits counts lookups answered from the memo.
func (c *CachedProblem) Hits() int64 {
	return c.hits
}

func genotypeKey(x []float64) string {
	buf := make([]byte, 8*len(x))
	for i, v := range x {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return string(buf)
}
