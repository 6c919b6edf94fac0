package framework

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Clamp limits v to the closed interval [b.L, b.H].
func Clamp(v float64, b Bounds) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}

// Diversity is the mean pairwise Euclidean distance between the genotypes
// of the population. Populations with fewer than two members have zero
// diversity.
func Diversity(pop []Individual) float64 {
	if len(pop) < 2 {
		return 0
	}
	var total float64
	var pairs int
	for i := 0; i < len(pop); i++ {
		for j := i + 1; j < len(pop); j++ {
			total += floats.Distance(pop[i].Genotype, pop[j].Genotype, 2)
			pairs++
		}
	}
	return total / float64(pairs)
}

// AverageFitness is the mean fitness of the population, in whatever
// convention the population's fitness values are stored.
func AverageFitness(pop []Individual) float64 {
	if len(pop) == 0 {
		return 0
	}
	vals := make([]float64, len(pop))
	for i, ind := range pop {
		vals[i] = ind.Fitness
	}
	return stat.Mean(vals, nil)
}

// ClonePopulation deep-copies a population for a snapshot.
func ClonePopulation(pop []Individual) []Individual {
	out := make([]Individual, len(pop))
	for i, ind := range pop {
		out[i] = ind.Clone()
	}
	return out
}

// BestIndex returns the index of the highest-fitness individual. It
// assumes fitness values in the internal maximize convention.
func BestIndex(pop []Individual) int {
	best := 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Fitness > pop[best].Fitness {
			best = i
		}
	}
	return best
}
