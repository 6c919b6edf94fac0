// Package v1alpha1 defines the descriptive configuration surface: the
// algorithm and problem catalogs surfaced to parameter pickers, and the
// experiment file format the command line runner consumes. The engines
// read none of this beyond default values.
package v1alpha1

import (
	"github.com/evolab/evolve/pkg/evolution/framework"
)

// ParameterKind classifies how a parameter value should be edited.
type ParameterKind string

const (
	// ParameterInt is a whole-number parameter.
	ParameterInt ParameterKind = "int"

	// ParameterFloat is a real-valued parameter.
	ParameterFloat ParameterKind = "float"

	// ParameterChoice is a parameter picked from a fixed set of strings.
	ParameterChoice ParameterKind = "choice"

	// ParameterBool is a flag parameter.
	ParameterBool ParameterKind = "bool"
)

// VisibleWhen gates a parameter on another parameter holding a value.
type VisibleWhen struct {
	// Parameter is the name of the controlling parameter.
	Parameter string `json:"parameter"`

	// Equals is the value the controlling parameter must hold.
	Equals string `json:"equals"`
}

// ParameterSpec describes one tunable of an algorithm.
type ParameterSpec struct {
	// Name matches the corresponding Params field in lowerCamel form.
	Name string `json:"name"`

	Kind ParameterKind `json:"kind"`

	// Default carries the numeric default for int/float parameters;
	// DefaultChoice carries the default for choice parameters.
	Default       float64 `json:"default,omitempty"`
	DefaultChoice string  `json:"defaultChoice,omitempty"`

	// Min and Max bound numeric parameters when set.
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`

	// Choices enumerates the valid values of a choice parameter.
	Choices []string `json:"choices,omitempty"`

	// VisibleWhen hides the parameter unless the condition holds.
	VisibleWhen *VisibleWhen `json:"visibleWhen,omitempty"`

	Description string `json:"description,omitempty"`
}

// AlgorithmSpec describes one engine for catalog listings.
type AlgorithmSpec struct {
	// ID is the registry id the engine is constructed under.
	ID string `json:"id"`

	DisplayName string `json:"displayName"`

	Parameters []ParameterSpec `json:"parameters"`
}

// ProblemSpec describes one benchmark for catalog listings.
type ProblemSpec struct {
	// ID is the registry id the benchmark is constructed under.
	ID string `json:"id"`

	DisplayName string `json:"displayName"`

	// Dimension is the suggested genotype length.
	Dimension int `json:"dimension"`

	// LowerBound and UpperBound are the per-dimension box bounds.
	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`
}

// AlgorithmRun names an engine and its parameter overrides within an
// experiment.
type AlgorithmRun struct {
	ID     string           `json:"id"`
	Params framework.Params `json:"params,omitempty"`
}

// ExperimentSpec is the on-disk experiment file format.
type ExperimentSpec struct {
	// Problem is the benchmark id; Dimension defaults to 2 when omitted.
	Problem   string `json:"problem"`
	Dimension int    `json:"dimension,omitempty"`

	// Seed applies to every run that does not set its own.
	Seed int64 `json:"seed,omitempty"`

	Algorithms []AlgorithmRun `json:"algorithms"`

	// PlotDir enables history chart rendering into the directory.
	PlotDir string `json:"plotDir,omitempty"`

	// CacheEvaluations turns on evaluation memoization for every run.
	CacheEvaluations bool `json:"cacheEvaluations,omitempty"`
}
