package v1alpha1

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadExperiment reads and validates a YAML experiment file.
func LoadExperiment(path string) (*ExperimentSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment file: %w", err)
	}

	var spec ExperimentSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parsing experiment file %s: %w", path, err)
	}
	if err := validateExperiment(&spec); err != nil {
		return nil, fmt.Errorf("invalid experiment %s: %w", path, err)
	}
	return &spec, nil
}

func validateExperiment(spec *ExperimentSpec) error {
	if spec.Problem == "" {
		return fmt.Errorf("problem is required")
	}
	if spec.Dimension < 0 {
		return fmt.Errorf("dimension must not be negative, got %d", spec.Dimension)
	}
	if len(spec.Algorithms) == 0 {
		return fmt.Errorf("at least one algorithm is required")
	}
	for i, run := range spec.Algorithms {
		if run.ID == "" {
			return fmt.Errorf("algorithms[%d]: id is required", i)
		}
	}
	return nil
}
