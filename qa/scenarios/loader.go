package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Expected holds the assertions of a scenario. Values are compared
// exactly unless Tolerance is set.
type Expected struct {
	ConfigError bool `yaml:"config_error,omitempty"`
	Periods     int  `yaml:"periods,omitempty"`
	// ReplacementCost and Survival are keyed by period.
	ReplacementCost map[int]float64 `yaml:"replacement_cost,omitempty"`
	Survival        map[int]float64 `yaml:"survival,omitempty"`
	// InteriorReplacementCost applies to every period strictly between the
	// first and the last one.
	InteriorReplacementCost *float64 `yaml:"interior_replacement_cost,omitempty"`
	Warnings                int      `yaml:"warnings,omitempty"`
	Tolerance               float64  `yaml:"tolerance,omitempty"`
}

type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Overrides   map[string]any `yaml:"overrides"`
	Expected    Expected       `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("%s: scenario name is required", path)
	}
	return &sc, nil
}
