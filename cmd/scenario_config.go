package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/apron-sim/apron-sim/sim/workload"
)

// ScenarioConfig is the YAML shape of a scenario preset file.
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario is a named set of generation and run parameters. Zero-valued
// fields leave the corresponding CLI flag untouched.
type Scenario struct {
	ArrivalsPerHour int     `yaml:"arrivals_per_hour"`
	TurnaroundMean  float64 `yaml:"turnaround_mean"`
	TurnaroundMin   int64   `yaml:"turnaround_min"`
	TurnaroundMax   int64   `yaml:"turnaround_max"`
	PLBStands       int     `yaml:"plb_stands"`
	HorizonMinutes  int64   `yaml:"horizon_minutes"`
}

// LoadScenario reads the preset file and returns the named scenario.
func LoadScenario(path string, name string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	scenario, ok := cfg.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in %s", name, path)
	}
	return &scenario, nil
}

// apply overrides the generator's parameters with the scenario's non-zero
// fields.
func (s *Scenario) apply(g *workload.Generator) {
	if s.ArrivalsPerHour > 0 {
		g.ArrivalsPerHour = s.ArrivalsPerHour
	}
	if s.TurnaroundMean > 0 {
		g.TurnaroundMean = s.TurnaroundMean
	}
	if s.TurnaroundMin > 0 {
		g.TurnaroundMin = s.TurnaroundMin
	}
	if s.TurnaroundMax > 0 {
		g.TurnaroundMax = s.TurnaroundMax
	}
}
