package criteria

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named payoff study, loadable from a YAML file:
//
//	name: reference
//	profits:
//	  - [15, 10, 0, -6, 17]
//	  - [3, 14, 8, 9, 2]
//	coefficient: 0.8
//
// A nil Coefficient means "not set in YAML"; the caller's default applies.
type Scenario struct {
	Name        string      `yaml:"name"`
	Profits     [][]float64 `yaml:"profits"`
	Coefficient *float64    `yaml:"coefficient"`
}

// LoadScenario reads and parses a YAML scenario file.
// Parsing is strict: unknown keys are errors, so typos surface immediately.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// Matrix returns the payoff table as the core Matrix type. The view shares
// storage with the scenario; criteria never mutate it.
func (s *Scenario) Matrix() Matrix {
	return Matrix(s.Profits)
}

// Validate checks that the payoff table is rectangular, every entry is
// finite, and the coefficient, when set, is finite and within [0, 1].
// The core Hurwicz function accepts any real coefficient; this stricter
// contract applies where user input enters the system.
func (s *Scenario) Validate() error {
	if err := s.Matrix().Validate(); err != nil {
		return err
	}
	for i, row := range s.Profits {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("profits[%d][%d] must be a finite number, got %f", i, j, v)
			}
		}
	}
	if s.Coefficient != nil {
		c := *s.Coefficient
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("coefficient must be a finite number, got %f", c)
		}
		if c < 0 || c > 1 {
			return fmt.Errorf("coefficient must be within [0, 1], got %g", c)
		}
	}
	return nil
}

// ReferenceScenario returns the built-in demonstration study: four
// strategies against five states, with pessimism coefficient 0.8. It is
// what the CLI evaluates when no scenario file is given.
func ReferenceScenario() *Scenario {
	coefficient := 0.8
	return &Scenario{
		Name: "reference",
		Profits: [][]float64{
			{15, 10, 0, -6, 17},
			{3, 14, 8, 9, 2},
			{1, 5, 14, 20, -3},
			{7, 19, 10, 2, 0},
		},
		Coefficient: &coefficient,
	}
}
