package criteria

import "fmt"

// Criterion is a named decision rule reducing a payoff matrix to a scalar.
// Implementations are small stateless values; HurwiczCriterion carries its
// pessimism coefficient.
type Criterion interface {
	Name() string
	Evaluate(m Matrix) (float64, error)
}

// MinimaxCriterion selects the best worst-case payoff.
type MinimaxCriterion struct{}

func (MinimaxCriterion) Name() string { return "minimax" }

func (MinimaxCriterion) Evaluate(m Matrix) (float64, error) { return Minimax(m) }

// MaximaxCriterion selects the best best-case payoff.
type MaximaxCriterion struct{}

func (MaximaxCriterion) Name() string { return "maximax" }

func (MaximaxCriterion) Evaluate(m Matrix) (float64, error) { return Maximax(m) }

// SavageCriterion selects the smallest worst-case regret.
type SavageCriterion struct{}

func (SavageCriterion) Name() string { return "savage" }

func (SavageCriterion) Evaluate(m Matrix) (float64, error) { return Savage(m) }

// HurwiczCriterion blends each strategy's worst and best payoffs with the
// configured pessimism coefficient.
type HurwiczCriterion struct {
	Coefficient float64
}

func (HurwiczCriterion) Name() string { return "hurwicz" }

func (c HurwiczCriterion) Evaluate(m Matrix) (float64, error) { return Hurwicz(m, c.Coefficient) }

// ValidCriteria is the set of recognized criterion names.
// Shared by IsValidCriterion and NewCriterion to avoid duplication.
var ValidCriteria = map[string]bool{"minimax": true, "maximax": true, "savage": true, "hurwicz": true}

// IsValidCriterion reports whether name is a recognized criterion name.
func IsValidCriterion(name string) bool {
	return ValidCriteria[name]
}

// NewCriterion creates a Criterion by name.
// Valid names: "minimax", "maximax", "savage", "hurwicz". The coefficient
// applies to "hurwicz" only and is ignored otherwise.
// Panics on unrecognized names; callers guard with IsValidCriterion.
func NewCriterion(name string, coefficient float64) Criterion {
	if !IsValidCriterion(name) {
		panic(fmt.Sprintf("unknown criterion %q; valid criteria: [minimax, maximax, savage, hurwicz]", name))
	}
	switch name {
	case "minimax":
		return MinimaxCriterion{}
	case "maximax":
		return MaximaxCriterion{}
	case "savage":
		return SavageCriterion{}
	case "hurwicz":
		return HurwiczCriterion{Coefficient: coefficient}
	default:
		panic(fmt.Sprintf("unhandled criterion %q", name))
	}
}
