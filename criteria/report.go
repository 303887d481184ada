package criteria

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
)

// StrategyStats is the per-strategy breakdown behind the criterion values.
type StrategyStats struct {
	Index     int     // row index in the payoff matrix
	Worst     float64 // row minimum (the pessimist's payoff)
	Best      float64 // row maximum (the optimist's payoff)
	MaxRegret float64 // worst opportunity loss across states
	Weighted  float64 // Hurwicz blend at the report's coefficient
}

// Report aggregates every criterion over one payoff matrix, along with the
// index of the first strategy attaining each criterion's optimum. Ties
// break to the lowest row index.
type Report struct {
	Coefficient float64 // pessimism coefficient used for the Hurwicz values

	Minimax float64
	Maximax float64
	Savage  float64
	Hurwicz float64

	Strategies []StrategyStats

	MinimaxChoice int // strategy achieving Minimax
	SavageChoice  int // strategy achieving Savage
	HurwiczChoice int // strategy achieving Hurwicz
}

// Evaluate computes all criteria and the per-strategy breakdown in a single
// pass over the matrix plus one regret pass. The input matrix is unchanged.
// Each scalar equals what the corresponding standalone function returns for
// the same inputs.
func Evaluate(m Matrix, coefficient float64) (*Report, error) {
	regret, err := RegretMatrix(m)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Coefficient: coefficient,
		Minimax:     math.Inf(-1),
		Maximax:     math.Inf(-1),
		Savage:      math.Inf(1),
		Hurwicz:     math.Inf(-1),
		Strategies:  make([]StrategyStats, len(m)),
	}
	for i, row := range m {
		s := StrategyStats{
			Index:     i,
			Worst:     floats.Min(row),
			Best:      floats.Max(row),
			MaxRegret: floats.Max(regret[i]),
		}
		s.Weighted = coefficient*s.Worst + (1-coefficient)*s.Best
		r.Strategies[i] = s

		// Strict comparisons keep the first strategy on ties.
		if s.Worst > r.Minimax {
			r.Minimax = s.Worst
			r.MinimaxChoice = i
		}
		if s.Best > r.Maximax {
			r.Maximax = s.Best
		}
		if s.MaxRegret < r.Savage {
			r.Savage = s.MaxRegret
			r.SavageChoice = i
		}
		if s.Weighted > r.Hurwicz {
			r.Hurwicz = s.Weighted
			r.HurwiczChoice = i
		}
	}
	return r, nil
}

// Print writes the per-strategy table and the recommended strategies to w.
// Values are shown with six significant digits, matching the CLI output.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Strategy Breakdown ===")
	fmt.Fprintf(w, "%-10s %12s %12s %12s %12s\n", "strategy", "worst", "best", "max-regret", "weighted")
	for _, s := range r.Strategies {
		fmt.Fprintf(w, "%-10d %12.6g %12.6g %12.6g %12.6g\n", s.Index, s.Worst, s.Best, s.MaxRegret, s.Weighted)
	}
	fmt.Fprintf(w, "Minimax choice : strategy %d (%.6g)\n", r.MinimaxChoice, r.Minimax)
	fmt.Fprintf(w, "Savage choice  : strategy %d (%.6g)\n", r.SavageChoice, r.Savage)
	fmt.Fprintf(w, "Hurwicz choice : strategy %d (%.6g at coefficient %.6g)\n", r.HurwiczChoice, r.Hurwicz, r.Coefficient)
}
