package criteria

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Minimax computes the pessimist's criterion: the payoff of the strategy
// whose worst state is least bad.
//
//	Minimax(m) = max over rows of (min over that row)
//
// A single-row matrix yields that row's minimum; a single-column matrix
// yields the maximum element.
func Minimax(m Matrix) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	best := math.Inf(-1)
	for _, row := range m {
		if worst := floats.Min(row); worst > best {
			best = worst
		}
	}
	return best, nil
}

// Maximax computes the optimist's criterion: the single best payoff any
// strategy can reach in any state.
//
//	Maximax(m) = max over rows of (max over that row)
func Maximax(m Matrix) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	best := math.Inf(-1)
	for _, row := range m {
		if v := floats.Max(row); v > best {
			best = v
		}
	}
	return best, nil
}

// Savage computes the regret criterion: the worst-case opportunity loss of
// the strategy that minimizes it.
//
//	Savage(m) = min over rows of (max over that row of regret)
//
// where regret is defined by RegretMatrix. The computation works on a
// private regret table; the caller's matrix is unchanged. A column of equal
// payoffs contributes zero regret everywhere, so a 1x1 matrix yields 0.
func Savage(m Matrix) (float64, error) {
	regret, err := RegretMatrix(m)
	if err != nil {
		return 0, err
	}
	best := math.Inf(1)
	for _, row := range regret {
		if worst := floats.Max(row); worst < best {
			best = worst
		}
	}
	return best, nil
}

// RegretMatrix returns the opportunity-loss table derived from m: each
// entry becomes its column's maximum minus the entry, i.e. how much payoff
// the strategy gives up against the best response to that state. The result
// is a fresh matrix of the same shape; m is not modified.
func RegretMatrix(m Matrix) (Matrix, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// Column maxima in one row-major pass, seeded from the first row.
	colMax := append([]float64(nil), m[0]...)
	for _, row := range m[1:] {
		for j, v := range row {
			if v > colMax[j] {
				colMax[j] = v
			}
		}
	}

	regret := make(Matrix, len(m))
	for i, row := range m {
		regret[i] = make([]float64, len(row))
		for j, v := range row {
			regret[i][j] = colMax[j] - v
		}
	}
	return regret, nil
}

// Hurwicz computes the weighted-pessimism criterion: each strategy scores
//
//	coefficient*(row minimum) + (1-coefficient)*(row maximum)
//
// and the best score across strategies wins. A coefficient of 1 reduces to
// Minimax, 0 to Maximax. The conventional domain is [0, 1]; values outside
// it are not rejected here and produce the same extrapolated blend.
// Boundaries that take user input enforce the range instead, as
// Scenario.Validate does.
func Hurwicz(m Matrix, coefficient float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	best := math.Inf(-1)
	for _, row := range m {
		blend := coefficient*floats.Min(row) + (1-coefficient)*floats.Max(row)
		if blend > best {
			best = blend
		}
	}
	return best, nil
}
