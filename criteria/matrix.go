package criteria

import (
	"errors"
	"fmt"
	"strings"
)

// Matrix is a payoff table: one row per candidate strategy, one column per
// state of nature. A valid Matrix is rectangular with at least one row and
// one column. Criteria treat it as read-only.
type Matrix [][]float64

// ErrInvalidMatrix is the sentinel for every payoff matrix shape violation:
// zero rows, a row with zero columns, or rows of differing lengths. All
// criteria validate identically and report failures matching this sentinel
// via errors.Is before any computation proceeds.
var ErrInvalidMatrix = errors.New("criteria: invalid payoff matrix")

// Rows returns the number of strategies in the matrix.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of states, or 0 for a matrix with no rows.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate checks the rectangular-shape invariant: at least one row, at
// least one column, and all rows of equal length. It returns nil for a
// valid matrix, or an error matching ErrInvalidMatrix that names the first
// violation found.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("%w: no strategies (zero rows)", ErrInvalidMatrix)
	}
	cols := len(m[0])
	if cols == 0 {
		return fmt.Errorf("%w: no states (row 0 has zero columns)", ErrInvalidMatrix)
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%w: ragged rows (row %d has %d columns, want %d)", ErrInvalidMatrix, i, len(row), cols)
		}
	}
	return nil
}

// Clone returns a deep copy sharing no backing storage with m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// String renders one bracketed row per line.
func (m Matrix) String() string {
	var b strings.Builder
	for _, row := range m {
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}
	return b.String()
}
