package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCriterion_ByName(t *testing.T) {
	tests := []struct {
		name string
		want Criterion
	}{
		{name: "minimax", want: MinimaxCriterion{}},
		{name: "maximax", want: MaximaxCriterion{}},
		{name: "savage", want: SavageCriterion{}},
		{name: "hurwicz", want: HurwiczCriterion{Coefficient: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCriterion(tt.name, 0.8)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.Name())
		})
	}
}

func TestNewCriterion_PanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() { NewCriterion("laplace", 0.5) })
	assert.Panics(t, func() { NewCriterion("", 0.5) })
}

func TestIsValidCriterion(t *testing.T) {
	for name := range ValidCriteria {
		assert.True(t, IsValidCriterion(name), "expected %q to be valid", name)
	}
	assert.False(t, IsValidCriterion("laplace"))
	assert.False(t, IsValidCriterion(""))
}

func TestCriteria_MatchStandaloneFunctions(t *testing.T) {
	matrix := referenceMatrix()

	tests := []struct {
		name string
		want func(Matrix) (float64, error)
	}{
		{name: "minimax", want: Minimax},
		{name: "maximax", want: Maximax},
		{name: "savage", want: Savage},
		{name: "hurwicz", want: func(m Matrix) (float64, error) { return Hurwicz(m, 0.8) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := tt.want(matrix)
			require.NoError(t, err)

			got, err := NewCriterion(tt.name, 0.8).Evaluate(matrix)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCriterion_PropagatesShapeErrors(t *testing.T) {
	for name := range ValidCriteria {
		_, err := NewCriterion(name, 0.8).Evaluate(Matrix{})
		require.Error(t, err, "criterion %q", name)
		assert.ErrorIs(t, err, ErrInvalidMatrix)
	}
}
