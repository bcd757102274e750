package basis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSimpleBaseSimulate(t *testing.T) {
	x := mat.NewDense(1, 2, []float64{2, 3})

	b := NewSimpleBase(1, 2)
	require.Equal(t, []float64{9.0}, b.Simulate(x))

	b = NewSimpleBase(0, 3)
	require.Equal(t, []float64{8.0}, b.Simulate(x))
}

func TestSimpleBaseSimulateMultiRow(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})

	b := NewSimpleBase(0, 2)
	y := b.Simulate(x)

	require.Len(t, y, 3)
	require.Equal(t, []float64{1, 4, 9}, y)
}

func TestSimpleBaseFractionalExponent(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{4, -4})

	b := NewSimpleBase(0, 0.5)
	y := b.Simulate(x)

	require.Equal(t, 2.0, y[0])
	// math.Pow of a negative base with fractional exponent is NaN and
	// passes through untouched.
	require.True(t, math.IsNaN(y[1]))
}

func TestSimpleBaseString(t *testing.T) {
	tests := []struct {
		name     string
		varIdx   int
		exponent float64
		expected string
	}{
		{"unit exponent omitted", 0, 1, "x0"},
		{"square", 1, 2, "x1^2"},
		{"fractional", 4, 0.5, "x4^0.5"},
		{"negative", 2, -1, "x2^-1"},
		{"high index", 12, 3, "x12^3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewSimpleBase(tt.varIdx, tt.exponent)
			require.Equal(t, tt.expected, b.String())
		})
	}
}

func TestSimpleBaseAccessors(t *testing.T) {
	b := NewSimpleBase(3, 2.5)

	require.Equal(t, 3, b.VarIdx())
	require.Equal(t, 2.5, b.Exponent())
}

func TestSimpleBaseOutOfRangePanics(t *testing.T) {
	x := mat.NewDense(1, 2, []float64{2, 3})

	b := NewSimpleBase(5, 1)
	require.Panics(t, func() { b.Simulate(x) })
}
