package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ahmadiphy/ffx/basis"
)

func TestNewLinearModelMismatch(t *testing.T) {
	_, err := NewLinearModel(1.0, []float64{1, 2}, []basis.Base{basis.NewSimpleBase(0, 1)}, 1)

	require.Error(t, err)
	require.Contains(t, err.Error(), "one coefficient per base")
}

func TestLinearModelSimulate(t *testing.T) {
	// y = 1 + 2*x0 + 0.5*x1^2
	m, err := NewLinearModel(1.0,
		[]float64{2, 0.5},
		[]basis.Base{basis.NewSimpleBase(0, 1), basis.NewSimpleBase(1, 2)},
		2)
	require.NoError(t, err)

	x := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	y := m.Simulate(x)

	require.Len(t, y, 2)
	require.InDelta(t, 1+2*1+0.5*4, y[0], 1e-12)
	require.InDelta(t, 1+2*3+0.5*16, y[1], 1e-12)
}

// Zero-coefficient bases are skipped: they contribute nothing and their
// numeric quirks never reach the prediction.
func TestLinearModelSkipsZeroCoefs(t *testing.T) {
	// The log10 base would degrade to +Inf on this data, but its
	// coefficient is zero.
	bad := basis.NewOperatorBase(basis.NewSimpleBase(0, 1), basis.OpLog10, 0)
	m, err := NewLinearModel(2.0,
		[]float64{0, 3},
		[]basis.Base{bad, basis.NewSimpleBase(0, 1)},
		1)
	require.NoError(t, err)

	x := mat.NewDense(2, 1, []float64{0, -1})
	y := m.Simulate(x)

	require.Equal(t, []float64{2, -1}, y)
	require.Equal(t, 1, m.NumBases())
}

func TestLinearModelNumBases(t *testing.T) {
	bases := []basis.Base{
		basis.NewSimpleBase(0, 1),
		basis.NewSimpleBase(1, 1),
		basis.NewSimpleBase(2, 1),
	}

	m, err := NewLinearModel(0, []float64{1.5, 0, -2}, bases, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.NumBases())
}

func TestLinearModelString(t *testing.T) {
	bases := []basis.Base{
		basis.NewSimpleBase(0, 1),
		basis.NewSimpleBase(1, 2),
		basis.NewSimpleBase(2, 1),
	}

	m, err := NewLinearModel(1.0, []float64{2, 0, -0.5}, bases, 3)
	require.NoError(t, err)

	// Zero coefficient dropped; negative coefficient folds its sign.
	require.Equal(t, "1.00 + 2.00*x0 - 0.500*x2", m.String())
}

func TestLinearModelConstructorCopies(t *testing.T) {
	coefs := []float64{1}
	bases := []basis.Base{basis.NewSimpleBase(0, 1)}

	m, err := NewLinearModel(0, coefs, bases, 1)
	require.NoError(t, err)

	coefs[0] = 99
	require.Equal(t, []float64{1}, m.Coefs())
}

func TestLinearModelAccessors(t *testing.T) {
	m, err := NewLinearModel(2.5, []float64{1}, []basis.Base{basis.NewSimpleBase(0, 1)}, 4)
	require.NoError(t, err)

	require.Equal(t, 2.5, m.Intercept())
	require.Equal(t, 4, m.NumVars())
	require.Len(t, m.Bases(), 1)

	m.TestNMSE = 0.1
	require.Equal(t, 0.1, m.TestNMSE)
}
