package model

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/ahmadiphy/ffx/basis"
)

// LinearModel predicts an affine combination of basis functions:
//
//	y = b0 + c1*base1(X) + ... + cn*basen(X)
//
// Coefficients and bases pair up by index. Bases with a zero coefficient
// are carried but never evaluated; an external fitter typically hands over
// the full candidate list with most coefficients zeroed out.
type LinearModel struct {
	intercept float64
	coefs     []float64
	bases     []basis.Base
	numVars   int

	// TestNMSE is the normalized mean squared error on a held-out test
	// set, assigned by the external model evaluator.
	TestNMSE float64
}

// NewLinearModel creates an affine model over numVars input variables.
// It returns an error when the coefficient and base counts differ.
func NewLinearModel(intercept float64, coefs []float64, bases []basis.Base, numVars int) (*LinearModel, error) {
	if len(coefs) != len(bases) {
		return nil, fmt.Errorf("linear model expects one coefficient per base, got %d coefficients and %d bases",
			len(coefs), len(bases))
	}

	m := &LinearModel{
		intercept: intercept,
		coefs:     make([]float64, len(coefs)),
		bases:     make([]basis.Base, len(bases)),
		numVars:   numVars,
	}
	copy(m.coefs, coefs)
	copy(m.bases, bases)

	return m, nil
}

// Intercept returns the constant term b0.
func (m *LinearModel) Intercept() float64 { return m.intercept }

// Coefs returns the coefficient slice, one per base. The returned slice is
// the model's own; callers must not mutate it.
func (m *LinearModel) Coefs() []float64 { return m.coefs }

// Bases returns the basis functions, one per coefficient. The returned
// slice is the model's own; callers must not mutate it.
func (m *LinearModel) Bases() []basis.Base { return m.bases }

// NumVars returns the input dimensionality the model was built for.
func (m *LinearModel) NumVars() int { return m.numVars }

// NumBases returns the number of bases with a nonzero coefficient.
func (m *LinearModel) NumBases() int {
	n := 0
	for _, c := range m.coefs {
		if c != 0 {
			n++
		}
	}

	return n
}

// Simulate evaluates the affine combination row by row. Bases with a zero
// coefficient are skipped entirely, so their numeric quirks (e.g. a log10
// guard firing) cannot leak into the prediction.
func (m *LinearModel) Simulate(x mat.Matrix) []float64 {
	rows, _ := x.Dims()

	out := make([]float64, rows)
	for i := range out {
		out[i] = m.intercept
	}

	for j, c := range m.coefs {
		if c == 0 {
			continue
		}
		yb := m.bases[j].Simulate(x)
		for i, v := range yb {
			out[i] += c * v
		}
	}

	return out
}

// String renders the model as "b0 + c1*base1 + ...", keeping only nonzero
// coefficients. A negative coefficient folds its sign into the preceding
// operator, so "+ -0.5*x1" reads "- 0.5*x1".
func (m *LinearModel) String() string {
	var sb strings.Builder
	sb.WriteString(basis.CoefStr(m.intercept))

	for j, c := range m.coefs {
		if c == 0 {
			continue
		}
		sb.WriteString(" + ")
		sb.WriteString(basis.CoefStr(c))
		sb.WriteString("*")
		sb.WriteString(m.bases[j].String())
	}

	return strings.ReplaceAll(sb.String(), "+ -", "- ")
}
