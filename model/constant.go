package model

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ahmadiphy/ffx/basis"
)

// ConstantModel ignores its input and predicts a single constant value.
//
// It has no basis-function children. A NaN constant marks the model as
// invalid: Simulate then returns +Inf for every row, pushing the rejection
// decision to downstream scoring.
type ConstantModel struct {
	constant float64
	numVars  int

	// TestNMSE is the normalized mean squared error on a held-out test
	// set. It is assigned by the external model evaluator after
	// construction, not computed here.
	TestNMSE float64
}

// NewConstantModel creates a constant model over numVars input variables.
func NewConstantModel(constant float64, numVars int) *ConstantModel {
	return &ConstantModel{constant: constant, numVars: numVars}
}

// Constant returns the predicted constant.
func (m *ConstantModel) Constant() float64 { return m.constant }

// NumVars returns the input dimensionality the model was built for.
func (m *ConstantModel) NumVars() int { return m.numVars }

// NumBases returns 0: the constant model has no basis functions.
func (m *ConstantModel) NumBases() int { return 0 }

// Simulate returns the constant repeated once per row of x, or a +Inf
// vector when the constant is NaN.
func (m *ConstantModel) Simulate(x mat.Matrix) []float64 {
	rows, _ := x.Dims()

	fill := m.constant
	if math.IsNaN(fill) {
		fill = math.Inf(1)
	}

	out := make([]float64, rows)
	for i := range out {
		out[i] = fill
	}

	return out
}

// String renders the constant with basis.CoefStr.
func (m *ConstantModel) String() string {
	return basis.CoefStr(m.constant)
}
