package basis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SimpleBase represents a single input variable raised to a power: x_i^exp.
//
// It is the leaf node of every basis-function expression tree. The variable
// index selects one column of the input matrix; an out-of-range index is a
// caller contract violation and panics inside the matrix access.
type SimpleBase struct {
	varIdx   int
	exponent float64
}

// NewSimpleBase creates a power term over input variable varIdx.
func NewSimpleBase(varIdx int, exponent float64) *SimpleBase {
	return &SimpleBase{varIdx: varIdx, exponent: exponent}
}

// VarIdx returns the index of the input variable this term selects.
func (b *SimpleBase) VarIdx() int { return b.varIdx }

// Exponent returns the power the selected variable is raised to.
func (b *SimpleBase) Exponent() float64 { return b.exponent }

// Simulate returns x[r][varIdx]^exponent for each row r of x.
func (b *SimpleBase) Simulate(x mat.Matrix) []float64 {
	rows, _ := x.Dims()
	out := make([]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = math.Pow(x.At(r, b.varIdx), b.exponent)
	}

	return out
}

// String renders the term as "x3" when the exponent is 1, else "x3^2".
func (b *SimpleBase) String() string {
	if b.exponent == 1 {
		return fmt.Sprintf("x%d", b.varIdx)
	}

	return fmt.Sprintf("x%d^%g", b.varIdx, b.exponent)
}
