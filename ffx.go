// Package ffx provides symbolic basis-function evaluation for FFX-style
// regression models: generalized linear models over nonlinear transforms of
// power terms, e.g. max(0,x4^2-3.1) * log10(x1^3).
//
// The heavy lifting lives in the subpackages:
//
//   - basis: the expression-tree node types (power terms, nonlinear
//     operators, products), the coefficient formatter, and fingerprints
//   - model: constant and affine whole-model types plus scoring metrics
//   - eval: a memoizing evaluator over one dataset
//
// This package only adds construction sugar so small expressions read like
// the formulas they represent:
//
//	// max(0, x0^2 - 3.1)
//	b := ffx.HingeGT(ffx.Pow(0, 2), 3.1)
//
//	x := mat.NewDense(3, 1, []float64{1, 2, 3})
//	y := b.Simulate(x) // [2.1, 0, 0]
//	s := b.String()    // "max(0,x0^2-3.10)"
//
// An external fitting or search system owns model construction and
// selection; everything here is evaluation and display.
package ffx

import (
	"github.com/ahmadiphy/ffx/basis"
	"github.com/ahmadiphy/ffx/model"
)

// Var returns the basis function selecting input variable i unchanged
// (exponent 1).
func Var(i int) *basis.SimpleBase {
	return basis.NewSimpleBase(i, 1)
}

// Pow returns the basis function x_i^exponent.
func Pow(i int, exponent float64) *basis.SimpleBase {
	return basis.NewSimpleBase(i, exponent)
}

// Abs wraps a power term with the absolute-value operator.
func Abs(b *basis.SimpleBase) *basis.OperatorBase {
	return basis.NewOperatorBase(b, basis.OpAbs, 0)
}

// Max0 wraps a power term with the positive clip max(v, 0).
func Max0(b *basis.SimpleBase) *basis.OperatorBase {
	return basis.NewOperatorBase(b, basis.OpMax0, 0)
}

// Min0 wraps a power term with the negative clip min(v, 0).
func Min0(b *basis.SimpleBase) *basis.OperatorBase {
	return basis.NewOperatorBase(b, basis.OpMin0, 0)
}

// Log10 wraps a power term with the guarded base-10 logarithm.
func Log10(b *basis.SimpleBase) *basis.OperatorBase {
	return basis.NewOperatorBase(b, basis.OpLog10, 0)
}

// HingeGT wraps a power term with the greater-than hinge
// max(threshold-v, 0).
func HingeGT(b *basis.SimpleBase, threshold float64) *basis.OperatorBase {
	return basis.NewOperatorBase(b, basis.OpGTH, threshold)
}

// HingeLT wraps a power term with the less-than hinge max(v-threshold, 0).
func HingeLT(b *basis.SimpleBase, threshold float64) *basis.OperatorBase {
	return basis.NewOperatorBase(b, basis.OpLTH, threshold)
}

// Mul returns the elementwise product of two basis functions.
func Mul(left, right basis.Base) *basis.ProductBase {
	return basis.NewProductBase(left, right)
}

// Constant returns the degenerate model that predicts c for every sample
// of a numVars-dimensional input.
func Constant(c float64, numVars int) *model.ConstantModel {
	return model.NewConstantModel(c, numVars)
}
