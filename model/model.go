package model

import "gonum.org/v1/gonum/mat"

// Model is the interface shared by all whole-model types.
//
// Like basis.Base, implementations evaluate purely: Simulate never mutates
// the model, so a shared model may be simulated concurrently. The TestNMSE
// metadata field on the concrete types is the sole mutable state and is
// owned by the external model evaluator.
type Model interface {
	// Simulate evaluates the model over x (rows = samples, columns =
	// input variables) and returns one predicted value per row.
	Simulate(x mat.Matrix) []float64

	// NumBases returns the number of basis functions the model actually
	// uses. Zero for the constant model.
	NumBases() int

	// String returns a deterministic human-readable formula, with
	// coefficients rendered by basis.CoefStr.
	String() string
}
