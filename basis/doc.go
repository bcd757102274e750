// Package basis provides the symbolic basis functions used by FFX-style
// regression models.
//
// A basis function is a small expression tree built from three node kinds:
//
//   - SimpleBase: one input variable raised to a power, e.g. x3^2
//   - OperatorBase: a nonlinear operator applied to a SimpleBase, e.g.
//     log10(x1^3) or the hinge max(0,x4^2-3.10)
//   - ProductBase: the elementwise product of two sub-expressions
//
// All three implement the Base interface and can be composed freely through
// ProductBase, yielding trees of arbitrary depth. An external model-fitting
// system owns construction and combination of bases; this package only
// evaluates and renders them.
//
// # Evaluation
//
// Base.Simulate takes a gonum mat.Matrix with one row per sample and one
// column per input variable, and returns one output value per row:
//
//	b := basis.NewOperatorBase(basis.NewSimpleBase(0, 2), basis.OpGTH, 3.1)
//	y := b.Simulate(mat.NewDense(3, 1, []float64{1, 2, 3}))
//	// y = [2.1, 0, 0]
//
// Evaluation is pure: nodes carry no mutable state, so a shared tree may be
// simulated concurrently from multiple goroutines.
//
// Numerically undefined situations never fail evaluation. When the log10
// operator meets a vector containing non-positive, NaN, or infinite values,
// the whole result degrades to +Inf, signalling "this basis function is
// invalid on this dataset" to downstream scoring logic. Everything else
// follows IEEE 754 arithmetic.
//
// # Rendering
//
// Base.String produces a deterministic human-readable formula. Numeric
// literals embedded in formulas (hinge thresholds, model coefficients) are
// rendered with CoefStr, a magnitude-tiered formatter holding roughly three
// significant digits:
//
//	basis.CoefStr(0.000234) // "0.000234"
//	basis.CoefStr(12345.6)  // "1.23e4"
//
// Fingerprint hashes the rendered form with xxHash64, giving callers a cheap
// identity for deduplication and caching.
package basis
