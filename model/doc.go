// Package model provides whole-model types built on top of the basis
// package, plus the scoring metrics attached to them.
//
// Two model forms are provided:
//
//   - ConstantModel: ignores its input and returns a constant. This is the
//     degenerate model an external fitter falls back to when no basis
//     function improves on the mean.
//   - LinearModel: an affine combination of basis functions,
//     y = b0 + c1*base1(X) + ... + cn*basen(X). This is the output form of
//     the external fitter.
//
// Both satisfy the Model interface and carry a TestNMSE metadata field that
// the external model evaluator assigns after scoring on held-out data.
// Fitting itself lives outside this module; NMSE and RMSE here only score
// predictions that were already made.
//
// Invalid numeric conditions never fail Simulate. A NaN constant degrades
// to a +Inf output vector, matching the log10 convention in the basis
// package, so downstream scoring can reject the model instead of crashing.
package model
