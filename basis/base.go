package basis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ahmadiphy/ffx/internal/hash"
)

// Base is the interface shared by all basis-function expression nodes.
//
// Implementations are immutable after construction and Simulate is a pure
// function of the input matrix, so a single tree may be shared between
// parent expressions and simulated concurrently without synchronization.
type Base interface {
	// Simulate evaluates the basis function over x (rows = samples,
	// columns = input variables) and returns one value per row.
	Simulate(x mat.Matrix) []float64

	// String returns a deterministic human-readable formula for the
	// basis function, e.g. "max(0,x0^2-3.10)".
	String() string
}

// Fingerprint returns a 64-bit identity hash of the basis function,
// computed over its canonical string form.
//
// Two bases with the same structure and parameters share a fingerprint,
// which makes it usable as a deduplication key during model search and as
// a cache key during evaluation.
func Fingerprint(b Base) uint64 {
	return hash.ID(b.String())
}
