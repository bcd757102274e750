package basis

import "gonum.org/v1/gonum/mat"

// ProductBase represents the elementwise product of two sub-expressions.
//
// Either child may itself be a ProductBase, so products nest into trees of
// arbitrary depth. The tree is built bottom-up once and never mutated; no
// cycles are possible.
type ProductBase struct {
	left  Base
	right Base
}

// NewProductBase creates the product of two basis functions.
func NewProductBase(left, right Base) *ProductBase {
	return &ProductBase{left: left, right: right}
}

// Left returns the left child expression.
func (b *ProductBase) Left() Base { return b.left }

// Right returns the right child expression.
func (b *ProductBase) Right() Base { return b.right }

// Simulate multiplies the children's outputs elementwise. NaN and infinity
// values pass through the multiplication per IEEE 754 semantics.
func (b *ProductBase) Simulate(x mat.Matrix) []float64 {
	yl := b.left.Simulate(x)
	yr := b.right.Simulate(x)

	out := make([]float64, len(yl))
	for i := range out {
		out[i] = yl[i] * yr[i]
	}

	return out
}

// String renders the product as "<left> * <right>".
func (b *ProductBase) String() string {
	return b.left.String() + " * " + b.right.String()
}
