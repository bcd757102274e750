package basis

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// OpKind identifies the nonlinear operator applied by an OperatorBase.
type OpKind int

const (
	// OpAbs is the absolute value: abs(v).
	OpAbs OpKind = iota
	// OpMax0 clips negatives to zero: max(v, 0).
	OpMax0
	// OpMin0 clips positives to zero: min(v, 0).
	OpMin0
	// OpLog10 is the base-10 logarithm, with an all-or-nothing guard for
	// inputs on which the logarithm is undefined.
	OpLog10
	// OpGTH is the greater-than hinge: max(threshold-v, 0). It activates
	// positively when v is below the threshold.
	OpGTH
	// OpLTH is the less-than hinge: max(v-threshold, 0). It activates
	// positively when v is above the threshold.
	OpLTH
)

// opKindNames maps OpKind to their string representations.
var opKindNames = map[OpKind]string{
	OpAbs:   "abs",
	OpMax0:  "max0",
	OpMin0:  "min0",
	OpLog10: "log10",
	OpGTH:   "gth",
	OpLTH:   "lth",
}

// String returns the string representation of the operator kind.
func (op OpKind) String() string {
	if name, exists := opKindNames[op]; exists {
		return name
	}

	return "unknown"
}

// opKindFromString maps string names to OpKind.
var opKindFromString = map[string]OpKind{
	"abs":   OpAbs,
	"max0":  OpMax0,
	"min0":  OpMin0,
	"log10": OpLog10,
	"gth":   OpGTH,
	"lth":   OpLTH,
}

// OpKindFromString returns the OpKind for a given string name.
// Returns OpKind(-1) for unknown names.
func OpKindFromString(name string) OpKind {
	if op, exists := opKindFromString[strings.ToLower(name)]; exists {
		return op
	}

	return OpKind(-1) // Invalid OpKind
}

// OperatorBase applies one nonlinear operator to a power term.
//
// The threshold is interpreted only by the hinge operators OpGTH and OpLTH
// and ignored by the rest.
type OperatorBase struct {
	inner     *SimpleBase
	op        OpKind
	threshold float64
}

// NewOperatorBase wraps the given power term with a nonlinear operator.
func NewOperatorBase(inner *SimpleBase, op OpKind, threshold float64) *OperatorBase {
	return &OperatorBase{inner: inner, op: op, threshold: threshold}
}

// Inner returns the wrapped power term.
func (b *OperatorBase) Inner() *SimpleBase { return b.inner }

// Op returns the operator kind.
func (b *OperatorBase) Op() OpKind { return b.op }

// Threshold returns the hinge threshold. Meaningful only when Op is OpGTH
// or OpLTH.
func (b *OperatorBase) Threshold() float64 { return b.threshold }

// Simulate evaluates the wrapped term over x, then applies the operator
// elementwise.
//
// OpLog10 inspects the entire linear vector before deciding: if any element
// is NaN, the minimum is non-positive, or the maximum is infinite, the
// logarithm is considered undefined for this input and the whole result is
// a +Inf vector of the same length. There is no per-element masking.
//
// An operator kind outside the six defined constants indicates a
// construction-time programming error and panics.
func (b *OperatorBase) Simulate(x mat.Matrix) []float64 {
	lin := b.inner.Simulate(x)
	out := make([]float64, len(lin))

	switch b.op {
	case OpAbs:
		for i, v := range lin {
			out[i] = math.Abs(v)
		}
	case OpMax0:
		for i, v := range lin {
			out[i] = math.Max(v, 0)
		}
	case OpMin0:
		for i, v := range lin {
			out[i] = math.Min(v, 0)
		}
	case OpLog10:
		if !log10Defined(lin) {
			for i := range out {
				out[i] = math.Inf(1)
			}

			return out
		}
		for i, v := range lin {
			out[i] = math.Log10(v)
		}
	case OpGTH:
		for i, v := range lin {
			out[i] = math.Max(b.threshold-v, 0)
		}
	case OpLTH:
		for i, v := range lin {
			out[i] = math.Max(v-b.threshold, 0)
		}
	default:
		panic(fmt.Sprintf("basis: invalid operator kind %d", int(b.op)))
	}

	return out
}

// log10Defined reports whether log10 is defined on every element of lin.
// Any NaN poisons the whole vector, as do non-positive or infinite extremes.
func log10Defined(lin []float64) bool {
	mn := math.Inf(1)
	mx := math.Inf(-1)
	for _, v := range lin {
		if math.IsNaN(v) {
			return false
		}
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}

	return mn > 0 && !math.IsInf(mx, 0)
}

// String renders the operator applied to the wrapped term, with hinge
// thresholds formatted by CoefStr.
//
// On the greater-than side a negative threshold would render as a double
// minus ("x0--3.10"); the "--" is collapsed to "+" so the formula reads as
// an addition.
func (b *OperatorBase) String() string {
	inner := b.inner.String()

	switch b.op {
	case OpAbs:
		return "abs(" + inner + ")"
	case OpMax0:
		return "max(0, " + inner + ")"
	case OpMin0:
		return "min(0, " + inner + ")"
	case OpLog10:
		return "log10(" + inner + ")"
	case OpGTH:
		s := "max(0," + inner + "-" + CoefStr(b.threshold) + ")"
		return strings.ReplaceAll(s, "--", "+")
	case OpLTH:
		return "max(0," + CoefStr(b.threshold) + "-" + inner + ")"
	default:
		panic(fmt.Sprintf("basis: invalid operator kind %d", int(b.op)))
	}
}
