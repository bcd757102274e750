package basis

import (
	"fmt"
	"math"
	"strings"
)

// CoefStr formats a model coefficient into a compact string with roughly
// three significant digits, tiered by magnitude.
//
// Very small magnitudes (below 1e-4) and very large ones (1e4 and above) use
// scientific notation with a two-digit mantissa; the leading zero of the
// exponent is stripped, so 1.5e-5 renders as "1.50e-5" and 12345.6 as
// "1.23e4". Everything in between uses fixed-point notation with a decimal
// count that shrinks as the magnitude grows, from 6 digits below 1e-3 down
// to 0 digits below 1e4. Zero renders as "0".
//
// The function is total: NaN and infinities fail every magnitude comparison
// and fall through to the scientific branch, rendering as fmt renders them.
// Rounding follows fmt's round-half-to-even behavior.
func CoefStr(x float64) string {
	a := math.Abs(x)
	switch {
	case x == 0.0:
		return "0"
	case a < 1e-4:
		return strings.Replace(fmt.Sprintf("%.2e", x), "e-0", "e-", 1)
	case a < 1e-3:
		return fmt.Sprintf("%.6f", x)
	case a < 1e-2:
		return fmt.Sprintf("%.5f", x)
	case a < 1e-1:
		return fmt.Sprintf("%.4f", x)
	case a < 1e0:
		return fmt.Sprintf("%.3f", x)
	case a < 1e1:
		return fmt.Sprintf("%.2f", x)
	case a < 1e2:
		return fmt.Sprintf("%.1f", x)
	case a < 1e4:
		return fmt.Sprintf("%.0f", x)
	default:
		return strings.Replace(fmt.Sprintf("%.2e", x), "e+0", "e", 1)
	}
}
