// Package prim prints the primitive values and simple source constructs of a
// small interpreted-language runtime.
//
// Numeric conversion is delegated to github.com/tinywasm/fmt, the formatting
// engine the tinywasm ecosystem uses in place of the standard library's fmt
// and strconv. Every function in the package is pure, deterministic and safe
// for concurrent use.
package prim

import (
	"math"

	"github.com/tinywasm/fmt"
)

// Int returns the canonical decimal representation of value: a leading minus
// sign for negatives, no leading zeros, and "0" for zero.
func Int(value int64) string {
	// the delegated formatter negates before emitting digits, which
	// overflows at the type's minimum
	if value == math.MinInt64 {
		return "-9223372036854775808"
	}
	return fmt.Convert(value).String()
}

// Char returns the one-character text of the code point, unquoted and
// unescaped.
func Char(value rune) string {
	return string(value)
}

// Float returns the textual representation of value. The digit count and the
// spelling of NaN and the infinities are owned by the delegated formatter,
// not by this package.
func Float(value float64) string {
	return fmt.Convert(value).String()
}

// Bool returns "true" or "false". These are the only two possible outputs.
func Bool(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
