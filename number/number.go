package number

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	apd "github.com/cockroachdb/apd/v3"
)

// Decimal is an immutable arbitrary-precision decimal value. The zero
// value is the number zero.
type Decimal struct {
	dec apd.Decimal
}

// debugging is the engine's ambient strict-checking toggle.
var debugging atomic.Bool

// SetDebug sets strict literal checking and returns the previous
// setting. Callers that probe possibly malformed input must restore the
// previous value on every exit path.
func SetDebug(on bool) bool {
	return debugging.Swap(on)
}

// Debug reports whether strict literal checking is enabled.
func Debug() bool {
	return debugging.Load()
}

func nan() Decimal {
	var d Decimal
	d.dec.Form = apd.NaN

	return d
}

// Parse interprets text as a decimal number. A malformed literal yields
// NaN with a nil error unless Debug is enabled, in which case it yields
// a descriptive error instead.
func Parse(s string) (Decimal, error) {
	parsed, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		if Debug() {
			return nan(), Error.New("invalid decimal literal: %q", s)
		}

		return nan(), nil
	}

	var d Decimal
	d.dec.Set(parsed)

	return d, nil
}

// MustParse is like Parse but panics on a malformed literal regardless
// of the Debug toggle. It is intended for bounds written as literals in
// source.
func MustParse(s string) Decimal {
	parsed, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	var d Decimal
	d.dec.Set(parsed)

	return d
}

// FromInt returns the decimal value of i.
func FromInt(i int64) Decimal {
	var d Decimal
	d.dec.Set(apd.New(i, 0))

	return d
}

// Zero returns the number zero.
func Zero() Decimal {
	return Decimal{}
}

// IsNaN reports whether d is not a number.
func (d Decimal) IsNaN() bool {
	return d.dec.Form == apd.NaN || d.dec.Form == apd.NaNSignaling
}

// IsFinite reports whether d is neither infinite nor NaN.
func (d Decimal) IsFinite() bool {
	return d.dec.Form == apd.Finite
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return d.dec.Form == apd.Finite && d.dec.IsZero()
}

// Sign returns -1, 0, or +1 for negative, zero, and positive values.
// Infinities report their sign.
func (d Decimal) Sign() int {
	return d.dec.Sign()
}

// Cmp compares d with x and returns -1, 0, or +1. Infinities order above
// and below every finite value. Neither operand may be NaN.
func (d Decimal) Cmp(x Decimal) int {
	return d.dec.Cmp(&x.dec)
}

// IsInt reports whether d is finite with a zero fractional part.
func (d Decimal) IsInt() bool {
	if d.dec.Form != apd.Finite {
		return false
	}
	if d.dec.Exponent >= 0 {
		return true
	}

	var reduced apd.Decimal
	reduced.Reduce(&d.dec)

	return reduced.Exponent >= 0
}

// Mod returns the exact remainder of d divided by m. ok is false when
// the remainder is undefined: either operand NaN, d infinite, or m zero.
// A finite d modulo an infinity is d itself.
func (d Decimal) Mod(m Decimal) (_ Decimal, ok bool) {
	switch {
	case d.IsNaN() || m.IsNaN():
		return nan(), false
	case d.dec.Form == apd.Infinite:
		return nan(), false
	case m.dec.Form == apd.Infinite:
		return d, true
	case m.dec.IsZero():
		return nan(), false
	}

	// The integer quotient's digit count is bounded by the spread of the
	// operands' adjusted exponents, which keeps Rem exact at this
	// precision.
	adjD := int64(d.dec.Exponent) + d.dec.NumDigits() - 1
	adjM := int64(m.dec.Exponent) + m.dec.NumDigits() - 1

	prec := adjD - adjM + d.dec.NumDigits() + m.dec.NumDigits() + 4
	if prec < 8 {
		prec = 8
	}
	if prec > math.MaxUint32 {
		prec = math.MaxUint32
	}

	ctx := apd.BaseContext.WithPrecision(uint32(prec))

	var rem Decimal
	if _, err := ctx.Rem(&rem.dec, &d.dec, &m.dec); err != nil {
		return nan(), false
	}

	return rem, true
}
