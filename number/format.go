package number

import (
	"math/big"
	"strings"

	apd "github.com/cockroachdb/apd/v3"
)

// alphabet holds the digit characters for bases up to 36.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// fractionDigits caps the fractional digits emitted when rendering in a
// non-decimal base.
const fractionDigits = 20

// special renders the non-finite forms.
func (d Decimal) special() (string, bool) {
	switch d.dec.Form {
	case apd.Infinite:
		if d.dec.Negative {
			return "-Infinity", true
		}

		return "Infinity", true
	case apd.NaN, apd.NaNSignaling:
		return "NaN", true
	}

	return "", false
}

// Canonical renders d in base 10 with exponent notation fully expanded.
func (d Decimal) Canonical() string {
	if s, ok := d.special(); ok {
		return s
	}

	return d.dec.Text('f')
}

// String renders d in the engine's default form: plain decimal while the
// adjusted exponent lies within [-7, 20], scientific notation outside.
func (d Decimal) String() string {
	if s, ok := d.special(); ok {
		return s
	}

	adjusted := int64(d.dec.Exponent) + d.dec.NumDigits() - 1
	if adjusted < -7 || adjusted > 20 {
		return d.dec.Text('e')
	}

	return d.dec.Text('f')
}

// Text renders d in the given base (2 to 36) using a lowercase digit
// alphabet. Fractional digits are capped at fractionDigits with trailing
// zeros dropped. Base 10 is equivalent to Canonical.
func (d Decimal) Text(base int) string {
	if base == 10 {
		return d.Canonical()
	}
	if s, ok := d.special(); ok {
		return s
	}

	var integ, frac apd.Decimal
	d.dec.Modf(&integ, &frac)

	// The integral part has no fractional digits, so its plain base 10
	// form feeds straight into big.Int.
	ipart := new(big.Int)
	ipart.SetString(strings.TrimPrefix(integ.Text('f'), "-"), 10)

	var b strings.Builder
	if d.dec.Negative && !d.dec.IsZero() {
		b.WriteByte('-')
	}
	b.WriteString(ipart.Text(base))
	b.WriteString(fractionText(&frac, base))

	return b.String()
}

// fractionText expands the magnitude of a pure fraction into digits of
// the target base. It returns the empty string when no digits survive.
func fractionText(frac *apd.Decimal, base int) string {
	if frac.IsZero() {
		return ""
	}

	text := strings.TrimPrefix(frac.Text('f'), "-")
	text = strings.TrimPrefix(text, "0.")

	num := new(big.Int)
	num.SetString(text, 10)
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(text))), nil)

	radix := big.NewInt(int64(base))
	digit := new(big.Int)
	rem := new(big.Int)

	out := []byte{'.'}
	for i := 0; i < fractionDigits && num.Sign() != 0; i++ {
		num.Mul(num, radix)
		digit.QuoRem(num, den, rem)
		num.Set(rem)
		out = append(out, alphabet[digit.Int64()])
	}

	for len(out) > 1 && out[len(out)-1] == '0' {
		out = out[:len(out)-1]
	}
	if len(out) == 1 {
		return ""
	}

	return string(out)
}
