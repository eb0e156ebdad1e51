// Package number wraps the arbitrary-precision decimal arithmetic engine
// behind a small immutable value type.
//
// Values are created with Parse, MustParse, or FromInt and never change
// afterwards; every operation returns a new value. The engine accepts the
// usual decimal literal grammar: optional sign, optional fractional part,
// optional exponent, and the special literals Infinity, -Infinity, and
// NaN (case-insensitive, surrounding whitespace ignored).
//
// Rendering comes in three forms:
//
//	Canonical  base 10 with exponent notation fully expanded
//	String     the engine's default form; plain decimal while the
//	           adjusted exponent lies within [-7, 20], scientific
//	           notation outside that window
//	Text       any base from 2 to 36, lowercase digit alphabet, with
//	           fractional digits capped and trailing zeros dropped
//
// The package carries one piece of ambient state: the Debug toggle. With
// Debug enabled, Parse reports an error for malformed literals; with it
// disabled a malformed literal quietly becomes NaN. Code that probes
// possibly malformed input must save the toggle on entry and restore it
// on every exit path.
package number
