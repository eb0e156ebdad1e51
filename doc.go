// Package decimal provides an arbitrary-precision decimal schema type.
//
// A Schema validates that an input represents a decimal number, applies
// a chain of declared constraints, and renders the accepted value as
// canonical text in a configurable base. Values stay textual end to end:
// the canonical output is never a native float, so no precision is lost.
//
// Schemas are immutable. Every constraint method returns a new Schema
// with one more check appended and leaves the receiver untouched, so a
// base schema can safely fan out into variants:
//
//	amount := decimal.Must(decimal.Options{})
//	price := amount.Positive().MultipleOf(number.MustParse("0.01"))
//	qty := amount.Int().Nonnegative()
//
// Validation never stops at the first violated constraint. Every check
// in the chain runs against the parsed value and every violation appends
// one typed issue, so a caller sees the complete list of failures in
// declaration order:
//
//	_, err := price.Validate("-3.333")
//	// err holds a too_small issue and a not_multiple_of issue.
//
// Only wrong-type input and unparseable literals are terminal: they
// produce a single issue and no constraints run.
//
// Constraints
//
// Gte, Gt, Lte, and Lt bound the value, with Min, Max as the
// conventional names for Gte and Lte. Positive, Negative, Nonnegative,
// and Nonpositive are bounds against zero. Int requires a zero
// fractional part, MultipleOf (alias Step) exact divisibility, and
// Finite rejects the infinities, which otherwise parse as ordinary
// values.
//
// Output base
//
// By default accepted values render in base 10 with exponent notation
// expanded. Options.Base selects another radix from 2 to 36, and
// BaseNone passes the parsed value through in the engine's default
// textual form.
//
// Host framework
//
// Schema implements schema.Type[string], the host framework's parse
// contract, so it composes inside object and array combinators with no
// special casing. Validate is the standalone convenience entry point.
package decimal
