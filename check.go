package decimal

import "github.com/schemakit/decimal/number"

// checkKind enumerates the constraint variants. The set is closed: the
// engine switches over it exhaustively.
type checkKind uint8

const (
	checkMin checkKind = iota
	checkMax
	checkInt
	checkMultipleOf
	checkFinite
)

// check is one constraint in a schema's chain. bound is the limit for
// min and max and the divisor for multipleOf.
type check struct {
	kind      checkKind
	bound     number.Decimal
	inclusive bool
	message   string
}

// with returns a copy of s with one more check appended. The full-slice
// expression forces append to copy, so schemas returned earlier never
// observe the new check.
func (s Schema) with(c check) Schema {
	s.checks = append(s.checks[:len(s.checks):len(s.checks)], c)

	return s
}

func first(message []string) string {
	if len(message) > 0 {
		return message[0]
	}

	return ""
}

// Gte requires values to be greater than or equal to bound.
func (s Schema) Gte(bound number.Decimal, message ...string) Schema {
	return s.with(check{
		kind:      checkMin,
		bound:     bound,
		inclusive: true,
		message:   first(message),
	})
}

// Gt requires values to be strictly greater than bound.
func (s Schema) Gt(bound number.Decimal, message ...string) Schema {
	return s.with(check{
		kind:    checkMin,
		bound:   bound,
		message: first(message),
	})
}

// Lte requires values to be less than or equal to bound.
func (s Schema) Lte(bound number.Decimal, message ...string) Schema {
	return s.with(check{
		kind:      checkMax,
		bound:     bound,
		inclusive: true,
		message:   first(message),
	})
}

// Lt requires values to be strictly less than bound.
func (s Schema) Lt(bound number.Decimal, message ...string) Schema {
	return s.with(check{
		kind:    checkMax,
		bound:   bound,
		message: first(message),
	})
}

// Min is Gte under its conventional name.
func (s Schema) Min(bound number.Decimal, message ...string) Schema {
	return s.Gte(bound, message...)
}

// Max is Lte under its conventional name.
func (s Schema) Max(bound number.Decimal, message ...string) Schema {
	return s.Lte(bound, message...)
}

// Int requires values to have a zero fractional part.
func (s Schema) Int(message ...string) Schema {
	return s.with(check{
		kind:    checkInt,
		message: first(message),
	})
}

// MultipleOf requires values to be exactly divisible by divisor.
func (s Schema) MultipleOf(divisor number.Decimal, message ...string) Schema {
	return s.with(check{
		kind:    checkMultipleOf,
		bound:   divisor,
		message: first(message),
	})
}

// Step is MultipleOf under its conventional name.
func (s Schema) Step(divisor number.Decimal, message ...string) Schema {
	return s.MultipleOf(divisor, message...)
}

// Finite rejects positive and negative infinity, which otherwise parse
// as ordinary values.
func (s Schema) Finite(message ...string) Schema {
	return s.with(check{
		kind:    checkFinite,
		message: first(message),
	})
}

// Positive requires values to be strictly greater than zero.
func (s Schema) Positive(message ...string) Schema {
	return s.Gt(number.Zero(), message...)
}

// Negative requires values to be strictly less than zero.
func (s Schema) Negative(message ...string) Schema {
	return s.Lt(number.Zero(), message...)
}

// Nonnegative requires values to be greater than or equal to zero.
func (s Schema) Nonnegative(message ...string) Schema {
	return s.Gte(number.Zero(), message...)
}

// Nonpositive requires values to be less than or equal to zero.
func (s Schema) Nonpositive(message ...string) Schema {
	return s.Lte(number.Zero(), message...)
}
