package decimal

import (
	"fmt"
	"reflect"

	"github.com/schemakit/decimal/number"
	"github.com/schemakit/decimal/schema"
)

var _ schema.Type[string] = Schema{}

// Parse implements schema.Type[string]. Input is optionally coerced to
// text, parsed as a decimal number, and run through the constraint chain
// in declaration order. Every violated constraint records one issue on
// the context; evaluation never stops early. Wrong-type input and
// unparseable literals are terminal and record a single issue.
func (s Schema) Parse(ctx *schema.Context, input any) (string, bool) {
	if s.opts.Coerce && input != nil {
		input = stringify(input)
	}

	text, ok := input.(string)
	if !ok {
		ctx.Add(s.typeIssue(input))

		return "", false
	}

	value := s.probe(text)
	if value.IsNaN() {
		ctx.Add(s.literalIssue())

		return "", false
	}

	failed := false
	for _, c := range s.checks {
		if iss, ok := s.evaluate(c, value); !ok {
			ctx.Add(iss)
			failed = true
		}
	}
	if failed {
		return "", false
	}

	return s.render(value), true
}

// Validate parses input against a fresh context and returns either the
// canonical text or the accumulated issues as an error of type
// schema.Issues.
func (s Schema) Validate(input any) (string, error) {
	ctx := schema.NewContext()

	out, ok := s.Parse(ctx, input)
	if !ok {
		return "", ctx.Issues()
	}

	return out, nil
}

// probe parses text with the engine's debug toggle suppressed so a
// malformed literal surfaces as NaN rather than a diagnostic error. The
// toggle is restored on every exit path.
func (s Schema) probe(text string) number.Decimal {
	prev := number.SetDebug(false)
	defer number.SetDebug(prev)

	// Parse cannot fail with the debug toggle off.
	value, _ := number.Parse(text)

	return value
}

// evaluate runs one check against the parsed value. Checks are
// independent: each sees the original value regardless of what any other
// check reported.
func (s Schema) evaluate(c check, value number.Decimal) (_ schema.Issue, ok bool) {
	switch c.kind {
	case checkMin:
		cmp := value.Cmp(c.bound)
		if cmp < 0 || (!c.inclusive && cmp == 0) {
			return s.boundIssue(schema.TooSmall, c), false
		}
	case checkMax:
		cmp := value.Cmp(c.bound)
		if cmp > 0 || (!c.inclusive && cmp == 0) {
			return s.boundIssue(schema.TooBig, c), false
		}
	case checkInt:
		if !value.IsInt() {
			iss := schema.Issue{
				Code:     schema.InvalidType,
				Expected: "integer",
				Received: "decimal",
			}
			iss.Message = s.message(c.message, iss, "value must be an integer")

			return iss, false
		}
	case checkMultipleOf:
		rem, exact := value.Mod(c.bound)
		if !exact || !rem.IsZero() {
			iss := schema.Issue{
				Code:    schema.NotMultipleOf,
				Divisor: c.bound.String(),
			}
			iss.Message = s.message(c.message, iss, fmt.Sprintf("value must be a multiple of %s", c.bound))

			return iss, false
		}
	case checkFinite:
		if !value.IsFinite() {
			iss := schema.Issue{Code: schema.NotFinite}
			iss.Message = s.message(c.message, iss, "value must be finite")

			return iss, false
		}
	}

	return schema.Issue{}, true
}

func (s Schema) boundIssue(code schema.Code, c check) schema.Issue {
	iss := schema.Issue{
		Code:      code,
		Bound:     c.bound.String(),
		Inclusive: c.inclusive,
	}

	relation := "greater than"
	if code == schema.TooBig {
		relation = "less than"
	}
	if c.inclusive {
		relation += " or equal to"
	}
	iss.Message = s.message(c.message, iss, fmt.Sprintf("value must be %s %s", relation, c.bound))

	return iss
}

func (s Schema) typeIssue(input any) schema.Issue {
	iss := schema.Issue{
		Code:     schema.InvalidType,
		Expected: "string",
		Received: typeName(input),
	}

	override := s.opts.InvalidTypeError
	fallback := fmt.Sprintf("expected string, received %s", iss.Received)
	if input == nil {
		override = s.opts.RequiredError
		fallback = "required"
	}
	iss.Message = s.message(override, iss, fallback)

	return iss
}

func (s Schema) literalIssue() schema.Issue {
	iss := schema.Issue{
		Code:     schema.InvalidType,
		Expected: "decimal",
		Received: "string",
	}
	iss.Message = s.message("", iss, "invalid decimal literal")

	return iss
}

// message resolves an issue message: explicit override first, then the
// schema's ErrorMap, then the built-in default.
func (s Schema) message(override string, iss schema.Issue, fallback string) string {
	switch {
	case override != "":
		return override
	case s.opts.ErrorMap != nil:
		return s.opts.ErrorMap(iss)
	}

	return fallback
}

// render produces the canonical text for an accepted value.
func (s Schema) render(value number.Decimal) string {
	switch s.base {
	case BaseNone:
		return value.String()
	case 10:
		return value.Canonical()
	}

	return value.Text(s.base)
}

// stringify coerces input to the text the engine would print for it.
func stringify(input any) any {
	switch v := input.(type) {
	case string:
		return v
	case number.Decimal:
		return v.String()
	case fmt.Stringer:
		return v.String()
	}

	return fmt.Sprint(input)
}

// typeName returns the runtime type tag reported in invalid_type issues.
func typeName(input any) string {
	switch input.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return "number"
	case number.Decimal:
		return "decimal"
	}

	return reflect.TypeOf(input).Kind().String()
}
