package decimal

import (
	"fmt"

	"github.com/schemakit/decimal/schema"
)

// BaseNone disables canonical reformatting: accepted values pass through
// in the engine's default textual form, exponent notation included.
const BaseNone = -1

// ErrorMap formats the message for an issue. The issue is fully
// populated except for its message.
type ErrorMap func(schema.Issue) string

// Options configures a Schema. The zero value is valid: no coercion,
// base 10 output.
type Options struct {
	// Coerce stringifies any non-nil input before validation.
	Coerce bool

	// Base is the output radix for accepted values, 2 through 36. Zero
	// selects base 10. BaseNone disables reformatting entirely.
	Base int

	// Description is passed through to host schema metadata.
	Description string

	// RequiredError overrides the message reported for nil input.
	RequiredError string

	// InvalidTypeError overrides the message reported for input of the
	// wrong type.
	InvalidTypeError string

	// ErrorMap overrides every issue message. Mutually exclusive with
	// RequiredError and InvalidTypeError.
	ErrorMap ErrorMap
}

// Schema validates decimal numbers. Schemas are immutable: constraint
// methods return a new Schema and leave the receiver unchanged, so a
// Schema may be shared freely.
type Schema struct {
	opts   Options
	base   int
	checks []check
}

// New returns a Schema for the given options.
func New(opts Options) (Schema, error) {
	if opts.ErrorMap != nil && (opts.RequiredError != "" || opts.InvalidTypeError != "") {
		return Schema{}, Error.New("ErrorMap is mutually exclusive with RequiredError and InvalidTypeError")
	}

	base := opts.Base
	switch {
	case base == 0:
		base = 10
	case base == BaseNone:
	case base < 2 || base > 36:
		return Schema{}, Error.New("invalid base: %d", opts.Base)
	}

	return Schema{
		opts: opts,
		base: base,
	}, nil
}

// Must is like New but panics on a configuration error.
func Must(opts Options) Schema {
	s, err := New(opts)
	if err != nil {
		panic(fmt.Sprintf("Must failed: %v", err))
	}

	return s
}

// Description returns the schema's description metadata.
func (s Schema) Description() string {
	return s.opts.Description
}
