package schema

import (
	"fmt"
	"strings"
)

// Code classifies a validation failure.
type Code string

// Issue codes.
const (
	InvalidType   Code = "invalid_type"
	TooSmall      Code = "too_small"
	TooBig        Code = "too_big"
	NotMultipleOf Code = "not_multiple_of"
	NotFinite     Code = "not_finite"
)

// Path locates a value within a composite input. Elements are string keys
// for object fields and int indexes for array elements.
type Path []any

func (p Path) String() string {
	var b strings.Builder

	for _, key := range p {
		switch key := key.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", key)
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			fmt.Fprintf(&b, "%v", key)
		}
	}

	return b.String()
}

// Issue is a single structured validation failure.
type Issue struct {
	Code    Code
	Path    Path
	Message string

	// Set when Code is InvalidType.
	Expected string
	Received string

	// Set when Code is TooSmall or TooBig.
	Bound     string
	Inclusive bool

	// Set when Code is NotMultipleOf.
	Divisor string
}

// Issues is an ordered list of validation failures. It implements error.
type Issues []Issue

func (is Issues) Error() string {
	if len(is) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(is))
	for _, iss := range is {
		if path := iss.Path.String(); path != "" {
			parts = append(parts, path+": "+iss.Message)
		} else {
			parts = append(parts, iss.Message)
		}
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Codes returns the issue codes in order.
func (is Issues) Codes() []Code {
	codes := make([]Code, len(is))
	for i, iss := range is {
		codes[i] = iss.Code
	}

	return codes
}

// First returns the first issue with the given code, if any.
func (is Issues) First(code Code) (Issue, bool) {
	for _, iss := range is {
		if iss.Code == code {
			return iss, true
		}
	}

	return Issue{}, false
}

// Messages returns the issue messages in order.
func (is Issues) Messages() []string {
	msgs := make([]string, len(is))
	for i, iss := range is {
		msgs[i] = iss.Message
	}

	return msgs
}
