package schema

// Type is implemented by schema types that participate in parsing. Parse
// validates input, records any issues on the context, and reports whether
// the parse succeeded. On failure the returned value is the zero value
// and must not be used.
//
// Combinators call Parse with a child context per element so that the
// host never needs to special-case individual schema types.
type Type[T any] interface {
	Parse(ctx *Context, input any) (T, bool)
}
