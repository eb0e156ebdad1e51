// Package schema defines the contract between the host validation
// framework and pluggable schema types.
//
// A schema type implements Type by exposing a single parse entry point.
// The host threads a Context through every parse call: the context carries
// the path from the root of the input to the value currently being
// validated and a shared accumulator for issues. Combinators (objects,
// arrays, unions) derive child contexts with Child so that issues raised
// deep inside a composite input still report their full path, and all
// issues from one top level parse land in one ordered list.
//
// Issues
//
// An Issue is one structured failure record. Every issue carries a Code
// classifying the failure and the Path where it occurred. The remaining
// fields are code specific:
//
//	invalid_type     Expected, Received
//	too_small        Bound, Inclusive
//	too_big          Bound, Inclusive
//	not_multiple_of  Divisor
//	not_finite       (no extra fields)
//
// Bound and Divisor are decimal text rather than numeric values so that
// this package stays independent of any particular arithmetic engine.
//
// Issues is an ordered list of Issue and implements error, so a failed
// parse can be returned through a normal error value and later recovered
// with errors.As.
package schema
