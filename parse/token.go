// Package parse implements a token-type-agnostic parser-combinator engine.
//
// A grammar is a tree of values implementing Parser, built once from the
// primitive combinators (OfType, Predicate, Sequence, Repeatable, Not,
// Choice, Flatten) and reusable across any number of parses. Running the
// root combinator against a Context yields a Parse: either a tree of
// matched tokens or a ParseError anchored to a source span.
package parse

import "fmt"

// Span is a source-location range. Columns are 1-based and inclusive on
// both ends, so a single-character token has StartCol == EndCol.
type Span struct {
	Line     int
	StartCol int
	EndCol   int
}

// DefaultSpan is reported when no token exists to anchor a location,
// e.g. when the input is empty.
var DefaultSpan = Span{Line: 1, StartCol: 1, EndCol: 1}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Line, s.StartCol, s.EndCol)
}

// Size returns the number of columns the span covers.
func (s Span) Size() int {
	return s.EndCol - s.StartCol + 1
}

// Token is a typed lexical unit produced by an external lexer. The type
// parameter T is the caller's token-type value; it must support equality
// so OfType can match against it.
type Token[T comparable] struct {
	Type T
	Span Span
}
