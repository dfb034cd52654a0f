package parse

import "fmt"

const (
	msgSyntaxError = "Syntax error"
	msgEndOfInput  = "Unexpected end of input"
)

// ParseError describes why a rule failed to match: the rule's label, the
// span of the offending token, and a short reason.
type ParseError struct {
	Expected string
	Span     Span
	Message  string
}

// NewParseError creates an error for the named rule at the given span.
func NewParseError(expected string, span Span, message string) *ParseError {
	return &ParseError{Expected: expected, Span: span, Message: message}
}

func syntaxError(expected string, span Span) *ParseError {
	return NewParseError(expected, span, msgSyntaxError)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: expected %s", e.Span, e.Message, e.Expected)
}

// ParseData is the payload of a successful match. The concrete types are
// Nested (structural combinators), TokenList (flattening combinators) and
// Leaf (leaf matchers).
type ParseData[T comparable] interface {
	// Items reports how many logical items the data represents: one per
	// token for a Leaf, the element count for Nested and TokenList.
	// Repeatable advances its cursor by this count.
	Items() int
}

// Nested holds the ordered results of a structural combinator's children.
type Nested[T comparable] struct {
	Children []ParseData[T]
}

func (n Nested[T]) Items() int { return len(n.Children) }

// TokenList is a flat run of tokens, produced by combinators that collapse
// a subtree into its matched tokens (see Flatten).
type TokenList[T comparable] struct {
	Tokens []Token[T]
}

func (l TokenList[T]) Items() int { return len(l.Tokens) }

// Leaf is a single matched token.
type Leaf[T comparable] struct {
	Token Token[T]
}

func (Leaf[T]) Items() int { return 1 }

// ParseResult is the tri-state outcome of a match attempt:
//
//   - matched: Data is non-nil and carries the tree
//   - failed: Err is non-nil
//   - soft non-match: both are nil; the rule was optional and
//     legitimately matched zero times
//
// The last state is what lets optional sequences and repetitions succeed
// with an empty result instead of surfacing an error.
type ParseResult[T comparable] struct {
	Data ParseData[T]
	Err  *ParseError
}

func (r ParseResult[T]) IsOk() bool   { return r.Data != nil }
func (r ParseResult[T]) IsErr() bool  { return r.Err != nil }
func (r ParseResult[T]) IsNone() bool { return r.Data == nil && r.Err == nil }

// Parse is the full outcome of one combinator invocation.
//
// Start always equals the offset the combinator was invoked at. End equals
// Start when nothing was consumed and may exceed it on partial consumption
// before a failure, which keeps error spans accurate.
type Parse[T comparable] struct {
	Rule   string
	Result ParseResult[T]
	Start  int
	End    int
}

// Size reports the number of token positions consumed. Structural
// combinators use this to advance the cursor for subsequent siblings.
func (p Parse[T]) Size() int {
	return p.End - p.Start
}

// firstSpan returns the span of the leftmost token in the data tree. An
// empty Nested or TokenList means a child combinator violated the
// at-least-one-token invariant; the second return value reports that
// instead of panicking on it.
func firstSpan[T comparable](data ParseData[T]) (Span, bool) {
	switch d := data.(type) {
	case Leaf[T]:
		return d.Token.Span, true
	case TokenList[T]:
		if len(d.Tokens) == 0 {
			return Span{}, false
		}
		return d.Tokens[0].Span, true
	case Nested[T]:
		for _, child := range d.Children {
			if span, ok := firstSpan[T](child); ok {
				return span, true
			}
		}
		return Span{}, false
	}
	return Span{}, false
}

// appendTokens collects every token in the data tree, in order.
func appendTokens[T comparable](dst []Token[T], data ParseData[T]) []Token[T] {
	switch d := data.(type) {
	case Leaf[T]:
		dst = append(dst, d.Token)
	case TokenList[T]:
		dst = append(dst, d.Tokens...)
	case Nested[T]:
		for _, child := range d.Children {
			dst = appendTokens(dst, child)
		}
	}
	return dst
}
