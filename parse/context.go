package parse

// Context is an immutable view over the token sequence for a single parse
// invocation. It borrows the caller's slice and never mutates it; one
// Context must not be shared between concurrent parses of different
// sequences, but the combinator tree itself may be.
type Context[T comparable] struct {
	tokens []Token[T]
}

// NewContext wraps a token sequence. The slice must outlive the parse.
func NewContext[T comparable](tokens []Token[T]) Context[T] {
	return Context[T]{tokens: tokens}
}

// Len returns the number of tokens in the sequence.
func (c Context[T]) Len() int {
	return len(c.tokens)
}

// At returns the token at offset, if one exists.
func (c Context[T]) At(offset int) (Token[T], bool) {
	if offset < 0 || offset >= len(c.tokens) {
		var zero Token[T]
		return zero, false
	}
	return c.tokens[offset], true
}

// SpanLast returns the span of the last token, or DefaultSpan when the
// sequence is empty.
func (c Context[T]) SpanLast() Span {
	if len(c.tokens) == 0 {
		return DefaultSpan
	}
	return c.tokens[len(c.tokens)-1].Span
}

// SpanAt returns the span of the token at offset, falling back to the last
// token's span (or DefaultSpan) when offset is past the end.
func (c Context[T]) SpanAt(offset int) Span {
	if tok, ok := c.At(offset); ok {
		return tok.Span
	}
	return c.SpanLast()
}

// require fetches the token at offset for the named rule. When absent, the
// returned result is None for optional rules and an end-of-input error for
// mandatory ones; ok reports whether the token is valid.
func (c Context[T]) require(rule string, offset int, optional bool) (Token[T], ParseResult[T], bool) {
	tok, present := c.At(offset)
	if present {
		return tok, ParseResult[T]{}, true
	}
	if optional {
		return tok, ParseResult[T]{}, false
	}
	return tok, ParseResult[T]{Err: NewParseError(rule, c.SpanLast(), msgEndOfInput)}, false
}
