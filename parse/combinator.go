package parse

// Parser is the one capability every combinator implements. Implementations
// must not mutate the context, must return a Parse whose Start equals the
// given offset, and must confine side effects to the returned value.
//
// Grammars are open-ended: anything implementing Parser can appear as a
// child of the structural combinators.
type Parser[T comparable] interface {
	Parse(ctx Context[T], offset int) Parse[T]
}

// OfType matches a single token whose type equals a fixed value.
type OfType[T comparable] struct {
	rule     string
	optional bool
	ty       T
}

// NewOfType creates a matcher for tokens whose type equals ty. When
// optional, a missing or mismatched token yields a soft non-match instead
// of an error at end of input.
func NewOfType[T comparable](rule string, optional bool, ty T) *OfType[T] {
	return &OfType[T]{rule: rule, optional: optional, ty: ty}
}

func (p *OfType[T]) Parse(ctx Context[T], offset int) Parse[T] {
	tok, res, ok := ctx.require(p.rule, offset, p.optional)
	if !ok {
		return Parse[T]{Rule: p.rule, Result: res, Start: offset, End: offset}
	}
	if tok.Type == p.ty {
		return Parse[T]{
			Rule:   p.rule,
			Result: ParseResult[T]{Data: Leaf[T]{Token: tok}},
			Start:  offset,
			End:    offset + 1,
		}
	}
	return Parse[T]{
		Rule:   p.rule,
		Result: ParseResult[T]{Err: syntaxError(p.rule, tok.Span)},
		Start:  offset,
		End:    offset,
	}
}

// Predicate matches a single token whose type satisfies a test function,
// for rules like "any identifier". Same consumption convention as OfType:
// one position on a match, zero on a mismatch.
type Predicate[T comparable] struct {
	rule     string
	optional bool
	pred     func(T) bool
}

func NewPredicate[T comparable](rule string, optional bool, pred func(T) bool) *Predicate[T] {
	return &Predicate[T]{rule: rule, optional: optional, pred: pred}
}

func (p *Predicate[T]) Parse(ctx Context[T], offset int) Parse[T] {
	tok, res, ok := ctx.require(p.rule, offset, p.optional)
	if !ok {
		return Parse[T]{Rule: p.rule, Result: res, Start: offset, End: offset}
	}
	if p.pred(tok.Type) {
		return Parse[T]{
			Rule:   p.rule,
			Result: ParseResult[T]{Data: Leaf[T]{Token: tok}},
			Start:  offset,
			End:    offset + 1,
		}
	}
	return Parse[T]{
		Rule:   p.rule,
		Result: ParseResult[T]{Err: syntaxError(p.rule, tok.Span)},
		Start:  offset,
		End:    offset,
	}
}

// Sequence matches an ordered list of children, threading the cursor
// forward by each child's consumed size.
type Sequence[T comparable] struct {
	rule     string
	optional bool
	inner    []Parser[T]
}

func NewSequence[T comparable](rule string, optional bool, inner ...Parser[T]) *Sequence[T] {
	return &Sequence[T]{rule: rule, optional: optional, inner: inner}
}

func (s *Sequence[T]) Parse(ctx Context[T], offset int) Parse[T] {
	offs := offset
	children := make([]ParseData[T], 0, len(s.inner))

	for _, item := range s.inner {
		parsed := item.Parse(ctx, offs)

		switch {
		case parsed.Result.IsOk():
			offs += parsed.Size()
			children = append(children, parsed.Result.Data)
		case parsed.Result.IsErr():
			// An optional sequence swallows the error; End still records
			// how far it got before failing.
			if s.optional {
				return Parse[T]{Rule: s.rule, Start: offset, End: offs}
			}
			return Parse[T]{Rule: s.rule, Result: parsed.Result, Start: offset, End: offs}
		default:
			// Soft non-match: the child contributes nothing and the
			// cursor stays put for this step.
		}
	}
	return Parse[T]{
		Rule:   s.rule,
		Result: ParseResult[T]{Data: Nested[T]{Children: children}},
		Start:  offset,
		End:    offs,
	}
}

// Repeatable applies one child at the advancing cursor until it stops
// matching: a greedy zero-or-more closure that tolerates a trailing error
// once at least one iteration has succeeded.
type Repeatable[T comparable] struct {
	rule     string
	optional bool
	inner    Parser[T]
}

func NewRepeatable[T comparable](rule string, optional bool, inner Parser[T]) *Repeatable[T] {
	return &Repeatable[T]{rule: rule, optional: optional, inner: inner}
}

func (r *Repeatable[T]) Parse(ctx Context[T], offset int) Parse[T] {
	var collected []ParseData[T]
	var trailing *ParseError

	offs := offset
	for {
		parsed := r.inner.Parse(ctx, offs)

		if parsed.Result.IsErr() {
			trailing = parsed.Result.Err
			break
		}
		if parsed.Result.IsNone() {
			break
		}

		// The cursor moves by the logical item count of the child's data,
		// not its raw token width: a child producing a flat list advances
		// by the list's length. Children whose subtrees are wider than
		// their item count must be wrapped in Flatten before repetition.
		data := parsed.Result.Data
		if data.Items() == 0 {
			// Zero-width success would repeat forever; stop instead.
			break
		}
		offs += data.Items()
		collected = append(collected, data)
	}

	var result ParseResult[T]
	switch {
	case len(collected) > 0:
		result = ParseResult[T]{Data: Nested[T]{Children: collected}}
	case r.optional:
		result = ParseResult[T]{}
	case trailing != nil:
		result = ParseResult[T]{Err: trailing}
	default:
		// Reachable only when the child returned neither an error nor a
		// soft non-match and still made no progress; SpanAt stays in
		// bounds even at end of input.
		result = ParseResult[T]{Err: syntaxError(r.rule, ctx.SpanAt(offs))}
	}
	return Parse[T]{Rule: r.rule, Result: result, Start: offset, End: offs}
}

// Not is a zero-width negative lookahead: it succeeds with a soft
// non-match when its child does not match, and fails when it does. It
// never produces data.
type Not[T comparable] struct {
	rule     string
	optional bool
	inner    Parser[T]
}

func NewNot[T comparable](rule string, optional bool, inner Parser[T]) *Not[T] {
	return &Not[T]{rule: rule, optional: optional, inner: inner}
}

func (n *Not[T]) Parse(ctx Context[T], offset int) Parse[T] {
	parsed := n.inner.Parse(ctx, offset)

	var result ParseResult[T]
	if parsed.Result.IsOk() {
		if !n.optional {
			span, ok := firstSpan[T](parsed.Result.Data)
			if !ok {
				span = ctx.SpanAt(offset)
			}
			result = ParseResult[T]{Err: syntaxError(n.rule, span)}
		}
	}
	return Parse[T]{Rule: n.rule, Result: result, Start: parsed.Start, End: parsed.End}
}

// Choice tries alternatives in order at the same offset and returns the
// first successful one verbatim.
type Choice[T comparable] struct {
	rule     string
	optional bool
	inner    []Parser[T]
}

func NewChoice[T comparable](rule string, optional bool, inner ...Parser[T]) *Choice[T] {
	return &Choice[T]{rule: rule, optional: optional, inner: inner}
}

func (c *Choice[T]) Parse(ctx Context[T], offset int) Parse[T] {
	for _, alt := range c.inner {
		parsed := alt.Parse(ctx, offset)
		if parsed.Result.IsOk() {
			return parsed
		}
	}
	if c.optional {
		return Parse[T]{Rule: c.rule, Start: offset, End: offset}
	}
	// Per-alternative errors are discarded in favor of one summary error
	// labeled with the choice's own rule name.
	return Parse[T]{
		Rule:   c.rule,
		Result: ParseResult[T]{Err: syntaxError(c.rule, ctx.SpanLast())},
		Start:  offset,
		End:    offset,
	}
}

// Flatten collapses its child's subtree into a flat TokenList. Because a
// TokenList's item count equals the positions its tokens occupy, wrapping
// a multi-token child in Flatten makes it safe under Repeatable.
type Flatten[T comparable] struct {
	rule  string
	inner Parser[T]
}

func NewFlatten[T comparable](rule string, inner Parser[T]) *Flatten[T] {
	return &Flatten[T]{rule: rule, inner: inner}
}

func (f *Flatten[T]) Parse(ctx Context[T], offset int) Parse[T] {
	parsed := f.inner.Parse(ctx, offset)
	if !parsed.Result.IsOk() {
		return Parse[T]{Rule: f.rule, Result: parsed.Result, Start: parsed.Start, End: parsed.End}
	}
	tokens := appendTokens[T](nil, parsed.Result.Data)
	return Parse[T]{
		Rule:   f.rule,
		Result: ParseResult[T]{Data: TokenList[T]{Tokens: tokens}},
		Start:  parsed.Start,
		End:    parsed.End,
	}
}
