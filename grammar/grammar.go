package grammar

import "github.com/dhamidi/gram/parse"

// The rule-notation language:
//
//	document  = { rule } EOI .
//	rule      = Identifier "=" expr ";" .
//	expr      = term { "|" term } .
//	term      = factor { factor } .
//	factor    = "^" factor | "[" expr "]" | "(" expr ")"
//	          | "$" Identifier | Identifier | String .
//
// Items documents are the flat key/value subset: zero or more
// `Identifier = String` entries followed by EOI.

// forward is a late-bound parser reference; the rule grammar is cyclic
// (factor contains expr contains factor), so the cycle is closed after
// both sides exist. Once built the tree is immutable again.
type forward struct {
	parser parse.Parser[TokenType]
}

func (f *forward) Parse(ctx parse.Context[TokenType], offset int) parse.Parse[TokenType] {
	return f.parser.Parse(ctx, offset)
}

func isID(t TokenType) bool  { return t.Kind == KindID }
func isStr(t TokenType) bool { return t.Kind == KindStr }

// Items builds the combinator tree for key/value item documents.
func Items() parse.Parser[TokenType] {
	item := parse.NewSequence[TokenType]("item", false,
		parse.NewPredicate("key", false, isID),
		parse.NewOfType("'='", false, Punct(KindEquals)),
		parse.NewPredicate("value", false, isStr),
	)

	return parse.NewChoice[TokenType]("document", false,
		parse.NewOfType("end of input", false, Punct(KindEOI)),
		parse.NewSequence[TokenType]("items", false,
			parse.NewRepeatable[TokenType]("fields", true, item),
			parse.NewOfType("end of input", false, Punct(KindEOI)),
		),
	)
}

// Document builds the combinator tree for rule documents.
func Document() parse.Parser[TokenType] {
	exprRef := &forward{}
	factorRef := &forward{}

	factor := parse.NewChoice[TokenType]("factor", false,
		parse.NewSequence[TokenType]("negation", false,
			parse.NewOfType("'^'", false, Punct(KindCaret)),
			factorRef,
		),
		parse.NewSequence[TokenType]("optional group", false,
			parse.NewOfType("'['", false, Punct(KindLBracket)),
			exprRef,
			parse.NewOfType("']'", false, Punct(KindRBracket)),
		),
		parse.NewSequence[TokenType]("group", false,
			parse.NewOfType("'('", false, Punct(KindLParen)),
			exprRef,
			parse.NewOfType("')'", false, Punct(KindRParen)),
		),
		parse.NewSequence[TokenType]("binding", false,
			parse.NewOfType("'$'", false, Punct(KindDollar)),
			parse.NewPredicate("binding name", false, isID),
		),
		parse.NewPredicate("identifier", false, isID),
		parse.NewPredicate("string", false, isStr),
	)
	factorRef.parser = factor

	term := parse.NewSequence[TokenType]("term", false,
		factor,
		parse.NewRepeatable[TokenType]("factors", true, parse.NewFlatten[TokenType]("factor", factor)),
	)

	alternative := parse.NewSequence[TokenType]("alternative", false,
		parse.NewOfType("'|'", false, Punct(KindOr)),
		term,
	)
	expr := parse.NewSequence[TokenType]("expr", false,
		term,
		parse.NewRepeatable[TokenType]("alternatives", true, parse.NewFlatten[TokenType]("alternative", alternative)),
	)
	exprRef.parser = expr

	rule := parse.NewSequence[TokenType]("rule", false,
		parse.NewNot[TokenType]("rule name", false, parse.NewPredicate("string literal", false, isStr)),
		parse.NewPredicate("rule name", false, isID),
		parse.NewOfType("'='", false, Punct(KindEquals)),
		expr,
		parse.NewOfType("';'", false, Punct(KindSemicolon)),
	)

	return parse.NewChoice[TokenType]("document", false,
		parse.NewOfType("end of input", false, Punct(KindEOI)),
		parse.NewSequence[TokenType]("rules", false,
			parse.NewRepeatable[TokenType]("rules", true, parse.NewFlatten[TokenType]("rule", rule)),
			parse.NewOfType("end of input", false, Punct(KindEOI)),
		),
	)
}

// ParseItems runs the item grammar over a token sequence.
func ParseItems(tokens []parse.Token[TokenType]) parse.Parse[TokenType] {
	return Items().Parse(parse.NewContext(tokens), 0)
}

// ParseDocument runs the rule grammar over a token sequence.
func ParseDocument(tokens []parse.Token[TokenType]) parse.Parse[TokenType] {
	return Document().Parse(parse.NewContext(tokens), 0)
}
