// Package grammar defines the rule-notation language shipped with gram: its
// token kinds, a lexer, and the combinator grammars for parsing rule
// documents and plain key/value item documents.
package grammar

import "fmt"

type Kind int

const (
	KindSemicolon Kind = iota
	KindDollar
	KindOr
	KindCaret
	KindLBracket
	KindRBracket
	KindEquals
	KindLParen
	KindRParen
	KindEOI
	KindID
	KindStr
)

var kindNames = map[Kind]string{
	KindSemicolon: ";",
	KindDollar:    "$",
	KindOr:        "|",
	KindCaret:     "^",
	KindLBracket:  "[",
	KindRBracket:  "]",
	KindEquals:    "=",
	KindLParen:    "(",
	KindRParen:    ")",
	KindEOI:       "EOI",
	KindID:        "Identifier",
	KindStr:       "String",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// TokenType is the token-type value fed to the combinator engine. Text
// carries the spelling of identifiers and string literals and stays empty
// for punctuation, so punctuation types compare equal by kind alone.
type TokenType struct {
	Kind Kind
	Text string
}

func (t TokenType) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}

// ID returns the token type of an identifier with the given spelling.
func ID(text string) TokenType {
	return TokenType{Kind: KindID, Text: text}
}

// Str returns the token type of a string literal with the given (decoded)
// contents.
func Str(text string) TokenType {
	return TokenType{Kind: KindStr, Text: text}
}

// Punct returns the token type of a punctuation kind.
func Punct(k Kind) TokenType {
	return TokenType{Kind: k}
}
