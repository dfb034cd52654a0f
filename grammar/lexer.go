package grammar

import (
	"fmt"

	"github.com/dhamidi/gram/parse"
)

// LexError is a tokenization failure at a specific source location.
type LexError struct {
	Span    parse.Span
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// Lexer turns rule-notation source into a token sequence for the
// combinator engine. Whitespace and // line comments are skipped; the
// sequence always ends with an EOI token.
type Lexer struct {
	input  []byte
	pos    int
	line   int
	column int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Lex tokenizes input in one call.
func Lex(input []byte) ([]parse.Token[TokenType], error) {
	return NewLexer(input).Tokenize()
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipTrivia() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		if ch == '/' && l.peekN(1) == '/' {
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		break
	}
}

// Tokenize scans the whole input. The returned sequence ends with an EOI
// token whose span sits one column past the last character.
func (l *Lexer) Tokenize() ([]parse.Token[TokenType], error) {
	var tokens []parse.Token[TokenType]

	for {
		l.skipTrivia()
		if l.pos >= len(l.input) {
			break
		}

		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, parse.Token[TokenType]{
		Type: Punct(KindEOI),
		Span: parse.Span{Line: l.line, StartCol: l.column, EndCol: l.column},
	})
	return tokens, nil
}

var punctuation = map[byte]Kind{
	';': KindSemicolon,
	'$': KindDollar,
	'|': KindOr,
	'^': KindCaret,
	'[': KindLBracket,
	']': KindRBracket,
	'=': KindEquals,
	'(': KindLParen,
	')': KindRParen,
}

func (l *Lexer) next() (parse.Token[TokenType], error) {
	ch := l.peek()

	if kind, ok := punctuation[ch]; ok {
		span := parse.Span{Line: l.line, StartCol: l.column, EndCol: l.column}
		l.advance()
		return parse.Token[TokenType]{Type: Punct(kind), Span: span}, nil
	}
	if isIdentStart(ch) {
		return l.scanIdentifier(), nil
	}
	if ch == '"' {
		return l.scanString()
	}

	span := parse.Span{Line: l.line, StartCol: l.column, EndCol: l.column}
	return parse.Token[TokenType]{}, &LexError{
		Span:    span,
		Message: fmt.Sprintf("unexpected character %q", ch),
	}
}

func (l *Lexer) scanIdentifier() parse.Token[TokenType] {
	line, startCol := l.line, l.column
	start := l.pos
	for isIdentPart(l.peek()) {
		l.advance()
	}
	return parse.Token[TokenType]{
		Type: ID(string(l.input[start:l.pos])),
		Span: parse.Span{Line: line, StartCol: startCol, EndCol: l.column - 1},
	}
}

func (l *Lexer) scanString() (parse.Token[TokenType], error) {
	line, startCol := l.line, l.column
	l.advance() // opening quote

	var text []byte
	for {
		ch := l.peek()
		switch ch {
		case 0, '\n':
			return parse.Token[TokenType]{}, &LexError{
				Span:    parse.Span{Line: line, StartCol: startCol, EndCol: l.column - 1},
				Message: "unterminated string literal",
			}
		case '"':
			l.advance()
			return parse.Token[TokenType]{
				Type: Str(string(text)),
				Span: parse.Span{Line: line, StartCol: startCol, EndCol: l.column - 1},
			}, nil
		case '\\':
			l.advance()
			esc := l.peek()
			switch esc {
			case '"', '\\':
				text = append(text, esc)
			case 'n':
				text = append(text, '\n')
			case 't':
				text = append(text, '\t')
			default:
				return parse.Token[TokenType]{}, &LexError{
					Span:    parse.Span{Line: l.line, StartCol: l.column - 1, EndCol: l.column},
					Message: fmt.Sprintf("unknown escape sequence \\%c", esc),
				}
			}
			l.advance()
		default:
			text = append(text, ch)
			l.advance()
		}
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || ch == '-' || (ch >= '0' && ch <= '9')
}
