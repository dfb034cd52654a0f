package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/gram/parse"
)

// TextEncoder renders a parse outcome as an indented tree, one token or
// structural node per line.
type TextEncoder[T comparable] struct {
	w io.Writer
}

func NewTextEncoder[T comparable](w io.Writer) *TextEncoder[T] {
	return &TextEncoder[T]{w: w}
}

func (e *TextEncoder[T]) Encode(p parse.Parse[T]) error {
	var b strings.Builder

	switch {
	case p.Result.IsOk():
		fmt.Fprintf(&b, "%s (%d..%d)\n", p.Rule, p.Start, p.End)
		writeData[T](&b, p.Result.Data, 1)
	case p.Result.IsErr():
		err := p.Result.Err
		fmt.Fprintf(&b, "%s: %s: %s: expected %s\n", p.Rule, err.Span, err.Message, err.Expected)
	default:
		fmt.Fprintf(&b, "%s: no match\n", p.Rule)
	}

	_, err := io.WriteString(e.w, b.String())
	return err
}

func writeData[T comparable](b *strings.Builder, data parse.ParseData[T], depth int) {
	indent := strings.Repeat("  ", depth)
	switch d := data.(type) {
	case parse.Leaf[T]:
		fmt.Fprintf(b, "%s%v %s\n", indent, d.Token.Type, d.Token.Span)
	case parse.TokenList[T]:
		for _, tok := range d.Tokens {
			fmt.Fprintf(b, "%s%v %s\n", indent, tok.Type, tok.Span)
		}
	case parse.Nested[T]:
		for _, child := range d.Children {
			if nested, ok := child.(parse.Nested[T]); ok {
				fmt.Fprintf(b, "%s-\n", indent)
				writeData[T](b, nested, depth+1)
				continue
			}
			writeData[T](b, child, depth)
		}
	}
}
