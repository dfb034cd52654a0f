package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/gram/parse"
)

type JSONEncoder[T comparable] struct {
	w io.Writer
}

func NewJSONEncoder[T comparable](w io.Writer) *JSONEncoder[T] {
	return &JSONEncoder[T]{w: w}
}

func (e *JSONEncoder[T]) Encode(p parse.Parse[T]) error {
	text, err := e.MarshalText(p)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder[T]) MarshalText(p parse.Parse[T]) ([]byte, error) {
	return json.MarshalIndent(parseToJSON(p), "", "  ")
}

type jsonParse struct {
	Rule    string     `json:"rule"`
	Start   int        `json:"start"`
	End     int        `json:"end"`
	Matched *jsonData  `json:"matched,omitempty"`
	Error   *jsonError `json:"error,omitempty"`
	None    bool       `json:"none,omitempty"`
}

type jsonData struct {
	Kind     string      `json:"kind"`
	Token    *jsonToken  `json:"token,omitempty"`
	Tokens   []jsonToken `json:"tokens,omitempty"`
	Children []*jsonData `json:"children,omitempty"`
}

type jsonToken struct {
	Type string   `json:"type"`
	Span jsonSpan `json:"span"`
}

type jsonSpan struct {
	Line     int `json:"line"`
	StartCol int `json:"startCol"`
	EndCol   int `json:"endCol"`
}

type jsonError struct {
	Expected string   `json:"expected"`
	Span     jsonSpan `json:"span"`
	Message  string   `json:"message"`
}

func parseToJSON[T comparable](p parse.Parse[T]) *jsonParse {
	jp := &jsonParse{
		Rule:  p.Rule,
		Start: p.Start,
		End:   p.End,
	}
	switch {
	case p.Result.IsOk():
		jp.Matched = dataToJSON[T](p.Result.Data)
	case p.Result.IsErr():
		jp.Error = &jsonError{
			Expected: p.Result.Err.Expected,
			Span:     spanToJSON(p.Result.Err.Span),
			Message:  p.Result.Err.Message,
		}
	default:
		jp.None = true
	}
	return jp
}

func dataToJSON[T comparable](data parse.ParseData[T]) *jsonData {
	switch d := data.(type) {
	case parse.Leaf[T]:
		tok := tokenToJSON(d.Token)
		return &jsonData{Kind: "token", Token: &tok}
	case parse.TokenList[T]:
		jd := &jsonData{Kind: "tokens"}
		for _, tok := range d.Tokens {
			jd.Tokens = append(jd.Tokens, tokenToJSON(tok))
		}
		return jd
	case parse.Nested[T]:
		jd := &jsonData{Kind: "nested"}
		for _, child := range d.Children {
			jd.Children = append(jd.Children, dataToJSON[T](child))
		}
		return jd
	}
	return nil
}

func tokenToJSON[T comparable](tok parse.Token[T]) jsonToken {
	return jsonToken{
		Type: fmt.Sprintf("%v", tok.Type),
		Span: spanToJSON(tok.Span),
	}
}

func spanToJSON(s parse.Span) jsonSpan {
	return jsonSpan{Line: s.Line, StartCol: s.StartCol, EndCol: s.EndCol}
}
