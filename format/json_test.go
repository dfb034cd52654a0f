package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dhamidi/gram/grammar"
	"github.com/dhamidi/gram/parse"
)

func parseSource(t *testing.T, input string) parse.Parse[grammar.TokenType] {
	t.Helper()
	tokens, err := grammar.Lex([]byte(input))
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	return grammar.ParseItems(tokens)
}

func TestJSONEncoder_Match(t *testing.T) {
	parsed := parseSource(t, `a = "x"`)

	var buf bytes.Buffer
	if err := NewJSONEncoder[grammar.TokenType](&buf).Encode(parsed); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded struct {
		Rule    string `json:"rule"`
		Start   int    `json:"start"`
		End     int    `json:"end"`
		Matched *struct {
			Kind     string            `json:"kind"`
			Children []json.RawMessage `json:"children"`
		} `json:"matched"`
		Error *struct{} `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Rule != "items" {
		t.Errorf("rule = %q", decoded.Rule)
	}
	if decoded.End != 4 {
		t.Errorf("end = %d, want 4", decoded.End)
	}
	if decoded.Error != nil {
		t.Error("unexpected error field")
	}
	if decoded.Matched == nil || decoded.Matched.Kind != "nested" {
		t.Fatalf("matched = %+v", decoded.Matched)
	}
	if len(decoded.Matched.Children) != 2 {
		t.Errorf("expected 2 children (fields + EOI), got %d", len(decoded.Matched.Children))
	}
}

func TestJSONEncoder_Error(t *testing.T) {
	parsed := parseSource(t, "a = ")

	var buf bytes.Buffer
	if err := NewJSONEncoder[grammar.TokenType](&buf).Encode(parsed); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded struct {
		Error *struct {
			Expected string `json:"expected"`
			Message  string `json:"message"`
			Span     struct {
				Line     int `json:"line"`
				StartCol int `json:"startCol"`
			} `json:"span"`
		} `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Error == nil {
		t.Fatal("expected error field")
	}
	if decoded.Error.Span.Line != 1 || decoded.Error.Span.StartCol != 5 {
		t.Errorf("error span = %+v", decoded.Error.Span)
	}
}

func TestTextEncoder(t *testing.T) {
	parsed := parseSource(t, `a = "x"`)

	var buf bytes.Buffer
	if err := NewTextEncoder[grammar.TokenType](&buf).Encode(parsed); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("items (0..4)")) {
		t.Errorf("missing header line in output:\n%s", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`Identifier("a") 1:1-1`)) {
		t.Errorf("missing token line in output:\n%s", out)
	}
}

func TestTextEncoder_Error(t *testing.T) {
	parsed := parseSource(t, "a = ")

	var buf bytes.Buffer
	if err := NewTextEncoder[grammar.TokenType](&buf).Encode(parsed); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("1:5-5")) {
		t.Errorf("error output must carry the span:\n%s", buf.String())
	}
}
