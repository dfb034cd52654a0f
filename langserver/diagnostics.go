package langserver

import (
	"errors"
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/gram/grammar"
	"github.com/dhamidi/gram/parse"
)

// Diagnostics lexes and parses a rule-notation document and returns the
// syntax errors as LSP diagnostics. A clean document yields nil.
func Diagnostics(input []byte) []protocol.Diagnostic {
	tokens, err := grammar.Lex(input)
	if err != nil {
		var lexErr *grammar.LexError
		if errors.As(err, &lexErr) {
			return []protocol.Diagnostic{diagnostic(lexErr.Span, lexErr.Message)}
		}
		return []protocol.Diagnostic{diagnostic(parse.DefaultSpan, err.Error())}
	}

	parsed := grammar.ParseDocument(tokens)
	if parsed.Result.IsErr() {
		perr := parsed.Result.Err
		message := fmt.Sprintf("%s: expected %s", perr.Message, perr.Expected)
		return []protocol.Diagnostic{diagnostic(perr.Span, message)}
	}
	return nil
}

func diagnostic(span parse.Span, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    rangeFromSpan(span),
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// rangeFromSpan converts a 1-based, inclusive-column span to a 0-based,
// end-exclusive LSP range.
func rangeFromSpan(span parse.Span) protocol.Range {
	line := protocol.UInteger(span.Line - 1)
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: protocol.UInteger(span.StartCol - 1)},
		End:   protocol.Position{Line: line, Character: protocol.UInteger(span.EndCol)},
	}
}
