package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/gram/format"
	"github.com/dhamidi/gram/grammar"
	"github.com/dhamidi/gram/parse"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var grammarName string

	cmd := &cobra.Command{
		Use:           "parse <file>",
		Short:         "Parse a document and dump the resulting tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			input, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			tokens, err := grammar.Lex(input)
			if err != nil {
				return fmt.Errorf("%s:%w", filename, err)
			}

			parsed, err := runGrammar(grammarName, tokens)
			if err != nil {
				return err
			}

			var encoder format.Encoder[grammar.TokenType]
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder[grammar.TokenType](os.Stdout)
			case "text":
				encoder = format.NewTextEncoder[grammar.TokenType](os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(parsed); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if parsed.Result.IsErr() {
				return fmt.Errorf("%s:%w", filename, parsed.Result.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format: json or text")
	cmd.Flags().StringVar(&grammarName, "grammar", "rules", "grammar to use: rules or items")

	return cmd
}

func runGrammar(name string, tokens []parse.Token[grammar.TokenType]) (parse.Parse[grammar.TokenType], error) {
	switch name {
	case "rules":
		return grammar.ParseDocument(tokens), nil
	case "items":
		return grammar.ParseItems(tokens), nil
	default:
		return parse.Parse[grammar.TokenType]{}, fmt.Errorf("unknown grammar: %s", name)
	}
}
