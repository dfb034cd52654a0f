package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/gram/grammar"
)

func newCheckCmd() *cobra.Command {
	var grammarName string

	cmd := &cobra.Command{
		Use:           "check <file>...",
		Short:         "Check documents for syntax errors",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				if err := checkFile(filename, grammarName); err != nil {
					fmt.Fprintln(os.Stderr, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&grammarName, "grammar", "rules", "grammar to use: rules or items")

	return cmd
}

func checkFile(filename, grammarName string) error {
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
	if parsed.Result.IsErr() {
		return fmt.Errorf("%s:%w", filename, parsed.Result.Err)
	}
	return nil
}
