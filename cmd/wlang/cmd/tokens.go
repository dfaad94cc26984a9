package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a program",
		Long: `Scans a while program and prints one token per line: the token kind,
followed by the lexeme for numbers and identifiers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			input, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := s.engine.Tokenize(cmd.Context(), input)
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok.String())
			}
			return nil
		},
	}
}
