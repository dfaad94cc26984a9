package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGrammarCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the language grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.engine.Grammar())
			return nil
		},
	}
}
