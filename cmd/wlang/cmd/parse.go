package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/wlang/pkg/lang/frontend"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a program and print its syntax tree",
		Long: `Parses a while program and prints its syntax tree on stdout.

The first lexical or syntax error is printed on stderr and wlang exits
with status 1; no partial tree is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}
}

func runParse(cmd *cobra.Command, opts *rootOptions, args []string) error {
	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}

	input, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	res, err := s.engine.Parse(cmd.Context(), input)
	if err != nil {
		return err
	}

	out, err := frontend.Render(res.Program, s.format, s.style)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
