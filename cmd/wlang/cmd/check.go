package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/wlang/pkg/lang/frontend"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Parse with both back ends and compare the results",
		Long: `Parses a program with the descent and the participle back end and
reports whether both accept it with the same tree, or both reject it.
Disagreement exits with status 1.`,
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

			res, err := s.engine.CrossCheck(cmd.Context(), input)
			if res != nil {
				out := cmd.OutOrStdout()
				printOutcome(out, res.Descent)
				printOutcome(out, res.Participle)
				if res.Agree() {
					fmt.Fprintln(out, "agree")
				}
			}
			return err
		},
	}
}

func printOutcome(w io.Writer, o *frontend.Outcome) {
	if o.OK() {
		fmt.Fprintf(w, "%-11s %s\n", o.Backend+":", o.Canonical)
		return
	}
	fmt.Fprintf(w, "%-11s %s\n", o.Backend+":", o.Err.Error())
}
