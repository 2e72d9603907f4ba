package main

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/suite"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file|directory]...",
		Short: "List registered matchers, or the cases of suite files",
		Long: `Without arguments, list every built-in matcher name.
With arguments, list the suites and cases found in them.

Examples:
  matchcheck list
  matchcheck list ./suites/`,
		RunE: listCommand,
	}
}

func listCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, name := range matcher.NewRegistry().Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	c := suite.NewCollection()
	if err := c.Load(args...); err != nil {
		return withCode(ExitParseError, err)
	}
	for _, s := range c.All() {
		fmt.Fprintf(out, "\n%s (%s):\n", s.Name, s.Source)
		for _, tc := range s.Cases {
			fmt.Fprintf(out, "  - %s\n", tc.Name)
		}
	}
	return nil
}
