package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matchcheck",
		Short: "Run declarative matcher suites",
		Long: `matchcheck evaluates matcher suites written in YAML or JSON.
Each case applies named matchers (is_array, is_calculable,
is_html_string, ...) to a subject and reports which ones failed.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())
	return root
}
