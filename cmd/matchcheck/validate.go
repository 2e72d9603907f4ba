package main

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/suite"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|directory>...",
		Short: "Validate suite files without running them",
		Long: `Validate suite files for structural errors and unknown
matcher names without evaluating any case.

Examples:
  matchcheck validate arrays.yaml
  matchcheck validate ./suites/`,
		Args: cobra.MinimumNArgs(1),
		RunE: validateCommand,
	}
}

func validateCommand(cmd *cobra.Command, args []string) error {
	c := suite.NewCollection()
	if err := c.Load(args...); err != nil {
		return withCode(ExitParseError, err)
	}
	if err := validateAll(cmd, c.All()); err != nil {
		return err
	}
	for _, s := range c.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", s.Source)
	}
	return nil
}

// validateAll prints every validation error and fails when any
// suite is invalid.
func validateAll(cmd *cobra.Command, suites []*suite.Suite) error {
	reg := matcher.NewRegistry()
	hasErrors := false
	for _, s := range suites {
		for _, verr := range suite.Validate(s, reg.Has) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", s.Source, verr)
			hasErrors = true
		}
	}
	if hasErrors {
		return withCode(ExitParseError, fmt.Errorf("validation failed"))
	}
	return nil
}
