package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"digital.vasic.matchers/pkg/config"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/metrics"
	"digital.vasic.matchers/pkg/suite"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type runOptions struct {
	configPath string
	envFile    string
	jsonOutput bool
	verbose    bool
	noColor    bool
}

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	dimText   = color.New(color.FgHiBlack).SprintFunc()
)

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [file|directory]...",
		Short: "Run matcher suites",
		Long: `Run matcher suites from YAML or JSON files. Directories are
scanned for .yaml, .yml and .json files. Without arguments the
suites listed in the config file are run.

Examples:
  matchcheck run arrays.yaml
  matchcheck run --json ./suites/
  matchcheck run --config matchers.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", os.Getenv("MATCHERS_CONFIG"), "Path to config file (env: MATCHERS_CONFIG)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Path to .env file with MATCHERS_* settings")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print reports as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every evaluation")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	return cmd
}

func loadConfig(cmd *cobra.Command, opts *runOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	var vars map[string]string
	if opts.envFile != "" {
		if vars, err = config.ReadEnvFile(opts.envFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(config.Lookup(vars)); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	return cfg, nil
}

func runCommand(cmd *cobra.Command, opts *runOptions, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	cfg.ApplyColor()

	paths := args
	if len(paths) == 0 {
		paths = cfg.Suites
	}
	if len(paths) == 0 {
		return withCode(ExitUsageError, fmt.Errorf("no suite files given"))
	}

	c := suite.NewCollection()
	if err := c.Load(paths...); err != nil {
		return withCode(ExitParseError, err)
	}
	suites := c.All()
	if len(suites) == 0 {
		return withCode(ExitParseError, fmt.Errorf("no suite files found"))
	}
	if err := validateAll(cmd, suites); err != nil {
		return err
	}

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	defer logger.Close()

	counter := metrics.NewCounter()
	runner := suite.NewRunner(
		suite.WithLogger(logger),
		suite.WithMetrics(counter),
	)
	reports, runErr := runner.RunAll(cmd.Context(), suites)
	summary := suite.Summarize(reports)
	logMatcherStats(logger, counter)

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		if err := writeJSON(out, reports, summary); err != nil {
			return withCode(ExitOutputError, err)
		}
	} else {
		writeConsole(out, reports, summary)
	}

	if runErr != nil {
		return withCode(ExitTestFailure, runErr)
	}
	if summary.Failed > 0 {
		return withCode(ExitTestFailure, fmt.Errorf("%d of %d cases failed", summary.Failed, summary.Cases))
	}
	return nil
}

func logMatcherStats(logger logging.Logger, counter *metrics.Counter) {
	for _, name := range counter.Matchers() {
		logger.Debug("matcher stats",
			logging.StringField("matcher", name),
			logging.IntField("passed", counter.EvaluationCount(name, true)),
			logging.IntField("failed", counter.EvaluationCount(name, false)),
		)
	}
}

func writeJSON(w io.Writer, reports []*suite.Report, summary suite.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(struct {
		Reports []*suite.Report `json:"reports"`
		Summary suite.Summary   `json:"summary"`
	}{reports, summary})
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func writeConsole(w io.Writer, reports []*suite.Report, summary suite.Summary) {
	for _, r := range reports {
		fmt.Fprintf(w, "%s %s\n", r.Suite, dimText("("+r.Source+")"))
		for _, c := range r.Cases {
			if c.Passed {
				fmt.Fprintf(w, "  %s %s\n", passLabel("PASS"), c.Name)
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", failLabel("FAIL"), c.Name)
			if c.Error != "" {
				fmt.Fprintf(w, "       %s\n", c.Error)
			}
			for _, res := range c.Failures() {
				fmt.Fprintf(w, "       %s\n", res.Message)
			}
		}
	}

	line := fmt.Sprintf(
		"%d suites, %d cases, %d passed, %d failed (%s)",
		summary.Suites, summary.Cases, summary.Passed, summary.Failed,
		summary.Duration.Round(time.Microsecond),
	)
	if summary.Failed > 0 {
		fmt.Fprintln(w, failLabel(line))
	} else {
		fmt.Fprintln(w, passLabel(line))
	}
}
