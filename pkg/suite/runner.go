package suite

import (
	"context"
	"fmt"
	"time"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/metrics"
)

// SetupFunc customizes the registry built for each case, for
// example to register project-specific predicates.
type SetupFunc func(reg *matcher.Registry) error

// Runner executes suites. Every case gets its own registry, so
// predicates registered while running one case never leak into
// the next.
type Runner struct {
	logger  logging.Logger
	metrics metrics.Recorder
	env     matcher.Environment
	setup   []SetupFunc
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used by the runner and by the
// registries it builds.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the recorder for case and evaluation counts.
func WithMetrics(recorder metrics.Recorder) RunnerOption {
	return func(r *Runner) {
		if recorder != nil {
			r.metrics = recorder
		}
	}
}

// WithEnvironment sets the host globals seen by is_window and
// is_document.
func WithEnvironment(env matcher.Environment) RunnerOption {
	return func(r *Runner) {
		r.env = env
	}
}

// WithSetup adds a hook run against each case's registry before
// the case is evaluated.
func WithSetup(fn SetupFunc) RunnerOption {
	return func(r *Runner) {
		r.setup = append(r.setup, fn)
	}
}

// NewRunner creates a Runner with the supplied options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:  logging.NullLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every case of s in order. It stops before the
// next case once ctx is done and returns the partial report
// together with the context error.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Report, error) {
	log := r.logger.WithFields(logging.StringField("suite", s.Name))
	report := newReport(s)
	log.Info("suite started", logging.IntField("cases", len(s.Cases)))

	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			report.finish()
			log.Warn("suite interrupted", logging.ErrorField(err))
			return report, fmt.Errorf("run suite %s: %w", s.Name, err)
		}
		report.add(r.runCase(log, s.Name, c))
	}

	report.finish()
	log.Info("suite finished",
		logging.IntField("passed", report.Passed),
		logging.IntField("failed", report.Failed),
	)
	return report, nil
}

// RunAll runs each suite in order and stops at the first error.
func (r *Runner) RunAll(ctx context.Context, suites []*Suite) ([]*Report, error) {
	reports := make([]*Report, 0, len(suites))
	for _, s := range suites {
		report, err := r.Run(ctx, s)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}

func (r *Runner) runCase(log logging.Logger, suiteName string, c Case) CaseReport {
	start := time.Now()
	cr := CaseReport{Name: c.Name}

	if err := r.evaluate(&cr, c); err != nil {
		cr.Error = err.Error()
	}
	cr.Passed = cr.Error == "" && len(cr.Failures()) == 0
	cr.Duration = time.Since(start)

	r.metrics.RecordCase(suiteName, cr.Passed, cr.Duration)
	if cr.Passed {
		log.Debug("case passed", logging.StringField("case", c.Name))
	} else {
		log.Warn("case failed",
			logging.StringField("case", c.Name),
			logging.StringField("error", cr.Error),
			logging.IntField("failures", len(cr.Failures())),
		)
	}
	return cr
}

func (r *Runner) evaluate(cr *CaseReport, c Case) error {
	reg := matcher.NewRegistry(
		matcher.WithLogger(r.logger),
		matcher.WithMetrics(r.metrics),
		matcher.WithEnvironment(r.env),
	)
	for _, fn := range r.setup {
		if err := fn(reg); err != nil {
			return fmt.Errorf("setup: %w", err)
		}
	}

	subject, err := c.ResolveSubject()
	if err != nil {
		return err
	}
	for _, def := range c.definitions() {
		cr.Results = append(cr.Results, reg.Check(def, subject))
	}
	return nil
}
