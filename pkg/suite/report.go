package suite

import (
	"time"

	"digital.vasic.matchers/pkg/matcher"
)

// Report is the outcome of running one suite.
type Report struct {
	Suite     string        `json:"suite"`
	Source    string        `json:"source,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Cases     []CaseReport  `json:"cases"`
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
}

// CaseReport is the outcome of one case.
type CaseReport struct {
	Name     string           `json:"name"`
	Passed   bool             `json:"passed"`
	Error    string           `json:"error,omitempty"`
	Results  []matcher.Result `json:"results"`
	Duration time.Duration    `json:"duration"`
}

// Failures returns the results that did not pass.
func (c CaseReport) Failures() []matcher.Result {
	var failed []matcher.Result
	for _, res := range c.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

func newReport(s *Suite) *Report {
	return &Report{
		Suite:     s.Name,
		Source:    s.Source,
		StartedAt: time.Now(),
		Cases:     make([]CaseReport, 0, len(s.Cases)),
	}
}

func (r *Report) add(c CaseReport) {
	r.Cases = append(r.Cases, c)
	r.Total++
	if c.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

func (r *Report) finish() {
	r.Duration = time.Since(r.StartedAt)
}

// Summary aggregates several suite reports.
type Summary struct {
	Suites       int           `json:"suites"`
	FailedSuites int           `json:"failed_suites"`
	Cases        int           `json:"cases"`
	Passed       int           `json:"passed"`
	Failed       int           `json:"failed"`
	Duration     time.Duration `json:"duration"`
	PassRate     float64       `json:"pass_rate"`
}

// Summarize builds a Summary from reports. Nil reports are
// skipped.
func Summarize(reports []*Report) Summary {
	var s Summary
	for _, r := range reports {
		if r == nil {
			continue
		}
		s.Suites++
		if !r.OK() {
			s.FailedSuites++
		}
		s.Cases += r.Total
		s.Passed += r.Passed
		s.Failed += r.Failed
		s.Duration += r.Duration
	}
	if s.Cases > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Cases)
	}
	return s
}
