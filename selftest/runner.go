package selftest

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/YoungY620/prefixsum/catalog"
	"github.com/YoungY620/prefixsum/internal"
)

// ErrMismatch is returned by Report.Err when at least one case failed.
var ErrMismatch = errors.New("self-test mismatch")

// Result is the outcome of one case.
type Result struct {
	Case     string `json:"case"`
	Problem  string `json:"problem"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Passed   bool   `json:"passed"`
	Error    string `json:"error,omitempty"`
}

// Report summarizes a run.
type Report struct {
	Total    int           `json:"total"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
	Results  []Result      `json:"results"`
}

// Err returns an ErrMismatch-wrapping error if any case failed, nil otherwise.
func (r Report) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d cases failed", ErrMismatch, r.Failed, r.Total)
}

// Runner executes cases and writes their output to Out.
type Runner struct {
	Out     io.Writer
	Catalog *catalog.Catalog
	History *internal.HistoryLogger
}

// NewRunner creates a runner printing to out, using the default catalog.
func NewRunner(out io.Writer) *Runner {
	return &Runner{Out: out, Catalog: catalog.Default()}
}

// Run executes every case in order. A "Test cases:" header opens each run of
// consecutive cases for the same problem.
func (r *Runner) Run(cases []catalog.Case) Report {
	start := time.Now()
	report := Report{Results: make([]Result, 0, len(cases))}

	prev := ""
	for _, c := range cases {
		if c.Problem != prev {
			r.printHeader(c.Problem)
			prev = c.Problem
		}

		res := r.runCase(c)
		report.Results = append(report.Results, res)
		report.Total++
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
			r.History.LogMismatch(res.Case, res.Expected, res.Actual)
			internal.LogDebug("Case %s failed: expected %s, got %s", res.Case, res.Expected, res.Actual)
		}
	}

	report.Duration = time.Since(start)
	fmt.Fprintf(r.Out, "Summary: %d passed, %d failed, %d total\n", report.Passed, report.Failed, report.Total)
	r.History.LogRun(report.Total, report.Passed, report.Failed, report.Duration)
	return report
}

// printHeader opens a problem block. The blank line after the previous
// case already separates it from the block before.
func (r *Runner) printHeader(problem string) {
	if r.Catalog != nil {
		if p, err := r.Catalog.Lookup(problem); err == nil {
			fmt.Fprintf(r.Out, "%d. %s\n", p.Number, p.Title)
		}
	}
	fmt.Fprintln(r.Out, "Test cases:")
}

func (r *Runner) runCase(c catalog.Case) Result {
	res := Result{
		Case:     c.Name,
		Problem:  c.Problem,
		Input:    c.Input(),
		Expected: c.Want.String(),
	}

	got, err := Solve(c)
	if err != nil {
		res.Error = err.Error()
		res.Actual = "error: " + err.Error()
	} else {
		res.Actual = got.String()
		res.Passed = got.Equal(c.Want)
	}

	fmt.Fprintf(r.Out, "Input: %s\n", res.Input)
	fmt.Fprintf(r.Out, "Expected Output: %s\n", res.Expected)
	if res.Passed {
		fmt.Fprintf(r.Out, "Actual Output: %s\n", res.Actual)
	} else {
		fmt.Fprintf(r.Out, "Actual Output: %s  <- MISMATCH\n", res.Actual)
	}
	fmt.Fprintln(r.Out)
	return res
}
