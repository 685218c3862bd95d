package batch

import (
	"fmt"
	"log/slog"

	"github.com/fittracker/fittracker/pkg/types"
	"github.com/fittracker/fittracker/pkg/workout"
	"github.com/fittracker/fittracker/tracker/internal/config"
)

// Result is the outcome of processing one package.
type Result struct {
	// Index is the position of the package in the input batch.
	Index int

	// Name is the package label, or "<type>#<index>" when the package has none.
	Name string

	// Code is the workout type code as given in the package.
	Code string

	// Summary is valid only when Err is nil.
	Summary types.Summary

	Err error
}

// OK reports whether the package produced a summary.
func (r Result) OK() bool { return r.Err == nil }

// Processor turns packages into results.
type Processor struct {
	logger *slog.Logger
}

// New returns a Processor that logs per-package outcomes to logger.
// A nil logger uses slog.Default().
func New(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// Run processes every package in order and returns one Result per package.
func (p *Processor) Run(pkgs []config.Package) []Result {
	out := make([]Result, 0, len(pkgs))
	for i, pkg := range pkgs {
		res := p.process(i, pkg)
		if res.Err != nil {
			p.logger.Warn("batch: package failed", "index", i, "name", res.Name, "type", pkg.Type, "err", res.Err)
		} else {
			p.logger.Debug("batch: package processed",
				"index", i,
				"name", res.Name,
				"kind", res.Summary.Kind,
				"calories", res.Summary.CaloriesKcal,
			)
		}
		out = append(out, res)
	}
	return out
}

func (p *Processor) process(i int, pkg config.Package) Result {
	res := Result{Index: i, Name: pkg.Name, Code: pkg.Type}
	if res.Name == "" {
		res.Name = fmt.Sprintf("%s#%d", pkg.Type, i)
	}

	calc, err := workout.Create(pkg.Type, pkg.Data)
	if err != nil {
		res.Err = err
		return res
	}
	res.Summary, res.Err = workout.Summarize(calc)
	return res
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
