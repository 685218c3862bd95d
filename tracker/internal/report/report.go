package report

import (
	"fmt"
	"io"

	"github.com/fittracker/fittracker/tracker/internal/batch"
	"github.com/fittracker/fittracker/tracker/internal/config"
)

// Formatter writes a rendering of results to w.
type Formatter interface {
	Format(w io.Writer, results []batch.Result) error
}

// New returns the Formatter for format.
func New(format string) (Formatter, error) {
	switch format {
	case config.FormatText:
		return textFormatter{}, nil
	case config.FormatJSON:
		return jsonFormatter{}, nil
	case config.FormatPrometheus:
		return promFormatter{}, nil
	default:
		return nil, fmt.Errorf("report: unsupported format %q", format)
	}
}

type textFormatter struct{}

func (textFormatter) Format(w io.Writer, results []batch.Result) error {
	for _, r := range results {
		if !r.OK() {
			continue
		}
		if _, err := fmt.Fprintln(w, r.Summary.Message()); err != nil {
			return fmt.Errorf("report: write text: %w", err)
		}
	}
	return nil
}
