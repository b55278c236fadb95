package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

// SimpleWriter outputs the plain text report.
//
// The format is line oriented so it can be piped to grep or diffed:
//
//	Scanning...
//	MISSING FILE  | docs/a.md → b.md
//
//	Done.
//
//	Summary:
//	MISSING FILE  | docs/a.md → b.md
type SimpleWriter struct {
	baseWriter

	// verbose appends scan statistics and warnings after the summary.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the statistics block after the summary.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteHeader writes the line printed before the scan starts.
func (w *SimpleWriter) WriteHeader() (int, error) {
	return io.WriteString(w.output, "Scanning...\n")
}

// WriteProblem writes one live line.
func (w *SimpleWriter) WriteProblem(rec model.LinkRecord) (int, error) {
	return io.WriteString(w.output, rec.Line()+"\n")
}

// Write writes the end-of-scan block: a completion marker followed by
// every problem again, in discovery order.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	if report.Cancelled {
		sb.WriteString("\nInterrupted (partial results).\n\n")
	} else {
		sb.WriteString("\nDone.\n\n")
	}

	sb.WriteString("Summary:\n")
	for _, rec := range report.Problems {
		sb.WriteString(rec.Line())
		sb.WriteString("\n")
	}

	if w.verbose {
		w.writeStatistics(&sb, report)
	}

	return io.WriteString(w.output, sb.String())
}

// writeStatistics writes counters and warnings.
func (w *SimpleWriter) writeStatistics(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Files scanned:  %d\n", len(report.Files)))
	sb.WriteString(fmt.Sprintf("Links checked:  %d\n", report.LinksChecked))
	sb.WriteString(fmt.Sprintf("  OK:           %d\n", report.OKCount))
	sb.WriteString(fmt.Sprintf("  BROKEN:       %d\n", report.BrokenCount))
	sb.WriteString(fmt.Sprintf("  MISSING FILE: %d\n", report.MissingCount))
	if report.SkippedCount > 0 {
		sb.WriteString(fmt.Sprintf("Links skipped:  %d\n", report.SkippedCount))
	}

	if len(report.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warning := range report.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warning))
		}
	}
}
