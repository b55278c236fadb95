package report

import (
	"io"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

// Writer defines the interface for final report output.
type Writer interface {
	// Write outputs the report once the scan is complete.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// LiveWriter streams problems while the scan is still running.
//
// Design decision: Problems are shown as they are found and again in the
// final summary. Long scans give early feedback, and the end of the output
// still has the complete list without scrolling back.
type LiveWriter interface {
	// WriteHeader is called once before any link is checked.
	WriteHeader() (int, error)

	// WriteProblem is called for each non-OK record in discovery order.
	WriteProblem(rec model.LinkRecord) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
