// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: The plain text report, with live lines during the scan
//     and a Summary block at the end
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing results
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) so that new output formats can be added
// without modifying the core data structures.
package report
