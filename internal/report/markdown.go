package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

// maxDetailLen bounds the Detail column so tables stay readable.
const maxDetailLen = 60

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for pasting into issues and pull requests.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
//
// The scan date is deliberately left out so that two runs over the same
// tree produce identical documents.
type MarkdownWriter struct {
	baseWriter

	title cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeProblems(md, report)
	w.writeWarnings(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Markdown Link Check Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Root Directory", "`" + report.Root + "`"},
			{"Files Scanned", strconv.Itoa(len(report.Files))},
			{"Links Checked", strconv.Itoa(report.LinksChecked)},
			{"Status", statusText(report)},
		},
	})
	md.PlainText("")
}

// statusText returns the status text based on report state.
func statusText(report *model.Report) string {
	if report.Cancelled {
		return "⚠️ Interrupted (partial results)"
	}
	return "✅ Complete"
}

// writeSummary writes the per-status counts, a chart and an alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count"},
		Rows: [][]string{
			{w.label(model.StatusOK), strconv.Itoa(report.OKCount)},
			{w.label(model.StatusBroken), strconv.Itoa(report.BrokenCount)},
			{w.label(model.StatusMissingFile), strconv.Itoa(report.MissingCount)},
			{w.label(model.StatusSkipped), strconv.Itoa(report.SkippedCount)},
		},
	})
	md.PlainText("")

	if report.HasProblems() {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// label renders a status for human readers, e.g. "Missing File".
func (w *MarkdownWriter) label(status model.Status) string {
	return w.title.String(strings.ToLower(status.String()))
}

// writePieChart writes a mermaid pie chart for the status distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Link Status Distribution"),
		piechart.WithShowData(true),
	)

	counts := []struct {
		status model.Status
		count  int
	}{
		{model.StatusOK, report.OKCount},
		{model.StatusBroken, report.BrokenCount},
		{model.StatusMissingFile, report.MissingCount},
	}
	for _, c := range counts {
		if c.count > 0 {
			chart.LabelAndIntValue(w.label(c.status), uint64(c.count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the problem counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	switch {
	case report.BrokenCount > 0 && report.MissingCount > 0:
		md.Cautionf(
			"%d broken external link(s) and %d missing local file(s) found.",
			report.BrokenCount, report.MissingCount,
		)
	case report.BrokenCount > 0:
		md.Warningf("%d broken external link(s) found.", report.BrokenCount)
	case report.MissingCount > 0:
		md.Warningf("%d link(s) point to missing local files.", report.MissingCount)
	case report.LinksChecked == 0:
		md.Note("No links found.")
	default:
		md.Tip("All links are reachable.")
	}
	md.PlainText("")
}

// writeProblems writes one table row per non-OK link, in discovery order.
func (w *MarkdownWriter) writeProblems(md *markdown.Markdown, report *model.Report) {
	md.H2("Problems")
	md.PlainText("")

	if !report.HasProblems() {
		md.PlainText("No broken links detected.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Problems))
	for i, rec := range report.Problems {
		rows[i] = []string{
			rec.Status.String(),
			"`" + escapeCell(rec.Source) + "`",
			"`" + escapeCell(rec.Target) + "`",
			escapeCell(truncateString(detail(rec), maxDetailLen)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Status", "Source", "Target", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}

// detail summarizes why a record is a problem.
func detail(rec model.LinkRecord) string {
	switch {
	case rec.ErrorKind == model.ErrorKindHTTPStatus && rec.StatusCode != 0:
		return "HTTP " + strconv.Itoa(rec.StatusCode)
	case rec.ErrorKind != model.ErrorKindNone:
		return string(rec.ErrorKind)
	default:
		return "-"
	}
}

// writeWarnings lists traversal and read problems, if any.
func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, report *model.Report) {
	if len(report.Warnings) == 0 {
		return
	}

	md.H2("Warnings")
	md.PlainText("")
	md.BulletList(report.Warnings...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [mdlinkcheck](https://github.com/nao1215/mdlinkcheck)*")
}

// escapeCell keeps a pipe inside a value from splitting the table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
