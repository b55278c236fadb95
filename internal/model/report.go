package model

import "time"

// Report is the accumulated result of a single scan.
// It is created once per invocation, filled in by the pipeline steps,
// and read once at the end to produce the summary.
type Report struct {
	// Root is the directory tree that was scanned.
	Root string `json:"root"`

	// DateScanned is when the scan started. It is only used by the JSON
	// output; the text report stays byte-identical across runs.
	DateScanned time.Time `json:"date_scanned"`

	// Files lists the Markdown files found, in traversal order.
	Files []string `json:"files"`

	// Links lists every extracted link, in discovery order.
	Links []Link `json:"-"`

	// Problems holds the non-OK records in discovery order.
	Problems []LinkRecord `json:"problems"`

	// LinksChecked counts links that went through a check (skipped links excluded).
	LinksChecked int `json:"links_checked"`

	// OKCount, BrokenCount, MissingCount and SkippedCount count results by status.
	OKCount      int `json:"ok_count"`
	BrokenCount  int `json:"broken_count"`
	MissingCount int `json:"missing_count"`
	SkippedCount int `json:"skipped_count"`

	// Warnings collects non-fatal problems such as unreadable directories
	// or files. They never abort the scan.
	Warnings []string `json:"warnings,omitempty"`

	// Cancelled is true if the scan was interrupted before every link
	// was checked. The report then contains partial results.
	Cancelled bool `json:"cancelled,omitempty"`
}

// NewReport creates an empty report for the given root directory,
// stamped with the current time.
func NewReport(root string) *Report {
	return NewReportAt(root, time.Now())
}

// NewReportAt creates an empty report stamped with scanned.
func NewReportAt(root string, scanned time.Time) *Report {
	return &Report{
		Root:        root,
		DateScanned: scanned,
		Files:       make([]string, 0),
		Links:       make([]Link, 0),
		Problems:    make([]LinkRecord, 0),
	}
}

// AddLink appends an extracted link and assigns its discovery index.
func (r *Report) AddLink(source, target string) Link {
	link := Link{Source: source, Target: target, Index: len(r.Links)}
	r.Links = append(r.Links, link)
	return link
}

// AddRecord tallies a check result. Non-OK records are kept for the summary.
func (r *Report) AddRecord(rec LinkRecord) {
	switch rec.Status {
	case StatusOK:
		r.OKCount++
	case StatusBroken:
		r.BrokenCount++
	case StatusMissingFile:
		r.MissingCount++
	case StatusSkipped:
		r.SkippedCount++
		return
	}
	r.LinksChecked++

	if rec.Status.IsProblem() {
		r.Problems = append(r.Problems, rec)
	}
}

// AddWarning records a non-fatal problem.
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// HasProblems reports whether any broken link or missing file was found.
func (r *Report) HasProblems() bool {
	return len(r.Problems) > 0
}

// ProblemCount returns the number of non-OK records.
func (r *Report) ProblemCount() int {
	return len(r.Problems)
}
