package model

import "fmt"

// Link is a single link target found in a Markdown file.
type Link struct {
	// Source is the path of the Markdown file that contains the link.
	Source string `json:"source"`

	// Target is the raw text between the parentheses, exactly as written.
	Target string `json:"target"`

	// Index is the position of the link in discovery order across the
	// whole scan. It is used to keep output deterministic when links are
	// checked concurrently.
	Index int `json:"-"`
}

// LinkRecord is the result of checking one link.
//
// Only Source, Target and Status are part of the printed report. The other
// fields carry diagnostics for logging and the JSON report.
type LinkRecord struct {
	Source     string    `json:"source"`
	Target     string    `json:"target"`
	Status     Status    `json:"status"`
	Kind       Kind      `json:"kind"`
	ErrorKind  ErrorKind `json:"error_kind,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`

	// Message is a human-readable description of the failure, if any.
	Message string `json:"message,omitempty"`

	// ResolvedPath is the absolute path checked for local links.
	ResolvedPath string `json:"resolved_path,omitempty"`
}

// NewLinkRecord creates a record for the given link with the given status.
func NewLinkRecord(link Link, kind Kind, status Status) LinkRecord {
	return LinkRecord{
		Source: link.Source,
		Target: link.Target,
		Status: status,
		Kind:   kind,
	}
}

// Line formats the record as a single report line:
// the status padded to 13 characters, the source file and the target.
func (r LinkRecord) Line() string {
	return fmt.Sprintf("%-13s | %s → %s", r.Status, r.Source, r.Target)
}
