package checker

import "github.com/nao1215/mdlinkcheck/internal/model"

// Result is the outcome of a single external or local check.
type Result struct {
	// Status is the coarse outcome shown in reports.
	Status model.Status

	// ErrorKind tells why the check failed. It is empty on success.
	ErrorKind model.ErrorKind

	// StatusCode is the final HTTP status of an external probe, or 0 if
	// no response was received.
	StatusCode int

	// ResolvedPath is the absolute path checked for a local link.
	ResolvedPath string

	// Err is the underlying error, if any.
	Err error
}

// OK reports whether the check passed.
func (r Result) OK() bool {
	return r.Status == model.StatusOK
}
