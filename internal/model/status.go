package model

import "encoding/json"

// Status is the externally visible outcome of a link check.
//
// Design decision: The taxonomy is intentionally coarse. Richer diagnostic
// detail is carried separately in ErrorKind so that the printed report stays
// stable while callers can still tell a timeout from a 404.
type Status int

const (
	// StatusOK means the link target is reachable or exists.
	StatusOK Status = iota

	// StatusBroken means an external link failed its reachability probe
	// or answered with an error-class HTTP status.
	StatusBroken

	// StatusMissingFile means a local link does not resolve to an existing path.
	StatusMissingFile

	// StatusSkipped means the link uses a scheme on the configured
	// skip list and was not checked at all.
	StatusSkipped
)

// String returns the label printed in reports.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusBroken:
		return "BROKEN"
	case StatusMissingFile:
		return "MISSING FILE"
	case StatusSkipped:
		return "SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// IsProblem reports whether the status must appear in the report.
// OK and skipped links are never printed.
func (s Status) IsProblem() bool {
	return s == StatusBroken || s == StatusMissingFile
}

// MarshalJSON encodes the status as its report label.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Kind is the classification of a link target.
type Kind int

const (
	// KindLocal is any target that is not recognized as external.
	// It is resolved as a path relative to the referencing file.
	KindLocal Kind = iota

	// KindExternal is a target beginning with "http://" or "https://".
	KindExternal

	// KindSkipped is a target whose scheme is on the skip list.
	KindSkipped
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindExternal:
		return "external"
	case KindSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// ErrorKind describes why a check failed.
// It never changes the Status a link is reported with.
type ErrorKind string

const (
	// ErrorKindNone is used for successful checks.
	ErrorKindNone ErrorKind = ""

	// ErrorKindHTTPStatus means the server answered with status >= 400.
	ErrorKindHTTPStatus ErrorKind = "http_status"

	// ErrorKindTimeout means the probe did not finish within the timeout.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindDNS means the host name could not be resolved.
	ErrorKindDNS ErrorKind = "dns"

	// ErrorKindConnection covers refused, reset and unreachable connections.
	ErrorKindConnection ErrorKind = "connection"

	// ErrorKindTLS means the TLS handshake or certificate verification failed.
	ErrorKindTLS ErrorKind = "tls"

	// ErrorKindInvalidURL means the target could not be turned into a request.
	ErrorKindInvalidURL ErrorKind = "invalid_url"

	// ErrorKindNotExist means the resolved local path does not exist.
	ErrorKindNotExist ErrorKind = "not_exist"

	// ErrorKindPermission means the local path could not be inspected.
	ErrorKindPermission ErrorKind = "permission"

	// ErrorKindInvalidPath means the local path is not valid for the filesystem.
	ErrorKindInvalidPath ErrorKind = "invalid_path"

	// ErrorKindOther is any failure not covered above.
	ErrorKindOther ErrorKind = "other"
)
