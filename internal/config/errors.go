package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling. Where the offending value
// helps the user, Validate wraps the sentinel with fmt.Errorf and %w.
var (
	// ErrNoRoot is returned when no root directory is specified by argument,
	// environment variable or configuration file.
	ErrNoRoot = errors.New("no root directory specified: pass it as an argument or set " + EnvRoot)

	// ErrRootNotFound is returned when the root directory does not exist.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrRootNotDir is returned when the root path exists but is not a directory.
	ErrRootNotDir = errors.New("root path is not a directory")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would make every external link BROKEN.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the number of workers is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
