package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout bounds each external HTTP probe. Five seconds keeps a
	// scan of a large documentation tree short while tolerating slow hosts.
	DefaultTimeout = 5 * time.Second

	// DefaultConcurrency of 1 checks links strictly one after another,
	// which is gentle on remote servers and easy to follow in the live output.
	DefaultConcurrency = 1

	// DefaultEncoding is the character encoding used to read Markdown files.
	DefaultEncoding = "utf-8"

	// AppName is the application name used for XDG directory paths.
	AppName = "mdlinkcheck"

	// EnvRoot is the environment variable consulted when no root directory
	// argument is given.
	EnvRoot = "MDLINKCHECK_ROOT"
)

// Config holds all configuration options for mdlinkcheck.
// This struct is populated from the config file and CLI flags and passed
// through the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs.
// The number of options is small, and nesting would add complexity
// without significant benefit.
type Config struct {
	// Root is the directory tree to scan.
	Root string

	// Timeout is the per-request timeout for external link checks.
	Timeout time.Duration

	// Concurrency is the number of links checked at the same time.
	// Output order does not depend on it.
	Concurrency int

	// SkipSchemes lists URI schemes (e.g. "mailto") whose links are not
	// checked at all. Empty by default, which means such targets are
	// treated as local paths.
	SkipSchemes []string

	// Encoding is the IANA name of the character encoding of Markdown files.
	Encoding string

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format used
	// for external link checks.
	ProxyAddress string

	// Verbose enables detailed log output using slog.LevelDebug
	// and the statistics block of the text report.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .mdlinkcheck in the current directory,
	// the XDG config directory and the user's home directory.
	ConfigFilePath string

	// JSONReport enables JSON report output instead of the text report.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the text report.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// FailOnBroken makes the command exit with a non-zero status when
	// broken links or missing files were found.
	FailOnBroken bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (timeout, concurrency,
// encoding). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		Encoding:    DefaultEncoding,
	}
}

// XDGConfigDir returns the XDG config directory for mdlinkcheck.
// On Linux: ~/.config/mdlinkcheck
// On macOS: ~/Library/Application Support/mdlinkcheck
// On Windows: %APPDATA%\mdlinkcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ResolveRoot picks the root directory: an explicit argument wins, then the
// MDLINKCHECK_ROOT environment variable, then whatever is already set
// (typically from the configuration file).
func (c *Config) ResolveRoot(arg string) {
	if arg != "" {
		c.Root = arg
		return
	}
	if env := os.Getenv(EnvRoot); env != "" {
		c.Root = env
	}
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate once after CLI parsing, before any scanning
// begins, so that a mistyped root fails fast with a clear message instead
// of silently producing an empty report.
func (c *Config) Validate() error {
	if c.Root == "" {
		return ErrNoRoot
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRootNotFound, c.Root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, c.Root)
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
