package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/mdlinkcheck/internal/checker"
	"github.com/nao1215/mdlinkcheck/internal/config"
	"github.com/nao1215/mdlinkcheck/internal/extract"
	"github.com/nao1215/mdlinkcheck/internal/log"
	"github.com/nao1215/mdlinkcheck/internal/model"
	"github.com/nao1215/mdlinkcheck/internal/pipeline"
	"github.com/nao1215/mdlinkcheck/internal/report"
)

// ErrBrokenLinksFound is returned with --fail-on-broken when at least one
// link is broken or points to a missing file.
var ErrBrokenLinksFound = errors.New("broken links found")

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root-dir]",
		Short: "Check every link in the Markdown files under a directory",
		Long: `Check walks root-dir recursively, extracts [text](target) links from every
*.md file and checks them:

- http:// and https:// targets must answer a HEAD request with a status below 400
- every other target must exist on disk, relative to the file that links to it
  (anything after '#' is ignored)

Problems are printed as they are found and again in a summary at the end.

The root directory is taken from the argument, then from the ` + config.EnvRoot + `
environment variable, then from the configuration file.

Examples:
  # Check the docs directory
  mdlinkcheck check docs

  # Check with 8 parallel workers and a longer timeout
  mdlinkcheck check -b 8 -t 15s docs

  # Do not check mailto: and tel: links
  mdlinkcheck check --skip-scheme mailto --skip-scheme tel docs

  # Markdown report for a pull request comment, fail CI on problems
  mdlinkcheck check --markdown --fail-on-broken docs > report.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}

	// Check behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each external link check")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of links checked at the same time")
	cmd.Flags().StringSlice("skip-scheme", nil,
		"URI scheme to leave unchecked, e.g. mailto (repeatable)")
	cmd.Flags().StringP("encoding", "E", config.DefaultEncoding,
		"Character encoding of the Markdown files (IANA name)")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy for external checks (host:port)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .mdlinkcheck in current, XDG config or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report, stamped with the scan start time (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().Bool("fail-on-broken", false,
		"Exit with status 1 when broken links or missing files are found")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals: in-flight checks are aborted and the
	// summary of what was collected so far is still printed.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runCheck(ctx, cfg, logger, time.Now(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in that order of increasing precedence.
// Flags only override the file when they were set explicitly.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// If no path was specified, silently use defaults if no file is found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("skip-scheme") {
		if cfg.SkipSchemes, err = flags.GetStringSlice("skip-scheme"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("encoding") {
		if cfg.Encoding, err = flags.GetString("encoding"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("fail-on-broken") {
		if cfg.FailOnBroken, err = flags.GetBool("fail-on-broken"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	var rootArg string
	if len(args) > 0 {
		rootArg = args[0]
	}
	cfg.ResolveRoot(rootArg)

	return cfg, nil
}

// newChecker wires the external and local checkers from the configuration.
func newChecker(cfg *config.Config, logger *slog.Logger) (*checker.Checker, error) {
	externalOpts := []checker.ExternalOption{
		checker.WithTimeout(cfg.Timeout),
		checker.WithExternalLogger(logger),
	}

	if cfg.ProxyAddress != "" {
		transport, err := checker.NewSOCKS5Transport(cfg.ProxyAddress)
		if err != nil {
			return nil, err
		}
		externalOpts = append(externalOpts, checker.WithTransport(transport))
		logger.Info("using SOCKS5 proxy", "address", cfg.ProxyAddress)
	}

	return checker.New(
		checker.NewExternalChecker(externalOpts...),
		checker.NewLocalChecker(),
		checker.WithSkipSchemes(checker.NewSchemeSet(cfg.SkipSchemes...)),
		checker.WithLogger(logger),
	), nil
}

// newReportWriter returns the writer for the end-of-scan report.
// The text report continues the live output; the other formats replace it.
func newReportWriter(cfg *config.Config, stdout io.Writer, live *report.SimpleWriter) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(stdout, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(stdout)
	default:
		return live
	}
}

// runCheck executes the scan and writes the report. startedAt stamps the
// report; it only appears in the JSON output.
//
// In the text format everything goes to stdout. With --json or --markdown
// the live lines go to stderr so that stdout holds only the document.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger, startedAt time.Time, stdout, stderr io.Writer) error {
	linkChecker, err := newChecker(cfg, logger)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	decoder, err := extract.NewDecoder(cfg.Encoding)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	liveOut := stdout
	if cfg.JSONReport || cfg.MarkdownReport {
		liveOut = stderr
	}
	live := report.NewSimpleWriter(liveOut, report.WithVerbose(cfg.Verbose))
	final := newReportWriter(cfg, stdout, live)

	logger.Info("starting check",
		"root", cfg.Root,
		"timeout", cfg.Timeout,
		"concurrency", cfg.Concurrency,
		"encoding", decoder.Name(),
		"skipSchemes", cfg.SkipSchemes,
	)

	if _, err := live.WriteHeader(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	var writeErr error
	onProblem := func(rec model.LinkRecord) {
		if _, err := live.WriteProblem(rec); err != nil && writeErr == nil {
			writeErr = err
		}
	}

	p := pipeline.DefaultPipeline(linkChecker, decoder, onProblem, cfg.Concurrency,
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	)

	scanReport := model.NewReportAt(cfg.Root, startedAt)
	execErr := p.Execute(ctx, scanReport)

	logger.Info("check finished",
		"elapsed", time.Since(startedAt).Round(time.Millisecond),
		"files", len(scanReport.Files),
		"links", scanReport.LinksChecked,
		"problems", scanReport.ProblemCount(),
	)

	if _, err := final.Write(scanReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write output: %w", writeErr)
	}

	if scanReport.Cancelled {
		cause := context.Cause(ctx)
		if cause == nil {
			cause = context.Canceled
		}
		return fmt.Errorf("check interrupted: %w", cause)
	}
	if execErr != nil {
		return execErr
	}

	if cfg.FailOnBroken && scanReport.HasProblems() {
		return fmt.Errorf("%w: %d problem(s)", ErrBrokenLinksFound, scanReport.ProblemCount())
	}

	return nil
}
