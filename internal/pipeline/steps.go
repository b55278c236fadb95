package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/mdlinkcheck/internal/discovery"
	"github.com/nao1215/mdlinkcheck/internal/extract"
	"github.com/nao1215/mdlinkcheck/internal/model"
)

// DiscoverStep finds the Markdown files under the report root.
type DiscoverStep struct {
	logger *slog.Logger
}

// NewDiscoverStep creates a new discovery step.
func NewDiscoverStep(logger *slog.Logger) *DiscoverStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoverStep{logger: logger}
}

// Name returns the step name.
func (s *DiscoverStep) Name() string {
	return "discover"
}

// Do lists the Markdown files. Unreadable subtrees become warnings.
func (s *DiscoverStep) Do(_ context.Context, report *model.Report) error {
	files, errs := discovery.FindMarkdownFiles(report.Root)
	for _, err := range errs {
		s.logger.Warn("directory traversal error", "error", err)
		report.AddWarning(err.Error())
	}

	report.Files = files
	s.logger.Debug("markdown files found", "count", len(files))
	return nil
}

// ExtractStep reads every discovered file and collects its link targets.
type ExtractStep struct {
	decoder *extract.Decoder
	logger  *slog.Logger
}

// NewExtractStep creates a new extraction step.
// A nil decoder reads files as UTF-8.
func NewExtractStep(decoder *extract.Decoder, logger *slog.Logger) *ExtractStep {
	if decoder == nil {
		// The default encoding is always known.
		decoder, _ = extract.NewDecoder(extract.DefaultEncoding) //nolint:errcheck // cannot fail
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStep{decoder: decoder, logger: logger}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do extracts links from each file in order. A file that cannot be read
// is skipped with a warning.
func (s *ExtractStep) Do(ctx context.Context, report *model.Report) error {
	for _, file := range report.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := s.decoder.ReadFile(file)
		if err != nil {
			s.logger.Warn("failed to read file", "file", file, "error", err)
			report.AddWarning(fmt.Sprintf("skipping %s: %v", file, err))
			continue
		}

		targets := extract.ExtractLinks(text)
		for _, target := range targets {
			report.AddLink(file, target)
		}
		s.logger.Debug("links extracted", "file", file, "count", len(targets))
	}
	return nil
}

// CheckStep checks every extracted link and records the results.
type CheckStep struct {
	batch *BatchChecker

	// onRecord receives every non-OK record as soon as it is known.
	onRecord func(model.LinkRecord)

	logger *slog.Logger
}

// CheckStepOption configures a CheckStep.
type CheckStepOption func(*CheckStep)

// WithOnProblem sets the callback that receives each broken link or
// missing file as it is found, in discovery order.
func WithOnProblem(fn func(model.LinkRecord)) CheckStepOption {
	return func(s *CheckStep) {
		s.onRecord = fn
	}
}

// WithCheckLogger sets a custom logger for the check step.
func WithCheckLogger(logger *slog.Logger) CheckStepOption {
	return func(s *CheckStep) {
		s.logger = logger
	}
}

// NewCheckStep creates a new check step.
func NewCheckStep(batch *BatchChecker, opts ...CheckStepOption) *CheckStep {
	s := &CheckStep{
		batch:  batch,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *CheckStep) Name() string {
	return "check"
}

// Do checks all links in the report.
func (s *CheckStep) Do(ctx context.Context, report *model.Report) error {
	err := s.batch.CheckAll(ctx, report.Links, func(rec model.LinkRecord) {
		report.AddRecord(rec)
		if rec.Status.IsProblem() && s.onRecord != nil {
			s.onRecord(rec)
		}
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		report.Cancelled = true
	}
	return err
}

// DefaultPipeline creates the standard discover, extract and check pipeline.
func DefaultPipeline(checker LinkChecker, decoder *extract.Decoder, onProblem func(model.LinkRecord), concurrency int, opts ...Option) *Pipeline {
	p := New(opts...)

	batch := NewBatchChecker(checker,
		WithConcurrency(concurrency),
		WithBatchLogger(p.logger),
	)

	p.AddSteps(
		NewDiscoverStep(p.logger),
		NewExtractStep(decoder, p.logger),
		NewCheckStep(batch,
			WithOnProblem(onProblem),
			WithCheckLogger(p.logger),
		),
	)
	return p
}
