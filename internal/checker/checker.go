package checker

import (
	"context"
	"log/slog"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

// Checker classifies a link and runs the matching check.
// It is safe for concurrent use.
type Checker struct {
	external *ExternalChecker
	local    *LocalChecker
	skip     SchemeSet
	logger   *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithSkipSchemes sets the schemes whose links are never checked.
// The default is an empty set, so every non-HTTP link is checked on disk.
func WithSkipSchemes(skip SchemeSet) Option {
	return func(c *Checker) {
		c.skip = skip
	}
}

// WithLogger sets the logger used for per-link diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New creates a Checker. A nil external or local checker is replaced by
// one with default settings.
func New(external *ExternalChecker, local *LocalChecker, opts ...Option) *Checker {
	c := &Checker{
		external: external,
		local:    local,
		skip:     SchemeSet{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.external == nil {
		c.external = NewExternalChecker(WithExternalLogger(c.logger))
	}
	if c.local == nil {
		c.local = NewLocalChecker()
	}
	return c
}

// Check classifies and checks a single link.
func (c *Checker) Check(ctx context.Context, link model.Link) model.LinkRecord {
	kind := Classify(link.Target, c.skip)

	var res Result
	switch kind {
	case model.KindSkipped:
		return model.NewLinkRecord(link, kind, model.StatusSkipped)
	case model.KindExternal:
		res = c.external.Check(ctx, link.Target)
	default:
		res = c.local.Check(link.Source, link.Target)
	}

	rec := model.NewLinkRecord(link, kind, res.Status)
	rec.ErrorKind = res.ErrorKind
	rec.StatusCode = res.StatusCode
	rec.ResolvedPath = res.ResolvedPath
	if res.Err != nil {
		rec.Message = res.Err.Error()
	}

	if !res.OK() {
		c.logger.Debug("link check failed",
			"source", link.Source,
			"target", link.Target,
			"kind", kind.String(),
			"error_kind", string(res.ErrorKind),
		)
	}

	return rec
}
