package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/mdlinkcheck/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of checks run at once by default.
// One keeps the scan strictly sequential.
const DefaultConcurrency = 1

// LinkChecker checks a single link. *checker.Checker implements it.
type LinkChecker interface {
	Check(ctx context.Context, link model.Link) model.LinkRecord
}

// BatchChecker checks a list of links with bounded concurrency.
//
// Design decision: Results are re-sequenced before they are handed to the
// callback. A record is delivered only once every earlier link has been
// delivered, so the callback sees exactly the order a sequential run
// would produce.
type BatchChecker struct {
	// checker performs the individual checks.
	checker LinkChecker

	// concurrency is the maximum number of checks in flight.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchChecker.
type BatchOption func(*BatchChecker)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchChecker) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent checks.
// Values below one are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchChecker) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchChecker creates a new BatchChecker.
func NewBatchChecker(checker LinkChecker, opts ...BatchOption) *BatchChecker {
	bc := &BatchChecker{
		checker:     checker,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bc)
	}

	if bc.logger == nil {
		bc.logger = slog.Default()
	}

	return bc
}

// Concurrency returns the configured concurrency limit.
func (bc *BatchChecker) Concurrency() int {
	return bc.concurrency
}

// CheckAll checks every link and calls callback once per link, in the
// order of links. The callback is never called concurrently.
//
// If ctx is cancelled, checks that finish after the cancellation are
// discarded, the callback stops at the first missing result, and the
// context error is returned.
func (bc *BatchChecker) CheckAll(ctx context.Context, links []model.Link, callback func(model.LinkRecord)) error {
	bc.logger.Info("checking links",
		"total_links", len(links),
		"concurrency", bc.concurrency,
	)

	startTime := time.Now()
	defer func() {
		bc.logger.Info("link checks complete",
			"total_links", len(links),
			"elapsed", time.Since(startTime),
		)
	}()

	if bc.concurrency <= 1 {
		return bc.checkSequential(ctx, links, callback)
	}
	return bc.checkConcurrent(ctx, links, callback)
}

// checkSequential checks links one at a time.
func (bc *BatchChecker) checkSequential(ctx context.Context, links []model.Link, callback func(model.LinkRecord)) error {
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := bc.checker.Check(ctx, link)
		if err := ctx.Err(); err != nil {
			return err
		}
		callback(rec)
	}
	return nil
}

// checkConcurrent checks links with errgroup and delivers results in order.
func (bc *BatchChecker) checkConcurrent(ctx context.Context, links []model.Link, callback func(model.LinkRecord)) error {
	var (
		mu      sync.Mutex
		results = make([]model.LinkRecord, len(links))
		done    = make([]bool, len(links))
		next    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bc.concurrency)

	for i, link := range links {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rec := bc.checker.Check(gctx, link)
			if err := gctx.Err(); err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			results[i] = rec
			done[i] = true
			for next < len(links) && done[next] {
				callback(results[next])
				next++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
