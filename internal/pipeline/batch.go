package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/idstamp-dev/idstamp/internal/model"
)

// BatchProcessor handles concurrent processing of multiple files.
// It uses errgroup to manage goroutines and respect the concurrency limit.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because it keeps the Pipeline focused on
// single-file execution and the batch layer free to change its scheduling
// without touching step logic.
type BatchProcessor struct {
	// pipeline executes each file. The standard pipeline carries no per-file
	// state (all mutable state lives in the Job), so one instance is shared
	// by all workers.
	pipeline *Pipeline

	// baseDir is the run's base directory, used to derive relative paths
	// for results.
	baseDir string

	// concurrency is the maximum number of files processed simultaneously.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores per-file outcomes in discovery order.
	// Access is synchronized via mutex.
	results []model.FileResult
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrently processed files.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor running the given pipeline.
func NewBatchProcessor(p *Pipeline, baseDir string, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipeline:    p,
		baseDir:     baseDir,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// Process runs the pipeline over every path concurrently.
//
// A file's failure is recorded in its FileResult and does not abort the
// rest of the batch; only cancellation stops the run early. Results come
// back in discovery order regardless of completion order.
func (bp *BatchProcessor) Process(ctx context.Context, paths []string) ([]model.FileResult, error) {
	bp.logger.Info("starting batch processing",
		"total_files", len(paths),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results to maintain discovery order.
	bp.results = make([]model.FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			job := &Job{
				Path:    path,
				RelPath: bp.relPath(path),
			}
			job.Result.Path = job.RelPath

			err := bp.pipeline.Execute(ctx, job)

			// Store the result regardless of error; the result carries the
			// failure message if the file failed.
			bp.mu.Lock()
			bp.results[i] = job.Result
			bp.mu.Unlock()

			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				bp.logger.Warn("file failed",
					"path", path,
					"error", err,
				)
				// Don't return the error to errgroup: other files should
				// still be processed.
				return nil
			}

			bp.logger.Debug("file processed",
				"path", path,
				"assigned", job.Result.Assigned,
				"preserved", job.Result.Preserved,
			)
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch processing complete",
		"total_files", len(paths),
		"elapsed", time.Since(startTime),
	)

	return bp.results, err
}

// relPath returns the path relative to the run's base directory, falling
// back to the original path when they do not share a root.
func (bp *BatchProcessor) relPath(path string) string {
	rel, err := filepath.Rel(bp.baseDir, path)
	if err != nil {
		return path
	}
	return rel
}
