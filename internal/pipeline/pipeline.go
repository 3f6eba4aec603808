package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/idstamp-dev/idstamp/internal/model"
)

// Job carries one file through the pipeline. Steps fill in the fields they
// produce and read the fields earlier steps produced.
type Job struct {
	// Path is the file path on disk.
	Path string

	// RelPath is the path relative to the run's base directory, used in
	// results and logs.
	RelPath string

	// Raw holds the file's undecoded bytes after the read step.
	Raw []byte

	// Root is the parsed document tree after the parse step.
	Root *html.Node

	// Result accumulates the file's outcome across steps.
	Result model.FileResult
}

// Step defines the interface that all pipeline steps implement.
// Steps are executed in sequence, each receiving the accumulated job state
// from previous steps.
//
// Design decision: We use an interface rather than function types because:
//  1. It allows steps to carry configuration state
//  2. It provides a Name() method for logging and debugging
type Step interface {
	// Do executes the pipeline step. It receives the context for
	// cancellation and the job to advance. A returned error aborts the
	// remaining steps for this file.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes an ordered list of steps against one file.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given options.
// Steps are added with AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps to the pipeline in execution order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence for one file.
// It checks for cancellation before each step; steps themselves do not
// block, so between-step checks give prompt cancellation at file
// granularity. The first step error aborts the file and is recorded in
// job.Result.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"path", job.Path,
				"reason", ctx.Err(),
			)
			job.Result.Error = ctx.Err().Error()
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"path", job.Path,
		)

		if err := step.Do(ctx, job); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"path", job.Path,
				"error", err,
			)
			job.Result.Error = err.Error()
			return err
		}
	}
	return nil
}
