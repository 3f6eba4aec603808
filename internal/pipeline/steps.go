package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/idstamp-dev/idstamp/internal/config"
	"github.com/idstamp-dev/idstamp/internal/document"
	"github.com/idstamp-dev/idstamp/internal/stamp"
)

// RegistrySource yields the registry a file should record uniqueness in.
// With run scope every call returns the same shared registry; with file
// scope every call returns a fresh one, so workers need no coordination.
type RegistrySource func() *stamp.Registry

// NewRegistrySource creates a RegistrySource for the given uniqueness scope.
func NewRegistrySource(scope config.Scope) RegistrySource {
	if scope == config.ScopeFile {
		return stamp.NewRegistry
	}
	shared := stamp.NewRegistry()
	return func() *stamp.Registry { return shared }
}

// ReadStep loads the file's raw bytes.
type ReadStep struct{}

// Name returns the step name.
func (ReadStep) Name() string { return "read" }

// Do reads the file into the job.
func (ReadStep) Do(_ context.Context, job *Job) error {
	data, err := os.ReadFile(job.Path) //nolint:gosec // Paths come from the run's own file discovery
	if err != nil {
		return fmt.Errorf("read %s: %w", job.Path, err)
	}
	job.Raw = data
	return nil
}

// ParseStep decodes and parses the raw bytes into a document tree.
type ParseStep struct {
	// Encoding is the charset label the file is decoded with.
	Encoding string
}

// Name returns the step name.
func (ParseStep) Name() string { return "parse" }

// Do parses the job's raw bytes.
func (s ParseStep) Do(_ context.Context, job *Job) error {
	root, err := document.Parse(bytes.NewReader(job.Raw), s.Encoding)
	if err != nil {
		return fmt.Errorf("parse %s: %w", job.Path, err)
	}
	job.Root = root
	return nil
}

// StampStep runs the id-assignment engine over the parsed tree.
// In audit mode the tree is inspected but never mutated.
type StampStep struct {
	// Stamper is the engine shared by every file in the run.
	Stamper *stamp.Stamper

	// Registry yields the uniqueness registry for this file's scope.
	Registry RegistrySource

	// Audit switches from assignment to the read-only missing-id count.
	Audit bool
}

// Name returns the step name.
func (StampStep) Name() string { return "stamp" }

// Do stamps (or audits) the job's document tree and records the stats.
func (s StampStep) Do(_ context.Context, job *Job) error {
	reg := s.Registry()

	var stats stamp.Stats
	if s.Audit {
		stats = s.Stamper.Audit(job.Root, reg)
	} else {
		var err error
		stats, err = s.Stamper.Stamp(job.Root, reg)
		if err != nil {
			return fmt.Errorf("stamp %s: %w", job.Path, err)
		}
	}

	job.Result.Elements = stats.Elements
	job.Result.Eligible = stats.Eligible
	job.Result.Assigned = stats.Assigned
	job.Result.Preserved = stats.Preserved
	job.Result.Missing = stats.Missing
	return nil
}

// WriteStep serializes the mutated tree back to the original file path.
type WriteStep struct {
	// Encoding is the charset label the file is re-encoded with.
	Encoding string
}

// Name returns the step name.
func (WriteStep) Name() string { return "write" }

// Do renders the job's tree and overwrites the source file, preserving its
// permission bits.
func (s WriteStep) Do(_ context.Context, job *Job) error {
	var buf bytes.Buffer
	if err := document.Render(&buf, job.Root, s.Encoding); err != nil {
		return fmt.Errorf("render %s: %w", job.Path, err)
	}

	mode := os.FileMode(0600)
	if info, err := os.Stat(job.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(job.Path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("write %s: %w", job.Path, err)
	}
	job.Result.Written = true
	return nil
}

// NewFilePipeline assembles the standard read-parse-stamp-write pipeline for
// a run. In dry-run mode the write step is omitted and stamping runs in
// audit mode, so no file is ever touched.
func NewFilePipeline(cfg *config.Config, stamper *stamp.Stamper, registry RegistrySource, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		ReadStep{},
		ParseStep{Encoding: cfg.Encoding},
		StampStep{Stamper: stamper, Registry: registry, Audit: cfg.DryRun},
	)
	if !cfg.DryRun {
		p.AddSteps(WriteStep{Encoding: cfg.Encoding})
	}
	return p
}
