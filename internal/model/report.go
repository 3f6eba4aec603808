package model

import "time"

// FileResult is the outcome of processing one document.
type FileResult struct {
	// Path is the file path relative to the run's base directory.
	Path string `json:"path"`

	// Elements is the number of element nodes visited.
	Elements int `json:"elements"`

	// Eligible is the number of elements that passed the tag filter.
	Eligible int `json:"eligible"`

	// Assigned is the number of elements that received a freshly generated id.
	Assigned int `json:"assigned"`

	// Preserved is the number of eligible elements whose existing id was kept.
	Preserved int `json:"preserved"`

	// Missing is the number of eligible elements lacking an id.
	// Only populated in dry-run (audit) mode; a successful stamping run
	// always leaves this zero.
	Missing int `json:"missing,omitempty"`

	// Written is true when the rewritten document was saved back to disk.
	// False in dry-run mode or when processing failed.
	Written bool `json:"written"`

	// Error contains the failure message if processing this file failed.
	Error string `json:"error,omitempty"`
}

// Failed reports whether processing this file ended in an error.
func (f *FileResult) Failed() bool {
	return f.Error != ""
}

// RunReport aggregates the results of one idstamp run.
//
// Design decision: We keep both per-file results and precomputed totals in
// the struct rather than recomputing totals in each report writer. The
// totals are part of the result, and serializing them keeps JSON consumers
// from re-implementing the aggregation.
type RunReport struct {
	// Path is the base directory that was searched.
	Path string `json:"path"`

	// Scope is the uniqueness scope the run used ("run" or "file").
	Scope string `json:"scope"`

	// DryRun is true when no files were written.
	DryRun bool `json:"dry_run"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`

	// Files holds the per-file outcomes in discovery order.
	Files []FileResult `json:"files"`

	// FilesProcessed is the number of files handled without error.
	FilesProcessed int `json:"files_processed"`

	// FilesFailed is the number of files that ended in an error.
	FilesFailed int `json:"files_failed"`

	// IDsAssigned is the total number of freshly generated identifiers.
	IDsAssigned int `json:"ids_assigned"`

	// IDsPreserved is the total number of pre-existing identifiers kept.
	IDsPreserved int `json:"ids_preserved"`

	// IDsMissing is the total number of eligible elements lacking an id
	// (dry-run mode only).
	IDsMissing int `json:"ids_missing,omitempty"`
}

// NewRunReport creates a RunReport for the given base directory.
func NewRunReport(path string, scope string, dryRun bool) *RunReport {
	return &RunReport{
		Path:      path,
		Scope:     scope,
		DryRun:    dryRun,
		StartedAt: time.Now(),
		Files:     make([]FileResult, 0),
	}
}

// Add records one file outcome and folds it into the totals.
func (r *RunReport) Add(fr FileResult) {
	r.Files = append(r.Files, fr)
	if fr.Failed() {
		r.FilesFailed++
		return
	}
	r.FilesProcessed++
	r.IDsAssigned += fr.Assigned
	r.IDsPreserved += fr.Preserved
	r.IDsMissing += fr.Missing
}

// Finish records the run duration.
func (r *RunReport) Finish() {
	r.Duration = time.Since(r.StartedAt)
}
