// Package pipeline orchestrates per-file processing (read, parse, stamp,
// write) and the concurrent batch execution of a run.
package pipeline
