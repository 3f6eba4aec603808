// Package log provides slog handler helpers for idstamp.
//
// Runs over deep directory trees produce log lines dominated by long
// absolute paths. PathHandler rewrites path-valued attributes relative to
// the run's base directory so the interesting part of each line stays
// visible.
package log
