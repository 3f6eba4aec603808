// Package walker discovers the files a run will process: it matches file
// names against configured extensions under a base directory, optionally
// descending into subdirectories.
package walker
