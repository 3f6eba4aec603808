// Package report renders run reports in human-readable text, JSON, and
// Markdown formats.
package report
