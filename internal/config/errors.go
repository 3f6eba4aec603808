package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrNoPath is returned when no base directory is configured.
	ErrNoPath = errors.New("no path specified: provide a base directory to search")

	// ErrNoExtensions is returned when the extension list is empty.
	// Without extensions no file can ever match, which is never intended.
	ErrNoExtensions = errors.New("no extensions specified: at least one file extension is required")

	// ErrNoEncoding is returned when the encoding name is empty.
	// Whether the name resolves to a real charset is checked at first use.
	ErrNoEncoding = errors.New("no encoding specified: a character encoding name is required")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no files are ever processed.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidScope is returned when the uniqueness scope is neither
	// "run" nor "file".
	ErrInvalidScope = errors.New(`invalid scope: must be "run" or "file"`)

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
