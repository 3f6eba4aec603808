package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values. Extension and exclusion defaults follow the
// behavior HTML authors expect from an id-stamping tool: structural and
// non-visible tags are skipped unless explicitly requested.
const (
	// DefaultPath is the base directory searched for files.
	DefaultPath = "."

	// DefaultEncoding is the character encoding used to read and write files.
	DefaultEncoding = "utf-8"

	// DefaultRecursive controls whether subdirectories are searched.
	// Off by default: stamping is a destructive rewrite, and descending into
	// an entire tree should be an explicit choice.
	DefaultRecursive = false

	// DefaultBatchSize is the number of files processed concurrently.
	// Stamping is parse-bound, not I/O bound, so a small pool saturates
	// typical machines without surprising memory use on large trees.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "idstamp"
)

// DefaultExtensions are the file extensions searched for documents.
func DefaultExtensions() []string {
	return []string{"html", "hml", "xhtml"}
}

// DefaultExcludeTags are the tags the stamp command skips by default.
// These either have no addressable visual presence (script, style, title,
// head) or are document plumbing (html) or void spacing (br); stamping them
// adds noise without helping UI test selectors. Pass --exclude to override.
func DefaultExcludeTags() []string {
	return []string{"script", "head", "title", "html", "br", "style"}
}

// Scope selects the span over which identifier uniqueness is guaranteed.
type Scope string

const (
	// ScopeRun guarantees uniqueness across every file in the run. This is
	// the default: it is the stronger guarantee and what UI test suites that
	// load multiple pages into one harness need.
	ScopeRun Scope = "run"

	// ScopeFile guarantees uniqueness only within each file. Workers get an
	// independent registry per file, so there is no cross-file coordination.
	ScopeFile Scope = "file"
)

// Config holds all options for an idstamp run.
// This struct is populated from CLI flags (optionally merged with a .idstamp
// file) and passed through the application via dependency injection rather
// than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (FilterConfig, WalkConfig, ...) for simplicity. The option count is
// manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// Path is the base directory searched for documents.
	Path string

	// Recursive controls whether subdirectories of Path are searched.
	Recursive bool

	// Extensions are the file extensions (with or without leading dot,
	// case-insensitive) that identify documents to process.
	Extensions []string

	// Encoding is the character encoding used to decode and re-encode files.
	// Any WHATWG charset label is accepted (utf-8, iso-8859-1, shift_jis, ...).
	Encoding string

	// IncludeTags restricts assignment to the listed tag names.
	// Empty means every tag is eligible.
	IncludeTags []string

	// ExcludeTags lists tag names that never receive an id.
	// Exclusion wins over inclusion when a tag appears in both.
	ExcludeTags []string

	// Prefix is prepended to every generated identifier.
	Prefix string

	// Suffix is appended to every generated identifier.
	Suffix string

	// Scope selects per-run or per-file uniqueness. Default ScopeRun.
	Scope Scope

	// BatchSize is the number of files processed concurrently.
	BatchSize int

	// Sequential switches the generator from random UUIDs to a deterministic
	// counter. Combined with Prefix this yields stable, reviewable diffs.
	Sequential bool

	// DryRun audits files without writing anything back.
	DryRun bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON run-report output instead of human-readable
	// text. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown run-report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the run report.
	// When set, the report is written there instead of stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .idstamp in the current directory, the home
	// directory, and the XDG config directory, in that order.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero values
// because several defaults are non-zero (encoding, extensions, batch size).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Path:        DefaultPath,
		Recursive:   DefaultRecursive,
		Extensions:  DefaultExtensions(),
		Encoding:    DefaultEncoding,
		ExcludeTags: DefaultExcludeTags(),
		Scope:       ScopeRun,
		BatchSize:   DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for idstamp.
// On Linux: ~/.config/idstamp
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns a specific error
// describing the first problem found. It is called once after CLI parsing,
// before any files are touched.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrNoPath
	}

	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}

	if c.Encoding == "" {
		return ErrNoEncoding
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.Scope != ScopeRun && c.Scope != ScopeFile {
		return ErrInvalidScope
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
