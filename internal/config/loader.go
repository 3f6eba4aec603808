package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".idstamp"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File mirrors the .idstamp YAML configuration file.
//
// Scalar fields are pointers so that an absent key is distinguishable from a
// zero value: only keys actually present in the file override defaults or
// flags during Apply.
type File struct {
	// Path is the base directory searched for documents.
	Path *string `yaml:"path"`

	// Recursive controls whether subdirectories are searched.
	Recursive *bool `yaml:"recursive"`

	// Extensions identify the files to process.
	Extensions []string `yaml:"extensions"`

	// IncludeTags restricts assignment to the listed tags.
	IncludeTags []string `yaml:"include_tags"`

	// ExcludeTags lists tags that never receive an id.
	ExcludeTags []string `yaml:"exclude_tags"`

	// Prefix is prepended to every generated identifier.
	Prefix *string `yaml:"prefix"`

	// Suffix is appended to every generated identifier.
	Suffix *string `yaml:"suffix"`

	// Encoding is the character encoding used for file I/O.
	Encoding *string `yaml:"encoding"`

	// Scope selects per-run or per-file uniqueness.
	Scope *string `yaml:"scope"`

	// BatchSize is the number of files processed concurrently.
	BatchSize *int `yaml:"batch_size"`
}

// LoadConfigFile loads options from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle that error based on whether the path was explicitly specified by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply copies every option present in the file onto cfg.
// Absent keys leave cfg untouched, so callers can layer: defaults, then
// file, then flags.
func (f *File) Apply(cfg *Config) {
	if f.Path != nil {
		cfg.Path = *f.Path
	}
	if f.Recursive != nil {
		cfg.Recursive = *f.Recursive
	}
	if f.Extensions != nil {
		cfg.Extensions = f.Extensions
	}
	if f.IncludeTags != nil {
		cfg.IncludeTags = f.IncludeTags
	}
	if f.ExcludeTags != nil {
		cfg.ExcludeTags = f.ExcludeTags
	}
	if f.Prefix != nil {
		cfg.Prefix = *f.Prefix
	}
	if f.Suffix != nil {
		cfg.Suffix = *f.Suffix
	}
	if f.Encoding != nil {
		cfg.Encoding = *f.Encoding
	}
	if f.Scope != nil {
		cfg.Scope = Scope(*f.Scope)
	}
	if f.BatchSize != nil {
		cfg.BatchSize = *f.BatchSize
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. .idstamp in the current directory
//  3. .idstamp in the user's home directory
//  4. config.yaml in the XDG config directory (~/.config/idstamp)
//
// Returns the path to the configuration file if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	p := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}

	return ""
}
