package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads every supported key", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".idstamp")
		content := `path: ./templates
recursive: true
extensions: [html, xhtml]
include_tags: [input, select]
exclude_tags: [script]
prefix: "qa-"
suffix: "-t"
encoding: iso-8859-1
scope: file
batch_size: 2
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatal(err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.Path != "./templates" {
			t.Errorf("expected path ./templates, got %q", cfg.Path)
		}
		if !cfg.Recursive {
			t.Error("expected recursive true")
		}
		if len(cfg.Extensions) != 2 || cfg.Extensions[0] != "html" {
			t.Errorf("unexpected extensions %v", cfg.Extensions)
		}
		if len(cfg.IncludeTags) != 2 || cfg.IncludeTags[1] != "select" {
			t.Errorf("unexpected include tags %v", cfg.IncludeTags)
		}
		if len(cfg.ExcludeTags) != 1 || cfg.ExcludeTags[0] != "script" {
			t.Errorf("unexpected exclude tags %v", cfg.ExcludeTags)
		}
		if cfg.Prefix != "qa-" || cfg.Suffix != "-t" {
			t.Errorf("unexpected affixes %q/%q", cfg.Prefix, cfg.Suffix)
		}
		if cfg.Encoding != "iso-8859-1" {
			t.Errorf("unexpected encoding %q", cfg.Encoding)
		}
		if cfg.Scope != ScopeFile {
			t.Errorf("unexpected scope %q", cfg.Scope)
		}
		if cfg.BatchSize != 2 {
			t.Errorf("unexpected batch size %d", cfg.BatchSize)
		}
	})

	t.Run("absent keys leave defaults untouched", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".idstamp")
		if err := os.WriteFile(path, []byte("prefix: \"p-\"\n"), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatal(err)
		}

		cfg := NewConfig()
		cf.Apply(cfg)

		if cfg.Prefix != "p-" {
			t.Errorf("expected prefix p-, got %q", cfg.Prefix)
		}
		if cfg.Encoding != DefaultEncoding {
			t.Errorf("expected default encoding, got %q", cfg.Encoding)
		}
		if cfg.Scope != ScopeRun {
			t.Errorf("expected default scope, got %q", cfg.Scope)
		}
		if len(cfg.ExcludeTags) == 0 {
			t.Error("expected default exclusions to survive")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML is rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".idstamp")
		if err := os.WriteFile(path, []byte("recursive: [not a bool"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected an error for invalid YAML")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned as-is", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("prefix: x\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path yields empty string", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty result, got %q", got)
		}
	})
}
