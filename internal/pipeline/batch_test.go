package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/idstamp-dev/idstamp/internal/config"
)

func TestBatchProcess(t *testing.T) {
	t.Parallel()

	t.Run("run scope keeps ids unique across files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		paths := []string{
			writeHTML(t, dir, "a.html", `<div></div><span></span>`),
			writeHTML(t, dir, "b.html", `<div></div><span></span>`),
			writeHTML(t, dir, "c.html", `<div></div><span></span>`),
		}

		cfg := config.NewConfig()
		cfg.Path = dir

		p := NewFilePipeline(cfg, newTestStamper(t), NewRegistrySource(config.ScopeRun))
		bp := NewBatchProcessor(p, dir, WithConcurrency(3))

		results, err := bp.Process(context.Background(), paths)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}

		seen := make(map[string]string)
		for _, path := range paths {
			for _, id := range extractIDs(t, path) {
				if prev, dup := seen[id]; dup {
					t.Errorf("id %q appears in both %s and %s", id, prev, path)
				}
				seen[id] = path
			}
		}
		if len(seen) != 6 {
			t.Errorf("expected 6 distinct ids across the run, got %d", len(seen))
		}
	})

	t.Run("results come back in discovery order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		paths := []string{
			writeHTML(t, dir, "one.html", `<div></div>`),
			writeHTML(t, dir, "two.html", `<div></div>`),
		}

		cfg := config.NewConfig()
		cfg.Path = dir

		p := NewFilePipeline(cfg, newTestStamper(t), NewRegistrySource(config.ScopeFile))
		bp := NewBatchProcessor(p, dir)

		results, err := bp.Process(context.Background(), paths)
		if err != nil {
			t.Fatal(err)
		}
		if results[0].Path != "one.html" || results[1].Path != "two.html" {
			t.Errorf("expected discovery order, got %v", []string{results[0].Path, results[1].Path})
		}
	})

	t.Run("one failing file does not stop the rest", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		good := writeHTML(t, dir, "good.html", `<div></div>`)
		missing := filepath.Join(dir, "missing.html")

		cfg := config.NewConfig()
		cfg.Path = dir

		p := NewFilePipeline(cfg, newTestStamper(t), NewRegistrySource(config.ScopeRun))
		bp := NewBatchProcessor(p, dir)

		results, err := bp.Process(context.Background(), []string{missing, good})
		if err != nil {
			t.Fatal(err)
		}

		if !results[0].Failed() {
			t.Error("expected missing file to be recorded as failed")
		}
		if results[1].Failed() {
			t.Errorf("expected good file to succeed, got %q", results[1].Error)
		}
		if len(extractIDs(t, good)) != 1 {
			t.Error("expected good file to be stamped despite the failure")
		}
	})

	t.Run("cancelled context stops the batch", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dir := t.TempDir()
		paths := []string{writeHTML(t, dir, "a.html", `<div></div>`)}

		cfg := config.NewConfig()
		cfg.Path = dir

		p := NewFilePipeline(cfg, newTestStamper(t), NewRegistrySource(config.ScopeRun))
		bp := NewBatchProcessor(p, dir)

		if _, err := bp.Process(ctx, paths); err == nil {
			t.Error("expected cancellation error")
		}
	})
}
