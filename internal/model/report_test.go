package model

import "testing"

func TestRunReportAdd(t *testing.T) {
	t.Parallel()

	t.Run("folds successful files into totals", func(t *testing.T) {
		t.Parallel()
		r := NewRunReport(".", "run", false)
		r.Add(FileResult{Path: "a.html", Assigned: 3, Preserved: 1, Written: true})
		r.Add(FileResult{Path: "b.html", Assigned: 2, Written: true})

		if r.FilesProcessed != 2 {
			t.Errorf("expected 2 processed, got %d", r.FilesProcessed)
		}
		if r.IDsAssigned != 5 {
			t.Errorf("expected 5 assigned, got %d", r.IDsAssigned)
		}
		if r.IDsPreserved != 1 {
			t.Errorf("expected 1 preserved, got %d", r.IDsPreserved)
		}
	})

	t.Run("failed files count separately and add nothing", func(t *testing.T) {
		t.Parallel()
		r := NewRunReport(".", "run", false)
		r.Add(FileResult{Path: "bad.html", Error: "parse failed"})

		if r.FilesFailed != 1 {
			t.Errorf("expected 1 failed, got %d", r.FilesFailed)
		}
		if r.FilesProcessed != 0 {
			t.Errorf("expected 0 processed, got %d", r.FilesProcessed)
		}
		if r.IDsAssigned != 0 {
			t.Errorf("expected 0 assigned, got %d", r.IDsAssigned)
		}
	})

	t.Run("dry-run missing counts accumulate", func(t *testing.T) {
		t.Parallel()
		r := NewRunReport(".", "run", true)
		r.Add(FileResult{Path: "a.html", Missing: 2})
		r.Add(FileResult{Path: "b.html", Missing: 3})

		if r.IDsMissing != 5 {
			t.Errorf("expected 5 missing, got %d", r.IDsMissing)
		}
	})
}

func TestFileResultFailed(t *testing.T) {
	t.Parallel()

	if (&FileResult{}).Failed() {
		t.Error("expected empty result not to be failed")
	}
	if !(&FileResult{Error: "boom"}).Failed() {
		t.Error("expected result with error to be failed")
	}
}
