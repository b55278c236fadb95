package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nao1215/mdlinkcheck/internal/checker"
	"github.com/nao1215/mdlinkcheck/internal/model"
)

// offlineChecker checks local links on disk and reports every external
// link as a timed-out probe.
type offlineChecker struct {
	local *checker.LocalChecker
}

// Check implements LinkChecker.
func (o offlineChecker) Check(_ context.Context, link model.Link) model.LinkRecord {
	if checker.IsExternal(link.Target) {
		rec := model.NewLinkRecord(link, model.KindExternal, model.StatusBroken)
		rec.ErrorKind = model.ErrorKindTimeout
		return rec
	}
	res := o.local.Check(link.Source, link.Target)
	rec := model.NewLinkRecord(link, model.KindLocal, res.Status)
	rec.ErrorKind = res.ErrorKind
	return rec
}

// writeTree creates files under root from a map of relative path to content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
}

// TestDiscoverStep tests the discovery step.
func TestDiscoverStep(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md":       "",
		"sub/b.MD":   "",
		"skip.txt":   "",
		"sub/c.html": "",
	})

	report := model.NewReport(root)
	step := NewDiscoverStep(discardLogger())
	if step.Name() != "discover" {
		t.Errorf("unexpected name %q", step.Name())
	}
	if err := step.Do(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{filepath.Join(root, "a.md"), filepath.Join(root, "sub", "b.MD")}
	if diff := cmp.Diff(expected, report.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

// TestExtractStep tests the extraction step.
func TestExtractStep(t *testing.T) {
	t.Parallel()

	t.Run("links are collected in file then text order", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.md": "[one](1.md) [two](2.md)",
			"b.md": "[three](3.md) [one](1.md)",
		})

		report := model.NewReport(root)
		report.Files = []string{filepath.Join(root, "a.md"), filepath.Join(root, "b.md")}

		if err := NewExtractStep(nil, discardLogger()).Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := make([]string, 0, len(report.Links))
		for i, link := range report.Links {
			if link.Index != i {
				t.Errorf("link %d has index %d", i, link.Index)
			}
			got = append(got, filepath.Base(link.Source)+":"+link.Target)
		}
		expected := []string{"a.md:1.md", "a.md:2.md", "b.md:3.md", "b.md:1.md"}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("links mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unreadable file becomes a warning", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{"b.md": "[x](y.md)"})

		report := model.NewReport(root)
		report.Files = []string{filepath.Join(root, "gone.md"), filepath.Join(root, "b.md")}

		if err := NewExtractStep(nil, discardLogger()).Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", report.Warnings)
		}
		if len(report.Links) != 1 || report.Links[0].Target != "y.md" {
			t.Errorf("expected remaining file to be scanned, got %+v", report.Links)
		}
	})
}

// TestDefaultPipeline tests a whole scan over a directory tree.
func TestDefaultPipeline(t *testing.T) {
	t.Parallel()

	t.Run("reports missing file and broken link in discovery order", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.md": "[link](b.md)\n[ext](https://example.invalid)\n",
		})

		var live []model.LinkRecord
		p := DefaultPipeline(
			offlineChecker{local: checker.NewLocalChecker()},
			nil,
			func(rec model.LinkRecord) { live = append(live, rec) },
			1,
			WithLogger(discardLogger()),
		)
		report := model.NewReport(root)
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		source := filepath.Join(root, "a.md")
		expected := []model.LinkRecord{
			{Source: source, Target: "b.md", Status: model.StatusMissingFile},
			{Source: source, Target: "https://example.invalid", Status: model.StatusBroken},
		}
		ignoreDetail := cmpopts.IgnoreFields(model.LinkRecord{},
			"Kind", "ErrorKind", "StatusCode", "Message", "ResolvedPath")

		if diff := cmp.Diff(expected, live, ignoreDetail); diff != "" {
			t.Errorf("live records mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(expected, report.Problems, ignoreDetail); diff != "" {
			t.Errorf("summary records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("OK links are not reported", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"index.md":       "[guide](guide/intro.md#start) [self](#top)",
			"guide/intro.md": "[back](../index.md)",
		})

		called := 0
		p := DefaultPipeline(offlineChecker{local: checker.NewLocalChecker()}, nil,
			func(model.LinkRecord) { called++ }, 2, WithLogger(discardLogger()))
		report := model.NewReport(root)
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if called != 0 || report.HasProblems() {
			t.Errorf("expected no problems, got %+v", report.Problems)
		}
		if report.OKCount != 3 {
			t.Errorf("expected 3 OK links, got %d", report.OKCount)
		}
	})

	t.Run("repeated runs produce identical results", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.md":           "[x](missing.md) [y](http://down.invalid) [z](a.md)",
			"docs/b.md":      "[x](../nothing.md) [x](../nothing.md)",
			"docs/deep/c.md": "[x](https://also.invalid/page)",
		})

		run := func(concurrency int) string {
			var sb strings.Builder
			p := DefaultPipeline(offlineChecker{local: checker.NewLocalChecker()}, nil,
				func(rec model.LinkRecord) { sb.WriteString(rec.Line() + "\n") },
				concurrency, WithLogger(discardLogger()))
			if err := p.Execute(context.Background(), model.NewReport(root)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return sb.String()
		}

		first := run(1)
		if second := run(1); first != second {
			t.Errorf("output differs between runs:\n%s\n---\n%s", first, second)
		}
		if parallel := run(4); first != parallel {
			t.Errorf("output depends on concurrency:\n%s\n---\n%s", first, parallel)
		}
		if strings.Count(first, "\n") != 5 {
			t.Errorf("expected 5 problem lines, got:\n%s", first)
		}
	})
}
