package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, "1.2.3")

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed struct {
			Version string `json:"version"`
			Report  struct {
				Root         string `json:"root"`
				LinksChecked int    `json:"links_checked"`
				Problems     []struct {
					Source    string `json:"source"`
					Target    string `json:"target"`
					Status    string `json:"status"`
					Kind      string `json:"kind"`
					ErrorKind string `json:"error_kind"`
				} `json:"problems"`
			} `json:"report"`
		}
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Version != "1.2.3" {
			t.Errorf("expected version %q, got %q", "1.2.3", parsed.Version)
		}
		if parsed.Report.Root != "docs" {
			t.Errorf("expected root %q, got %q", "docs", parsed.Report.Root)
		}
		if parsed.Report.LinksChecked != 3 {
			t.Errorf("expected 3 links checked, got %d", parsed.Report.LinksChecked)
		}
		if len(parsed.Report.Problems) != 2 {
			t.Fatalf("expected 2 problems, got %d", len(parsed.Report.Problems))
		}

		first := parsed.Report.Problems[0]
		if first.Status != "BROKEN" || first.Kind != "external" || first.ErrorKind != "timeout" {
			t.Errorf("unexpected first problem: %+v", first)
		}
		if parsed.Report.Problems[1].Status != "MISSING FILE" {
			t.Errorf("expected MISSING FILE, got %q", parsed.Report.Problems[1].Status)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, "dev")

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) > 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, "dev", WithPrettyPrint())

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
		if !strings.HasSuffix(output, "}\n") {
			t.Error("expected trailing newline")
		}
	})

	t.Run("links are not serialized", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, "dev")

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Contains(buf.String(), `"links"`) {
			t.Error("extracted links should not be part of the JSON report")
		}
	})
}
