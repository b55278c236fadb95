package model

import (
	"encoding/json"
	"testing"
)

// TestStatusString tests the String method of Status.
func TestStatusString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   Status
		expected string
	}{
		{StatusOK, "OK"},
		{StatusBroken, "BROKEN"},
		{StatusMissingFile, "MISSING FILE"},
		{StatusSkipped, "SKIPPED"},
		{Status(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.status.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.status.String(), tc.expected)
			}
		})
	}
}

// TestStatusIsProblem tests which statuses are reported.
func TestStatusIsProblem(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   Status
		expected bool
	}{
		{StatusOK, false},
		{StatusBroken, true},
		{StatusMissingFile, true},
		{StatusSkipped, false},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			t.Parallel()
			if got := tc.status.IsProblem(); got != tc.expected {
				t.Errorf("IsProblem() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestStatusMarshalJSON tests that statuses are encoded as labels.
func TestStatusMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(StatusMissingFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"MISSING FILE"` {
		t.Errorf("got %s, expected %q", data, "MISSING FILE")
	}
}

// TestKindString tests the String method of Kind.
func TestKindString(t *testing.T) {
	t.Parallel()

	if KindLocal.String() != "local" {
		t.Errorf("got %q", KindLocal.String())
	}
	if KindExternal.String() != "external" {
		t.Errorf("got %q", KindExternal.String())
	}
	if KindSkipped.String() != "skipped" {
		t.Errorf("got %q", KindSkipped.String())
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("got %q", Kind(42).String())
	}
}
