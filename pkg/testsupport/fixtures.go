package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agentsgen/pkg/answers"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

// FixedTime is the instant returned by FixedClock; golden documents are
// rendered against it.
var FixedTime = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

// FixedClock returns a time source pinned to FixedTime.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedTime }
}

// MustLoadState reads an answers fixture into a state.
func MustLoadState(t *testing.T, path string) *model.State {
	t.Helper()

	state, err := answers.LoadState(path)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	return state
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
