package lrc_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-lrc/lrc"
)

func createTestLRCFile(t *testing.T, title string) string {
	t.Helper()

	text := fmt.Sprintf("[ti:%s]\n[00:01.00]hello\n[00:02.00]world\n", title)

	path := filepath.Join(t.TempDir(), title+".lrc")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestOpenMany_Cancellation verifies that a cancelled context stops the
// batch instead of parsing every file.
func TestOpenMany_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = createTestLRCFile(t, fmt.Sprintf("song%d", i))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel before starting

	docs, err := lrc.OpenMany(ctx, lrc.DialectStandard, paths)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if docs != nil {
		t.Error("expected no documents from cancelled batch")
	}
}

func TestOpenMany_PositionalResults(t *testing.T) {
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = createTestLRCFile(t, fmt.Sprintf("song%d", i))
	}

	docs, err := lrc.OpenMany(context.Background(), lrc.DialectStandard, paths)
	if err != nil {
		t.Fatalf("OpenMany failed: %v", err)
	}
	if len(docs) != len(paths) {
		t.Fatalf("expected %d documents, got %d", len(paths), len(docs))
	}

	// Results line up with input paths regardless of completion order.
	for i, doc := range docs {
		want := fmt.Sprintf("song%d", i)
		if doc.Meta().Title != want {
			t.Errorf("docs[%d]: expected title %q, got %q", i, want, doc.Meta().Title)
		}
	}
}

func TestOpenMany_FirstErrorWins(t *testing.T) {
	paths := []string{
		createTestLRCFile(t, "good"),
		filepath.Join(t.TempDir(), "missing.lrc"),
	}

	docs, err := lrc.OpenMany(context.Background(), lrc.DialectStandard, paths)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if docs != nil {
		t.Error("expected no documents when a file fails")
	}
}

func TestOpenMany_Empty(t *testing.T) {
	docs, err := lrc.OpenMany(context.Background(), lrc.DialectStandard, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs != nil {
		t.Error("expected nil result for empty input")
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	path := createTestLRCFile(t, "song")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := lrc.OpenContext(ctx, path, lrc.DialectStandard); err == nil {
		t.Error("expected error from cancelled context")
	}
}
