package loader

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestLoader(t *testing.T) (*Loader, string) {
	t.Helper()

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "docs.txt")
	noisePath := filepath.Join(dir, "noisewords.txt")

	if err := os.WriteFile(manifestPath, []byte("doc1.txt doc2.txt\ndoc3.txt\n"), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	if err := os.WriteFile(noisePath, []byte("The a\nAN\n"), 0o644); err != nil {
		t.Fatalf("Failed to write noise words: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "doc1.txt"), []byte("Deep deep deep."), 0o644); err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return New(log, manifestPath, noisePath, dir), dir
}

func TestManifest(t *testing.T) {
	l, _ := newTestLoader(t)

	got, err := l.Manifest(context.Background())
	if err != nil {
		t.Fatalf("Manifest() error: %v", err)
	}

	// Whitespace-separated, order preserved: manifest order is merge order.
	expected := []string{"doc1.txt", "doc2.txt", "doc3.txt"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Manifest() mismatch (-want +got):\n%s", diff)
	}
}

func TestNoiseWords(t *testing.T) {
	l, _ := newTestLoader(t)

	got, err := l.NoiseWords(context.Background())
	if err != nil {
		t.Fatalf("NoiseWords() error: %v", err)
	}

	expected := []string{"The", "a", "AN"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("NoiseWords() mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument(t *testing.T) {
	l, _ := newTestLoader(t)

	got, err := l.Document(context.Background(), "doc1.txt")
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if got != "Deep deep deep." {
		t.Errorf("Document() = %q, want %q", got, "Deep deep deep.")
	}
}

func TestDocumentNotFound(t *testing.T) {
	l, _ := newTestLoader(t)

	_, err := l.Document(context.Background(), "missing.txt")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Document() error = %v, want ErrResourceNotFound", err)
	}
}

func TestManifestNotFound(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	l := New(log, filepath.Join(t.TempDir(), "nope.txt"), "", "")

	_, err := l.Manifest(context.Background())
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Manifest() error = %v, want ErrResourceNotFound", err)
	}
}

func TestNoiseWordsNotFound(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	l := New(log, "", filepath.Join(t.TempDir(), "nope.txt"), "")

	_, err := l.NoiseWords(context.Background())
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("NoiseWords() error = %v, want ErrResourceNotFound", err)
	}
}

func TestEmptyManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "docs.txt")
	if err := os.WriteFile(manifestPath, nil, 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	l := New(log, manifestPath, "", dir)

	got, err := l.Manifest(context.Background())
	if err != nil {
		t.Fatalf("Manifest() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Manifest() = %v, want empty", got)
	}
}
