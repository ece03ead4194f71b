package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrResourceNotFound marks a missing manifest, noise-word file or listed
// document. Any of these aborts the whole indexing pass.
var ErrResourceNotFound = errors.New("resource not found")

type Loader struct {
	log            *slog.Logger
	manifestPath   string
	noiseWordsPath string
	docsDir        string
}

func New(log *slog.Logger, manifestPath, noiseWordsPath, docsDir string) *Loader {
	return &Loader{
		log:            log,
		manifestPath:   manifestPath,
		noiseWordsPath: noiseWordsPath,
		docsDir:        docsDir,
	}
}

// Manifest returns the ordered document names to index. Manifest order is
// merge order, which breaks frequency ties in the index.
func (l *Loader) Manifest(ctx context.Context) ([]string, error) {
	const op = "loader.Manifest"

	names, err := l.scanWords(ctx, l.manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return names, nil
}

// NoiseWords returns the raw noise-word list, case as found in the file.
func (l *Loader) NoiseWords(ctx context.Context) ([]string, error) {
	const op = "loader.NoiseWords"

	words, err := l.scanWords(ctx, l.noiseWordsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return words, nil
}

// Document returns the raw content of one listed document, resolved against
// the docs directory.
func (l *Loader) Document(ctx context.Context, name string) (string, error) {
	const op = "loader.Document"

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	data, err := os.ReadFile(filepath.Join(l.docsDir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w: %s", op, ErrResourceNotFound, name)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(data), nil
}

// scanWords reads a file as a whitespace-separated word list.
func (l *Loader) scanWords(ctx context.Context, path string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, path)
		}
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			l.log.Error("Failed to close file", "error", err)
		}
	}()

	var words []string
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
