package leveldb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/syndtr/goleveldb/leveldb"
)

var ErrDocumentNotFound = errors.New("document not found")

const docKeyPrefix = "doc:"

// Storage keeps raw document contents so matched documents can be shown
// after a search. The keyword index itself is never persisted.
type Storage struct {
	log *slog.Logger
	db  *leveldb.DB
}

func NewStorage(log *slog.Logger, path string) (*Storage, error) {
	const op = "storage.leveldb.NewStorage"

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{log: log, db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) SaveDocument(ctx context.Context, docID string, content []byte) error {
	const op = "storage.leveldb.SaveDocument"

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := s.db.Put([]byte(docKeyPrefix+docID), content, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) GetDocument(ctx context.Context, docID string) (string, error) {
	const op = "storage.leveldb.GetDocument"

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	data, err := s.db.Get([]byte(docKeyPrefix+docID), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return "", fmt.Errorf("%s: %w: %s", op, ErrDocumentNotFound, docID)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(data), nil
}
