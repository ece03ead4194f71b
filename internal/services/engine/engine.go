package engine

import (
	"iter"
	"log/slog"

	"littlesearch/internal/domain/models"
)

// Engine holds the global keyword index: keyword to its occurrence list,
// ordered by descending frequency. The index is built once during the
// indexing pass and is read-only afterwards.
type Engine struct {
	log   *slog.Logger
	noise NoiseWords
	index map[string][]models.Occurrence
}

func New(log *slog.Logger, noise NoiseWords) *Engine {
	return &Engine{
		log:   log,
		noise: noise,
		index: make(map[string][]models.Occurrence),
	}
}

// LoadDocument scans one document's token stream and returns its keyword map:
// one occurrence per keyword, frequency counted within this document.
func (e *Engine) LoadDocument(docID string, tokens iter.Seq[string]) map[string]models.Occurrence {
	kws := make(map[string]models.Occurrence)
	for token := range tokens {
		keyword, ok := e.noise.Normalize(token)
		if !ok {
			continue
		}

		occ, ok := kws[keyword]
		if !ok {
			kws[keyword] = models.NewOccurrence(docID, 1)
			continue
		}
		occ.Frequency++
		kws[keyword] = occ
	}
	return kws
}

// Merge folds a document's keyword map into the global index. Each occurrence
// is appended to its keyword's list and moved into ranked position, so lists
// stay ordered by descending frequency. Documents must be merged in manifest
// order: merge order breaks ties between equal frequencies.
func (e *Engine) Merge(kws map[string]models.Occurrence) {
	for keyword, occ := range kws {
		occs, ok := e.index[keyword]
		if !ok {
			e.index[keyword] = []models.Occurrence{occ}
			continue
		}

		occs = append(occs, occ)
		occs, _ = insertLast(occs)
		e.index[keyword] = occs
	}
}

// KeywordCount returns the number of distinct keywords in the index.
func (e *Engine) KeywordCount() int {
	return len(e.index)
}

// Occurrences returns a keyword's ranked occurrence list. An unknown keyword
// yields an empty list, never an error.
func (e *Engine) Occurrences(keyword string) []models.Occurrence {
	return e.index[keyword]
}
