package engine

import (
	"context"
	"slices"
	"strings"
	"time"

	"littlesearch/internal/domain/models"
	"littlesearch/internal/utils"
)

// TopKOr answers an "or" query: up to k unique documents containing either
// keyword, ordered by descending frequency across both occurrence lists, ties
// favoring the first keyword. Returns nil when neither keyword occurs in any
// document, never an empty slice.
func (e *Engine) TopKOr(kw1, kw2 string, k int) []string {
	first := e.index[strings.ToLower(kw1)]
	second := e.index[strings.ToLower(kw2)]

	var result []string
	switch {
	case len(first) == 0 && len(second) == 0:
		return nil
	case len(second) == 0:
		result = walkRanked(first, k)
	case len(first) == 0:
		result = walkRanked(second, k)
	default:
		result = pairwiseOr(first, second, k)
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// pairwiseOr walks the first list and compares each occurrence against every
// occurrence of the second list, picking the higher-frequency document of
// each pairing. The pairing order is what produces the frequency-descending,
// first-keyword-favoring result order over two ranked lists.
func pairwiseOr(first, second []models.Occurrence, k int) []string {
	var result []string
	for _, o1 := range first {
		if len(result) >= k {
			break
		}
		for _, o2 := range second {
			if o2.Frequency <= o1.Frequency {
				result = appendUnique(result, o1.Document, k)
			} else {
				result = appendUnique(result, o2.Document, k)
			}
		}
	}
	return result
}

// walkRanked takes the top documents of a single ranked list, for queries
// where only one of the two keywords occurs anywhere.
func walkRanked(occs []models.Occurrence, k int) []string {
	var result []string
	for _, occ := range occs {
		if len(result) >= k {
			break
		}
		result = appendUnique(result, occ.Document, k)
	}
	return result
}

func appendUnique(result []string, doc string, k int) []string {
	if len(result) >= k {
		return result
	}
	if slices.Contains(result, doc) {
		return result
	}
	return append(result, doc)
}

// Search wraps TopKOr into a search result with per-phase timings for the UI.
func (e *Engine) Search(ctx context.Context, kw1, kw2 string, k int) (*models.SearchResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	startTime := time.Now()
	timings := make(map[string]string)

	searchStart := time.Now()
	docs := e.TopKOr(kw1, kw2, k)
	timings["search"] = utils.FormatDuration(time.Since(searchStart))
	timings["total"] = utils.FormatDuration(time.Since(startTime))

	return &models.SearchResult{
		Documents:         docs,
		Timings:           timings,
		TotalResultsCount: len(docs),
	}, nil
}
