package models

// Occurrence records how many times one keyword appears in one document.
type Occurrence struct {
	Document  string `json:"document"`
	Frequency int    `json:"frequency"`
}

func NewOccurrence(document string, frequency int) Occurrence {
	return Occurrence{
		Document:  document,
		Frequency: frequency,
	}
}

type SearchResult struct {
	Documents         []string          `json:"documents"`
	Timings           map[string]string `json:"timings"`
	TotalResultsCount int               `json:"total_results_count"`
}
