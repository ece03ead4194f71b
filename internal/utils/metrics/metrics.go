package metrics

import (
	"log/slog"
	"sync"
	"time"
)

type Metrics struct {
	mu            sync.Mutex
	documents     int
	keywords      int
	totalLoadTime time.Duration
}

func (m *Metrics) RecordDocument(keywords int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents++
	m.keywords += keywords
	m.totalLoadTime += duration
}

func (m *Metrics) PrintMetrics(log *slog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	avgLoadTime := time.Duration(0)
	if m.documents > 0 {
		avgLoadTime = m.totalLoadTime / time.Duration(m.documents)
	}

	log.Info("Indexing metrics",
		"Documents", m.documents,
		"Keywords Loaded", m.keywords,
		"Avg Load Time", avgLoadTime,
	)
}
