package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"littlesearch/config"
	"littlesearch/internal/domain/models"
	"littlesearch/internal/services/engine"
	"littlesearch/internal/services/loader"
	"littlesearch/internal/utils"
	"littlesearch/internal/utils/metrics"
	"littlesearch/internal/workers"
)

type App struct {
	log        *slog.Logger
	Engine     *engine.Engine
	Loader     *loader.Loader
	StorageApp *StorageApp
	metrics    *metrics.Metrics
	workers    int
}

func New(log *slog.Logger, cfg *config.Config) *App {
	storageApp, err := NewStorageApp(log, cfg.StoragePath)
	if err != nil {
		panic(err)
	}

	ldr := loader.New(log, cfg.ManifestPath, cfg.NoiseWordsPath, cfg.DocsDir)

	return &App{
		log:        log,
		Loader:     ldr,
		StorageApp: storageApp,
		metrics:    &metrics.Metrics{},
		workers:    cfg.Indexing.Workers,
	}
}

// BuildIndex runs the one-shot indexing pass. Document loading may be
// parallel, but merges are applied strictly in manifest order: merge order
// breaks frequency ties, so it must match the manifest. A missing manifest,
// noise-word file or document aborts the whole pass.
func (a *App) BuildIndex(ctx context.Context) error {
	const op = "app.BuildIndex"

	start := time.Now()

	manifest, err := a.Loader.Manifest(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	noise, err := a.Loader.NoiseWords(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	a.Engine = engine.New(a.log, engine.NewNoiseWords(noise))

	var perDoc []map[string]models.Occurrence
	if a.workers > 1 {
		perDoc, err = a.loadParallel(ctx, manifest)
	} else {
		perDoc, err = a.loadSequential(ctx, manifest)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, kws := range perDoc {
		a.Engine.Merge(kws)
	}

	a.metrics.PrintMetrics(a.log)
	a.log.Info("Index built",
		"documents", len(manifest),
		"keywords", a.Engine.KeywordCount(),
		"took", utils.FormatDuration(time.Since(start)),
	)
	return nil
}

func (a *App) loadSequential(ctx context.Context, manifest []string) ([]map[string]models.Occurrence, error) {
	perDoc := make([]map[string]models.Occurrence, len(manifest))
	for i, name := range manifest {
		kws, err := a.loadDocument(ctx, name)
		if err != nil {
			return nil, err
		}
		perDoc[i] = kws
	}
	return perDoc, nil
}

// loadParallel loads per-document keyword maps on a worker pool. Results are
// put back into manifest positions so the caller can merge in order.
func (a *App) loadParallel(ctx context.Context, manifest []string) ([]map[string]models.Occurrence, error) {
	type docKeywords struct {
		pos      int
		keywords map[string]models.Occurrence
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := workers.New[docKeywords](a.workers)
	go pool.Run(ctx)

	go func() {
		defer pool.Close()
		for i, name := range manifest {
			pos, name := i, name
			ok := pool.AddJob(ctx, workers.Job[docKeywords]{
				Description: workers.JobDescriptor{ID: workers.JobID(name)},
				ExecFn: func(ctx context.Context) (docKeywords, error) {
					kws, err := a.loadDocument(ctx, name)
					return docKeywords{pos: pos, keywords: kws}, err
				},
			})
			if !ok {
				return
			}
		}
	}()

	perDoc := make([]map[string]models.Occurrence, len(manifest))
	var firstErr error
	for result := range pool.Results {
		if result.Err != nil {
			if firstErr == nil {
				firstErr = result.Err
				cancel()
			}
			continue
		}
		perDoc[result.Value.pos] = result.Value.keywords
	}
	<-pool.Done

	if firstErr != nil {
		return nil, firstErr
	}
	return perDoc, nil
}

// loadDocument reads one document, stores its raw content and returns its
// keyword map.
func (a *App) loadDocument(ctx context.Context, name string) (map[string]models.Occurrence, error) {
	loadStart := time.Now()

	content, err := a.Loader.Document(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := a.StorageApp.Storage().SaveDocument(ctx, name, []byte(content)); err != nil {
		return nil, err
	}

	kws := a.Engine.LoadDocument(name, engine.Tokenize(content))
	a.metrics.RecordDocument(len(kws), time.Since(loadStart))
	return kws, nil
}
