package library

import (
	"path/filepath"
	"sync"

	"competency-matrix/core/config"
	"competency-matrix/core/logger"
	"competency-matrix/feature/catalog"
	"competency-matrix/feature/catalog/models"
	"competency-matrix/feature/comparison"
	"competency-matrix/feature/query"
	"competency-matrix/feature/search"
	"competency-matrix/feature/translation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Library wires the loader, store, translator and read services together for
// one configured language. Construction is cheap; the dataset is loaded
// lazily on first access and then held for the lifetime of the instance.
type Library struct {
	cfg    *config.Config
	logger *zap.Logger

	once    sync.Once
	initErr error

	store       *catalog.Store
	translator  *translation.Translator
	queries     *query.Service
	search      *search.Service
	comparisons *comparison.Service
}

// New creates a library over the configured dataset. The configuration's
// language must be supported.
func New(cfg *config.Config, log *zap.Logger) (*Library, error) {
	if !cfg.Library.IsValidLanguage() {
		return nil, catalog.InvalidInput("unsupported language " + cfg.Library.Language)
	}
	return &Library{
		cfg:    cfg,
		logger: logger.WithLanguage(log, cfg.Library.Language),
	}, nil
}

// init loads the dataset exactly once. It acts as the initialization barrier:
// the store is fully built before any service reference escapes.
func (l *Library) init() error {
	l.once.Do(func() {
		l.initErr = l.load()
	})
	return l.initErr
}

func (l *Library) load() error {
	// One id per dataset load, so log lines of this instance correlate.
	log := l.logger.With(zap.String("load_id", uuid.NewString()))

	dir := filepath.Join(l.cfg.Data.Dir, l.cfg.Data.NativeLanguage)
	entries, err := catalog.NewLoader(log).LoadDir(dir)
	if err != nil {
		return err
	}

	store := catalog.NewStore(log)
	store.Load(entries)

	translator := translation.New(
		l.cfg.Library.Language,
		l.cfg.Data.NativeLanguage,
		l.cfg.Data.TranslationsDir,
		log,
	)

	queries := query.NewService(store, translator, log)
	l.store = store
	l.translator = translator
	l.queries = queries
	l.search = search.NewService(store, translator, log)
	l.comparisons = comparison.NewService(store, queries, log)
	return nil
}

// Queries returns the query service, loading the dataset on first use.
func (l *Library) Queries() (*query.Service, error) {
	if err := l.init(); err != nil {
		return nil, err
	}
	return l.queries, nil
}

// Search returns the search service, loading the dataset on first use.
func (l *Library) Search() (*search.Service, error) {
	if err := l.init(); err != nil {
		return nil, err
	}
	return l.search, nil
}

// Comparisons returns the comparison service, loading the dataset on first use.
func (l *Library) Comparisons() (*comparison.Service, error) {
	if err := l.init(); err != nil {
		return nil, err
	}
	return l.comparisons, nil
}

// Statistics summarizes the loaded dataset.
func (l *Library) Statistics() (models.Statistics, error) {
	if err := l.init(); err != nil {
		return models.Statistics{}, err
	}
	return l.store.Statistics(), nil
}

// CompetencyOptions returns the projection options configured as defaults.
func (l *Library) CompetencyOptions() query.CompetencyOptions {
	return query.CompetencyOptions{
		IncludeComplementary: l.cfg.Library.IncludeComplementary,
		IncludeIndicators:    l.cfg.Library.IncludeIndicators,
	}
}

// SearchLimit returns the configured default cap on search results.
func (l *Library) SearchLimit() int {
	return l.cfg.Library.SearchLimit
}

// Reload rebuilds the store from disk and clears the translation cache. Like
// Load on the store, it must not race with concurrent reads.
func (l *Library) Reload() error {
	if err := l.init(); err != nil {
		return err
	}
	dir := filepath.Join(l.cfg.Data.Dir, l.cfg.Data.NativeLanguage)
	entries, err := catalog.NewLoader(l.logger).LoadDir(dir)
	if err != nil {
		return err
	}
	l.store.Load(entries)
	l.translator.ClearCache()
	return nil
}
