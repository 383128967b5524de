package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"competency-matrix/feature/catalog/models"

	"go.uber.org/zap"
)

// Loader reads per-role JSON documents from a language directory and
// flattens them into entries. It never mutates the source files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new dataset loader.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadDir reads every .json file in dir (sorted by filename for determinism),
// parses each as one role document and emits one entry per (code, level data)
// pair. A malformed entry only logs a warning; an unreadable directory or an
// unparseable file fails the whole load.
func (l *Loader) LoadDir(dir string) ([]models.Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, LoadFailure(dir, err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.EqualFold(filepath.Ext(f.Name()), ".json") {
			continue
		}
		names = append(names, f.Name())
	}
	sort.Strings(names)

	var entries []models.Entry
	for _, name := range names {
		path := filepath.Join(dir, name)
		docEntries, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, docEntries...)
	}

	l.logger.Info("dataset loaded",
		zap.String("dir", dir),
		zap.Int("files", len(names)),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}

func (l *Loader) loadFile(path string) ([]models.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, LoadFailure(path, err)
	}

	var doc models.RoleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, LoadFailure(path, err)
	}

	// Level maps carry no order; sort codes so flattening is deterministic.
	codes := make([]string, 0, len(doc.Levels))
	for code := range doc.Levels {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]models.Entry, 0, len(codes))
	for _, code := range codes {
		entry := doc.Entry(code, doc.Levels[code])
		if reason := entry.Validate(); reason != "" {
			l.logger.Warn("skipping malformed entry",
				zap.String("file", path),
				zap.String("code", code),
				zap.String("reason", reason),
			)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
