package translation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"competency-matrix/feature/catalog/models"

	"go.uber.org/zap"
)

// Translator resolves role display names and, for a non-native language,
// swaps competency and indicator text using per-role translation documents.
//
// Documents are loaded lazily on first access to a role and cached for the
// lifetime of the instance. A missing document is deliberately not cached, so
// translation files can be hot-fixed without a restart; each miss re-attempts
// the disk read and logs a warning.
type Translator struct {
	language string
	native   string
	dir      string
	logger   *zap.Logger

	roleNames RoleNames

	mu    sync.Mutex
	cache map[string]Document
}

// New creates a translator for the given language. dir is the translations
// root: it holds roles.json (the role-name map) plus one subdirectory per
// non-native language with per-role documents. A missing role-name map only
// logs a warning; role names then fall back to their canonical form.
func New(language, native, dir string, logger *zap.Logger) *Translator {
	t := &Translator{
		language:  language,
		native:    native,
		dir:       dir,
		logger:    logger,
		roleNames: RoleNames{},
		cache:     make(map[string]Document),
	}

	path := filepath.Join(dir, "roles.json")
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("role-name map not available", zap.String("path", path), zap.Error(err))
		return t
	}
	if err := json.Unmarshal(data, &t.roleNames); err != nil {
		logger.Warn("role-name map unparseable", zap.String("path", path), zap.Error(err))
	}
	return t
}

// Language returns the language this translator resolves to.
func (t *Translator) Language() string {
	return t.language
}

// TranslateRoleName returns the role's display name in the configured
// language, falling back to the canonical name when no mapping entry or no
// translation text exists.
func (t *Translator) TranslateRoleName(originalRole string) string {
	entry, ok := t.roleNames[originalRole]
	if !ok {
		return originalRole
	}
	if name := entry.ForLanguage(t.language); name != "" {
		return name
	}
	return originalRole
}

// TranslateEntry returns a copy of the entry resolved to the configured
// language. Nil passes through. For the native language only the role display
// name is resolved; the stored text already is in that language. Otherwise
// the per-role document is consulted, and any competency whose translated
// counterpart is missing silently retains its original text.
func (t *Translator) TranslateEntry(entry *models.Entry) *models.Entry {
	if entry == nil {
		return nil
	}

	out := entry.Clone()
	out.Role = t.TranslateRoleName(entry.Role)
	if t.language == t.native {
		return out
	}

	doc, ok := t.documentFor(entry.Role)
	if !ok {
		return out
	}
	level, ok := doc[entry.Code]
	if !ok {
		return out
	}

	out.CoreCompetencies = overlay(out.CoreCompetencies, level.CoreCompetencies)
	out.ComplementaryCompetencies = overlay(out.ComplementaryCompetencies, level.ComplementaryCompetencies)
	out.Indicators = overlay(out.Indicators, level.Indicators)
	return out
}

// ClearCache empties the per-role document cache; subsequent lookups reload
// from disk.
func (t *Translator) ClearCache() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache = make(map[string]Document)
}

// documentFor returns the cached translation document for a role, loading it
// on first access. Absence is not cached.
func (t *Translator) documentFor(role string) (Document, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if doc, ok := t.cache[role]; ok {
		return doc, true
	}

	path := filepath.Join(t.dir, t.language, RoleFileName(role))
	data, err := os.ReadFile(path)
	if err != nil {
		t.logger.Warn("translation document not available",
			zap.String("role", role),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, false
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.logger.Warn("translation document unparseable",
			zap.String("role", role),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, false
	}

	t.cache[role] = doc
	return doc, true
}

// overlay substitutes translated items by index, keeping the original text
// wherever the translation has no non-empty counterpart. Both arrays must
// exist for any substitution to happen.
func overlay(original, translated []string) []string {
	if original == nil || translated == nil {
		return original
	}
	out := make([]string, len(original))
	for i, item := range original {
		if i < len(translated) && translated[i] != "" {
			out[i] = translated[i]
		} else {
			out[i] = item
		}
	}
	return out
}
