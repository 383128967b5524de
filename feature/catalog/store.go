package catalog

import (
	"math"
	"sort"
	"strings"

	"competency-matrix/feature/catalog/models"

	"go.uber.org/zap"
)

// Store holds all entries and five derived lookup indexes. It is built once
// by Load and never incrementally maintained; any data change requires a full
// rebuild. Load must complete before the store is published to readers.
type Store struct {
	logger *zap.Logger

	entries      []*models.Entry
	byCode       map[string]*models.Entry
	byRole       map[string][]*models.Entry
	byCategory   map[string][]*models.Entry
	byCompetency map[string][]*models.Entry
	byLevel      map[int][]*models.Entry
}

// NewStore creates an empty store.
func NewStore(logger *zap.Logger) *Store {
	s := &Store{logger: logger}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.entries = nil
	s.byCode = make(map[string]*models.Entry)
	s.byRole = make(map[string][]*models.Entry)
	s.byCategory = make(map[string][]*models.Entry)
	s.byCompetency = make(map[string][]*models.Entry)
	s.byLevel = make(map[int][]*models.Entry)
}

// Load replaces all data and rebuilds every index. Not safe to call
// concurrently with reads against the same store instance.
func (s *Store) Load(entries []models.Entry) {
	s.reset()

	for i := range entries {
		entry := entries[i].Clone()
		s.entries = append(s.entries, entry)

		s.byCode[entry.Code] = entry
		s.byRole[entry.Role] = append(s.byRole[entry.Role], entry)
		s.byCategory[entry.Category] = append(s.byCategory[entry.Category], entry)
		s.byLevel[entry.LevelNumber] = append(s.byLevel[entry.LevelNumber], entry)
		s.indexCompetencies(entry)
	}

	// Per-role sequences answer range queries in level order.
	for role := range s.byRole {
		seq := s.byRole[role]
		sort.SliceStable(seq, func(i, j int) bool {
			return seq[i].LevelNumber < seq[j].LevelNumber
		})
	}

	s.logger.Info("indexes built",
		zap.Int("entries", len(s.entries)),
		zap.Int("roles", len(s.byRole)),
		zap.Int("categories", len(s.byCategory)),
		zap.Int("competency_keys", len(s.byCompetency)),
	)
}

func (s *Store) indexCompetencies(entry *models.Entry) {
	seen := make(map[string]struct{})
	index := func(texts []string) {
		for _, text := range texts {
			key := strings.ToLower(text)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			s.byCompetency[key] = append(s.byCompetency[key], entry)
		}
	}
	index(entry.CoreCompetencies)
	index(entry.ComplementaryCompetencies)
	index(entry.Indicators)
}

// GetByCode returns the entry with the given unique code.
func (s *Store) GetByCode(code string) (*models.Entry, bool) {
	entry, ok := s.byCode[code]
	if !ok {
		return nil, false
	}
	return entry.Clone(), true
}

// GetByRole returns all entries of a role, ascending by level number.
// An unknown role yields an empty sequence, not an error.
func (s *Store) GetByRole(role string) []*models.Entry {
	return cloneAll(s.byRole[role])
}

// GetByCategory returns all entries of a category in insertion order.
func (s *Store) GetByCategory(category string) []*models.Entry {
	return cloneAll(s.byCategory[category])
}

// GetByLevel returns all entries at the given level number.
func (s *Store) GetByLevel(level int) []*models.Entry {
	return cloneAll(s.byLevel[level])
}

// SearchByCompetency returns the entries whose competency or indicator text
// equals the given text, compared case-insensitively as a full string.
func (s *Store) SearchByCompetency(text string) []*models.Entry {
	return cloneAll(s.byCompetency[strings.ToLower(text)])
}

// All returns every entry in load order.
func (s *Store) All() []*models.Entry {
	return cloneAll(s.entries)
}

// AllRoles returns the sorted unique role names.
func (s *Store) AllRoles() []string {
	return sortedKeys(s.byRole)
}

// AllCategories returns the sorted unique category names.
func (s *Store) AllCategories() []string {
	return sortedKeys(s.byCategory)
}

// Statistics summarizes the loaded dataset.
func (s *Store) Statistics() models.Statistics {
	stats := models.Statistics{
		TotalRoles:      len(s.byRole),
		TotalCategories: len(s.byCategory),
		TotalEntries:    len(s.entries),
		ByCategory:      make(map[string]int, len(s.byCategory)),
	}
	for category, entries := range s.byCategory {
		stats.ByCategory[category] = len(entries)
	}
	if stats.TotalRoles > 0 {
		stats.AverageEntriesPerRole = int(math.Round(float64(stats.TotalEntries) / float64(stats.TotalRoles)))
	}
	return stats
}

func cloneAll(entries []*models.Entry) []*models.Entry {
	out := make([]*models.Entry, len(entries))
	for i, entry := range entries {
		out[i] = entry.Clone()
	}
	return out
}

func sortedKeys(m map[string][]*models.Entry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
