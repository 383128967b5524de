package translation

// RoleNameEntry holds the display name of one role per supported language.
type RoleNameEntry struct {
	Es string `json:"es"`
	En string `json:"en"`
}

// ForLanguage returns the translation for the given language, or "" when the
// entry carries no text for it.
func (e RoleNameEntry) ForLanguage(language string) string {
	switch language {
	case "es":
		return e.Es
	case "en":
		return e.En
	default:
		return ""
	}
}

// RoleNames maps a canonical (source-language) role name to its translations.
type RoleNames map[string]RoleNameEntry

// LevelTranslation carries the translated competency arrays of one level,
// aligned by index with the native entry's arrays.
type LevelTranslation struct {
	CoreCompetencies          []string `json:"coreCompetencies"`
	ComplementaryCompetencies []string `json:"complementaryCompetencies"`
	Indicators                []string `json:"indicators"`
}

// Document is a per-role translation file, keyed by entry code.
type Document map[string]LevelTranslation
