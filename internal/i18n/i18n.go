// Package i18n holds the portal's two-language string tables. The language set
// is closed: English and Sinhala. Unknown languages resolve to English and
// unknown keys fall back to the key itself, so a missing translation is
// visible but never fatal.
package i18n

import "edupiyasa_backend/internal/model"

// Normalize maps an arbitrary language tag onto the supported set.
func Normalize(lang string) string {
	if model.ValidLanguage(lang) {
		return lang
	}
	return model.LanguageEnglish
}

// T translates key for lang, falling back to the key when untranslated.
func T(lang, key string) string {
	table, ok := translations[Normalize(lang)]
	if !ok {
		return key
	}
	if value, ok := table[key]; ok {
		return value
	}
	return key
}

// Bundle returns the full key→string table for lang.
func Bundle(lang string) map[string]string {
	return translations[Normalize(lang)]
}

// Keys reports every translation key, from the English table.
func Keys() []string {
	table := translations[model.LanguageEnglish]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}
