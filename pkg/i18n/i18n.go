package i18n

import "strings"

// Locale names the two supported languages.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleZulu    Locale = "zu"
)

// table is a nested string map addressed by dotted keys.
type table map[string]any

// T resolves a dotted key against the given locale, falling back to English
// when the key is missing, and finally to the key itself. Parameters appear
// in translations as {{name}} and are replaced verbatim.
func T(locale Locale, key string, params map[string]string) string {
	value, ok := lookup(tableFor(locale), key)
	if !ok {
		value, ok = lookup(english, key)
	}
	if !ok {
		return key
	}
	return substitute(value, params)
}

// has reports whether the key resolves in the given locale without fallback.
func has(locale Locale, key string) bool {
	_, ok := lookup(tableFor(locale), key)
	return ok
}

func tableFor(locale Locale) table {
	if locale == LocaleZulu {
		return zulu
	}
	return english
}

func lookup(tbl table, key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := tbl
	for i, part := range parts {
		node, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := node.(string)
			return s, ok
		}
		current, ok = node.(table)
		if !ok {
			return "", false
		}
	}
	return "", false
}

func substitute(value string, params map[string]string) string {
	for name, replacement := range params {
		value = strings.ReplaceAll(value, "{{"+name+"}}", replacement)
	}
	return value
}
