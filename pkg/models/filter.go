package models

import "unicode"

// FilterValues strips entries the presentation layer injects into its
// raw result mapping. Schema keys all begin with a lowercase letter;
// toolkit bookkeeping keys are capitalized identifiers or numeric
// indices, and must never be persisted. Pure and idempotent.
func FilterValues(raw Values) Values {
	filtered := make(Values, len(raw))
	for key, value := range raw {
		runes := []rune(key)
		if len(runes) == 0 {
			continue
		}
		if unicode.IsLower(runes[0]) {
			filtered[key] = value
		}
	}
	return filtered
}

// Validate reports whether a filtered mapping can be saved. It fails
// only when a string value is empty; bools never fail. Color format and
// path existence are left to the editor's chooser controls.
func Validate(v Values) bool {
	for _, value := range v {
		if s, ok := value.(string); ok && s == "" {
			return false
		}
	}
	return true
}

// BlankKeys returns the keys of empty string values in schema order,
// with any non-schema keys appended in no particular order. Used for
// log detail and the check command; the user-facing notice stays a
// single fixed message.
func BlankKeys(v Values) []string {
	var blank []string
	for _, f := range schema {
		if s, ok := v[f.Key].(string); ok && s == "" {
			blank = append(blank, f.Key)
		}
	}
	for key, value := range v {
		if IsSchemaKey(key) {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			blank = append(blank, key)
		}
	}
	return blank
}
