package cli

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/zettelsite/zettelsite-settings/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSettingKey checks that key names a recognized setting and
// lists the valid keys when it does not.
func ValidateSettingKey(key string) error {
	if models.IsSchemaKey(key) {
		return nil
	}

	var keys []string
	for _, f := range models.Schema() {
		keys = append(keys, "'"+f.Key+"'")
	}
	return fmt.Errorf("unknown setting %q (valid settings: %s)", key, strings.Join(keys, ", "))
}

// ParseSettingValue converts a command-line string into the typed value
// for the given setting. Bools accept what strconv.ParseBool accepts;
// colors must be 7-character #rrggbb strings; other strings must not be
// blank. Color format enforcement belongs to the chooser layer, which
// on the command line is this parser.
func ParseSettingValue(field models.Field, raw string) (any, error) {
	switch field.Kind {
	case models.KindBool:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %q: expected true or false", raw, field.Key)
		}
		return value, nil

	case models.KindColor:
		if err := ValidateHexColor(raw); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", field.Key, err)
		}
		return strings.ToLower(raw), nil

	default:
		if raw == "" {
			return nil, fmt.Errorf("setting %q must be given a value", field.Key)
		}
		return raw, nil
	}
}

// ValidateHexColor checks for a #rrggbb hex triplet.
func ValidateHexColor(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("%q is not a #rrggbb color", s)
	}
	if _, err := colorful.Hex(s); err != nil {
		return fmt.Errorf("%q is not a #rrggbb color", s)
	}
	return nil
}
