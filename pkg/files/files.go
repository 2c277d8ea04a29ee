package files

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/zettelsite/zettelsite-settings/pkg/models"
)

// SettingsFile is the persisted settings file, resolved against the
// current working directory.
const SettingsFile = "settings.json"

// ErrNoSettings is returned by ReadSettings when the settings file is
// missing or holds no settings. Callers recover from it via a fallback
// strategy; every other read failure is fatal to the operation.
var ErrNoSettings = errors.New("no persisted settings")

// ReadSettings reads and decodes the settings file. A missing file, an
// empty or whitespace-only file, and a file decoding to an empty or
// null object all report ErrNoSettings. Malformed JSON in a non-empty
// file does not.
func ReadSettings() (models.Values, error) {
	data, err := os.ReadFile(SettingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSettings
		}
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoSettings
	}

	var settings models.Values
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}

	if len(settings) == 0 {
		return nil, ErrNoSettings
	}

	return settings, nil
}

// WriteSettings serializes the mapping and overwrites the settings file
// unconditionally. Last writer wins; there is no atomic rename and no
// backup of the previous version.
func WriteSettings(settings models.Values) error {
	data, err := marshalOrdered(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(SettingsFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", SettingsFile, err)
	}

	return nil
}

// SettingsPath returns the absolute location of the settings file.
func SettingsPath() string {
	abs, err := filepath.Abs(SettingsFile)
	if err != nil {
		return SettingsFile
	}
	return abs
}

// marshalOrdered encodes the mapping as a JSON object with schema keys
// in schema order. encoding/json alone would sort map keys
// alphabetically. Keys outside the schema (none survive the result
// filter, but the store does not police its callers) follow sorted.
func marshalOrdered(settings models.Values) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	writeEntry := func(key string, value any) error {
		if !first {
			buf.WriteString(", ")
		}
		first = false

		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteString(": ")
		buf.Write(v)
		return nil
	}

	for _, field := range models.Schema() {
		value, ok := settings[field.Key]
		if !ok {
			continue
		}
		if err := writeEntry(field.Key, value); err != nil {
			return nil, err
		}
	}

	var extras []string
	for key := range settings {
		if !models.IsSchemaKey(key) {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		if err := writeEntry(key, settings[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
