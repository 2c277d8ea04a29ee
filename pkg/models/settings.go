package models

import (
	"fmt"
	"time"
)

// FieldKind describes what kind of value a setting holds and which
// control the editor renders for it.
type FieldKind int

const (
	KindText FieldKind = iota
	KindFolder
	KindColor
	KindBool
)

// FieldGroup is the tab a field appears under in the editor.
type FieldGroup string

const (
	GroupGeneral FieldGroup = "general"
	GroupColor   FieldGroup = "color"
)

// Field describes one recognized setting: its persisted key, the label
// shown in the editor, its kind, its tab, and its default value.
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Group   FieldGroup
	Default any
}

// copyrightDefaultFormat is interpolated with the current calendar year
// by DefaultSettings.
const copyrightDefaultFormat = "© %d, your name"

// schema is the fixed, ordered set of recognized settings. The order
// here is also the key order of the persisted settings.json.
var schema = []Field{
	{Key: "zettelkasten path", Label: "zettelkasten path", Kind: KindFolder, Group: GroupGeneral, Default: ""},
	{Key: "site path", Label: "site path", Kind: KindFolder, Group: GroupGeneral, Default: ""},
	{Key: "site title", Label: "site title", Kind: KindText, Group: GroupGeneral, Default: ""},
	{Key: "copyright text", Label: "copyright text", Kind: KindText, Group: GroupGeneral, Default: ""},
	{Key: "site subfolder name", Label: "site subfolder name", Kind: KindText, Group: GroupGeneral, Default: "pages"},
	{Key: "body background color", Label: "body background color", Kind: KindColor, Group: GroupColor, Default: "#fffafa"},
	{Key: "header background color", Label: "header background color", Kind: KindColor, Group: GroupColor, Default: "#81b622"},
	{Key: "header text color", Label: "header text color", Kind: KindColor, Group: GroupColor, Default: "#ecf87f"},
	{Key: "header hover color", Label: "header hover color", Kind: KindColor, Group: GroupColor, Default: "#3d550c"},
	{Key: "body link color", Label: "body link color", Kind: KindColor, Group: GroupColor, Default: "#59981a"},
	{Key: "body hover color", Label: "body hover color", Kind: KindColor, Group: GroupColor, Default: "#3d550c"},
	{Key: "hide tags", Label: "hide tags", Kind: KindBool, Group: GroupGeneral, Default: true},
	{Key: "hide chrono index dates", Label: "hide dates in the chronological index", Kind: KindBool, Group: GroupGeneral, Default: true},
}

// Schema returns the ordered list of recognized setting fields.
func Schema() []Field {
	fields := make([]Field, len(schema))
	copy(fields, schema)
	return fields
}

// FieldFor returns the schema field for the given key.
func FieldFor(key string) (Field, bool) {
	for _, f := range schema {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// IsSchemaKey reports whether key is a recognized setting.
func IsSchemaKey(key string) bool {
	_, ok := FieldFor(key)
	return ok
}

// Values is the settings mapping. Values are strings (free text,
// filesystem paths, #RRGGBB colors) or bools; there is no nesting.
// A mapping is only ever replaced as a whole, never mutated in place
// during an edit session.
type Values map[string]any

// DefaultSettings returns the schema populated with its default values.
// The copyright notice interpolates the calendar year of now, so tests
// can pin the clock.
func DefaultSettings(now time.Time) Values {
	v := make(Values, len(schema))
	for _, f := range schema {
		if f.Key == "copyright text" {
			v[f.Key] = fmt.Sprintf(copyrightDefaultFormat, now.Year())
			continue
		}
		v[f.Key] = f.Default
	}
	return v
}

// Text returns the string value for key, or "" if the key is absent or
// not a string.
func (v Values) Text(key string) string {
	s, _ := v[key].(string)
	return s
}

// Bool returns the bool value for key, or false if the key is absent or
// not a bool.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// Clone returns a copy of the mapping. Values are strings and bools, so
// a shallow copy is a full copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
