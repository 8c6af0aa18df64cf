package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AndreyAkinshin/cgoconf/internal/model"
)

// LoadWithWarnings parses normalized request JSON and returns any unknown
// field warnings.
func LoadWithWarnings(path string, data []byte) (*RequestFile, []string, error) {
	var cfg RequestFile
	if err := DecodeJSON(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	warnings := detectUnknownFields(data)

	return &cfg, warnings, nil
}

// detectUnknownFields compares raw JSON with known struct fields.
// Note: Since this is called after successful parsing, a parse failure
// here would indicate an unexpected internal inconsistency.
func detectUnknownFields(data []byte) []string {
	var warnings []string

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// This should never happen since the data was already parsed successfully.
		// Return a warning so the condition is visible rather than silently ignored.
		return []string{"internal: failed to re-parse request for unknown field detection"}
	}

	knownTopLevel := getJSONFields(reflect.TypeOf(RequestFile{}))
	for _, key := range sortedKeys(raw) {
		if key == "$schema" {
			continue // $schema is explicitly allowed and ignored
		}
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if depsRaw, ok := raw["deps"]; ok {
		warnings = append(warnings, checkDepsUnknownFields(depsRaw)...)
	}

	return warnings
}

func checkDepsUnknownFields(data json.RawMessage) []string {
	var warnings []string

	var deps []map[string]json.RawMessage
	if err := json.Unmarshal(data, &deps); err != nil {
		// Should not happen since RequestFile.Deps parsed successfully.
		return []string{"internal: failed to re-parse deps for unknown field detection"}
	}

	knownDepFields := getJSONFields(reflect.TypeOf(DependencyConfig{}))
	knownCcFields := getJSONFields(reflect.TypeOf(model.CcInfo{}))
	knownObjcFields := getJSONFields(reflect.TypeOf(model.ObjcInfo{}))

	for i, dep := range deps {
		name := dependencyName(i, dep)
		for _, key := range sortedKeys(dep) {
			if !knownDepFields[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in dependency %s (ignored)", key, name))
			}
		}
		warnings = append(warnings, checkSectionUnknownFields(dep["cc"], "cc", name, knownCcFields)...)
		warnings = append(warnings, checkSectionUnknownFields(dep["objc"], "objc", name, knownObjcFields)...)
	}

	return warnings
}

func checkSectionUnknownFields(data json.RawMessage, section, dep string, known map[string]bool) []string {
	if len(data) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	var warnings []string
	for _, key := range sortedKeys(fields) {
		if !known[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q in %s section of dependency %s (ignored)", key, section, dep))
		}
	}
	return warnings
}

func dependencyName(i int, dep map[string]json.RawMessage) string {
	var label string
	if err := json.Unmarshal(dep["label"], &label); err == nil && label != "" {
		return fmt.Sprintf("%q", label)
	}
	return fmt.Sprintf("#%d", i)
}

// getJSONFields returns a map of known JSON field names for a struct type,
// including the fields of embedded structs.
func getJSONFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if field.Anonymous && tag == "" && field.Type.Kind() == reflect.Struct {
			for name := range getJSONFields(field.Type) {
				fields[name] = true
			}
			continue
		}
		if tag == "" || tag == "-" {
			continue
		}
		// Extract field name from tag (before comma)
		name := strings.Split(tag, ",")[0]
		if name != "" {
			fields[name] = true
		}
	}
	return fields
}

// sortedKeys keeps warning order stable across runs.
func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
