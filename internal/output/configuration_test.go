package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/cgoconf/internal/configure"
)

func sampleConfiguration() configure.Configuration {
	return configure.Configuration{
		Toolchain:  "linux-gcc",
		LinkMode:   "c-shared",
		CppOpts:    []string{"-DX", "-iquote", "."},
		COpts:      []string{"-fPIC"},
		CxxOpts:    []string{},
		ObjcOpts:   []string{},
		ObjcxxOpts: []string{},
		LinkOpts:   []string{"-Wl,-whole-archive", "liba.a", "-Wl,-no-whole-archive", "-lm"},
		Inputs:     []string{"a.h", "liba.a"},
		Deps:       []string{},
		Runfiles:   []string{"data.txt"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":     FormatText,
		"text": FormatText,
		"json": FormatJSON,
		"JSON": FormatJSON,
		"yaml": FormatYAML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriter_Configuration_Text(t *testing.T) {
	w, stdout, _ := newTestWriter()

	require.NoError(t, w.Configuration(sampleConfiguration(), "abc123", FormatText))

	out := stdout.String()
	assert.Contains(t, out, "toolchain: linux-gcc\n")
	assert.Contains(t, out, "link mode: c-shared\n")
	assert.Contains(t, out, "fingerprint: abc123\n")
	assert.Contains(t, out, "=== Preprocessor Options ===\n  -DX\n  -iquote\n  .\n")
	assert.Contains(t, out, "=== Linker Options ===\n")
	assert.Contains(t, out, "=== Runfiles ===\n  data.txt\n")
	// Empty lists are omitted.
	assert.NotContains(t, out, "Dynamic Libraries")
}

func TestWriter_Configuration_TextWithoutFingerprint(t *testing.T) {
	w, stdout, _ := newTestWriter()

	require.NoError(t, w.Configuration(sampleConfiguration(), "", FormatText))
	assert.NotContains(t, stdout.String(), "fingerprint")
}

func TestWriter_Configuration_JSON(t *testing.T) {
	w, stdout, _ := newTestWriter()

	require.NoError(t, w.Configuration(sampleConfiguration(), "abc123", FormatJSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "linux-gcc", got["toolchain"])
	assert.Equal(t, "abc123", got["fingerprint"])
	assert.Equal(t, []any{"-fPIC"}, got["copts"])
	assert.Equal(t, []any{}, got["deps"])
}

func TestWriter_Configuration_JSONOmitsEmptyFingerprint(t *testing.T) {
	w, stdout, _ := newTestWriter()

	require.NoError(t, w.Configuration(sampleConfiguration(), "", FormatJSON))
	assert.NotContains(t, stdout.String(), "fingerprint")
}

func TestWriter_Configuration_YAML(t *testing.T) {
	w, stdout, _ := newTestWriter()

	require.NoError(t, w.Configuration(sampleConfiguration(), "abc123", FormatYAML))

	var got configure.Configuration
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	want := sampleConfiguration()
	assert.Equal(t, want.LinkOpts, got.LinkOpts)
	assert.Equal(t, want.Runfiles, got.Runfiles)
	assert.True(t, strings.Contains(stdout.String(), "fingerprint: abc123"))
}

func TestWriter_Configuration_UnknownFormat(t *testing.T) {
	w, _, _ := newTestWriter()
	assert.Error(t, w.Configuration(sampleConfiguration(), "", "xml"))
}
