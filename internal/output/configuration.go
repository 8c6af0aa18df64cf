package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/cgoconf/internal/configure"
)

// Format is an output format for a resolved configuration.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s. An empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

var titleCase = cases.Title(language.English)

// section is one titled argument list of the text rendering.
type section struct {
	title string
	items []string
}

func sections(cfg configure.Configuration) []section {
	return []section{
		{"preprocessor options", cfg.CppOpts},
		{"c options", cfg.COpts},
		{"c++ options", cfg.CxxOpts},
		{"objective-c options", cfg.ObjcOpts},
		{"objective-c++ options", cfg.ObjcxxOpts},
		{"linker options", cfg.LinkOpts},
		{"inputs", cfg.Inputs},
		{"dynamic libraries", cfg.Deps},
		{"runfiles", cfg.Runfiles},
	}
}

// Configuration renders cfg in format. The fingerprint is included when
// non-empty.
func (w *Writer) Configuration(cfg configure.Configuration, fingerprint string, format Format) error {
	switch format {
	case FormatJSON:
		doc := struct {
			configure.Configuration
			Fingerprint string `json:"fingerprint,omitempty"`
		}{cfg, fingerprint}
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		doc := struct {
			configure.Configuration `yaml:",inline"`
			Fingerprint             string `yaml:"fingerprint,omitempty"`
		}{cfg, fingerprint}
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		w.configurationText(cfg, fingerprint)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (w *Writer) configurationText(cfg configure.Configuration, fingerprint string) {
	w.Println("toolchain: %s", cfg.Toolchain)
	w.Println("link mode: %s", cfg.LinkMode)
	if fingerprint != "" {
		w.Println("fingerprint: %s", fingerprint)
	}
	for _, s := range sections(cfg) {
		if len(s.items) == 0 {
			continue
		}
		w.Println("")
		w.Section(titleCase.String(s.title))
		w.List(s.items)
	}
}
