package model

import (
	"fmt"
	"path"
	"strings"
)

// LinkMode is the way the Go linker produces the final artifact.
type LinkMode string

// Link modes. Every mode other than LinkModeNormal needs position-independent
// native objects.
const (
	LinkModeNormal   LinkMode = "normal"
	LinkModePIE      LinkMode = "pie"
	LinkModeShared   LinkMode = "shared"
	LinkModePlugin   LinkMode = "plugin"
	LinkModeCShared  LinkMode = "c-shared"
	LinkModeCArchive LinkMode = "c-archive"
)

var linkModes = []LinkMode{
	LinkModeNormal,
	LinkModePIE,
	LinkModeShared,
	LinkModePlugin,
	LinkModeCShared,
	LinkModeCArchive,
}

// LinkModes returns all known link modes.
func LinkModes() []LinkMode {
	out := make([]LinkMode, len(linkModes))
	copy(out, linkModes)
	return out
}

// ParseLinkMode validates s. An empty string means LinkModeNormal.
func ParseLinkMode(s string) (LinkMode, error) {
	if s == "" {
		return LinkModeNormal, nil
	}
	for _, m := range linkModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown link mode %q", s)
}

// RequiresPIC reports whether objects linked in this mode must be compiled
// as position-independent code.
func (m LinkMode) RequiresPIC() bool {
	return m != "" && m != LinkModeNormal
}

// HeaderExtensions are the source extensions treated as native headers.
var HeaderExtensions = []string{".h", ".hh", ".hpp", ".hxx", ".inc", ".inl", ".H"}

// IsHeader reports whether the file name carries a native header extension.
func IsHeader(file string) bool {
	ext := path.Ext(file)
	for _, h := range HeaderExtensions {
		if ext == h {
			return true
		}
	}
	return false
}

// Request is one compilation unit mixing Go with native sources.
type Request struct {
	Srcs      []string
	LinkMode  LinkMode
	CppOpts   []string
	COpts     []string
	CxxOpts   []string
	ClinkOpts []string
	Deps      []Dependency
}

// HasHeaders reports whether any source is a native header.
func (r *Request) HasHeaders() bool {
	for _, s := range r.Srcs {
		if IsHeader(s) {
			return true
		}
	}
	return false
}

// SourceDirs returns the directories containing sources, in source order
// without repeats.
func (r *Request) SourceDirs() []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, s := range r.Srcs {
		d := path.Dir(filepathToSlash(s))
		if seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs
}

// Build paths are slash-separated regardless of host OS.
func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
