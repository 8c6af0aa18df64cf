package toolchain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/AndreyAkinshin/cgoconf/internal/config"
	"github.com/AndreyAkinshin/cgoconf/internal/schema"
)

// ProjectToolchainsFile is the project-level toolchains file, relative to
// the project root.
var ProjectToolchainsFile = filepath.Join(".cgoconf", "toolchains.json")

// ToolchainsFile represents a toolchains configuration file.
type ToolchainsFile struct {
	Schema     string                        `json:"$schema,omitempty"`
	Version    string                        `json:"version"`
	Toolchains map[string]ToolchainFileEntry `json:"toolchains"`
}

// ToolchainFileEntry represents a single toolchain configuration in the file.
// Unset fields are inherited from the entry it overrides or extends.
type ToolchainFileEntry struct {
	Extends    string   `json:"extends,omitempty"`
	OS         string   `json:"os,omitempty"`
	Cgo        *bool    `json:"cgo,omitempty"`
	COpts      []string `json:"copts,omitempty"`
	CxxOpts    []string `json:"cxxopts,omitempty"`
	ObjcOpts   []string `json:"objcopts,omitempty"`
	ObjcxxOpts []string `json:"objcxxopts,omitempty"`
	LinkFlags  []string `json:"link_flags,omitempty"`
}

// UserToolchainsFile returns the per-user toolchains file location.
func UserToolchainsFile() string {
	return filepath.Join(xdg.ConfigHome, "cgoconf", "toolchains.toml")
}

// LoadToolchains loads the builtin toolchains, then the user file, then
// projectRoot/.cgoconf/toolchains.json. Missing files are skipped; later
// layers override earlier ones.
func LoadToolchains(projectRoot string) (*ToolchainsFile, error) {
	return LoadToolchainsFrom(UserToolchainsFile(), filepath.Join(projectRoot, ProjectToolchainsFile))
}

// LoadToolchainsFrom merges the given files over the builtin toolchains, in
// order. Files may be JSON, YAML or TOML.
func LoadToolchainsFrom(paths ...string) (*ToolchainsFile, error) {
	result := GetDefaultToolchains()
	for _, path := range paths {
		loaded, err := readToolchainsFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		result = MergeToolchains(result, loaded)
	}
	return result, nil
}

func readToolchainsFile(path string) (*ToolchainsFile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	data, err := config.ReadJSON(path)
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateToolchains(data); err != nil {
		return nil, err
	}
	var loaded ToolchainsFile
	if err := config.DecodeJSON(data, &loaded); err != nil {
		return nil, err
	}
	return &loaded, nil
}

// MergeToolchains performs a deep merge of the loaded configuration over the defaults.
// Values from loaded override defaults, but defaults are used for any missing values.
func MergeToolchains(defaults, loaded *ToolchainsFile) *ToolchainsFile {
	result := &ToolchainsFile{
		Schema:     loaded.Schema,
		Version:    loaded.Version,
		Toolchains: make(map[string]ToolchainFileEntry),
	}
	if result.Version == "" {
		result.Version = defaults.Version
	}

	for name, entry := range defaults.Toolchains {
		result.Toolchains[name] = deepCopyToolchainEntry(entry)
	}

	for name, loadedEntry := range loaded.Toolchains {
		if defaultEntry, exists := result.Toolchains[name]; exists {
			result.Toolchains[name] = mergeToolchainEntry(defaultEntry, loadedEntry)
		} else {
			result.Toolchains[name] = deepCopyToolchainEntry(loadedEntry)
		}
	}

	return result
}

// mergeToolchainEntry merges a loaded entry over a default entry. Option
// lists given in loaded replace the default lists.
func mergeToolchainEntry(defaultEntry, loadedEntry ToolchainFileEntry) ToolchainFileEntry {
	result := deepCopyToolchainEntry(defaultEntry)

	if loadedEntry.Extends != "" {
		result.Extends = loadedEntry.Extends
	}
	if loadedEntry.OS != "" {
		result.OS = loadedEntry.OS
	}
	if loadedEntry.Cgo != nil {
		result.Cgo = boolPtr(*loadedEntry.Cgo)
	}
	if loadedEntry.COpts != nil {
		result.COpts = cloneStrings(loadedEntry.COpts)
	}
	if loadedEntry.CxxOpts != nil {
		result.CxxOpts = cloneStrings(loadedEntry.CxxOpts)
	}
	if loadedEntry.ObjcOpts != nil {
		result.ObjcOpts = cloneStrings(loadedEntry.ObjcOpts)
	}
	if loadedEntry.ObjcxxOpts != nil {
		result.ObjcxxOpts = cloneStrings(loadedEntry.ObjcxxOpts)
	}
	if loadedEntry.LinkFlags != nil {
		result.LinkFlags = cloneStrings(loadedEntry.LinkFlags)
	}

	return result
}

// deepCopyToolchainEntry creates a deep copy of a toolchain entry.
func deepCopyToolchainEntry(entry ToolchainFileEntry) ToolchainFileEntry {
	result := entry
	if entry.Cgo != nil {
		result.Cgo = boolPtr(*entry.Cgo)
	}
	result.COpts = cloneStrings(entry.COpts)
	result.CxxOpts = cloneStrings(entry.CxxOpts)
	result.ObjcOpts = cloneStrings(entry.ObjcOpts)
	result.ObjcxxOpts = cloneStrings(entry.ObjcxxOpts)
	result.LinkFlags = cloneStrings(entry.LinkFlags)
	return result
}

// build turns a standalone entry into a Toolchain. Extension is handled by
// the Resolver.
func (e ToolchainFileEntry) build(name string) *Toolchain {
	tc := &Toolchain{
		Name:       name,
		Extends:    e.Extends,
		OS:         e.OS,
		COpts:      cloneStrings(e.COpts),
		CxxOpts:    cloneStrings(e.CxxOpts),
		ObjcOpts:   cloneStrings(e.ObjcOpts),
		ObjcxxOpts: cloneStrings(e.ObjcxxOpts),
		LinkFlags:  cloneStrings(e.LinkFlags),
	}
	if e.Cgo != nil {
		tc.Cgo = *e.Cgo
	}
	return tc
}
