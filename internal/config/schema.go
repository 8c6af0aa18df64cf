// Package config provides loading and validation of compilation request files.
package config

import "github.com/AndreyAkinshin/cgoconf/internal/model"

// RequestFile represents a compilation request file.
type RequestFile struct {
	Schema    string             `json:"$schema,omitempty"`
	Toolchain string             `json:"toolchain,omitempty"`
	LinkMode  string             `json:"link_mode,omitempty"`
	Srcs      []string           `json:"srcs,omitempty"`
	CppOpts   []string           `json:"cppopts,omitempty"`
	COpts     []string           `json:"copts,omitempty"`
	CxxOpts   []string           `json:"cxxopts,omitempty"`
	ClinkOpts []string           `json:"clinkopts,omitempty"`
	Deps      []DependencyConfig `json:"deps,omitempty"`
}

// DependencyConfig describes one native dependency. A dependency with
// neither a cc nor an objc section is kept as an opaque dependency and
// rejected when the request is resolved.
type DependencyConfig struct {
	Label string          `json:"label"`
	Data  []string        `json:"data,omitempty"`
	Cc    *model.CcInfo   `json:"cc,omitempty"`
	Objc  *model.ObjcInfo `json:"objc,omitempty"`
}
