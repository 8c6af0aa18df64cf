package config

import (
	"fmt"

	"github.com/AndreyAkinshin/cgoconf/internal/model"
	"github.com/AndreyAkinshin/cgoconf/internal/schema"
)

// Load reads and parses a request file in any supported format.
func Load(path string) (*RequestFile, error) {
	var cfg RequestFile
	if err := DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithDefaults reads a request file and applies default values.
func LoadWithDefaults(path string) (*RequestFile, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// LoadAndValidate reads a request file, checks it against the request schema,
// applies defaults, validates, and returns warnings.
func LoadAndValidate(path string) (*RequestFile, []string, error) {
	data, err := ReadJSON(path)
	if err != nil {
		return nil, nil, err
	}

	if err := schema.ValidateRequest(data); err != nil {
		return nil, nil, err
	}

	cfg, unknownWarnings, err := LoadWithWarnings(path, data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	// Combine warnings from both sources.
	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, err
	}

	return cfg, allWarnings, nil
}

// ToRequest converts the file into the resolver's request. Dependencies are
// typed by the sections they carry: cc wins over objc, and a dependency with
// neither becomes opaque.
func (cfg *RequestFile) ToRequest() (*model.Request, error) {
	mode, err := model.ParseLinkMode(cfg.LinkMode)
	if err != nil {
		return nil, fmt.Errorf("link_mode: %w", err)
	}

	req := &model.Request{
		Srcs:      cloneStrings(cfg.Srcs),
		LinkMode:  mode,
		CppOpts:   cloneStrings(cfg.CppOpts),
		COpts:     cloneStrings(cfg.COpts),
		CxxOpts:   cloneStrings(cfg.CxxOpts),
		ClinkOpts: cloneStrings(cfg.ClinkOpts),
		Deps:      make([]model.Dependency, 0, len(cfg.Deps)),
	}

	for _, d := range cfg.Deps {
		switch {
		case d.Cc != nil:
			req.Deps = append(req.Deps, &model.CcDependency{Name: d.Label, Info: *d.Cc, Data: cloneStrings(d.Data)})
		case d.Objc != nil:
			req.Deps = append(req.Deps, &model.ObjcDependency{Name: d.Label, Info: *d.Objc, Data: cloneStrings(d.Data)})
		default:
			req.Deps = append(req.Deps, &model.OpaqueDependency{Name: d.Label, Data: cloneStrings(d.Data)})
		}
	}

	return req, nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
