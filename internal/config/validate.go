package config

import (
	"fmt"
	"regexp"

	"github.com/AndreyAkinshin/cgoconf/internal/model"
)

// Toolchain name: lowercase letters, digits, and hyphens.
var toolchainNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidationError represents a request validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a request for errors and returns warnings for entries that
// are legal but contribute nothing to the resolved configuration.
func Validate(cfg *RequestFile) (warnings []string, err error) {
	if err := validateToolchainName(cfg.Toolchain); err != nil {
		return nil, err
	}

	if _, err := model.ParseLinkMode(cfg.LinkMode); err != nil {
		return nil, &ValidationError{Field: "link_mode", Message: err.Error()}
	}

	return validateDeps(cfg.Deps)
}

func validateToolchainName(name string) error {
	if name == "" {
		return nil // defaults apply
	}
	if !toolchainNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "toolchain",
			Message: "must match pattern ^[a-z][a-z0-9-]*$",
		}
	}
	return nil
}

func validateDeps(deps []DependencyConfig) ([]string, error) {
	var warnings []string
	seen := make(map[string]int, len(deps))

	for i, d := range deps {
		field := fmt.Sprintf("deps[%d]", i)
		if d.Label == "" {
			return nil, &ValidationError{Field: field + ".label", Message: "required"}
		}
		if first, dup := seen[d.Label]; dup {
			return nil, &ValidationError{
				Field:   field + ".label",
				Message: fmt.Sprintf("duplicate of deps[%d] (%q)", first, d.Label),
			}
		}
		seen[d.Label] = i

		if d.Cc != nil && d.Objc != nil {
			warnings = append(warnings, fmt.Sprintf("dependency %q has both cc and objc sections; objc is ignored", d.Label))
		}
		if d.Cc == nil {
			continue
		}
		for j, in := range d.Cc.LinkerInputs {
			for k, lib := range in.Libraries {
				if lib == (model.LibraryToLink{}) || lib == (model.LibraryToLink{Alwayslink: true}) {
					warnings = append(warnings, fmt.Sprintf(
						"dependency %q: linker_inputs[%d].libraries[%d] names no file and is skipped", d.Label, j, k))
				}
			}
		}
	}

	return warnings, nil
}
