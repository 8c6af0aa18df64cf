package toolchain

import (
	"fmt"
	"sort"

	"github.com/AndreyAkinshin/cgoconf/internal/errors"
)

// Resolver handles toolchain resolution including extension chains.
type Resolver struct {
	toolchains map[string]*Toolchain
}

// NewResolver builds every toolchain in file. Entries that extend another
// toolchain inherit its OS and cgo support unless they set their own, and
// their option lists are appended after the base toolchain's.
func NewResolver(file *ToolchainsFile) (*Resolver, error) {
	if file == nil {
		file = GetDefaultToolchains()
	}

	order, err := extendsOrder(file.Toolchains)
	if err != nil {
		return nil, err
	}

	r := &Resolver{toolchains: make(map[string]*Toolchain, len(order))}
	for _, name := range order {
		entry := file.Toolchains[name]
		if entry.Extends == "" {
			r.toolchains[name] = entry.build(name)
			continue
		}
		// extendsOrder guarantees the base is already built.
		r.toolchains[name] = extend(r.toolchains[entry.Extends], name, entry)
	}
	return r, nil
}

// extend derives a toolchain from base.
func extend(base *Toolchain, name string, entry ToolchainFileEntry) *Toolchain {
	tc := base.Clone()
	tc.Name = name
	tc.Extends = entry.Extends
	if entry.OS != "" {
		tc.OS = entry.OS
	}
	if entry.Cgo != nil {
		tc.Cgo = *entry.Cgo
	}
	tc.COpts = append(tc.COpts, entry.COpts...)
	tc.CxxOpts = append(tc.CxxOpts, entry.CxxOpts...)
	tc.ObjcOpts = append(tc.ObjcOpts, entry.ObjcOpts...)
	tc.ObjcxxOpts = append(tc.ObjcxxOpts, entry.ObjcxxOpts...)
	tc.LinkFlags = append(tc.LinkFlags, entry.LinkFlags...)
	return tc
}

// Resolve gets a toolchain by name. The returned value is a copy.
func (r *Resolver) Resolve(name string) (*Toolchain, error) {
	tc, ok := r.toolchains[name]
	if !ok {
		return nil, errors.NotFound("toolchain", name)
	}
	return tc.Clone(), nil
}

// Exists checks if a toolchain exists.
func (r *Resolver) Exists(name string) bool {
	_, ok := r.toolchains[name]
	return ok
}

// Names returns all toolchain names, sorted.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.toolchains))
	for name := range r.toolchains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// extendsOrder returns the toolchain names with every base before the
// toolchains extending it. Names are visited in sorted order so the result
// does not depend on map iteration.
func extendsOrder(entries map[string]ToolchainFileEntry) ([]string, error) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var result []string
	visited := make(map[string]bool)
	inStack := make(map[string]bool)

	var visit func(name string) error
	visit = func(name string) error {
		if inStack[name] {
			return errors.Configf("toolchain %q: circular extends chain", name)
		}
		if visited[name] {
			return nil
		}

		entry := entries[name]
		inStack[name] = true
		if base := entry.Extends; base != "" {
			if base == name {
				return errors.Configf("toolchain %q extends itself", name)
			}
			if _, ok := entries[base]; !ok {
				return errors.Configf("toolchain %q: extends %q: base toolchain not found", name, base)
			}
			if err := visit(base); err != nil {
				return err
			}
		}
		inStack[name] = false
		visited[name] = true
		result = append(result, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, fmt.Errorf("resolve toolchains: %w", err)
		}
	}
	return result, nil
}
