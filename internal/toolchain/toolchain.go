// Package toolchain provides the native toolchain descriptors a cgo
// configuration is resolved against.
package toolchain

import "sort"

// Toolchain describes one native C/C++/Objective-C toolchain as seen by the
// Go build: its target OS, whether it can compile native code at all, and
// the baseline options it requires per language.
type Toolchain struct {
	Name    string
	Extends string
	OS      string
	// Cgo is false for toolchains that cannot compile native code.
	Cgo        bool
	COpts      []string
	CxxOpts    []string
	ObjcOpts   []string
	ObjcxxOpts []string
	// LinkFlags are the extra linker flags the native toolchain requires.
	LinkFlags []string
}

// appleOS lists the targets whose linker is ld64.
var appleOS = map[string]bool{
	"darwin":   true,
	"ios":      true,
	"tvos":     true,
	"watchos":  true,
	"visionos": true,
}

// SupportsCgo reports whether native compilation is available.
func (t *Toolchain) SupportsCgo() bool {
	return t != nil && t.Cgo
}

// IsApple reports whether the toolchain targets an Apple platform.
func (t *Toolchain) IsApple() bool {
	return appleOS[t.OS]
}

// Clone returns a deep copy.
func (t *Toolchain) Clone() *Toolchain {
	c := *t
	c.COpts = cloneStrings(t.COpts)
	c.CxxOpts = cloneStrings(t.CxxOpts)
	c.ObjcOpts = cloneStrings(t.ObjcOpts)
	c.ObjcxxOpts = cloneStrings(t.ObjcxxOpts)
	c.LinkFlags = cloneStrings(t.LinkFlags)
	return &c
}

// Get retrieves a builtin toolchain by name.
func Get(name string) (*Toolchain, bool) {
	entry, ok := builtinToolchains[name]
	if !ok {
		return nil, false
	}
	return entry.build(name), true
}

// List returns the names of all builtin toolchains, sorted.
func List() []string {
	names := make([]string, 0, len(builtinToolchains))
	for name := range builtinToolchains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBuiltin checks if a toolchain name is a builtin toolchain.
func IsBuiltin(name string) bool {
	_, ok := builtinToolchains[name]
	return ok
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
