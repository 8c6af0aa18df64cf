// Package model defines the descriptors a cgo configuration is resolved from:
// native dependencies, their compilation and linking contexts, and the
// compilation request itself.
package model

// LibraryToLink describes one library a dependency links against. Any of the
// four artifact paths may be empty.
type LibraryToLink struct {
	StaticLibrary    string `json:"static_library,omitempty"`
	PicStaticLibrary string `json:"pic_static_library,omitempty"`
	InterfaceLibrary string `json:"interface_library,omitempty"`
	DynamicLibrary   string `json:"dynamic_library,omitempty"`
	// Alwayslink forces every object of the library into the link, even
	// when no symbol references it.
	Alwayslink bool `json:"alwayslink,omitempty"`
}

// LinkerInput groups libraries with the link flags their owner exports to
// dependents.
type LinkerInput struct {
	Libraries     []LibraryToLink `json:"libraries,omitempty"`
	UserLinkFlags []string        `json:"user_link_flags,omitempty"`
}

// CompilationContext is the header-side view of a C/C++ dependency, with
// transitive data already materialized.
type CompilationContext struct {
	Headers        []string `json:"headers,omitempty"`
	Defines        []string `json:"defines,omitempty"`
	Includes       []string `json:"includes,omitempty"`
	QuoteIncludes  []string `json:"quote_includes,omitempty"`
	SystemIncludes []string `json:"system_includes,omitempty"`
}

// LinkingContext lists linker inputs in link order.
type LinkingContext struct {
	LinkerInputs []LinkerInput `json:"linker_inputs,omitempty"`
}

// CcInfo is what a C/C++ capable dependency provides.
type CcInfo struct {
	CompilationContext
	LinkingContext
}

// ObjcInfo is what an Objective-C capable dependency provides. Linking
// through Objective-C dependencies is not supported.
type ObjcInfo struct {
	Defines        []string `json:"defines,omitempty"`
	Includes       []string `json:"includes,omitempty"`
	QuoteIncludes  []string `json:"quote_includes,omitempty"`
	SystemIncludes []string `json:"system_includes,omitempty"`
}

// Dependency is a direct native dependency of a compilation unit. Whether it
// is usable depends on the capability interfaces it also implements.
type Dependency interface {
	// Label identifies the dependency in error messages.
	Label() string
	// Runfiles lists files that must be staged next to the built artifact.
	Runfiles() []string
}

// CcCapable is a dependency exposing C/C++ compilation and linking contexts.
type CcCapable interface {
	Dependency
	CcInfo() *CcInfo
}

// ObjcCapable is a dependency exposing Objective-C compilation data.
type ObjcCapable interface {
	Dependency
	ObjcInfo() *ObjcInfo
}

// CcDependency is the concrete C/C++ dependency.
type CcDependency struct {
	Name string
	Info CcInfo
	Data []string
}

func (d *CcDependency) Label() string      { return d.Name }
func (d *CcDependency) Runfiles() []string { return d.Data }
func (d *CcDependency) CcInfo() *CcInfo    { return &d.Info }

// ObjcDependency is the concrete Objective-C dependency.
type ObjcDependency struct {
	Name string
	Info ObjcInfo
	Data []string
}

func (d *ObjcDependency) Label() string       { return d.Name }
func (d *ObjcDependency) Runfiles() []string  { return d.Data }
func (d *ObjcDependency) ObjcInfo() *ObjcInfo { return &d.Info }

// OpaqueDependency carries no capability. Resolving a request that contains
// one fails.
type OpaqueDependency struct {
	Name string
	Data []string
}

func (d *OpaqueDependency) Label() string      { return d.Name }
func (d *OpaqueDependency) Runfiles() []string { return d.Data }
