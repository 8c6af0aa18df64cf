// Package artifact picks the file used to link a native library and decides
// how the linker should reference it.
package artifact

import (
	"path"
	"strings"

	"github.com/AndreyAkinshin/cgoconf/internal/model"
)

// Kind classifies a selected library file.
type Kind int

const (
	// StaticArchive is passed to the linker by path. Interface stubs and
	// anything not recognized as a shared library land here too.
	StaticArchive Kind = iota
	// SharedLibrary is an unversioned libNAME.so/.dylib/.dll, linked with -L/-l.
	SharedLibrary
	// VersionedSharedLibrary is a libNAME.so.N file, linked by exact name.
	VersionedSharedLibrary
	// VersionedDylib is a libNAME.N.dylib file. It is not linked directly; an
	// unversioned symlink next to it is expected to be linked instead.
	VersionedDylib
)

func (k Kind) String() string {
	switch k {
	case StaticArchive:
		return "static"
	case SharedLibrary:
		return "shared"
	case VersionedSharedLibrary:
		return "versioned-shared"
	case VersionedDylib:
		return "versioned-dylib"
	default:
		return "unknown"
	}
}

// Artifact is the one file selected for a library to link.
type Artifact struct {
	Path       string
	Kind       Kind
	Alwayslink bool
}

// Select picks the file to link from lib. Priority: static archive, PIC
// static archive, interface stub, dynamic library. It returns false when
// lib carries no file at all.
func Select(lib model.LibraryToLink) (Artifact, bool) {
	for _, p := range []string{lib.StaticLibrary, lib.PicStaticLibrary, lib.InterfaceLibrary, lib.DynamicLibrary} {
		if p == "" {
			continue
		}
		return Artifact{Path: p, Kind: Classify(p), Alwayslink: lib.Alwayslink}, true
	}
	return Artifact{}, false
}

// Classify decides how a library file is linked from its base name.
func Classify(p string) Kind {
	base := path.Base(p)
	if !strings.HasPrefix(base, "lib") {
		return StaticArchive
	}
	switch {
	case HasVersionedDylibExtension(base):
		return VersionedDylib
	case HasSimpleSharedLibExtension(base):
		return SharedLibrary
	case HasVersionedSharedLibExtension(base):
		return VersionedSharedLibrary
	}
	return StaticArchive
}

// Dir returns the directory holding the artifact.
func (a Artifact) Dir() string {
	return path.Dir(a.Path)
}

// LibraryName is the value given to -l: the bare name for unversioned
// shared libraries and ":file" for versioned ones. It is empty for kinds
// that are not linked through the search path.
func (a Artifact) LibraryName() string {
	base := path.Base(a.Path)
	switch a.Kind {
	case SharedLibrary:
		return base[len("lib"):strings.LastIndex(base, ".")]
	case VersionedSharedLibrary:
		return ":" + base
	default:
		return ""
	}
}

// SearchPathOptions returns the "-L dir" and "-l name" options for
// libraries linked through the search path, or nil.
func (a Artifact) SearchPathOptions() [][]string {
	name := a.LibraryName()
	if name == "" {
		return nil
	}
	return [][]string{{"-L", a.Dir()}, {"-l", name}}
}
