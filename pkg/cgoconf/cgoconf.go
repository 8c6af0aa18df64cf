// Package cgoconf resolves the preprocessor, compiler and linker options of
// Go compilation units with C, C++ or Objective-C sources. It exposes the
// resolver for build tools embedding it as a library.
package cgoconf

import (
	"github.com/AndreyAkinshin/cgoconf/internal/config"
	"github.com/AndreyAkinshin/cgoconf/internal/configure"
	"github.com/AndreyAkinshin/cgoconf/internal/errors"
	"github.com/AndreyAkinshin/cgoconf/internal/model"
	"github.com/AndreyAkinshin/cgoconf/internal/toolchain"
)

type (
	Request            = model.Request
	LinkMode           = model.LinkMode
	Dependency         = model.Dependency
	CcCapable          = model.CcCapable
	ObjcCapable        = model.ObjcCapable
	CcDependency       = model.CcDependency
	ObjcDependency     = model.ObjcDependency
	CcInfo             = model.CcInfo
	ObjcInfo           = model.ObjcInfo
	CompilationContext = model.CompilationContext
	LinkingContext     = model.LinkingContext
	LinkerInput        = model.LinkerInput
	LibraryToLink      = model.LibraryToLink

	Toolchain     = toolchain.Toolchain
	Result        = configure.Result
	Configuration = configure.Configuration
	Resolver      = configure.Resolver
)

// Link modes.
const (
	LinkModeNormal   = model.LinkModeNormal
	LinkModePIE      = model.LinkModePIE
	LinkModeShared   = model.LinkModeShared
	LinkModePlugin   = model.LinkModePlugin
	LinkModeCShared  = model.LinkModeCShared
	LinkModeCArchive = model.LinkModeCArchive
)

// Errors returned by Resolve. Match them with errors.Is.
var (
	ErrToolchainUnsupported   = errors.ErrToolchainUnsupported
	ErrUnknownDependencyShape = errors.ErrUnknownDependencyShape
)

// NewResolver creates a resolver; see configure.WithLogger.
var NewResolver = configure.NewResolver

// WithLogger sets the logger receiving intermediate option state.
var WithLogger = configure.WithLogger

// Resolve computes the configuration of req built with tc.
func Resolve(tc *Toolchain, req *Request) (*Result, error) {
	return configure.Resolve(tc, req)
}

// BuiltinToolchain returns a builtin toolchain by name.
func BuiltinToolchain(name string) (*Toolchain, bool) {
	return toolchain.Get(name)
}

// LoadToolchain resolves name among the builtin toolchains and the user and
// project toolchains files found from projectRoot.
func LoadToolchain(projectRoot, name string) (*Toolchain, error) {
	file, err := toolchain.LoadToolchains(projectRoot)
	if err != nil {
		return nil, err
	}
	r, err := toolchain.NewResolver(file)
	if err != nil {
		return nil, err
	}
	return r.Resolve(name)
}

// LoadRequest reads, validates and converts a request file. It also
// returns the name of the toolchain the file selects.
func LoadRequest(path string) (req *Request, toolchainName string, warnings []string, err error) {
	cfg, warnings, err := config.LoadAndValidate(path)
	if err != nil {
		return nil, "", warnings, err
	}
	req, err = cfg.ToRequest()
	if err != nil {
		return nil, "", warnings, err
	}
	return req, cfg.Toolchain, warnings, nil
}

// ExitCode returns the CLI exit code corresponding to err.
func ExitCode(err error) int {
	return errors.GetExitCode(err)
}
