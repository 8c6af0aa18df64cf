// Package configure resolves the preprocessor, compiler and linker options
// of a compilation unit mixing Go with C, C++ or Objective-C sources.
package configure

import (
	"github.com/rs/zerolog"

	"github.com/AndreyAkinshin/cgoconf/internal/errors"
	"github.com/AndreyAkinshin/cgoconf/internal/model"
	"github.com/AndreyAkinshin/cgoconf/internal/optset"
	"github.com/AndreyAkinshin/cgoconf/internal/toolchain"
	"github.com/AndreyAkinshin/cgoconf/internal/wholearchive"
)

// Option flags the resolver inspects or adds.
const (
	StaticLibstdcxx = "-static-libstdc++"
	PIC             = "-fPIC"
	// WorkDir is always added as a quote include.
	WorkDir = "."
)

// dynamicRuntimeFlags request the shared C++ runtime. They are dropped when
// the runtime is linked statically.
var dynamicRuntimeFlags = []string{"-lstdc++", "-lc++"}

// Resolver computes cgo configurations. It keeps no state between calls and
// is safe for concurrent use.
type Resolver struct {
	log zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger receiving intermediate option state at debug
// level.
func WithLogger(l zerolog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a resolver. Without options it logs nothing.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve computes the configuration with a silent resolver.
func Resolve(tc *toolchain.Toolchain, req *model.Request) (*Result, error) {
	return NewResolver().Resolve(tc, req)
}

// Resolve computes the configuration for req built with tc. It fails with
// errors.ErrToolchainUnsupported when tc cannot compile native code and
// with errors.ErrUnknownDependencyShape when a dependency carries neither
// C/C++ nor Objective-C information. No partial result is returned.
func (r *Resolver) Resolve(tc *toolchain.Toolchain, req *model.Request) (*Result, error) {
	if !tc.SupportsCgo() {
		name := ""
		if tc != nil {
			name = tc.Name
		}
		return nil, errors.ToolchainUnsupported(name)
	}
	if req == nil {
		req = &model.Request{}
	}
	log := r.log.With().Str("toolchain", tc.Name).Logger()

	// Toolchain options come first. Objective-C variants take the caller's
	// C and C++ options.
	cppopts := optset.Concat(req.CppOpts)
	copts := optset.Concat(tc.COpts, req.COpts)
	cxxopts := optset.Concat(tc.CxxOpts, req.CxxOpts)
	objcopts := optset.Concat(tc.ObjcOpts, req.COpts)
	objcxxopts := optset.Concat(tc.ObjcxxOpts, req.CxxOpts)
	linkopts := optset.Concat(tc.LinkFlags, req.ClinkOpts)

	if linkopts.Contains(StaticLibstdcxx) {
		linkopts.Remove(dynamicRuntimeFlags...)
		log.Debug().Msg("static C++ runtime requested, dropped dynamic runtime flags")
	}

	mode := req.LinkMode
	if mode == "" {
		mode = model.LinkModeNormal
	}
	if mode.RequiresPIC() {
		for _, s := range []*optset.OptionSet{copts, cxxopts, objcopts, objcxxopts} {
			s.AddIfMissing(PIC)
		}
	}

	acc := newAccumulator(cppopts, linkopts, log)
	if req.HasHeaders() {
		for _, dir := range req.SourceDirs() {
			acc.includes.AppendTo(cppopts, dir)
		}
	}
	acc.quoteIncludes.AppendTo(cppopts, WorkDir)

	log.Debug().
		Strs("cppopts", cppopts.Args()).
		Strs("copts", copts.Args()).
		Strs("clinkopts", linkopts.Args()).
		Msg("base options")

	for _, dep := range req.Deps {
		if dep == nil {
			continue
		}
		if err := acc.visit(dep); err != nil {
			return nil, err
		}
	}

	style := wholearchive.Region
	if tc.IsApple() {
		style = wholearchive.PerArchive
	}
	// Archives go first so that libraries named later with -l can satisfy
	// their undefined symbols. The fragment is a single option so that
	// repeated markers survive deduplication.
	final := &optset.OptionSet{}
	final.Add(wholearchive.Process(acc.archives, style)...)
	final.Append(linkopts)

	for _, s := range []*optset.OptionSet{cppopts, copts, cxxopts, objcopts, objcxxopts, final} {
		s.Dedup()
	}

	res := &Result{
		Toolchain:  tc.Name,
		LinkMode:   mode,
		CppOpts:    cppopts,
		COpts:      copts,
		CxxOpts:    cxxopts,
		ObjcOpts:   objcopts,
		ObjcxxOpts: objcxxopts,
		LinkOpts:   final,
		Inputs:     acc.inputs.Values(),
		Deps:       acc.libDeps.Values(),
		Runfiles:   acc.runfiles.Values(),
	}

	log.Debug().
		Int("deps", len(req.Deps)).
		Int("archives", len(acc.archives)).
		Strs("clinkopts", res.LinkOpts.Args()).
		Msg("resolved")

	return res, nil
}
