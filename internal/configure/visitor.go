package configure

import (
	"github.com/rs/zerolog"

	"github.com/AndreyAkinshin/cgoconf/internal/artifact"
	"github.com/AndreyAkinshin/cgoconf/internal/errors"
	"github.com/AndreyAkinshin/cgoconf/internal/model"
	"github.com/AndreyAkinshin/cgoconf/internal/optset"
	"github.com/AndreyAkinshin/cgoconf/internal/wholearchive"
)

// Include flags. -I is rendered joined; the others take the path as a
// separate argument.
const (
	includeFlag       = "-I"
	quoteIncludeFlag  = "-iquote"
	systemIncludeFlag = "-isystem"
	defineFlag        = "-D"
)

// accumulator collects everything a resolution gathers from the request and
// its dependencies. One accumulator serves one resolution.
type accumulator struct {
	cppopts  *optset.OptionSet
	linkopts *optset.OptionSet

	includes       *optset.Category
	quoteIncludes  *optset.Category
	systemIncludes *optset.Category

	// archives are static archives in link order. A file reached through
	// several dependencies keeps its first position.
	archives     []wholearchive.Entry
	archiveIndex map[string]int

	inputs   *optset.Set[string]
	libDeps  *optset.Set[string]
	runfiles *optset.Set[string]

	log zerolog.Logger
}

func newAccumulator(cppopts, linkopts *optset.OptionSet, log zerolog.Logger) *accumulator {
	return &accumulator{
		cppopts:        cppopts,
		linkopts:       linkopts,
		includes:       optset.NewCategory(includeFlag, true),
		quoteIncludes:  optset.NewCategory(quoteIncludeFlag, false),
		systemIncludes: optset.NewCategory(systemIncludeFlag, false),
		archiveIndex:   make(map[string]int),
		inputs:         optset.NewSet[string](),
		libDeps:        optset.NewSet[string](),
		runfiles:       optset.NewSet[string](),
		log:            log,
	}
}

// visit folds one dependency into the accumulator. C/C++ information wins
// over Objective-C information when a dependency provides both.
func (a *accumulator) visit(dep model.Dependency) error {
	switch d := dep.(type) {
	case model.CcCapable:
		a.visitCc(d)
	case model.ObjcCapable:
		a.visitObjc(d)
	default:
		return errors.UnknownDependencyShape(dep.Label())
	}
	a.runfiles.Add(dep.Runfiles()...)
	return nil
}

func (a *accumulator) visitCc(d model.CcCapable) {
	info := d.CcInfo()
	if info == nil {
		info = &model.CcInfo{}
	}
	a.inputs.Add(info.Headers...)
	a.addCompileFlags(info.Defines, info.Includes, info.QuoteIncludes, info.SystemIncludes)

	var linkFlags []string
	for _, in := range info.LinkerInputs {
		for _, lib := range in.Libraries {
			a.addLibrary(d.Label(), lib)
		}
		linkFlags = append(linkFlags, in.UserLinkFlags...)
	}
	// The dependency's own flags follow all of its library files.
	a.linkopts.AddEach(linkFlags...)

	a.log.Debug().
		Str("dep", d.Label()).
		Int("headers", len(info.Headers)).
		Int("defines", len(info.Defines)).
		Int("linker_inputs", len(info.LinkerInputs)).
		Msg("visited cc dependency")
}

func (a *accumulator) visitObjc(d model.ObjcCapable) {
	info := d.ObjcInfo()
	if info == nil {
		info = &model.ObjcInfo{}
	}
	a.addCompileFlags(info.Defines, info.Includes, info.QuoteIncludes, info.SystemIncludes)

	a.log.Debug().
		Str("dep", d.Label()).
		Int("defines", len(info.Defines)).
		Msg("visited objc dependency")
}

func (a *accumulator) addCompileFlags(defines, includes, quoteIncludes, systemIncludes []string) {
	for _, def := range defines {
		a.cppopts.Add(defineFlag + def)
	}
	for _, inc := range includes {
		a.includes.AppendTo(a.cppopts, inc)
	}
	for _, inc := range quoteIncludes {
		a.quoteIncludes.AppendTo(a.cppopts, inc)
	}
	for _, inc := range systemIncludes {
		a.systemIncludes.AppendTo(a.cppopts, inc)
	}
}

// addLibrary selects the file to link for lib and routes it to the search
// path options or to the static archive list.
func (a *accumulator) addLibrary(label string, lib model.LibraryToLink) {
	art, ok := artifact.Select(lib)
	if !ok {
		a.log.Debug().Str("dep", label).Msg("library names no file, skipped")
		return
	}
	a.inputs.Add(art.Path)

	switch art.Kind {
	case artifact.StaticArchive:
		a.addArchive(art)
		return
	case artifact.VersionedDylib:
		a.libDeps.Add(art.Path)
		a.log.Debug().Str("dep", label).Str("path", art.Path).Msg("versioned dylib not linked directly")
		return
	}

	a.libDeps.Add(art.Path)
	for _, opt := range art.SearchPathOptions() {
		a.linkopts.Add(opt...)
	}
}

func (a *accumulator) addArchive(art artifact.Artifact) {
	if i, ok := a.archiveIndex[art.Path]; ok {
		a.archives[i].Alwayslink = a.archives[i].Alwayslink || art.Alwayslink
		return
	}
	a.archiveIndex[art.Path] = len(a.archives)
	a.archives = append(a.archives, wholearchive.Entry{Path: art.Path, Alwayslink: art.Alwayslink})
}
