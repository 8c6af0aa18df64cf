package toolchain

// FileVersion is the toolchains file format version.
const FileVersion = "1.0"

var (
	unixCompileOpts = []string{
		"-U_FORTIFY_SOURCE",
		"-fstack-protector",
		"-Wall",
		"-fno-omit-frame-pointer",
	}
	gnuLinkFlags = []string{
		"-Wl,-no-as-needed",
		"-Wl,-z,relro,-z,now",
		"-pass-exit-codes",
		"-lstdc++",
		"-lm",
	}
)

var builtinToolchains = map[string]ToolchainFileEntry{
	"linux-gcc": {
		OS:        "linux",
		Cgo:       boolPtr(true),
		COpts:     unixCompileOpts,
		CxxOpts:   append(cloneStrings(unixCompileOpts), "-std=c++17"),
		LinkFlags: append([]string{"-fuse-ld=gold"}, gnuLinkFlags...),
	},
	"linux-clang": {
		OS:        "linux",
		Cgo:       boolPtr(true),
		COpts:     unixCompileOpts,
		CxxOpts:   append(cloneStrings(unixCompileOpts), "-std=c++17"),
		LinkFlags: append([]string{"-fuse-ld=lld"}, gnuLinkFlags...),
	},
	"darwin-clang": {
		OS:         "darwin",
		Cgo:        boolPtr(true),
		COpts:      unixCompileOpts,
		CxxOpts:    append(cloneStrings(unixCompileOpts), "-std=c++17"),
		ObjcOpts:   []string{"-fobjc-arc"},
		ObjcxxOpts: []string{"-fobjc-arc", "-std=c++17"},
		LinkFlags:  []string{"-headerpad_max_install_names", "-lc++", "-lm"},
	},
	"windows-mingw": {
		OS:        "windows",
		Cgo:       boolPtr(true),
		COpts:     []string{"-Wall"},
		CxxOpts:   []string{"-Wall", "-std=c++17"},
		LinkFlags: []string{"-lstdc++"},
	},
	// pure is a Go-only toolchain without a C compiler.
	"pure": {
		OS:  "linux",
		Cgo: boolPtr(false),
	},
}

// GetDefaultToolchains returns the builtin toolchains as a toolchains file.
func GetDefaultToolchains() *ToolchainsFile {
	f := &ToolchainsFile{
		Version:    FileVersion,
		Toolchains: make(map[string]ToolchainFileEntry, len(builtinToolchains)),
	}
	for name, entry := range builtinToolchains {
		f.Toolchains[name] = deepCopyToolchainEntry(entry)
	}
	return f
}

func boolPtr(b bool) *bool {
	return &b
}
