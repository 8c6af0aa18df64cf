// Package integration contains end-to-end tests resolving request fixtures.
package integration

import (
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreyAkinshin/cgoconf/internal/config"
	"github.com/AndreyAkinshin/cgoconf/internal/configure"
	"github.com/AndreyAkinshin/cgoconf/internal/toolchain"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

// resolveFixture loads fixture/file and resolves it against the builtin
// toolchains merged with the fixture's project toolchains file, if any.
func resolveFixture(t *testing.T, fixture, file string) (configure.Configuration, []string) {
	t.Helper()
	dir := filepath.Join(fixturesDir(), fixture)

	cfg, warnings, err := config.LoadAndValidate(filepath.Join(dir, file))
	require.NoError(t, err)
	req, err := cfg.ToRequest()
	require.NoError(t, err)

	tcFile, err := toolchain.LoadToolchainsFrom(filepath.Join(dir, toolchain.ProjectToolchainsFile))
	require.NoError(t, err)
	resolver, err := toolchain.NewResolver(tcFile)
	require.NoError(t, err)
	tc, err := resolver.Resolve(cfg.Toolchain)
	require.NoError(t, err)

	res, err := configure.Resolve(tc, req)
	require.NoError(t, err)
	return res.Configuration(), warnings
}

func TestArchivesFixture(t *testing.T) {
	t.Parallel()
	got, warnings := resolveFixture(t, "archives", "request.json")
	assert.Empty(t, warnings)

	assert.Equal(t, "linux-gcc", got.Toolchain)
	assert.Equal(t, "c-shared", got.LinkMode)
	assert.Equal(t, []string{"-Ipkg", "-iquote", ".", "-DZ_SOLO", "-Ithird_party"}, got.CppOpts)
	assert.Equal(t, []string{"-U_FORTIFY_SOURCE", "-fstack-protector", "-Wall", "-fno-omit-frame-pointer", "-fPIC"}, got.COpts)
	assert.Equal(t, []string{
		"out/libz.a",
		"-Wl,-whole-archive", "out/libplug.a", "-Wl,-no-whole-archive",
		"-fuse-ld=gold",
		"-Wl,-no-as-needed",
		"-Wl,-z,relro,-z,now",
		"-pass-exit-codes",
		"-lstdc++",
		"-lm",
		"-lpthread",
	}, got.LinkOpts)
	assert.Equal(t, []string{"third_party/zlib.h", "out/libz.a", "out/libplug.a"}, got.Inputs)
	assert.Empty(t, got.Deps)
	assert.Equal(t, []string{"lib/plugins.txt"}, got.Runfiles)
}

func TestDarwinFixture(t *testing.T) {
	t.Parallel()
	got, _ := resolveFixture(t, "darwin", "request.yaml")

	assert.Equal(t, "normal", got.LinkMode)
	assert.Equal(t, []string{"-iquote", ".", "-DUIKIT=1", "-isystem", "sdk/include"}, got.CppOpts)
	assert.Equal(t, []string{"-fobjc-arc", "-O2"}, got.ObjcOpts)
	assert.NotContains(t, got.COpts, "-fPIC")
	assert.Equal(t, []string{
		"-Wl,-force_load", "lib/libinit.a",
		"-headerpad_max_install_names",
		"-lm",
		"-static-libstdc++",
		"-L", "lib",
		"-l", "core",
	}, got.LinkOpts)
	assert.Equal(t, []string{"lib/libcore.dylib", "lib/libinit.a", "lib/libssl.1.1.dylib"}, got.Inputs)
	assert.Equal(t, []string{"lib/libcore.dylib", "lib/libssl.1.1.dylib"}, got.Deps)
}

func TestCustomToolchainFixture(t *testing.T) {
	t.Parallel()
	got, _ := resolveFixture(t, "custom-toolchain", "request.toml")

	assert.Equal(t, "linux-gcc-asan", got.Toolchain)
	require.NotEmpty(t, got.COpts)
	assert.Equal(t, "-fsanitize=address", got.COpts[len(got.COpts)-1])
	assert.Contains(t, got.COpts, "-Wall")
	assert.Contains(t, got.LinkOpts, "-fuse-ld=gold")
	assert.Equal(t, []string{"-fsanitize=address", "-ldl"}, got.LinkOpts[len(got.LinkOpts)-2:])
}

func TestUnknownFieldsFixture(t *testing.T) {
	t.Parallel()
	got, warnings := resolveFixture(t, "unknown-fields", "request.json")

	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], `"owner"`)
	assert.Contains(t, got.CppOpts, "-DX")
}
