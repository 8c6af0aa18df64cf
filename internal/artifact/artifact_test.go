package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreyAkinshin/cgoconf/internal/model"
)

func TestSelect_Priority(t *testing.T) {
	tests := []struct {
		name string
		lib  model.LibraryToLink
		want string
	}{
		{
			name: "static wins over everything",
			lib: model.LibraryToLink{
				StaticLibrary:    "out/libfoo.a",
				PicStaticLibrary: "out/libfoo.pic.a",
				InterfaceLibrary: "out/libfoo.ifso",
				DynamicLibrary:   "out/libfoo.so",
			},
			want: "out/libfoo.a",
		},
		{
			name: "pic static before interface",
			lib: model.LibraryToLink{
				PicStaticLibrary: "out/libfoo.pic.a",
				InterfaceLibrary: "out/libfoo.ifso",
				DynamicLibrary:   "out/libfoo.so",
			},
			want: "out/libfoo.pic.a",
		},
		{
			name: "interface before dynamic",
			lib: model.LibraryToLink{
				InterfaceLibrary: "out/libfoo.ifso",
				DynamicLibrary:   "out/libfoo.so",
			},
			want: "out/libfoo.ifso",
		},
		{
			name: "dynamic only",
			lib:  model.LibraryToLink{DynamicLibrary: "out/libfoo.so"},
			want: "out/libfoo.so",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Select(tt.lib)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Path)
		})
	}
}

func TestSelect_Empty(t *testing.T) {
	_, ok := Select(model.LibraryToLink{Alwayslink: true})
	assert.False(t, ok)
}

func TestSelect_CarriesAlwayslink(t *testing.T) {
	a, ok := Select(model.LibraryToLink{StaticLibrary: "libx.a", Alwayslink: true})
	require.True(t, ok)
	assert.True(t, a.Alwayslink)
	assert.Equal(t, StaticArchive, a.Kind)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"out/libfoo.a", StaticArchive},
		{"out/libfoo.pic.a", StaticArchive},
		{"out/libfoo.ifso", StaticArchive},
		{"out/foo.so", StaticArchive},
		{"out/libfoo.so", SharedLibrary},
		{"out/libfoo.dylib", SharedLibrary},
		{"out/libfoo.dll", SharedLibrary},
		{"out/libfoo.so.2", VersionedSharedLibrary},
		{"out/libfoo.so.2.3.4", VersionedSharedLibrary},
		{"out/libfoo.so.2a", StaticArchive},
		{"out/libfoo.so.1..2", StaticArchive},
		{"out/libfoo.2.dylib", VersionedDylib},
		{"out/libfoo.1.2.dylib", VersionedDylib},
		{"out/libfoo.bar.dylib", SharedLibrary},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestSearchPathOptions(t *testing.T) {
	tests := []struct {
		name string
		lib  model.LibraryToLink
		want [][]string
	}{
		{
			name: "unversioned shared library links by bare name",
			lib:  model.LibraryToLink{DynamicLibrary: "out/lib/libfoo.so"},
			want: [][]string{{"-L", "out/lib"}, {"-l", "foo"}},
		},
		{
			name: "versioned shared library links by exact file name",
			lib:  model.LibraryToLink{DynamicLibrary: "out/lib/libfoo.so.2"},
			want: [][]string{{"-L", "out/lib"}, {"-l", ":libfoo.so.2"}},
		},
		{
			name: "versioned dylib emits nothing",
			lib:  model.LibraryToLink{DynamicLibrary: "out/lib/libfoo.2.dylib"},
			want: nil,
		},
		{
			name: "static archive emits nothing here",
			lib:  model.LibraryToLink{StaticLibrary: "out/lib/libfoo.a"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := Select(tt.lib)
			require.True(t, ok)
			assert.Equal(t, tt.want, a.SearchPathOptions())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "static", StaticArchive.String())
	assert.Equal(t, "versioned-dylib", VersionedDylib.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
