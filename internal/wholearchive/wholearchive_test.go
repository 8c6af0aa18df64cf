package wholearchive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entries(flags ...bool) []Entry {
	names := []string{"x1", "x2", "x3", "x4", "x5", "x6"}
	out := make([]Entry, len(flags))
	for i, f := range flags {
		out[i] = Entry{Path: names[i], Alwayslink: f}
	}
	return out
}

func TestProcess_Region(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		want  []string
	}{
		{
			name:  "mixed sequence",
			flags: []bool{false, true, true, false, true},
			want:  []string{"x1", Begin, "x2", "x3", End, "x4", Begin, "x5", End},
		},
		{
			name:  "no alwayslink",
			flags: []bool{false, false},
			want:  []string{"x1", "x2"},
		},
		{
			name:  "all alwayslink",
			flags: []bool{true, true, true},
			want:  []string{Begin, "x1", "x2", "x3", End},
		},
		{
			name:  "closed before trailing plain archive",
			flags: []bool{true, false},
			want:  []string{Begin, "x1", End, "x2"},
		},
		{
			name:  "empty",
			flags: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Process(entries(tt.flags...), Region))
		})
	}
}

func TestProcess_PerArchive(t *testing.T) {
	got := Process(entries(false, true, true, false, true), PerArchive)
	want := []string{"x1", ForceLoad, "x2", ForceLoad, "x3", "x4", ForceLoad, "x5"}
	assert.Equal(t, want, got)
	assert.NotContains(t, got, Begin)
	assert.NotContains(t, got, End)
}

func TestBracketer_RegionsAlwaysClosed(t *testing.T) {
	// Every prefix of every flag pattern up to length 6 must balance.
	for mask := 0; mask < 1<<6; mask++ {
		for n := 0; n <= 6; n++ {
			flags := make([]bool, n)
			for i := range flags {
				flags[i] = mask&(1<<i) != 0
			}
			depth := 0
			for _, tok := range Process(entries(flags...), Region) {
				switch tok {
				case Begin:
					depth++
				case End:
					depth--
				}
				assert.True(t, depth == 0 || depth == 1, "nested region for %v", flags)
			}
			assert.Equal(t, 0, depth, "unclosed region for %v", flags)
		}
	}
}

func TestBracketer_Reuse(t *testing.T) {
	b := New(Region)
	b.Add("a", true)
	assert.Equal(t, []string{Begin, "a", End}, b.Finish())

	b.Add("b", false)
	assert.Equal(t, []string{"b"}, b.Finish())
}
