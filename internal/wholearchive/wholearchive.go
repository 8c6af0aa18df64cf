// Package wholearchive brackets static archives that must be linked in full.
package wholearchive

// Linker flags emitted around alwayslink archives.
const (
	Begin     = "-Wl,-whole-archive"
	End       = "-Wl,-no-whole-archive"
	ForceLoad = "-Wl,-force_load"
)

// Style selects how a platform's linker forces an archive in.
type Style int

const (
	// Region opens and closes whole-archive regions (GNU ld, lld, gold).
	Region Style = iota
	// PerArchive prefixes every forced archive with -force_load (ld64).
	PerArchive
)

// Entry is one static archive in link order.
type Entry struct {
	Path       string
	Alwayslink bool
}

// Bracketer emits archives in order with the markers their alwayslink flags
// require. The zero value uses the Region style.
type Bracketer struct {
	style  Style
	inside bool
	out    []string
}

// New creates a bracketer for style.
func New(style Style) *Bracketer {
	return &Bracketer{style: style}
}

// Add appends one archive.
func (b *Bracketer) Add(path string, alwayslink bool) {
	if b.style == PerArchive {
		if alwayslink {
			b.out = append(b.out, ForceLoad)
		}
		b.out = append(b.out, path)
		return
	}

	switch {
	case alwayslink && !b.inside:
		b.out = append(b.out, Begin)
		b.inside = true
	case !alwayslink && b.inside:
		b.out = append(b.out, End)
		b.inside = false
	}
	b.out = append(b.out, path)
}

// Finish closes an open region and returns the fragment. The bracketer is
// reset and may be reused.
func (b *Bracketer) Finish() []string {
	if b.inside {
		b.out = append(b.out, End)
		b.inside = false
	}
	out := b.out
	b.out = nil
	return out
}

// Process brackets entries in one pass.
func Process(entries []Entry, style Style) []string {
	b := New(style)
	for _, e := range entries {
		b.Add(e.Path, e.Alwayslink)
	}
	return b.Finish()
}
