package optset

// Category emits options of one flag kind and remembers the values it has
// already emitted. Include paths are tracked per category, so the same
// directory may appear once as "-I" and once as "-iquote".
type Category struct {
	flag   string
	joined bool
	seen   *Set[string]
}

// NewCategory creates a category for flag. A joined category renders
// "-Ivalue" as one argument; otherwise the flag and value are separate
// arguments of one option.
func NewCategory(flag string, joined bool) *Category {
	return &Category{flag: flag, joined: joined, seen: NewSet[string]()}
}

// Flag returns the flag this category emits.
func (c *Category) Flag() string {
	return c.flag
}

// Option renders value under this category's flag.
func (c *Category) Option(value string) Option {
	if c.joined {
		return Option{c.flag + value}
	}
	return Option{c.flag, value}
}

// AppendTo adds value to s unless this category already emitted it.
// It returns true when an option was appended.
func (c *Category) AppendTo(s *OptionSet, value string) bool {
	if c.seen.Contains(value) {
		return false
	}
	c.seen.Add(value)
	s.Add(c.Option(value)...)
	return true
}

// Seen returns the emitted values in order.
func (c *Category) Seen() []string {
	return c.seen.Values()
}
