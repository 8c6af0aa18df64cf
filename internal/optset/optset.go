package optset

import "strings"

// Option is a single compiler or linker option. Most options are one
// argument ("-fPIC"); options taking a separate value carry both arguments
// ("-iquote", "dir") and are compared as a unit.
type Option []string

// key identifies an option for deduplication. NUL cannot appear in an argv
// element, so distinct argument lists never collide.
func (o Option) key() string {
	return strings.Join(o, "\x00")
}

// String renders the option the way it would appear on a command line.
func (o Option) String() string {
	return strings.Join(o, " ")
}

// Equal reports whether o and other carry the same arguments.
func (o Option) Equal(other Option) bool {
	return o.key() == other.key()
}

// OptionSet is an ordered list of options. Unlike Set it tolerates
// duplicates until Dedup is called, because accumulation order and
// deduplication are separate steps of a resolution.
type OptionSet struct {
	opts []Option
}

// New creates an OptionSet where every argument is a single-argument option.
func New(args ...string) *OptionSet {
	s := &OptionSet{opts: make([]Option, 0, len(args))}
	s.AddEach(args...)
	return s
}

// Concat builds a single-argument OptionSet from several argument lists, in order.
func Concat(lists ...[]string) *OptionSet {
	s := &OptionSet{}
	for _, l := range lists {
		s.AddEach(l...)
	}
	return s
}

// Add appends one option made of args. Empty calls are ignored.
func (s *OptionSet) Add(args ...string) {
	if len(args) == 0 {
		return
	}
	opt := make(Option, len(args))
	copy(opt, args)
	s.opts = append(s.opts, opt)
}

// AddEach appends every argument as its own option.
func (s *OptionSet) AddEach(args ...string) {
	for _, a := range args {
		s.opts = append(s.opts, Option{a})
	}
}

// AddIfMissing appends the option unless an equal one is already present.
// It returns true when the option was appended.
func (s *OptionSet) AddIfMissing(args ...string) bool {
	if s.Contains(args...) {
		return false
	}
	s.Add(args...)
	return true
}

// Append appends all options of other.
func (s *OptionSet) Append(other *OptionSet) {
	for _, o := range other.opts {
		s.Add(o...)
	}
}

// Contains reports whether an option equal to args is present.
func (s *OptionSet) Contains(args ...string) bool {
	want := Option(args)
	for _, o := range s.opts {
		if o.Equal(want) {
			return true
		}
	}
	return false
}

// RemoveFunc drops every option for which drop returns true.
func (s *OptionSet) RemoveFunc(drop func(Option) bool) {
	kept := s.opts[:0]
	for _, o := range s.opts {
		if !drop(o) {
			kept = append(kept, o)
		}
	}
	s.opts = kept
}

// Remove drops every single-argument option equal to one of values.
func (s *OptionSet) Remove(values ...string) {
	s.RemoveFunc(func(o Option) bool {
		if len(o) != 1 {
			return false
		}
		for _, v := range values {
			if o[0] == v {
				return true
			}
		}
		return false
	})
}

// Dedup removes repeated options, keeping the first occurrence of each and
// the relative order of the survivors.
func (s *OptionSet) Dedup() {
	seen := make(map[string]struct{}, len(s.opts))
	kept := s.opts[:0]
	for _, o := range s.opts {
		k := o.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, o)
	}
	s.opts = kept
}

// Len returns the number of options.
func (s *OptionSet) Len() int {
	return len(s.opts)
}

// Options returns a copy of the options.
func (s *OptionSet) Options() []Option {
	out := make([]Option, len(s.opts))
	for i, o := range s.opts {
		out[i] = append(Option(nil), o...)
	}
	return out
}

// Args flattens the options into an argument list.
func (s *OptionSet) Args() []string {
	out := make([]string, 0, len(s.opts))
	for _, o := range s.opts {
		out = append(out, o...)
	}
	return out
}

// Clone returns an independent copy.
func (s *OptionSet) Clone() *OptionSet {
	return &OptionSet{opts: s.Options()}
}
