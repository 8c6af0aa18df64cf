// Package optset provides insertion-ordered collections for compiler and
// linker options.
package optset

// Set is an insertion-ordered set. Adding a value that is already present
// is a no-op, so the first occurrence keeps its position.
type Set[T comparable] struct {
	values []T
	index  map[T]int
}

// NewSet creates a set holding values in first-occurrence order.
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]int, len(values))}
	s.Add(values...)
	return s
}

// Add appends each value not yet in the set.
func (s *Set[T]) Add(values ...T) {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	for _, v := range values {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = len(s.values)
		s.values = append(s.values, v)
	}
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Index returns the position of v, or -1.
func (s *Set[T]) Index(v T) int {
	if i, ok := s.index[v]; ok {
		return i
	}
	return -1
}

// Len returns the number of values.
func (s *Set[T]) Len() int {
	return len(s.values)
}

// Values returns a copy of the values in insertion order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}
