package common

// OrderedSet is a set that iterates in first-insertion order.
type OrderedSet[T comparable] struct {
	items []T
	seen  map[T]struct{}
}

// NewOrderedSet returns an empty set.
func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{seen: make(map[T]struct{})}
}

// Add inserts v and reports whether it was new.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}

	s.seen[v] = struct{}{}
	s.items = append(s.items, v)

	return true
}

func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.seen[v]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns the members in insertion order. The slice must not be modified.
func (s *OrderedSet[T]) Items() []T {
	return s.items
}
