// Package ordered provides an insertion-ordered string set. Dependency lists
// flow straight into byte-exact serialized output, so membership checks must
// never fall back to map iteration order.
package ordered

// Set keeps unique strings in first-insertion order. The zero value is ready
// to use.
type Set struct {
	items []string
	index map[string]struct{}
}

// NewSet returns a Set seeded with items, keeping the first occurrence of
// each duplicate.
func NewSet(items ...string) *Set {
	s := &Set{}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item if absent and reports whether the set grew.
func (s *Set) Add(item string) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Has reports whether item is a member.
func (s *Set) Has(item string) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the members in first-insertion order as a fresh slice.
func (s *Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
