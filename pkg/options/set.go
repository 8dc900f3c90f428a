package options

// Set groups option occurrences by key while preserving insertion order of
// both the keys and the occurrences under each key. The order carries no
// semantic weight beyond making matching tie-breaks and problem reports
// deterministic.
//
// A Set is not safe for concurrent use; reconciliation runs operate on their
// own Clone.
type Set[T Record] struct {
	keys   []string
	groups map[string][]T
}

// NewSet creates an empty Set.
func NewSet[T Record]() *Set[T] {
	return &Set[T]{
		groups: make(map[string][]T),
	}
}

// Add appends an occurrence to the queue for its key, registering the key on
// first sight.
func (s *Set[T]) Add(rec T) {
	key := rec.Content().Key
	if _, seen := s.groups[key]; !seen {
		s.keys = append(s.keys, key)
	}
	s.groups[key] = append(s.groups[key], rec)
}

// Get returns the occurrences recorded under key, in insertion order. The
// returned slice is the Set's own backing slice; callers that need to mutate
// must Clone first.
func (s *Set[T]) Get(key string) []T {
	return s.groups[key]
}

// Keys returns the keys in first-insertion order, skipping keys whose queues
// have been fully consumed.
func (s *Set[T]) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		if len(s.groups[key]) > 0 {
			keys = append(keys, key)
		}
	}
	return keys
}

// Len returns the total number of occurrences across all keys.
func (s *Set[T]) Len() int {
	n := 0
	for _, group := range s.groups {
		n += len(group)
	}
	return n
}

// Clone returns a deep copy of the grouping structure. The occurrences
// themselves are value types and are copied along with the queues, so
// consuming from the clone never touches the original.
func (s *Set[T]) Clone() *Set[T] {
	clone := &Set[T]{
		keys:   append([]string(nil), s.keys...),
		groups: make(map[string][]T, len(s.groups)),
	}
	for key, group := range s.groups {
		clone.groups[key] = append([]T(nil), group...)
	}
	return clone
}

// Consume removes and returns the first occurrence under key for which match
// returns true. It reports false if the key has no remaining occurrence that
// matches. Consumed occurrences cannot match again.
func (s *Set[T]) Consume(key string, match func(T) bool) (T, bool) {
	group := s.groups[key]
	for i, rec := range group {
		if match(rec) {
			s.groups[key] = append(group[:i:i], group[i+1:]...)
			return rec, true
		}
	}
	var zero T
	return zero, false
}
