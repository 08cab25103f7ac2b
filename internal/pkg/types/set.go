package types

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
)

// Set is a mutable hash set for comparable types.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes values from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Contains reports whether v is in the set. A nil set contains nothing.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// ContainsAny reports whether at least one of values is in the set.
func (s Set[T]) ContainsAny(values ...T) bool {
	return slices.ContainsFunc(values, s.Contains)
}

// ToIter returns an iterator over the elements in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// MarshalJSON encodes the set as a JSON array.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.ToSlice())
}

// UnmarshalJSON decodes a JSON array into the set.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	if values == nil {
		*s = nil
		return nil
	}

	*s = NewSet(values...)
	return nil
}
