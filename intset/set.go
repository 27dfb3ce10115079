// Package intset implements a persistent set of int64 keys as a thin
// wrapper over the intmap Patricia trie. It shares all of the map's
// properties: immutability, structural sharing, canonical shape and
// ascending enumeration over the full signed range.
package intset

import "github.com/aglyzov/go-pds/intmap"

// Key is the element type of the set.
type Key = intmap.Key

// Set is a persistent set of keys. The zero value is the empty set.
type Set struct {
	m intmap.Map[struct{}]
}

// New returns a set of the given keys.
func New(keys ...Key) Set {
	var s Set
	for _, k := range keys {
		s = s.Add(k)
	}
	return s
}

// Empty reports whether the set has no elements.
func (s Set) Empty() bool {
	return s.m.Empty()
}

// Len returns the number of elements.
func (s Set) Len() int {
	return s.m.Len()
}

// Has reports whether the key is an element.
func (s Set) Has(k Key) bool {
	return s.m.Has(k)
}

// Add returns the set with the key added.
func (s Set) Add(k Key) Set {
	return Set{s.m.Set(k, struct{}{})}
}

// Del returns the set with the key removed.
func (s Set) Del(k Key) Set {
	return Set{s.m.Del(k)}
}

// Union returns the set of keys present in either set.
func (s Set) Union(other Set) Set {
	return Set{s.m.Union(other.m)}
}

// Intersect returns the set of keys present in both sets.
func (s Set) Intersect(other Set) Set {
	return Set{intmap.Intersection(s.m, other.m)}
}

// Diff returns the set of keys present in s but not in other.
func (s Set) Diff(other Set) Set {
	return Set{intmap.Difference(s.m, other.m)}
}

// Equal reports whether both sets hold the same keys.
func (s Set) Equal(other Set) bool {
	return intmap.Equal(s.m, other.m)
}

// Iter calls the handler for every key in ascending order. The handler
// can continue the walk by returning true or abort with false; Iter
// reports whether the whole set was visited.
func (s Set) Iter(handler func(k Key) bool) bool {
	return s.m.Iter(func(k Key, _ struct{}) bool {
		return handler(k)
	})
}

// Keys returns all elements in ascending order.
func (s Set) Keys() []Key {
	return s.m.Keys()
}
