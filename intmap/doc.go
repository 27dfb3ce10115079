// Package intmap implements a persistent (immutable, structurally-shared)
// map from int64 keys to values of an arbitrary type, as a big-endian
// Patricia trie in the style of Okasaki & Gill, "Fast Mergeable Integer
// Maps" (ML Workshop, 1998).
//
// A trie is one of:
//
//   - an empty tree (represented as a nil node);
//   - a leaf holding a single key/value binding;
//   - a branch holding a prefix, a branching-bit mask and two non-empty
//     subtrees.
//
// Every branch splits its keys on a single bit position, identified by a
// mask with exactly that bit set. The prefix records the bits all keys
// below the branch agree on above the branching bit; bits at and below it
// are zero. Keys whose branching bit is clear go left, keys with it set go
// right, so an in-order walk enumerates keys in ascending order.
//
// Keys are kept in offset-binary form internally (the sign bit is flipped
// before any bit arithmetic). In that form the unsigned order of bit
// patterns coincides with the signed order of keys, so negative keys sort
// before non-negative ones without special-casing the sign bit anywhere in
// the engine.
//
// Tries are canonical: the shape of a trie is fully determined by the set
// of keys it holds, independent of the order of insertions and deletions.
// Two maps holding the same bindings are therefore structurally equal, and
// merge operations can short-circuit whole shared subtrees.
//
// No operation mutates an existing node. A write builds new nodes for the
// path it touches and shares every other subtree with the input map, so an
// old version and a new version alias most of their structure and any
// number of goroutines may read the same map concurrently without locking.
//
// Single-key operations cost O(min(n, 64)). Union, intersection and
// difference merge two tries structurally in O(n+m) instead of
// re-inserting element by element.
package intmap
