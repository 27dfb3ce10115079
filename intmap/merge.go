package intmap

// Union returns the union of two maps. Where a key is bound on both
// sides the receiver's value wins.
func (m Map[V]) Union(other Map[V]) Map[V] {
	return m.UnionWithKey(func(_ Key, left, _ V) V { return left }, other)
}

// UnionRight is Union keeping the other map's value on common keys.
func (m Map[V]) UnionRight(other Map[V]) Map[V] {
	return m.UnionWithKey(func(_ Key, _, right V) V { return right }, other)
}

// UnionWith returns the union of two maps, resolving common keys with
// combine(valueFromReceiver, valueFromOther).
func (m Map[V]) UnionWith(combine func(left, right V) V, other Map[V]) Map[V] {
	return m.UnionWithKey(func(_ Key, left, right V) V { return combine(left, right) }, other)
}

// UnionWithKey is UnionWith with the key passed to the combining
// function. The merge walks both tries together, sharing every subtree
// that occurs on only one side, so it costs O(n+m) rather than
// O(m log n) element-wise insertion.
func (m Map[V]) UnionWithKey(combine func(k Key, left, right V) V, other Map[V]) Map[V] {
	return Map[V]{unionWithKey(combine, m.root, other.root)}
}

func unionWithKey[V any](f func(Key, V, V) V, s, t node[V]) node[V] {
	if s == nil {
		return t
	}
	if t == nil {
		return s
	}
	// A lone leaf routes through insert; f must still see the left
	// tree's value as its first argument.
	if n, ok := s.(*leaf[V]); ok {
		return insertWithKey(func(k Key, old, new V) V { return f(k, new, old) },
			n.key, n.val, t)
	}
	if n, ok := t.(*leaf[V]); ok {
		return insertWithKey(f, n.key, n.val, s)
	}

	sb := s.(*branch[V])
	tb := t.(*branch[V])
	switch {
	case sb.mask == tb.mask && sb.prefix == tb.prefix:
		// Same split point: union children pairwise.
		return &branch[V]{sb.prefix, sb.mask,
			unionWithKey(f, sb.left, tb.left),
			unionWithKey(f, sb.right, tb.right)}
	case maskLonger(sb.mask, tb.mask) && trim(tb.prefix, sb.mask) == sb.prefix:
		// t fits entirely inside one child of s.
		if zeroBit(tb.prefix, sb.mask) {
			return &branch[V]{sb.prefix, sb.mask, unionWithKey(f, sb.left, t), sb.right}
		}
		return &branch[V]{sb.prefix, sb.mask, sb.left, unionWithKey(f, sb.right, t)}
	case maskLonger(tb.mask, sb.mask) && trim(sb.prefix, tb.mask) == tb.prefix:
		// s fits entirely inside one child of t.
		if zeroBit(sb.prefix, tb.mask) {
			return &branch[V]{tb.prefix, tb.mask, unionWithKey(f, s, tb.left), tb.right}
		}
		return &branch[V]{tb.prefix, tb.mask, tb.left, unionWithKey(f, s, tb.right)}
	default:
		// Disjoint prefix domains: the whole trees become siblings.
		return link(sb.prefix, s, tb.prefix, t)
	}
}

// Unions folds any number of maps together with UnionWith. The empty
// map is the identity, making this the monoid append for maps whose
// value type carries an associative combine.
func Unions[V any](combine func(left, right V) V, ms ...Map[V]) Map[V] {
	var out Map[V]
	for _, m := range ms {
		out = out.UnionWith(combine, m)
	}
	return out
}

// MergeWithKey is the general two-map merge every other merge operation
// derives from. For every key bound on both sides it keeps the key iff
// combine returns true, bound to the returned value. Maximal subtrees
// bound on only one side are passed whole to onlyLeft or onlyRight;
// each transform must return a map whose keys are a subset of its
// input's keys (identity and drop-everything are the usual instances).
func MergeWithKey[A, B, C any](
	combine func(k Key, left A, right B) (C, bool),
	onlyLeft func(Map[A]) Map[C],
	onlyRight func(Map[B]) Map[C],
	l Map[A], r Map[B],
) Map[C] {
	g1 := func(t node[A]) node[C] {
		if t == nil {
			return nil
		}
		return onlyLeft(Map[A]{t}).root
	}
	g2 := func(t node[B]) node[C] {
		if t == nil {
			return nil
		}
		return onlyRight(Map[B]{t}).root
	}
	return Map[C]{mergeWithKey(combine, g1, g2, l.root, r.root)}
}

// mergeWithKey drives the merge. Unlike unionWithKey it rebuilds with
// the collapsing constructors throughout, because g1/g2 may empty any
// subtree they are handed. combine only ever fires leaf against leaf.
func mergeWithKey[A, B, C any](
	f func(Key, A, B) (C, bool),
	g1 func(node[A]) node[C],
	g2 func(node[B]) node[C],
	s node[A], t node[B],
) node[C] {
	if s == nil {
		return g2(t)
	}
	if t == nil {
		return g1(s)
	}
	if n, ok := s.(*leaf[A]); ok {
		return mergeLeafLeft(f, g1, g2, n, t)
	}
	if n, ok := t.(*leaf[B]); ok {
		return mergeLeafRight(f, g1, g2, s, n)
	}

	sb := s.(*branch[A])
	tb := t.(*branch[B])
	switch {
	case sb.mask == tb.mask && sb.prefix == tb.prefix:
		return br(sb.prefix, sb.mask,
			mergeWithKey(f, g1, g2, sb.left, tb.left),
			mergeWithKey(f, g1, g2, sb.right, tb.right))
	case maskLonger(sb.mask, tb.mask):
		if trim(tb.prefix, sb.mask) != sb.prefix {
			return linkMaybe(sb.prefix, g1(s), tb.prefix, g2(t))
		}
		if zeroBit(tb.prefix, sb.mask) {
			return br(sb.prefix, sb.mask, mergeWithKey(f, g1, g2, sb.left, t), g1(sb.right))
		}
		return br(sb.prefix, sb.mask, g1(sb.left), mergeWithKey(f, g1, g2, sb.right, t))
	case maskLonger(tb.mask, sb.mask):
		if trim(sb.prefix, tb.mask) != tb.prefix {
			return linkMaybe(sb.prefix, g1(s), tb.prefix, g2(t))
		}
		if zeroBit(sb.prefix, tb.mask) {
			return br(tb.prefix, tb.mask, mergeWithKey(f, g1, g2, s, tb.left), g2(tb.right))
		}
		return br(tb.prefix, tb.mask, g2(tb.left), mergeWithKey(f, g1, g2, s, tb.right))
	default:
		return linkMaybe(sb.prefix, g1(s), tb.prefix, g2(t))
	}
}

// mergeLeafLeft descends t along the left leaf's key.
func mergeLeafLeft[A, B, C any](
	f func(Key, A, B) (C, bool),
	g1 func(node[A]) node[C],
	g2 func(node[B]) node[C],
	l *leaf[A], t node[B],
) node[C] {
	switch n := t.(type) {
	case nil:
		return g1(l)
	case *leaf[B]:
		if n.key == l.key {
			if v, keep := f(l.key, l.val, n.val); keep {
				return &leaf[C]{l.key, v}
			}
			return nil
		}
		return linkMaybe(upper(l.key), g1(l), upper(n.key), g2(t))
	case *branch[B]:
		if !matchPrefix(n.prefix, n.mask, l.key) {
			return linkMaybe(upper(l.key), g1(l), n.prefix, g2(t))
		}
		if branchLeft(n.mask, l.key) {
			return br(n.prefix, n.mask, mergeLeafLeft(f, g1, g2, l, n.left), g2(n.right))
		}
		return br(n.prefix, n.mask, g2(n.left), mergeLeafLeft(f, g1, g2, l, n.right))
	}
	return nil
}

// mergeLeafRight descends s along the right leaf's key.
func mergeLeafRight[A, B, C any](
	f func(Key, A, B) (C, bool),
	g1 func(node[A]) node[C],
	g2 func(node[B]) node[C],
	s node[A], l *leaf[B],
) node[C] {
	switch n := s.(type) {
	case nil:
		return g2(l)
	case *leaf[A]:
		if n.key == l.key {
			if v, keep := f(l.key, n.val, l.val); keep {
				return &leaf[C]{l.key, v}
			}
			return nil
		}
		return linkMaybe(upper(n.key), g1(s), upper(l.key), g2(l))
	case *branch[A]:
		if !matchPrefix(n.prefix, n.mask, l.key) {
			return linkMaybe(n.prefix, g1(s), upper(l.key), g2(l))
		}
		if branchLeft(n.mask, l.key) {
			return br(n.prefix, n.mask, mergeLeafRight(f, g1, g2, n.left, l), g1(n.right))
		}
		return br(n.prefix, n.mask, g1(n.left), mergeLeafRight(f, g1, g2, n.right, l))
	}
	return nil
}

func keepAll[V any](m Map[V]) Map[V] { return m }

func dropAll[A, C any](Map[A]) Map[C] { return Map[C]{} }

// Intersection returns the submap of l whose keys are also bound in r.
func Intersection[A, B any](l Map[A], r Map[B]) Map[A] {
	return IntersectionWithKey(func(_ Key, left A, _ B) A { return left }, l, r)
}

// IntersectionRight returns the submap of r whose keys are also bound
// in l.
func IntersectionRight[A, B any](l Map[A], r Map[B]) Map[B] {
	return IntersectionWithKey(func(_ Key, _ A, right B) B { return right }, l, r)
}

// IntersectionWith intersects two maps, combining the values bound to
// each common key.
func IntersectionWith[A, B, C any](combine func(left A, right B) C, l Map[A], r Map[B]) Map[C] {
	return IntersectionWithKey(func(_ Key, left A, right B) C { return combine(left, right) }, l, r)
}

// IntersectionWithKey is IntersectionWith with the key passed to the
// combining function.
func IntersectionWithKey[A, B, C any](combine func(k Key, left A, right B) C, l Map[A], r Map[B]) Map[C] {
	return MergeWithKey(
		func(k Key, left A, right B) (C, bool) { return combine(k, left, right), true },
		dropAll[A, C], dropAll[B, C], l, r)
}

// Difference returns l without the keys bound in r; r's values are
// irrelevant.
func Difference[A, B any](l Map[A], r Map[B]) Map[A] {
	return DifferenceWithKey(func(Key, A, B) (A, bool) { var zero A; return zero, false }, l, r)
}

// DifferenceWith is Difference, except a common key is resolved by
// combine: returning true keeps the key in the result with the
// returned (left-derived) value, false drops it.
func DifferenceWith[A, B any](combine func(left A, right B) (A, bool), l Map[A], r Map[B]) Map[A] {
	return DifferenceWithKey(func(_ Key, left A, right B) (A, bool) { return combine(left, right) }, l, r)
}

// DifferenceWithKey is DifferenceWith with the key passed to the
// combining function.
func DifferenceWithKey[A, B any](combine func(k Key, left A, right B) (A, bool), l Map[A], r Map[B]) Map[A] {
	return MergeWithKey(combine, keepAll[A], dropAll[B, A], l, r)
}
