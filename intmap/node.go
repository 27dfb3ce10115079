package intmap

// node is the closed sum of trie shapes. The empty tree is a nil node,
// so a type switch over a node carries a nil case next to the two
// pointer variants. The marker method mentions V so that the compiler
// can infer V from a lone node argument.
type node[V any] interface {
	sealed(V)
}

// leaf holds a single key/value binding.
type leaf[V any] struct {
	key Key
	val V
}

// branch splits its keys on the bit marked by mask. Both children are
// non-empty, the prefix holds the bits all keys below agree on above
// the mask, and the mask is the highest bit at which keys of the two
// children disagree.
type branch[V any] struct {
	prefix prefix
	mask   bitmask
	left   node[V]
	right  node[V]
}

func (*leaf[V]) sealed(V)   {}
func (*branch[V]) sealed(V) {}

// br builds a branch but collapses an empty child away, returning the
// other child directly (or nil when both are empty). Every rebuild
// that may have emptied a subtree must go through br to keep the trie
// canonical.
func br[V any](p prefix, m bitmask, l, r node[V]) node[V] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	return &branch[V]{p, m, l, r}
}

// link combines two non-empty trees with disjoint prefix domains into
// the minimal branch above both. p1 and p2 are representative patterns
// of t1 and t2: a branch's prefix, or upper(key) for a leaf.
func link[V any](p1 prefix, t1 node[V], p2 prefix, t2 node[V]) node[V] {
	m := highestBit(p1 ^ p2)
	p := trim(p1, m)
	if zeroBit(p1, m) {
		return &branch[V]{p, m, t1, t2}
	}
	return &branch[V]{p, m, t2, t1}
}

// join is link for two trees identified by member keys, used where a
// fresh leaf is spliced next to an existing subtree.
func join[V any](k1 Key, t1 node[V], k2 Key, t2 node[V]) node[V] {
	return link(upper(k1), t1, upper(k2), t2)
}

// linkMaybe is link tolerating empty operands, for merge paths where
// either side may have been emptied by a subtree transform.
func linkMaybe[V any](p1 prefix, t1 node[V], p2 prefix, t2 node[V]) node[V] {
	if t1 == nil {
		return t2
	}
	if t2 == nil {
		return t1
	}
	return link(p1, t1, p2, t2)
}
