package intmap

// Iter calls the handler for every binding in ascending key order.
// The handler can continue the walk by returning true or abort with
// false; Iter reports whether the whole map was visited.
func (m Map[V]) Iter(handler func(k Key, v V) bool) bool {
	return iterate(m.root, handler)
}

func iterate[V any](t node[V], h func(Key, V) bool) bool {
	switch n := t.(type) {
	case *leaf[V]:
		return h(n.key, n.val)
	case *branch[V]:
		return iterate(n.left, h) && iterate(n.right, h)
	}
	return true
}

// Keys returns all keys in ascending order.
func (m Map[V]) Keys() []Key {
	if m.root == nil {
		return nil
	}
	keys := make([]Key, 0, m.Len())

	// Walk the tree without function recursion
	toVisit := []node[V]{m.root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		t := toVisit[l-1]
		toVisit = toVisit[:l-1]

		switch n := t.(type) {
		case *leaf[V]:
			keys = append(keys, n.key)
		case *branch[V]:
			toVisit = append(toVisit, n.right, n.left)
		}
	}
	return keys
}

// Values returns all values in ascending key order.
func (m Map[V]) Values() []V {
	if m.root == nil {
		return nil
	}
	vals := make([]V, 0, m.Len())

	// Walk the tree without function recursion
	toVisit := []node[V]{m.root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		t := toVisit[l-1]
		toVisit = toVisit[:l-1]

		switch n := t.(type) {
		case *leaf[V]:
			vals = append(vals, n.val)
		case *branch[V]:
			toVisit = append(toVisit, n.right, n.left)
		}
	}
	return vals
}

// Items returns all bindings sorted ascending by key, with no
// duplicate keys.
func (m Map[V]) Items() []Item[V] {
	if m.root == nil {
		return nil
	}
	items := make([]Item[V], 0, m.Len())

	// Walk the tree without function recursion
	toVisit := []node[V]{m.root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		t := toVisit[l-1]
		toVisit = toVisit[:l-1]

		switch n := t.(type) {
		case *leaf[V]:
			items = append(items, Item[V]{n.key, n.val})
		case *branch[V]:
			toVisit = append(toVisit, n.right, n.left)
		}
	}
	return items
}

// FromItems builds a map from a sequence of bindings. A later binding
// for a key overwrites an earlier one.
func FromItems[V any](items []Item[V]) Map[V] {
	return FromItemsWithKey(func(_ Key, _, new V) V { return new }, items)
}

// FromItemsWith builds a map from a sequence of bindings, resolving a
// duplicated key with combine(earlierValue, laterValue).
func FromItemsWith[V any](combine func(old, new V) V, items []Item[V]) Map[V] {
	return FromItemsWithKey(func(_ Key, old, new V) V { return combine(old, new) }, items)
}

// FromItemsWithKey is FromItemsWith with the key passed to the
// combining function.
func FromItemsWithKey[V any](combine func(k Key, old, new V) V, items []Item[V]) Map[V] {
	var m Map[V]
	for _, it := range items {
		m = m.SetWithKey(combine, it.Key, it.Val)
	}
	return m
}

// FoldrWithKey folds the bindings right-to-left: the binding with the
// greatest key is combined with z first.
func FoldrWithKey[V, B any](m Map[V], z B, f func(k Key, v V, acc B) B) B {
	return foldr(m.root, z, f)
}

func foldr[V, B any](t node[V], z B, f func(Key, V, B) B) B {
	switch n := t.(type) {
	case *leaf[V]:
		return f(n.key, n.val, z)
	case *branch[V]:
		return foldr(n.left, foldr(n.right, z, f), f)
	}
	return z
}

// FoldlWithKey folds the bindings left-to-right: the binding with the
// smallest key is combined with z first.
func FoldlWithKey[V, B any](m Map[V], z B, f func(acc B, k Key, v V) B) B {
	return foldl(m.root, z, f)
}

func foldl[V, B any](t node[V], z B, f func(B, Key, V) B) B {
	switch n := t.(type) {
	case *leaf[V]:
		return f(z, n.key, n.val)
	case *branch[V]:
		return foldl(n.right, foldl(n.left, z, f), f)
	}
	return z
}

// FoldMapWithKey maps every binding into a monoid given by its unit
// and associative op, and combines the results in ascending key order.
func FoldMapWithKey[V, M any](m Map[V], unit M, op func(M, M) M, f func(k Key, v V) M) M {
	return FoldlWithKey(m, unit, func(acc M, k Key, v V) M {
		return op(acc, f(k, v))
	})
}

// MapValues transforms every value with f, preserving the tree shape
// exactly since keys never change.
func MapValues[A, B any](m Map[A], f func(v A) B) Map[B] {
	return MapWithKey(m, func(_ Key, v A) B { return f(v) })
}

// MapWithKey is MapValues with the key passed to the callback.
func MapWithKey[A, B any](m Map[A], f func(k Key, v A) B) Map[B] {
	return Map[B]{mapWithKey(m.root, f)}
}

func mapWithKey[A, B any](t node[A], f func(Key, A) B) node[B] {
	switch n := t.(type) {
	case *leaf[A]:
		return &leaf[B]{n.key, f(n.key, n.val)}
	case *branch[A]:
		return &branch[B]{n.prefix, n.mask, mapWithKey(n.left, f), mapWithKey(n.right, f)}
	}
	return nil
}

// Traverse transforms every value with a fallible callback, visiting
// bindings one at a time in ascending key order. The first error
// aborts the walk and is returned; otherwise the rebuilt map is.
func Traverse[A, B any](m Map[A], f func(k Key, v A) (B, error)) (Map[B], error) {
	root, err := traverse(m.root, f)
	if err != nil {
		return Map[B]{}, err
	}
	return Map[B]{root}, nil
}

func traverse[A, B any](t node[A], f func(Key, A) (B, error)) (node[B], error) {
	switch n := t.(type) {
	case *leaf[A]:
		v, err := f(n.key, n.val)
		if err != nil {
			return nil, err
		}
		return &leaf[B]{n.key, v}, nil
	case *branch[A]:
		l, err := traverse(n.left, f)
		if err != nil {
			return nil, err
		}
		r, err := traverse(n.right, f)
		if err != nil {
			return nil, err
		}
		return &branch[B]{n.prefix, n.mask, l, r}, nil
	}
	return nil, nil
}

// Equal reports whether two maps hold the same bindings. Tries are
// canonical, so this is plain structural equality; subtrees shared
// between the two maps compare in O(1).
func Equal[V comparable](a, b Map[V]) bool {
	return equalNode(a.root, b.root)
}

func equalNode[V comparable](s, t node[V]) bool {
	if s == t {
		return true
	}
	switch n := s.(type) {
	case *leaf[V]:
		o, ok := t.(*leaf[V])
		return ok && n.key == o.key && n.val == o.val
	case *branch[V]:
		o, ok := t.(*branch[V])
		return ok && n.prefix == o.prefix && n.mask == o.mask &&
			equalNode(n.left, o.left) && equalNode(n.right, o.right)
	}
	return t == nil
}

// EqualFunc reports whether two maps hold the same keys with values
// equal under eq.
func EqualFunc[A, B any](a Map[A], b Map[B], eq func(A, B) bool) bool {
	return equalFunc(a.root, b.root, eq)
}

func equalFunc[A, B any](s node[A], t node[B], eq func(A, B) bool) bool {
	switch n := s.(type) {
	case *leaf[A]:
		o, ok := t.(*leaf[B])
		return ok && n.key == o.key && eq(n.val, o.val)
	case *branch[A]:
		o, ok := t.(*branch[B])
		return ok && n.prefix == o.prefix && n.mask == o.mask &&
			equalFunc(n.left, o.left, eq) && equalFunc(n.right, o.right, eq)
	}
	return t == nil
}
