package intmap

// Item is a single key/value binding.
type Item[V any] struct {
	Key Key
	Val V
}

// Map is a persistent map from int64 keys to V values. The zero value
// is the empty map. Methods never mutate their receiver; writes return
// a new Map sharing all untouched subtrees with the old one.
type Map[V any] struct {
	root node[V]
}

// New returns an empty map, optionally populated with the given items.
// Later duplicates overwrite earlier ones.
func New[V any](items ...Item[V]) Map[V] {
	var m Map[V]
	for _, it := range items {
		m = m.Set(it.Key, it.Val)
	}
	return m
}

// Empty reports whether the map holds no bindings.
func (m Map[V]) Empty() bool {
	return m.root == nil
}

// Len returns the number of bindings.
func (m Map[V]) Len() int {
	return size(m.root)
}

func size[V any](t node[V]) int {
	switch n := t.(type) {
	case *leaf[V]:
		return 1
	case *branch[V]:
		return size(n.left) + size(n.right)
	}
	return 0
}

// Get returns the value bound to the key.
func (m Map[V]) Get(k Key) (val V, ok bool) {
	t := m.root
	for {
		switch n := t.(type) {
		case *leaf[V]:
			if n.key == k {
				return n.val, true
			}
			return
		case *branch[V]:
			if !matchPrefix(n.prefix, n.mask, k) {
				return
			}
			if branchLeft(n.mask, k) {
				t = n.left
			} else {
				t = n.right
			}
		default:
			return
		}
	}
}

// Has reports whether the key is bound.
func (m Map[V]) Has(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

// Set binds the key to the value, overwriting any previous binding.
func (m Map[V]) Set(k Key, v V) Map[V] {
	return m.SetWithKey(func(_ Key, _, new V) V { return new }, k, v)
}

// SetWith is Set, except an existing binding is replaced with
// combine(oldValue, newValue) instead of newValue.
func (m Map[V]) SetWith(combine func(old, new V) V, k Key, v V) Map[V] {
	return m.SetWithKey(func(_ Key, old, new V) V { return combine(old, new) }, k, v)
}

// SetWithKey is SetWith with the key passed to the combining function.
func (m Map[V]) SetWithKey(combine func(k Key, old, new V) V, k Key, v V) Map[V] {
	return Map[V]{insertWithKey(combine, k, v, m.root)}
}

func insertWithKey[V any](f func(Key, V, V) V, k Key, v V, t node[V]) node[V] {
	switch n := t.(type) {
	case nil:
		return &leaf[V]{k, v}
	case *leaf[V]:
		if n.key == k {
			return &leaf[V]{k, f(k, n.val, v)}
		}
		return join(k, node[V](&leaf[V]{k, v}), n.key, t)
	case *branch[V]:
		if !matchPrefix(n.prefix, n.mask, k) {
			return link(upper(k), node[V](&leaf[V]{k, v}), n.prefix, t)
		}
		if branchLeft(n.mask, k) {
			return &branch[V]{n.prefix, n.mask, insertWithKey(f, k, v, n.left), n.right}
		}
		return &branch[V]{n.prefix, n.mask, n.left, insertWithKey(f, k, v, n.right)}
	}
	return nil
}

// Del removes the binding for the key, if any.
func (m Map[V]) Del(k Key) Map[V] {
	return Map[V]{del(k, m.root)}
}

func del[V any](k Key, t node[V]) node[V] {
	switch n := t.(type) {
	case *leaf[V]:
		if n.key == k {
			return nil
		}
		return t
	case *branch[V]:
		if !matchPrefix(n.prefix, n.mask, k) {
			return t
		}
		if branchLeft(n.mask, k) {
			l := del(k, n.left)
			if l == n.left {
				return t
			}
			return br(n.prefix, n.mask, l, n.right)
		}
		r := del(k, n.right)
		if r == n.right {
			return t
		}
		return br(n.prefix, n.mask, n.left, r)
	}
	return nil
}

// Update transforms or removes the binding for the key: f returns the
// new value and whether to keep the binding at all. A key that is not
// bound is left alone.
func (m Map[V]) Update(k Key, f func(v V) (V, bool)) Map[V] {
	return m.UpdateWithKey(k, func(_ Key, v V) (V, bool) { return f(v) })
}

// UpdateWithKey is Update with the key passed to the callback.
func (m Map[V]) UpdateWithKey(k Key, f func(k Key, v V) (V, bool)) Map[V] {
	return Map[V]{updateWithKey(f, k, m.root)}
}

func updateWithKey[V any](f func(Key, V) (V, bool), k Key, t node[V]) node[V] {
	switch n := t.(type) {
	case *leaf[V]:
		if n.key == k {
			if v, keep := f(k, n.val); keep {
				return &leaf[V]{k, v}
			}
			return nil
		}
		return t
	case *branch[V]:
		if !matchPrefix(n.prefix, n.mask, k) {
			return t
		}
		if branchLeft(n.mask, k) {
			l := updateWithKey(f, k, n.left)
			if l == n.left {
				return t
			}
			return br(n.prefix, n.mask, l, n.right)
		}
		r := updateWithKey(f, k, n.right)
		if r == n.right {
			return t
		}
		return br(n.prefix, n.mask, n.left, r)
	}
	return nil
}

// Adjust transforms the value bound to the key, if any.
func (m Map[V]) Adjust(k Key, f func(v V) V) Map[V] {
	return m.UpdateWithKey(k, func(_ Key, v V) (V, bool) { return f(v), true })
}

// AdjustWithKey is Adjust with the key passed to the callback.
func (m Map[V]) AdjustWithKey(k Key, f func(k Key, v V) V) Map[V] {
	return m.UpdateWithKey(k, func(k Key, v V) (V, bool) { return f(k, v), true })
}
