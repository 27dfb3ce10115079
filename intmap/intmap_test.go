package intmap

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	m := New[string]()

	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Items())

	_, ok := m.Get(0)
	assert.False(t, ok)

	// operations on the empty map are no-ops
	assert.True(t, m.Del(7).Empty())
	assert.True(t, m.Adjust(7, func(s string) string { return s + "!" }).Empty())
}

func TestSet_Get(t *testing.T) {
	t.Parallel()

	var (
		m     = New[int]()
		state = map[Key]int{}
	)

	for _, tcase := range []*struct {
		Key Key
		Val int
	}{
		{0, 1},
		{1, 2},
		{-1, 3},
		{1 << 40, 4},
		{-1 << 40, 5},
		{42, 6},
		{0, 7}, // replace
		{-9223372036854775808, 8},
		{9223372036854775807, 9},
		{-1, 10}, // replace
	} {
		tcase := tcase
		name := fmt.Sprintf("%d=%d", tcase.Key, tcase.Val)

		t.Run(name, func(t *testing.T) {
			m = m.Set(tcase.Key, tcase.Val)
			state[tcase.Key] = tcase.Val

			require.Equal(t, len(state), m.Len())

			// Get all the keys we set so far
			for key, val := range state {
				actual, ok := m.Get(key)

				assert.True(t, ok, key)
				assert.Equal(t, val, actual, key)
			}

			_, ok := m.Get(12345)
			assert.False(t, ok)
		})
	}
}

func TestSet_Persistence(t *testing.T) {
	t.Parallel()

	m1 := New[string]().Set(1, "a").Set(2, "b")
	m2 := m1.Set(2, "B").Set(3, "c")
	m3 := m1.Del(1)

	// the older versions are untouched
	assert.Equal(t, []Item[string]{{1, "a"}, {2, "b"}}, m1.Items())
	assert.Equal(t, []Item[string]{{1, "a"}, {2, "B"}, {3, "c"}}, m2.Items())
	assert.Equal(t, []Item[string]{{2, "b"}}, m3.Items())
}

func TestSet_Overwrite(t *testing.T) {
	t.Parallel()

	m := New[string]().Set(5, "x")

	assert.True(t, Equal(m.Set(7, "a").Set(7, "b"), m.Set(7, "b")))
}

func TestSetWith(t *testing.T) {
	t.Parallel()

	concat := func(old, new string) string { return old + new }

	m := New[string]().
		SetWith(concat, 1, "a").
		SetWith(concat, 1, "b").
		SetWith(concat, 1, "c")

	val, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "abc", val)
}

func TestSetWithKey(t *testing.T) {
	t.Parallel()

	f := func(k Key, old, new int) int { return int(k)*1000 + old + new }

	m := New[int]().Set(7, 1).SetWithKey(f, 7, 2)

	val, ok := m.Get(7)
	require.True(t, ok)
	assert.Equal(t, 7003, val)
}

func TestDel(t *testing.T) {
	t.Parallel()

	keys := []Key{-3, 0, 7, -1, 4, 1 << 33, -1 << 33}

	m := New[string]()
	for i, k := range keys {
		m = m.Set(k, fmt.Sprint(i))
	}

	for i, k := range keys {
		m = m.Del(k)

		_, ok := m.Get(k)
		assert.False(t, ok, k)
		assert.Equal(t, len(keys)-i-1, m.Len())
	}
	assert.True(t, m.Empty())
}

func TestDel_Absent(t *testing.T) {
	t.Parallel()

	m := New[int]().Set(1, 1).Set(2, 2)

	// deleting an absent key returns the map unchanged, sharing the
	// whole tree
	assert.True(t, m.root == m.Del(99).root)
	assert.True(t, m.root == m.Del(-1).root)
}

func TestDel_KeepsCanonicalShape(t *testing.T) {
	t.Parallel()

	// a map that has undergone deletions is structurally equal to one
	// built directly from the surviving keys
	var (
		keep  = []Key{-100, -1, 0, 3, 8, 1 << 50}
		extra = []Key{-50, -2, 1, 5, 9, 1<<50 + 1}
	)

	direct := New[int]()
	for _, k := range keep {
		direct = direct.Set(k, 0)
	}

	built := direct
	for _, k := range extra {
		built = built.Set(k, 0)
	}
	for _, k := range extra {
		built = built.Del(k)
	}

	assert.True(t, Equal(direct, built))
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	m := New[string]().Set(1, "a").Set(2, "b").Set(3, "c")

	// replace
	m1 := m.Update(2, func(s string) (string, bool) { return s + "!", true })
	val, ok := m1.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b!", val)

	// remove
	m2 := m.Update(2, func(string) (string, bool) { return "", false })
	_, ok = m2.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, m2.Len())
	assert.True(t, Equal(m2, New[string]().Set(1, "a").Set(3, "c")))

	// absent key: untouched
	m3 := m.Update(9, func(s string) (string, bool) { return "boom", true })
	assert.True(t, m.root == m3.root)
}

func TestUpdateWithKey(t *testing.T) {
	t.Parallel()

	m := New[string]().Set(7, "x").
		UpdateWithKey(7, func(k Key, v string) (string, bool) {
			return fmt.Sprintf("%d:%s", k, v), true
		})

	val, ok := m.Get(7)
	require.True(t, ok)
	assert.Equal(t, "7:x", val)
}

func TestAdjust(t *testing.T) {
	t.Parallel()

	inc := func(n int) int { return n + 1 }

	m := New[int]().Set(1, 10).Set(2, 20)

	m1 := m.Adjust(1, inc)
	val, _ := m1.Get(1)
	assert.Equal(t, 11, val)

	// absent key: no binding appears
	m2 := m.Adjust(3, inc)
	assert.Equal(t, 2, m2.Len())

	m3 := m.AdjustWithKey(2, func(k Key, v int) int { return int(k) + v })
	val, _ = m3.Get(2)
	assert.Equal(t, 22, val)
}

func TestLen(t *testing.T) {
	t.Parallel()

	m := New[int]()
	assert.Equal(t, 0, m.Len())

	m = m.Set(1, 1)
	assert.Equal(t, 1, m.Len())

	m = m.Set(1, 2) // replacing does not grow the map
	assert.Equal(t, 1, m.Len())

	m = m.Set(-1, 3)
	assert.Equal(t, 2, m.Len())
}

func TestCanonicalShape(t *testing.T) {
	t.Parallel()

	items := []Item[int]{{-3, 0}, {0, 1}, {7, 2}, {-1, 3}, {4, 4}, {1 << 45, 5}}

	perms := [][]int{
		{0, 1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1, 0},
		{2, 0, 4, 1, 5, 3},
		{3, 5, 0, 4, 2, 1},
	}

	base := New(items...)
	for i, perm := range perms {
		m := New[int]()
		for _, j := range perm {
			m = m.Set(items[j].Key, items[j].Val)
		}
		assert.True(t, Equal(base, m), "permutation %d", i)
	}
}

func TestKeyOrder(t *testing.T) {
	t.Parallel()

	// the walk is ascending by signed key: negatives come first
	m := New[string]().
		Set(-3, "a").
		Set(0, "b").
		Set(7, "c").
		Set(-1, "d").
		Set(4, "e")

	assert.Equal(t, []Item[string]{
		{-3, "a"}, {-1, "d"}, {0, "b"}, {4, "e"}, {7, "c"},
	}, m.Items())

	val, ok := m.Get(7)
	require.True(t, ok)
	assert.Equal(t, "c", val)

	_, ok = m.Get(2)
	assert.False(t, ok)
}

func TestKeyOrder_Extremes(t *testing.T) {
	t.Parallel()

	// keys straddling the sign bit and the int64 bounds
	keys := []Key{
		-9223372036854775808, // MinInt64
		-9223372036854775807,
		-1, 0, 1,
		9223372036854775806,
		9223372036854775807, // MaxInt64
	}

	m := New[int]()
	for i := len(keys) - 1; i >= 0; i-- {
		m = m.Set(keys[i], i)
	}

	assert.Equal(t, keys, m.Keys())

	for i, k := range keys {
		val, ok := m.Get(k)
		require.True(t, ok, k)
		assert.Equal(t, i, val, k)
	}

	// interleaved deletions keep the shape canonical
	pruned := m
	for i, k := range keys {
		if i%2 == 1 {
			pruned = pruned.Del(k)
		}
	}
	direct := New[int]()
	for i, k := range keys {
		if i%2 == 0 {
			direct = direct.Set(k, i)
		}
	}
	assert.True(t, Equal(pruned, direct))
	assert.True(t, Difference(m, m).Empty())
}

func TestRandom_AgainstGoMap(t *testing.T) {
	t.Parallel()

	var (
		fake  = gofakeit.New(7)
		m     = New[int64]()
		state = map[Key]int64{}
	)

	// mixed inserts, overwrites and deletes over a small key range to
	// force collisions
	for i := 0; i < 10000; i++ {
		k := Key(fake.Number(-500, 500))

		switch fake.Number(0, 2) {
		case 0, 1:
			v := fake.Int64()
			m = m.Set(k, v)
			state[k] = v
		default:
			m = m.Del(k)
			delete(state, k)
		}
	}

	require.Equal(t, len(state), m.Len())

	for k, v := range state {
		actual, ok := m.Get(k)
		require.True(t, ok, k)
		require.Equal(t, v, actual, k)
	}

	// the enumeration is strictly ascending with no duplicates
	items := m.Items()
	for i := 1; i < len(items); i++ {
		require.Less(t, items[i-1].Key, items[i].Key)
	}
}
