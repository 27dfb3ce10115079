package main

import (
	"fmt"

	"github.com/aglyzov/go-pds/intmap"
)

func main() {
	m := intmap.New[string]()
	m = m.Set(-3, "a")
	m = m.Set(0, "b")
	m = m.Set(7, "c")
	m = m.Set(-1, "d")
	m = m.Set(4, "e")

	fmt.Println("items:", m.Items())

	if val, ok := m.Get(7); ok {
		fmt.Println("m[7] =", val)
	}
	if _, ok := m.Get(2); !ok {
		fmt.Println("m[2] is absent")
	}

	// writes leave the old version intact
	m2 := m.Set(0, "B").Del(-3)
	fmt.Println("old:", m.Items())
	fmt.Println("new:", m2.Items())

	// structural merges
	other := intmap.New[string]().Set(0, "z").Set(100, "q")
	fmt.Println("union:     ", m.UnionWith(func(a, b string) string { return a + b }, other).Items())
	fmt.Println("intersect: ", intmap.Intersection(m, other).Items())
	fmt.Println("difference:", intmap.Difference(m, other).Items())

	// in-order traversal
	m.Iter(func(k intmap.Key, v string) bool {
		fmt.Printf("  %d -> %s\n", k, v)
		return true
	})
}
