package intmap

import "math/bits"

// Key is the key type of the map: a 64-bit signed integer. Only the
// two's-complement bit pattern of a key is structurally relevant.
type Key = int64

type (
	// prefix is a key bit pattern in offset-binary form with every bit
	// at and below some branching bit cleared.
	prefix = uint64
	// bitmask has exactly one bit set, marking a branching-bit position.
	bitmask = uint64
)

const signBit = uint64(1) << 63

// upper converts a key to offset-binary form. Unsigned comparison of
// the converted patterns coincides with signed comparison of the keys,
// which makes the sign bit an ordinary (topmost) bit for the rest of
// the engine.
func upper(k Key) uint64 {
	return uint64(k) ^ signBit
}

// trim clears every bit of p at and below the mask position.
// m<<1-1 wraps to all-ones for the topmost mask, giving a zero prefix.
func trim(p prefix, m bitmask) prefix {
	return p &^ (m<<1 - 1)
}

// prefixOf returns the prefix a branch with mask m keeps for key k.
func prefixOf(k Key, m bitmask) prefix {
	return trim(upper(k), m)
}

// matchPrefix reports whether key k can live under a branch carrying
// the given prefix and mask.
func matchPrefix(p prefix, m bitmask, k Key) bool {
	return prefixOf(k, m) == p
}

// zeroBit reports whether the already-converted pattern p has the mask
// bit clear, i.e. belongs left of a branch splitting at m.
func zeroBit(p prefix, m bitmask) bool {
	return p&m == 0
}

// branchLeft reports whether key k goes into the left subtree of a
// branch splitting at bit m. Left holds the smaller keys.
func branchLeft(m bitmask, k Key) bool {
	return upper(k)&m == 0
}

// highestBit returns a mask of the most significant set bit of x.
// x must be non-zero.
func highestBit(x uint64) bitmask {
	return 1 << (63 - uint(bits.LeadingZeros64(x)))
}

// branchingBit returns the mask of the most significant bit at which
// k1 and k2 differ. The keys must differ.
func branchingBit(k1, k2 Key) bitmask {
	return highestBit(uint64(k1) ^ uint64(k2))
}

// maskLonger reports whether m1 marks a more significant bit than m2.
// A branch with a longer mask splits coarser and sits nearer the root.
func maskLonger(m1, m2 bitmask) bool {
	return m1 > m2
}
