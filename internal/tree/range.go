package tree

import (
	"orderstat-btree/internal/prime"
)

// KeysInRange returns every stored key k with lo <= k <= hi, in
// ascending order. The result is nil when no key falls in the range.
func (t *Tree) KeysInRange(lo, hi uint64) []uint64 {
	var keys []uint64
	t.visitRange(t.Root, lo, hi, func(key uint64) {
		keys = append(keys, key)
	})
	return keys
}

// PrimesInRange returns every stored prime key in [lo, hi], in
// ascending order. The primality oracle runs only on keys the range
// traversal actually enumerates.
func (t *Tree) PrimesInRange(lo, hi uint64) []uint64 {
	var primes []uint64
	t.visitRange(t.Root, lo, hi, func(key uint64) {
		if prime.IsPrime(key) {
			primes = append(primes, key)
		}
	})
	return primes
}

// visitRange walks the subtree in order, calling visit for each key in
// [lo, hi]. Subtrees that cannot intersect the range are pruned on both
// ends: a child left of the descent point is entered only when its
// separator exceeds lo, and the walk stops at the first key beyond hi.
func (t *Tree) visitRange(node *Node, lo, hi uint64, visit func(uint64)) {
	if lo > hi || node.Size == 0 {
		return
	}
	i := 0
	for ; i < len(node.Keys); i++ {
		key := node.Keys[i]
		if !node.IsLeaf && t.Comparator(key, lo) > 0 {
			t.visitRange(node.Children[i], lo, hi, visit)
		}
		if t.Comparator(key, hi) > 0 {
			return
		}
		if t.Comparator(key, lo) >= 0 {
			visit(key)
		}
	}
	if !node.IsLeaf {
		t.visitRange(node.Children[i], lo, hi, visit)
	}
}
