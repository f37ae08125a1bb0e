package tree

// Rank returns the 1-based position of key in ascending order. The
// second result is false when the key is absent.
func (t *Tree) Rank(key uint64) (int, bool) {
	rank := 0
	node := t.Root
	for {
		i := 0
		for i < len(node.Keys) && t.Comparator(node.Keys[i], key) < 0 {
			i++
		}
		// Everything left of the descent point precedes key: the keys
		// at indexes 0..i-1 and the subtrees hanging under them.
		rank += i
		if !node.IsLeaf {
			for j := 0; j < i; j++ {
				rank += node.Children[j].Size
			}
		}
		if i < len(node.Keys) && t.Comparator(node.Keys[i], key) == 0 {
			// The subtree left of the matching key precedes it as well.
			if !node.IsLeaf {
				rank += node.Children[i].Size
			}
			return rank + 1, true
		}
		if node.IsLeaf {
			return 0, false
		}
		node = node.Children[i]
	}
}

// Select returns the k-th smallest key (1-based). The second result is
// false when k is out of range.
func (t *Tree) Select(k int) (uint64, bool) {
	if k < 1 || k > t.Root.Size {
		return 0, false
	}
	node := t.Root
	for {
		if node.IsLeaf {
			return node.Keys[k-1], true
		}
		for i, child := range node.Children {
			if k <= child.Size {
				node = child
				break
			}
			k -= child.Size
			if i < len(node.Keys) {
				if k == 1 {
					return node.Keys[i], true
				}
				k--
			}
		}
	}
}
