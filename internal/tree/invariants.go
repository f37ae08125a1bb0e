package tree

// checkInvariants walks the whole subtree and panics through the logger
// on any violation of the structural rules: strict key ordering and
// separation, child counts, key-count bounds, the subtree-size
// augmentation, and uniform leaf depth. Intended for test harnesses; not
// called on hot paths (the validate command uses ValidateTree).
func (t *Tree) checkInvariants(node *Node) {
	if node == nil {
		t.Logger.Panicf("invariant violation: nil node")
	}
	t.checkSubtree(node, node == t.Root)
	if _, ok := t.uniformDepth(node); !ok {
		t.Logger.Panicf("invariant violation: leaves at unequal depths")
	}
}

// checkSubtree validates one node and recurses into its children.
func (t *Tree) checkSubtree(node *Node, isRoot bool) {
	if len(node.Keys) > t.maxKeys() {
		t.Logger.Panicf("invariant violation: node %v has %d keys, max is %d",
			node.Keys, len(node.Keys), t.maxKeys())
	}
	if !isRoot && len(node.Keys) < t.minKeys() {
		t.Logger.Panicf("invariant violation: node %v has %d keys, min is %d",
			node.Keys, len(node.Keys), t.minKeys())
	}
	for i := 1; i < len(node.Keys); i++ {
		if t.Comparator(node.Keys[i-1], node.Keys[i]) >= 0 {
			t.Logger.Panicf("invariant violation: keys not strictly ascending: %v", node.Keys)
		}
	}

	size := len(node.Keys)
	if node.IsLeaf {
		if len(node.Children) != 0 {
			t.Logger.Panicf("invariant violation: leaf %v has children", node.Keys)
		}
	} else {
		if len(node.Children) != len(node.Keys)+1 {
			t.Logger.Panicf("invariant violation: node %v has %d keys but %d children (expected %d)",
				node.Keys, len(node.Keys), len(node.Children), len(node.Keys)+1)
		}
		for i, child := range node.Children {
			if i < len(node.Keys) && t.Comparator(t.maxKey(child), node.Keys[i]) >= 0 {
				t.Logger.Panicf("invariant violation: child %d of %v not below separator %d",
					i, node.Keys, node.Keys[i])
			}
			if i > 0 && t.Comparator(t.minKey(child), node.Keys[i-1]) <= 0 {
				t.Logger.Panicf("invariant violation: child %d of %v not above separator %d",
					i, node.Keys, node.Keys[i-1])
			}
			t.checkSubtree(child, false)
			size += child.Size
		}
	}

	if node.Size != size {
		t.Logger.Panicf("invariant violation: node %v carries size %d, recomputed %d",
			node.Keys, node.Size, size)
	}
}

// uniformDepth reports the leaf depth of the subtree and whether every
// leaf sits at that same depth.
func (t *Tree) uniformDepth(node *Node) (int, bool) {
	if node.IsLeaf {
		return 1, true
	}
	depth, ok := t.uniformDepth(node.Children[0])
	if !ok {
		return 0, false
	}
	for _, child := range node.Children[1:] {
		d, ok := t.uniformDepth(child)
		if !ok || d != depth {
			return 0, false
		}
	}
	return depth + 1, true
}
