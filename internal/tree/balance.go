package tree

// ensureMinKeys prepares Children[index] to give up a key: a child
// holding only Degree-1 keys first gains one by borrowing from an
// immediate sibling or, when both siblings are minimal too, by merging
// with one. It returns the child to descend into, which may sit one
// slot to the left after a merge with the left sibling.
func (t *Tree) ensureMinKeys(parent *Node, index int) *Node {
	child := parent.Children[index]
	if len(child.Keys) >= t.Degree {
		return child
	}

	// Try to borrow from the left sibling
	if index > 0 && len(parent.Children[index-1].Keys) >= t.Degree {
		t.borrowFromLeftSibling(parent, index)
		return child
	}

	// Try to borrow from the right sibling
	if index < len(parent.Children)-1 && len(parent.Children[index+1].Keys) >= t.Degree {
		t.borrowFromRightSibling(parent, index)
		return child
	}

	// Merge with a sibling if borrowing failed
	if index == len(parent.Children)-1 {
		index--
	}
	t.mergeChildren(parent, index)
	return parent.Children[index]
}

// borrowFromLeftSibling rotates one key clockwise: the separator moves
// down into the deficient node and the left sibling's last key moves up
// to replace it. The donor's outermost child follows when internal.
func (t *Tree) borrowFromLeftSibling(parent *Node, index int) {
	node := parent.Children[index]
	leftSibling := parent.Children[index-1]

	t.Logger.Debugf("borrowFromLeftSibling: rotating through separator %d", parent.Keys[index-1])

	// Move parent's key down to node.
	node.Keys = append([]uint64{parent.Keys[index-1]}, node.Keys...)

	// Move left sibling's last key to parent.
	parent.Keys[index-1] = leftSibling.Keys[len(leftSibling.Keys)-1]
	leftSibling.Keys = leftSibling.Keys[:len(leftSibling.Keys)-1]

	if !node.IsLeaf {
		borrowedChild := leftSibling.Children[len(leftSibling.Children)-1]
		node.Children = append([]*Node{borrowedChild}, node.Children...)
		leftSibling.Children = leftSibling.Children[:len(leftSibling.Children)-1]
	}

	node.recomputeSize()
	leftSibling.recomputeSize()
}

// borrowFromRightSibling rotates one key counter-clockwise: the
// separator moves down into the deficient node and the right sibling's
// first key moves up to replace it.
func (t *Tree) borrowFromRightSibling(parent *Node, index int) {
	node := parent.Children[index]
	rightSibling := parent.Children[index+1]

	t.Logger.Debugf("borrowFromRightSibling: rotating through separator %d", parent.Keys[index])

	// Move parent's key down to node.
	node.Keys = append(node.Keys, parent.Keys[index])

	// Move right sibling's first key to parent.
	parent.Keys[index] = rightSibling.Keys[0]
	rightSibling.Keys = rightSibling.Keys[1:]

	// Move child pointer if not a leaf
	if !node.IsLeaf {
		borrowedChild := rightSibling.Children[0]
		node.Children = append(node.Children, borrowedChild)
		rightSibling.Children = rightSibling.Children[1:]
	}

	node.recomputeSize()
	rightSibling.recomputeSize()
}

// mergeChildren combines Children[index], the separator key at index,
// and Children[index+1] into a single node of 2*Degree-1 keys. Both
// children must be minimal. The parent loses a key and a child link but
// keeps its subtree size.
func (t *Tree) mergeChildren(parent *Node, index int) {
	leftChild := parent.Children[index]
	rightChild := parent.Children[index+1]

	t.Logger.Debugf("mergeChildren: merging around separator %d", parent.Keys[index])

	// Pull the separator down as the median of the combined node.
	leftChild.Keys = append(leftChild.Keys, parent.Keys[index])
	leftChild.Keys = append(leftChild.Keys, rightChild.Keys...)
	if !leftChild.IsLeaf {
		leftChild.Children = append(leftChild.Children, rightChild.Children...)
	}
	leftChild.recomputeSize()

	// Remove the separator key and the dead sibling's link from parent.
	parent.Keys = append(parent.Keys[:index], parent.Keys[index+1:]...)
	parent.Children = append(parent.Children[:index+1], parent.Children[index+2:]...)
}
