package tree

import (
	"bytes"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// PrintTreeStructure prints the tree in a human-readable format
// (level-order traversal).
func (t *Tree) PrintTreeStructure() {
	if t.Root.Size == 0 {
		t.Logger.Infof("Tree is empty")
		return
	}

	queue := []*Node{t.Root}
	level := 0
	for len(queue) > 0 {
		levelSize := len(queue)
		for i := 0; i < levelSize; i++ {
			node := queue[0]
			queue = queue[1:]

			t.Logger.Infof("Level %d: %v (size %d)", level, node.Keys, node.Size)

			if !node.IsLeaf {
				queue = append(queue, node.Children...)
			}
		}
		level++
	}
}

// ValidateTree checks if the tree adheres to the B-tree properties and
// the size augmentation, reporting violations through the logger
// instead of panicking.
func (t *Tree) ValidateTree() bool {
	return t.validateNode(t.Root, true)
}

// validateNode recursively checks one node and its children.
func (t *Tree) validateNode(node *Node, isRoot bool) bool {
	// Check key count
	if !isRoot && (len(node.Keys) < t.minKeys() || len(node.Keys) > t.maxKeys()) {
		t.Logger.Errorf("Invalid node: key count %d is outside range [%d, %d]",
			len(node.Keys), t.minKeys(), t.maxKeys())
		return false
	}

	// Check if keys are sorted
	for i := 1; i < len(node.Keys); i++ {
		if t.Comparator(node.Keys[i-1], node.Keys[i]) >= 0 {
			t.Logger.Errorf("Invalid node: keys are not sorted (%v)", node.Keys)
			return false
		}
	}

	size := len(node.Keys)
	if !node.IsLeaf {
		if len(node.Children) != len(node.Keys)+1 {
			t.Logger.Errorf("Invalid node: %d keys with %d children", len(node.Keys), len(node.Children))
			return false
		}
		for _, child := range node.Children {
			if !t.validateNode(child, false) {
				return false
			}
			size += child.Size
		}
	}

	// Check the size augmentation
	if node.Size != size {
		t.Logger.Errorf("Invalid node: size %d does not match contents %d", node.Size, size)
		return false
	}

	return true
}

// ToString returns a string representation of the tree (for debugging).
func (t *Tree) ToString() string {
	var buffer bytes.Buffer
	buffer.WriteString(fmt.Sprintf("Tree (degree=%d, size=%d, height=%d):\n", t.Degree, t.Size(), t.Height()))
	t.printNodeToString(&buffer, t.Root, 0)
	return buffer.String()
}

// printNodeToString recursively writes node information to a buffer.
func (t *Tree) printNodeToString(buffer *bytes.Buffer, node *Node, level int) {
	if node == nil {
		return
	}

	buffer.WriteString(fmt.Sprintf("Level %d: %v\n", level, node.Keys))
	for _, child := range node.Children {
		t.printNodeToString(buffer, child, level+1)
	}
}

// Dump returns a deep rendering of the node structure.
func (t *Tree) Dump() string {
	return spew.Sdump(t.Root)
}
