package tree

import (
	"orderstat-btree/pkg/logger"
)

// Tree is an order-statistic B-tree over distinct positive integer
// keys. The subtree-size augmentation on each node supports Rank and
// Select in O(t * log_t n). A Tree is not safe for concurrent use;
// callers that share an instance must provide their own mutual
// exclusion.
type Tree struct {
	Root       *Node                 // Root node, never nil
	Degree     int                   // Minimum degree of the tree
	Logger     *logger.Logger        // Logger for debugging
	Comparator func(a, b uint64) int // Key comparator (default: ascending order)
}

// NewTree creates a new order-statistic B-tree with the given minimum
// degree and logger. The empty tree is a single keyless leaf root.
func NewTree(degree int, log *logger.Logger) *Tree {
	if degree < 2 {
		log.Panicf("degree must be at least 2")
	}
	return &Tree{
		Degree: degree,
		Root:   &Node{IsLeaf: true},
		Comparator: func(a, b uint64) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		},
		Logger: log,
	}
}

// maxKeys is the key capacity of a node.
func (t *Tree) maxKeys() int { return 2*t.Degree - 1 }

// minKeys is the key floor of every non-root node.
func (t *Tree) minKeys() int { return t.Degree - 1 }

// Size returns the number of keys stored in the tree.
func (t *Tree) Size() int { return t.Root.Size }

// Height returns the number of node levels. An empty tree has height 0.
func (t *Tree) Height() int {
	if t.Root.Size == 0 {
		return 0
	}
	h := 1
	for node := t.Root; !node.IsLeaf; node = node.Children[0] {
		h++
	}
	return h
}

// Search reports whether key is present in the tree.
func (t *Tree) Search(key uint64) bool {
	return t.contains(t.Root, key)
}

// contains searches for key in the subtree rooted at node.
func (t *Tree) contains(node *Node, key uint64) bool {
	i := 0
	for i < len(node.Keys) && t.Comparator(node.Keys[i], key) < 0 {
		i++
	}
	if i < len(node.Keys) && t.Comparator(node.Keys[i], key) == 0 {
		return true
	}
	if node.IsLeaf {
		return false
	}
	return t.contains(node.Children[i], key)
}

// Insert adds key to the tree. Inserting a key that is already present
// is a no-op; the tree stores a set. Keys must be positive.
func (t *Tree) Insert(key uint64) {
	if key < 1 {
		t.Logger.Panicf("Insert: key must be positive, got %d", key)
	}
	if t.contains(t.Root, key) {
		t.Logger.Debugf("Insert: key %d already present, ignoring", key)
		return
	}

	if len(t.Root.Keys) == t.maxKeys() {
		// Splitting a full root is the only way the tree grows in height.
		newRoot := &Node{
			Children: []*Node{t.Root},
			Size:     t.Root.Size,
		}
		t.splitChild(newRoot, 0)
		t.Root = newRoot
		t.Logger.Debugf("Insert: root split; new root keys: %v", newRoot.Keys)
	}

	t.insertNonFull(t.Root, key)
	t.Logger.Debugf("Insert: inserted key %d, tree size now %d", key, t.Root.Size)
}

// insertNonFull inserts key into the subtree rooted at a non-full node.
// The insertion is certain to land, so every node on the path counts it
// up front.
func (t *Tree) insertNonFull(node *Node, key uint64) {
	node.Size++
	i := len(node.Keys) - 1
	if node.IsLeaf {
		// Insert into a leaf node
		for i >= 0 && t.Comparator(node.Keys[i], key) > 0 {
			i--
		}
		node.Keys = append(node.Keys[:i+1], append([]uint64{key}, node.Keys[i+1:]...)...)
	} else {
		// Descend into an internal node
		for i >= 0 && t.Comparator(node.Keys[i], key) > 0 {
			i--
		}
		i++
		if len(node.Children[i].Keys) == t.maxKeys() {
			// Split the child if it's full
			t.splitChild(node, i)
			if t.Comparator(node.Keys[i], key) < 0 {
				i++
			}
		}
		t.insertNonFull(node.Children[i], key)
	}
}

// splitChild splits the full child of a node around its median key. The
// upper half of the child moves into a new right sibling and the median
// is promoted into the parent. The parent's subtree size is unchanged;
// the two halves recompute theirs.
func (t *Tree) splitChild(parent *Node, index int) {
	child := parent.Children[index]
	medianKey := child.Keys[t.Degree-1]

	newChild := &Node{
		Keys:   make([]uint64, t.Degree-1),
		IsLeaf: child.IsLeaf,
	}
	copy(newChild.Keys, child.Keys[t.Degree:])
	if !child.IsLeaf {
		newChild.Children = append(newChild.Children, child.Children[t.Degree:]...)
	}

	child.Keys = child.Keys[:t.Degree-1]
	if !child.IsLeaf {
		child.Children = child.Children[:t.Degree]
	}
	child.recomputeSize()
	newChild.recomputeSize()

	parent.Keys = append(parent.Keys[:index], append([]uint64{medianKey}, parent.Keys[index:]...)...)
	parent.Children = append(parent.Children[:index+1], append([]*Node{newChild}, parent.Children[index+1:]...)...)

	t.Logger.Debugf("splitChild: split child %d around median %d", index, medianKey)
}

// Delete removes key from the tree. Deleting an absent key is a no-op.
func (t *Tree) Delete(key uint64) {
	if !t.contains(t.Root, key) {
		t.Logger.Debugf("Delete: key %d not present, ignoring", key)
		return
	}

	t.deleteFrom(t.Root, key)
	if len(t.Root.Keys) == 0 && !t.Root.IsLeaf {
		// A root-level merge emptied the root; the tree shrinks by one
		// level. This is the only way the tree gets shorter.
		t.Root = t.Root.Children[0]
		t.Logger.Debugf("Delete: root emptied, new root keys: %v", t.Root.Keys)
	}
	t.Logger.Debugf("Delete: removed key %d, tree size now %d", key, t.Root.Size)
}

// deleteFrom removes key from the subtree rooted at node. The caller
// guarantees the key is present in the subtree and that node holds at
// least Degree keys unless it is the root, so the removal cannot
// underflow on the way down.
func (t *Tree) deleteFrom(node *Node, key uint64) {
	node.Size--
	i := 0
	for i < len(node.Keys) && t.Comparator(node.Keys[i], key) < 0 {
		i++
	}
	if i < len(node.Keys) && t.Comparator(node.Keys[i], key) == 0 {
		if node.IsLeaf {
			node.Keys = append(node.Keys[:i], node.Keys[i+1:]...)
			return
		}
		t.deleteInternal(node, i)
		return
	}
	if node.IsLeaf {
		t.Logger.Panicf("deleteFrom: key %d vanished during descent", key)
	}
	child := t.ensureMinKeys(node, i)
	t.deleteFrom(child, key)
}

// deleteInternal removes the key at index from an internal node, either
// by substituting its predecessor or successor, or by merging the two
// adjacent children around it.
func (t *Tree) deleteInternal(node *Node, index int) {
	key := node.Keys[index]
	leftChild := node.Children[index]
	rightChild := node.Children[index+1]

	if len(leftChild.Keys) >= t.Degree {
		pred := t.maxKey(leftChild)
		node.Keys[index] = pred
		t.deleteFrom(leftChild, pred)
		return
	}
	if len(rightChild.Keys) >= t.Degree {
		succ := t.minKey(rightChild)
		node.Keys[index] = succ
		t.deleteFrom(rightChild, succ)
		return
	}

	// Both children are minimal: absorb the key into their merge and
	// delete it there.
	t.mergeChildren(node, index)
	t.deleteFrom(node.Children[index], key)
}

// maxKey returns the largest key in the subtree rooted at node.
func (t *Tree) maxKey(node *Node) uint64 {
	current := node
	for !current.IsLeaf {
		current = current.Children[len(current.Children)-1]
	}
	return current.Keys[len(current.Keys)-1]
}

// minKey returns the smallest key in the subtree rooted at node.
func (t *Tree) minKey(node *Node) uint64 {
	current := node
	for !current.IsLeaf {
		current = current.Children[0]
	}
	return current.Keys[0]
}

// Min returns the smallest stored key; the second result is false when
// the tree is empty.
func (t *Tree) Min() (uint64, bool) {
	if t.Root.Size == 0 {
		return 0, false
	}
	return t.minKey(t.Root), true
}

// Max returns the largest stored key; the second result is false when
// the tree is empty.
func (t *Tree) Max() (uint64, bool) {
	if t.Root.Size == 0 {
		return 0, false
	}
	return t.maxKey(t.Root), true
}

// SetLogger replaces the tree's logger.
func (t *Tree) SetLogger(log *logger.Logger) {
	t.Logger = log
}
