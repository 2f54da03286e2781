package btree

// Insert adds key to the tree, splitting full nodes before descending
// into them so the recursion never has to re-ascend. Inserting a key
// that is already present is allowed and gets no special handling: the
// duplicate lands adjacent to its twin in the in-order sequence.
func (t *Tree[K]) Insert(key K) {
	if t.root == nil {
		t.root = newNode[K](t.degree, true)
		t.root.AppendKey(key)
		t.size++
		return
	}

	// A full root is split preemptively under a new empty root. This is
	// the only way the tree gains a level.
	if t.isFull(t.root) {
		newRoot := newNode[K](t.degree, false)
		newRoot.insertChildAt(0, t.root)
		t.root = newRoot

		t.splitChild(newRoot, 0)
	}

	t.insertNonFull(t.root, key)
	t.size++
}

// insertNonFull inserts key below a node that is guaranteed not full.
func (t *Tree[K]) insertNonFull(n *Node[K], key K) {
	// Scan right to left for the position that keeps the keys ascending.
	i := len(n.keys) - 1
	for i >= 0 && key < n.keys[i] {
		i--
	}
	i++

	if n.leaf {
		n.insertKeyAt(i, key)
		return
	}

	if t.isFull(n.children[i]) {
		t.splitChild(n, i)

		// The promoted separator may redirect the descent one slot right.
		if key > n.keys[i] {
			i++
		}
	}

	t.insertNonFull(n.children[i], key)
}

// splitChild splits the full child at index i into two nodes of t-1 keys
// each, promoting the median key into parent at position i and linking
// the upper half as a new right sibling at i+1. The upper half is copied
// into a freshly allocated node before parent or child are mutated, so
// the split is all-or-nothing from the caller's point of view.
func (t *Tree[K]) splitChild(parent *Node[K], i int) {
	child := parent.children[i]
	median := child.keys[t.degree-1]

	right := newNode[K](t.degree, child.leaf)
	right.keys = append(right.keys, child.keys[t.degree:]...)
	if !child.leaf {
		right.children = append(right.children, child.children[t.degree:]...)
	}

	parent.insertChildAt(i+1, right)
	parent.insertKeyAt(i, median)

	child.keys = child.keys[:t.degree-1]
	if !child.leaf {
		child.children = child.children[:t.degree]
	}
}
