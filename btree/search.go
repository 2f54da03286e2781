package btree

// Search looks key up in the tree. On a hit it returns the node holding
// the key and the key's index inside that node. An empty tree reports a
// miss, not an error.
func (t *Tree[K]) Search(key K) (*Node[K], int, bool) {
	if t.root == nil {
		return nil, 0, false
	}
	return t.searchNode(t.root, key)
}

func (t *Tree[K]) searchNode(n *Node[K], key K) (*Node[K], int, bool) {
	i := 0
	for i < len(n.keys) && key > n.keys[i] {
		i++
	}

	if i < len(n.keys) && key == n.keys[i] {
		return n, i, true
	}

	// keys[i-1] < key < keys[i], so on a leaf the key cannot exist.
	if n.leaf {
		return nil, 0, false
	}

	// Descend into the child bracketed by keys[i-1] and keys[i], or the
	// last child when key exceeds every key in this node.
	return t.searchNode(n.children[i], key)
}
