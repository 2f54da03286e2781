package btree

import (
	"cmp"
	"errors"
)

var (
	// ErrIndexOutOfRange reports indexed access past the current key or
	// child count. It signals caller misuse, not a data-dependent failure.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilNode reports an attempt to link a nil child.
	ErrNilNode = errors.New("child node must not be nil")
)

// Node is an ordered run of keys plus, for internal nodes, one more child
// than keys. It is a dumb container: it shifts elements on insert but
// performs no ordering validation itself. The tree owns positional
// correctness and the splitting policy.
type Node[K cmp.Ordered] struct {
	keys     []K
	children []*Node[K]
	leaf     bool
}

// newNode preallocates both sequences to their B-tree bounds so inserts
// and splits never grow the backing arrays. The leaf flag is fixed for
// the node's lifetime: splits create fresh nodes instead of flipping it.
func newNode[K cmp.Ordered](degree int, leaf bool) *Node[K] {
	n := &Node[K]{
		keys: make([]K, 0, 2*degree-1),
		leaf: leaf,
	}
	if !leaf {
		n.children = make([]*Node[K], 0, 2*degree)
	}
	return n
}

func (n *Node[K]) KeyCount() int {
	return len(n.keys)
}

func (n *Node[K]) ChildCount() int {
	return len(n.children)
}

func (n *Node[K]) IsLeaf() bool {
	return n.leaf
}

// Key returns the i-th key of the node.
func (n *Node[K]) Key(i int) (K, error) {
	if i < 0 || i >= len(n.keys) {
		var zero K
		return zero, ErrIndexOutOfRange
	}
	return n.keys[i], nil
}

// Child returns the i-th child of the node.
func (n *Node[K]) Child(i int) (*Node[K], error) {
	if i < 0 || i >= len(n.children) {
		return nil, ErrIndexOutOfRange
	}
	return n.children[i], nil
}

// InsertKey places key at position i, shifting later keys right.
func (n *Node[K]) InsertKey(key K, i int) error {
	if i < 0 || i > len(n.keys) {
		return ErrIndexOutOfRange
	}
	n.insertKeyAt(i, key)
	return nil
}

// AppendKey places key after the current last key.
func (n *Node[K]) AppendKey(key K) {
	n.insertKeyAt(len(n.keys), key)
}

// InsertChild links child at position i, shifting later children right.
func (n *Node[K]) InsertChild(child *Node[K], i int) error {
	if child == nil {
		return ErrNilNode
	}
	if i < 0 || i > len(n.children) {
		return ErrIndexOutOfRange
	}
	n.insertChildAt(i, child)
	return nil
}

// AppendChild links child after the current last child.
func (n *Node[K]) AppendChild(child *Node[K]) error {
	if child == nil {
		return ErrNilNode
	}
	n.insertChildAt(len(n.children), child)
	return nil
}

func (n *Node[K]) insertKeyAt(i int, key K) {
	var zero K
	n.keys = append(n.keys, zero)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = key
}

func (n *Node[K]) insertChildAt(i int, child *Node[K]) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// InOrder visits every key in the subtree rooted at n in ascending
// order: child i, key i, and after the last key the final child.
func (n *Node[K]) InOrder(visit func(K)) {
	for i, key := range n.keys {
		if !n.leaf {
			n.children[i].InOrder(visit)
		}
		visit(key)
	}
	if !n.leaf && len(n.children) > 0 {
		n.children[len(n.children)-1].InOrder(visit)
	}
}
