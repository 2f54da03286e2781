// Package btree implements an in-memory B-tree of fixed minimum degree t.
// Every non-root node holds between t-1 and 2t-1 keys; insertion keeps the
// tree balanced by splitting full nodes on the way down, so no operation
// ever needs to walk back up to rebalance.
package btree

import (
	"cmp"
	"fmt"
)

// Tree owns the root node and the degree parameter. The zero number of
// keys is represented by a nil root; the root is created on the first
// insertion and replaced only when a full root must be split.
type Tree[K cmp.Ordered] struct {
	degree int
	root   *Node[K]
	size   int
}

// New creates an empty B-tree of minimum degree t (at least 2).
func New[K cmp.Ordered](degree int) (*Tree[K], error) {
	if degree < 2 {
		return nil, fmt.Errorf("B-tree degree must be at least 2")
	}
	return &Tree[K]{degree: degree}, nil
}

// NewWithRoot creates a B-tree pre-seeded with a single-key leaf root.
func NewWithRoot[K cmp.Ordered](degree int, rootKey K) (*Tree[K], error) {
	t, err := New[K](degree)
	if err != nil {
		return nil, err
	}
	t.root = newNode[K](degree, true)
	t.root.AppendKey(rootKey)
	t.size = 1
	return t, nil
}

// Degree is the minimum degree t of every node in this tree.
func (t *Tree[K]) Degree() int {
	return t.degree
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Len is the number of keys stored, counting duplicates.
func (t *Tree[K]) Len() int {
	return t.size
}

func (t *Tree[K]) MinKeys() int {
	return t.degree - 1
}

func (t *Tree[K]) MaxKeys() int {
	return 2*t.degree - 1
}

func (t *Tree[K]) MinChildren() int {
	return t.degree
}

func (t *Tree[K]) MaxChildren() int {
	return 2 * t.degree
}

// Height is the number of nodes on a root-to-leaf path; 0 for an empty
// tree. All leaves sit at the same depth, so the leftmost path suffices.
func (t *Tree[K]) Height() int {
	h := 0
	for n := t.root; n != nil; {
		h++
		if n.leaf {
			break
		}
		n = n.children[0]
	}
	return h
}

// isFull reports whether a node has reached the maximum number of keys.
func (t *Tree[K]) isFull(n *Node[K]) bool {
	return n.KeyCount() == t.MaxKeys()
}

// TraverseInOrder applies visit to every key in ascending order.
func (t *Tree[K]) TraverseInOrder(visit func(K)) {
	if t.root == nil {
		return
	}
	t.root.InOrder(visit)
}

// Keys collects the full ascending key sequence.
func (t *Tree[K]) Keys() []K {
	out := make([]K, 0, t.size)
	t.TraverseInOrder(func(key K) {
		out = append(out, key)
	})
	return out
}
