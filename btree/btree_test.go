package btree_test

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"memdex/btree"
)

func keysOf(t *testing.T, n *btree.Node[int]) []int {
	t.Helper()
	out := make([]int, 0, n.KeyCount())
	for i := 0; i < n.KeyCount(); i++ {
		k, err := n.Key(i)
		if err != nil {
			t.Fatalf("Key(%d) failed: %v", i, err)
		}
		out = append(out, k)
	}
	return out
}

func childOf(t *testing.T, n *btree.Node[int], i int) *btree.Node[int] {
	t.Helper()
	c, err := n.Child(i)
	if err != nil {
		t.Fatalf("Child(%d) failed: %v", i, err)
	}
	return c
}

// checkInvariants walks the whole tree and validates the classical
// B-tree properties: uniform leaf depth, occupancy bounds for non-root
// nodes, child count = key count + 1 for internal nodes, and a globally
// sorted in-order sequence.
func checkInvariants(t *testing.T, tree *btree.Tree[int]) {
	t.Helper()

	root := tree.Root()
	if root == nil {
		if tree.Len() != 0 {
			t.Fatalf("nil root but Len() = %d", tree.Len())
		}
		return
	}

	leafDepth := -1
	var walk func(n *btree.Node[int], depth int, isRoot bool)
	walk = func(n *btree.Node[int], depth int, isRoot bool) {
		if !isRoot {
			if n.KeyCount() < tree.MinKeys() || n.KeyCount() > tree.MaxKeys() {
				t.Errorf("node at depth %d has %d keys, want %d..%d",
					depth, n.KeyCount(), tree.MinKeys(), tree.MaxKeys())
			}
		}
		if n.IsLeaf() {
			if n.ChildCount() != 0 {
				t.Errorf("leaf at depth %d has %d children", depth, n.ChildCount())
			}
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				t.Errorf("leaf at depth %d, want all leaves at depth %d", depth, leafDepth)
			}
			return
		}
		if n.ChildCount() != n.KeyCount()+1 {
			t.Errorf("internal node at depth %d has %d keys but %d children",
				depth, n.KeyCount(), n.ChildCount())
		}
		for i := 0; i < n.ChildCount(); i++ {
			walk(childOf(t, n, i), depth+1, false)
		}
	}
	walk(root, 0, true)

	keys := tree.Keys()
	if !sort.IntsAreSorted(keys) {
		t.Errorf("in-order traversal is not sorted: %v", keys)
	}
	if len(keys) != tree.Len() {
		t.Errorf("traversal yielded %d keys, Len() = %d", len(keys), tree.Len())
	}
}

func TestNewRejectsSmallDegree(t *testing.T) {
	for _, degree := range []int{-1, 0, 1} {
		if _, err := btree.New[int](degree); err == nil {
			t.Errorf("New(%d) succeeded, want error", degree)
		}
	}
}

func TestNewWithRoot(t *testing.T) {
	tree, err := btree.NewWithRoot(2, 42)
	if err != nil {
		t.Fatalf("NewWithRoot failed: %v", err)
	}
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tree.Len())
	}
	if _, _, found := tree.Search(42); !found {
		t.Error("seeded root key not found")
	}
	if !tree.Root().IsLeaf() {
		t.Error("seeded root should be a leaf")
	}
}

func TestSearchEmptyTree(t *testing.T) {
	tree, err := btree.New[int](2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, _, found := tree.Search(7); found {
		t.Error("search on empty tree reported a hit")
	}
}

// Degree 2, inserting 8,9,10,11,15,16,17,18,20,23 in order must produce
// root [11] with left subtree [9]->[8],[10] and right subtree
// [16 18]->[15],[17],[20 23].
func TestInsertShapeDegree2(t *testing.T) {
	tree, err := btree.New[int](2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range []int{8, 9, 10, 11, 15, 16, 17, 18, 20, 23} {
		tree.Insert(k)
	}

	root := tree.Root()
	if got := keysOf(t, root); !reflect.DeepEqual(got, []int{11}) {
		t.Fatalf("root keys = %v, want [11]", got)
	}

	left := childOf(t, root, 0)
	if got := keysOf(t, left); !reflect.DeepEqual(got, []int{9}) {
		t.Errorf("left subtree keys = %v, want [9]", got)
	}
	if got := keysOf(t, childOf(t, left, 0)); !reflect.DeepEqual(got, []int{8}) {
		t.Errorf("left/0 keys = %v, want [8]", got)
	}
	if got := keysOf(t, childOf(t, left, 1)); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("left/1 keys = %v, want [10]", got)
	}

	right := childOf(t, root, 1)
	if got := keysOf(t, right); !reflect.DeepEqual(got, []int{16, 18}) {
		t.Errorf("right subtree keys = %v, want [16 18]", got)
	}
	if got := keysOf(t, childOf(t, right, 0)); !reflect.DeepEqual(got, []int{15}) {
		t.Errorf("right/0 keys = %v, want [15]", got)
	}
	if got := keysOf(t, childOf(t, right, 1)); !reflect.DeepEqual(got, []int{17}) {
		t.Errorf("right/1 keys = %v, want [17]", got)
	}
	if got := keysOf(t, childOf(t, right, 2)); !reflect.DeepEqual(got, []int{20, 23}) {
		t.Errorf("right/2 keys = %v, want [20 23]", got)
	}

	checkInvariants(t, tree)
}

// Degree 3, inserting 8,9,10,11,15,20,17 in order. The sixth insertion
// finds the root full at its 2t-1 = 5 key maximum and splits it on the
// median 10, so the tree ends as root [10] with leaf children [8 9] and
// [11 15 17 20]. A deeper shape is impossible here: at t=3 a two-level
// subtree root with a single key would sit below the t-1 key minimum.
func TestInsertShapeDegree3(t *testing.T) {
	tree, err := btree.New[int](3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range []int{8, 9, 10, 11, 15, 20, 17} {
		tree.Insert(k)
	}

	root := tree.Root()
	if got := keysOf(t, root); !reflect.DeepEqual(got, []int{10}) {
		t.Fatalf("root keys = %v, want [10]", got)
	}
	if root.ChildCount() != 2 {
		t.Fatalf("root has %d children, want 2", root.ChildCount())
	}

	left := childOf(t, root, 0)
	if !left.IsLeaf() {
		t.Error("left child should be a leaf")
	}
	if got := keysOf(t, left); !reflect.DeepEqual(got, []int{8, 9}) {
		t.Errorf("left child keys = %v, want [8 9]", got)
	}

	right := childOf(t, root, 1)
	if !right.IsLeaf() {
		t.Error("right child should be a leaf")
	}
	if got := keysOf(t, right); !reflect.DeepEqual(got, []int{11, 15, 17, 20}) {
		t.Errorf("right child keys = %v, want [11 15 17 20]", got)
	}

	checkInvariants(t, tree)
}

func TestSearchMissOnAdjacentValue(t *testing.T) {
	tree, err := btree.New[float64](2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range []float64{8, 9, 10, 11, 15, 16, 17, 18, 20, 23} {
		tree.Insert(k)
	}
	if _, _, found := tree.Search(11.0000001); found {
		t.Error("search hit for 11.0000001, which was never inserted")
	}
	if _, _, found := tree.Search(11); !found {
		t.Error("search miss for 11, which was inserted")
	}
}

func TestSearchAfterRandomInserts(t *testing.T) {
	const count = 2000
	rng := rand.New(rand.NewSource(1))

	tree, err := btree.New[int](3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	inserted := make([]int, 0, count)
	for _, k := range rng.Perm(count * 2) {
		if len(inserted) == count {
			break
		}
		if k%2 == 0 {
			tree.Insert(k)
			inserted = append(inserted, k)
		}
	}

	for _, k := range inserted {
		node, i, found := tree.Search(k)
		if !found {
			t.Fatalf("key %d not found after insert", k)
		}
		got, err := node.Key(i)
		if err != nil {
			t.Fatalf("Key(%d) failed: %v", i, err)
		}
		if got != k {
			t.Fatalf("search for %d landed on key %d", k, got)
		}
	}

	// Odd keys were never inserted.
	for k := 1; k < count*2; k += 2 {
		if _, _, found := tree.Search(k); found {
			t.Fatalf("key %d found but never inserted", k)
		}
	}

	checkInvariants(t, tree)
}

func TestInvariantsAcrossDegrees(t *testing.T) {
	for _, degree := range []int{2, 3, 5, 8} {
		tree, err := btree.New[int](degree)
		if err != nil {
			t.Fatalf("New(%d) failed: %v", degree, err)
		}
		rng := rand.New(rand.NewSource(int64(degree)))
		for _, k := range rng.Perm(1000) {
			tree.Insert(k)
		}
		checkInvariants(t, tree)
	}
}

func TestSplitPromotesMedian(t *testing.T) {
	const degree = 4
	tree, err := btree.New[int](degree)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Fill the root to its 2t-1 key maximum, then one more insertion
	// forces the root split.
	for k := 1; k <= tree.MaxKeys(); k++ {
		tree.Insert(k)
	}
	if tree.Height() != 1 {
		t.Fatalf("height = %d before split, want 1", tree.Height())
	}

	tree.Insert(tree.MaxKeys() + 1)

	root := tree.Root()
	if root.KeyCount() != 1 {
		t.Fatalf("root has %d keys after split, want 1", root.KeyCount())
	}
	median, err := root.Key(0)
	if err != nil {
		t.Fatalf("Key(0) failed: %v", err)
	}
	if median != degree {
		t.Errorf("promoted median = %d, want %d", median, degree)
	}
	if root.ChildCount() != 2 {
		t.Fatalf("root has %d children after split, want 2", root.ChildCount())
	}
	if got := childOf(t, root, 0).KeyCount(); got != degree-1 {
		t.Errorf("left half has %d keys, want %d", got, degree-1)
	}
	// The right half absorbed the insertion that triggered the split.
	if got := childOf(t, root, 1).KeyCount(); got != degree {
		t.Errorf("right half has %d keys, want %d", got, degree)
	}

	checkInvariants(t, tree)
}

func TestDuplicateKeysAllowed(t *testing.T) {
	tree, err := btree.New[int](2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range []int{5, 3, 5, 7, 5} {
		tree.Insert(k)
	}
	if tree.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tree.Len())
	}
	want := []int{3, 5, 5, 5, 7}
	if got := tree.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	checkInvariants(t, tree)
}

func TestTraverseOrder(t *testing.T) {
	tree, err := btree.New[int](2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(7))
	for _, k := range rng.Perm(500) {
		tree.Insert(k)
	}

	var got []int
	tree.TraverseInOrder(func(k int) {
		got = append(got, k)
	})
	if len(got) != 500 {
		t.Fatalf("traversal yielded %d keys, want 500", len(got))
	}
	for i, k := range got {
		if k != i {
			t.Fatalf("position %d holds %d, want %d", i, k, i)
		}
	}
}

func TestHeightGrowth(t *testing.T) {
	tree, err := btree.New[int](2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if tree.Height() != 0 {
		t.Errorf("empty tree height = %d, want 0", tree.Height())
	}
	for k := 0; k < 100; k++ {
		tree.Insert(k)
	}
	// 100 keys at degree 2 cannot fit in fewer than 4 levels.
	if h := tree.Height(); h < 4 {
		t.Errorf("height = %d after 100 inserts, want >= 4", h)
	}
	checkInvariants(t, tree)
}

func TestNodeIndexErrors(t *testing.T) {
	tree, err := btree.NewWithRoot(2, 10)
	if err != nil {
		t.Fatalf("NewWithRoot failed: %v", err)
	}
	root := tree.Root()

	if _, err := root.Key(1); !errors.Is(err, btree.ErrIndexOutOfRange) {
		t.Errorf("Key(1) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := root.Key(-1); !errors.Is(err, btree.ErrIndexOutOfRange) {
		t.Errorf("Key(-1) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := root.Child(0); !errors.Is(err, btree.ErrIndexOutOfRange) {
		t.Errorf("Child(0) on leaf error = %v, want ErrIndexOutOfRange", err)
	}
	if err := root.InsertKey(99, 5); !errors.Is(err, btree.ErrIndexOutOfRange) {
		t.Errorf("InsertKey at 5 error = %v, want ErrIndexOutOfRange", err)
	}
	if err := root.InsertChild(nil, 0); !errors.Is(err, btree.ErrNilNode) {
		t.Errorf("InsertChild(nil) error = %v, want ErrNilNode", err)
	}
	if err := root.AppendChild(nil); !errors.Is(err, btree.ErrNilNode) {
		t.Errorf("AppendChild(nil) error = %v, want ErrNilNode", err)
	}

	// The failed calls must not have mutated the node.
	if root.KeyCount() != 1 || root.ChildCount() != 0 {
		t.Errorf("node mutated by failed calls: %d keys, %d children",
			root.KeyCount(), root.ChildCount())
	}
}

func TestStringKeys(t *testing.T) {
	tree, err := btree.New[string](3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	words := []string{"pear", "apple", "plum", "fig", "cherry", "banana", "quince"}
	for _, w := range words {
		tree.Insert(w)
	}
	got := tree.Keys()
	want := append([]string(nil), words...)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
