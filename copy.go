package vtree

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// AddFromTree copies the subtree of src at top into t and returns the index
// of the copied top node. top == None copies from the root of src. Unless
// parent is None, the copy becomes the last child of parent. src may be t.
//
//	tree := vtree.New[string]()
//	root := tree.AddRoot("root")
//	a := tree.Add(root, "a")
//	b := tree.Add(root, "b")
//	tree.AddMany(a, "a1", "a2")
//	// tree: root(a(a1,a2),b)
//	other := tree.Clone()
//	tree.AddFromTree(b, other, a)
//	// tree: root(a(a1,a2),b(a(a1,a2)))
func (t *Tree[T]) AddFromTree(parent int, src *Tree[T], top int) int {
	return t.AddFromTreeFunc(parent, src, top, nil)
}

// AddFromTreeFunc is AddFromTree with a callback invoked for every copied
// node with its index in t, its index in src and its payload in src.
func (t *Tree[T]) AddFromTreeFunc(parent int, src *Tree[T], top int, f func(to, from int, item T)) int {
	return t.AddFromIterFunc(parent, src.TraverseFullFrom(src.top(top)).All(), f)
}

// AddFromIter rebuilds the nodes of a post-order walk in t and returns the
// index of the last one, which must be the only node left without a parent.
// Unless parent is None, it becomes the last child of parent.
func (t *Tree[T]) AddFromIter(parent int, items iter.Seq[NodeProxy[T]]) int {
	return t.AddFromIterFunc(parent, items, nil)
}

// AddFromIterFunc is AddFromIter with a callback invoked for every copied
// node with its index in t, its index in the source and its source payload.
// It panics with ErrMalformedSequence if the child counts of items don't
// describe exactly one tree, and with ErrBorrowed while any NodeProxyMut of t
// is live.
func (t *Tree[T]) AddFromIterFunc(parent int, items iter.Seq[NodeProxy[T]], f func(to, from int, item T)) int {
	t.checkBorrows("AddFromIter")
	if parent != None {
		checkIndex("AddFromIter", parent, len(t.nodes))
	}
	var stack []int
	for item := range items {
		value := item.Value()
		k := item.NumChildren()
		if f != nil {
			f(len(t.nodes), item.Index, value)
		}
		if k > len(stack) {
			panic(fmt.Errorf("node %d has %d children but only %d copied nodes are pending: %w",
				item.Index, k, len(stack), ErrMalformedSequence))
		}
		children := stack[len(stack)-k:]
		stack = stack[:len(stack)-k]
		var index int
		if k > 0 {
			index = t.AddWithExistingChildren(None, cloneValue(value), children...)
		} else {
			index = t.Add(None, cloneValue(value))
		}
		stack = append(stack, index)
	}
	if len(stack) != 1 {
		panic(fmt.Errorf("%d top nodes after copy: %w", len(stack), ErrMalformedSequence))
	}
	index := stack[0]
	if parent != None {
		t.nodes[parent].children = append(t.nodes[parent].children, index)
	}
	t.logger().Debug("copied subtree", zap.Int("top", index), zap.Int("parent", parent), zap.Int("len", len(t.nodes)))
	return index
}
