package vtree

import (
	"fmt"
	"iter"
	"slices"

	"go.uber.org/zap"
)

// None stands for "no index": no parent when adding, or the tree root when
// choosing where a copy or a fingerprint starts.
const None = -1

// Tree is an arena of nodes addressed by int indices. Nodes are only ever
// appended; an index stays valid until the whole tree is cleared. The zero
// value is an empty tree.
type Tree[T any] struct {
	nodes   []Node[T]
	root    int
	hasRoot bool
	// borrows counts the live NodeProxyMut handles.
	borrows    int
	generation uint64
	log        *zap.Logger
}

// Node is a slot of a Tree: one payload and the ordered indices of its children.
type Node[T any] struct {
	value    T
	children []int
}

// Cloner is implemented by payloads that need more than assignment to be
// copied into another tree.
type Cloner[T any] interface {
	Clone() T
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// WithCapacity returns an empty tree with room for n nodes. n is not a limit.
func WithCapacity[T any](n int) *Tree[T] {
	return &Tree[T]{nodes: make([]Node[T], 0, n)}
}

// Root returns the index of the root node, if there is one.
func (t *Tree[T]) Root() (int, bool) {
	if !t.hasRoot {
		return None, false
	}
	return t.root, true
}

// top resolves None to the root, which may itself be None.
func (t *Tree[T]) top(index int) int {
	if index == None {
		index, _ = t.Root()
	}
	return index
}

// SetRoot makes the node at index the root and returns index. Nodes that are
// no longer below the root stay in the arena and remain addressable.
func (t *Tree[T]) SetRoot(index int) int {
	checkIndex("SetRoot", index, len(t.nodes))
	t.root, t.hasRoot = index, true
	t.logger().Debug("root set", zap.Int("index", index))
	return index
}

// AddRoot adds a parentless node and makes it the root.
func (t *Tree[T]) AddRoot(item T) int {
	return t.SetRoot(t.Add(None, item))
}

// Add appends a node and returns its index. Unless parent is None, the node
// becomes the last child of parent. Add and the methods built on it panic
// with ErrBorrowed while any NodeProxyMut is live.
func (t *Tree[T]) Add(parent int, item T) int {
	t.checkBorrows("Add")
	index := len(t.nodes)
	if parent != None {
		checkIndex("Add", parent, index)
		t.nodes[parent].children = append(t.nodes[parent].children, index)
	}
	t.nodes = append(t.nodes, Node[T]{value: item})
	return index
}

// AddWithNewChild adds item and a new child node under it, returning the
// index of item.
func (t *Tree[T]) AddWithNewChild(parent int, item, child T) int {
	index := t.Add(parent, item)
	t.Add(index, child)
	return index
}

// AddWithExistingChild adds item with the existing node child as its only
// child, returning the index of item.
func (t *Tree[T]) AddWithExistingChild(parent int, item T, child int) int {
	checkIndex("AddWithExistingChild", child, len(t.nodes))
	index := t.Add(parent, item)
	t.nodes[index].children = append(t.nodes[index].children, child)
	return index
}

// AddWithExistingChildren adds item with existing nodes as its children,
// returning the index of item.
func (t *Tree[T]) AddWithExistingChildren(parent int, item T, children ...int) int {
	for _, c := range children {
		checkIndex("AddWithExistingChildren", c, len(t.nodes))
	}
	index := t.Add(parent, item)
	t.nodes[index].children = append(t.nodes[index].children, children...)
	return index
}

// AddMany adds every item under parent and returns their indices.
func (t *Tree[T]) AddMany(parent int, items ...T) []int {
	indices := make([]int, 0, len(items))
	for _, item := range items {
		indices = append(indices, t.Add(parent, item))
	}
	return indices
}

// AddWithNewChildren adds item and the children under it, returning the
// index of item.
func (t *Tree[T]) AddWithNewChildren(parent int, item T, children ...T) int {
	index := t.Add(parent, item)
	t.AddMany(index, children...)
	return index
}

// AttachChild appends the existing node child to the children of parent.
func (t *Tree[T]) AttachChild(parent, child int) {
	t.checkBorrows("AttachChild")
	checkIndex("AttachChild", parent, len(t.nodes))
	checkIndex("AttachChild", child, len(t.nodes))
	t.nodes[parent].children = append(t.nodes[parent].children, child)
}

// AttachChildren appends existing nodes to the children of parent.
func (t *Tree[T]) AttachChildren(parent int, children ...int) {
	t.checkBorrows("AttachChildren")
	checkIndex("AttachChildren", parent, len(t.nodes))
	for _, c := range children {
		checkIndex("AttachChildren", c, len(t.nodes))
	}
	t.nodes[parent].children = append(t.nodes[parent].children, children...)
}

// Len returns the number of nodes in the arena, reachable from the root or not.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// IsEmpty reports whether the arena holds no node.
func (t *Tree[T]) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Depth returns the zero-based depth of the deepest node below the root. It
// walks the whole tree. ok is false when there is no root.
func (t *Tree[T]) Depth() (depth int, ok bool) {
	for n := range t.All() {
		if !ok || n.Depth > depth {
			depth = n.Depth
		}
		ok = true
	}
	return depth, ok
}

// Get returns the payload at index.
func (t *Tree[T]) Get(index int) T {
	checkIndex("Get", index, len(t.nodes))
	return t.nodes[index].value
}

// GetMut returns a pointer to the payload at index. The pointer must not be
// kept across any Add or Clear.
func (t *Tree[T]) GetMut(index int) *T {
	checkIndex("GetMut", index, len(t.nodes))
	return &t.nodes[index].value
}

// Node returns the node at index.
func (t *Tree[T]) Node(index int) *Node[T] {
	checkIndex("Node", index, len(t.nodes))
	return &t.nodes[index]
}

// Children returns the child indices of the node at index. The slice must not
// be modified; use ChildrenMut for that.
func (t *Tree[T]) Children(index int) []int {
	checkIndex("Children", index, len(t.nodes))
	return slices.Clip(t.nodes[index].children)
}

// ChildrenMut returns the child list of the node at index for editing.
// Indices stored through it are validated when the tree is walked.
func (t *Tree[T]) ChildrenMut(index int) *[]int {
	t.checkBorrows("ChildrenMut")
	checkIndex("ChildrenMut", index, len(t.nodes))
	return &t.nodes[index].children
}

// Clear removes every node and the root. Like the other structural changes,
// it panics with ErrBorrowed if any NodeProxyMut is still live. Proxies created before the call become stale.
func (t *Tree[T]) Clear() {
	t.checkBorrows("Clear")
	t.logger().Debug("clear", zap.Int("len", len(t.nodes)), zap.Uint64("generation", t.generation))
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.root, t.hasRoot = 0, false
	t.generation++
}

// Clone returns an independent copy of the tree with no live proxies.
func (t *Tree[T]) Clone() *Tree[T] {
	nodes := make([]Node[T], len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = Node[T]{value: cloneValue(n.value), children: slices.Clone(n.children)}
	}
	return &Tree[T]{nodes: nodes, root: t.root, hasRoot: t.hasRoot, log: t.log}
}

// ChildNodes yields the child nodes of the node at index, in order.
func (t *Tree[T]) ChildNodes(index int) iter.Seq[*Node[T]] {
	checkIndex("ChildNodes", index, len(t.nodes))
	return func(yield func(*Node[T]) bool) {
		for _, c := range t.nodes[index].children {
			checkIndex("ChildNodes", c, len(t.nodes))
			if !yield(&t.nodes[c]) {
				return
			}
		}
	}
}

// checkBorrows panics unless no NodeProxyMut of t is live.
func (t *Tree[T]) checkBorrows(op string) {
	if t.borrows != 0 {
		panic(fmt.Errorf("%s: must release all %d node proxies first: %w", op, t.borrows, ErrBorrowed))
	}
}

// Value returns the payload of the node.
func (n *Node[T]) Value() T {
	return n.value
}

// HasChildren reports whether the node has at least one child.
func (n *Node[T]) HasChildren() bool {
	return len(n.children) > 0
}

// Children returns the child indices of the node. The slice must not be modified.
func (n *Node[T]) Children() []int {
	return slices.Clip(n.children)
}
