package vtree

import (
	"fmt"
	"iter"
)

// handle ties a view or a proxy to the tree generation it was created in.
type handle[T any] struct {
	t   *Tree[T]
	gen uint64
}

func (t *Tree[T]) handle() handle[T] {
	return handle[T]{t, t.generation}
}

func (h handle[T]) node(op string, index int) *Node[T] {
	if h.t.generation != h.gen {
		panic(fmt.Errorf("%s: %w", op, ErrStale))
	}
	checkIndex(op, index, len(h.t.nodes))
	return &h.t.nodes[index]
}

func (h handle[T]) children(index int) []int {
	return h.node("children", index).children
}

// childProxies yields the children of index as read proxies one level deeper.
func (h handle[T]) childProxies(index, depth int) iter.Seq[NodeProxy[T]] {
	return func(yield func(NodeProxy[T]) bool) {
		for _, c := range h.children(index) {
			h.node("child", c)
			if !yield(NodeProxy[T]{Index: c, Depth: depth + 1, h: h}) {
				return
			}
		}
	}
}

func (h handle[T]) childValues(index int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range h.children(index) {
			if !yield(h.node("child", c).value) {
				return
			}
		}
	}
}

// NodeRef gives read access to one node of a walk.
type NodeRef[T any] struct {
	Index int
	Depth int
	h     handle[T]
}

// Value returns the node's payload.
func (n NodeRef[T]) Value() T {
	return n.h.node("Value", n.Index).value
}

// NumChildren returns the number of children of the node.
func (n NodeRef[T]) NumChildren() int {
	return len(n.h.children(n.Index))
}

type simpleView[T any] struct{ handle[T] }

func (v simpleView[T]) proxy(index, depth int) NodeRef[T] {
	v.node("proxy", index)
	return NodeRef[T]{Index: index, Depth: depth, h: v.handle}
}

// NodeMut gives write access to one node of a walk, and to nothing else.
type NodeMut[T any] struct {
	Index int
	Depth int
	h     handle[T]
}

// Value returns the node's payload.
func (n NodeMut[T]) Value() T {
	return n.h.node("Value", n.Index).value
}

// Ptr returns a pointer to the node's payload.
func (n NodeMut[T]) Ptr() *T {
	return &n.h.node("Ptr", n.Index).value
}

// Set replaces the node's payload.
func (n NodeMut[T]) Set(v T) {
	n.h.node("Set", n.Index).value = v
}

type simpleMutView[T any] struct{ handle[T] }

func (v simpleMutView[T]) proxy(index, depth int) NodeMut[T] {
	v.node("proxy", index)
	return NodeMut[T]{Index: index, Depth: depth, h: v.handle}
}

// NodeProxy gives read access to one node and to everything below it.
type NodeProxy[T any] struct {
	Index int
	Depth int
	h     handle[T]
}

// Value returns the node's payload.
func (n NodeProxy[T]) Value() T {
	return n.h.node("Value", n.Index).value
}

// NumChildren returns the number of children of the node.
func (n NodeProxy[T]) NumChildren() int {
	return len(n.h.children(n.Index))
}

// Children yields a proxy for each child, in order.
func (n NodeProxy[T]) Children() iter.Seq[NodeProxy[T]] {
	return n.h.childProxies(n.Index, n.Depth)
}

// ChildValues yields the payload of each child, in order.
func (n NodeProxy[T]) ChildValues() iter.Seq[T] {
	return n.h.childValues(n.Index)
}

// Subtree starts a new walk of the subtree at this node. Its depths count
// from this node.
func (n NodeProxy[T]) Subtree() *Iter[NodeProxy[T]] {
	n.h.node("Subtree", n.Index)
	return newIter[NodeProxy[T]](fullView[T]{n.h}, n.Index)
}

type fullView[T any] struct{ handle[T] }

func (v fullView[T]) proxy(index, depth int) NodeProxy[T] {
	v.node("proxy", index)
	return NodeProxy[T]{Index: index, Depth: depth, h: v.handle}
}

// NodeProxyMut gives write access to one node and read access to everything
// below it.
//
// A post-order walk hands out the proxies of a node's descendants before the
// node's own, and the caller may still hold some of them. Reading children
// through a NodeProxyMut is therefore only allowed when it is the only live
// NodeProxyMut of its tree; otherwise Children, ChildValues and Subtree panic
// with ErrAliasing. A proxy is live from its creation until Release. When a
// walk is ranged over with Iter.All, proxies are released as each loop body
// returns unless Retain was called.
type NodeProxyMut[T any] struct {
	Index    int
	Depth    int
	h        handle[T]
	released bool
	retained bool
}

func (n *NodeProxyMut[T]) live(op string) *Node[T] {
	if n.released {
		panic(fmt.Errorf("%s: %w", op, ErrReleased))
	}
	return n.h.node(op, n.Index)
}

// guard panics unless n is the only live write proxy of its tree.
func (n *NodeProxyMut[T]) guard(op string) {
	n.live(op)
	if c := n.h.t.borrows; c != 1 {
		panic(fmt.Errorf("%s: %w", op, aliasingError(c-1)))
	}
}

// Value returns the node's payload.
func (n *NodeProxyMut[T]) Value() T {
	return n.live("Value").value
}

// Ptr returns a pointer to the node's payload, valid until Release. The tree
// refuses structural changes while the proxy is live.
func (n *NodeProxyMut[T]) Ptr() *T {
	return &n.live("Ptr").value
}

// Set replaces the node's payload.
func (n *NodeProxyMut[T]) Set(v T) {
	n.live("Set").value = v
}

// NumChildren returns the number of children of the node.
func (n *NodeProxyMut[T]) NumChildren() int {
	return len(n.live("NumChildren").children)
}

// Children yields a read proxy for each child, in order.
func (n *NodeProxyMut[T]) Children() iter.Seq[NodeProxy[T]] {
	n.guard("Children")
	seq := n.h.childProxies(n.Index, n.Depth)
	return func(yield func(NodeProxy[T]) bool) {
		n.guard("Children")
		seq(yield)
	}
}

// ChildValues yields the payload of each child, in order.
func (n *NodeProxyMut[T]) ChildValues() iter.Seq[T] {
	n.guard("ChildValues")
	seq := n.h.childValues(n.Index)
	return func(yield func(T) bool) {
		n.guard("ChildValues")
		seq(yield)
	}
}

// Subtree starts a new read walk of the subtree at this node. Its depths
// count from this node. Every step of the walk checks, like the first one,
// that n is still the only live write proxy.
func (n *NodeProxyMut[T]) Subtree() *Iter[NodeProxy[T]] {
	n.guard("Subtree")
	return newIter[NodeProxy[T]](guardedView[T]{fullView[T]{n.h}, n}, n.Index)
}

// guardedView is a fullView that re-runs the aliasing guard of its owner.
type guardedView[T any] struct {
	fullView[T]
	owner *NodeProxyMut[T]
}

func (v guardedView[T]) children(index int) []int {
	v.owner.guard("Subtree")
	return v.fullView.children(index)
}

func (v guardedView[T]) proxy(index, depth int) NodeProxy[T] {
	v.owner.guard("Subtree")
	return v.fullView.proxy(index, depth)
}

// Retain keeps the proxy live past the end of an Iter.All loop body. It must
// then be released explicitly.
func (n *NodeProxyMut[T]) Retain() {
	n.retained = true
}

// Release ends the proxy's borrow of the tree. Calling it again does nothing.
func (n *NodeProxyMut[T]) Release() {
	if n.released {
		return
	}
	n.released = true
	if n.h.t.generation == n.h.gen {
		n.h.t.borrows--
	}
}

func (n *NodeProxyMut[T]) endScope() {
	if !n.retained {
		n.Release()
	}
}

type fullMutView[T any] struct{ handle[T] }

func (v fullMutView[T]) proxy(index, depth int) *NodeProxyMut[T] {
	v.node("proxy", index)
	v.t.borrows++
	return &NodeProxyMut[T]{Index: index, Depth: depth, h: v.handle}
}
