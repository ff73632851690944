package vtree

import "iter"

// visit is a stack entry of the post-order walk: going down into a node, or
// coming back up to it once all its children have been emitted.
type visit struct {
	up    bool
	index int
}

// view is what makes one Iter differ from another: where children are read
// and what is handed to the caller for each emitted node.
type view[P any] interface {
	children(index int) []int
	proxy(index, depth int) P
}

// Iter is a post-order, depth-first, left-to-right walk. Each call to Next
// runs to the next emitted node; a node is emitted after all its children.
// Depths are zero-based from the node the walk started at. An Iter can't be
// rewound; start a new one to walk again.
type Iter[P any] struct {
	stack   []visit
	depth   int
	next    visit
	pending bool
	view    view[P]
}

func newIter[P any](v view[P], top int) *Iter[P] {
	it := &Iter[P]{view: v}
	if top != None {
		it.next = visit{index: top}
		it.pending = true
	}
	return it
}

// Next returns the next node in post order, or false once the walk is done.
func (it *Iter[P]) Next() (P, bool) {
	for it.pending {
		emit, index := false, it.next.index
		if it.next.up {
			it.depth--
			emit = true
		} else if children := it.view.children(index); len(children) == 0 {
			emit = true
		} else {
			it.depth++
			it.stack = append(it.stack, visit{up: true, index: index})
			for i := len(children) - 1; i >= 0; i-- {
				it.stack = append(it.stack, visit{index: children[i]})
			}
		}
		if n := len(it.stack); n > 0 {
			it.next = it.stack[n-1]
			it.stack = it.stack[:n-1]
		} else {
			it.pending = false
		}
		if emit {
			return it.view.proxy(index, it.depth), true
		}
	}
	var zero P
	return zero, false
}

// scoped is implemented by proxies that All releases when the loop body
// returns.
type scoped interface {
	endScope()
}

// All returns the remaining nodes as a sequence for range loops. Write
// proxies with children access are released as each loop body returns,
// unless the body retained them.
func (it *Iter[P]) All() iter.Seq[P] {
	return func(yield func(P) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yieldScoped(yield, p) {
				return
			}
		}
	}
}

func yieldScoped[P any](yield func(P) bool, p P) bool {
	if s, ok := any(p).(scoped); ok {
		defer s.endScope()
	}
	return yield(p)
}

// All walks the whole tree from its root, giving read access to each node.
func (t *Tree[T]) All() iter.Seq[NodeRef[T]] {
	return t.Traverse().All()
}

// Traverse walks the tree from its root with read access to each node.
func (t *Tree[T]) Traverse() *Iter[NodeRef[T]] {
	return t.TraverseFrom(t.top(None))
}

// TraverseFrom walks the subtree at top with read access to each node.
func (t *Tree[T]) TraverseFrom(top int) *Iter[NodeRef[T]] {
	return newIter[NodeRef[T]](simpleView[T]{t.handle()}, top)
}

// TraverseMut walks the tree from its root with write access to each node.
func (t *Tree[T]) TraverseMut() *Iter[NodeMut[T]] {
	return t.TraverseMutFrom(t.top(None))
}

// TraverseMutFrom walks the subtree at top with write access to each node.
func (t *Tree[T]) TraverseMutFrom(top int) *Iter[NodeMut[T]] {
	return newIter[NodeMut[T]](simpleMutView[T]{t.handle()}, top)
}

// TraverseFull walks the tree from its root with read access to each node
// and to everything below it.
func (t *Tree[T]) TraverseFull() *Iter[NodeProxy[T]] {
	return t.TraverseFullFrom(t.top(None))
}

// TraverseFullFrom walks the subtree at top with read access to each node
// and to everything below it.
func (t *Tree[T]) TraverseFullFrom(top int) *Iter[NodeProxy[T]] {
	return newIter[NodeProxy[T]](fullView[T]{t.handle()}, top)
}

// TraverseFullMut walks the tree from its root with write access to each
// node and read access to everything below it.
func (t *Tree[T]) TraverseFullMut() *Iter[*NodeProxyMut[T]] {
	return t.TraverseFullMutFrom(t.top(None))
}

// TraverseFullMutFrom walks the subtree at top with write access to each
// node and read access to everything below it. Every proxy it yields counts
// as a live borrow of the tree until released; see NodeProxyMut.
func (t *Tree[T]) TraverseFullMutFrom(top int) *Iter[*NodeProxyMut[T]] {
	return newIter[*NodeProxyMut[T]](fullMutView[T]{t.handle()}, top)
}
