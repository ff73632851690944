package vtree

import "slices"

// FlatNode describes one node of a flattened tree: its payload and the
// positions of its children in the same flattened list.
type FlatNode[T any] struct {
	Value    T     `json:"value"`
	Children []int `json:"children,omitempty"`
}

// FromFlat builds a tree whose node i is nodes[i]. root may be None. Child
// positions and root must refer to entries of nodes.
//
//	tree := vtree.FromFlat(0, []vtree.FlatNode[string]{
//		{"root", []int{1, 2}},
//		{"a", []int{3, 4}},
//		{"b", nil},
//		{"a.1", nil},
//		{"a.2", nil},
//	})
//	// tree: root(a(a.1,a.2),b)
func FromFlat[T any](root int, nodes []FlatNode[T]) *Tree[T] {
	t := WithCapacity[T](len(nodes))
	for _, n := range nodes {
		for _, c := range n.Children {
			checkIndex("FromFlat", c, len(nodes))
		}
		t.nodes = append(t.nodes, Node[T]{value: n.Value, children: slices.Clone(n.Children)})
	}
	if root != None {
		t.SetRoot(root)
	}
	return t
}

// Flatten returns the arena as FromFlat takes it, root being None if unset.
func (t *Tree[T]) Flatten() (root int, nodes []FlatNode[T]) {
	nodes = make([]FlatNode[T], len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = FlatNode[T]{Value: n.value, Children: slices.Clone(n.children)}
	}
	root, _ = t.Root()
	return root, nodes
}
