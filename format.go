package vtree

import (
	"fmt"
	"strings"
)

// String renders the tree from its root as root(a(a1,a2),b), each payload
// formatted with %v, or "None" if there is no root.
func (t *Tree[T]) String() string {
	return t.Format(None)
}

// Format renders the subtree at top like String. top == None means the root.
func (t *Tree[T]) Format(top int) string {
	var stack []string
	for n := range t.TraverseFullFrom(t.top(top)).All() {
		k := n.NumChildren()
		s := fmt.Sprint(n.Value())
		if k > 0 {
			s += "(" + strings.Join(stack[len(stack)-k:], ",") + ")"
			stack = stack[:len(stack)-k]
		}
		stack = append(stack, s)
	}
	if len(stack) == 0 {
		return "None"
	}
	return stack[0]
}
