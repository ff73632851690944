/*
Package vtree provides a generic tree stored in an arena and walked in
post order, where each visited node can be read or written and, through
the richer proxies, can also reach its children and its whole subtree.

Nodes live in one growable slice and refer to their children by index.
Nothing is ever removed: a tree grows by Add and friends, can be regrafted
by re-rooting or attaching existing nodes, and is emptied only by Clear.
An index stays valid until then.

Walks

Every walk is depth-first, left to right, and emits a node after all of its
children. Each visited node comes with its zero-based depth from where the
walk started. Four kinds of walk differ only in what they hand out:

	Traverse         NodeRef       read the payload
	TraverseMut      NodeMut       write the payload
	TraverseFull     NodeProxy     read the payload, children and subtree
	TraverseFullMut  NodeProxyMut  write the payload, read children and subtree

Because a post-order walk emits a node's descendants first, a caller of
TraverseFullMut may still hold write proxies on the very children it then
asks to read. Each NodeProxyMut is therefore counted as a borrow of its
tree while it is live, and reading children through one panics with
ErrAliasing unless it is the only one. Ranging over Iter.All releases each
proxy when the loop body returns; call Retain to keep one, and Release when
done with it.

While any NodeProxyMut is live the tree also refuses structural changes:
Add and its variants, the Attach methods, ChildrenMut, AddFromTree and
Clear panic with ErrBorrowed. Payload writes through GetMut stay allowed.

Only one TraverseFullMut walk should be in progress at a time. Nothing
stops a second one from being started, but its proxies count as borrows
too, so children reads from either walk will fail with ErrAliasing until
they are released.

Copying

AddFromTree and AddFromIter rebuild a post-order sequence of nodes in
another place, possibly in the same tree, using each node's child count to
reassemble the shape.

Errors

Misuse, such as an out-of-range index or a children read while aliased, is
a programming error and panics with one of the Err values of this package,
possibly wrapped. Operations that can fail at run time for other reasons,
like Fingerprint, return an error.

Concurrency

A Tree is not safe for concurrent use. Clone makes an independent copy that
can be handed to another goroutine.
*/
package vtree
