package vtree

import (
	"errors"
	"fmt"
)

// Contract violations. The tree panics with one of these (possibly wrapped);
// use errors.Is on the recovered value to tell them apart.
var (
	// ErrOutOfRange indicates an index that doesn't refer to an existing node.
	ErrOutOfRange = errors.New("node index out of range")

	// ErrAliasing indicates a children read on a write proxy while other
	// write proxies are still live.
	ErrAliasing = errors.New("pending mutable reference(s) on children")

	// ErrBorrowed indicates a structural reset while write proxies are live.
	ErrBorrowed = errors.New("tree is borrowed by live node proxies")

	// ErrMalformedSequence indicates a copy input whose child counts don't
	// collapse to exactly one root.
	ErrMalformedSequence = errors.New("something is wrong with the structure of the provided items")

	// ErrStale indicates a proxy or iterator used after its tree was cleared.
	ErrStale = errors.New("node proxy used after its tree was cleared")

	// ErrReleased indicates a write proxy used after Release.
	ErrReleased = errors.New("node proxy used after release")
)

// ErrNoRoot is returned when an operation needs a start node and the tree
// has no root.
var ErrNoRoot = errors.New("tree has no root")

// IndexError is the panic value for an out-of-range index.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: node index %d doesn't exist (len %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func checkIndex(op string, index, n int) {
	if index < 0 || index >= n {
		panic(&IndexError{Op: op, Index: index, Len: n})
	}
}

func aliasingError(extra int) error {
	return fmt.Errorf("%d extra %w when requesting immutable references on them", extra, ErrAliasing)
}
