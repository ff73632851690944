package vtree

import "go.uber.org/zap"

// SetLogger routes the tree's debug tracing to l. A nil l disables it, which
// is also the default.
func (t *Tree[T]) SetLogger(l *zap.Logger) {
	t.log = l
}

func (t *Tree[T]) logger() *zap.Logger {
	if t.log == nil {
		return zap.NewNop()
	}
	return t.log
}
