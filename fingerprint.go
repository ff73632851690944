package vtree

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/minio/blake2b-simd"
)

var defaultMarshal = json.Marshal

func appendLength(buf []byte, n int) []byte {
	var tmpbuf [binary.MaxVarintLen64]byte
	l := binary.PutUvarint(tmpbuf[:], uint64(n))
	return append(buf, tmpbuf[:l]...)
}

// Fingerprint returns a content hash of the subtree at top (None for the
// root). Two subtrees have the same fingerprint when they have the same shape
// and their payloads marshal to the same bytes, wherever they live. marshal
// defaults to json.Marshal.
//
// Each node hashes the length-prefixed marshaled payload, its number of
// children and its children's hashes, so the fingerprint of a node covers
// everything below it.
func (t *Tree[T]) Fingerprint(top int, marshal func(interface{}) ([]byte, error)) (string, error) {
	top = t.top(top)
	if top == None {
		return "", ErrNoRoot
	}
	if marshal == nil {
		marshal = defaultMarshal
	}
	var stack [][32]byte
	var buf []byte
	for n := range t.TraverseFullFrom(top).All() {
		body, err := marshal(n.Value())
		if err != nil {
			return "", fmt.Errorf("marshal node %d: %w", n.Index, err)
		}
		k := n.NumChildren()
		buf = appendLength(buf[:0], len(body))
		buf = append(buf, body...)
		buf = appendLength(buf, k)
		for _, h := range stack[len(stack)-k:] {
			buf = append(buf, h[:]...)
		}
		stack = append(stack[:len(stack)-k], blake2b.Sum256(buf))
	}
	return base64.RawURLEncoding.EncodeToString(stack[0][:]), nil
}
