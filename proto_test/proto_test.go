package proto_test

import (
	"testing"

	"github.com/jrhy/vtree"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func marshalProto(i interface{}) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(i.(*wrapperspb.StringValue))
}

func newTestTree() *vtree.Tree[*wrapperspb.StringValue] {
	tree := vtree.New[*wrapperspb.StringValue]()
	root := tree.AddRoot(wrapperspb.String("root"))
	a := tree.Add(root, wrapperspb.String("a"))
	tree.Add(root, wrapperspb.String("b"))
	tree.AddMany(a, wrapperspb.String("a1"), wrapperspb.String("a2"))
	return tree
}

func TestProtoPayloads(t *testing.T) {
	tree := newTestTree()
	var values []string
	for n := range tree.All() {
		values = append(values, n.Value().GetValue())
	}
	require.Equal(t, []string{"a1", "a2", "a", "b", "root"}, values)

	for n := range tree.TraverseMut().All() {
		n.Value().Value += "!"
	}
	require.Equal(t, "root!", tree.Get(0).GetValue())
}

func TestProtoFingerprint(t *testing.T) {
	f1, err := newTestTree().Fingerprint(vtree.None, marshalProto)
	require.NoError(t, err)

	other := vtree.New[*wrapperspb.StringValue]()
	other.AddFromTree(vtree.None, newTestTree(), vtree.None)
	root := other.Len() - 1
	other.SetRoot(root)
	f2, err := other.Fingerprint(vtree.None, marshalProto)
	require.NoError(t, err)
	require.Equal(t, f1, f2)

	*other.GetMut(0) = wrapperspb.String("A1")
	f3, err := other.Fingerprint(vtree.None, marshalProto)
	require.NoError(t, err)
	require.NotEqual(t, f1, f3)
}

func TestProtoCustomMarshal(t *testing.T) {
	tree := vtree.New[*wrapperspb.StringValue]()
	tree.AddRoot(wrapperspb.String("x"))
	_, err := tree.Fingerprint(vtree.None, func(i interface{}) ([]byte, error) {
		return proto.Marshal(wrapperspb.Int64(int64(len(i.(*wrapperspb.StringValue).GetValue()))))
	})
	require.NoError(t, err)
}
