package vtree

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
	"github.com/stretchr/testify/require"
)

// wideTree builds n nodes, each hanging under node i/4.
func wideTree(n int) *Tree[int] {
	tree := WithCapacity[int](n)
	tree.AddRoot(0)
	for i := 1; i < n; i++ {
		tree.Add((i-1)/4, i)
	}
	return tree
}

func benchmarkAdd(factor int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		wideTree(factor)
	}
}

func BenchmarkAdd1k(b *testing.B)   { benchmarkAdd(1_000, b) }
func BenchmarkAdd10k(b *testing.B)  { benchmarkAdd(10_000, b) }
func BenchmarkAdd100k(b *testing.B) { benchmarkAdd(100_000, b) }

func benchmarkTraverse(factor int, b *testing.B) {
	b.StopTimer()
	tree := wideTree(factor)
	b.StartTimer()
	for n := 0; n < b.N; n++ {
		sum := 0
		for node := range tree.All() {
			sum += node.Value()
		}
	}
}

func BenchmarkTraverse1k(b *testing.B)   { benchmarkTraverse(1_000, b) }
func BenchmarkTraverse10k(b *testing.B)  { benchmarkTraverse(10_000, b) }
func BenchmarkTraverse100k(b *testing.B) { benchmarkTraverse(100_000, b) }

func benchmarkTraverseFullMut(factor int, b *testing.B) {
	b.StopTimer()
	tree := wideTree(factor)
	b.StartTimer()
	for n := 0; n < b.N; n++ {
		for node := range tree.TraverseFullMut().All() {
			if node.NumChildren() > 0 {
				sum := 0
				for v := range node.ChildValues() {
					sum += v
				}
				node.Set(sum)
			}
		}
	}
}

func BenchmarkTraverseFullMut1k(b *testing.B)   { benchmarkTraverseFullMut(1_000, b) }
func BenchmarkTraverseFullMut10k(b *testing.B)  { benchmarkTraverseFullMut(10_000, b) }
func BenchmarkTraverseFullMut100k(b *testing.B) { benchmarkTraverseFullMut(100_000, b) }

func benchmarkCopy(factor int, b *testing.B) {
	b.StopTimer()
	src := wideTree(factor)
	b.StartTimer()
	for n := 0; n < b.N; n++ {
		dst := WithCapacity[int](factor)
		dst.SetRoot(dst.AddFromTree(None, src, None))
	}
}

func BenchmarkCopy1k(b *testing.B)   { benchmarkCopy(1_000, b) }
func BenchmarkCopy10k(b *testing.B)  { benchmarkCopy(10_000, b) }
func BenchmarkCopy100k(b *testing.B) { benchmarkCopy(100_000, b) }

func BenchmarkFingerprint10k(b *testing.B) {
	b.StopTimer()
	tree := wideTree(10_000)
	b.StartTimer()
	for n := 0; n < b.N; n++ {
		_, err := tree.Fingerprint(None, nil)
		require.NoError(b, err)
	}
}

func BenchmarkExerciser(b *testing.B) {
	parameters := gopter.DefaultTestParametersWithSeed(1593228262585360000)
	parameters.MaxSize = 512
	parameters.MinSuccessfulTests = b.N
	properties := gopter.NewProperties(parameters)
	properties.Property("tree exerciser", commands.Prop(treeCommands))
	out := bytes.NewBuffer(nil)
	reporter := gopter.NewFormatedReporter(false, 98, out)
	require.True(b, properties.Run(reporter))
}
