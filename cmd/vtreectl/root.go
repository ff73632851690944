package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jrhy/vtree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "vtreectl",
	Short: "Walk, render and graft arena trees",
	Long: `vtreectl loads a tree from a JSON document and walks, renders,
fingerprints or regrafts it. The document lists the nodes of the arena in
index order, each with its payload and the indices of its children:

  {"root": 0, "nodes": [{"value": "root", "children": [1, 2]},
                        {"value": "a"}, {"value": "b"}]}

The tree is read from the named file, or from standard input.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// document is the JSON form of a tree. A missing root means the tree has none.
type document struct {
	Root  *int                     `json:"root,omitempty"`
	Nodes []vtree.FlatNode[string] `json:"nodes"`
}

func newDocument(t *vtree.Tree[string]) document {
	root, nodes := t.Flatten()
	d := document{Nodes: nodes}
	if root != vtree.None {
		d.Root = &root
	}
	return d
}

// loadTree reads a document from the file named by args[0], or from the
// command's input if there is no argument.
func loadTree(cmd *cobra.Command, args []string) (tree *vtree.Tree[string], err error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open tree: %w", err)
		}
		defer f.Close()
		r = f
	}
	printVerbose(cmd, "Loading tree: %s\n", name)

	var d document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	root := vtree.None
	if d.Root != nil {
		root = *d.Root
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("invalid tree in %s: %w", name, e)
		}
	}()
	tree = vtree.FromFlat(root, d.Nodes)
	if err := checkAcyclic(tree); err != nil {
		return nil, fmt.Errorf("invalid tree in %s: %w", name, err)
	}
	tree.SetLogger(newLogger())
	printVerbose(cmd, "Loaded %d nodes\n", tree.Len())
	return tree, nil
}

// errCycle is returned for documents where a node is its own descendant.
var errCycle = errors.New("node is its own descendant")

// checkAcyclic walks the child links of every node of t, without recursion,
// and fails on the first link back to a node still being walked. Shared
// children are allowed.
func checkAcyclic(t *vtree.Tree[string]) error {
	const (
		unseen = iota
		walking
		done
	)
	type frame struct {
		index int
		next  int
	}
	state := make([]uint8, t.Len())
	var stack []frame
	for start := range state {
		if state[start] != unseen {
			continue
		}
		state[start] = walking
		stack = append(stack[:0], frame{index: start})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := t.Children(top.index)
			if top.next == len(children) {
				state[top.index] = done
				stack = stack[:len(stack)-1]
				continue
			}
			c := children[top.next]
			top.next++
			switch state[c] {
			case walking:
				return fmt.Errorf("node %d links back to %d: %w", top.index, c, errCycle)
			case unseen:
				state[c] = walking
				stack = append(stack, frame{index: c})
			}
		}
	}
	return nil
}

// checkNode turns an out-of-range node flag into an error before the tree
// panics on it.
func checkNode(t *vtree.Tree[string], flag string, index int) error {
	if index != vtree.None && (index < 0 || index >= t.Len()) {
		return fmt.Errorf("--%s %d: %w (len %d)", flag, index, vtree.ErrOutOfRange, t.Len())
	}
	return nil
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// printVerbose prints a verbose message to stderr if verbose mode is enabled
func printVerbose(cmd *cobra.Command, format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
