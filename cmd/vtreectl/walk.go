package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jrhy/vtree"
	"github.com/spf13/cobra"
)

var (
	walkFrom int
	walkFull bool
)

func init() {
	cmd := newWalkCmd()
	cmd.Flags().IntVar(&walkFrom, "from", vtree.None, "Index of the node to start from (default: root)")
	cmd.Flags().BoolVar(&walkFull, "full", false, "Show the payloads of each node's children")
	rootCmd.AddCommand(cmd)
}

func newWalkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk [tree.json]",
		Short: "List nodes in post order",
		Long: `The walk command lists the nodes of a tree in post order, children
before their parent, one per line as depth:index:value.

Example:
  vtreectl walk tree.json
  vtreectl walk tree.json --from 3 --full
  cat tree.json | vtreectl walk --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWalk,
	}
}

type walkEntry struct {
	Index    int      `json:"index"`
	Depth    int      `json:"depth"`
	Value    string   `json:"value"`
	Children []string `json:"children,omitempty"`
}

func runWalk(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd, args)
	if err != nil {
		return err
	}
	if err := checkNode(tree, "from", walkFrom); err != nil {
		return err
	}
	top := walkFrom
	if top == vtree.None {
		top, _ = tree.Root()
	}

	var entries []walkEntry
	for n := range tree.TraverseFullFrom(top).All() {
		e := walkEntry{Index: n.Index, Depth: n.Depth, Value: n.Value()}
		if walkFull {
			e.Children = slices.Collect(n.ChildValues())
		}
		entries = append(entries, e)
	}

	if jsonOut {
		return printJSON(cmd, entries)
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		if len(e.Children) > 0 {
			fmt.Fprintf(out, "%d:%d:%s(%s)\n", e.Depth, e.Index, e.Value, strings.Join(e.Children, ","))
		} else {
			fmt.Fprintf(out, "%d:%d:%s\n", e.Depth, e.Index, e.Value)
		}
	}
	return nil
}
