package main

import (
	"fmt"

	"github.com/jrhy/vtree"
	"github.com/spf13/cobra"
)

var showFrom int

func init() {
	cmd := newShowCmd()
	cmd.Flags().IntVar(&showFrom, "from", vtree.None, "Index of the node to start from (default: root)")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [tree.json]",
		Short: "Render a tree on one line",
		Long: `The show command renders a tree as nested parentheses, like
root(a(a1,a2),b). With --json it prints the tree document instead.

Example:
  vtreectl show tree.json
  vtreectl show tree.json --from 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd, args)
	if err != nil {
		return err
	}
	if err := checkNode(tree, "from", showFrom); err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cmd, newDocument(tree))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tree.Format(showFrom))
	return nil
}
