package main

import (
	"errors"
	"fmt"

	"github.com/jrhy/vtree"
	"github.com/spf13/cobra"
)

var (
	graftFrom int
	graftOnto int
)

func init() {
	cmd := newGraftCmd()
	cmd.Flags().IntVar(&graftFrom, "from", vtree.None, "Index of the subtree to copy (default: root)")
	cmd.Flags().IntVar(&graftOnto, "onto", vtree.None, "Index of the node to copy it under")
	_ = cmd.MarkFlagRequired("onto")
	rootCmd.AddCommand(cmd)
}

func newGraftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graft [tree.json] --onto N",
		Short: "Copy a subtree under another node",
		Long: `The graft command copies the subtree at --from as the last child of
--onto and prints the resulting tree. The source is read before the copy
starts, so a subtree can be grafted below itself.

Example:
  vtreectl graft tree.json --from 3 --onto 4
  vtreectl graft tree.json --onto 6 --json > grafted.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGraft,
	}
}

func runGraft(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd, args)
	if err != nil {
		return err
	}
	if err := checkNode(tree, "from", graftFrom); err != nil {
		return err
	}
	if graftOnto == vtree.None {
		return errors.New("--onto: a node index is required")
	}
	if err := checkNode(tree, "onto", graftOnto); err != nil {
		return err
	}
	if _, ok := tree.Root(); !ok && graftFrom == vtree.None {
		return fmt.Errorf("nothing to graft: %w", vtree.ErrNoRoot)
	}

	src := tree.Clone()
	top := tree.AddFromTree(graftOnto, src, graftFrom)
	printVerbose(cmd, "Grafted subtree as node %d\n", top)

	if jsonOut {
		return printJSON(cmd, newDocument(tree))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tree)
	return nil
}
