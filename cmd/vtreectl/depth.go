package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDepthCmd())
}

func newDepthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depth [tree.json]",
		Short: "Print the depth of the deepest node",
		Long: `The depth command prints the zero-based depth of the deepest node
below the root, or None if the tree has no root.

Example:
  vtreectl depth tree.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDepth,
	}
}

type depthResult struct {
	Depth *int `json:"depth"`
	Len   int  `json:"len"`
}

func runDepth(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd, args)
	if err != nil {
		return err
	}
	depth, ok := tree.Depth()
	if jsonOut {
		r := depthResult{Len: tree.Len()}
		if ok {
			r.Depth = &depth
		}
		return printJSON(cmd, r)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "None")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), depth)
	return nil
}
