package main

import (
	"errors"
	"fmt"

	"github.com/jrhy/vtree"
	"github.com/spf13/cobra"
)

var fingerprintFrom int

func init() {
	cmd := newFingerprintCmd()
	cmd.Flags().IntVar(&fingerprintFrom, "from", vtree.None, "Index of the node to start from (default: root)")
	rootCmd.AddCommand(cmd)
}

func newFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [tree.json]",
		Short: "Print a content hash of a subtree",
		Long: `The fingerprint command prints a hash covering the shape and the
payloads of a subtree. Equal subtrees have equal fingerprints, wherever they
are in the arena.

Example:
  vtreectl fingerprint tree.json
  vtreectl fingerprint tree.json --from 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFingerprint,
	}
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd, args)
	if err != nil {
		return err
	}
	if err := checkNode(tree, "from", fingerprintFrom); err != nil {
		return err
	}
	fp, err := tree.Fingerprint(fingerprintFrom, nil)
	if errors.Is(err, vtree.ErrNoRoot) {
		return fmt.Errorf("nothing to fingerprint: %w", err)
	} else if err != nil {
		return fmt.Errorf("failed to fingerprint: %w", err)
	}
	if jsonOut {
		return printJSON(cmd, map[string]string{"fingerprint": fp})
	}
	fmt.Fprintln(cmd.OutOrStdout(), fp)
	return nil
}
