package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ssdlife/ui"
)

func newShowCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Parse a single smartctl snapshot and print its fields",
		Long: `show runs only the snapshot parser against one smartctl output file.
Useful for checking what ssdlife extracts from a report before pairing
it with a second snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			snap, err := parseSnapshotFile(args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			fmt.Print(ui.RenderSnapshot(snap))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the snapshot as JSON")
	return cmd
}
