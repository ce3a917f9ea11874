// Package cmd wires the CLI: file I/O, flag and config merging, and
// report output. All parsing and metric logic lives in parser/ and
// engine/.
package cmd

import "github.com/spf13/cobra"

// Version is set at build time via ldflags.
var Version = "0.2.0"

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ssdlife",
		Short: "SSD endurance analyzer for smartctl snapshots",
		Long: `ssdlife derives wear and endurance metrics (WAF, TBW, DWPD, P/E-cycle
consumption, projected remaining lifetime) from two point-in-time
smartctl text reports of the same drive.`,
		Version:      Version,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newShowCmd())
	return root
}
