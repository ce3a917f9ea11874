package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ssdlife/config"
	"ssdlife/engine"
	"ssdlife/model"
	"ssdlife/notify"
	"ssdlife/parser"
	"ssdlife/ui"
)

type analyzeOptions struct {
	snapshot1      string
	snapshot2      string
	hostLBASizeKB  float64
	flashLBASizeKB float64
	ratedPECycles  int
	capacityGB     float64
	capacitySet    bool
	output         string
	jsonOut        bool
	tui            bool
	notifyURL      string
	configPath     string
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze wear between two smartctl snapshots",
		Example: `  ssdlife analyze --snapshot1 day1.txt --snapshot2 day30.txt \
    --host-lba-size 0.5 --flash-lba-size 32 --rated-pe-cycles 3000 --capacity 512`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.snapshot1, "snapshot1", "", "path to the earlier smartctl output")
	f.StringVar(&opts.snapshot2, "snapshot2", "", "path to the later smartctl output")
	f.Float64Var(&opts.hostLBASizeKB, "host-lba-size", 0, "KB per host data unit count (e.g. 0.5)")
	f.Float64Var(&opts.flashLBASizeKB, "flash-lba-size", 0, "KB written to flash per count (e.g. 32)")
	f.IntVar(&opts.ratedPECycles, "rated-pe-cycles", 0, "manufacturer rated P/E cycles (e.g. 3000 for TLC)")
	f.Float64Var(&opts.capacityGB, "capacity", 0, "drive capacity in GB (auto-detected if omitted)")
	f.StringVar(&opts.output, "output", "", "write the report to a file instead of stdout")
	f.BoolVar(&opts.jsonOut, "json", false, "emit the report as JSON")
	f.BoolVar(&opts.tui, "tui", false, "open the report in an interactive scrollable viewer")
	f.StringVar(&opts.notifyURL, "notify", "", "shoutrrr URL to push a summary when health is Poor or Critical")
	f.StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/ssdlife/config.toml)")

	_ = cmd.MarkFlagRequired("snapshot1")
	_ = cmd.MarkFlagRequired("snapshot2")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	if err := applyConfigDefaults(cmd, opts); err != nil {
		return err
	}
	if err := validateParams(opts); err != nil {
		return err
	}

	snapA, err := parseSnapshotFile(opts.snapshot1)
	if err != nil {
		return err
	}
	snapB, err := parseSnapshotFile(opts.snapshot2)
	if err != nil {
		return err
	}

	cfg := model.AnalysisConfig{
		HostLBASizeKB:  opts.hostLBASizeKB,
		FlashLBASizeKB: opts.flashLBASizeKB,
		RatedPECycles:  opts.ratedPECycles,
	}
	if opts.capacitySet {
		cfg.CapacityGB = &opts.capacityGB
	}

	rep, err := engine.Analyze(snapA, snapB, cfg)
	if err != nil {
		return err
	}

	if err := emitReport(opts, rep); err != nil {
		return err
	}

	if opts.notifyURL != "" {
		if err := notify.Dispatch(notify.ShoutrrrSender{}, opts.notifyURL, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
		}
	}
	return nil
}

// applyConfigDefaults fills flags the user did not set from the TOML
// config file. Explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command, opts *analyzeOptions) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return err
	}

	a := fileCfg.Analysis
	if !cmd.Flags().Changed("host-lba-size") && a.HostLBASizeKB != nil {
		opts.hostLBASizeKB = *a.HostLBASizeKB
	}
	if !cmd.Flags().Changed("flash-lba-size") && a.FlashLBASizeKB != nil {
		opts.flashLBASizeKB = *a.FlashLBASizeKB
	}
	if !cmd.Flags().Changed("rated-pe-cycles") && a.RatedPECycles != nil {
		opts.ratedPECycles = *a.RatedPECycles
	}
	// Track whether a capacity was given at all: an explicit zero must
	// be rejected, not mistaken for "auto-detect".
	if cmd.Flags().Changed("capacity") {
		opts.capacitySet = true
	} else if a.CapacityGB != nil {
		opts.capacityGB = *a.CapacityGB
		opts.capacitySet = true
	}
	if !cmd.Flags().Changed("notify") && fileCfg.Notify.URL != nil {
		opts.notifyURL = *fileCfg.Notify.URL
	}
	return nil
}

func validateParams(opts *analyzeOptions) error {
	if opts.hostLBASizeKB <= 0 {
		return fmt.Errorf("--host-lba-size must be > 0 (set the flag or config file)")
	}
	if opts.flashLBASizeKB <= 0 {
		return fmt.Errorf("--flash-lba-size must be > 0 (set the flag or config file)")
	}
	if opts.ratedPECycles <= 0 {
		return fmt.Errorf("--rated-pe-cycles must be > 0 (set the flag or config file)")
	}
	if opts.capacitySet && opts.capacityGB <= 0 {
		return fmt.Errorf("--capacity must be > 0 when set")
	}
	return nil
}

func parseSnapshotFile(path string) (*model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot %s: %w", path, err)
	}
	snap, err := parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snap, nil
}

func emitReport(opts *analyzeOptions, rep *model.Report) error {
	if opts.jsonOut {
		return writeJSON(opts.output, rep)
	}

	rendered := ui.RenderReport(rep)

	if opts.tui {
		title := "ssdlife: " + rep.B.Model
		return ui.RunViewer(title, rendered)
	}
	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report saved to: %s\n", opts.output)
		return nil
	}
	fmt.Println(rendered)
	return nil
}

// jsonReport is the machine-readable view of a report. The remaining
// life estimate can be +Inf, which encoding/json cannot represent, so
// it is emitted as a nullable field plus an explicit indefinite flag.
type jsonReport struct {
	*model.Report
	EstimatedRemainingDays *float64 `json:"estimated_remaining_days"`
	RemainingIndefinite    bool     `json:"remaining_indefinite"`
}

func writeJSON(output string, rep *model.Report) error {
	view := jsonReport{Report: rep, RemainingIndefinite: rep.RemainingIndefinite()}
	if !view.RemainingIndefinite {
		days := rep.EstimatedRemainingDays
		view.EstimatedRemainingDays = &days
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
