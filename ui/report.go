// Package ui renders analysis reports: a sectioned text report for
// stdout/files and an interactive viewer for the terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"ssdlife/model"
)

const reportWidth = 78

// RenderReport produces the full sectioned report for a completed
// analysis.
func RenderReport(rep *model.Report) string {
	var sb strings.Builder

	rule := strings.Repeat("=", reportWidth)
	sb.WriteString(rule + "\n")
	sb.WriteString(center("SSD ENDURANCE ANALYSIS REPORT", reportWidth) + "\n")
	sb.WriteString(rule + "\n\n")

	writeDriveInfo(&sb, rep)
	writeAnalysisParams(&sb, rep)
	writeSnapshotComparison(&sb, rep)
	writeEnduranceMetrics(&sb, rep)
	writeWearAnalysis(&sb, rep)
	writeMethodology(&sb, rep)

	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("Report generated: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	sb.WriteString(rule + "\n")
	return sb.String()
}

func writeDriveInfo(sb *strings.Builder, rep *model.Report) {
	section(sb, "DRIVE INFORMATION")

	kv(sb, "Model", orUnknown(rep.B.Model))
	kv(sb, "Serial Number", orUnknown(rep.B.Serial))
	// Resolved capacity, so this row always matches what the metrics
	// divided by.
	kv(sb, "Capacity", fmt.Sprintf("%.2f GB", rep.CapacityBytes/1e9))
	kv(sb, "Drive Type", string(rep.B.DriveType))
	sb.WriteString("\n")
}

func writeAnalysisParams(sb *strings.Builder, rep *model.Report) {
	section(sb, "ANALYSIS PARAMETERS")
	kv(sb, "Host LBA Size", fmt.Sprintf("%g KB per count", rep.Config.HostLBASizeKB))
	kv(sb, "Flash LBA Size", fmt.Sprintf("%g KB per count", rep.Config.FlashLBASizeKB))
	kv(sb, "Rated P/E Cycles", humanize.Comma(int64(rep.Config.RatedPECycles)))
	kv(sb, "Drive Capacity", fmt.Sprintf("%.2f GB", rep.CapacityBytes/1e9))
	sb.WriteString("\n")
}

func writeSnapshotComparison(sb *strings.Builder, rep *model.Report) {
	section(sb, "SNAPSHOT COMPARISON")

	counterLabel := "Data Units Written"
	if rep.A.DriveType == model.DriveSATA {
		counterLabel = "Total LBAs Written"
	}

	t := newTable("Metric", "Snapshot 1", "Snapshot 2", "Delta")
	t.Row("Timestamp",
		rep.A.Timestamp.Format("2006-01-02 15:04:05"),
		rep.B.Timestamp.Format("2006-01-02 15:04:05"),
		fmt.Sprintf("%.2f days", rep.ElapsedDays))
	t.Row(counterLabel,
		humanize.Comma(rep.A.DataUnitsWritten),
		humanize.Comma(rep.B.DataUnitsWritten),
		humanize.Comma(rep.DeltaUnits))
	t.Row("Power On Hours",
		optComma(rep.A.PowerOnHours),
		optComma(rep.B.PowerOnHours),
		optDelta(rep.A.PowerOnHours, rep.B.PowerOnHours))
	if rep.A.DataUnitsRead != nil || rep.B.DataUnitsRead != nil {
		t.Row("Data Units Read",
			optComma(rep.A.DataUnitsRead),
			optComma(rep.B.DataUnitsRead),
			optDelta(rep.A.DataUnitsRead, rep.B.DataUnitsRead))
	}
	if rep.B.PercentageUsed != nil {
		t.Row("Percentage Used",
			optPercent(rep.A.PercentageUsed),
			optPercent(rep.B.PercentageUsed),
			pctDelta(rep.A.PercentageUsed, rep.B.PercentageUsed))
	}
	if rep.B.AvailableSpare != nil {
		t.Row("Available Spare",
			optPercent(rep.A.AvailableSpare),
			optPercent(rep.B.AvailableSpare),
			pctDelta(rep.A.AvailableSpare, rep.B.AvailableSpare))
	}
	sb.WriteString(t.Render() + "\n\n")
}

func writeEnduranceMetrics(sb *strings.Builder, rep *model.Report) {
	section(sb, "CALCULATED ENDURANCE METRICS")

	t := newTable("Metric", "Value", "Description")
	t.Row("WAF", fmt.Sprintf("%.2f", rep.WAF), "Write Amplification Factor (configured ratio)")
	t.Row("TBW (Host)", humanize.IBytes(uint64(rep.TBWHostBytes)), "Host bytes written over the period")
	t.Row("TBW (Flash)", humanize.IBytes(uint64(rep.TBWFlashBytes)), "Estimated flash bytes written")
	t.Row("DWPD", fmt.Sprintf("%.4f", rep.DWPD), "Drive Writes Per Day")
	t.Row("Daily Write Rate", humanize.IBytes(uint64(rep.DailyWriteRateBytes))+"/day", "Average daily host writes")
	sb.WriteString(t.Render() + "\n\n")
}

func writeWearAnalysis(sb *strings.Builder, rep *model.Report) {
	section(sb, "WEAR AND LIFETIME ANALYSIS")

	remaining := "indefinite"
	years := "-"
	if !rep.RemainingIndefinite() {
		remaining = fmt.Sprintf("%.0f days", rep.EstimatedRemainingDays)
		years = fmt.Sprintf("~%.2f years", rep.EstimatedRemainingYears())
	}

	t := newTable("Metric", "Value", "Status")
	t.Row("P/E Cycles Consumed",
		fmt.Sprintf("%.2f", rep.PECyclesConsumed),
		fmt.Sprintf("of %d", rep.Config.RatedPECycles))
	t.Row("Wear Percentage",
		fmt.Sprintf("%.2f%%", rep.WearPercent),
		string(rep.Health))
	t.Row("Estimated Remaining", remaining, years)
	t.Row("Overall Health", "", healthStyle(rep.Health).Render(string(rep.Health)))
	sb.WriteString(t.Render() + "\n\n")
}

func writeMethodology(sb *strings.Builder, rep *model.Report) {
	section(sb, "CALCULATION METHODOLOGY")

	capGB := rep.CapacityBytes / 1e9
	dailyGB := rep.DailyWriteRateBytes / 1e9
	dailyFlashGB := dailyGB * rep.WAF

	fmt.Fprintf(sb, "* WAF = Flash LBA Size / Host LBA Size\n")
	fmt.Fprintf(sb, "  = %g KB / %g KB = %.2f\n\n",
		rep.Config.FlashLBASizeKB, rep.Config.HostLBASizeKB, rep.WAF)
	fmt.Fprintf(sb, "* DWPD = Daily Write Rate / Drive Capacity\n")
	fmt.Fprintf(sb, "  = %.2f GB/day / %.2f GB = %.4f\n\n", dailyGB, capGB, rep.DWPD)
	fmt.Fprintf(sb, "* P/E Cycles = Flash Writes / Drive Capacity\n")
	fmt.Fprintf(sb, "  = %.2f GB / %.2f GB = %.2f\n\n",
		float64(rep.TBWFlashBytes)/1e9, capGB, rep.PECyclesConsumed)
	fmt.Fprintf(sb, "* Remaining Lifetime = (Rated P/E - Used P/E) x Capacity / Daily Flash Writes\n")
	if rep.RemainingIndefinite() {
		fmt.Fprintf(sb, "  = (%d - %.2f) x %.2f GB / 0 GB/day = indefinite\n\n",
			rep.Config.RatedPECycles, rep.PECyclesConsumed, capGB)
	} else {
		fmt.Fprintf(sb, "  = (%d - %.2f) x %.2f GB / %.2f GB/day = %.0f days\n\n",
			rep.Config.RatedPECycles, rep.PECyclesConsumed, capGB,
			dailyFlashGB, rep.EstimatedRemainingDays)
	}
}

// RenderSnapshot renders the fields of a single parsed snapshot, used
// by the show subcommand.
func RenderSnapshot(snap *model.Snapshot) string {
	t := newTable("Field", "Value")
	t.Row("Model", orUnknown(snap.Model))
	t.Row("Serial Number", orUnknown(snap.Serial))
	t.Row("Drive Type", string(snap.DriveType))
	t.Row("Timestamp", snap.Timestamp.Format("2006-01-02 15:04:05"))
	if snap.CapacityBytes != nil {
		t.Row("Capacity", humanize.IBytes(uint64(*snap.CapacityBytes)))
	}
	t.Row("Write Counter", humanize.Comma(snap.DataUnitsWritten))
	if snap.DataUnitsRead != nil {
		t.Row("Read Counter", humanize.Comma(*snap.DataUnitsRead))
	}
	if snap.PowerOnHours != nil {
		t.Row("Power On Hours", humanize.Comma(*snap.PowerOnHours))
	}
	if snap.PercentageUsed != nil {
		t.Row("Percentage Used", fmt.Sprintf("%d%%", *snap.PercentageUsed))
	}
	if snap.AvailableSpare != nil {
		t.Row("Available Spare", fmt.Sprintf("%d%%", *snap.AvailableSpare))
	}
	return t.Render() + "\n"
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...)
}

func section(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", reportWidth) + "\n")
}

func kv(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "%-25s: %s\n", label, value)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func optComma(v *int64) string {
	if v == nil {
		return "N/A"
	}
	return humanize.Comma(*v)
}

func optDelta(a, b *int64) string {
	if a == nil || b == nil {
		return "N/A"
	}
	return humanize.Comma(*b - *a)
}

func optPercent(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", *v)
}

func pctDelta(a, b *int) string {
	if a == nil || b == nil {
		return "N/A"
	}
	return fmt.Sprintf("%+d%%", *b-*a)
}
