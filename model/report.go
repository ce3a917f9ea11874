package model

// AnalysisConfig holds the caller-supplied drive parameters. Every
// scalar is explicit input — there are no process-wide defaults.
type AnalysisConfig struct {
	// HostLBASizeKB is the size in KB represented by one unit of the
	// host write counter (e.g. 0.5 for NVMe 512-byte data units).
	HostLBASizeKB float64 `json:"host_lba_size_kb"`
	// FlashLBASizeKB is the assumed size in KB written to flash per
	// counter unit (e.g. 32 for a 32 KB NAND page/stripe).
	FlashLBASizeKB float64 `json:"flash_lba_size_kb"`
	// RatedPECycles is the manufacturer endurance rating
	// (e.g. 3000 for TLC, 100000 for SLC).
	RatedPECycles int `json:"rated_pe_cycles"`
	// CapacityGB overrides the snapshot-detected capacity when non-nil.
	// Decimal gigabytes: capacity_bytes = CapacityGB * 1e9.
	CapacityGB *float64 `json:"capacity_gb,omitempty"`
}

// HealthLabel classifies wear percentage into an operator-facing label.
type HealthLabel string

const (
	HealthExcellent HealthLabel = "Excellent"
	HealthGood      HealthLabel = "Good"
	HealthFair      HealthLabel = "Fair"
	HealthPoor      HealthLabel = "Poor"
	HealthCritical  HealthLabel = "Critical"
)

// HealthForWear maps a wear percentage to its label. The input is not
// clamped: values at or above 100% are Critical.
func HealthForWear(wearPct float64) HealthLabel {
	switch {
	case wearPct < 50:
		return HealthExcellent
	case wearPct < 75:
		return HealthGood
	case wearPct < 90:
		return HealthFair
	case wearPct < 100:
		return HealthPoor
	default:
		return HealthCritical
	}
}

// Report is the derived result of analyzing two snapshots. It is a
// pure function of (A, B, Config), constructed once and never mutated.
type Report struct {
	A      Snapshot       `json:"snapshot1"`
	B      Snapshot       `json:"snapshot2"`
	Config AnalysisConfig `json:"config"`

	// CapacityBytes is the resolved capacity used for the rate metrics
	// (config override first, else snapshot A's detected capacity).
	CapacityBytes float64 `json:"capacity_bytes"`

	ElapsedDays float64 `json:"elapsed_days"`
	DeltaUnits  int64   `json:"delta_units"`

	WAF                 float64 `json:"waf"`
	TBWHostBytes        int64   `json:"tbw_host_bytes"`
	TBWFlashBytes       int64   `json:"tbw_flash_bytes"`
	DailyWriteRateBytes float64 `json:"daily_write_rate_bytes"`
	DWPD                float64 `json:"dwpd"`
	PECyclesConsumed    float64 `json:"pe_cycles_consumed"`
	// WearPercent is never clamped; values above 100 are reported as-is.
	WearPercent float64 `json:"wear_percent"`
	// EstimatedRemainingDays is +Inf when the write rate is zero
	// (indefinite remaining life), and may be negative once the rated
	// P/E budget is exhausted.
	EstimatedRemainingDays float64     `json:"-"`
	Health                 HealthLabel `json:"health"`
}

// RemainingIndefinite reports whether the remaining-life estimate is
// the indefinite sentinel (zero observed write rate).
func (r *Report) RemainingIndefinite() bool {
	return r.EstimatedRemainingDays > maxFiniteDays
}

// EstimatedRemainingYears converts the day estimate using the Julian
// year. Returns +Inf when the estimate is indefinite.
func (r *Report) EstimatedRemainingYears() float64 {
	return r.EstimatedRemainingDays / 365.25
}

// maxFiniteDays bounds any plausible finite estimate; only the +Inf
// sentinel exceeds it.
const maxFiniteDays = 1e308
