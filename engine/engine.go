// Package engine validates a pair of snapshots and derives the
// wear/endurance metrics. Analysis is a pure function of its inputs.
package engine

import (
	"fmt"
	"math"

	"ssdlife/model"
)

const hoursPerDay = 24

// Analyze validates the snapshot pair and computes the endurance
// report. Validation failures are returned as *ValidationError, in
// this order: drive identity, chronology, format family, counter
// monotonicity, capacity.
func Analyze(a, b *model.Snapshot, cfg model.AnalysisConfig) (*model.Report, error) {
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}

	if a.Model != b.Model {
		return nil, &ValidationError{
			Kind:   ErrDifferentDrives,
			Detail: fmt.Sprintf("model %q vs %q", a.Model, b.Model),
		}
	}
	if a.Serial != "" && b.Serial != "" && a.Serial != b.Serial {
		return nil, &ValidationError{
			Kind:   ErrDifferentDrives,
			Detail: fmt.Sprintf("serial %q vs %q", a.Serial, b.Serial),
		}
	}
	// Equal timestamps also reject: zero elapsed time makes every rate
	// metric undefined.
	if !a.Timestamp.Before(b.Timestamp) {
		return nil, &ValidationError{
			Kind:   ErrOutOfOrder,
			Detail: fmt.Sprintf("%s is not before %s", a.Timestamp, b.Timestamp),
		}
	}
	if a.DriveType != b.DriveType {
		return nil, &ValidationError{
			Kind:   ErrMixedFormats,
			Detail: fmt.Sprintf("%s vs %s", a.DriveType, b.DriveType),
		}
	}

	deltaUnits := b.DataUnitsWritten - a.DataUnitsWritten
	if deltaUnits < 0 {
		return nil, &ValidationError{
			Kind: ErrCounterRegression,
			Detail: fmt.Sprintf("%s decreased from %d to %d",
				a.CounterName(), a.DataUnitsWritten, b.DataUnitsWritten),
		}
	}

	capacityBytes, err := resolveCapacity(a, cfg)
	if err != nil {
		return nil, err
	}

	elapsedDays := b.Timestamp.Sub(a.Timestamp).Hours() / hoursPerDay

	tbwHost := float64(deltaUnits) * cfg.HostLBASizeKB * 1024
	tbwFlash := float64(deltaUnits) * cfg.FlashLBASizeKB * 1024
	dailyRate := tbwHost / elapsedDays
	flashRate := tbwFlash / elapsedDays

	peConsumed := tbwFlash / capacityBytes
	wearPct := 100 * peConsumed / float64(cfg.RatedPECycles)

	// Zero observed write rate means the remaining P/E budget is never
	// consumed: report indefinite remaining life, not an error.
	remainingDays := math.Inf(1)
	if flashRate > 0 {
		remainingDays = (float64(cfg.RatedPECycles) - peConsumed) * capacityBytes / flashRate
	}

	return &model.Report{
		A:                      *a,
		B:                      *b,
		Config:                 cfg,
		CapacityBytes:          capacityBytes,
		ElapsedDays:            elapsedDays,
		DeltaUnits:             deltaUnits,
		WAF:                    cfg.FlashLBASizeKB / cfg.HostLBASizeKB,
		TBWHostBytes:           int64(math.Round(tbwHost)),
		TBWFlashBytes:          int64(math.Round(tbwFlash)),
		DailyWriteRateBytes:    dailyRate,
		DWPD:                   dailyRate / capacityBytes,
		PECyclesConsumed:       peConsumed,
		WearPercent:            wearPct,
		EstimatedRemainingDays: remainingDays,
		Health:                 model.HealthForWear(wearPct),
	}, nil
}

// resolveCapacity applies the precedence from the config override to
// the snapshot-detected value. It runs before any capacity-relative
// division.
func resolveCapacity(a *model.Snapshot, cfg model.AnalysisConfig) (float64, error) {
	if cfg.CapacityGB != nil {
		if *cfg.CapacityGB <= 0 {
			return 0, &ValidationError{
				Kind:   ErrMissingCapacity,
				Detail: fmt.Sprintf("configured capacity %v GB is not positive", *cfg.CapacityGB),
			}
		}
		return *cfg.CapacityGB * 1e9, nil
	}
	if a.CapacityBytes != nil && *a.CapacityBytes > 0 {
		return float64(*a.CapacityBytes), nil
	}
	return 0, &ValidationError{
		Kind:   ErrMissingCapacity,
		Detail: "no capacity detected in snapshot and none configured",
	}
}

// checkConfig rejects parameter values the formulas cannot divide by.
// These are caller errors, not snapshot validation failures.
func checkConfig(cfg model.AnalysisConfig) error {
	if cfg.HostLBASizeKB <= 0 {
		return fmt.Errorf("host LBA size must be > 0, got %v", cfg.HostLBASizeKB)
	}
	if cfg.FlashLBASizeKB <= 0 {
		return fmt.Errorf("flash LBA size must be > 0, got %v", cfg.FlashLBASizeKB)
	}
	if cfg.RatedPECycles <= 0 {
		return fmt.Errorf("rated P/E cycles must be > 0, got %d", cfg.RatedPECycles)
	}
	return nil
}
