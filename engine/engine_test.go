package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"ssdlife/model"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func snap(counter int64, ts time.Time) *model.Snapshot {
	return &model.Snapshot{
		Model:            "Samsung SSD 980 PRO 1TB",
		Serial:           "S5GXNF0R123456",
		DriveType:        model.DriveNVMe,
		Timestamp:        ts,
		DataUnitsWritten: counter,
	}
}

func baseConfig() model.AnalysisConfig {
	capacity := 512.0
	return model.AnalysisConfig{
		HostLBASizeKB:  0.5,
		FlashLBASizeKB: 32,
		RatedPECycles:  3000,
		CapacityGB:     &capacity,
	}
}

func wantKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Kind != kind {
		t.Fatalf("error kind = %s, want %s", verr.Kind, kind)
	}
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if diff := got - want; diff > 1e-9*math.Abs(want)+1e-9 || -diff > 1e-9*math.Abs(want)+1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// Known inputs, values asserted by formula: counter 50M -> 52.5M over
// 29 days on a 512 GB drive with host 0.5 KB / flash 32 KB per count.
func TestAnalyzeRoundTrip(t *testing.T) {
	a := snap(50_000_000, t0)
	b := snap(52_500_000, t0.AddDate(0, 0, 29))

	rep, err := Analyze(a, b, baseConfig())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if rep.DeltaUnits != 2_500_000 {
		t.Errorf("DeltaUnits = %d, want 2500000", rep.DeltaUnits)
	}
	approx(t, "ElapsedDays", rep.ElapsedDays, 29)
	approx(t, "WAF", rep.WAF, 64.0)

	// 2,500,000 units * 0.5 KB * 1024 bytes.
	if rep.TBWHostBytes != 1_280_000_000 {
		t.Errorf("TBWHostBytes = %d, want 1280000000", rep.TBWHostBytes)
	}
	if rep.TBWFlashBytes != 81_920_000_000 {
		t.Errorf("TBWFlashBytes = %d, want 81920000000", rep.TBWFlashBytes)
	}

	daily := 1_280_000_000.0 / 29
	approx(t, "DailyWriteRateBytes", rep.DailyWriteRateBytes, daily)
	approx(t, "DWPD", rep.DWPD, daily/512e9)
	approx(t, "PECyclesConsumed", rep.PECyclesConsumed, 0.16)
	approx(t, "WearPercent", rep.WearPercent, 100*0.16/3000)

	flashRate := 81_920_000_000.0 / 29
	approx(t, "EstimatedRemainingDays", rep.EstimatedRemainingDays, (3000-0.16)*512e9/flashRate)

	if rep.Health != model.HealthExcellent {
		t.Errorf("Health = %s, want Excellent", rep.Health)
	}
}

func TestAnalyzeCounterRegression(t *testing.T) {
	a := snap(52_500_000, t0)
	b := snap(50_000_000, t0.AddDate(0, 0, 29))
	_, err := Analyze(a, b, baseConfig())
	wantKind(t, err, ErrCounterRegression)
}

func TestAnalyzeChronology(t *testing.T) {
	tests := []struct {
		name string
		tsB  time.Time
	}{
		{"b before a", t0.AddDate(0, 0, -1)},
		{"equal timestamps", t0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(snap(1000, t0), snap(2000, tt.tsB), baseConfig())
			wantKind(t, err, ErrOutOfOrder)
		})
	}
}

func TestAnalyzeDifferentDrives(t *testing.T) {
	later := t0.AddDate(0, 0, 7)

	t.Run("serial mismatch", func(t *testing.T) {
		a := snap(1000, t0)
		b := snap(2000, later)
		b.Serial = "OTHER"
		_, err := Analyze(a, b, baseConfig())
		wantKind(t, err, ErrDifferentDrives)
	})

	t.Run("model mismatch", func(t *testing.T) {
		a := snap(1000, t0)
		b := snap(2000, later)
		b.Model = "WD Blue SN580"
		_, err := Analyze(a, b, baseConfig())
		wantKind(t, err, ErrDifferentDrives)
	})

	// A missing serial on either side cannot prove a mismatch.
	t.Run("empty serial passes", func(t *testing.T) {
		a := snap(1000, t0)
		a.Serial = ""
		b := snap(2000, later)
		if _, err := Analyze(a, b, baseConfig()); err != nil {
			t.Fatalf("Analyze() error: %v", err)
		}
	})
}

func TestAnalyzeMixedFormats(t *testing.T) {
	a := snap(1000, t0)
	b := snap(2000, t0.AddDate(0, 0, 7))
	b.DriveType = model.DriveSATA
	_, err := Analyze(a, b, baseConfig())
	wantKind(t, err, ErrMixedFormats)
}

// Zero written delta is a valid observation: rates are zero and the
// remaining-life estimate is the indefinite sentinel, not an error.
func TestAnalyzeZeroWriteRate(t *testing.T) {
	rep, err := Analyze(snap(1000, t0), snap(1000, t0.AddDate(0, 0, 7)), baseConfig())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if rep.DailyWriteRateBytes != 0 {
		t.Errorf("DailyWriteRateBytes = %v, want 0", rep.DailyWriteRateBytes)
	}
	if rep.DWPD != 0 {
		t.Errorf("DWPD = %v, want 0", rep.DWPD)
	}
	if !math.IsInf(rep.EstimatedRemainingDays, 1) {
		t.Errorf("EstimatedRemainingDays = %v, want +Inf", rep.EstimatedRemainingDays)
	}
	if !rep.RemainingIndefinite() {
		t.Error("RemainingIndefinite() = false, want true")
	}
}

func TestAnalyzeMissingCapacity(t *testing.T) {
	cfg := baseConfig()
	cfg.CapacityGB = nil
	_, err := Analyze(snap(1000, t0), snap(2000, t0.AddDate(0, 0, 7)), cfg)
	wantKind(t, err, ErrMissingCapacity)
}

func TestAnalyzeCapacityPrecedence(t *testing.T) {
	detected := int64(500_107_862_016)

	t.Run("snapshot fallback", func(t *testing.T) {
		cfg := baseConfig()
		cfg.CapacityGB = nil
		a := snap(1000, t0)
		a.CapacityBytes = &detected
		rep, err := Analyze(a, snap(2000, t0.AddDate(0, 0, 7)), cfg)
		if err != nil {
			t.Fatalf("Analyze() error: %v", err)
		}
		approx(t, "CapacityBytes", rep.CapacityBytes, float64(detected))
	})

	t.Run("config override wins", func(t *testing.T) {
		a := snap(1000, t0)
		a.CapacityBytes = &detected
		rep, err := Analyze(a, snap(2000, t0.AddDate(0, 0, 7)), baseConfig())
		if err != nil {
			t.Fatalf("Analyze() error: %v", err)
		}
		approx(t, "CapacityBytes", rep.CapacityBytes, 512e9)
	})
}

// Wear above 100% stays unclamped and reports Critical.
func TestAnalyzeWearBeyondRating(t *testing.T) {
	cfg := baseConfig()
	rated := 10
	cfg.RatedPECycles = rated

	// 2.5B units * 32 KB * 1024 = 81.92 TB flash on 512 GB: 160 cycles
	// of the rated 10.
	rep, err := Analyze(snap(0, t0), snap(2_500_000_000, t0.AddDate(0, 0, 29)), cfg)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	approx(t, "WearPercent", rep.WearPercent, 1600.0)
	if rep.Health != model.HealthCritical {
		t.Errorf("Health = %s, want Critical", rep.Health)
	}
	if rep.EstimatedRemainingDays >= 0 {
		t.Errorf("EstimatedRemainingDays = %v, want negative once budget is exhausted", rep.EstimatedRemainingDays)
	}
}

func TestAnalyzeBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.AnalysisConfig)
	}{
		{"zero host lba", func(c *model.AnalysisConfig) { c.HostLBASizeKB = 0 }},
		{"zero flash lba", func(c *model.AnalysisConfig) { c.FlashLBASizeKB = 0 }},
		{"zero pe cycles", func(c *model.AnalysisConfig) { c.RatedPECycles = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)
			if _, err := Analyze(snap(1000, t0), snap(2000, t0.AddDate(0, 0, 7)), cfg); err == nil {
				t.Error("Analyze() succeeded with invalid config")
			}
		})
	}
}
