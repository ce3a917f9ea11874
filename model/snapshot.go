package model

import "time"

// DriveType identifies which report family a snapshot was parsed from.
type DriveType string

const (
	DriveNVMe DriveType = "NVMe"
	DriveSATA DriveType = "SATA"
)

// Snapshot holds the structured fields extracted from one smartctl
// text report. It is built once by the parser and never mutated.
//
// Optional fields are pointers: nil means the report did not carry the
// field, which is distinct from a measured zero.
type Snapshot struct {
	Model     string    `json:"model"`
	Serial    string    `json:"serial"`
	DriveType DriveType `json:"drive_type"`
	Timestamp time.Time `json:"timestamp"`

	// DataUnitsWritten is the raw host-write counter in device-reported
	// units: NVMe data units for NVMe drives, Total_LBAs_Written raw
	// value for SATA drives. It is the only mandatory counter.
	DataUnitsWritten int64 `json:"data_units_written"`

	CapacityBytes  *int64 `json:"capacity_bytes,omitempty"`
	DataUnitsRead  *int64 `json:"data_units_read,omitempty"`
	PowerOnHours   *int64 `json:"power_on_hours,omitempty"`
	PercentageUsed *int   `json:"percentage_used,omitempty"`
	AvailableSpare *int   `json:"available_spare,omitempty"`
}

// CounterName returns the wire name of the mandatory write counter for
// this snapshot's drive family.
func (s *Snapshot) CounterName() string {
	if s.DriveType == DriveSATA {
		return "lba_written"
	}
	return "data_units_written"
}
