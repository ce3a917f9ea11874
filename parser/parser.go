// Package parser turns raw smartctl text reports into structured
// snapshots. Parsing is a pure function of the input string: no I/O,
// no logging, no retained references.
package parser

import (
	"strings"
	"time"

	"ssdlife/model"
	"ssdlife/util"
)

// builder accumulates fields while scanning a report line by line.
// The mandatory counter and timestamp are tracked explicitly so a
// reported value of zero is distinguishable from an absent field.
type builder struct {
	snap       model.Snapshot
	counterSet bool
	timeSet    bool
}

// fieldRule binds a line marker to a drive family and an extractor.
// A rule with an empty family applies to every family. Supporting a
// third report style means adding entries here, not new control flow.
type fieldRule struct {
	family model.DriveType
	match  func(line string) (string, bool)
	apply  func(b *builder, token string)
}

var fieldRules = []fieldRule{
	{match: labelText("Device Model:"), apply: setModel},
	{match: labelText("Model Number:"), apply: setModel},
	{match: labelText("Product:"), apply: setModel},
	{match: labelText("Serial Number:"), apply: setSerial},
	{match: labelText("Local Time is:"), apply: setTimestamp},
	{match: labelToken("User Capacity:"), apply: setCapacity},

	{family: model.DriveNVMe, match: labelToken("Namespace 1 Size/Capacity:"), apply: setCapacity},
	{family: model.DriveNVMe, match: labelToken("Data Units Written:"), apply: setCounter},
	{family: model.DriveNVMe, match: labelToken("Data Units Read:"), apply: setUnitsRead},
	{family: model.DriveNVMe, match: labelToken("Power On Hours:"), apply: setPowerOnHours},
	{family: model.DriveNVMe, match: labelToken("Percentage Used:"), apply: setPercentageUsed},
	{family: model.DriveNVMe, match: labelToken("Available Spare:"), apply: setAvailableSpare},

	{family: model.DriveSATA, match: attrRaw("241", "Total_LBAs_Written"), apply: setCounter},
	{family: model.DriveSATA, match: attrRaw("242", "Total_LBAs_Read"), apply: setUnitsRead},
	{family: model.DriveSATA, match: attrRaw("9", "Power_On_Hours"), apply: setPowerOnHours},
}

// sataMarkers identify the ATA attribute-table report family when no
// NVMe marker is present.
var sataMarkers = []string{
	"ID# ATTRIBUTE_NAME",
	"Total_LBAs_Written",
	"ATA Version is:",
	"SATA Version is:",
}

// Parse extracts a structured snapshot from one smartctl text report.
// It fails with a *ParseError rather than defaulting any mandatory
// field.
func Parse(raw string) (*model.Snapshot, error) {
	family, ok := detectFamily(raw)
	if !ok {
		return nil, &ParseError{Kind: ErrUnknownFormat}
	}

	b := builder{}
	b.snap.DriveType = family

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for i := range fieldRules {
			r := &fieldRules[i]
			if r.family != "" && r.family != family {
				continue
			}
			if token, ok := r.match(line); ok {
				r.apply(&b, token)
			}
		}
	}

	if !b.counterSet {
		return nil, &ParseError{Kind: ErrMissingField, Field: b.snap.CounterName()}
	}
	if !b.timeSet {
		return nil, &ParseError{Kind: ErrMissingTimestamp}
	}

	snap := b.snap
	return &snap, nil
}

func detectFamily(raw string) (model.DriveType, bool) {
	if strings.Contains(raw, "NVMe") || strings.Contains(raw, "NVME") {
		return model.DriveNVMe, true
	}
	for _, m := range sataMarkers {
		if strings.Contains(raw, m) {
			return model.DriveSATA, true
		}
	}
	return "", false
}

// labelText matches "Label:  value" lines and yields the whole
// trailing text, trimmed.
func labelText(label string) func(string) (string, bool) {
	return func(line string) (string, bool) {
		if !strings.HasPrefix(line, label) {
			return "", false
		}
		return strings.TrimSpace(line[len(label):]), true
	}
}

// labelToken matches "Label:  value ..." lines and yields only the
// first whitespace-separated token after the label. smartctl often
// appends a bracketed human-readable form ("[18.5 TB]") that must be
// ignored.
func labelToken(label string) func(string) (string, bool) {
	return func(line string) (string, bool) {
		rest, ok := labelText(label)(line)
		if !ok {
			return "", false
		}
		tok := util.FieldsAt(rest, 0)
		return tok, tok != ""
	}
}

// attrRaw matches a row of the ATA attribute table by ID or attribute
// name and yields the RAW_VALUE column (the 10th field).
func attrRaw(id, name string) func(string) (string, bool) {
	return func(line string) (string, bool) {
		fields := strings.Fields(line)
		if len(fields) < 10 {
			return "", false
		}
		if fields[0] != id && fields[1] != name {
			return "", false
		}
		return fields[9], true
	}
}

func setModel(b *builder, token string) {
	if b.snap.Model == "" {
		b.snap.Model = token
	}
}

func setSerial(b *builder, token string) {
	if b.snap.Serial == "" {
		b.snap.Serial = token
	}
}

func setCapacity(b *builder, token string) {
	if b.snap.CapacityBytes != nil {
		return
	}
	if v, err := util.ParseGroupedInt(token); err == nil {
		b.snap.CapacityBytes = &v
	}
}

func setCounter(b *builder, token string) {
	if b.counterSet {
		return
	}
	if v, err := util.ParseGroupedInt(token); err == nil {
		b.snap.DataUnitsWritten = v
		b.counterSet = true
	}
}

func setUnitsRead(b *builder, token string) {
	if b.snap.DataUnitsRead != nil {
		return
	}
	if v, err := util.ParseGroupedInt(token); err == nil {
		b.snap.DataUnitsRead = &v
	}
}

func setPowerOnHours(b *builder, token string) {
	if b.snap.PowerOnHours != nil {
		return
	}
	if v, err := util.ParseGroupedInt(token); err == nil {
		b.snap.PowerOnHours = &v
	}
}

func setPercentageUsed(b *builder, token string) {
	if b.snap.PercentageUsed != nil {
		return
	}
	if v, err := util.ParsePercent(token); err == nil {
		b.snap.PercentageUsed = &v
	}
}

func setAvailableSpare(b *builder, token string) {
	if b.snap.AvailableSpare != nil {
		return
	}
	if v, err := util.ParsePercent(token); err == nil {
		b.snap.AvailableSpare = &v
	}
}

// timeLayouts covers the local-time formats the two smartctl families
// emit. The zone abbreviation, when present, is not resolved to an
// offset; deltas are taken between naive timestamps.
var timeLayouts = []string{
	"Mon Jan _2 15:04:05 2006 MST",
	"Mon Jan _2 15:04:05 2006",
	"2006-01-02 15:04:05",
}

func setTimestamp(b *builder, token string) {
	if b.timeSet {
		return
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			b.snap.Timestamp = t
			b.timeSet = true
			return
		}
	}
}
