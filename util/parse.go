package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGroupedInt parses a non-negative base-10 integer that may carry
// thousands separators, as smartctl prints large counters
// (e.g. "36,183,129").
func ParseGroupedInt(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty numeric token")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative counter value %d", v)
	}
	return v, nil
}

// ParsePercent parses a token like "3%" or "3" into an integer percent.
func ParsePercent(s string) (int, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// FieldsAt returns the field at the given index from a whitespace-split
// line, or empty string if the index is out of bounds.
func FieldsAt(line string, idx int) string {
	fields := strings.Fields(line)
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}
