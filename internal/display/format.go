// Package display formats collected values and renders them next to the
// distribution logo.
package display

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNegative is returned for negative sizes and percentages
	ErrNegative = errors.New("value cannot be negative")

	// ErrNoNumericValue is returned when a string has no leading number
	ErrNoNumericValue = errors.New("no numeric value found in the input")
)

// ConvertKiB renders a KiB figure as KiB, MB or GB, rounded down to two
// decimals. For example 15369 KiB is "15 MB".
func ConvertKiB(kib float64) (string, error) {
	if kib < 0 {
		return "", ErrNegative
	}

	switch {
	case kib >= 1024*1024:
		return fmt.Sprintf("%s GB", formatFloat(RoundToTwoDecimals(kib/(1024*1024)))), nil
	case kib >= 1024:
		return fmt.Sprintf("%s MB", formatFloat(RoundToTwoDecimals(kib/1024))), nil
	default:
		return fmt.Sprintf("%s KiB", formatFloat(kib)), nil
	}
}

// Percentage returns part/total as a floored percentage.
// A zero total yields 0.
func Percentage(part, total float64) (uint64, error) {
	if part < 0 || total < 0 {
		return 0, ErrNegative
	}
	if total == 0 {
		return 0, nil
	}
	return uint64(math.Floor(part / total * 100)), nil
}

// RoundToTwoDecimals truncates toward negative infinity at two decimals
func RoundToTwoDecimals(value float64) float64 {
	return math.Floor(value*100) / 100
}

// ExtractNumericValue parses the first whitespace separated field,
// e.g. "1234567 kB" -> 1234567.
func ExtractNumericValue(input string) (float64, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return 0, ErrNoNumericValue
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoNumericValue, fields[0])
	}
	return value, nil
}

// StripGPUName drops the driver suffix starting at the first "(",
// e.g. "AMD Radeon RX 580 (RADV POLARIS10)" -> "AMD Radeon RX 580 ".
func StripGPUName(name string) string {
	if i := strings.Index(name, "("); i >= 0 {
		return name[:i]
	}
	return name
}

var cpuNameSuffix = regexp.MustCompile(`( with | @ | \d+-Core).*$`)

// StripCPUName drops marketing suffixes from a CPU model name
func StripCPUName(name string) string {
	return strings.TrimSpace(cpuNameSuffix.ReplaceAllString(name, ""))
}

// FormatUptime renders seconds as "MMm SSs", or "HHh MMm SSs" past an hour
func FormatUptime(seconds uint64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours < 1 {
		return fmt.Sprintf("%02dm %02ds", minutes, secs)
	}
	return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, secs)
}

// FormatFrequency renders MHz as GHz with two decimals
func FormatFrequency(mhz float64) string {
	return fmt.Sprintf("%.2f GHz", mhz/1000)
}

// formatFloat prints without trailing zeros: 15 not 15.00, 1.5 not 1.50
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
