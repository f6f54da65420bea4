package tripmetrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatElapsed renders a duration as "Ns", "Nm" or "Nh Nm". Tiers are
// chosen on the exact duration, so 59m59s is still "59m".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int64(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int64(d/time.Minute))
	default:
		return fmt.Sprintf("%dh %dm", int64(d/time.Hour), int64(d/time.Minute)%60)
	}
}

// formatDecimal renders v in fixed-point notation, keeping at least one
// fractional digit
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatFixed2 renders v with exactly two decimal places
func formatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatSpeed renders the raw sensor value in its shortest exact form
func formatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
