package util

import (
	"fmt"
	"time"
)

// FormatRatio formats a value in [0,1] as a percentage with one decimal.
// Example: 0.942 -> "94.2%"
func FormatRatio(r float64) string {
	return fmt.Sprintf("%.1f%%", r*100)
}

// FormatPercent formats a value already expressed in percent.
// Example: 45 -> "45%", 12.5 -> "12.5%"
func FormatPercent(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d%%", int64(p))
	}
	return fmt.Sprintf("%.1f%%", p)
}

// FormatScore formats a model score with three decimals.
func FormatScore(s float64) string {
	return fmt.Sprintf("%.3f", s)
}

// FormatTimestamp formats t as "2006-01-02 15:04:05" in its own location.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// FormatClock formats t as "15:04:05".
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}
