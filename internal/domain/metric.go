package domain

import "fmt"

// Trend is the direction arrow shown on a metric card.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

func (t Trend) Valid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	}
	return false
}

// Band bounds a live metric. Each tick moves the value by at most Delta
// in either direction and never outside [Low, High].
type Band struct {
	Low   float64
	High  float64
	Delta float64
}

// Clamp returns v limited to [Low, High].
func (b Band) Clamp(v float64) float64 {
	if v < b.Low {
		return b.Low
	}
	if v > b.High {
		return b.High
	}
	return v
}

// Contains reports whether v lies inside the band, bounds included.
func (b Band) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

// Metric is a single dashboard card. Only Value changes after mount, and
// only when Band is set.
type Metric struct {
	Key    string
	Title  string
	Value  float64
	Format string // fmt verb applied to Value, e.g. "%.1fms"
	Text   string // fixed display text for static cards; wins over Format
	Change string
	Trend  Trend
	Icon   string
	Color  string
	Band   *Band
}

// Live reports whether the metric is jittered by a ticker.
func (m Metric) Live() bool {
	return m.Band != nil
}

// Display renders Value with the metric's format.
func (m Metric) Display() string {
	if m.Text != "" {
		return m.Text
	}
	if m.Format == "" {
		return fmt.Sprintf("%g", m.Value)
	}
	return fmt.Sprintf(m.Format, m.Value)
}

// CloneMetrics copies a metric slice. Bands are shared since they are never
// mutated.
func CloneMetrics(ms []Metric) []Metric {
	out := make([]Metric, len(ms))
	copy(out, ms)
	return out
}
