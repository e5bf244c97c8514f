package chart

import (
	"fmt"
	"math"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

const (
	outerRadius = 110.0
	innerRadius = 66.0
)

// Donut builds a donut chart. Each segment keeps its input percentage and
// sweeps percentage/100 of the circle; percentages are not renormalised.
func Donut(title string, slices []domain.Share) Chart {
	c := Chart{
		Kind:   KindDonut,
		Title:  title,
		Width:  DonutSize,
		Height: DonutSize,
		Marks:  make([]Mark, 0, len(slices)),
	}
	cx, cy := float64(c.Width)/2, float64(c.Height)/2

	angle := 0.0
	for i, s := range slices {
		sweep := s.Percentage / 100 * 2 * math.Pi
		if sweep < 0 {
			sweep = 0
		}
		m := Mark{
			Label:      s.Name,
			Color:      Color(i),
			Percentage: s.Percentage,
			StartAngle: angle,
			Sweep:      sweep,
			Path:       arcPath(cx, cy, angle, sweep),
			Tooltip: []string{
				s.Name,
				fmt.Sprintf("Count: %d", s.Count),
				fmt.Sprintf("Share: %g%%", s.Percentage),
			},
		}
		c.Marks = append(c.Marks, m)
		c.Legend = append(c.Legend, LegendEntry{Name: s.Name, Color: m.Color})
		angle += sweep
	}
	return c
}

// Total returns the sum of the segment percentages.
func (c Chart) Total() float64 {
	sum := 0.0
	for _, m := range c.Marks {
		sum += m.Percentage
	}
	return sum
}

func arcPath(cx, cy, start, sweep float64) string {
	if sweep <= 0 {
		return ""
	}
	// a full ring cannot be drawn as a single arc
	if sweep >= 2*math.Pi {
		sweep = 2*math.Pi - 1e-4
	}
	end := start + sweep
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	ox0, oy0 := polar(cx, cy, outerRadius, start)
	ox1, oy1 := polar(cx, cy, outerRadius, end)
	ix1, iy1 := polar(cx, cy, innerRadius, end)
	ix0, iy0 := polar(cx, cy, innerRadius, start)
	return fmt.Sprintf("M%.2f %.2f A%.0f %.0f 0 %d 1 %.2f %.2f L%.2f %.2f A%.0f %.0f 0 %d 0 %.2f %.2f Z",
		ox0, oy0, outerRadius, outerRadius, large, ox1, oy1,
		ix1, iy1, innerRadius, innerRadius, large, ix0, iy0)
}

func polar(cx, cy, r, a float64) (float64, float64) {
	return cx + r*math.Sin(a), cy - r*math.Cos(a)
}
