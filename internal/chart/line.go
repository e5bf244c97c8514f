package chart

import "fmt"

// Line builds a multi-series line chart. series names the Values of each
// point; every series is scaled to its own range.
func Line(title string, points []Point, series []string) Chart {
	c := Chart{
		Kind:   KindLine,
		Title:  title,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Marks:  make([]Mark, 0, len(points)),
	}
	for i, s := range series {
		c.Legend = append(c.Legend, LegendEntry{Name: s, Color: Color(i)})
	}

	lows, highs := seriesRange(points, len(series))
	w := float64(c.Width) - 2*pad
	h := float64(c.Height) - 2*pad

	for i, p := range points {
		x := pad + w/2
		if len(points) > 1 {
			x = pad + w*float64(i)/float64(len(points)-1)
		}
		m := Mark{Label: p.Label, Tooltip: []string{p.Label}}
		for j, v := range p.Values {
			if j >= len(series) {
				break
			}
			y := pad + h/2
			if span := highs[j] - lows[j]; span > 0 {
				y = pad + h - (v-lows[j])/span*h
			}
			m.Dots = append(m.Dots, Dot{X: x, Y: y, Color: Color(j)})
			m.Tooltip = append(m.Tooltip, fmt.Sprintf("%s: %g", series[j], v))
		}
		c.Marks = append(c.Marks, m)
	}
	return c
}

func seriesRange(points []Point, n int) (lows, highs []float64) {
	lows = make([]float64, n)
	highs = make([]float64, n)
	seen := make([]bool, n)
	for _, p := range points {
		for j, v := range p.Values {
			if j >= n {
				break
			}
			if !seen[j] || v < lows[j] {
				lows[j] = v
			}
			if !seen[j] || v > highs[j] {
				highs[j] = v
			}
			seen[j] = true
		}
	}
	return lows, highs
}
