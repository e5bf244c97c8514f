package chart

import "fmt"

// Bar builds a bar chart of the named field, one bar per record. Records
// missing the field draw a zero-height bar.
func Bar(title string, records []Record, field string) Chart {
	c := Chart{
		Kind:   KindBar,
		Title:  title,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Marks:  make([]Mark, 0, len(records)),
	}

	top := 0.0
	for _, r := range records {
		if f, ok := r.Lookup(field); ok && f.Value > top {
			top = f.Value
		}
	}

	w := float64(c.Width) - 2*pad
	h := float64(c.Height) - 2*pad
	slot := w
	if len(records) > 0 {
		slot = w / float64(len(records))
	}

	for i, r := range records {
		f, _ := r.Lookup(field)
		bh := 0.0
		if top > 0 && f.Value > 0 {
			bh = f.Value / top * h
		}
		m := Mark{
			Label:   r.Label,
			Color:   Color(i),
			Value:   f.Value,
			X:       pad + slot*float64(i) + slot*0.15,
			W:       slot * 0.7,
			Y:       pad + h - bh,
			H:       bh,
			Tooltip: []string{r.Label},
		}
		for _, rf := range r.Fields {
			m.Tooltip = append(m.Tooltip, fmt.Sprintf("%s: %s", rf.Name, rf.Text))
		}
		c.Marks = append(c.Marks, m)
		c.Legend = append(c.Legend, LegendEntry{Name: r.Label, Color: m.Color})
	}
	return c
}
