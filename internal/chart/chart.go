// Package chart turns tabular records into drawable charts. Constructors
// are pure: one Mark per input record, in input order.
package chart

import "github.com/emiliopalmerini/mlopsdemo/internal/domain"

type Kind string

const (
	KindLine  Kind = "line"
	KindBar   Kind = "bar"
	KindDonut Kind = "donut"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLine, KindBar, KindDonut:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// Palette is the fixed colour cycle for series and categories.
var Palette = []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6"}

// Color returns the palette colour for position i.
func Color(i int) string {
	return Palette[i%len(Palette)]
}

const (
	DefaultWidth  = 640
	DefaultHeight = 260
	DonutSize     = 260
	pad           = 32.0
)

// Dot is one vertex of a line series.
type Dot struct {
	X, Y  float64
	Color string
}

// Mark is the drawable form of one input record.
type Mark struct {
	Label   string
	Tooltip []string
	Color   string

	// line
	Dots []Dot

	// bar
	X, Y, W, H float64
	Value      float64

	// donut
	Percentage float64
	StartAngle float64 // radians, clockwise from 12 o'clock
	Sweep      float64
	Path       string
}

type LegendEntry struct {
	Name  string
	Color string
}

type Chart struct {
	Kind   Kind
	Title  string
	Width  int
	Height int
	Marks  []Mark
	Legend []LegendEntry
}

// Point is one x position of a line chart; Values align with the series.
type Point struct {
	Label  string
	Values []float64
}

// ClonePoints deep-copies points.
func ClonePoints(ps []Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = Point{Label: p.Label, Values: append([]float64(nil), p.Values...)}
	}
	return out
}

// JitterLast returns a copy of points whose last point has value i
// jittered inside bands[i]. Values without a band are left alone.
func JitterLast(points []Point, bands []domain.Band, r domain.Rand) []Point {
	out := ClonePoints(points)
	if len(out) == 0 {
		return out
	}
	last := &out[len(out)-1]
	for i := range last.Values {
		if i >= len(bands) {
			break
		}
		last.Values[i] = bands[i].Jitter(last.Values[i], r)
	}
	return out
}

// Field is one named column of a bar record. Text is shown verbatim in
// the tooltip.
type Field struct {
	Name  string
	Value float64
	Text  string
}

// Record is one bar chart category.
type Record struct {
	Label  string
	Fields []Field
}

// Lookup returns the field with the given name.
func (r Record) Lookup(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
