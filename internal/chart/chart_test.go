package chart

import (
	"bytes"
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

func points(n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = Point{Label: string(rune('A' + i)), Values: []float64{float64(20 + i), float64(1000 + 100*i)}}
	}
	return out
}

func records(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{
			Label:  string(rune('A' + i)),
			Fields: []Field{{Name: "accuracy", Value: float64(80 + i), Text: "8" + string(rune('0'+i))}},
		}
	}
	return out
}

func shares(n int) []domain.Share {
	out := make([]domain.Share, n)
	for i := range out {
		out[i] = domain.Share{Name: string(rune('A' + i)), Count: i + 1, Percentage: 10}
	}
	return out
}

func TestCharts_OneMarkPerRecordInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 6} {
		charts := map[string]Chart{
			"line":  Line("l", points(n), []string{"latency", "throughput"}),
			"bar":   Bar("b", records(n), "accuracy"),
			"donut": Donut("d", shares(n)),
		}
		for name, c := range charts {
			if len(c.Marks) != n {
				t.Errorf("%s with %d records: expected %d marks, got %d", name, n, n, len(c.Marks))
				continue
			}
			for i, m := range c.Marks {
				want := string(rune('A' + i))
				if m.Label != want {
					t.Errorf("%s mark %d: expected label %q, got %q", name, i, want, m.Label)
				}
			}
		}
	}
}

func TestLine_LegendPerSeries(t *testing.T) {
	c := Line("l", points(3), []string{"latency", "throughput"})

	if len(c.Legend) != 2 {
		t.Fatalf("expected 2 legend entries, got %d", len(c.Legend))
	}
	if c.Legend[0].Color != Palette[0] || c.Legend[1].Color != Palette[1] {
		t.Errorf("expected palette order, got %+v", c.Legend)
	}
	if got := c.Marks[1].Tooltip; len(got) != 3 || got[1] != "latency: 21" {
		t.Errorf("expected verbatim tooltip, got %v", got)
	}
}

func TestBar_MissingFieldIsZero(t *testing.T) {
	c := Bar("b", records(2), "recall")
	for _, m := range c.Marks {
		if m.H != 0 {
			t.Errorf("expected zero height for missing field, got %v", m.H)
		}
	}
}

func TestBar_TallestFillsPlot(t *testing.T) {
	c := Bar("b", records(3), "accuracy")
	want := float64(c.Height) - 2*pad
	if got := c.Marks[2].H; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected tallest bar %v, got %v", want, got)
	}
}

func TestColor_Wraps(t *testing.T) {
	if Color(len(Palette)) != Palette[0] {
		t.Errorf("expected colour to wrap to %s, got %s", Palette[0], Color(len(Palette)))
	}
	c := Bar("b", records(7), "accuracy")
	if c.Legend[6].Color != Palette[1] {
		t.Errorf("expected 7th legend colour %s, got %s", Palette[1], c.Legend[6].Color)
	}
}

func TestDonut_PercentagesPreserved(t *testing.T) {
	tests := []struct {
		name   string
		slices []domain.Share
	}{
		{"deployment flows", []domain.Share{
			{Name: "Standard", Count: 156, Percentage: 45},
			{Name: "Canary", Count: 89, Percentage: 26},
			{Name: "Blue-Green", Count: 67, Percentage: 19},
			{Name: "Emergency", Count: 34, Percentage: 10},
		}},
		{"under 100", []domain.Share{{Name: "a", Percentage: 30}, {Name: "b", Percentage: 20}}},
		{"over 100", []domain.Share{{Name: "a", Percentage: 80}, {Name: "b", Percentage: 70}}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Donut(tt.name, tt.slices)
			in := 0.0
			for i, s := range tt.slices {
				in += s.Percentage
				if c.Marks[i].Percentage != s.Percentage {
					t.Errorf("segment %d: expected %v, got %v", i, s.Percentage, c.Marks[i].Percentage)
				}
				if want := s.Percentage / 100 * 2 * math.Pi; math.Abs(c.Marks[i].Sweep-want) > 1e-9 {
					t.Errorf("segment %d: expected sweep %v, got %v", i, want, c.Marks[i].Sweep)
				}
			}
			if math.Abs(c.Total()-in) > 1e-9 {
				t.Errorf("expected total %v, got %v", in, c.Total())
			}
		})
	}
}

func TestJitterLast_OnlyLastPoint(t *testing.T) {
	in := points(6)
	bands := []domain.Band{{Low: 20, High: 30, Delta: 1}, {Low: 1000, High: 2500, Delta: 100}}
	r := rand.New(rand.NewPCG(3, 4))

	out := in
	for i := 0; i < 1000; i++ {
		out = JitterLast(out, bands, r)
		last := out[len(out)-1]
		for j, v := range last.Values {
			if !bands[j].Contains(v) {
				t.Fatalf("tick %d: value %d = %v outside band", i, j, v)
			}
		}
	}
	for i := 0; i < len(in)-1; i++ {
		for j := range in[i].Values {
			if out[i].Values[j] != in[i].Values[j] {
				t.Errorf("point %d changed: %v -> %v", i, in[i].Values, out[i].Values)
			}
		}
	}
	if in[5].Values[0] != 25 {
		t.Errorf("expected input untouched, got %v", in[5].Values)
	}
}

func TestJitterLast_Empty(t *testing.T) {
	if got := JitterLast(nil, nil, rand.New(rand.NewPCG(1, 1))); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestSVG_RendersTooltips(t *testing.T) {
	c := Bar("Model <Accuracy>", records(2), "accuracy")

	var buf bytes.Buffer
	if err := c.SVG().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	if strings.Count(out, "<title>") != 2 {
		t.Errorf("expected 2 tooltips, got %d", strings.Count(out, "<title>"))
	}
	if strings.Contains(out, "<Accuracy>") {
		t.Error("expected title to be escaped")
	}
	if !strings.Contains(out, "accuracy: 80") {
		t.Errorf("expected verbatim field text in tooltip, got %s", out)
	}
}
