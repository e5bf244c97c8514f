package web

import (
	"fmt"

	"github.com/emiliopalmerini/mlopsdemo/internal/catalog"
	"github.com/emiliopalmerini/mlopsdemo/internal/chart"
	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/util"
)

func performanceChart(points []chart.Point) chart.Chart {
	return chart.Line("Latency & Throughput (24h)", points, catalog.LatencySeries)
}

func modelChart(models []domain.ModelPerformance) chart.Chart {
	records := make([]chart.Record, len(models))
	for i, m := range models {
		records[i] = chart.Record{
			Label: m.Name,
			Fields: []chart.Field{
				{Name: "Accuracy", Value: m.Accuracy, Text: util.FormatPercent(m.Accuracy)},
				{Name: "Precision", Value: m.Precision, Text: util.FormatPercent(m.Precision)},
				{Name: "Recall", Value: m.Recall, Text: util.FormatPercent(m.Recall)},
				{Name: "F1", Value: m.F1, Text: util.FormatPercent(m.F1)},
			},
		}
	}
	return chart.Bar("Model Performance", records, "Accuracy")
}

func featureChart(features []domain.Feature) chart.Chart {
	records := make([]chart.Record, len(features))
	for i, f := range features {
		records[i] = chart.Record{
			Label: f.Name,
			Fields: []chart.Field{
				{Name: "Importance", Value: f.Importance, Text: util.FormatScore(f.Importance)},
				{Name: "Type", Text: f.Type.String()},
				{Name: "Source", Text: f.Source},
			},
		}
	}
	return chart.Bar("Feature Importance", records, "Importance")
}

// sampleChart is a single-field bar chart; format renders each value.
func sampleChart(title, field, format string, samples []domain.Sample) chart.Chart {
	records := make([]chart.Record, len(samples))
	for i, s := range samples {
		records[i] = chart.Record{
			Label:  s.Label,
			Fields: []chart.Field{{Name: field, Value: s.Value, Text: fmt.Sprintf(format, s.Value)}},
		}
	}
	return chart.Bar(title, records, field)
}

// sampleLine turns samples into a one-series line chart.
func sampleLine(title, series string, samples []domain.Sample) chart.Chart {
	points := make([]chart.Point, len(samples))
	for i, s := range samples {
		points[i] = chart.Point{Label: s.Label, Values: []float64{s.Value}}
	}
	return chart.Line(title, points, []string{series})
}
