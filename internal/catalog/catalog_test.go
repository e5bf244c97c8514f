package catalog

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestOverviewMetrics_LiveCardsInsideBands(t *testing.T) {
	live := 0
	for _, m := range OverviewMetrics() {
		if !m.Trend.Valid() {
			t.Errorf("%s: invalid trend %q", m.Key, m.Trend)
		}
		if m.Band == nil {
			continue
		}
		live++
		if !m.Band.Contains(m.Value) {
			t.Errorf("%s: initial value %v outside band", m.Key, m.Value)
		}
	}
	if live != 3 {
		t.Errorf("expected 3 live metrics, got %d", live)
	}
}

func TestOverviewMetrics_FreshCopies(t *testing.T) {
	a := OverviewMetrics()
	a[2].Value = 0
	if b := OverviewMetrics(); b[2].Value != 24 {
		t.Errorf("expected fresh value 24, got %v", b[2].Value)
	}
}

func TestPerformancePoints_LastInsideBands(t *testing.T) {
	pts := PerformancePoints()
	last := pts[len(pts)-1]
	for i, b := range LatencyBands {
		if !b.Contains(last.Values[i]) {
			t.Errorf("series %d: %v outside band", i, last.Values[i])
		}
	}
	if len(last.Values) != len(LatencySeries) {
		t.Errorf("expected %d values, got %d", len(LatencySeries), len(last.Values))
	}
}

func TestFlowDistribution_Sums100(t *testing.T) {
	sum := 0.0
	for _, s := range FlowDistribution() {
		sum += s.Percentage
	}
	if sum != 100 {
		t.Errorf("expected 100, got %v", sum)
	}
}

func TestStaticPanels_Sizes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"health", len(SystemHealth()), 6},
		{"activity", len(RecentActivity()), 8},
		{"data scientist cards", len(DataScientistMetrics()), 4},
		{"mlops cards", len(MLOpsMetrics()), 4},
		{"deployments", len(RecentDeployments()), 3},
		{"resources", len(ResourceUtilisation()), 4},
		{"alerts", len(RecentAlerts()), 3},
		{"risk cards", len(RiskMetrics()), 4},
		{"strategies", len(ActiveStrategies()), 3},
		{"executive kpis", len(ExecutiveKPIs()), 5},
		{"roi", len(ROIGrowth()), 6},
		{"cost savings", len(CostSavings()), 4},
		{"objectives", len(StrategicObjectives()), 4},
		{"productivity", len(TeamProductivity()), 4},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}

func TestFraudEvents(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	events := FraudEvents(rand.New(rand.NewPCG(9, 9)), now, FraudEventCount)

	if len(events) != FraudEventCount {
		t.Fatalf("expected %d events, got %d", FraudEventCount, len(events))
	}
	for i, e := range events {
		if e.RiskScore < 0.1 || e.RiskScore > 0.95 {
			t.Errorf("event %d: risk score %v out of range", i, e.RiskScore)
		}
		if e.Confidence < 0.7 || e.Confidence > 0.99 {
			t.Errorf("event %d: confidence %v out of range", i, e.Confidence)
		}
		if !e.RiskLevel.Valid() {
			t.Errorf("event %d: invalid level %q", i, e.RiskLevel)
		}
		if age := now.Sub(e.Timestamp); age < time.Minute || age > 120*time.Minute {
			t.Errorf("event %d: age %v out of range", i, age)
		}
		if i > 0 && e.Timestamp.After(events[i-1].Timestamp) {
			t.Errorf("event %d: expected newest first", i)
		}
	}

	again := FraudEvents(rand.New(rand.NewPCG(9, 9)), now, FraudEventCount)
	if again[0] != events[0] {
		t.Errorf("expected deterministic sample, got %+v vs %+v", again[0], events[0])
	}
}

func TestRiskDistribution(t *testing.T) {
	events := FraudEvents(rand.New(rand.NewPCG(1, 2)), time.Now(), FraudEventCount)
	shares := RiskDistribution(events)

	total := 0
	for _, s := range shares {
		total += s.Count
	}
	if total != len(events) {
		t.Errorf("expected counts to sum to %d, got %d", len(events), total)
	}
	if got := RiskDistribution(nil); len(got) != 0 {
		t.Errorf("expected no shares for no events, got %v", got)
	}
}
