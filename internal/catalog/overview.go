// Package catalog holds the fixed datasets behind every dashboard panel.
// Each call returns fresh values so callers may mutate them.
package catalog

import (
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/chart"
	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

const (
	MetricPeriod = 2 * time.Second
	ChartPeriod  = 3 * time.Second
	StepPeriod   = 2 * time.Second
)

// OverviewMetrics are the six platform KPI cards. Response time, fraud
// prevention and uptime are live.
func OverviewMetrics() []domain.Metric {
	return []domain.Metric{
		{Key: "total_models", Title: "Total Models", Value: 47, Format: "%.0f", Change: "+3 this week", Trend: domain.TrendUp, Icon: "🧠", Color: "#3b82f6"},
		{Key: "active_deployments", Title: "Active Deployments", Value: 12, Format: "%.0f", Change: "+2 today", Trend: domain.TrendUp, Icon: "🚀", Color: "#10b981"},
		{Key: "avg_latency", Title: "Avg Response Time", Value: 24, Format: "%.1fms", Change: "Target: <50ms", Trend: domain.TrendDown, Icon: "⚡", Color: "#f59e0b",
			Band: &domain.Band{Low: 20, High: 30, Delta: 1}},
		{Key: "fraud_prevented", Title: "Fraud Prevention Rate", Value: 89.7, Format: "%.1f%%", Change: "+2.3% vs last month", Trend: domain.TrendUp, Icon: "🛡️", Color: "#ef4444",
			Band: &domain.Band{Low: 85, High: 95, Delta: 0.25}},
		{Key: "cost_savings", Title: "Cost Savings", Value: 2.4, Format: "$%.1fM", Change: "This quarter", Trend: domain.TrendUp, Icon: "💰", Color: "#10b981"},
		{Key: "system_uptime", Title: "System Uptime", Value: 99.95, Format: "%.2f%%", Change: "Last 30 days", Trend: domain.TrendStable, Icon: "🔄", Color: "#8b5cf6",
			Band: &domain.Band{Low: 99.9, High: 100, Delta: 0.005}},
	}
}

// LatencySeries names the two values of each performance point.
var LatencySeries = []string{"Latency (ms)", "Throughput (req/s)"}

// LatencyBands bounds the live last point of the performance chart.
var LatencyBands = []domain.Band{
	{Low: 20, High: 30, Delta: 1},
	{Low: 1000, High: 2500, Delta: 100},
}

// PerformancePoints is the initial 24h latency/throughput series.
func PerformancePoints() []chart.Point {
	return []chart.Point{
		{Label: "00:00", Values: []float64{25, 1200}},
		{Label: "04:00", Values: []float64{23, 1350}},
		{Label: "08:00", Values: []float64{28, 1800}},
		{Label: "12:00", Values: []float64{26, 2100}},
		{Label: "16:00", Values: []float64{24, 1950}},
		{Label: "20:00", Values: []float64{22, 1600}},
	}
}

// FlowDistribution is the share of deployments per flow type.
func FlowDistribution() []domain.Share {
	return []domain.Share{
		{Name: "Same Project", Count: 156, Percentage: 45},
		{Name: "Cross-Project", Count: 89, Percentage: 26},
		{Name: "Element→WCNP", Count: 67, Percentage: 19},
		{Name: "External→Element", Count: 34, Percentage: 10},
	}
}

func SystemHealth() []domain.HealthComponent {
	return []domain.HealthComponent{
		{Name: "Model Serving", Status: domain.HealthHealthy, Uptime: "99.98%", ResponseTime: "23ms"},
		{Name: "Feature Store", Status: domain.HealthHealthy, Uptime: "99.95%", ResponseTime: "12ms"},
		{Name: "Data Pipeline", Status: domain.HealthHealthy, Uptime: "99.92%", ResponseTime: "45ms"},
		{Name: "Monitoring", Status: domain.HealthWarning, Uptime: "98.87%", ResponseTime: "78ms"},
		{Name: "API Gateway", Status: domain.HealthHealthy, Uptime: "99.99%", ResponseTime: "8ms"},
		{Name: "Authentication", Status: domain.HealthHealthy, Uptime: "99.94%", ResponseTime: "15ms"},
	}
}

// RecentActivity is the activity feed, newest first.
func RecentActivity() []domain.Activity {
	return []domain.Activity{
		{When: "2 min ago", Event: "Model fraud-detector-v2.1 deployed to production", Kind: "deployment", Severity: domain.SeveritySuccess},
		{When: "5 min ago", Event: "High-risk seller flagged: Seller ID 12847", Kind: "alert", Severity: domain.SeverityWarning},
		{When: "12 min ago", Event: "Feature store updated with new payment patterns", Kind: "update", Severity: domain.SeverityInfo},
		{When: "18 min ago", Event: "A/B test started: Champion vs Challenger model", Kind: "experiment", Severity: domain.SeverityInfo},
		{When: "25 min ago", Event: "Data pipeline completed: 2.3M transactions processed", Kind: "pipeline", Severity: domain.SeveritySuccess},
		{When: "35 min ago", Event: "Model performance alert: Accuracy dropped to 87%", Kind: "alert", Severity: domain.SeverityError},
		{When: "42 min ago", Event: "New feature deployed: real-time risk scoring", Kind: "deployment", Severity: domain.SeveritySuccess},
		{When: "1 hour ago", Event: "Weekly model retraining completed successfully", Kind: "training", Severity: domain.SeveritySuccess},
	}
}
