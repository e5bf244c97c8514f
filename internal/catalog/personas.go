package catalog

import "github.com/emiliopalmerini/mlopsdemo/internal/domain"

func card(key, title, text, change string, trend domain.Trend, icon, color string) domain.Metric {
	return domain.Metric{Key: key, Title: title, Text: text, Change: change, Trend: trend, Icon: icon, Color: color}
}

func DataScientistMetrics() []domain.Metric {
	return []domain.Metric{
		card("active_experiments", "Active Experiments", "8", "+2 this week", domain.TrendUp, "🧪", "#8b5cf6"),
		card("best_accuracy", "Best Model Accuracy", "92.1%", "+3.2%", domain.TrendUp, "🎯", "#10b981"),
		card("training_time", "Training Time", "2.3h", "15% faster", domain.TrendDown, "⏱️", "#3b82f6"),
		card("features", "Features Available", "247", "+12 new", domain.TrendUp, "📊", "#f59e0b"),
	}
}

func MLOpsMetrics() []domain.Metric {
	return []domain.Metric{
		card("pipelines", "Active Pipelines", "15", "+3", domain.TrendUp, "🔄", "#3b82f6"),
		card("deploy_success", "Deployment Success", "97.3%", "+0.5%", domain.TrendUp, "✅", "#10b981"),
		card("deploy_time", "Avg Deploy Time", "8m 32s", "-2m", domain.TrendDown, "⏱️", "#f59e0b"),
		card("infra_cost", "Infrastructure Cost", "$12.4K", "-8%", domain.TrendDown, "💰", "#8b5cf6"),
	}
}

func RecentDeployments() []domain.Deployment {
	return []domain.Deployment{
		{Model: "Fraud Detector v2.1", Environment: "Production", Status: domain.StepCompleted, When: "2 min ago"},
		{Model: "Risk Scorer v1.3", Environment: "Staging", Status: domain.StepRunning, When: "5 min ago"},
		{Model: "Behavior Analyzer", Environment: "Development", Status: domain.StepFailed, When: "15 min ago"},
	}
}

// ResourceUtilisation is cluster usage in percent per resource.
func ResourceUtilisation() []domain.Sample {
	return []domain.Sample{
		{Label: "CPU", Value: 65},
		{Label: "Memory", Value: 78},
		{Label: "Storage", Value: 45},
		{Label: "Network", Value: 32},
	}
}

func ClusterStatus() []domain.Metric {
	return []domain.Metric{
		card("nodes", "Active Nodes", "12", "+2", domain.TrendUp, "🖥️", "#3b82f6"),
		card("pods", "Running Pods", "156", "+8", domain.TrendUp, "📦", "#10b981"),
		card("cpu", "Available CPU", "45 cores", "-3", domain.TrendDown, "⚙️", "#f59e0b"),
		card("memory", "Available Memory", "128 GB", "-8 GB", domain.TrendDown, "💾", "#8b5cf6"),
	}
}

func RecentAlerts() []domain.Alert {
	return []domain.Alert{
		{Severity: domain.SeverityWarning, Message: "High memory usage on node-3", When: "5 min ago"},
		{Severity: domain.SeverityCritical, Message: "Model endpoint timeout", When: "12 min ago"},
		{Severity: domain.SeverityInfo, Message: "Auto-scaling triggered", When: "18 min ago"},
	}
}

func RiskMetrics() []domain.Metric {
	return []domain.Metric{
		card("fraud_prevented", "Fraud Prevented", "89.7%", "+2.3%", domain.TrendUp, "🛡️", "#10b981"),
		card("high_risk_alerts", "High Risk Alerts", "23", "+5", domain.TrendUp, "🚨", "#ef4444"),
		card("response_time", "Avg Response Time", "1.2s", "-0.3s", domain.TrendDown, "⚡", "#3b82f6"),
		card("cost_savings", "Cost Savings", "$2.4M", "+$340K", domain.TrendUp, "💰", "#f59e0b"),
	}
}

func ActiveStrategies() []domain.Strategy {
	return []domain.Strategy{
		{Name: "High Decline Rate Block", Status: "Active", Effectiveness: "94.2%"},
		{Name: "New Seller Verification", Status: "Testing", Effectiveness: "87.5%"},
		{Name: "Velocity Check", Status: "Active", Effectiveness: "91.8%"},
	}
}

func ExecutiveKPIs() []domain.Metric {
	return []domain.Metric{
		card("roi", "Platform ROI", "340%", "+45%", domain.TrendUp, "📈", "#10b981"),
		card("cost_savings", "Cost Savings", "$2.4M", "+$340K", domain.TrendUp, "💰", "#3b82f6"),
		card("time_to_market", "Time to Market", "67% faster", "+12%", domain.TrendUp, "🚀", "#f59e0b"),
		card("adoption", "Platform Adoption", "90%", "+15%", domain.TrendUp, "👥", "#8b5cf6"),
		card("accuracy", "Model Accuracy", "92.1%", "+3.2%", domain.TrendUp, "🎯", "#ef4444"),
	}
}

// ROIGrowth is platform ROI in percent per quarter.
func ROIGrowth() []domain.Sample {
	return []domain.Sample{
		{Label: "Q1 2023", Value: 120},
		{Label: "Q2 2023", Value: 180},
		{Label: "Q3 2023", Value: 235},
		{Label: "Q4 2023", Value: 280},
		{Label: "Q1 2024", Value: 315},
		{Label: "Q2 2024", Value: 340},
	}
}

// CostSavings is savings in $M per category.
func CostSavings() []domain.Sample {
	return []domain.Sample{
		{Label: "Fraud Prevention", Value: 1.2},
		{Label: "Operational Efficiency", Value: 0.6},
		{Label: "Developer Productivity", Value: 0.4},
		{Label: "Infrastructure", Value: 0.2},
	}
}

func StrategicObjectives() []domain.Objective {
	return []domain.Objective{
		{Name: "Fraud Prevention Rate", Target: 95, Current: 89.7, Status: "On Track"},
		{Name: "Platform Adoption", Target: 95, Current: 90, Status: "Ahead"},
		{Name: "Model Accuracy", Target: 90, Current: 92.1, Status: "Exceeded"},
		{Name: "Cost Reduction", Target: 20, Current: 24, Status: "Exceeded"},
	}
}

func TeamProductivity() []domain.ProductivityMetric {
	return []domain.ProductivityMetric{
		{Metric: "Model Development Time", Improvement: "-67%", Status: "Excellent"},
		{Metric: "Deployment Frequency", Improvement: "+340%", Status: "Excellent"},
		{Metric: "Issue Resolution", Improvement: "-45%", Status: "Good"},
		{Metric: "Feature Velocity", Improvement: "+125%", Status: "Excellent"},
	}
}
