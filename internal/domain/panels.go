package domain

import "time"

// HealthStatus is the state of a platform component.
type HealthStatus string

const (
	HealthHealthy HealthStatus = "healthy"
	HealthWarning HealthStatus = "warning"
	HealthDown    HealthStatus = "down"
)

type HealthComponent struct {
	Name         string
	Status       HealthStatus
	Uptime       string
	ResponseTime string
}

// Severity colours activity and alert rows.
type Severity string

const (
	SeveritySuccess  Severity = "success"
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

type Activity struct {
	When     string
	Event    string
	Kind     string
	Severity Severity
}

type Deployment struct {
	Model       string
	Environment string
	Status      StepStatus
	When        string
}

type Alert struct {
	Severity Severity
	Message  string
	When     string
}

// Strategy is a fraud-prevention rule shown to Risk Operations.
type Strategy struct {
	Name          string
	Status        string
	Effectiveness string
}

// Objective tracks an executive KPI against its target.
type Objective struct {
	Name    string
	Target  float64
	Current float64
	Status  string
}

// Progress is Current/Target capped to [0, 1].
func (o Objective) Progress() float64 {
	if o.Target <= 0 {
		return 0
	}
	p := o.Current / o.Target
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

type ProductivityMetric struct {
	Metric      string
	Improvement string
	Status      string
}

// RiskLevel grades a fraud detection event.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskLevels lists the levels from least to most severe.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

type FraudEvent struct {
	Timestamp  time.Time
	SellerID   string
	RiskScore  float64
	RiskLevel  RiskLevel
	Confidence float64
	Reason     string
}

// Share is one slice of a categorical distribution, e.g. deployments per
// flow. Percentage is display data and is never renormalised.
type Share struct {
	Name       string
	Count      int
	Percentage float64
}

// Sample is a labelled numeric value for bar charts.
type Sample struct {
	Label string
	Value float64
}
