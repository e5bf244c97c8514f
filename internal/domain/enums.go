package domain

func (t Trend) String() string            { return string(t) }
func (s ExperimentStatus) String() string { return string(s) }
func (t FeatureType) String() string      { return string(t) }
func (v ViewID) String() string           { return string(v) }
func (s StepStatus) String() string       { return string(s) }
func (s HealthStatus) String() string     { return string(s) }
func (s Severity) String() string         { return string(s) }
func (l RiskLevel) String() string        { return string(l) }

func (s HealthStatus) Valid() bool {
	switch s {
	case HealthHealthy, HealthWarning, HealthDown:
		return true
	}
	return false
}

func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	}
	return false
}

func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}
