package templates

import (
	"fmt"
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/util"
)

func formatRatio(r float64) string {
	return util.FormatRatio(r)
}

func formatScore(s float64) string {
	return util.FormatScore(s)
}

func formatPercent(p float64) string {
	return util.FormatPercent(p)
}

func formatTimestamp(t time.Time) string {
	return util.FormatTimestamp(t)
}

// pollAttrs returns the htmx attributes for p, or nothing when p is off.
func pollAttrs(p Poll) safe {
	if p.Every <= 0 || p.URL == "" {
		return ""
	}
	return safe(fmt.Sprintf(` hx-get="%s" hx-trigger="every %dms" hx-swap="outerHTML"`, p.URL, p.Every.Milliseconds()))
}

func trendArrow(t domain.Trend) string {
	switch t {
	case domain.TrendUp:
		return "↑"
	case domain.TrendDown:
		return "↓"
	default:
		return "→"
	}
}

func healthIcon(s domain.HealthStatus) string {
	switch s {
	case domain.HealthHealthy:
		return "🟢"
	case domain.HealthWarning:
		return "🟡"
	default:
		return "🔴"
	}
}

func stepIcon(s domain.StepStatus) string {
	switch s {
	case domain.StepCompleted:
		return "✅"
	case domain.StepRunning:
		return "🔄"
	case domain.StepFailed:
		return "❌"
	default:
		return "⏳"
	}
}
