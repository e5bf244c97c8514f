package catalog

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// FraudEventCount is the size of one generated event sample.
const FraudEventCount = 20

var fraudReasons = []string{
	"High payment decline rate",
	"Unusual transaction pattern",
	"New seller from high-risk region",
	"Rapid price changes detected",
	"Suspicious inventory behavior",
	"Multiple account flags",
}

// IntRand is the randomness needed to generate fraud events.
// *math/rand/v2.Rand satisfies it.
type IntRand interface {
	domain.Rand
	IntN(n int) int
}

// FraudEvents generates n events within the two hours before now, newest
// first. The same seed yields the same sample.
func FraudEvents(r IntRand, now time.Time, n int) []domain.FraudEvent {
	events := make([]domain.FraudEvent, n)
	for i := range events {
		events[i] = domain.FraudEvent{
			Timestamp:  now.Add(-time.Duration(1+r.IntN(120)) * time.Minute),
			SellerID:   fmt.Sprintf("S%d", 10000+r.IntN(90000)),
			RiskScore:  round(0.1+r.Float64()*0.85, 3),
			RiskLevel:  domain.RiskLevels[r.IntN(len(domain.RiskLevels))],
			Confidence: round(0.7+r.Float64()*0.29, 3),
			Reason:     fraudReasons[r.IntN(len(fraudReasons))],
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

// RiskDistribution counts events per risk level, in level order. Levels
// with no events are omitted.
func RiskDistribution(events []domain.FraudEvent) []domain.Share {
	counts := make(map[domain.RiskLevel]int, len(domain.RiskLevels))
	for _, e := range events {
		counts[e.RiskLevel]++
	}
	var out []domain.Share
	for _, l := range domain.RiskLevels {
		c := counts[l]
		if c == 0 {
			continue
		}
		out = append(out, domain.Share{
			Name:       string(l),
			Count:      c,
			Percentage: round(float64(c)/float64(len(events))*100, 1),
		})
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
