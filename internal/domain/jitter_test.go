package domain

import (
	"math/rand/v2"
	"testing"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestBand_Jitter_StaysInBand(t *testing.T) {
	bands := map[string]Band{
		"latency":    {Low: 20, High: 30, Delta: 1},
		"fraud":      {Low: 85, High: 95, Delta: 0.25},
		"uptime":     {Low: 99.9, High: 100, Delta: 0.005},
		"throughput": {Low: 1000, High: 2500, Delta: 100},
	}
	r := rand.New(rand.NewPCG(1, 2))

	for name, b := range bands {
		t.Run(name, func(t *testing.T) {
			v := b.Low
			for i := 0; i < 10000; i++ {
				v = b.Jitter(v, r)
				if !b.Contains(v) {
					t.Fatalf("tick %d: %v left [%v, %v]", i, v, b.Low, b.High)
				}
			}
		})
	}
}

func TestBand_Jitter_Extremes(t *testing.T) {
	b := Band{Low: 20, High: 30, Delta: 1}

	if got := b.Jitter(29.9, fixedRand(0.999999)); got != 30 {
		t.Errorf("expected clamp to 30, got %v", got)
	}
	if got := b.Jitter(20.2, fixedRand(0)); got != 20 {
		t.Errorf("expected clamp to 20, got %v", got)
	}
	if got := b.Jitter(25, fixedRand(0.5)); got != 25 {
		t.Errorf("expected midpoint draw to keep 25, got %v", got)
	}
}
