package domain

// Rand is the randomness source used by jitter. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// Uniform returns a value drawn from [-delta, delta).
func Uniform(r Rand, delta float64) float64 {
	return (r.Float64()*2 - 1) * delta
}

// Jitter returns clamp(Low, High, prev + uniform(-Delta, Delta)).
func (b Band) Jitter(prev float64, r Rand) float64 {
	return b.Clamp(prev + Uniform(r, b.Delta))
}
