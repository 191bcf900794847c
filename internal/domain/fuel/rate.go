package fuel

import "math/rand/v2"

// RateStrategy drives one sale's dispensing progression. NextIncrement
// returns the dollar amount added by the next tick; ShouldStop models the
// customer replacing the nozzle before the authorized ceiling is reached,
// which is a legitimate completion path rather than an error.
type RateStrategy interface {
	NextIncrement() float64
	ShouldStop() bool
}

// RandomRate reproduces the hardware simulation: uniform increments within
// [min,max] and a fixed per-tick probability of an early stop.
type RandomRate struct {
	min      float64
	max      float64
	stopProb float64
}

func NewRandomRate(minIncrement, maxIncrement, stopProbability float64) *RandomRate {
	if maxIncrement < minIncrement {
		maxIncrement = minIncrement
	}
	return &RandomRate{min: minIncrement, max: maxIncrement, stopProb: stopProbability}
}

func (r *RandomRate) NextIncrement() float64 {
	return r.min + rand.Float64()*(r.max-r.min)
}

func (r *RandomRate) ShouldStop() bool {
	return rand.Float64() < r.stopProb
}

// FixedRate dispenses a constant increment and never stops early.
// Intended for deterministic tests.
type FixedRate struct {
	Increment float64
}

func (r FixedRate) NextIncrement() float64 { return r.Increment }
func (r FixedRate) ShouldStop() bool       { return false }
