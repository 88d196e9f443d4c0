package component

import "math"

// StatPool is a clamped numeric resource used for health, shield and the
// speed stats of a combat actor.
type StatPool struct {
	Current float64
	Max     float64
}

// NewStatPool creates a pool filled to max. A negative or NaN max is
// stored as 0.
func NewStatPool(max float64) *StatPool {
	if max < 0 || math.IsNaN(max) {
		max = 0
	}
	return &StatPool{Current: max, Max: max}
}

// Clamp adds delta to the current value, clamps the result to [0, Max] and
// returns it. A NaN delta counts as 0.
func (p *StatPool) Clamp(delta float64) float64 {
	if p == nil {
		return 0
	}
	if math.IsNaN(delta) {
		delta = 0
	}
	p.Current = clamp(p.Current+delta, 0, p.Max)
	return p.Current
}

// Set assigns the current value, clamped to [0, Max].
func (p *StatPool) Set(v float64) {
	if p == nil {
		return
	}
	p.Current = clamp(v, 0, p.Max)
}

// SetMax updates the maximum. Raising it leaves Current alone; lowering it
// below Current pulls Current down to the new maximum.
func (p *StatPool) SetMax(max float64) {
	if p == nil {
		return
	}
	if max < 0 || math.IsNaN(max) {
		max = 0
	}
	p.Max = max
	if p.Current > p.Max {
		p.Current = p.Max
	}
}

// Fraction reports Current/Max, or 0 for an empty pool.
func (p *StatPool) Fraction() float64 {
	if p == nil || p.Max <= 0 {
		return 0
	}
	return p.Current / p.Max
}

// clamp maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
