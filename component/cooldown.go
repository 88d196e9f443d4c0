package component

import "math"

// CooldownGate regulates attack cadence. The gate opens once the elapsed
// time since it closed exceeds BaseUnits / attackSpeed. The attack speed is
// read on every Tick so speed changes take effect mid-cooldown.
type CooldownGate struct {
	Elapsed   float64
	Open      bool
	BaseUnits float64
}

// NewCooldownGate returns an open gate.
func NewCooldownGate(baseUnits float64) *CooldownGate {
	return &CooldownGate{Open: true, BaseUnits: baseUnits}
}

// Period is the cooldown length for the given attack speed. It reports
// false when attackSpeed is not positive or NaN, in which case the gate
// never reopens.
func (g *CooldownGate) Period(attackSpeed float64) (float64, bool) {
	if g == nil || !(attackSpeed > 0) {
		return 0, false
	}
	return g.BaseUnits / attackSpeed, true
}

// Tick accumulates dt while the gate is closed. A NaN dt counts as 0.
func (g *CooldownGate) Tick(dt, attackSpeed float64) {
	if g == nil || g.Open {
		return
	}
	if math.IsNaN(dt) {
		dt = 0
	}
	g.Elapsed += dt
	period, ok := g.Period(attackSpeed)
	if !ok {
		return
	}
	if g.Elapsed > period {
		g.Open = true
		g.Elapsed = 0
	}
}

// Consume closes the gate. Callers check Open first.
func (g *CooldownGate) Consume() {
	if g == nil {
		return
	}
	g.Open = false
}

// Reset reopens the gate and clears the accumulator.
func (g *CooldownGate) Reset() {
	if g == nil {
		return
	}
	g.Open = true
	g.Elapsed = 0
}
