package component

import (
	"math"
	"testing"
)

func TestCooldownGateStartsOpen(t *testing.T) {
	g := NewCooldownGate(5)
	if !g.Open || g.Elapsed != 0 {
		t.Fatalf("new gate = %+v, want open with zero elapsed", *g)
	}
	g.Tick(10, 1)
	if !g.Open || g.Elapsed != 0 {
		t.Fatalf("open gate must not accumulate, got %+v", *g)
	}
}

func TestCooldownGateReopensAfterPeriod(t *testing.T) {
	// attackSpeed=2, base=5 -> period 2.5; reopening needs elapsed > 2.5
	g := NewCooldownGate(5)
	g.Consume()

	for i := 0; i < 5; i++ {
		g.Tick(0.5, 2)
		if g.Open {
			t.Fatalf("gate opened early after %v", float64(i+1)*0.5)
		}
	}
	if g.Elapsed != 2.5 {
		t.Fatalf("Elapsed = %v, want 2.5", g.Elapsed)
	}

	g.Tick(0.01, 2)
	if !g.Open {
		t.Fatalf("gate should be open once elapsed exceeds 2.5")
	}
	if g.Elapsed != 0 {
		t.Fatalf("open gate must have zero elapsed, got %v", g.Elapsed)
	}
}

func TestCooldownGateRecomputesPeriodEachTick(t *testing.T) {
	g := NewCooldownGate(5)
	g.Consume()

	g.Tick(1, 1) // period 5
	if g.Open {
		t.Fatalf("gate should still be closed")
	}
	g.Tick(0.5, 10) // period now 0.5, elapsed 1.5
	if !g.Open {
		t.Fatalf("speed boost should shorten the running cooldown")
	}
}

func TestCooldownGateNonPositiveSpeed(t *testing.T) {
	g := NewCooldownGate(5)
	g.Consume()
	for i := 0; i < 100; i++ {
		g.Tick(1, 0)
	}
	if g.Open {
		t.Fatalf("gate must stay closed with zero attack speed")
	}
	if _, ok := g.Period(-1); ok {
		t.Fatalf("Period should reject negative speed")
	}

	g.Reset()
	if !g.Open || g.Elapsed != 0 {
		t.Fatalf("Reset should reopen the gate")
	}
}

func TestCooldownGateMinimumSpacing(t *testing.T) {
	cases := []struct {
		name  string
		speed float64
		dt    float64
	}{
		{"slow_fine_steps", 1, 1.0 / 60},
		{"fast_fine_steps", 4, 1.0 / 60},
		{"coarse_steps", 2, 0.3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewCooldownGate(5)
			period, _ := g.Period(c.speed)
			now := 0.0
			last := -1.0
			for step := 0; step < 2000; step++ {
				now += c.dt
				g.Tick(c.dt, c.speed)
				if !g.Open {
					continue
				}
				if last >= 0 && now-last < period-1e-9 {
					t.Fatalf("attacks %v apart, period %v", now-last, period)
				}
				last = now
				g.Consume()
			}
		})
	}
}

func TestCooldownGateIgnoresNaN(t *testing.T) {
	g := NewCooldownGate(5)
	g.Consume()

	g.Tick(math.NaN(), 1)
	if g.Open || g.Elapsed != 0 {
		t.Fatalf("NaN dt should count as zero, got %+v", *g)
	}
	g.Tick(6, 1)
	if !g.Open {
		t.Fatalf("gate should reopen after a NaN tick, got %+v", *g)
	}

	g.Consume()
	for i := 0; i < 10; i++ {
		g.Tick(1, math.NaN())
	}
	if g.Open {
		t.Fatalf("NaN attack speed must keep the gate closed")
	}
	if _, ok := g.Period(math.NaN()); ok {
		t.Fatalf("Period should reject NaN speed")
	}
}
