package component

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestResolveDamage(t *testing.T) {
	cases := []struct {
		name         string
		damage       float64
		shield       float64
		health       float64
		wantShield   float64
		wantHealth   float64
		wantAbsorbed bool
	}{
		{"no_shield", 30, 0, 100, 0, 70, false},
		{"shield_absorbs", 30, 50, 100, 20, 100, true},
		{"shield_breaks", 50, 20, 100, 0, 70, false},
		{"exact_shield", 20, 20, 100, 0, 100, true},
		{"lethal", 10, 0, 10, 0, 0, false},
		{"overkill_goes_negative", 40, 5, 10, 0, -25, false},
		{"negative_damage_is_zero", -15, 5, 10, 5, 10, true},
		{"nan_damage_is_zero", math.NaN(), 0, 10, 0, 10, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, h, a := ResolveDamage(c.damage, c.shield, c.health)
			if s != c.wantShield || h != c.wantHealth || a != c.wantAbsorbed {
				t.Fatalf("ResolveDamage(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					c.damage, c.shield, c.health, s, h, a, c.wantShield, c.wantHealth, c.wantAbsorbed)
			}
		})
	}
}

func TestResolveDamageProperties(t *testing.T) {
	for damage := 0.0; damage <= 60; damage += 7.5 {
		for shield := 0.0; shield <= 60; shield += 10 {
			health := 50.0
			s, h, _ := ResolveDamage(damage, shield, health)
			if damage <= shield {
				if s != shield-damage || h != health {
					t.Fatalf("d=%v s=%v: got (%v, %v)", damage, shield, s, h)
				}
				continue
			}
			if s != 0 || h != health-(damage-shield) {
				t.Fatalf("d=%v s=%v: got (%v, %v)", damage, shield, s, h)
			}
		}
	}
}

func TestCombatEventEmitter(t *testing.T) {
	var em CombatEventEmitter
	var got []CombatEventType
	em.Subscribe(func(evt CombatEvent) { got = append(got, evt.Type) })
	em.Subscribe(nil)
	em.Emit(CombatEvent{Type: EventDamageApplied})
	em.Emit(CombatEvent{Type: EventDeath})

	if len(got) != 2 || got[0] != EventDamageApplied || got[1] != EventDeath {
		t.Fatalf("unexpected events %v", got)
	}

	var nilEmitter *CombatEventEmitter
	nilEmitter.Emit(CombatEvent{Type: EventDeath})
}

func TestFlashColor(t *testing.T) {
	start := FlashStart(true)
	if start != FlashShield {
		t.Fatalf("absorbed hit should start green, got %v", start)
	}
	if FlashStart(false) != FlashHealth {
		t.Fatalf("health hit should start red")
	}

	mid, ok := colorful.MakeColor(FlashColor(FlashHealth, 0.5))
	if !ok {
		t.Fatalf("MakeColor failed")
	}
	if mid.R < 0.99 || mid.G < 0.45 || mid.G > 0.55 {
		t.Fatalf("midpoint blend = %v", mid)
	}

	end, _ := colorful.MakeColor(FlashColor(FlashHealth, 1))
	if !end.AlmostEqualRgb(FlashNeutral) {
		t.Fatalf("end colour = %v, want neutral", end)
	}
}
