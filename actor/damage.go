package actor

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/component"
)

// ApplyDamage runs damage through the shield and health pools, flashes the
// sprite and runs the death transition if the hit was lethal. Damage to a
// dead actor is ignored.
func (a *Actor) ApplyDamage(damage float64) {
	if a == nil || a.dead {
		return
	}
	if damage < 0 || math.IsNaN(damage) {
		a.log.Warn("invalid damage rejected", "damage", damage)
	}

	shield, health, absorbed := component.ResolveDamage(damage, a.shield.Current, a.health.Current)
	a.shield.Set(shield)
	// A negative result commits as 0; liveness only looks at the sign.
	a.health.Set(health)

	a.startFlash(absorbed)

	evtType := component.EventDamageApplied
	if absorbed {
		evtType = component.EventShieldHit
	}
	pos := a.Position()
	a.events.Emit(component.CombatEvent{
		Type:     evtType,
		Actor:    a.Name(),
		Damage:   damage,
		PosX:     pos.X,
		PosY:     pos.Y,
		Absorbed: absorbed,
	})

	a.publishStats()
	a.publishState()

	if !a.IsAlive() {
		a.die()
	}
}

// startFlash cancels any running flash and starts a new one.
func (a *Actor) startFlash(absorbed bool) {
	if a.flash != nil {
		a.flash.Cancel()
	}
	from := component.FlashStart(absorbed)
	duration := a.cfg.FlashDuration
	if duration <= 0 {
		duration = component.FlashDuration
	}
	a.flash = a.sched.Tween(duration, func(progress float64) {
		a.renderer.SetTint(component.FlashColor(from, progress))
	})
}

// IsDead reports whether the death transition has run.
func (a *Actor) IsDead() bool {
	return a != nil && a.dead
}

func (a *Actor) die() {
	if a.dead {
		return
	}
	a.dead = true

	pos := a.Position()
	a.audio.PlayCue(CueDeath, pos)
	a.body.SetVelocity(cp.Vector{})
	a.body.SetHitDetection(false)
	a.renderer.SetLocatorVisible(false)
	a.audio.StopMovementLoop()

	if h, ok := a.variant.(DeathHandler); ok {
		h.OnDeath(a)
	}

	a.events.Emit(component.CombatEvent{
		Type:  component.EventDeath,
		Actor: a.Name(),
		PosX:  pos.X,
		PosY:  pos.Y,
	})
	a.log.Info("actor died")
}
