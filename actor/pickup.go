package actor

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/component"
)

// ModifyStat is the pickup entry point: delta is added to the pool backing
// kind and clamped to [0, max]. Kinds without a pool, and any pickup while
// dead, are ignored. A pickup that drains life runs the death transition.
// It reports whether a pool changed.
func (a *Actor) ModifyStat(kind component.StatKind, delta float64) bool {
	if a == nil || !a.IsAlive() {
		return false
	}
	pool, ok := a.pools[kind]
	if !ok {
		a.log.Debug("pickup has no backing stat", "stat", kind, "delta", delta)
		return false
	}
	pool.Clamp(delta)

	a.events.Emit(component.CombatEvent{
		Type:  component.EventPickup,
		Actor: a.Name(),
		Stat:  kind,
		Delta: delta,
	})
	a.publishStats()
	a.publishState()

	if !a.IsAlive() {
		a.die()
	}
	return true
}

// PlayCue plays a one-shot sound at the actor's position.
func (a *Actor) PlayCue(cue Cue) {
	if a == nil {
		return
	}
	a.audio.PlayCue(cue, a.Position())
}

// Fire asks the projectile collaborator for a shot from the actor's
// position along direction. A zero direction fires the way the actor faces.
func (a *Actor) Fire(direction cp.Vector) {
	if a == nil {
		return
	}
	if direction.Length() == 0 {
		direction = cp.Vector{X: -1}
		if a.facing == FacingRight {
			direction.X = 1
		}
	}
	a.projectiles.SpawnProjectile(ProjectileRequest{
		Origin:    a.Position(),
		Direction: direction.Normalize(),
		Source:    a,
	})
}
