package actor

import "github.com/jakecoffman/cp"

// Variant supplies the per-archetype behaviour of an actor. The actor calls
// it from Tick only while alive and unpaused.
type Variant interface {
	// ExecuteMove returns the velocity for this tick.
	ExecuteMove(a *Actor) cp.Vector
	// IsAttacking reports attack intent. It may be called more than once
	// per tick and must return the same answer each time.
	IsAttacking(a *Actor) bool
	// ExecuteAttack performs the attack. Only called when the cooldown gate
	// is open, the actor is alive and IsAttacking is true.
	ExecuteAttack(a *Actor)
}

// Updater is an optional per-tick hook run after movement and attack.
type Updater interface {
	ExecuteUpdate(a *Actor)
}

// DeathHandler is an optional hook run once at the end of the death
// transition.
type DeathHandler interface {
	OnDeath(a *Actor)
}
