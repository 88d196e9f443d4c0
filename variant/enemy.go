package variant

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
)

// Target is what an AI variant chases and hits. *actor.Actor satisfies it.
type Target interface {
	Position() cp.Vector
	IsAlive() bool
	ApplyDamage(damage float64)
}

// Tuning holds the AI ranges and melee damage for an archetype.
type Tuning struct {
	FollowRange  float64
	AttackRange  float64
	StopDistance float64
	Damage       float64
}

const (
	defaultFollowRange  = 300
	defaultAttackRange  = 24
	defaultStopDistance = 16
	defaultMeleeDamage  = 10
)

// DefaultTuning returns the stock grunt tuning.
func DefaultTuning() Tuning {
	return Tuning{
		FollowRange:  defaultFollowRange,
		AttackRange:  defaultAttackRange,
		StopDistance: defaultStopDistance,
		Damage:       defaultMeleeDamage,
	}
}

// Enemy walks toward its target while in follow range and swings when in
// attack range.
type Enemy struct {
	target Target
	tuning Tuning
}

func NewEnemy(target Target, tuning Tuning) *Enemy {
	return &Enemy{target: target, tuning: tuning}
}

// SetTarget changes what the enemy chases.
func (e *Enemy) SetTarget(t Target) {
	if e == nil {
		return
	}
	e.target = t
}

// SetTuning swaps in new ranges, used on hot reload.
func (e *Enemy) SetTuning(t Tuning) {
	if e == nil {
		return
	}
	e.tuning = t
}

func (e *Enemy) ExecuteMove(a *actor.Actor) cp.Vector {
	if e == nil {
		return cp.Vector{}
	}
	delta, dist := e.toTarget(a)
	if dist > e.tuning.FollowRange || dist < e.tuning.StopDistance {
		return cp.Vector{}
	}
	return delta.Normalize().Mult(a.MovementSpeed().Current)
}

func (e *Enemy) IsAttacking(a *actor.Actor) bool {
	if e == nil {
		return false
	}
	_, dist := e.toTarget(a)
	return dist <= e.tuning.AttackRange
}

func (e *Enemy) ExecuteAttack(a *actor.Actor) {
	if e == nil {
		return
	}
	strike(a, e.target, e.tuning)
}

// toTarget returns the vector to the target and its length. A missing or
// dead target is infinitely far away.
func (e *Enemy) toTarget(a *actor.Actor) (cp.Vector, float64) {
	return offsetTo(a, e.target)
}

func offsetTo(a *actor.Actor, t Target) (cp.Vector, float64) {
	if t == nil || !t.IsAlive() {
		return cp.Vector{}, math.MaxFloat64
	}
	delta := t.Position().Sub(a.Position())
	return delta, delta.Length()
}

// strike plays the melee cue and damages the target if it is within reach.
func strike(a *actor.Actor, t Target, tuning Tuning) {
	a.PlayCue(actor.CueMelee)
	if _, dist := offsetTo(a, t); dist <= tuning.AttackRange {
		t.ApplyDamage(tuning.Damage)
	}
}
