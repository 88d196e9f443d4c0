package actor

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/component"
)

// Presentation receives visible-state and stat-bar notifications. Values
// are mapped 1:1 to animation flags and bar fills.
type Presentation interface {
	StateChanged(s VisibleState)
	StatChanged(c StatChange)
}

// StatChange is one stat bar update.
type StatChange struct {
	Kind    component.StatKind
	Current float64
	Max     float64
}

// Renderer receives purely cosmetic updates.
type Renderer interface {
	// SetFacing mirrors the sprite; scaleX is the x-scale to apply.
	SetFacing(scaleX float64)
	SetTint(c color.Color)
	SetLocatorVisible(visible bool)
}

// Cue names a one-shot sound.
type Cue int

const (
	CueDeath Cue = iota
	CueMelee
	CueShoot
)

func (c Cue) String() string {
	switch c {
	case CueDeath:
		return "death"
	case CueMelee:
		return "melee"
	case CueShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Audio drives the looping movement sound and fire-and-forget cues.
type Audio interface {
	SetMovementLoop(muted bool, pitch float64)
	StopMovementLoop()
	PlayCue(cue Cue, at cp.Vector)
}

// Body is the actor's physical presence.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	SetHitDetection(enabled bool)
}

// ProjectileRequest asks the projectile collaborator to spawn a shot.
type ProjectileRequest struct {
	Origin    cp.Vector
	Direction cp.Vector
	Source    *Actor
}

// ProjectileSpawner spawns projectiles for ranged attacks.
type ProjectileSpawner interface {
	SpawnProjectile(req ProjectileRequest)
}

type nopRenderer struct{}

func (nopRenderer) SetFacing(float64)      {}
func (nopRenderer) SetTint(color.Color)    {}
func (nopRenderer) SetLocatorVisible(bool) {}

type nopAudio struct{}

func (nopAudio) SetMovementLoop(bool, float64) {}
func (nopAudio) StopMovementLoop()             {}
func (nopAudio) PlayCue(Cue, cp.Vector)        {}

type nopProjectiles struct{}

func (nopProjectiles) SpawnProjectile(ProjectileRequest) {}

// pointBody is the fallback body for actors without physics.
type pointBody struct {
	pos      cp.Vector
	vel      cp.Vector
	hittable bool
}

func (b *pointBody) Position() cp.Vector          { return b.pos }
func (b *pointBody) Velocity() cp.Vector          { return b.vel }
func (b *pointBody) SetVelocity(v cp.Vector)      { b.vel = v }
func (b *pointBody) SetHitDetection(enabled bool) { b.hittable = enabled }
