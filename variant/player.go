package variant

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
	"github.com/milk9111/skirmish/scene"
)

// Intents is the per-frame input the player variant reads. Axis components
// are in [-1, 1]; Aim is a world-space point.
type Intents interface {
	Axis() (x, y float64)
	Trigger() bool
	Aim() cp.Vector
	Victory() bool
}

// DefaultDefeatDelay is how long the defeat scene waits after death.
const DefaultDefeatDelay = 2

// Scenes names the scenes the player can request.
type Scenes struct {
	Victory     string
	Defeat      string
	DefeatDelay float64
}

// DefaultScenes returns the stock scene names.
func DefaultScenes() Scenes {
	return Scenes{
		Victory:     "Victoria",
		Defeat:      "Derrota",
		DefeatDelay: DefaultDefeatDelay,
	}
}

// Player is the input-driven, ranged variant.
type Player struct {
	intents  Intents
	director *scene.Director
	scenes   Scenes
}

// NewPlayer binds a player to its input source and scene director. Either
// may be nil: no input means standing still, no director means no scene
// changes.
func NewPlayer(intents Intents, director *scene.Director, scenes Scenes) *Player {
	if scenes.DefeatDelay <= 0 {
		scenes.DefeatDelay = DefaultDefeatDelay
	}
	return &Player{intents: intents, director: director, scenes: scenes}
}

func (p *Player) ExecuteMove(a *actor.Actor) cp.Vector {
	if p == nil || p.intents == nil {
		return cp.Vector{}
	}
	x, y := p.intents.Axis()
	dir := cp.Vector{X: x, Y: y}
	if dir.Length() == 0 {
		return cp.Vector{}
	}
	return dir.Normalize().Mult(a.MovementSpeed().Current)
}

func (p *Player) IsAttacking(*actor.Actor) bool {
	return p != nil && p.intents != nil && p.intents.Trigger()
}

// ExecuteAttack shoots from the actor toward the aim point.
func (p *Player) ExecuteAttack(a *actor.Actor) {
	a.PlayCue(actor.CueShoot)
	var aim cp.Vector
	if p.intents != nil {
		aim = p.intents.Aim().Sub(a.Position())
	}
	a.Fire(aim)
}

// ExecuteUpdate checks for a victory request.
func (p *Player) ExecuteUpdate(*actor.Actor) {
	if p == nil || p.intents == nil || !p.intents.Victory() {
		return
	}
	p.director.Request(p.scenes.Victory)
}

// OnDeath schedules the defeat scene.
func (p *Player) OnDeath(*actor.Actor) {
	if p == nil {
		return
	}
	p.director.RequestAfter(p.scenes.Defeat, p.scenes.DefeatDelay)
}
