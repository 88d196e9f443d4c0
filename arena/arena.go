package arena

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
	"github.com/milk9111/skirmish/audio"
	"github.com/milk9111/skirmish/component"
	"github.com/milk9111/skirmish/config"
	"github.com/milk9111/skirmish/physics"
	"github.com/milk9111/skirmish/prefabs"
	"github.com/milk9111/skirmish/scene"
	"github.com/milk9111/skirmish/schedule"
	"github.com/milk9111/skirmish/variant"
)

// ErrNoPlayer is returned when the player prefab does not build a player.
var ErrNoPlayer = errors.New("arena: no player spawned")

// Options wires an arena to its inputs and outputs. Only Config is
// required.
type Options struct {
	Config  config.Game
	Intents variant.Intents
	Mixer   *audio.Mixer
	Logger  *slog.Logger

	// Loaders default to the prefabs package functions.
	LoadSpec    func(name string) (*prefabs.ActorSpec, error)
	LoadScript  func(name string) ([]byte, error)
	LoadPickups func() (prefabs.PickupTable, error)
}

// Arena owns every combatant, projectile and pickup of one fight, plus the
// scheduler and scene director they share.
type Arena struct {
	cfg  config.Game
	opts Options
	log  *slog.Logger

	sched    *schedule.Scheduler
	director *scene.Director
	events   *component.CombatEventEmitter
	world    *physics.World

	player      *Combatant
	enemies     []*Combatant
	byActor     map[*actor.Actor]*Combatant
	projectiles []*Projectile
	pickups     []*Pickup

	configs     map[string]*actor.Config
	specs       map[string]*prefabs.ActorSpec
	scripts     map[string]*variant.Script
	pickupTable prefabs.PickupTable

	paused bool
	over   bool
	kills  int
}

// New builds an arena and spawns the configured layout.
func New(opts Options) (*Arena, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	if opts.LoadSpec == nil {
		opts.LoadSpec = prefabs.LoadActorSpec
	}
	if opts.LoadScript == nil {
		opts.LoadScript = prefabs.LoadScript
	}
	if opts.LoadPickups == nil {
		opts.LoadPickups = prefabs.LoadPickups
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	a := &Arena{
		cfg:    opts.Config,
		opts:   opts,
		log:    opts.Logger.With("component", "arena"),
		sched:  schedule.New(),
		events: &component.CombatEventEmitter{},
	}
	a.director = scene.NewDirector(a.sched, a.changeScene, scene.WithLogger(a.log))
	a.events.Subscribe(a.onCombatEvent)

	table, err := opts.LoadPickups()
	if err != nil {
		return nil, err
	}
	a.pickupTable = table

	if err := a.Reset(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset throws away the current fight and spawns the configured layout
// again.
func (a *Arena) Reset() error {
	a.destroyObjects()
	a.sched.Clear()
	a.world = physics.NewWorld(cp.BB{L: 0, B: 0, R: a.cfg.Arena.Width, T: a.cfg.Arena.Height})
	a.configs = make(map[string]*actor.Config)
	a.specs = make(map[string]*prefabs.ActorSpec)
	a.scripts = make(map[string]*variant.Script)
	a.byActor = make(map[*actor.Actor]*Combatant)
	a.over = false
	a.kills = 0
	a.paused = a.cfg.StartPaused

	if _, err := a.Spawn(a.cfg.Player.Prefab, cp.Vector{X: a.cfg.Player.X, Y: a.cfg.Player.Y}); err != nil {
		return err
	}
	if a.player == nil {
		return ErrNoPlayer
	}
	for _, s := range a.cfg.Enemies {
		if _, err := a.Spawn(s.Prefab, cp.Vector{X: s.X, Y: s.Y}); err != nil {
			return err
		}
	}
	for _, p := range a.cfg.Pickups {
		if err := a.PlacePickup(p.Name, cp.Vector{X: p.X, Y: p.Y}); err != nil {
			return err
		}
	}

	a.director.Request(a.cfg.StartScene)
	a.log.Info("arena ready", "enemies", len(a.enemies), "pickups", len(a.pickups))
	return nil
}

// Update advances the fight by dt. While paused nothing moves and the
// scheduler is frozen.
func (a *Arena) Update(dt float64) {
	if a == nil || dt <= 0 {
		return
	}
	a.tickActors(dt)
	if a.paused {
		return
	}
	if !a.over {
		a.world.Step(dt)
		a.updateProjectiles(dt)
		a.collectPickups()
	}
	a.sched.Advance(dt)

	if a.opts.Mixer != nil && a.player != nil {
		a.opts.Mixer.SetListener(a.player.Actor.Position())
	}
}

func (a *Arena) tickActors(dt float64) {
	for _, c := range a.combatants() {
		if a.over {
			return
		}
		c.Actor.Tick(dt, a.paused)
	}
}

// combatants returns a snapshot, player first.
func (a *Arena) combatants() []*Combatant {
	out := make([]*Combatant, 0, len(a.enemies)+1)
	if a.player != nil {
		out = append(out, a.player)
	}
	return append(out, a.enemies...)
}

// SetPaused freezes or resumes the fight.
func (a *Arena) SetPaused(paused bool) {
	if a.paused == paused {
		return
	}
	a.paused = paused
	a.log.Debug("pause toggled", "paused", paused)
}

// TogglePause flips the pause state and returns the new one.
func (a *Arena) TogglePause() bool {
	a.SetPaused(!a.paused)
	return a.paused
}

func (a *Arena) Paused() bool { return a.paused }

// Over reports whether a scene change ended the fight.
func (a *Arena) Over() bool { return a.over }

// Scene is the current scene name.
func (a *Arena) Scene() string { return a.director.Current() }

// Director is the scene director the player variant reports to.
func (a *Arena) Director() *scene.Director { return a.director }

// Scheduler is the arena's timed-task runner.
func (a *Arena) Scheduler() *schedule.Scheduler { return a.sched }

// Events is the combat event stream shared by every actor.
func (a *Arena) Events() *component.CombatEventEmitter { return a.events }

// Player is the player combatant.
func (a *Arena) Player() *Combatant { return a.player }

// Enemies returns every enemy, dead or alive.
func (a *Arena) Enemies() []*Combatant { return a.enemies }

// Projectiles returns the live projectiles.
func (a *Arena) Projectiles() []*Projectile { return a.projectiles }

// Pickups returns the pickups not yet collected.
func (a *Arena) Pickups() []*Pickup { return a.pickups }

// Bounds is the playable rectangle.
func (a *Arena) Bounds() cp.BB { return a.world.Bounds() }

// Kills counts enemy deaths since the last reset.
func (a *Arena) Kills() int { return a.kills }

// Alive counts living enemies.
func (a *Arena) Alive() int {
	n := 0
	for _, e := range a.enemies {
		if e.Actor.IsAlive() {
			n++
		}
	}
	return n
}

// changeScene is the director's handler. Any scene other than the start
// scene ends the fight and clears the arena.
func (a *Arena) changeScene(name string) {
	if name == a.cfg.StartScene {
		return
	}
	a.log.Info("fight over", "scene", name, "kills", a.kills)
	a.over = true
	a.destroyObjects()
}

// destroyObjects removes every combatant, projectile and pickup.
func (a *Arena) destroyObjects() {
	for _, c := range a.combatants() {
		c.Voice.StopMovementLoop()
	}
	if a.world != nil {
		a.world.Clear()
	}
	if a.opts.Mixer != nil {
		a.opts.Mixer.Clear()
	}
	a.player = nil
	a.enemies = nil
	a.projectiles = nil
	a.pickups = nil
	a.byActor = make(map[*actor.Actor]*Combatant)
}

func (a *Arena) onCombatEvent(evt component.CombatEvent) {
	switch evt.Type {
	case component.EventDeath:
		if a.player == nil || evt.Actor != a.player.Actor.Name() {
			a.kills++
		}
		a.log.Debug("death", "actor", evt.Actor, "x", evt.PosX, "y", evt.PosY)
	case component.EventShieldHit, component.EventDamageApplied:
		a.log.Debug("hit", "actor", evt.Actor, "damage", evt.Damage, "absorbed", evt.Absorbed)
	}
}
