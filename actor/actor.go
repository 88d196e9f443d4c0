package actor

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/component"
	"github.com/milk9111/skirmish/schedule"
)

// Sinks bundles the collaborators an actor talks to. Presentation and
// Scheduler are required; the rest fall back to no-ops.
type Sinks struct {
	Presentation Presentation
	Renderer     Renderer
	Audio        Audio
	Body         Body
	Projectiles  ProjectileSpawner
	Scheduler    *schedule.Scheduler
	Events       *component.CombatEventEmitter
	Logger       *slog.Logger
}

// Actor is the combat simulation shared by player and AI characters.
type Actor struct {
	cfg     *Config
	variant Variant

	presentation Presentation
	renderer     Renderer
	audio        Audio
	body         Body
	projectiles  ProjectileSpawner
	sched        *schedule.Scheduler
	events       *component.CombatEventEmitter
	log          *slog.Logger

	health      *component.StatPool
	shield      *component.StatPool
	moveSpeed   *component.StatPool
	attackSpeed *component.StatPool
	pools       map[component.StatKind]*component.StatPool
	gate        *component.CooldownGate

	state  VisibleState
	facing Facing
	ticks  uint64
	dead   bool
	flash  *schedule.Handle
}

// New spawns an actor bound to variant. The actor starts with full health,
// the configured starting shield and an open cooldown gate, and publishes
// its initial stat bars.
func New(cfg *Config, variant Variant, sinks Sinks) (*Actor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrNilVariant
	}
	if sinks.Presentation == nil {
		return nil, ErrNilPresentation
	}
	if sinks.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	a := &Actor{
		cfg:          cfg,
		variant:      variant,
		presentation: sinks.Presentation,
		renderer:     sinks.Renderer,
		audio:        sinks.Audio,
		body:         sinks.Body,
		projectiles:  sinks.Projectiles,
		sched:        sinks.Scheduler,
		events:       sinks.Events,
		log:          sinks.Logger,
	}
	if a.renderer == nil {
		a.renderer = nopRenderer{}
	}
	if a.audio == nil {
		a.audio = nopAudio{}
	}
	if a.body == nil {
		a.body = &pointBody{hittable: true}
	}
	if a.projectiles == nil {
		a.projectiles = nopProjectiles{}
	}
	if a.events == nil {
		a.events = &component.CombatEventEmitter{}
	}
	if a.log == nil {
		a.log = slog.Default()
	}
	a.log = a.log.With("actor", cfg.Name)

	a.health = component.NewStatPool(cfg.MaxLife)
	a.shield = component.NewStatPool(cfg.MaxShield)
	a.shield.Set(cfg.StartShield)
	a.moveSpeed = component.NewStatPool(cfg.maxMovementSpeed())
	a.moveSpeed.Set(cfg.MovementSpeed)
	a.attackSpeed = component.NewStatPool(cfg.maxAttackSpeed())
	a.attackSpeed.Set(cfg.AttackSpeed)
	a.pools = map[component.StatKind]*component.StatPool{
		component.LifePoints:     a.health,
		component.Shield:         a.shield,
		component.CharacterSpeed: a.moveSpeed,
		component.AttackSpeed:    a.attackSpeed,
	}
	a.gate = component.NewCooldownGate(cfg.CooldownUnits)

	a.renderer.SetTint(component.FlashNeutral)
	a.renderer.SetLocatorVisible(true)
	a.body.SetHitDetection(true)
	a.publishStats()

	a.log.Debug("actor spawned", "life", a.health.Current, "attackSpeed", a.attackSpeed.Current)
	return a, nil
}

// Name is the archetype name from the config.
func (a *Actor) Name() string {
	if a == nil || a.cfg == nil {
		return ""
	}
	return a.cfg.Name
}

// Config returns the shared tuning this actor was built from.
func (a *Actor) Config() *Config {
	if a == nil {
		return nil
	}
	return a.cfg
}

// IsAlive reports whether health is strictly positive.
func (a *Actor) IsAlive() bool {
	return a != nil && a.health.Current > 0
}

// IsMoving reports whether the body moves faster than the configured epsilon.
func (a *Actor) IsMoving() bool {
	if a == nil {
		return false
	}
	return a.body.Velocity().Length() > a.cfg.MoveEpsilon
}

// HasShield reports whether any shield remains.
func (a *Actor) HasShield() bool {
	return a != nil && a.shield.Current > 0
}

// Health returns a snapshot of the health pool.
func (a *Actor) Health() component.StatPool { return *a.health }

// Shield returns a snapshot of the shield pool.
func (a *Actor) Shield() component.StatPool { return *a.shield }

// MovementSpeed returns a snapshot of the movement-speed pool.
func (a *Actor) MovementSpeed() component.StatPool { return *a.moveSpeed }

// AttackSpeed returns a snapshot of the attack-speed pool.
func (a *Actor) AttackSpeed() component.StatPool { return *a.attackSpeed }

// Gate returns a snapshot of the attack cooldown gate.
func (a *Actor) Gate() component.CooldownGate { return *a.gate }

// State is the visible state most recently published.
func (a *Actor) State() VisibleState { return a.state }

// Facing is the direction chosen on the last processed tick.
func (a *Actor) Facing() Facing { return a.facing }

// Ticks counts processed (not skipped) ticks.
func (a *Actor) Ticks() uint64 { return a.ticks }

// Position returns the body position.
func (a *Actor) Position() cp.Vector { return a.body.Position() }

// Velocity returns the body velocity.
func (a *Actor) Velocity() cp.Vector { return a.body.Velocity() }

// Body returns the physical body the actor moves.
func (a *Actor) Body() Body { return a.body }

// Events returns the combat event emitter.
func (a *Actor) Events() *component.CombatEventEmitter { return a.events }

// Tick advances the simulation by dt. Dead or paused actors are skipped
// entirely.
func (a *Actor) Tick(dt float64, paused bool) {
	if a == nil || !a.IsAlive() || paused {
		return
	}
	a.ticks++

	a.publishState()
	a.move()
	a.attack(dt)
	if u, ok := a.variant.(Updater); ok {
		u.ExecuteUpdate(a)
	}
}

func (a *Actor) move() {
	v := a.variant.ExecuteMove(a)
	a.body.SetVelocity(v)

	a.facing = FacingLeft
	if v.X > 0 {
		a.facing = FacingRight
	}
	a.renderer.SetFacing(a.facing.Scale(a.cfg.facingScale()))

	if v.Length() > a.cfg.MoveEpsilon {
		pitch := 1.0
		if a.moveSpeed.Max > 0 {
			pitch = 1 + 2*(a.moveSpeed.Current/a.moveSpeed.Max)
		}
		a.audio.SetMovementLoop(false, pitch)
	} else {
		a.audio.SetMovementLoop(true, 1)
	}
}

func (a *Actor) attack(dt float64) {
	a.gate.Tick(dt, a.attackSpeed.Current)

	if a.gate.Open && a.IsAlive() && a.variant.IsAttacking(a) {
		a.variant.ExecuteAttack(a)
		a.gate.Consume()
		pos := a.Position()
		a.events.Emit(component.CombatEvent{
			Type:  component.EventAttack,
			Actor: a.Name(),
			PosX:  pos.X,
			PosY:  pos.Y,
		})
	}
}

func (a *Actor) publishState() {
	alive := a.IsAlive()
	a.state = VisibleState{
		Moving:    alive && a.IsMoving(),
		Attacking: alive && a.variant.IsAttacking(a),
		Dying:     !alive,
	}
	a.presentation.StateChanged(a.state)
}

func (a *Actor) publishStats() {
	for _, kind := range []component.StatKind{
		component.LifePoints,
		component.Shield,
		component.CharacterSpeed,
		component.AttackSpeed,
	} {
		p := a.pools[kind]
		a.presentation.StatChanged(StatChange{Kind: kind, Current: p.Current, Max: p.Max})
	}
}

// Retune swaps in new tuning for a live actor. Pool maxima follow the new
// config; current values are kept and reclamped where a maximum dropped.
func (a *Actor) Retune(cfg *Config) error {
	if a == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.health.SetMax(cfg.MaxLife)
	a.shield.SetMax(cfg.MaxShield)
	a.moveSpeed.SetMax(cfg.maxMovementSpeed())
	a.attackSpeed.SetMax(cfg.maxAttackSpeed())
	a.gate.BaseUnits = cfg.CooldownUnits
	a.publishStats()
	a.log.Debug("actor retuned", "maxLife", cfg.MaxLife, "maxShield", cfg.MaxShield)
	return nil
}
