package variant

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
	"github.com/milk9111/skirmish/component"
)

var ErrBadDecision = errors.New("variant: think must return a map")

// thinkDispatchScript is appended to every AI script; the host reads the
// result back from __decision.
const thinkDispatchScript = `
__decision := think(__self)
`

// Script is a compiled AI script. Each scripted actor runs its own clone.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// CompileScript compiles src and checks that it defines think(self).
func CompileScript(name string, src []byte) (*Script, error) {
	full := string(src) + "\n" + thinkDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__self", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("variant: compile %s: %w", name, err)
	}

	// Dry run against an empty view so a broken think fails at load.
	s := &Script{name: name, compiled: compiled}
	if _, err := s.think(compiled, selfObject(selfView{distance: math.MaxFloat64})); err != nil {
		return nil, err
	}
	return s, nil
}

// Name is the script's file name.
func (s *Script) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *Script) think(c *tengo.Compiled, self *tengo.ImmutableMap) (decision, error) {
	if err := c.Set("__self", self); err != nil {
		return decision{}, err
	}
	if err := c.Run(); err != nil {
		return decision{}, fmt.Errorf("variant: run %s: %w", s.name, err)
	}
	v := c.Get("__decision")
	if _, ok := v.Object().(*tengo.Map); !ok {
		return decision{}, fmt.Errorf("%w: %s returned %s", ErrBadDecision, s.name, v.ValueType())
	}
	return decisionFrom(v.Map()), nil
}

// decision is one tick's worth of script output.
type decision struct {
	move   cp.Vector
	attack bool
}

func decisionFrom(m map[string]any) decision {
	d := decision{
		move: cp.Vector{X: anyToFloat(m["move_x"]), Y: anyToFloat(m["move_y"])},
	}
	if b, ok := m["attack"].(bool); ok {
		d.attack = b
	}
	return d
}

func anyToFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

// Scripted is an AI variant whose decisions come from a tengo script. The
// script runs at most once per tick; every query in that tick sees the same
// decision.
type Scripted struct {
	script   *Script
	compiled *tengo.Compiled
	target   Target
	tuning   Tuning
	log      *slog.Logger

	lastTick uint64
	cached   decision
	fresh    bool
}

// NewScripted binds a clone of script to target.
func NewScripted(script *Script, target Target, tuning Tuning, logger *slog.Logger) *Scripted {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scripted{
		script:   script,
		compiled: script.compiled.Clone(),
		target:   target,
		tuning:   tuning,
		log:      logger.With("script", script.Name()),
	}
}

// SetTarget changes what the script is told to chase.
func (s *Scripted) SetTarget(t Target) {
	if s == nil {
		return
	}
	s.target = t
	s.fresh = false
}

// SetTuning swaps in new ranges, used on hot reload.
func (s *Scripted) SetTuning(t Tuning) {
	if s == nil {
		return
	}
	s.tuning = t
}

// SetScript swaps in a recompiled script. The next query runs it.
func (s *Scripted) SetScript(script *Script) {
	if s == nil || script == nil {
		return
	}
	s.script = script
	s.compiled = script.compiled.Clone()
	s.fresh = false
}

// Script returns the script currently driving the variant.
func (s *Scripted) Script() *Script {
	if s == nil {
		return nil
	}
	return s.script
}

func (s *Scripted) ExecuteMove(a *actor.Actor) cp.Vector {
	d := s.decide(a)
	if d.move.Length() == 0 {
		return cp.Vector{}
	}
	dir := d.move
	if dir.Length() > 1 {
		dir = dir.Normalize()
	}
	return dir.Mult(a.MovementSpeed().Current)
}

func (s *Scripted) IsAttacking(a *actor.Actor) bool {
	return s.decide(a).attack
}

func (s *Scripted) ExecuteAttack(a *actor.Actor) {
	strike(a, s.target, s.tuning)
}

func (s *Scripted) decide(a *actor.Actor) decision {
	if s == nil || s.compiled == nil {
		return decision{}
	}
	if s.fresh && s.lastTick == a.Ticks() {
		return s.cached
	}

	d, err := s.script.think(s.compiled, selfObject(s.view(a)))
	if err != nil {
		s.log.Warn("ai script failed", "err", err)
		d = decision{}
	}
	s.cached = d
	s.lastTick = a.Ticks()
	s.fresh = true
	return d
}

// selfView is what the script sees of its actor and target.
type selfView struct {
	pos         cp.Vector
	health      component.StatPool
	shield      float64
	speed       float64
	tuning      Tuning
	targetAlive bool
	targetPos   cp.Vector
	distance    float64
}

func (s *Scripted) view(a *actor.Actor) selfView {
	v := selfView{
		pos:      a.Position(),
		health:   a.Health(),
		shield:   a.Shield().Current,
		speed:    a.MovementSpeed().Current,
		tuning:   s.tuning,
		distance: math.MaxFloat64,
	}
	if s.target != nil && s.target.IsAlive() {
		v.targetAlive = true
		v.targetPos = s.target.Position()
		v.distance = v.targetPos.Distance(v.pos)
	}
	return v
}

func selfObject(v selfView) *tengo.ImmutableMap {
	alive := tengo.FalseValue
	if v.targetAlive {
		alive = tengo.TrueValue
	}
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x":             &tengo.Float{Value: v.pos.X},
		"y":             &tengo.Float{Value: v.pos.Y},
		"health":        &tengo.Float{Value: v.health.Current},
		"max_health":    &tengo.Float{Value: v.health.Max},
		"shield":        &tengo.Float{Value: v.shield},
		"speed":         &tengo.Float{Value: v.speed},
		"follow_range":  &tengo.Float{Value: v.tuning.FollowRange},
		"attack_range":  &tengo.Float{Value: v.tuning.AttackRange},
		"stop_distance": &tengo.Float{Value: v.tuning.StopDistance},
		"target_alive":  alive,
		"target_x":      &tengo.Float{Value: v.targetPos.X},
		"target_y":      &tengo.Float{Value: v.targetPos.Y},
		"distance":      &tengo.Float{Value: v.distance},
	}}
}
