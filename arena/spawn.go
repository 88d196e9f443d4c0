package arena

import (
	"fmt"
	"path"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
	"github.com/milk9111/skirmish/audio"
	"github.com/milk9111/skirmish/physics"
	"github.com/milk9111/skirmish/prefabs"
	"github.com/milk9111/skirmish/variant"
)

// Team separates the player from the AI.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

const defaultBodySize = 16

// Combatant is one spawned actor together with its body, view and voice.
type Combatant struct {
	Actor  *actor.Actor
	Body   *physics.Body
	View   *View
	Voice  *audio.Voice
	Spec   *prefabs.ActorSpec
	Prefab string
	Team   Team

	variant actor.Variant
}

// Spawn builds the actor described by prefab at pos. A player prefab
// replaces the current player and retargets every enemy.
func (a *Arena) Spawn(prefab string, pos cp.Vector) (*Combatant, error) {
	prefab = strings.TrimSuffix(path.Base(prefab), ".yaml")
	spec, cfg, err := a.prefab(prefab)
	if err != nil {
		return nil, err
	}

	w, h := spec.Size.Width, spec.Size.Height
	if w <= 0 {
		w = defaultBodySize
	}
	if h <= 0 {
		h = defaultBodySize
	}

	c := &Combatant{
		Body:   a.world.NewBody(pos, w, h),
		View:   newView(),
		Voice:  a.opts.Mixer.Voice(),
		Spec:   spec,
		Prefab: prefab,
		Team:   TeamEnemy,
	}

	var target variant.Target
	if a.player != nil && a.player.Actor != nil {
		target = a.player.Actor
	}

	switch spec.Variant {
	case prefabs.VariantPlayer:
		c.Team = TeamPlayer
		c.variant = variant.NewPlayer(a.opts.Intents, a.director, spec.SceneNames())
	case prefabs.VariantEnemy:
		c.variant = variant.NewEnemy(target, spec.Tuning())
	case prefabs.VariantScripted:
		script, err := a.script(spec.Script)
		if err != nil {
			a.world.Remove(c.Body)
			return nil, err
		}
		c.variant = variant.NewScripted(script, target, spec.Tuning(), a.log)
	default:
		a.world.Remove(c.Body)
		return nil, fmt.Errorf("%w: %q", prefabs.ErrUnknownVariant, spec.Variant)
	}

	act, err := actor.New(cfg, c.variant, actor.Sinks{
		Presentation: c.View,
		Renderer:     c.View,
		Audio:        c.Voice,
		Body:         c.Body,
		Projectiles:  a,
		Scheduler:    a.sched,
		Events:       a.events,
		Logger:       a.log,
	})
	if err != nil {
		a.world.Remove(c.Body)
		return nil, fmt.Errorf("arena: spawn %s: %w", prefab, err)
	}
	c.Actor = act
	a.byActor[act] = c

	if c.Team == TeamPlayer {
		if a.player != nil {
			a.despawn(a.player)
		}
		a.player = c
		a.retarget()
	} else {
		a.enemies = append(a.enemies, c)
	}
	a.log.Debug("spawned", "prefab", prefab, "variant", spec.Variant, "x", pos.X, "y", pos.Y)
	return c, nil
}

// despawn removes c's body and sound. The actor itself is dropped.
func (a *Arena) despawn(c *Combatant) {
	c.Voice.StopMovementLoop()
	a.world.Remove(c.Body)
	delete(a.byActor, c.Actor)
}

// retarget points every AI at the current player.
func (a *Arena) retarget() {
	var target variant.Target
	if a.player != nil {
		target = a.player.Actor
	}
	for _, e := range a.enemies {
		switch v := e.variant.(type) {
		case *variant.Enemy:
			v.SetTarget(target)
		case *variant.Scripted:
			v.SetTarget(target)
		}
	}
}

// prefab loads a spec and the config every actor of that prefab shares.
func (a *Arena) prefab(name string) (*prefabs.ActorSpec, *actor.Config, error) {
	if spec, ok := a.specs[name]; ok {
		return spec, a.configs[name], nil
	}
	spec, err := a.opts.LoadSpec(name)
	if err != nil {
		return nil, nil, err
	}
	cfg := spec.Config()
	a.specs[name] = spec
	a.configs[name] = &cfg
	return spec, &cfg, nil
}

func (a *Arena) script(name string) (*variant.Script, error) {
	if s, ok := a.scripts[name]; ok {
		return s, nil
	}
	src, err := a.opts.LoadScript(name)
	if err != nil {
		return nil, err
	}
	s, err := variant.CompileScript(name, src)
	if err != nil {
		return nil, err
	}
	a.scripts[name] = s
	return s, nil
}
