package arena

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
	"github.com/milk9111/skirmish/prefabs"
)

const (
	defaultProjectileSpeed    = 300
	defaultProjectileDamage   = 10
	defaultProjectileRadius   = 3
	defaultProjectileLifetime = 2
)

// Projectile is a shot in flight. It hits the first hittable body of the
// other team it overlaps.
type Projectile struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Radius float64
	Damage float64
	TTL    float64
	Team   Team
	Source *actor.Actor
	Dead   bool
}

// Pickup is a collectible lying in the arena.
type Pickup struct {
	Spec  prefabs.PickupSpec
	Pos   cp.Vector
	Taken bool
}

// SpawnProjectile implements actor.ProjectileSpawner. Shots take their
// speed, damage and size from the source's prefab.
func (a *Arena) SpawnProjectile(req actor.ProjectileRequest) {
	if a == nil || a.over {
		return
	}
	team := TeamEnemy
	var ps prefabs.ProjectileSpec
	if c, ok := a.byActor[req.Source]; ok {
		team = c.Team
		ps = c.Spec.Projectile
	}
	if ps.Speed <= 0 {
		ps.Speed = defaultProjectileSpeed
	}
	if ps.Damage <= 0 {
		ps.Damage = defaultProjectileDamage
	}
	if ps.Radius <= 0 {
		ps.Radius = defaultProjectileRadius
	}
	if ps.Lifetime <= 0 {
		ps.Lifetime = defaultProjectileLifetime
	}

	a.projectiles = append(a.projectiles, &Projectile{
		Pos:    req.Origin,
		Vel:    req.Direction.Mult(ps.Speed),
		Radius: ps.Radius,
		Damage: ps.Damage,
		TTL:    ps.Lifetime,
		Team:   team,
		Source: req.Source,
	})
}

func (a *Arena) updateProjectiles(dt float64) {
	bounds := a.world.Bounds()
	live := a.projectiles[:0]
	for _, p := range a.projectiles {
		if a.over {
			return
		}
		p.TTL -= dt
		p.Pos = p.Pos.Add(p.Vel.Mult(dt))
		if p.TTL <= 0 || !bounds.ContainsVect(p.Pos) {
			p.Dead = true
		}
		if !p.Dead {
			if hit := a.projectileHit(p); hit != nil {
				p.Dead = true
				hit.Actor.ApplyDamage(p.Damage)
			}
		}
		if !p.Dead {
			live = append(live, p)
		}
	}
	if a.over {
		return
	}
	for i := len(live); i < len(a.projectiles); i++ {
		a.projectiles[i] = nil
	}
	a.projectiles = live
}

func (a *Arena) projectileHit(p *Projectile) *Combatant {
	for _, c := range a.combatants() {
		if c.Team == p.Team || c.Actor == p.Source {
			continue
		}
		if c.Body.Hittable() && c.Body.Overlaps(p.Pos, p.Radius) {
			return c
		}
	}
	return nil
}

// PlacePickup drops the named pickup from the pickup table at pos.
func (a *Arena) PlacePickup(name string, pos cp.Vector) error {
	spec, ok := a.pickupTable.Lookup(name)
	if !ok {
		return fmt.Errorf("arena: unknown pickup %q", name)
	}
	a.pickups = append(a.pickups, &Pickup{Spec: spec, Pos: pos})
	return nil
}

// collectPickups hands every pickup the living player touches to the
// player's actor.
func (a *Arena) collectPickups() {
	if a.player == nil || !a.player.Actor.IsAlive() {
		return
	}
	remaining := a.pickups[:0]
	for _, p := range a.pickups {
		if a.player.Body.Overlaps(p.Pos, a.cfg.PickupRadius) {
			p.Taken = true
			changed := a.player.Actor.ModifyStat(p.Spec.Stat, p.Spec.Amount)
			a.log.Info("pickup collected", "pickup", p.Spec.Name, "stat", p.Spec.Stat, "applied", changed)
			continue
		}
		remaining = append(remaining, p)
	}
	for i := len(remaining); i < len(a.pickups); i++ {
		a.pickups[i] = nil
	}
	a.pickups = remaining
}
