package variant

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
	"github.com/milk9111/skirmish/schedule"
	"github.com/milk9111/skirmish/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPresentation struct{}

func (nopPresentation) StateChanged(actor.VisibleState) {}
func (nopPresentation) StatChanged(actor.StatChange)    {}

type testBody struct {
	pos, vel cp.Vector
}

func (b *testBody) Position() cp.Vector     { return b.pos }
func (b *testBody) Velocity() cp.Vector     { return b.vel }
func (b *testBody) SetVelocity(v cp.Vector) { b.vel = v }
func (b *testBody) SetHitDetection(bool)    {}

type shots struct {
	reqs []actor.ProjectileRequest
}

func (s *shots) SpawnProjectile(req actor.ProjectileRequest) { s.reqs = append(s.reqs, req) }

type cues struct {
	played []actor.Cue
}

func (c *cues) SetMovementLoop(bool, float64)      {}
func (c *cues) StopMovementLoop()                  {}
func (c *cues) PlayCue(cue actor.Cue, _ cp.Vector) { c.played = append(c.played, cue) }

type fakeTarget struct {
	pos       cp.Vector
	alive     bool
	taken     []float64
	positions int
}

func (t *fakeTarget) Position() cp.Vector {
	t.positions++
	return t.pos
}

func (t *fakeTarget) IsAlive() bool         { return t.alive }
func (t *fakeTarget) ApplyDamage(d float64) { t.taken = append(t.taken, d) }

type intents struct {
	x, y    float64
	trigger bool
	aim     cp.Vector
	victory bool
}

func (i *intents) Axis() (float64, float64) { return i.x, i.y }
func (i *intents) Trigger() bool            { return i.trigger }
func (i *intents) Aim() cp.Vector           { return i.aim }
func (i *intents) Victory() bool            { return i.victory }

type rig struct {
	actor *actor.Actor
	body  *testBody
	shots *shots
	cues  *cues
	sched *schedule.Scheduler
}

func spawn(t *testing.T, v actor.Variant, sched *schedule.Scheduler) *rig {
	t.Helper()
	cfg := actor.DefaultConfig()
	cfg.Name = "test"
	cfg.MaxLife = 20
	cfg.MaxMovementSpeed = 10
	cfg.MovementSpeed = 5
	cfg.MaxAttackSpeed = 5
	cfg.AttackSpeed = 1

	r := &rig{body: &testBody{}, shots: &shots{}, cues: &cues{}, sched: sched}
	a, err := actor.New(&cfg, v, actor.Sinks{
		Presentation: nopPresentation{},
		Audio:        r.cues,
		Body:         r.body,
		Projectiles:  r.shots,
		Scheduler:    sched,
	})
	require.NoError(t, err)
	r.actor = a
	return r
}

func TestPlayerMovesAlongNormalizedAxis(t *testing.T) {
	in := &intents{x: 1, y: 1}
	r := spawn(t, NewPlayer(in, nil, DefaultScenes()), schedule.New())

	r.actor.Tick(0.1, false)
	assert.InDelta(t, 5/math.Sqrt2, r.body.vel.X, 1e-9)
	assert.InDelta(t, 5/math.Sqrt2, r.body.vel.Y, 1e-9)

	in.x, in.y = 0, 0
	r.actor.Tick(0.1, false)
	assert.Equal(t, cp.Vector{}, r.body.vel)
}

func TestPlayerShootsTowardAim(t *testing.T) {
	in := &intents{trigger: true, aim: cp.Vector{X: 10, Y: 0}}
	r := spawn(t, NewPlayer(in, nil, DefaultScenes()), schedule.New())
	r.body.pos = cp.Vector{X: 4, Y: 8}

	r.actor.Tick(0.1, false)

	require.Len(t, r.shots.reqs, 1)
	shot := r.shots.reqs[0]
	assert.InDelta(t, 0.6, shot.Direction.X, 1e-9)
	assert.InDelta(t, -0.8, shot.Direction.Y, 1e-9)
	assert.Equal(t, []actor.Cue{actor.CueShoot}, r.cues.played)

	// Gate closed: period 5/1.
	r.actor.Tick(1, false)
	assert.Len(t, r.shots.reqs, 1)
}

func TestPlayerVictory(t *testing.T) {
	var scenes []string
	sched := schedule.New()
	director := scene.NewDirector(sched, func(name string) { scenes = append(scenes, name) })
	in := &intents{}
	r := spawn(t, NewPlayer(in, director, DefaultScenes()), sched)

	r.actor.Tick(0.1, false)
	assert.Empty(t, scenes)

	in.victory = true
	r.actor.Tick(0.1, false)
	assert.Equal(t, []string{"Victoria"}, scenes)
}

func TestPlayerDefeatIsDelayed(t *testing.T) {
	var scenes []string
	sched := schedule.New()
	director := scene.NewDirector(sched, func(name string) { scenes = append(scenes, name) })
	r := spawn(t, NewPlayer(&intents{}, director, DefaultScenes()), sched)

	r.actor.ApplyDamage(100)
	require.False(t, r.actor.IsAlive())

	name, ok := director.Pending()
	assert.True(t, ok)
	assert.Equal(t, "Derrota", name)

	sched.Advance(1)
	assert.Empty(t, scenes)
	sched.Advance(1)
	assert.Equal(t, []string{"Derrota"}, scenes)
}

func TestEnemySteering(t *testing.T) {
	cases := []struct {
		name      string
		targetPos cp.Vector
		alive     bool
		wantMove  bool
		wantSwing bool
	}{
		{"out_of_follow_range", cp.Vector{X: 500}, true, false, false},
		{"chasing", cp.Vector{X: 100}, true, true, false},
		{"inside_stop_distance", cp.Vector{X: 10}, true, false, true},
		{"dead_target", cp.Vector{X: 100}, false, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target := &fakeTarget{pos: c.targetPos, alive: c.alive}
			r := spawn(t, NewEnemy(target, DefaultTuning()), schedule.New())

			r.actor.Tick(0.1, false)

			if c.wantMove {
				assert.InDelta(t, 5, r.body.vel.Length(), 1e-9)
				assert.Greater(t, r.body.vel.X, 0.0)
			} else {
				assert.Equal(t, cp.Vector{}, r.body.vel)
			}
			if c.wantSwing {
				assert.Equal(t, []float64{defaultMeleeDamage}, target.taken)
				assert.Equal(t, []actor.Cue{actor.CueMelee}, r.cues.played)
			} else {
				assert.Empty(t, target.taken)
			}
		})
	}
}

func TestEnemyRespectsCooldown(t *testing.T) {
	target := &fakeTarget{pos: cp.Vector{X: 5}, alive: true}
	r := spawn(t, NewEnemy(target, DefaultTuning()), schedule.New())

	for i := 0; i < 11; i++ {
		r.actor.Tick(0.5, false)
	}
	// One swing on the first tick; the next needs strictly more than 5 units.
	assert.Len(t, target.taken, 1)
	r.actor.Tick(0.5, false)
	assert.Len(t, target.taken, 2)
}

const gruntScript = `
think := func(self) {
	if !self.target_alive || self.distance > self.follow_range {
		return {move_x: 0, move_y: 0, attack: false}
	}
	if self.distance <= self.attack_range {
		return {move_x: 0, move_y: 0, attack: true}
	}
	dx := self.target_x - self.x
	dy := self.target_y - self.y
	return {move_x: dx / self.distance, move_y: dy / self.distance, attack: false}
}
`

func TestScriptedFollowsAndAttacks(t *testing.T) {
	script, err := CompileScript("grunt.tengo", []byte(gruntScript))
	require.NoError(t, err)

	target := &fakeTarget{pos: cp.Vector{Y: 100}, alive: true}
	r := spawn(t, NewScripted(script, target, DefaultTuning(), nil), schedule.New())

	r.actor.Tick(0.1, false)
	assert.InDelta(t, 0, r.body.vel.X, 1e-9)
	assert.InDelta(t, 5, r.body.vel.Y, 1e-9)
	assert.Empty(t, target.taken)

	target.pos = cp.Vector{X: 10}
	r.actor.Tick(0.1, false)
	assert.Equal(t, []float64{defaultMeleeDamage}, target.taken)
	assert.Equal(t, cp.Vector{}, r.body.vel)
}

func TestScriptedRunsOncePerTick(t *testing.T) {
	script, err := CompileScript("grunt.tengo", []byte(gruntScript))
	require.NoError(t, err)

	target := &fakeTarget{pos: cp.Vector{X: 100}, alive: true}
	r := spawn(t, NewScripted(script, target, DefaultTuning(), nil), schedule.New())

	r.actor.Tick(0.1, false)
	assert.Equal(t, 1, target.positions)
	r.actor.Tick(0.1, false)
	assert.Equal(t, 2, target.positions)
}

func TestScriptedClonesAreIndependent(t *testing.T) {
	script, err := CompileScript("grunt.tengo", []byte(gruntScript))
	require.NoError(t, err)

	near := &fakeTarget{pos: cp.Vector{X: 5}, alive: true}
	far := &fakeTarget{pos: cp.Vector{X: 100}, alive: true}
	a := spawn(t, NewScripted(script, near, DefaultTuning(), nil), schedule.New())
	b := spawn(t, NewScripted(script, far, DefaultTuning(), nil), schedule.New())

	a.actor.Tick(0.1, false)
	b.actor.Tick(0.1, false)

	assert.Len(t, near.taken, 1)
	assert.Empty(t, far.taken)
	assert.Greater(t, b.body.vel.X, 0.0)
}

func TestCompileScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing_think", `x := 1`},
		{"syntax", `think := func(self) {`},
		{"not_callable", `think := 5`},
		{"non_map_result", `think := func(self) { return 1 }`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := CompileScript(c.name, []byte(c.src))
			assert.Error(t, err)
		})
	}

	_, err := CompileScript("bad", []byte(`think := func(self) { return "idle" }`))
	assert.ErrorIs(t, err, ErrBadDecision)
}
