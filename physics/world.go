package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeWall
)

const wallThickness = 2

// World owns the Chipmunk space the arena's actors move in. There is no
// gravity; actors set their velocity every tick.
type World struct {
	space  *cp.Space
	bounds cp.BB
	bodies []*Body
}

// NewWorld creates a space walled in by bounds.
func NewWorld(bounds cp.BB) *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	w := &World{space: space, bounds: bounds}
	w.buildWalls()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Bounds is the playable area.
func (w *World) Bounds() cp.BB {
	if w == nil {
		return cp.BB{}
	}
	return w.bounds
}

// NewBody adds a width x height box centred on pos. Rotation is locked.
func (w *World) NewBody(pos cp.Vector, width, height float64) *Body {
	if w == nil || w.space == nil {
		return nil
	}
	mass := 1.0
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(pos)
	cpBody.SetAngle(0)
	cpBody.SetAngularVelocity(0)

	shape := cp.NewBox(cpBody, width, height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeActor)

	w.space.AddBody(cpBody)
	w.space.AddShape(shape)

	b := &Body{
		body:     cpBody,
		shape:    shape,
		halfW:    width / 2,
		halfH:    height / 2,
		hittable: true,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Remove takes a body out of the space. Removing twice is a no-op.
func (w *World) Remove(b *Body) {
	if w == nil || b == nil || b.removed {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	b.removed = true
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

// Clear removes every body.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for len(w.bodies) > 0 {
		w.Remove(w.bodies[len(w.bodies)-1])
	}
}

// Len is the number of live bodies.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.bodies)
}

// Step advances the simulation and keeps every body inside the bounds.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
	for _, b := range w.bodies {
		w.clamp(b)
	}
}

// clamp pulls b back inside the bounds and kills the velocity component
// that pushed it out.
func (w *World) clamp(b *Body) {
	pos := b.body.Position()
	vel := b.body.Velocity()
	minX, maxX := w.bounds.L+b.halfW, w.bounds.R-b.halfW
	minY, maxY := w.bounds.B+b.halfH, w.bounds.T-b.halfH

	clamped := pos
	clamped.X = math.Max(minX, math.Min(maxX, pos.X))
	clamped.Y = math.Max(minY, math.Min(maxY, pos.Y))
	if clamped == pos {
		return
	}
	if clamped.X != pos.X {
		vel.X = 0
	}
	if clamped.Y != pos.Y {
		vel.Y = 0
	}
	b.body.SetPosition(clamped)
	b.body.SetVelocityVector(vel)
}

func (w *World) buildWalls() {
	bb := w.bounds
	segs := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: bb.L, Y: bb.B}, b: cp.Vector{X: bb.R, Y: bb.B}},
		{a: cp.Vector{X: bb.L, Y: bb.T}, b: cp.Vector{X: bb.R, Y: bb.T}},
		{a: cp.Vector{X: bb.L, Y: bb.B}, b: cp.Vector{X: bb.L, Y: bb.T}},
		{a: cp.Vector{X: bb.R, Y: bb.B}, b: cp.Vector{X: bb.R, Y: bb.T}},
	}
	for _, seg := range segs {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, wallThickness)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		w.space.AddShape(shape)
	}
}
