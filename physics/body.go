package physics

import "github.com/jakecoffman/cp"

// Body is one actor's box in the space. It satisfies actor.Body.
type Body struct {
	body  *cp.Body
	shape *cp.Shape

	halfW, halfH float64
	hittable     bool
	removed      bool
}

func (b *Body) Position() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.body.Position()
}

// SetPosition teleports the body.
func (b *Body) SetPosition(p cp.Vector) {
	if b == nil {
		return
	}
	b.body.SetPosition(p)
}

func (b *Body) Velocity() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.body.Velocity()
}

func (b *Body) SetVelocity(v cp.Vector) {
	if b == nil {
		return
	}
	b.body.SetVelocityVector(v)
}

// SetHitDetection turns the box into a sensor when disabled, so dead actors
// stop blocking others and cannot be hit.
func (b *Body) SetHitDetection(enabled bool) {
	if b == nil {
		return
	}
	b.hittable = enabled
	b.shape.SetSensor(!enabled)
}

// Hittable reports whether projectiles and pickups see this body.
func (b *Body) Hittable() bool {
	return b != nil && b.hittable && !b.removed
}

// Size returns the box width and height.
func (b *Body) Size() (w, h float64) {
	if b == nil {
		return 0, 0
	}
	return b.halfW * 2, b.halfH * 2
}

// Overlaps reports whether a circle at p with the given radius touches the
// box.
func (b *Body) Overlaps(p cp.Vector, radius float64) bool {
	if b == nil {
		return false
	}
	pos := b.body.Position()
	bb := cp.NewBBForExtents(pos, b.halfW+radius, b.halfH+radius)
	return bb.ContainsVect(p)
}
