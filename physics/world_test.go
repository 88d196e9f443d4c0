package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorld() *World {
	return NewWorld(cp.BB{L: 0, B: 0, R: 200, T: 100})
}

func TestBodyIntegratesVelocity(t *testing.T) {
	w := testWorld()
	b := w.NewBody(cp.Vector{X: 50, Y: 50}, 10, 10)
	require.NotNil(t, b)

	b.SetVelocity(cp.Vector{X: 10, Y: -5})
	w.Step(0.5)

	assert.InDelta(t, 55, b.Position().X, 1e-6)
	assert.InDelta(t, 47.5, b.Position().Y, 1e-6)
	assert.InDelta(t, 10, b.Velocity().X, 1e-6)
}

func TestStepKeepsBodiesInBounds(t *testing.T) {
	w := testWorld()
	b := w.NewBody(cp.Vector{X: 190, Y: 50}, 10, 10)

	b.SetVelocity(cp.Vector{X: 10000})
	w.Step(1)

	pos := b.Position()
	assert.LessOrEqual(t, pos.X, 195.0)
	assert.GreaterOrEqual(t, pos.X, 5.0)
	assert.InDelta(t, 0, b.Velocity().X, 1e-9)
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	w := testWorld()
	b := w.NewBody(cp.Vector{X: 50, Y: 50}, 10, 10)
	b.SetVelocity(cp.Vector{X: 10})

	w.Step(0)
	assert.Equal(t, cp.Vector{X: 50, Y: 50}, b.Position())
}

func TestHitDetectionToggle(t *testing.T) {
	w := testWorld()
	b := w.NewBody(cp.Vector{X: 50, Y: 50}, 10, 10)
	assert.True(t, b.Hittable())

	b.SetHitDetection(false)
	assert.False(t, b.Hittable())

	b.SetHitDetection(true)
	assert.True(t, b.Hittable())

	w.Remove(b)
	assert.False(t, b.Hittable())
}

func TestOverlaps(t *testing.T) {
	w := testWorld()
	b := w.NewBody(cp.Vector{X: 50, Y: 50}, 10, 10)

	cases := []struct {
		name   string
		p      cp.Vector
		radius float64
		want   bool
	}{
		{"centre", cp.Vector{X: 50, Y: 50}, 0, true},
		{"edge", cp.Vector{X: 55, Y: 50}, 0, true},
		{"outside", cp.Vector{X: 60, Y: 50}, 0, false},
		{"outside_within_radius", cp.Vector{X: 60, Y: 50}, 5, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, b.Overlaps(c.p, c.radius))
		})
	}
}

func TestRemoveAndClear(t *testing.T) {
	w := testWorld()
	a := w.NewBody(cp.Vector{X: 20, Y: 20}, 4, 4)
	w.NewBody(cp.Vector{X: 80, Y: 20}, 4, 4)
	require.Equal(t, 2, w.Len())

	w.Remove(a)
	w.Remove(a)
	assert.Equal(t, 1, w.Len())

	w.Clear()
	assert.Equal(t, 0, w.Len())
}
