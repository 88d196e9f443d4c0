package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweenProgress(t *testing.T) {
	s := New()
	var seen []float64
	h := s.Tween(0.25, func(p float64) { seen = append(seen, p) })

	require.Equal(t, []float64{0}, seen, "tween must apply its first frame immediately")
	assert.False(t, h.Done())

	s.Advance(0.125)
	require.Len(t, seen, 2)
	assert.InDelta(t, 0.5, seen[1], 1e-9)

	s.Advance(0.125)
	require.Len(t, seen, 3)
	assert.Equal(t, 1.0, seen[2])
	assert.True(t, h.Done())
	assert.Equal(t, 0, s.Len())

	s.Advance(1)
	assert.Len(t, seen, 3, "finished tween must not run again")
}

func TestTweenCancel(t *testing.T) {
	s := New()
	calls := 0
	h := s.Tween(1, func(float64) { calls++ })
	h.Cancel()
	s.Advance(0.5)
	s.Advance(0.5)

	assert.Equal(t, 1, calls)
	assert.True(t, h.Done())
	assert.Equal(t, 0, s.Len())
}

func TestAfter(t *testing.T) {
	s := New()
	fired := 0
	h := s.After(2, func() { fired++ })

	s.Advance(1)
	s.Advance(0.5)
	assert.Equal(t, 0, fired)

	s.Advance(0.5)
	assert.Equal(t, 1, fired)
	assert.True(t, h.Done())

	s.Advance(5)
	assert.Equal(t, 1, fired)
}

func TestScheduleFromInsideTask(t *testing.T) {
	s := New()
	inner := 0
	s.After(0, func() {
		s.After(0, func() { inner++ })
	})

	s.Advance(0)
	assert.Equal(t, 0, inner, "nested task starts on the next Advance")
	assert.Equal(t, 1, s.Len())

	s.Advance(0)
	assert.Equal(t, 1, inner)
}

func TestClear(t *testing.T) {
	s := New()
	a := s.After(1, func() { t.Fatalf("cleared task fired") })
	b := s.Tween(1, func(float64) {})
	s.Clear()
	s.Advance(2)

	assert.True(t, a.Done())
	assert.True(t, b.Done())
	assert.Equal(t, 0, s.Len())
}

func TestClearFromInsideTask(t *testing.T) {
	s := New()
	var ticks int
	other := s.Tween(10, func(float64) { ticks++ })
	var replacement *Handle
	s.After(0.1, func() {
		s.Clear()
		replacement = s.After(1, func() {})
	})

	s.Advance(0.2)

	assert.True(t, other.Done())
	require.NotNil(t, replacement)
	assert.False(t, replacement.Done())
	assert.Len(t, s.tasks, 1, "cleared entries must not be kept")
	assert.Equal(t, 1, s.Len())

	before := ticks
	s.Advance(0.5)
	assert.Equal(t, before, ticks)
	assert.Equal(t, 1, s.Len())
}
