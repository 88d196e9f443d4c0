package scene

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/milk9111/skirmish/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestAfterWaitsForDelay(t *testing.T) {
	sched := schedule.New()
	var got []string
	d := NewDirector(sched, func(name string) { got = append(got, name) })

	d.RequestAfter("Derrota", 2)
	name, ok := d.Pending()
	require.True(t, ok)
	assert.Equal(t, "Derrota", name)

	sched.Advance(1.5)
	assert.Empty(t, got)

	sched.Advance(0.5)
	assert.Equal(t, []string{"Derrota"}, got)
	assert.Equal(t, "Derrota", d.Current())

	_, ok = d.Pending()
	assert.False(t, ok)
}

func TestRequestCancelsPending(t *testing.T) {
	sched := schedule.New()
	var got []string
	d := NewDirector(sched, func(name string) { got = append(got, name) })

	d.RequestAfter("Derrota", 2)
	d.Request("Victoria")
	sched.Advance(5)

	assert.Equal(t, []string{"Victoria"}, got)
}

func TestNewerDelayedRequestReplacesOlder(t *testing.T) {
	sched := schedule.New()
	var got []string
	d := NewDirector(sched, func(name string) { got = append(got, name) })

	d.RequestAfter("a", 1)
	d.RequestAfter("b", 3)
	sched.Advance(2)
	assert.Empty(t, got)
	sched.Advance(1)
	assert.Equal(t, []string{"b"}, got)
}

func TestEmptyNameIgnored(t *testing.T) {
	called := false
	d := NewDirector(schedule.New(), func(string) { called = true })
	d.Request("")
	d.RequestAfter("", 0)
	assert.False(t, called)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sched := schedule.New()
	d := NewDirector(sched, nil, WithLogger(logger))

	d.RequestAfter("Victoria", 1)
	sched.Advance(2)

	out := buf.String()
	assert.Contains(t, out, "scene change scheduled")
	assert.Contains(t, out, "scene=Victoria")
	assert.Equal(t, "Victoria", d.Current())
}
