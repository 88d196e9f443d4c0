package audio

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ actor.Audio = (*Voice)(nil)

func drain(m *Mixer, n int) [][2]float64 {
	buf := make([][2]float64, n)
	m.Streamer().Stream(buf)
	return buf
}

func silent(buf [][2]float64, ch int) bool {
	for _, s := range buf {
		if s[ch] != 0 {
			return false
		}
	}
	return true
}

func TestMovementLoop(t *testing.T) {
	m := NewMixer(SampleRate)
	v := m.Voice()

	v.SetMovementLoop(false, 2)
	require.Equal(t, 1, m.Len())
	assert.True(t, v.Playing())
	assert.False(t, silent(drain(m, 2048), 0))

	v.SetMovementLoop(true, 1)
	assert.Equal(t, 1, m.Len(), "muting keeps the loop in the mix")
	assert.False(t, v.Playing())
	assert.True(t, silent(drain(m, 2048), 0))

	v.SetMovementLoop(false, 3)
	assert.False(t, silent(drain(m, 2048), 0))

	v.StopMovementLoop()
	drain(m, 512)
	assert.Equal(t, 0, m.Len())
	assert.False(t, v.Playing())
}

func TestCuesDrain(t *testing.T) {
	cases := []struct {
		cue      actor.Cue
		duration time.Duration
	}{
		{actor.CueDeath, deathCueDuration},
		{actor.CueMelee, meleeCueDuration},
		{actor.CueShoot, shootCueDuration},
	}
	for _, c := range cases {
		t.Run(c.cue.String(), func(t *testing.T) {
			m := NewMixer(SampleRate)
			m.Voice().PlayCue(c.cue, cp.Vector{})
			require.Equal(t, 1, m.Len())

			drain(m, SampleRate.N(c.duration)+1024)
			assert.Equal(t, 0, m.Len())
		})
	}
}

func TestCuePanning(t *testing.T) {
	m := NewMixer(SampleRate)
	m.SetListener(cp.Vector{X: 100})

	assert.Equal(t, 0.0, m.pan(cp.Vector{X: 100}))
	assert.Equal(t, 1.0, m.pan(cp.Vector{X: 5000}))
	assert.Equal(t, -1.0, m.pan(cp.Vector{X: -5000}))
	assert.InDelta(t, 0.5, m.pan(cp.Vector{X: 100 + defaultPanWidth/2}), 1e-9)

	m.Voice().PlayCue(actor.CueShoot, cp.Vector{X: 5000})
	buf := drain(m, 1024)
	assert.True(t, silent(buf, 0), "hard right leaves the left channel empty")
	assert.False(t, silent(buf, 1))
}

func TestMutedMixerIsSilent(t *testing.T) {
	m := NewMixer(SampleRate)
	m.SetMuted(true)
	m.Voice().SetMovementLoop(false, 1)
	assert.True(t, silent(drain(m, 1024), 0))
}

func TestOscillatorLength(t *testing.T) {
	osc := newOscillator(440, 10*time.Millisecond, WaveSquare, SampleRate)
	want := SampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, want+100)
	n, ok := osc.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, want, n)
	for _, s := range buf[:n] {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}

	n, ok = osc.Stream(buf)
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestNilVoiceIsSafe(t *testing.T) {
	var v *Voice
	v.SetMovementLoop(false, 1)
	v.StopMovementLoop()
	v.PlayCue(actor.CueDeath, cp.Vector{})
	assert.False(t, v.Playing())
}
