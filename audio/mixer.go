package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/actor"
)

// SampleRate is the output rate of every synthesized sound.
const SampleRate = beep.SampleRate(44100)

// defaultPanWidth is the horizontal distance from the listener at which a
// cue is panned hard to one side.
const defaultPanWidth = 320.0

// Mixer mixes every actor voice into one stream. It is safe to stream from
// the speaker goroutine while the game goroutine adds sounds.
type Mixer struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	master   *effects.Volume
	rate     beep.SampleRate
	listener cp.Vector
	panWidth float64
}

// NewMixer creates a silent mixer at rate.
func NewMixer(rate beep.SampleRate) *Mixer {
	if rate <= 0 {
		rate = SampleRate
	}
	mixer := &beep.Mixer{}
	return &Mixer{
		mixer:    mixer,
		master:   &effects.Volume{Streamer: mixer, Base: 2},
		rate:     rate,
		panWidth: defaultPanWidth,
	}
}

// Init opens the speaker and starts playing the mix.
func (m *Mixer) Init() error {
	if err := speaker.Init(m.rate, m.rate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(m.Streamer())
	return nil
}

// Streamer returns the locked master stream.
func (m *Mixer) Streamer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.master.Stream(samples)
	})
}

// SetMuted silences or restores the whole mix.
func (m *Mixer) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.master.Silent = muted
}

// SetListener moves the point cues are panned relative to.
func (m *Mixer) SetListener(p cp.Vector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = p
}

// Len is the number of sounds currently in the mix.
func (m *Mixer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Len()
}

// Clear drops every sound.
func (m *Mixer) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Clear()
}

// Voice creates the audio sink for one actor.
func (m *Mixer) Voice() *Voice {
	return &Voice{m: m}
}

// pan maps a horizontal offset from the listener to [-1, 1].
func (m *Mixer) pan(at cp.Vector) float64 {
	if m.panWidth <= 0 {
		return 0
	}
	p := (at.X - m.listener.X) / m.panWidth
	return math.Max(-1, math.Min(1, p))
}

func (m *Mixer) cue(c actor.Cue) beep.Streamer {
	switch c {
	case actor.CueDeath:
		return blip(220, -300, deathCueDuration, WaveSaw, 0.5, m.rate)
	case actor.CueMelee:
		return blip(0, 0, meleeCueDuration, WaveNoise, 0.4, m.rate)
	case actor.CueShoot:
		return blip(880, 600, shootCueDuration, WaveSquare, 0.25, m.rate)
	default:
		return nil
	}
}

// Voice is one actor's movement loop and cue output. It satisfies
// actor.Audio.
type Voice struct {
	m         *Mixer
	loop      *beep.Ctrl
	resampler *beep.Resampler
}

// SetMovementLoop starts the loop on first use, then only toggles the mute
// and retunes the pitch.
func (v *Voice) SetMovementLoop(muted bool, pitch float64) {
	if v == nil || v.m == nil {
		return
	}
	if pitch <= 0 {
		pitch = 1
	}
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if v.loop == nil {
		hum := newOscillator(loopFreq, 0, WaveSine, m.rate)
		v.resampler = beep.ResampleRatio(4, pitch, hum)
		v.loop = &beep.Ctrl{Streamer: gain(v.resampler, loopVolume), Paused: muted}
		m.mixer.Add(v.loop)
		return
	}
	v.loop.Paused = muted
	v.resampler.SetRatio(pitch)
}

// StopMovementLoop drops the loop from the mix for good.
func (v *Voice) StopMovementLoop() {
	if v == nil || v.m == nil || v.loop == nil {
		return
	}
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	// A nil streamer drains the Ctrl and the mixer removes it.
	v.loop.Streamer = nil
	v.loop = nil
	v.resampler = nil
}

// PlayCue mixes in a one-shot sound panned by its offset from the listener.
func (v *Voice) PlayCue(c actor.Cue, at cp.Vector) {
	if v == nil || v.m == nil {
		return
	}
	m := v.m
	s := m.cue(c)
	if s == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Add(&effects.Pan{Streamer: s, Pan: m.pan(at)})
}

// Playing reports whether the movement loop is audible.
func (v *Voice) Playing() bool {
	if v == nil || v.m == nil || v.loop == nil {
		return false
	}
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	return !v.loop.Paused
}
