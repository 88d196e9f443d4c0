package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a raw wave. A negative length streams forever.
type oscillator struct {
	freq   float64
	sweep  float64
	phase  float64
	length int
	pos    int
	wave   Wave
	rate   beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	length := -1
	if d > 0 {
		length = rate.N(d)
	}
	return &oscillator{freq: freq, length: length, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.length >= 0 && o.pos >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.pos)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a finite streamer linearly to silence over its length.
type decay struct {
	streamer beep.Streamer
	pos      int
	length   int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.pos)/float64(d.length)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// gain wraps s in a linear volume. math.Log2(0) is -Inf, so 0 is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// blip is a short decaying tone.
func blip(freq, sweep float64, d time.Duration, wave Wave, vol float64, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(freq, d, wave, rate)
	osc.sweep = sweep
	return gain(&decay{streamer: osc, length: rate.N(d)}, vol)
}

const (
	deathCueDuration = 400 * time.Millisecond
	meleeCueDuration = 90 * time.Millisecond
	shootCueDuration = 60 * time.Millisecond

	loopFreq   = 90.0
	loopVolume = 0.2
)
