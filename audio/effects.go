// Package audio synthesizes short UI cues. Everything is generated, no
// sample files: oscillators shaped by an attack/release envelope.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw audio wave for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator streamer for wave generation.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with gain. math.Log2(0) is -Inf, so zero gain
// becomes silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue generators. Durations are short enough that overlapping cues mix
// without clutter.

const (
	commitDuration = 90 * time.Millisecond
	summonDuration = 160 * time.Millisecond
	errorDuration  = 120 * time.Millisecond
	cueAttack      = 5 * time.Millisecond
	cueRelease     = 40 * time.Millisecond
)

// CommitCue is a single high blip confirming a committed name.
func CommitCue(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(880.0, commitDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, commitDuration, cueAttack, cueRelease, rate)
	return newVolume(shaped, volume)
}

// SummonCue is a rising two-tone chime for a card hitting the field.
func SummonCue(rate beep.SampleRate, volume float64) beep.Streamer {
	low := NewOscillator(523.25, summonDuration, WaveSine, rate)
	high := NewOscillator(783.99, summonDuration, WaveSine, rate)
	mixed := beep.Mix(
		NewEnvelope(low, summonDuration, cueAttack, summonDuration/2, rate),
		NewEnvelope(high, summonDuration, summonDuration/3, cueRelease, rate),
	)
	return newVolume(mixed, volume)
}

// ErrorCue is a low buzz for rejected actions.
func ErrorCue(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(110.0, errorDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, errorDuration, cueAttack, cueRelease, rate)
	return newVolume(shaped, volume)
}
