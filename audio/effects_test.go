package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var all [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	tests := []struct {
		name     string
		wave     WaveType
		duration time.Duration
	}{
		{"Sine 100ms", WaveSine, 100 * time.Millisecond},
		{"Square 50ms", WaveSquare, 50 * time.Millisecond},
		{"Saw 10ms", WaveSaw, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440.0, tt.duration, tt.wave, testRate)
			samples := drain(t, osc)
			want := testRate.N(tt.duration)
			if len(samples) != want {
				t.Errorf("Got %d samples, want %d", len(samples), want)
			}
		})
	}
}

func TestOscillatorStaysInRange(t *testing.T) {
	osc := NewOscillator(880.0, 20*time.Millisecond, WaveSine, testRate)
	for i, s := range drain(t, osc) {
		if math.Abs(s[0]) > 1.0 || math.Abs(s[1]) > 1.0 {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
	}
}

func TestEnvelopeRampsToSilence(t *testing.T) {
	duration := 100 * time.Millisecond
	osc := NewOscillator(440.0, duration, WaveSquare, testRate)
	shaped := NewEnvelope(osc, duration, 10*time.Millisecond, 30*time.Millisecond, testRate)

	samples := drain(t, shaped)
	if len(samples) == 0 {
		t.Fatal("Envelope produced no samples")
	}

	// First sample is at the very start of the attack ramp.
	if math.Abs(samples[0][0]) > 0.01 {
		t.Errorf("Attack start not quiet: %v", samples[0])
	}
	// Last samples are at the end of the release ramp.
	last := samples[len(samples)-1]
	if math.Abs(last[0]) > 0.05 {
		t.Errorf("Release end not quiet: %v", last)
	}
}

func TestCueGeneratorsProduceBoundedStreams(t *testing.T) {
	tests := []struct {
		name string
		cue  beep.Streamer
	}{
		{"Commit", CommitCue(testRate, 0.5)},
		{"Summon", SummonCue(testRate, 0.5)},
		{"Error", ErrorCue(testRate, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, tt.cue)
			if len(samples) == 0 {
				t.Fatal("Cue produced no samples")
			}
			// Half a second is far beyond any cue duration.
			if len(samples) > testRate.N(500*time.Millisecond) {
				t.Errorf("Cue unreasonably long: %d samples", len(samples))
			}
			for i, s := range samples {
				if math.Abs(s[0]) > 1.0 {
					t.Fatalf("Sample %d clips: %v", i, s)
				}
			}
		})
	}
}

func TestUninitializedManagerIsNoOp(t *testing.T) {
	m := NewManager()
	// Must not panic or touch the speaker.
	m.PlayCommit()
	m.PlaySummon()
	m.PlayError()
	m.Cleanup()
}
