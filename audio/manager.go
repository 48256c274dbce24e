package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and plays fire-and-forget cues. A disabled
// manager is a no-op, so callers never have to branch on the sound flag.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewManager creates a silent, uninitialized manager.
func NewManager() *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: 0.5,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup stops playback and releases the speaker. Safe on an
// uninitialized manager.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// PlayCommit plays the committed-name blip.
func (m *Manager) PlayCommit() {
	m.play(CommitCue(sampleRate, m.volume))
}

// PlaySummon plays the summon chime.
func (m *Manager) PlaySummon() {
	m.play(SummonCue(sampleRate, m.volume))
}

// PlayError plays the rejected-action buzz.
func (m *Manager) PlayError() {
	m.play(ErrorCue(sampleRate, m.volume))
}
