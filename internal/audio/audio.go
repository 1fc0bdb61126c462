// Package audio drives the scene's procedural sound through the speaker.
// All sounds are synthesized; there are no sample assets to load.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and the mixer every scene sound plays through.
// A disabled manager hands out no-op handles so scene code never branches on
// audio availability.
type Manager struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	mixer       *beep.Mixer

	master float64
	music  float64
	effect float64
}

// NewManager creates a manager. Volumes are linear gains in [0, 1]; enabled
// false turns every handle into a no-op without touching the speaker.
func NewManager(enabled bool, master, music, effect float64) *Manager {
	return &Manager{
		enabled: enabled,
		mixer:   &beep.Mixer{},
		master:  master,
		music:   music,
		effect:  effect,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call more than
// once; only the first call touches the device.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything. The speaker itself has no close; clearing the
// mixer stops all streamers.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// Loop is a pausable infinite sound bound to one prop. It satisfies the
// scene's audio handle contract; a Loop from a disabled manager is a no-op.
type Loop struct {
	ctrl *beep.Ctrl
}

// Play resumes the loop.
func (l *Loop) Play() {
	if l == nil || l.ctrl == nil {
		return
	}
	speaker.Lock()
	l.ctrl.Paused = false
	speaker.Unlock()
}

// Pause stops the loop immediately. The streamer keeps its position, but
// nothing the scene plays depends on loop phase.
func (l *Loop) Pause() {
	if l == nil || l.ctrl == nil {
		return
	}
	speaker.Lock()
	l.ctrl.Paused = true
	speaker.Unlock()
}

// loop wraps a generator in a paused, mixed-in control with the given gain.
func (m *Manager) loop(s beep.Streamer, volume float64) *Loop {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return &Loop{}
	}
	ctrl := &beep.Ctrl{Streamer: &gain{s: s, factor: m.master * volume}, Paused: true}
	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()
	return &Loop{ctrl: ctrl}
}

// playOnce mixes in a finite sound effect and lets it run out.
func (m *Manager) playOnce(s beep.Streamer, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	take := beep.Take(sampleRate.N(d), &gain{s: s, factor: m.master * m.effect})
	speaker.Lock()
	m.mixer.Add(take)
	speaker.Unlock()
}

// FireLoop returns the fireplace's crackle loop, created paused.
func (m *Manager) FireLoop() *Loop {
	return m.loop(NewCrackleGenerator(sampleRate), m.effect)
}

// MusicLoop returns the stereo's melody loop, created paused.
func (m *Manager) MusicLoop() *Loop {
	return m.loop(NewMelodyGenerator(sampleRate), m.music)
}

// PlayClick plays the wall-switch click.
func (m *Manager) PlayClick() {
	m.playOnce(NewClickGenerator(sampleRate), 60*time.Millisecond)
}

// PlayFootstep plays one footstep thud. The left foot lands slightly lower
// than the right so the walk doesn't sound mechanical.
func (m *Manager) PlayFootstep(left bool) {
	freq := 95.0
	if left {
		freq = 85.0
	}
	m.playOnce(NewThudGenerator(sampleRate, freq), 120*time.Millisecond)
}

// PlayBell plays the sleigh-bell chime for the flyover.
func (m *Manager) PlayBell() {
	m.playOnce(NewBellGenerator(sampleRate), 900*time.Millisecond)
}

// gain scales a streamer by a constant factor.
type gain struct {
	s      beep.Streamer
	factor float64
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.s.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.factor
		samples[i][1] *= g.factor
	}
	return n, ok
}

func (g *gain) Err() error {
	return g.s.Err()
}
