package scene

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"winterhouse/internal/flicker"
)

// State is the binary prop state. Richer machines (the player) have their
// own enumeration; every switchable prop in the scene is two-state.
type State int

const (
	StateOff State = iota
	StateOn
)

// String returns the journal form of the state.
func (s State) String() string {
	if s == StateOn {
		return "on"
	}
	return "off"
}

// AudioAction is what a state does to the prop's audio loop.
type AudioAction int

const (
	AudioNone AudioAction = iota
	AudioPlay
	AudioPause
)

// Effects is the full presentation bound to one state. A state change always
// applies the whole set within the same call; partial swaps are a
// correctness bug.
type Effects struct {
	Sheet   *Sheet
	Animate bool

	Audio AudioAction

	// Sound fires once on entering the state (switch clicks). Nil means no
	// one-shot.
	Sound func()
}

// LightBinding pairs a light-bearing prop with the flicker preset its
// machine attaches while on. Seed and time offset are drawn fresh at each
// attach so re-lit lights never flicker in lockstep.
type LightBinding struct {
	Prop   *Prop
	Preset flicker.Params
}

// Machine is the interactable state machine shared by every switchable
// prop. It filters interaction events by identity, toggles its state, and
// applies the destination state's complete presentation atomically.
type Machine struct {
	id      string
	state   State
	prop    *Prop
	audio   AudioHandle
	lights  []LightBinding
	effects map[State]Effects
	logger  *log.Logger
}

// NewMachine creates a machine for the given prop, starting Off. Both state
// effect sets must be provided; presets are validated up front so numeric
// configuration bugs surface at construction.
func NewMachine(id string, prop *Prop, off, on Effects, logger *log.Logger) *Machine {
	return &Machine{
		id:   id,
		prop: prop,
		effects: map[State]Effects{
			StateOff: off,
			StateOn:  on,
		},
		logger: logger,
	}
}

// SetAudio binds the prop's audio loop handle.
func (m *Machine) SetAudio(h AudioHandle) {
	m.audio = h
}

// BindLight adds a light the machine animates while on. Returns the preset's
// validation error, if any, so wiring bugs fail fast.
func (m *Machine) BindLight(p *Prop, preset flicker.Params) error {
	if err := preset.Validate(); err != nil {
		return err
	}
	m.lights = append(m.lights, LightBinding{Prop: p, Preset: preset})
	return nil
}

// ID returns the machine's interactable identity.
func (m *Machine) ID() string {
	return m.id
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Handle consumes one event. Non-matching events are ignored, not an error.
// A matching interaction executes exactly one transition and the destination
// state's full side-effect set before returning.
func (m *Machine) Handle(ev Event, rng *rand.Rand) bool {
	if ev.Type != EventInteraction || ev.TargetID != m.id {
		return false
	}

	if m.state == StateOff {
		m.state = StateOn
	} else {
		m.state = StateOff
	}
	m.apply(m.state, rng)
	return true
}

// ForceOff resets the machine to Off with its presentation applied, used
// when the scene resets.
func (m *Machine) ForceOff(rng *rand.Rand) {
	m.state = StateOff
	m.apply(StateOff, rng)
}

// apply swaps sprite, audio, and lights to the given state's presentation.
func (m *Machine) apply(s State, rng *rand.Rand) {
	fx := m.effects[s]

	if fx.Sheet != nil && m.prop.Sprite != nil {
		m.prop.Sprite.Sheet = fx.Sheet
		m.prop.Animating = fx.Animate
		if m.prop.Cursor != nil {
			m.prop.Cursor.Last = fx.Sheet.FrameCount() - 1
			m.prop.Cursor.Reset()
		}
	}

	switch fx.Audio {
	case AudioPlay, AudioPause:
		if m.audio == nil {
			// Scene wiring errors should not crash an interactive demo.
			if m.logger != nil {
				m.logger.Warn("machine has no audio handle", "prop", m.id, "state", s.String())
			}
		} else if fx.Audio == AudioPlay {
			m.audio.Play()
		} else {
			m.audio.Pause()
		}
	}

	if fx.Sound != nil {
		fx.Sound()
	}

	for _, binding := range m.lights {
		if binding.Prop.Light == nil {
			if m.logger != nil {
				m.logger.Warn("light binding has no light", "prop", m.id, "light", binding.Prop.ID)
			}
			continue
		}
		if s == StateOn {
			params := binding.Preset
			params.Seed = rng.Float64() * 1000.0
			params.TimeOffset = rng.Float64() * 100.0
			binding.Prop.AttachFlicker(params)
		} else {
			binding.Prop.DetachFlicker()
		}
	}
}
