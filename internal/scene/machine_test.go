package scene

import (
	"math/rand"
	"testing"

	"winterhouse/internal/core"
	"winterhouse/internal/flicker"
)

func testSheet(name string, frames int) *Sheet {
	s := &Sheet{Name: name, Color: core.NewRGB(1, 1, 1)}
	for i := 0; i < frames; i++ {
		s.Frames = append(s.Frames, Frame{"##", "##"})
	}
	return s
}

func testPreset() flicker.Params {
	return flicker.Params{
		Intensity: flicker.Intensity{Amplitude: 0.4, Frequency: 2, Min: 0.6, Octaves: 4},
		Color:     flicker.Color{Frequency: 1, Octaves: 2, SeedOffset: 100, Temperature: 0.2},
		Palette: []core.RGB{
			core.NewRGB(1, 0.6, 0.2),
			core.NewRGB(1, 0.3, 0.1),
		},
	}
}

type fakeAudio struct {
	playing bool
	plays   int
	pauses  int
}

func (f *fakeAudio) Play()  { f.playing = true; f.plays++ }
func (f *fakeAudio) Pause() { f.playing = false; f.pauses++ }

func newTestMachine(id string) (*Machine, *Prop) {
	off := testSheet("off", 1)
	on := testSheet("on", 5)
	prop := &Prop{
		ID:     id,
		Sprite: &Sprite{Sheet: off},
		Cursor: NewCursor(0, 0, 12, PlayShuffle),
		Light:  &Light{Radius: 8},
	}
	m := NewMachine(id, prop,
		Effects{Sheet: off},
		Effects{Sheet: on, Animate: true},
		nil,
	)
	return m, prop
}

func TestMachineToggleScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m, prop := newTestMachine("fireplace")
	if err := m.BindLight(prop, testPreset()); err != nil {
		t.Fatalf("BindLight() failed: %v", err)
	}

	if m.State() != StateOff {
		t.Fatal("Machine should start Off")
	}

	// Matching event: Off -> On with the full presentation swap
	if !m.Handle(Event{Type: EventInteraction, TargetID: "fireplace"}, rng) {
		t.Fatal("Matching event should be handled")
	}
	if m.State() != StateOn {
		t.Error("State should be On after first toggle")
	}
	if prop.Sprite.Sheet.Name != "on" {
		t.Errorf("Sprite should swap to the on sheet, got %q", prop.Sprite.Sheet.Name)
	}
	if !prop.Animating {
		t.Error("On state should animate")
	}
	if prop.Flicker == nil {
		t.Error("Flicker parameters should be attached while On")
	}
	if prop.Cursor.Frame != 0 {
		t.Error("Cursor should reset on sheet swap")
	}

	prop.SampleFlicker(1.0)
	if prop.Light.Intensity <= 0 {
		t.Error("Lit flicker should produce positive intensity")
	}

	// Second matching event: On -> Off, flicker detached, intensity exactly 0
	if !m.Handle(Event{Type: EventInteraction, TargetID: "fireplace"}, rng) {
		t.Fatal("Second matching event should be handled")
	}
	if m.State() != StateOff {
		t.Error("State should be Off after second toggle")
	}
	if prop.Flicker != nil {
		t.Error("Flicker parameters should be removed when Off")
	}
	if prop.Light.Intensity != 0 {
		t.Errorf("Detach must force intensity to exactly 0, got %v", prop.Light.Intensity)
	}

	// Sampling after detach is a no-op
	prop.SampleFlicker(2.0)
	if prop.Light.Intensity != 0 {
		t.Errorf("Intensity should stay 0 after detach, got %v", prop.Light.Intensity)
	}
}

func TestMachineIgnoresWrongIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m, prop := newTestMachine("tree")

	sheetBefore := prop.Sprite.Sheet
	if m.Handle(Event{Type: EventInteraction, TargetID: "fireplace"}, rng) {
		t.Fatal("Non-matching identity should not be handled")
	}
	if m.Handle(Event{Type: EventPresentsDelivered, TargetID: "tree"}, rng) {
		t.Fatal("Non-interaction event should not be handled")
	}
	if m.State() != StateOff || prop.Sprite.Sheet != sheetBefore {
		t.Error("Ignored events must leave state and presentation unchanged")
	}
}

func TestMachineAudioFollowsState(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	off := testSheet("off", 1)
	on := testSheet("on", 4)
	prop := &Prop{ID: "stereo", Sprite: &Sprite{Sheet: off}, Cursor: NewCursor(0, 0, 8, PlayLoop)}

	m := NewMachine("stereo", prop,
		Effects{Sheet: off, Audio: AudioPause},
		Effects{Sheet: on, Animate: true, Audio: AudioPlay},
		nil,
	)
	speaker := &fakeAudio{}
	m.SetAudio(speaker)

	m.Handle(Event{Type: EventInteraction, TargetID: "stereo"}, rng)
	if !speaker.playing {
		t.Error("Audio should play while On")
	}

	// Off must actually stop playback, not just swap the sprite.
	m.Handle(Event{Type: EventInteraction, TargetID: "stereo"}, rng)
	if speaker.playing {
		t.Error("Audio must pause when the machine turns Off")
	}
	if speaker.plays != 1 || speaker.pauses != 1 {
		t.Errorf("Expected one play and one pause, got %d/%d", speaker.plays, speaker.pauses)
	}
}

func TestMachineMissingAudioIsLoggedNoOp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	off := testSheet("off", 1)
	on := testSheet("on", 2)
	prop := &Prop{ID: "stereo", Sprite: &Sprite{Sheet: off}}

	m := NewMachine("stereo", prop,
		Effects{Sheet: off, Audio: AudioPause},
		Effects{Sheet: on, Audio: AudioPlay},
		nil,
	)

	// No audio handle bound: the transition itself must still succeed.
	if !m.Handle(Event{Type: EventInteraction, TargetID: "stereo"}, rng) {
		t.Fatal("Transition should succeed without an audio handle")
	}
	if m.State() != StateOn || prop.Sprite.Sheet.Name != "on" {
		t.Error("Sprite swap should proceed despite missing audio")
	}
}

func TestMachineFreshFlickerSeedsPerAttach(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m, prop := newTestMachine("attic")
	if err := m.BindLight(prop, testPreset()); err != nil {
		t.Fatalf("BindLight() failed: %v", err)
	}

	ev := Event{Type: EventInteraction, TargetID: "attic"}
	m.Handle(ev, rng)
	first := *prop.Flicker
	m.Handle(ev, rng) // off
	m.Handle(ev, rng) // on again
	second := *prop.Flicker

	if first.Seed == second.Seed && first.TimeOffset == second.TimeOffset {
		t.Error("Re-attach should draw a fresh seed and time offset")
	}
}

func TestMachineBindLightValidatesPreset(t *testing.T) {
	m, prop := newTestMachine("attic")

	bad := testPreset()
	bad.Color.Temperature = 0
	if err := m.BindLight(prop, bad); err == nil {
		t.Error("Zero temperature should fail validation")
	}

	bad = testPreset()
	bad.Intensity.Octaves = 0
	if err := m.BindLight(prop, bad); err == nil {
		t.Error("Zero intensity octaves should fail validation")
	}

	bad = testPreset()
	bad.Palette = nil
	if err := m.BindLight(prop, bad); err == nil {
		t.Error("Empty palette should fail validation")
	}
}

func TestMachineOneShotSoundFires(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	off := testSheet("off", 1)
	on := testSheet("on", 1)
	prop := &Prop{ID: "switch", Sprite: &Sprite{Sheet: off}}

	clicks := 0
	click := func() { clicks++ }
	m := NewMachine("switch", prop,
		Effects{Sheet: off, Sound: click},
		Effects{Sheet: on, Sound: click},
		nil,
	)

	ev := Event{Type: EventInteraction, TargetID: "switch"}
	m.Handle(ev, rng)
	m.Handle(ev, rng)
	if clicks != 2 {
		t.Errorf("Expected a click per transition, got %d", clicks)
	}
}
