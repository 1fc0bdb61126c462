package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// drain pulls n samples from a streamer and returns them flattened.
func drain(t *testing.T, s beep.Streamer, n int) []float64 {
	t.Helper()
	buf := make([][2]float64, n)
	got, ok := s.Stream(buf)
	if !ok || got != n {
		t.Fatalf("Stream() = (%d, %v), want (%d, true)", got, ok, n)
	}
	out := make([]float64, 0, n)
	for _, pair := range buf {
		out = append(out, pair[0])
	}
	return out
}

func assertBounded(t *testing.T, name string, samples []float64, limit float64) {
	t.Helper()
	for i, v := range samples {
		if math.IsNaN(v) || math.Abs(v) > limit {
			t.Fatalf("%s sample %d out of bounds: %v", name, i, v)
		}
	}
}

func TestGeneratorsStayBounded(t *testing.T) {
	n := int(sampleRate) * 2 // two seconds

	assertBounded(t, "crackle", drain(t, NewCrackleGenerator(sampleRate), n), 1.0)
	assertBounded(t, "melody", drain(t, NewMelodyGenerator(sampleRate), n), 1.0)
	assertBounded(t, "click", drain(t, NewClickGenerator(sampleRate), n), 1.0)
	assertBounded(t, "thud", drain(t, NewThudGenerator(sampleRate, 90), n), 1.0)
	assertBounded(t, "bell", drain(t, NewBellGenerator(sampleRate), n), 1.0)
}

func TestGeneratorsProduceSignal(t *testing.T) {
	n := int(sampleRate) / 10 // first 100ms

	for _, tc := range []struct {
		name string
		s    beep.Streamer
	}{
		{"crackle", NewCrackleGenerator(sampleRate)},
		{"melody", NewMelodyGenerator(sampleRate)},
		{"click", NewClickGenerator(sampleRate)},
		{"thud", NewThudGenerator(sampleRate, 90)},
		{"bell", NewBellGenerator(sampleRate)},
	} {
		samples := drain(t, tc.s, n)
		peak := 0.0
		for _, v := range samples {
			peak = math.Max(peak, math.Abs(v))
		}
		if peak < 0.01 {
			t.Errorf("%s is silent (peak %v)", tc.name, peak)
		}
	}
}

func TestOneShotsDecayToSilence(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    beep.Streamer
	}{
		{"click", NewClickGenerator(sampleRate)},
		{"thud", NewThudGenerator(sampleRate, 90)},
		{"bell", NewBellGenerator(sampleRate)},
	} {
		// Skip past the strike, then check the tail is quiet.
		drain(t, tc.s, int(sampleRate)*2)
		tail := drain(t, tc.s, int(sampleRate)/10)
		for _, v := range tail {
			if math.Abs(v) > 0.01 {
				t.Errorf("%s tail still audible: %v", tc.name, v)
				break
			}
		}
	}
}

func TestMelodyLoops(t *testing.T) {
	g := NewMelodyGenerator(sampleRate)
	if g.total <= 0 {
		t.Fatal("Melody loop length must be positive")
	}

	// The note lookup must cover every position in the loop.
	for pos := 0; pos < g.total; pos += g.total / 97 {
		freq, notePos, noteLen := g.note(pos)
		if freq <= 0 || notePos < 0 || noteLen <= 0 {
			t.Fatalf("note(%d) = (%v, %d, %d)", pos, freq, notePos, noteLen)
		}
		if notePos >= noteLen {
			t.Fatalf("note(%d): position %d past note length %d", pos, notePos, noteLen)
		}
	}
}

func TestDisabledManagerHandlesAreNoOps(t *testing.T) {
	m := NewManager(false, 0.8, 0.6, 0.9)
	if err := m.Initialize(); err != nil {
		t.Fatalf("Disabled Initialize() should not fail: %v", err)
	}

	// No speaker: handles must be inert, not panic.
	fire := m.FireLoop()
	fire.Play()
	fire.Pause()
	music := m.MusicLoop()
	music.Play()
	music.Pause()
	m.PlayClick()
	m.PlayFootstep(true)
	m.PlayBell()
	m.Close()

	var nilLoop *Loop
	nilLoop.Play()
	nilLoop.Pause()
}

func TestGainScalesSamples(t *testing.T) {
	g := &gain{s: NewThudGenerator(sampleRate, 90), factor: 0.5}
	ref := NewThudGenerator(sampleRate, 90)

	scaled := drain(t, g, 256)
	raw := drain(t, ref, 256)
	for i := range raw {
		if math.Abs(scaled[i]-raw[i]*0.5) > 1e-12 {
			t.Fatalf("Sample %d not scaled: %v vs %v", i, scaled[i], raw[i])
		}
	}
}
