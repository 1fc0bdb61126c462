package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// CrackleGenerator produces the fireplace's continuous crackle: filtered
// noise bursts over a low rumble.
type CrackleGenerator struct {
	sr    beep.SampleRate
	pos   int
	seed  int64
	burst float64
}

// NewCrackleGenerator creates a crackle generator.
func NewCrackleGenerator(sr beep.SampleRate) *CrackleGenerator {
	return &CrackleGenerator{sr: sr, seed: 0x5eed}
}

func (g *CrackleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Random pops: occasionally re-arm a fast-decaying burst envelope.
		if g.seed%97731 < 3 {
			g.burst = 1.0
		}
		g.burst *= 0.9996
		pop := 0.35 * g.burst * noise

		hiss := 0.04 * noise
		rumble := 0.12 * math.Sin(2*math.Pi*55*t)

		sample := pop + hiss + rumble
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackleGenerator) Err() error {
	return nil
}

// melodyNotes is the stereo's looping tune, a simple carol phrase.
// Frequencies in Hz with per-note beats.
var melodyNotes = []struct {
	freq  float64
	beats float64
}{
	{659.25, 1}, {659.25, 1}, {659.25, 2}, // E5 E5 E5
	{659.25, 1}, {659.25, 1}, {659.25, 2}, // E5 E5 E5
	{659.25, 1}, {783.99, 1}, {523.25, 1.5}, {587.33, 0.5}, // E5 G5 C5 D5
	{659.25, 4}, // E5
}

// MelodyGenerator plays the looping stereo tune with a soft square voice.
type MelodyGenerator struct {
	sr  beep.SampleRate
	pos int

	beat    float64 // samples per beat
	total   int     // samples per full loop
	offsets []int   // note start offsets in samples
}

// NewMelodyGenerator creates the melody generator at 140 BPM.
func NewMelodyGenerator(sr beep.SampleRate) *MelodyGenerator {
	g := &MelodyGenerator{sr: sr}
	g.beat = float64(sr) * 60.0 / 140.0

	acc := 0
	for _, n := range melodyNotes {
		g.offsets = append(g.offsets, acc)
		acc += int(n.beats * g.beat)
	}
	g.total = acc
	return g
}

// note returns the playing note and the position within it.
func (g *MelodyGenerator) note(loopPos int) (freq float64, notePos, noteLen int) {
	for i := len(melodyNotes) - 1; i >= 0; i-- {
		if loopPos >= g.offsets[i] {
			return melodyNotes[i].freq, loopPos - g.offsets[i], int(melodyNotes[i].beats * g.beat)
		}
	}
	return melodyNotes[0].freq, loopPos, int(melodyNotes[0].beats * g.beat)
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		loopPos := g.pos % g.total
		freq, notePos, noteLen := g.note(loopPos)

		t := float64(g.pos) / float64(g.sr)

		// Soft square: fundamental plus a third harmonic.
		voice := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(2*math.Pi*freq*3*t)

		// Per-note envelope with a short gap before the next note.
		env := 1.0
		attack := int(0.01 * float64(g.sr))
		if notePos < attack {
			env = float64(notePos) / float64(attack)
		}
		release := noteLen - notePos
		tail := int(0.05 * float64(g.sr))
		if release < tail {
			env = math.Min(env, float64(release)/float64(tail))
		}

		sample := 0.2 * env * voice
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}

// ClickGenerator produces the wall switch's short mechanical click.
type ClickGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewClickGenerator creates a click generator; pair with beep.Take.
func NewClickGenerator(sr beep.SampleRate) *ClickGenerator {
	return &ClickGenerator{sr: sr}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 200)
		sample := env * (0.5*math.Sin(2*math.Pi*2400*t) + 0.25*math.Sin(2*math.Pi*1100*t))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// ThudGenerator produces a footstep thud at the given pitch.
type ThudGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewThudGenerator creates a thud generator; pair with beep.Take.
func NewThudGenerator(sr beep.SampleRate, freq float64) *ThudGenerator {
	return &ThudGenerator{sr: sr, freq: freq}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 35)
		// Pitch drops as the step lands.
		freq := g.freq * (1 + 0.5*env)
		sample := 0.4 * env * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// BellGenerator produces the flyover's sleigh-bell chime: a bright
// fundamental with a decaying overtone.
type BellGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewBellGenerator creates a bell generator; pair with beep.Take.
func NewBellGenerator(sr beep.SampleRate) *BellGenerator {
	return &BellGenerator{sr: sr}
}

func (g *BellGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		fund := math.Exp(-t*4) * math.Sin(2*math.Pi*880*t)
		over := math.Exp(-t*7) * math.Sin(2*math.Pi*1760*t)

		sample := 0.3 * (0.7*fund + 0.3*over)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BellGenerator) Err() error {
	return nil
}
