// Package flicker turns fractal noise into per-tick light intensity and
// color. Every glowing prop in the scene attaches a Params instance while it
// is on and samples it once per tick.
package flicker

import (
	"errors"
	"math"

	"winterhouse/internal/core"
	"winterhouse/internal/noise"
)

// Intensity holds the tunables for the brightness channel.
type Intensity struct {
	Amplitude float64
	Frequency float64
	Min       float64
	Octaves   int
}

// Color holds the tunables for the palette-blend channel. Temperature is the
// softmax sharpness: low values snap the blend toward a single dominant
// palette color, high values keep a smooth multi-color wash.
type Color struct {
	Frequency   float64
	Octaves     int
	SeedOffset  float64
	Temperature float64
}

// Params is the tunable bundle that drives one light's noise-based
// animation. Seed distinguishes independent lights sharing the same noise
// field; TimeOffset decorrelates instances created at different times. Both
// enter the noise domain as offsets, never as a table reseed.
type Params struct {
	Seed       float64
	TimeOffset float64
	Intensity  Intensity
	Color      Color
	Palette    []core.RGB
}

// Validate rejects numeric configuration that signals a design parameter
// bug. Props fail fast at construction instead of degrading silently.
func (p Params) Validate() error {
	if p.Intensity.Octaves < 1 {
		return errors.New("flicker: intensity octaves must be >= 1")
	}
	if p.Color.Octaves < 1 {
		return errors.New("flicker: color octaves must be >= 1")
	}
	if p.Color.Temperature <= 0 {
		return errors.New("flicker: color temperature must be > 0")
	}
	if len(p.Palette) < 1 {
		return errors.New("flicker: palette needs at least one color")
	}
	return nil
}

// Sample computes the light's intensity and color for the given elapsed
// scene time. It is a pure function of (params, elapsed): repeated calls
// with the same inputs return identical values.
func (p Params) Sample(elapsed float64) (float64, core.RGB) {
	t := elapsed + p.TimeOffset

	n := noise.Generate(t*p.Intensity.Frequency, p.Seed, p.Intensity.Octaves)
	intensity := n*p.Intensity.Amplitude + p.Intensity.Min

	w := p.weights(t)
	return intensity, blend(p.Palette, w)
}

// weights draws one decorrelated noise sample per palette entry and softmax-
// normalizes them, so each color follows its own trajectory through the
// noise field rather than a shared one.
func (p Params) weights(t float64) []float64 {
	logits := make([]float64, len(p.Palette))
	for i := range p.Palette {
		colorSeed := p.Seed + float64(i)*p.Color.SeedOffset
		logits[i] = noise.Generate(t*p.Color.Frequency, colorSeed, p.Color.Octaves)
	}
	return softmax(logits, p.Color.Temperature)
}

// softmax normalizes logits into a probability simplex with a temperature
// parameter. Shifting by the max logit before exponentiating is required for
// numeric stability, not an optimization.
func softmax(logits []float64, temperature float64) []float64 {
	scaled := make([]float64, len(logits))
	maxLogit := math.Inf(-1)
	for i, x := range logits {
		scaled[i] = x / temperature
		if scaled[i] > maxLogit {
			maxLogit = scaled[i]
		}
	}

	sum := 0.0
	for i, x := range scaled {
		scaled[i] = math.Exp(x - maxLogit)
		sum += scaled[i]
	}

	for i := range scaled {
		scaled[i] /= sum
	}
	return scaled
}

// blend mixes the palette channel-wise using the given weights. Intensity is
// carried separately; palette alpha plays no part.
func blend(palette []core.RGB, weights []float64) core.RGB {
	var r, g, b float64
	for i, c := range palette {
		r += c.R * weights[i]
		g += c.G * weights[i]
		b += c.B * weights[i]
	}
	return core.RGB{R: r, G: g, B: b}
}
