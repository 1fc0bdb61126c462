package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a color with channels in [0, 1]. Lights and palettes work in this
// space; conversion to terminal colors happens at render time.
type RGB struct {
	R, G, B float64
}

// NewRGB creates a color from channel values in [0, 1].
func NewRGB(r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b}
}

// ParseHex parses a "#rrggbb" color string.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("core: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: float64(v>>16&0xff) / 255.0,
		G: float64(v>>8&0xff) / 255.0,
		B: float64(v&0xff) / 255.0,
	}, nil
}

// Hex returns the "#rrggbb" form, clamping channels into range.
func (c RGB) Hex() string {
	r := int(ClampF(c.R, 0, 1)*255 + 0.5)
	g := int(ClampF(c.G, 0, 1)*255 + 0.5)
	b := int(ClampF(c.B, 0, 1)*255 + 0.5)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Scale multiplies all channels by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Lerp blends toward other by t in [0, 1].
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Clamp returns the color with every channel clamped into [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{
		R: ClampF(c.R, 0, 1),
		G: ClampF(c.G, 0, 1),
		B: ClampF(c.B, 0, 1),
	}
}
