package scene

import (
	"winterhouse/internal/core"
	"winterhouse/internal/flicker"
)

// AudioHandle is a pausable audio loop owned by a prop. The speaker-backed
// implementation lives in the audio package; tests substitute fakes.
type AudioHandle interface {
	Play()
	Pause()
}

// Frame is one sprite frame as rows of equal visual width. Space runes are
// transparent and let whatever is behind the prop show through.
type Frame []string

// Sheet is a named sequence of frames sharing one foreground color.
type Sheet struct {
	Name   string
	Color  core.RGB
	Frames []Frame
}

// FrameCount returns the number of frames in the sheet.
func (s *Sheet) FrameCount() int {
	return len(s.Frames)
}

// Sprite is a prop's visible surface: the current sheet plus orientation.
// The frame index is governed by the owning prop's cursor.
type Sprite struct {
	Sheet *Sheet
	FlipX bool
}

// Light is a point light owned by a prop. Offset is relative to the prop's
// position; color and intensity are rewritten every tick while a flicker
// parameter set is attached.
type Light struct {
	Offset    core.Vec2
	Radius    float64
	Color     core.RGB
	Intensity float64
}

// Prop is one entity in the scene arena. Every field is exclusively owned by
// the prop; cross-prop effects go through the event bus.
type Prop struct {
	ID  string
	Pos core.Vec2
	Z   int

	Sprite *Sprite
	Cursor *Cursor

	// Animating gates cursor advancement; off states with a single frame
	// leave it false.
	Animating bool

	Light   *Light
	Flicker *flicker.Params

	// Hit, when set, registers the prop as an interactable with the tracker.
	Hit *core.Box

	// Hook receives bus events the prop cares about beyond machine toggles.
	// Returned events are published for the next tick.
	Hook func(ev Event) []Event

	// Hidden props are skipped by the renderer (e.g. wall switches that are
	// pure hitboxes, or the delivery sprite between runs).
	Hidden bool
}

// AttachFlicker binds a parameter set to the prop's light. From the next
// sample on, the light's live color and intensity follow the noise field.
func (p *Prop) AttachFlicker(params flicker.Params) {
	if p.Light == nil {
		return
	}
	p.Flicker = &params
}

// DetachFlicker removes the parameter set and forces intensity to exactly
// zero, deterministically and without a fade, so the light exerts no
// influence on the next frame.
func (p *Prop) DetachFlicker() {
	p.Flicker = nil
	if p.Light != nil {
		p.Light.Intensity = 0
	}
}

// SampleFlicker rewrites the light's live color and intensity for the given
// elapsed scene time. No-op unless a parameter set is attached.
func (p *Prop) SampleFlicker(elapsed float64) {
	if p.Flicker == nil || p.Light == nil {
		return
	}
	intensity, color := p.Flicker.Sample(elapsed)
	p.Light.Intensity = intensity
	p.Light.Color = color
}

// LightPos returns the light's absolute stage position.
func (p *Prop) LightPos() core.Vec2 {
	return core.Vec2{X: p.Pos.X + p.Light.Offset.X, Y: p.Pos.Y + p.Light.Offset.Y}
}

// FrameSize returns the current frame's width and height in cells.
func (p *Prop) FrameSize() (int, int) {
	if p.Sprite == nil || p.Sprite.Sheet == nil || len(p.Sprite.Sheet.Frames) == 0 {
		return 0, 0
	}
	f := p.currentFrame()
	w := 0
	for _, row := range f {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w, len(f)
}

// currentFrame returns the frame selected by the cursor, clamped to range.
func (p *Prop) currentFrame() Frame {
	frames := p.Sprite.Sheet.Frames
	idx := 0
	if p.Cursor != nil {
		idx = core.Clamp(p.Cursor.Frame, 0, len(frames)-1)
	}
	return frames[idx]
}

// Draw blits the current frame centered on the prop's position, offset into
// stage space. Space runes are transparent.
func (p *Prop) Draw(dst *core.Screen, offX, offY int) {
	if p.Hidden || p.Sprite == nil || p.Sprite.Sheet == nil || len(p.Sprite.Sheet.Frames) == 0 {
		return
	}

	frame := p.currentFrame()
	w, h := p.FrameSize()
	left := int(p.Pos.X) - w/2
	top := int(p.Pos.Y) - h/2

	for dy, row := range frame {
		runes := []rune(row)
		for dx, r := range runes {
			if r == ' ' {
				continue
			}
			x := dx
			if p.Sprite.FlipX {
				x = len(runes) - 1 - dx
			}
			dst.SetCell(offX+left+x, offY+top+dy, r, p.Sprite.Sheet.Color)
		}
	}
}
