package scene

import (
	"fmt"
	"math/rand"
)

// PlayMode selects how a cursor advances through its frame range.
type PlayMode int

const (
	// PlayLoop advances sequentially and wraps from last back to first.
	PlayLoop PlayMode = iota

	// PlayShuffle jumps to a random frame different from the current one.
	// Fires and tree sparkles use this.
	PlayShuffle

	// PlayOnce advances sequentially and stops after the last frame.
	PlayOnce
)

// Cursor governs discrete sprite-sheet frame advancement, independent of but
// coexisting with continuous flicker. It is owned exclusively by its prop.
type Cursor struct {
	First int
	Last  int
	FPS   int
	Mode  PlayMode

	// Durations overrides the per-frame display time in seconds for specific
	// frame indices, instead of duplicating redundant frames in the sheet.
	Durations map[int]float64

	// EmitFrame, if >= 0, publishes an event of EmitType when the cursor
	// enters that frame during a PlayOnce run.
	EmitFrame int
	EmitType  EventType

	Frame int
	timer float64
	done  bool
}

// NewCursor creates a cursor over [first, last] at the given frame rate.
// A non-positive fps or an inverted range is a design parameter bug, so it
// panics rather than degrading silently.
func NewCursor(first, last, fps int, mode PlayMode) *Cursor {
	if fps <= 0 {
		panic(fmt.Sprintf("scene: cursor fps must be positive, got %d", fps))
	}
	if last < first {
		panic(fmt.Sprintf("scene: cursor range [%d, %d] is inverted", first, last))
	}
	return &Cursor{
		First:     first,
		Last:      last,
		FPS:       fps,
		Mode:      mode,
		EmitFrame: -1,
		Frame:     first,
	}
}

// Reset restarts the cursor at its first frame with a fresh timer. Called
// whenever the governing state changes to a different frame range.
func (c *Cursor) Reset() {
	c.Frame = c.First
	c.timer = 0
	c.done = false
}

// Done reports whether a PlayOnce cursor has finished its run.
func (c *Cursor) Done() bool {
	return c.done
}

// interval returns the display time of the current frame.
func (c *Cursor) interval() float64 {
	if d, ok := c.Durations[c.Frame]; ok {
		return d
	}
	return 1.0 / float64(c.FPS)
}

// Advance accumulates dt and steps the frame when its interval elapses.
// It returns any event emitted by entering a marked frame, or nil.
func (c *Cursor) Advance(dt float64, rng *rand.Rand) *Event {
	if c.done || c.First == c.Last && c.Mode != PlayOnce {
		return nil
	}

	c.timer += dt
	if c.timer < c.interval() {
		return nil
	}
	c.timer = 0

	switch c.Mode {
	case PlayLoop:
		if c.Frame >= c.Last {
			c.Frame = c.First
		} else {
			c.Frame++
		}

	case PlayShuffle:
		next := c.First + rng.Intn(c.Last-c.First+1)
		for next == c.Frame {
			next = c.First + rng.Intn(c.Last-c.First+1)
		}
		c.Frame = next

	case PlayOnce:
		if c.Frame >= c.Last {
			c.done = true
			return nil
		}
		c.Frame++
		if c.Frame == c.EmitFrame {
			return &Event{Type: c.EmitType}
		}
	}

	return nil
}
