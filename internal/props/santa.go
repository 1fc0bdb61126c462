package props

import (
	"winterhouse/internal/config"
	"winterhouse/internal/core"
	"winterhouse/internal/scene"
)

// Flyover tuning: the sleigh hovers over the chimney on the delivery frame.
const (
	santaFPS           = 3
	santaDeliveryFrame = 6
	santaHoverSeconds  = 1.2
)

// addSanta wires the scheduled flyover. After the configured delay the
// sleigh crosses the sky, drops the presents over the chimney, and hides
// itself when the run finishes. Arrivals repeat on the same cadence; once
// the presents are down, later runs skip the chimney hover.
func addSanta(sc *scene.Scene, cfg config.HouseConfig) {
	cursor := scene.NewCursor(0, santaFrames-1, santaFPS, scene.PlayOnce)
	cursor.EmitFrame = santaDeliveryFrame
	cursor.EmitType = scene.EventPresentsDelivered
	hover := map[int]float64{santaDeliveryFrame: santaHoverSeconds}
	cursor.Durations = hover

	w, _ := sc.StageSize()
	santa := &scene.Prop{
		ID:     "santa",
		Pos:    core.Vec2{X: w / 2, Y: 3},
		Z:      5,
		Sprite: &scene.Sprite{Sheet: santaSheet()},
		Cursor: cursor,
		Hidden: true,
	}

	delivered := false
	santa.Hook = func(ev scene.Event) []scene.Event {
		switch ev.Type {
		case scene.EventSceneReset:
			delivered = false

		case scene.EventPresentsDelivered:
			delivered = true

		case scene.EventSantaArrived:
			if !santa.Hidden {
				// A run is already in flight.
				return nil
			}
			if delivered {
				santa.Cursor.Durations = nil
			} else {
				santa.Cursor.Durations = hover
			}
			santa.Cursor.Reset()
			santa.Hidden = false
			santa.Animating = true
			audioMgr.PlayBell()
		}
		return nil
	}

	sc.AddProp(santa)
	sc.ScheduleRepeat(cfg.Santa.DelaySeconds, cfg.Santa.DelaySeconds, scene.Event{Type: scene.EventSantaArrived})
}
