package props

import (
	"winterhouse/internal/config"
	"winterhouse/internal/core"
	"winterhouse/internal/scene"
)

// addFireplace wires the hearth: a machine swapping between cold logs and
// shuffled flames, a crackle loop, and the fireplace flicker preset.
func addFireplace(sc *scene.Scene, cfg config.HouseConfig) error {
	off := fireplaceOffSheet()
	on := fireplaceOnSheet()

	fireplace := &scene.Prop{
		ID:     "fireplace",
		Pos:    core.Vec2{X: 24, Y: 19},
		Z:      2,
		Sprite: &scene.Sprite{Sheet: off},
		Cursor: scene.NewCursor(0, 0, 12, scene.PlayShuffle),
		Light: &scene.Light{
			Offset: core.Vec2{Y: -1},
			Radius: 14,
		},
		Hit: hitBox(24, 19, 14, 8),
	}

	m := scene.NewMachine("fireplace", fireplace,
		scene.Effects{Sheet: off, Audio: scene.AudioPause},
		scene.Effects{Sheet: on, Animate: true, Audio: scene.AudioPlay},
		sc.Logger(),
	)
	m.SetAudio(audioMgr.FireLoop())

	preset, err := cfg.Preset("fireplace")
	if err != nil {
		return err
	}
	if err := m.BindLight(fireplace, preset); err != nil {
		return err
	}

	sc.AddProp(fireplace)
	sc.AddMachine(m)
	return nil
}

// addTree wires the tree machine plus the presents pile that appears once
// the flyover delivers.
func addTree(sc *scene.Scene, cfg config.HouseConfig) error {
	off := treeOffSheet()
	on := treeOnSheet()

	tree := &scene.Prop{
		ID:     "tree",
		Pos:    core.Vec2{X: 72, Y: 19},
		Z:      2,
		Sprite: &scene.Sprite{Sheet: off},
		Cursor: scene.NewCursor(0, 0, 6, scene.PlayShuffle),
		Light: &scene.Light{
			Offset: core.Vec2{Y: -1},
			Radius: 12,
		},
		Hit: hitBox(72, 19, 12, 8),
	}

	m := scene.NewMachine("tree", tree,
		scene.Effects{Sheet: off},
		scene.Effects{Sheet: on, Animate: true},
		sc.Logger(),
	)

	preset, err := cfg.Preset("tree")
	if err != nil {
		return err
	}
	if err := m.BindLight(tree, preset); err != nil {
		return err
	}

	presents := &scene.Prop{
		ID:     "presents",
		Pos:    core.Vec2{X: 66, Y: 21},
		Z:      3,
		Sprite: &scene.Sprite{Sheet: presentsSheet()},
		Hidden: true,
	}
	presents.Hook = func(ev scene.Event) []scene.Event {
		if ev.Type == scene.EventPresentsDelivered {
			presents.Hidden = false
		}
		return nil
	}

	sc.AddProp(tree)
	sc.AddProp(presents)
	sc.AddMachine(m)
	return nil
}

// addStereo wires the music box: sprite bars while playing, and a melody
// loop that actually stops when switched off.
func addStereo(sc *scene.Scene) {
	off := stereoOffSheet()
	on := stereoOnSheet()

	stereo := &scene.Prop{
		ID:     "stereo",
		Pos:    core.Vec2{X: 56, Y: 20},
		Z:      2,
		Sprite: &scene.Sprite{Sheet: off},
		Cursor: scene.NewCursor(0, 0, 4, scene.PlayLoop),
		Hit:    hitBox(56, 20, 10, 8),
	}

	m := scene.NewMachine("stereo", stereo,
		scene.Effects{Sheet: off, Audio: scene.AudioPause},
		scene.Effects{Sheet: on, Animate: true, Audio: scene.AudioPlay},
		sc.Logger(),
	)
	m.SetAudio(audioMgr.MusicLoop())

	sc.AddProp(stereo)
	sc.AddMachine(m)
}

// addChair places the seat. It has no machine: interacting with it sits the
// character down, which the player state machine handles by itself.
func addChair(sc *scene.Scene) {
	sc.AddProp(&scene.Prop{
		ID:     "chair",
		Pos:    core.Vec2{X: 38, Y: 20},
		Z:      2,
		Sprite: &scene.Sprite{Sheet: chairSheet()},
		Hit:    hitBox(38, 20, 8, 8),
	})
}

// hitBox returns a heap box for a prop's interactable region.
func hitBox(x, y, w, h float64) *core.Box {
	b := core.NewBox(x, y, w, h)
	return &b
}
