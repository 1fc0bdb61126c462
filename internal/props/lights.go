package props

import (
	"winterhouse/internal/config"
	"winterhouse/internal/core"
	"winterhouse/internal/scene"
)

// lightCircuits lists the machines the wall switch fans out to. The bulbs
// themselves carry no hitbox; the switch is their only way on or off.
var lightCircuits = []string{"attic", "xmas-red", "xmas-yellow", "xmas-green"}

// addLights wires the wall switch, the attic lamp, and the tree's bulb
// strand grouped by color family.
func addLights(sc *scene.Scene, cfg config.HouseConfig) error {
	if err := addSwitch(sc); err != nil {
		return err
	}
	if err := addAttic(sc, cfg); err != nil {
		return err
	}
	return addStrand(sc, cfg)
}

// addSwitch wires the wall switch: a click on toggle, plus a fan-out hook
// that forwards the interaction to every light circuit on the next tick.
func addSwitch(sc *scene.Scene) error {
	off := switchOffSheet()
	on := switchOnSheet()

	sw := &scene.Prop{
		ID:     "switch",
		Pos:    core.Vec2{X: 46, Y: 13},
		Z:      1,
		Sprite: &scene.Sprite{Sheet: off},
		Hit:    hitBox(46, 19, 6, 8),
	}
	sw.Hook = func(ev scene.Event) []scene.Event {
		if ev.Type != scene.EventInteraction || ev.TargetID != "switch" {
			return nil
		}
		out := make([]scene.Event, 0, len(lightCircuits))
		for _, id := range lightCircuits {
			out = append(out, scene.Event{Type: scene.EventInteraction, TargetID: id})
		}
		return out
	}

	m := scene.NewMachine("switch", sw,
		scene.Effects{Sheet: off, Sound: audioMgr.PlayClick},
		scene.Effects{Sheet: on, Sound: audioMgr.PlayClick},
		sc.Logger(),
	)

	sc.AddProp(sw)
	sc.AddMachine(m)
	return nil
}

// addAttic wires the single lamp under the roof ridge.
func addAttic(sc *scene.Scene, cfg config.HouseConfig) error {
	bulb := &scene.Prop{
		ID:     "attic-bulb",
		Pos:    core.Vec2{X: 48, Y: 7},
		Z:      1,
		Sprite: &scene.Sprite{Sheet: bulbSheet()},
		Light:  &scene.Light{Radius: 18},
	}

	m := scene.NewMachine("attic", bulb,
		scene.Effects{},
		scene.Effects{},
		sc.Logger(),
	)
	preset, err := cfg.Preset("attic")
	if err != nil {
		return err
	}
	if err := m.BindLight(bulb, preset); err != nil {
		return err
	}

	sc.AddProp(bulb)
	sc.AddMachine(m)
	return nil
}

// addStrand wires the tree's bulbs. Each color family is one machine with
// its own flicker preset, driving several bulbs that twinkle independently
// thanks to per-attach seeds.
func addStrand(sc *scene.Scene, cfg config.HouseConfig) error {
	families := map[string][]core.Vec2{
		"xmas-red":    {{X: 70, Y: 17}, {X: 74, Y: 19}},
		"xmas-yellow": {{X: 72, Y: 16}, {X: 69, Y: 20}},
		"xmas-green":  {{X: 75, Y: 18}, {X: 71, Y: 18}},
	}

	for _, family := range []string{"xmas-red", "xmas-yellow", "xmas-green"} {
		preset, err := cfg.Preset(family)
		if err != nil {
			return err
		}

		bulbs := make([]*scene.Prop, 0, len(families[family]))
		for i, pos := range families[family] {
			bulb := &scene.Prop{
				ID:     bulbID(family, i),
				Pos:    pos,
				Z:      3,
				Sprite: &scene.Sprite{Sheet: bulbSheet()},
				Light:  &scene.Light{Radius: 4},
			}
			bulbs = append(bulbs, bulb)
			sc.AddProp(bulb)
		}

		m := scene.NewMachine(family, bulbs[0],
			scene.Effects{},
			scene.Effects{},
			sc.Logger(),
		)
		for _, bulb := range bulbs {
			if err := m.BindLight(bulb, preset); err != nil {
				return err
			}
		}
		sc.AddMachine(m)
	}
	return nil
}

func bulbID(family string, i int) string {
	return family + "-" + string(rune('0'+i))
}
