package scene

import (
	"testing"

	"winterhouse/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 30,
		Seed:     12345,
	}
}

// buildTestScene wires a minimal diorama: a fireplace machine with a lit
// prop, a stereo with audio, and the player between them.
func buildTestScene() (*Scene, *Player, *Prop, *fakeAudio) {
	sc := New("test", "Test", nil)
	sc.SetStage(96, 26)

	fireplace := &Prop{
		ID:     "fireplace",
		Pos:    core.Vec2{X: 20, Y: 20},
		Sprite: &Sprite{Sheet: testSheet("fire-off", 1)},
		Cursor: NewCursor(0, 0, 12, PlayShuffle),
		Light:  &Light{Radius: 10},
		Hit:    boxPtr(core.NewBox(20, 20, 8, 8)),
	}
	fm := NewMachine("fireplace", fireplace,
		Effects{Sheet: fireplace.Sprite.Sheet},
		Effects{Sheet: testSheet("fire-on", 5), Animate: true},
		nil,
	)
	if err := fm.BindLight(fireplace, testPreset()); err != nil {
		panic(err)
	}
	sc.AddProp(fireplace)
	sc.AddMachine(fm)

	stereo := &Prop{
		ID:     "stereo",
		Pos:    core.Vec2{X: 70, Y: 20},
		Sprite: &Sprite{Sheet: testSheet("stereo-off", 1)},
		Cursor: NewCursor(0, 0, 8, PlayLoop),
		Hit:    boxPtr(core.NewBox(70, 20, 8, 8)),
	}
	sm := NewMachine("stereo", stereo,
		Effects{Sheet: stereo.Sprite.Sheet, Audio: AudioPause},
		Effects{Sheet: testSheet("stereo-on", 4), Animate: true, Audio: AudioPlay},
		nil,
	)
	speaker := &fakeAudio{}
	sm.SetAudio(speaker)
	sc.AddProp(stereo)
	sc.AddMachine(sm)

	man := &Prop{
		ID:     "man",
		Pos:    core.Vec2{X: 48, Y: 20},
		Sprite: &Sprite{},
		Cursor: NewCursor(0, 0, 8, PlayLoop),
	}
	pl := NewPlayer(man, testSheet("stand", 1), testSheet("walk", 4), testSheet("sit", 1), 14)
	pl.HitW, pl.HitH = 4, 4
	sc.AddProp(man)
	sc.SetPlayer(pl, man.Pos)

	return sc, pl, fireplace, speaker
}

func boxPtr(b core.Box) *core.Box {
	box := b
	return &box
}

func TestSceneToggleVisibleSameTick(t *testing.T) {
	sc, pl, fireplace, _ := buildTestScene()
	sc.Reset(testConfig())

	// Teleport the player into fireplace range and activate.
	pl.Prop.Pos = core.Vec2{X: 22, Y: 20}
	in := core.NewInputFrame()
	in.Set(core.ActionInteract)
	res := sc.Step(in)

	// The toggle, the sprite swap, the flicker attach, and a live sample
	// all land within the same tick.
	if len(res.Toggles) != 1 || res.Toggles[0].PropID != "fireplace" || res.Toggles[0].State != "on" {
		t.Fatalf("Expected a fireplace on-toggle, got %+v", res.Toggles)
	}
	if fireplace.Sprite.Sheet.Name != "fire-on" {
		t.Errorf("Sprite should already show the on sheet, got %q", fireplace.Sprite.Sheet.Name)
	}
	if fireplace.Flicker == nil {
		t.Fatal("Flicker should be attached within the same tick")
	}
	if fireplace.Light.Intensity <= 0 {
		t.Error("Light should already be sampled this tick")
	}
}

func TestSceneInteractWithoutTargetIsSilent(t *testing.T) {
	sc, pl, _, _ := buildTestScene()
	sc.Reset(testConfig())

	// The player stands in the middle, away from every hitbox.
	pl.Prop.Pos = core.Vec2{X: 48, Y: 20}
	in := core.NewInputFrame()
	in.Set(core.ActionInteract)
	res := sc.Step(in)

	if len(res.Toggles) != 0 {
		t.Errorf("Activation without proximity should emit nothing, got %+v", res.Toggles)
	}
	if res.State.Active != 0 {
		t.Errorf("No machine should be on, got %d", res.State.Active)
	}
}

func TestSceneStereoAudioStopsOnOff(t *testing.T) {
	sc, pl, _, speaker := buildTestScene()
	sc.Reset(testConfig())

	pl.Prop.Pos = core.Vec2{X: 68, Y: 20}
	interact := core.NewInputFrame()
	interact.Set(core.ActionInteract)
	idle := core.NewInputFrame()

	sc.Step(interact)
	if !speaker.playing {
		t.Fatal("Stereo on should start the music loop")
	}

	// Wait out the action gesture, then toggle off.
	for i := 0; i < 15; i++ {
		sc.Step(idle)
	}
	sc.Step(interact)
	if speaker.playing {
		t.Error("Stereo off must stop the music, not just swap the sprite")
	}
}

func TestSceneScheduledEventFires(t *testing.T) {
	sc, _, _, _ := buildTestScene()

	arrived := 0
	bell := &Prop{
		ID: "bell",
		Hook: func(ev Event) []Event {
			if ev.Type == EventSantaArrived {
				arrived++
			}
			return nil
		},
		Hidden: true,
	}
	sc.AddProp(bell)
	sc.ScheduleEvent(0.5, Event{Type: EventSantaArrived})
	sc.Reset(testConfig())

	idle := core.NewInputFrame()
	for i := 0; i < 30; i++ { // one second at 30fps
		sc.Step(idle)
	}

	if arrived != 1 {
		t.Errorf("Scheduled event should fire exactly once, fired %d times", arrived)
	}
}

func TestSceneRepeatingScheduleReArms(t *testing.T) {
	sc, _, _, _ := buildTestScene()

	arrived := 0
	bell := &Prop{
		ID: "bell",
		Hook: func(ev Event) []Event {
			if ev.Type == EventSantaArrived {
				arrived++
			}
			return nil
		},
		Hidden: true,
	}
	sc.AddProp(bell)
	sc.ScheduleRepeat(0.5, 0.5, Event{Type: EventSantaArrived})
	sc.Reset(testConfig())

	idle := core.NewInputFrame()
	for i := 0; i < 70; i++ { // ~2.3 seconds at 30fps
		sc.Step(idle)
	}

	if arrived != 4 {
		t.Errorf("Repeating event should fire at 0.5s intervals, fired %d times", arrived)
	}
}

func TestSceneResetNotifiesHooks(t *testing.T) {
	sc, _, _, _ := buildTestScene()

	resets := 0
	watcher := &Prop{
		ID: "watcher",
		Hook: func(ev Event) []Event {
			if ev.Type == EventSceneReset {
				resets++
			}
			return nil
		},
		Hidden: true,
	}
	sc.AddProp(watcher)
	sc.Reset(testConfig())

	idle := core.NewInputFrame()
	sc.Step(idle)
	if resets != 1 {
		t.Fatalf("Hooks should see the reset on the first tick, saw %d", resets)
	}

	// A second reset mid-run notifies again; ticking further does not.
	sc.Step(idle)
	sc.Reset(testConfig())
	sc.Step(idle)
	sc.Step(idle)
	if resets != 2 {
		t.Errorf("Each reset notifies exactly once, saw %d", resets)
	}
}

func TestSceneHookFollowUpDeliversNextTick(t *testing.T) {
	sc, _, _, _ := buildTestScene()

	var order []string
	relay := &Prop{
		ID: "relay",
		Hook: func(ev Event) []Event {
			switch ev.Type {
			case EventSantaArrived:
				order = append(order, "arrived")
				return []Event{{Type: EventPresentsDelivered}}
			case EventPresentsDelivered:
				order = append(order, "delivered")
			}
			return nil
		},
		Hidden: true,
	}
	sc.AddProp(relay)
	sc.Reset(testConfig())

	idle := core.NewInputFrame()
	sc.Publish(Event{Type: EventSantaArrived})
	sc.Step(idle)
	if len(order) != 1 || order[0] != "arrived" {
		t.Fatalf("First drain should only see the arrival, got %v", order)
	}

	sc.Step(idle)
	if len(order) != 2 || order[1] != "delivered" {
		t.Errorf("Follow-up should deliver on the next tick, got %v", order)
	}
}

func TestScenePauseFreezesSimulation(t *testing.T) {
	sc, pl, _, _ := buildTestScene()
	sc.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := sc.Step(pause)
	if !res.State.Paused {
		t.Fatal("Pause action should pause the scene")
	}

	// Movement input does nothing while paused; the clock holds.
	x := pl.Prop.Pos.X
	walk := core.NewInputFrame()
	walk.Hold(core.ActionMoveRight)
	res = sc.Step(walk)
	if pl.Prop.Pos.X != x {
		t.Error("Player moved while paused")
	}
	if res.State.Elapsed != 0 {
		t.Errorf("Clock advanced while paused: %v", res.State.Elapsed)
	}

	// Unpause resumes
	res = sc.Step(pause)
	if res.State.Paused {
		t.Error("Second pause action should resume")
	}
}

func TestSceneResetRestoresInitialState(t *testing.T) {
	sc, pl, fireplace, speaker := buildTestScene()
	cfg := testConfig()
	sc.Reset(cfg)

	// Dirty the scene: fireplace on, stereo on, player moved.
	pl.Prop.Pos = core.Vec2{X: 22, Y: 20}
	in := core.NewInputFrame()
	in.Set(core.ActionInteract)
	sc.Step(in)
	if fireplace.Flicker == nil {
		t.Fatal("Setup: fireplace should be lit")
	}

	sc.Reset(cfg)
	if st := sc.State(); st.Elapsed != 0 || st.Active != 0 || st.Paused {
		t.Errorf("Reset state dirty: %+v", st)
	}
	if fireplace.Flicker != nil || fireplace.Light.Intensity != 0 {
		t.Error("Reset should extinguish every light")
	}
	if fireplace.Sprite.Sheet.Name != "fire-off" {
		t.Errorf("Reset should restore the off sheet, got %q", fireplace.Sprite.Sheet.Name)
	}
	if speaker.playing {
		t.Error("Reset should silence audio")
	}
	if pl.Prop.Pos.X != 48 {
		t.Errorf("Reset should restore the player start, got %v", pl.Prop.Pos.X)
	}
}

func TestSceneDeterministicRuns(t *testing.T) {
	cfg := testConfig()

	run := func() []core.SceneState {
		sc, pl, _, _ := buildTestScene()
		sc.Reset(cfg)
		pl.Prop.Pos = core.Vec2{X: 22, Y: 20}

		var states []core.SceneState
		for i := 0; i < 120; i++ {
			in := core.NewInputFrame()
			if i == 10 {
				in.Set(core.ActionInteract)
			}
			if i > 30 && i < 60 {
				in.Hold(core.ActionMoveRight)
			}
			states = append(states, sc.Step(in).State)
		}
		return states
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Tick %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSceneRenderShowsLitProp(t *testing.T) {
	sc, pl, _, _ := buildTestScene()
	sc.Reset(testConfig())

	pl.Prop.Pos = core.Vec2{X: 22, Y: 20}
	in := core.NewInputFrame()
	in.Set(core.ActionInteract)
	sc.Step(in)

	screen := core.NewScreen(100, 30)
	sc.Render(screen)

	if screen.String() == core.NewScreen(100, 30).String() {
		t.Fatal("Render should draw something")
	}

	// Cells under the lit fireplace should be brighter than the ambient-
	// dimmed default.
	lit := screen.GetCell(22, 22) // stage offset (2, 2) on a 100x30 screen
	dark := screen.GetCell(95, 5)
	litSum := lit.Fg.R + lit.Fg.G + lit.Fg.B
	darkSum := dark.Fg.R + dark.Fg.G + dark.Fg.B
	if litSum <= darkSum {
		t.Errorf("Lit area (%v) should outshine unlit area (%v)", litSum, darkSum)
	}
}

func TestSceneOnceAnimationHidesWhenDone(t *testing.T) {
	sc, _, _, _ := buildTestScene()

	sleigh := &Prop{
		ID:     "santa",
		Pos:    core.Vec2{X: 48, Y: 5},
		Sprite: &Sprite{Sheet: testSheet("sleigh", 4)},
		Cursor: NewCursor(0, 3, 10, PlayOnce),
		Hidden: true,
	}
	sleigh.Cursor.EmitFrame = 2
	sleigh.Cursor.EmitType = EventPresentsDelivered
	sc.AddProp(sleigh)

	delivered := 0
	sink := &Prop{
		ID:     "tree-presents",
		Hidden: true,
		Hook: func(ev Event) []Event {
			if ev.Type == EventPresentsDelivered {
				delivered++
			}
			return nil
		},
	}
	sc.AddProp(sink)
	sc.Reset(testConfig())

	// Launch the flyover.
	sleigh.Hidden = false
	sleigh.Animating = true

	idle := core.NewInputFrame()
	for i := 0; i < 60; i++ { // two seconds, well past the 0.4s run
		sc.Step(idle)
	}

	if delivered != 1 {
		t.Errorf("Delivery event should fire exactly once, got %d", delivered)
	}
	if !sleigh.Hidden {
		t.Error("Finished one-shot prop should hide itself")
	}
	if sleigh.Animating {
		t.Error("Finished one-shot prop should stop animating")
	}
}
