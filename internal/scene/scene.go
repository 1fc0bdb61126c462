package scene

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"

	"winterhouse/internal/core"
)

// scheduled is an event published once the scene clock passes its time. A
// positive every re-arms it on that interval instead of marking it sent.
type scheduled struct {
	first float64
	every float64
	ev    Event

	at   float64
	sent bool
}

// Scene is the diorama simulation: an arena of props, their state machines,
// the player, and the per-tick pipeline. Within one tick the order is fixed:
// movement, proximity, dispatch, state transitions, then animation and
// flicker sampling, so a transition's effects are visible the same frame.
type Scene struct {
	id    string
	title string

	cfg    core.RuntimeConfig
	dt     float64
	rng    *rand.Rand
	logger *log.Logger

	stageW  float64
	stageH  float64
	ambient float64
	help    []string

	props         []*Prop
	initialHidden map[*Prop]bool
	machines      []*Machine
	player        *Player
	playerStart   core.Vec2

	tracker  *Tracker
	bus      *Bus
	schedule []scheduled

	elapsed float64
	paused  bool
}

// New creates an empty scene. Props, machines, and the player are added by
// the scene's builder before the first Reset.
func New(id, title string, logger *log.Logger) *Scene {
	return &Scene{
		id:            id,
		title:         title,
		logger:        logger,
		initialHidden: make(map[*Prop]bool),
		tracker:       NewTracker(),
		bus:           NewBus(),
		ambient:       0.55,
		stageW:        96,
		stageH:        26,
	}
}

// ID returns the scene's registry identifier.
func (s *Scene) ID() string { return s.id }

// Title returns the scene's display name.
func (s *Scene) Title() string { return s.title }

// Logger returns the scene's logger for prop builders.
func (s *Scene) Logger() *log.Logger { return s.logger }

// SetStage sets the stage dimensions in cells.
func (s *Scene) SetStage(w, h float64) {
	s.stageW = w
	s.stageH = h
}

// StageSize returns the stage dimensions.
func (s *Scene) StageSize() (float64, float64) {
	return s.stageW, s.stageH
}

// SetAmbient sets the ambient brightness factor applied before the light
// pass, in (0, 1].
func (s *Scene) SetAmbient(a float64) {
	s.ambient = core.ClampF(a, 0.05, 1)
}

// SetHelp sets the hint lines shown in the screen corner.
func (s *Scene) SetHelp(lines ...string) {
	s.help = lines
}

// AddProp registers a prop with the arena. Draw order follows Z, then
// insertion order.
func (s *Scene) AddProp(p *Prop) {
	s.props = append(s.props, p)
	s.initialHidden[p] = p.Hidden
	sort.SliceStable(s.props, func(i, j int) bool {
		return s.props[i].Z < s.props[j].Z
	})
}

// AddMachine registers an interactable state machine.
func (s *Scene) AddMachine(m *Machine) {
	s.machines = append(s.machines, m)
}

// SetPlayer installs the character and its starting position.
func (s *Scene) SetPlayer(pl *Player, start core.Vec2) {
	s.player = pl
	s.playerStart = start
	pl.Prop.Pos = start
}

// ScheduleEvent publishes the event once the scene clock passes the given
// time in seconds.
func (s *Scene) ScheduleEvent(at float64, ev Event) {
	s.schedule = append(s.schedule, scheduled{first: at, at: at, ev: ev})
}

// ScheduleRepeat publishes the event at the given time and then again on
// every interval after it.
func (s *Scene) ScheduleRepeat(first, every float64, ev Event) {
	s.schedule = append(s.schedule, scheduled{first: first, every: every, at: first, ev: ev})
}

// Publish places an event on the bus for the next drain. Prop hooks use it
// for derived events.
func (s *Scene) Publish(ev Event) {
	s.bus.Publish(ev)
}

// Rng exposes the scene RNG to prop builders needing shuffle state.
func (s *Scene) Rng() *rand.Rand {
	return s.rng
}

// Reset initializes or restarts the scene: clock to zero, every machine to
// Off with its presentation applied, the player at its start, bus and
// relations cleared. Nothing persists across runs.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		panic(fmt.Sprintf("scene: tick rate must be positive, got %d", cfg.TickRate))
	}
	s.cfg = cfg
	s.dt = 1.0 / float64(cfg.TickRate)
	s.rng = rand.New(rand.NewSource(cfg.Seed))

	s.elapsed = 0
	s.paused = false
	s.tracker.Reset()
	s.bus.Drain()
	s.bus.Publish(Event{Type: EventSceneReset})
	for i := range s.schedule {
		s.schedule[i].at = s.schedule[i].first
		s.schedule[i].sent = false
	}

	for _, p := range s.props {
		p.Hidden = s.initialHidden[p]
		p.DetachFlicker()
		if p.Cursor != nil {
			p.Cursor.Reset()
		}
	}
	for _, m := range s.machines {
		m.ForceOff(s.rng)
	}
	if s.player != nil {
		s.player.Reset(s.playerStart)
	}
}

// Step advances the simulation by one fixed tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.elapsed += s.dt

	// Movement before proximity, so the relation reflects this tick's
	// position.
	if s.player != nil {
		s.player.Update(in, s.dt, s.stageW)
	}

	s.tracker.Update(s.interactors(), s.interactables())

	// Dispatch: an activation with no relation emits nothing.
	if in.Has(core.ActionInteract) && s.player != nil {
		target, ok := s.tracker.Target(s.player.Prop.ID)
		if s.player.Interact(target, ok) && ok {
			s.bus.Publish(Event{Type: EventInteraction, TargetID: target})
		}
	}

	for i := range s.schedule {
		sd := &s.schedule[i]
		if sd.sent || s.elapsed < sd.at {
			continue
		}
		s.bus.Publish(sd.ev)
		if sd.every > 0 {
			sd.at += sd.every
		} else {
			sd.sent = true
		}
	}

	// State transitions, with their full presentation swap, happen before
	// animation and flicker sampling for the same tick.
	var toggles []core.Toggle
	for _, ev := range s.bus.Drain() {
		for _, m := range s.machines {
			if m.Handle(ev, s.rng) {
				toggles = append(toggles, core.Toggle{PropID: m.ID(), State: m.State().String()})
			}
		}
		for _, p := range s.props {
			if p.Hook == nil {
				continue
			}
			for _, follow := range p.Hook(ev) {
				s.bus.Publish(follow)
			}
		}
	}

	s.advanceAnimations()

	for _, p := range s.props {
		p.SampleFlicker(s.elapsed)
	}

	return core.StepResult{State: s.State(), Toggles: toggles}
}

// advanceAnimations steps every animating cursor and publishes any derived
// events marked on one-shot frames.
func (s *Scene) advanceAnimations() {
	for _, p := range s.props {
		if p.Cursor == nil || !p.Animating {
			continue
		}
		if ev := p.Cursor.Advance(s.dt, s.rng); ev != nil {
			s.bus.Publish(*ev)
		}
		if p.Cursor.Mode == PlayOnce && p.Cursor.Done() {
			p.Animating = false
			p.Hidden = true
		}
	}
}

// interactors returns the tracker input for this tick; the player is the
// scene's single interactor.
func (s *Scene) interactors() []Interactor {
	if s.player == nil {
		return nil
	}
	return []Interactor{{ID: s.player.Prop.ID, Box: s.player.Box()}}
}

// interactables enumerates hitbox-bearing props in insertion order; the
// tracker's first-match rule makes this order the tie-break.
func (s *Scene) interactables() []Interactable {
	out := make([]Interactable, 0, len(s.props))
	for _, p := range s.props {
		if p.Hit == nil {
			continue
		}
		out = append(out, Interactable{ID: p.ID, Box: *p.Hit})
	}
	return out
}

// State returns the scene's observable state.
func (s *Scene) State() core.SceneState {
	target := ""
	if s.player != nil {
		target, _ = s.tracker.Target(s.player.Prop.ID)
	}
	active := 0
	for _, m := range s.machines {
		if m.State() == StateOn {
			active++
		}
	}
	return core.SceneState{
		Elapsed: s.elapsed,
		Target:  target,
		Active:  active,
		Paused:  s.paused,
	}
}

// Render draws the scene into the screen buffer: props in Z order, an
// ambient dim, the light pass, then the HUD.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	offX := core.Max(0, (dst.Width()-int(s.stageW))/2)
	offY := core.Max(0, (dst.Height()-int(s.stageH))/2)

	for _, p := range s.props {
		p.Draw(dst, offX, offY)
	}

	dst.Dim(s.ambient)
	s.lightPass(dst, offX, offY)
	s.drawHUD(dst)
}

// lightPass washes each lit prop's glow over the dimmed cells with linear
// radius falloff.
func (s *Scene) lightPass(dst *core.Screen, offX, offY int) {
	for _, p := range s.props {
		l := p.Light
		if l == nil || l.Intensity <= 0 || l.Radius <= 0 {
			continue
		}
		pos := p.LightPos()
		cx, cy := pos.X, pos.Y
		r := l.Radius
		intensity := core.ClampF(l.Intensity, 0, 1)

		minX, maxX := int(cx-r), int(cx+r)
		minY, maxY := int(cy-r), int(cy+r)
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				// Terminal cells are roughly twice as tall as wide.
				dx := float64(x) - cx
				dy := (float64(y) - cy) * 2
				d := math.Sqrt(dx*dx + dy*dy)
				if d >= r {
					continue
				}
				amount := intensity * (1 - d/r)
				dst.Tint(offX+x, offY+y, l.Color, amount*0.85)
			}
		}
	}
}

// drawHUD draws the help lines and the current interaction hint, unaffected
// by the light pass.
func (s *Scene) drawHUD(dst *core.Screen) {
	hudColor := core.RGB{R: 0.85, G: 0.85, B: 0.9}
	for i, line := range s.help {
		x := dst.Width() - len([]rune(line)) - 2
		dst.DrawText(x, 1+i, line, hudColor)
	}

	if s.player != nil {
		if target, ok := s.tracker.Target(s.player.Prop.ID); ok {
			hint := fmt.Sprintf(" %s ", target)
			dst.DrawTextCentered(dst.Height()-1, hint, hudColor)
		}
	}

	if s.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", hudColor)
	}
}
