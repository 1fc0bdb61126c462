package scene

import "winterhouse/internal/core"

// PlayerState is the character's enumeration. Unlike binary props, the
// player has transient states driven by movement input rather than
// proximity interaction.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerAction
	PlayerSitting
)

// String returns a human-readable state name.
func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerWalking:
		return "walking"
	case PlayerAction:
		return "action"
	case PlayerSitting:
		return "sitting"
	default:
		return "unknown"
	}
}

// Step timing: the first footstep lands half an interval after walking
// starts, then alternates left/right at the full interval.
const (
	stepInterval  = 0.45
	stepLead      = 0.225
	actionSeconds = 0.35
	idleFlipEvery = 5.0
)

// Player is the walking character. It owns its prop exclusively and is the
// scene's single interactor.
type Player struct {
	Prop  *Prop
	State PlayerState

	// Speed is walking speed in stage cells per second.
	Speed float64

	// HitW and HitH size the interactor box centered on the prop position.
	HitW, HitH float64

	// SeatID names the interactable that triggers sitting instead of a
	// plain action.
	SeatID string

	// Footstep fires a one-shot per step while walking; the argument
	// alternates starting with the left foot. Nil disables step audio.
	Footstep func(left bool)

	standSheet *Sheet
	walkSheet  *Sheet
	sitSheet   *Sheet

	stepTimer float64
	leftFoot  bool
	flipTimer float64
	actTimer  float64
}

// NewPlayer creates the character in the idle state.
func NewPlayer(prop *Prop, stand, walk, sit *Sheet, speed float64) *Player {
	prop.Sprite.Sheet = stand
	prop.Animating = false
	return &Player{
		Prop:       prop,
		Speed:      speed,
		standSheet: stand,
		walkSheet:  walk,
		sitSheet:   sit,
		leftFoot:   true,
	}
}

// Box returns the interactor bounding box at the player's current position.
func (pl *Player) Box() core.Box {
	return core.NewBox(pl.Prop.Pos.X, pl.Prop.Pos.Y, pl.HitW, pl.HitH)
}

// Update advances movement and movement-driven state for one tick.
// Interaction-driven transitions go through Interact.
func (pl *Player) Update(in core.InputFrame, dt float64, stageW float64) {
	switch pl.State {
	case PlayerSitting:
		return

	case PlayerAction:
		pl.actTimer -= dt
		if pl.actTimer <= 0 {
			pl.toIdle()
		}
		return
	}

	dir := 0.0
	if in.IsHeld(core.ActionMoveLeft) {
		dir -= 1
	}
	if in.IsHeld(core.ActionMoveRight) {
		dir += 1
	}

	if dir == 0 {
		if pl.State == PlayerWalking {
			pl.toIdle()
		}
		pl.flipTimer += dt
		if pl.flipTimer >= idleFlipEvery {
			pl.flipTimer = 0
			pl.Prop.Sprite.FlipX = !pl.Prop.Sprite.FlipX
		}
		return
	}

	if pl.State != PlayerWalking {
		pl.State = PlayerWalking
		pl.Prop.Sprite.Sheet = pl.walkSheet
		pl.Prop.Animating = true
		if pl.Prop.Cursor != nil {
			pl.Prop.Cursor.Last = pl.walkSheet.FrameCount() - 1
			pl.Prop.Cursor.Reset()
		}
		pl.stepTimer = stepLead
		pl.flipTimer = 0
	}

	pl.Prop.Sprite.FlipX = dir < 0
	w, _ := pl.Prop.FrameSize()
	half := float64(w) / 2
	pl.Prop.Pos.X = core.ClampF(pl.Prop.Pos.X+dir*pl.Speed*dt, half, stageW-half)

	pl.stepTimer -= dt
	if pl.stepTimer <= 0 {
		if pl.Footstep != nil {
			pl.Footstep(pl.leftFoot)
		}
		pl.leftFoot = !pl.leftFoot
		pl.stepTimer = stepInterval
	}
}

// Interact applies the interact input given the current proximity target.
// It returns true when an interaction event should be dispatched. Sitting
// swallows the input to stand back up; walking ignores it (interactions
// happen while stationary).
func (pl *Player) Interact(target string, hasTarget bool) bool {
	switch pl.State {
	case PlayerSitting:
		pl.toIdle()
		return false

	case PlayerIdle:
		pl.State = PlayerAction
		pl.actTimer = actionSeconds
		pl.Prop.Animating = false
		if hasTarget && target == pl.SeatID && pl.SeatID != "" {
			pl.sit()
		}
		return hasTarget

	default:
		return false
	}
}

// Reset puts the player back at the given position, idle and facing right.
func (pl *Player) Reset(pos core.Vec2) {
	pl.Prop.Pos = pos
	pl.Prop.Sprite.FlipX = false
	pl.toIdle()
	pl.leftFoot = true
	pl.flipTimer = 0
}

func (pl *Player) toIdle() {
	pl.State = PlayerIdle
	pl.Prop.Sprite.Sheet = pl.standSheet
	pl.Prop.Animating = false
	if pl.Prop.Cursor != nil {
		pl.Prop.Cursor.Last = pl.standSheet.FrameCount() - 1
		pl.Prop.Cursor.Reset()
	}
}

func (pl *Player) sit() {
	pl.State = PlayerSitting
	if pl.sitSheet != nil {
		pl.Prop.Sprite.Sheet = pl.sitSheet
	}
	pl.Prop.Animating = false
	if pl.Prop.Cursor != nil {
		pl.Prop.Cursor.Reset()
	}
}
