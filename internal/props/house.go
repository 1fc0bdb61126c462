// Package props assembles the winter house diorama: the furniture, the
// lights, the flyover, and the walking character, wired onto a scene.
package props

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"winterhouse/internal/audio"
	"winterhouse/internal/config"
	"winterhouse/internal/core"
	"winterhouse/internal/registry"
	"winterhouse/internal/scene"
)

var (
	configPath string
	audioMgr   = audio.NewManager(false, 0, 0, 0)
	logger     = log.NewWithOptions(os.Stderr, log.Options{Prefix: "props"})
)

// SetConfigPath sets the custom config path used when the scene is created.
func SetConfigPath(path string) {
	configPath = path
}

// SetAudio installs the audio manager the scene's props play through.
// Without it the scene runs silent.
func SetAudio(m *audio.Manager) {
	if m != nil {
		audioMgr = m
	}
}

// NewHouse creates the winter house scene from the configured config path.
// Configuration problems in fallback locations degrade to the embedded
// default; an explicit bad path has already failed in the CLI layer.
func NewHouse() *scene.Scene {
	cfg, err := config.LoadHouse(configPath)
	if err != nil {
		logger.Error("falling back to default config", "err", err)
		cfg = config.DefaultHouseConfig()
	}

	sc, err := BuildHouse(cfg)
	if err != nil {
		// Presets were validated at load; reaching this is a wiring bug.
		panic(fmt.Sprintf("props: cannot build house scene: %v", err))
	}
	return sc
}

// BuildHouse assembles the scene from a validated configuration.
func BuildHouse(cfg config.HouseConfig) (*scene.Scene, error) {
	sc := scene.New("house", "Winter House", logger)
	sc.SetStage(cfg.Stage.Width, cfg.Stage.Height)
	sc.SetAmbient(cfg.Ambient)
	sc.SetHelp("←/→ walk", "↑ use", "p pause", "q quit")

	addShell(sc, cfg)
	if err := addFireplace(sc, cfg); err != nil {
		return nil, err
	}
	if err := addTree(sc, cfg); err != nil {
		return nil, err
	}
	addStereo(sc)
	addChair(sc)
	if err := addLights(sc, cfg); err != nil {
		return nil, err
	}
	addSanta(sc, cfg)
	addPlayer(sc, cfg)

	return sc, nil
}

// addShell places the static backdrop: the house walls and the snow line.
func addShell(sc *scene.Scene, cfg config.HouseConfig) {
	w, h := sc.StageSize()

	sc.AddProp(&scene.Prop{
		ID:     "house",
		Pos:    core.Vec2{X: w / 2, Y: h/2 + 1},
		Z:      0,
		Sprite: &scene.Sprite{Sheet: houseSheet()},
	})
	sc.AddProp(&scene.Prop{
		ID:     "snow",
		Pos:    core.Vec2{X: w / 2, Y: h - 1},
		Z:      0,
		Sprite: &scene.Sprite{Sheet: snowSheet()},
	})
	// Yard decoration, left of the house wall.
	sc.AddProp(&scene.Prop{
		ID:     "snowman",
		Pos:    core.Vec2{X: 8, Y: h - 3},
		Z:      0,
		Sprite: &scene.Sprite{Sheet: snowmanSheet()},
	})
}

// addPlayer places the character and hooks up footstep audio.
func addPlayer(sc *scene.Scene, cfg config.HouseConfig) {
	man := &scene.Prop{
		ID:     "man",
		Z:      4,
		Sprite: &scene.Sprite{},
		Cursor: scene.NewCursor(0, 0, 8, scene.PlayLoop),
	}
	pl := scene.NewPlayer(man, manStandSheet(), manWalkSheet(), manSitSheet(), cfg.Player.WalkSpeed)
	pl.HitW = cfg.Player.HitWidth
	pl.HitH = cfg.Player.HitHeight
	pl.SeatID = "chair"
	pl.Footstep = audioMgr.PlayFootstep

	sc.AddProp(man)
	sc.SetPlayer(pl, core.Vec2{X: 34, Y: 20})
}

func init() {
	registry.Register("house", func() registry.Scene {
		return NewHouse()
	})
}
