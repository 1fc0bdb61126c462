package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"winterhouse/internal/core"
	"winterhouse/internal/registry"
	"winterhouse/internal/storage"
)

// holdGraceTicks is how many ticks a walk key stays held after its last
// press. Terminals report key repeats but never releases, so the hold decays
// unless the repeat stream refreshes it.
const holdGraceTicks = 8

// Model is the Bubble Tea model for running a diorama scene.
type Model struct {
	scene        registry.Scene
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	inputFrame   core.InputFrame
	sceneState   core.SceneState
	keyMapper    *KeyMapper
	holdTTL      map[core.Action]int
	interactions int
	quitting     bool
	sessionSaved bool
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		scene:      scene,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		holdTTL:    make(map[core.Action]int),
	}
}

// Init initializes the model and starts the scene.
func (m Model) Init() tea.Cmd {
	m.scene.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsDirectional(action):
		// Walking in one direction cancels the other.
		opposite := core.ActionMoveLeft
		if action == core.ActionMoveLeft {
			opposite = core.ActionMoveRight
		}
		m.inputFrame.Release(opposite)
		delete(m.holdTTL, opposite)

		m.inputFrame.Hold(action)
		m.holdTTL[action] = holdGraceTicks

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Decay holds that the key-repeat stream stopped refreshing.
	for action, ttl := range m.holdTTL {
		ttl--
		if ttl <= 0 {
			m.inputFrame.Release(action)
			delete(m.holdTTL, action)
			continue
		}
		m.holdTTL[action] = ttl
	}

	result := m.scene.Step(m.inputFrame)
	m.sceneState = result.State

	// Journal toggles best-effort; the scene keeps running regardless.
	for _, t := range result.Toggles {
		m.interactions++
		if m.store != nil {
			//nolint:errcheck
			m.store.RecordInteraction(m.scene.ID(), t.PropID, t.State)
		}
	}

	// Clear edge-triggered input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveSession records the visit once, on the way out.
func (m *Model) saveSession() {
	if m.sessionSaved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.RecordSession(m.scene.ID(), int(m.sceneState.Elapsed), m.interactions)
	m.sessionSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.scene.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".winterhouse", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, scene continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(scene, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
