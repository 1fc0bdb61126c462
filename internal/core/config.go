package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for flicker decorrelation
	Mute     bool  // Disable audio output
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SceneState represents the observable state of a scene.
// Returned by Scene.State() to communicate status to the platform.
type SceneState struct {
	Elapsed float64 // Seconds since the scene started
	Target  string  // Interactable currently in range of the player, if any
	Active  int     // Number of props currently switched on
	Paused  bool    // Whether the scene is paused
}

// Toggle records a single prop state change, for the interaction journal.
type Toggle struct {
	PropID string
	State  string
}

// StepResult is returned by Scene.Step() after each simulation tick.
// Contains the updated scene state and any prop toggles that occurred.
type StepResult struct {
	State   SceneState
	Toggles []Toggle
}
