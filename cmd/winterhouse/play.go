package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"winterhouse/internal/audio"
	"winterhouse/internal/config"
	"winterhouse/internal/core"
	"winterhouse/internal/platform/tui"
	"winterhouse/internal/props"
	"winterhouse/internal/registry"
	"winterhouse/internal/storage"
)

var (
	flagConfig  string
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Walk around a scene",
	Long: `Enter the diorama and wander around.

Controls:
  Left/Right, A/D - Walk
  Up/Space/E      - Use whatever you're standing next to
  P/Esc           - Pause
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Leave

Examples:
  winterhouse play
  winterhouse play house --seed 42
  winterhouse play --config ./my-house.yaml
  winterhouse play --no-audio`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound output")
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := "house"
	if len(args) > 0 {
		sceneID = args[0]
	}

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'winterhouse list' to see available scenes.")
		os.Exit(1)
	}

	// Validate an explicit config path up front so a typo fails loudly
	// instead of silently falling back to defaults.
	houseCfg, err := config.LoadHouse(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 100, 30 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Mute:     flagNoAudio,
	}

	// Wire audio before the scene is created so props grab live handles.
	mgr := audio.NewManager(!flagNoAudio,
		houseCfg.Audio.MasterVolume,
		houseCfg.Audio.MusicVolume,
		houseCfg.Audio.EffectVolume,
	)
	if audioErr := mgr.Initialize(); audioErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		// Continue silent - the scene still works
	}
	defer mgr.Close()

	props.SetConfigPath(flagConfig)
	props.SetAudio(mgr)

	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Open journal storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journal database: %v\n", err)
		// Continue without storage - the scene still works
		store = nil
	}

	runErr := tui.Run(scene, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
