package config

import (
	_ "embed"
)

//go:embed defaults/house.yaml
var defaultHouseYAML []byte

// DefaultHouseConfig returns the hardcoded fallback configuration, used only
// if the embedded YAML itself fails to parse.
func DefaultHouseConfig() HouseConfig {
	return HouseConfig{
		Ambient: 0.55,
		Stage:   StageConfig{Width: 96, Height: 26},
		Player:  PlayerConfig{WalkSpeed: 14, HitWidth: 6, HitHeight: 6},
		Santa:   SantaConfig{DelaySeconds: 30},
		Audio:   AudioConfig{MasterVolume: 0.8, MusicVolume: 0.6, EffectVolume: 0.9},
		Flicker: map[string]FlickerConfig{
			"fireplace": {
				Intensity: IntensityConfig{Amplitude: 0.4, Frequency: 2, Min: 0.6, Octaves: 4},
				Color:     ColorConfig{Frequency: 1, Octaves: 2, SeedOffset: 100, Temperature: 0.2},
				Palette:   []string{"#ff8c26", "#ff5a1a", "#f2a041"},
			},
			"tree": {
				Intensity: IntensityConfig{Amplitude: 0.2, Frequency: 1, Min: 0.4, Octaves: 3},
				Color:     ColorConfig{Frequency: 0.5, Octaves: 3, SeedOffset: 100, Temperature: 0.5},
				Palette:   []string{"#ffe9b0", "#ffd166", "#fff6e0"},
			},
			"attic": {
				Intensity: IntensityConfig{Amplitude: 0.2, Frequency: 2, Min: 0.35, Octaves: 4},
				Color:     ColorConfig{Frequency: 100, Octaves: 5, SeedOffset: 100, Temperature: 0.5},
				Palette:   []string{"#fff3d6", "#ffe0a3"},
			},
			"xmas-red": {
				Intensity: IntensityConfig{Amplitude: 0.1, Frequency: 2, Min: 0.12, Octaves: 2},
				Color:     ColorConfig{Frequency: 10, Octaves: 4, SeedOffset: 100, Temperature: 0.5},
				Palette:   []string{"#ff4040", "#d91e1e"},
			},
			"xmas-yellow": {
				Intensity: IntensityConfig{Amplitude: 0.1, Frequency: 2, Min: 0.12, Octaves: 2},
				Color:     ColorConfig{Frequency: 10, Octaves: 4, SeedOffset: 100, Temperature: 0.5},
				Palette:   []string{"#ffd23e", "#f0a818"},
			},
			"xmas-green": {
				Intensity: IntensityConfig{Amplitude: 0.1, Frequency: 2, Min: 0.12, Octaves: 2},
				Color:     ColorConfig{Frequency: 10, Octaves: 4, SeedOffset: 100, Temperature: 0.5},
				Palette:   []string{"#4dd162", "#1f9e3a"},
			},
		},
	}
}
