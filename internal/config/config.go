// Package config provides YAML-based scene configuration loading for the
// diorama platform.
package config

import (
	"fmt"

	"winterhouse/internal/core"
	"winterhouse/internal/flicker"
)

// HouseConfig contains all tunables for the winter house scene.
type HouseConfig struct {
	Ambient float64                  `yaml:"ambient"`
	Stage   StageConfig              `yaml:"stage"`
	Player  PlayerConfig             `yaml:"player"`
	Santa   SantaConfig              `yaml:"santa"`
	Audio   AudioConfig              `yaml:"audio"`
	Flicker map[string]FlickerConfig `yaml:"flicker"`
}

// StageConfig defines the stage dimensions in cells.
type StageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the walking character's parameters.
type PlayerConfig struct {
	WalkSpeed float64 `yaml:"walk_speed"`
	HitWidth  float64 `yaml:"hit_width"`
	HitHeight float64 `yaml:"hit_height"`
}

// SantaConfig defines the timing of the scheduled flyover.
type SantaConfig struct {
	DelaySeconds float64 `yaml:"delay_seconds"`
}

// AudioConfig defines mixer volumes per sound family.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	EffectVolume float64 `yaml:"effect_volume"`
}

// FlickerConfig is the YAML form of a flicker preset, keyed by prop family
// ("fireplace", "tree", "attic", "xmas-red", ...).
type FlickerConfig struct {
	Intensity IntensityConfig `yaml:"intensity"`
	Color     ColorConfig     `yaml:"color"`
	Palette   []string        `yaml:"palette"`
}

// IntensityConfig mirrors flicker.Intensity in YAML.
type IntensityConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Min       float64 `yaml:"min"`
	Octaves   int     `yaml:"octaves"`
}

// ColorConfig mirrors flicker.Color in YAML.
type ColorConfig struct {
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	SeedOffset  float64 `yaml:"seed_offset"`
	Temperature float64 `yaml:"temperature"`
}

// Params converts the YAML preset into validated flicker parameters. Seed and
// time offset are left zero; the machine draws fresh ones at each attach.
func (f FlickerConfig) Params() (flicker.Params, error) {
	p := flicker.Params{
		Intensity: flicker.Intensity{
			Amplitude: f.Intensity.Amplitude,
			Frequency: f.Intensity.Frequency,
			Min:       f.Intensity.Min,
			Octaves:   f.Intensity.Octaves,
		},
		Color: flicker.Color{
			Frequency:   f.Color.Frequency,
			Octaves:     f.Color.Octaves,
			SeedOffset:  f.Color.SeedOffset,
			Temperature: f.Color.Temperature,
		},
	}
	for _, hex := range f.Palette {
		c, err := core.ParseHex(hex)
		if err != nil {
			return flicker.Params{}, err
		}
		p.Palette = append(p.Palette, c)
	}
	if err := p.Validate(); err != nil {
		return flicker.Params{}, err
	}
	return p, nil
}

// Validate rejects numeric configuration a scene cannot run with. Invalid
// values are design bugs and fail fast at startup rather than degrading the
// simulation silently.
func (c HouseConfig) Validate() error {
	if c.Ambient <= 0 || c.Ambient > 1 {
		return fmt.Errorf("config: ambient %v outside (0, 1]", c.Ambient)
	}
	if c.Stage.Width <= 0 || c.Stage.Height <= 0 {
		return fmt.Errorf("config: stage %vx%v must be positive", c.Stage.Width, c.Stage.Height)
	}
	if c.Player.WalkSpeed <= 0 {
		return fmt.Errorf("config: walk_speed %v must be positive", c.Player.WalkSpeed)
	}
	if c.Player.HitWidth <= 0 || c.Player.HitHeight <= 0 {
		return fmt.Errorf("config: player hitbox %vx%v must be positive", c.Player.HitWidth, c.Player.HitHeight)
	}
	if c.Santa.DelaySeconds < 0 {
		return fmt.Errorf("config: santa delay_seconds %v must not be negative", c.Santa.DelaySeconds)
	}
	for name, preset := range c.Flicker {
		if _, err := preset.Params(); err != nil {
			return fmt.Errorf("config: flicker preset %q: %w", name, err)
		}
	}
	return nil
}

// Preset returns the named flicker preset as validated parameters. The caller
// is expected to have run Validate, so a missing name is a wiring error.
func (c HouseConfig) Preset(name string) (flicker.Params, error) {
	f, ok := c.Flicker[name]
	if !ok {
		return flicker.Params{}, fmt.Errorf("config: no flicker preset %q", name)
	}
	return f.Params()
}
