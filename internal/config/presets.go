package config

import "fmt"

// SpeedPreset represents a named simulation speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedFixed  SpeedPreset = "fixed" // reference timing for replays and headless runs
)

// Presets lists the known presets.
func Presets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedFixed}
}

// SpeedForPreset returns the time scale for a preset.
func SpeedForPreset(preset SpeedPreset) (float64, bool) {
	switch preset {
	case SpeedSlow:
		return 5.0, true
	case SpeedNormal, SpeedFixed:
		return 8.0, true
	case SpeedFast:
		return 12.0, true
	default:
		return 0, false
	}
}

// IsFixedPreset returns true if the preset pins the reference timing.
func IsFixedPreset(preset SpeedPreset) bool {
	return preset == SpeedFixed
}

// ApplyPreset modifies the config based on a speed preset. The fixed
// preset also restores the default tick rate and rules, so runs with it
// are comparable across machines and config files.
func ApplyPreset(cfg *SupaplexConfig, preset SpeedPreset) error {
	speed, ok := SpeedForPreset(preset)
	if !ok {
		return fmt.Errorf("%w: unknown speed preset %q", ErrInvalid, preset)
	}
	cfg.Simulation.Speed = speed

	if IsFixedPreset(preset) {
		def := DefaultSupaplexConfig()
		cfg.Simulation.TickRate = def.Simulation.TickRate
		cfg.Rules = def.Rules
	}
	return nil
}
