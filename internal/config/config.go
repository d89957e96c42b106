// Package config provides YAML-based configuration loading and speed
// presets for Supaplex.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// SupaplexConfig contains all configuration for Supaplex.
type SupaplexConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Rules      RulesConfig      `yaml:"rules"`
	Input      InputConfig      `yaml:"input"`
	Levels     LevelsConfig     `yaml:"levels"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
}

// SimulationConfig defines the fixed-step clock.
type SimulationConfig struct {
	TickRate int     `yaml:"tick_rate"` // Ticks per second
	Speed    float64 `yaml:"speed"`     // Time scale applied to every tick
}

// RulesConfig defines the timing constants of the simulation, in moves.
type RulesConfig struct {
	MoveCost          float64 `yaml:"move_cost"`
	TurnCost          float64 `yaml:"turn_cost"`
	TurnLookahead     float64 `yaml:"turn_lookahead"`
	ExplosionDuration float64 `yaml:"explosion_duration"`
	PushLean          float64 `yaml:"push_lean"`
	PushCost          float64 `yaml:"push_cost"`
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	// HoldTicks is how many ticks a direction stays held after its last
	// key event. Terminals report no key releases, so a key counts as
	// released once its auto-repeat stops for this long.
	HoldTicks int `yaml:"hold_ticks"`
}

// LevelsConfig selects the level source.
type LevelsConfig struct {
	Path  string `yaml:"path"`  // Directory of level files; empty means built-in
	Start string `yaml:"start"` // Level ID to start from
}

// StorageConfig selects the results store.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // SQLite path or postgres:// URL
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// SimRules converts the rules section into simulation rules.
func (c SupaplexConfig) SimRules() sim.Rules {
	return sim.Rules{
		MoveCost:          c.Rules.MoveCost,
		TurnCost:          c.Rules.TurnCost,
		TurnLookahead:     c.Rules.TurnLookahead,
		ExplosionDuration: c.Rules.ExplosionDuration,
		PushLean:          c.Rules.PushLean,
		PushCost:          c.Rules.PushCost,
	}
}

// Validate rejects values the simulation cannot run with.
func (c SupaplexConfig) Validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("%w: simulation.tick_rate must be positive, got %d", ErrInvalid, c.Simulation.TickRate)
	}
	if c.Simulation.Speed <= 0 {
		return fmt.Errorf("%w: simulation.speed must be positive, got %v", ErrInvalid, c.Simulation.Speed)
	}

	costs := []struct {
		name  string
		value float64
	}{
		{"rules.move_cost", c.Rules.MoveCost},
		{"rules.turn_cost", c.Rules.TurnCost},
		{"rules.explosion_duration", c.Rules.ExplosionDuration},
		{"rules.push_cost", c.Rules.PushCost},
	}
	for _, cost := range costs {
		if cost.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, cost.name, cost.value)
		}
	}
	if c.Rules.TurnLookahead < 0 || c.Rules.PushLean < 0 {
		return fmt.Errorf("%w: rules.turn_lookahead and rules.push_lean must not be negative", ErrInvalid)
	}
	if c.Input.HoldTicks < 1 {
		return fmt.Errorf("%w: input.hold_ticks must be at least 1, got %d", ErrInvalid, c.Input.HoldTicks)
	}
	return nil
}
