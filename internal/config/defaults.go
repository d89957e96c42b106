package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

//go:embed defaults/supaplex.yaml
var defaultSupaplexYAML []byte

// DefaultSupaplexConfig returns the default Supaplex configuration.
func DefaultSupaplexConfig() SupaplexConfig {
	rules := sim.DefaultRules()
	return SupaplexConfig{
		Simulation: SimulationConfig{
			TickRate: 60,
			Speed:    8.0,
		},
		Rules: RulesConfig{
			MoveCost:          rules.MoveCost,
			TurnCost:          rules.TurnCost,
			TurnLookahead:     rules.TurnLookahead,
			ExplosionDuration: rules.ExplosionDuration,
			PushLean:          rules.PushLean,
			PushCost:          rules.PushCost,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Storage: StorageConfig{
			DSN: "~/.supaplex/results.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleMinutes: 30,
		},
	}
}
