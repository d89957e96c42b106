package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

// isolate points the home and working directories at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadSupaplex("")
	if err != nil {
		t.Fatalf("LoadSupaplex failed: %v", err)
	}
	if cfg != DefaultSupaplexConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSupaplexConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "simulation:\n  speed: 12\ninput:\n  hold_ticks: 3\n")

	cfg, err := LoadSupaplex(path)
	if err != nil {
		t.Fatalf("LoadSupaplex failed: %v", err)
	}
	if cfg.Simulation.Speed != 12 {
		t.Errorf("Speed = %v, expected 12", cfg.Simulation.Speed)
	}
	if cfg.Input.HoldTicks != 3 {
		t.Errorf("HoldTicks = %d, expected 3", cfg.Input.HoldTicks)
	}
	if cfg.Simulation.TickRate != 60 {
		t.Errorf("TickRate = %d, expected the default 60", cfg.Simulation.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadSupaplex(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "simulation: [")
	if _, err := LoadSupaplex(bad); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	userFile := filepath.Join(home, ".supaplex", "configs", FileName)
	writeFile(t, userFile, "simulation:\n  speed: 3\n")
	writeFile(t, filepath.Join(work, "configs", FileName), "simulation:\n  speed: 4\n")

	cfg, err := LoadSupaplex("")
	if err != nil {
		t.Fatalf("LoadSupaplex failed: %v", err)
	}
	if cfg.Simulation.Speed != 3 {
		t.Errorf("Speed = %v, expected 3 from the user config", cfg.Simulation.Speed)
	}

	if err := os.Remove(userFile); err != nil {
		t.Fatalf("remove: %v", err)
	}
	cfg, err = LoadSupaplex("")
	if err != nil {
		t.Fatalf("LoadSupaplex failed: %v", err)
	}
	if cfg.Simulation.Speed != 4 {
		t.Errorf("Speed = %v, expected 4 from ./configs", cfg.Simulation.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SupaplexConfig)
		valid  bool
	}{
		{"defaults", func(*SupaplexConfig) {}, true},
		{"zero tick rate", func(c *SupaplexConfig) { c.Simulation.TickRate = 0 }, false},
		{"negative speed", func(c *SupaplexConfig) { c.Simulation.Speed = -1 }, false},
		{"zero move cost", func(c *SupaplexConfig) { c.Rules.MoveCost = 0 }, false},
		{"zero explosion", func(c *SupaplexConfig) { c.Rules.ExplosionDuration = 0 }, false},
		{"negative lookahead", func(c *SupaplexConfig) { c.Rules.TurnLookahead = -0.1 }, false},
		{"zero push lean", func(c *SupaplexConfig) { c.Rules.PushLean = 0 }, true},
		{"no hold", func(c *SupaplexConfig) { c.Input.HoldTicks = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSupaplexConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	for _, p := range Presets() {
		t.Run(string(p), func(t *testing.T) {
			cfg := DefaultSupaplexConfig()
			cfg.Simulation.TickRate = 30
			cfg.Rules.MoveCost = 2

			if err := ApplyPreset(&cfg, p); err != nil {
				t.Fatalf("ApplyPreset failed: %v", err)
			}
			speed, _ := SpeedForPreset(p)
			if cfg.Simulation.Speed != speed {
				t.Errorf("Speed = %v, expected %v", cfg.Simulation.Speed, speed)
			}

			fixed := IsFixedPreset(p)
			if fixed && (cfg.Simulation.TickRate != 60 || cfg.Rules.MoveCost != 1) {
				t.Errorf("fixed preset kept custom timing: %+v", cfg)
			}
			if !fixed && cfg.Simulation.TickRate != 30 {
				t.Errorf("TickRate = %d, expected the custom 30", cfg.Simulation.TickRate)
			}
		})
	}

	cfg := DefaultSupaplexConfig()
	if err := ApplyPreset(&cfg, "ludicrous"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ApplyPreset(ludicrous) = %v, expected ErrInvalid", err)
	}
}

func TestSimRules(t *testing.T) {
	if got := DefaultSupaplexConfig().SimRules(); got != sim.DefaultRules() {
		t.Errorf("SimRules() = %+v, expected %+v", got, sim.DefaultRules())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSupaplexConfig()
	cfg.Levels.Start = "03"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
