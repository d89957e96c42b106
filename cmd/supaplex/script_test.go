package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels/formats"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript("3R 2d, .U")
	if err != nil {
		t.Fatalf("parseScript failed: %v", err)
	}

	expected := []scriptStep{
		{Dir: sim.DirRight, Moves: 3},
		{Dir: sim.DirDown, Alternate: true, Moves: 2},
		{Dir: sim.DirNone, Moves: 1},
		{Dir: sim.DirUp, Moves: 1},
	}
	if len(steps) != len(expected) {
		t.Fatalf("steps = %+v, expected %+v", steps, expected)
	}
	for i := range expected {
		if steps[i] != expected[i] {
			t.Errorf("steps[%d] = %+v, expected %+v", i, steps[i], expected[i])
		}
	}

	if steps, err := parseScript(""); err != nil || len(steps) != 0 {
		t.Errorf("parseScript(\"\") = %v, %v, expected no steps", steps, err)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{"X", "3", "R4", "0R", "2 R"} {
		t.Run(script, func(t *testing.T) {
			if _, err := parseScript(script); !errors.Is(err, ErrBadScript) {
				t.Errorf("parseScript(%q) error = %v, expected ErrBadScript", script, err)
			}
		})
	}
}

func TestTicksPerMove(t *testing.T) {
	tests := []struct {
		speed    float64
		rate     int
		expected int
	}{
		{8, 60, 8},
		{1, 4, 4},
		{4, 4, 1},
		{100, 4, 1},
	}

	for _, tt := range tests {
		opts := runOptions{Rules: sim.DefaultRules(), Speed: tt.speed, TickRate: tt.rate}
		if got := opts.ticksPerMove(); got != tt.expected {
			t.Errorf("ticksPerMove(speed %v, rate %d) = %d, expected %d", tt.speed, tt.rate, got, tt.expected)
		}
	}
}

func scriptLevel(t *testing.T, rows ...string) levels.Level {
	t.Helper()
	p, err := formats.YAMLLevel{ID: "t", Name: "Test", Rows: rows}.Level()
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	desc := p.Description()
	desc.Name = p.Name
	return levels.Level{ID: "t", Name: p.Name, Description: desc}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRunScriptFinishes(t *testing.T) {
	lvl := scriptLevel(t, "M.E")
	steps, _ := parseScript("2R")
	opts := runOptions{Rules: sim.DefaultRules(), Speed: 1, TickRate: 4, Settle: 10}

	report, err := runScript(lvl, steps, opts, quietLogger())
	if err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if report.Snapshot.Status != sim.StatusFinished {
		t.Errorf("status = %v, expected finished", report.Snapshot.Status)
	}
	if report.Events == 0 {
		t.Error("no events recorded")
	}
}

func TestRunScriptMaxTicks(t *testing.T) {
	lvl := scriptLevel(t, "M....E")
	steps, _ := parseScript("5R")
	opts := runOptions{Rules: sim.DefaultRules(), Speed: 1, TickRate: 4, Settle: 100, MaxTicks: 6}

	report, err := runScript(lvl, steps, opts, quietLogger())
	if err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if report.Snapshot.Tick != 6 {
		t.Errorf("Tick = %d, expected 6", report.Snapshot.Tick)
	}
	if report.Snapshot.Status != sim.StatusActive {
		t.Errorf("status = %v, expected active", report.Snapshot.Status)
	}
}

func TestRunScriptDeterministic(t *testing.T) {
	lvls, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	steps, _ := parseScript("3R2D.L2U4r")
	opts := runOptions{Rules: sim.DefaultRules(), Speed: 8, TickRate: 60, Settle: 120}

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			a, err := runScript(lvl, steps, opts, quietLogger())
			if err != nil {
				t.Fatalf("runScript failed: %v", err)
			}
			b, _ := runScript(lvl, steps, opts, quietLogger())
			if a != b {
				t.Errorf("runs differ:\n%+v\n%+v", a, b)
			}
		})
	}
}

func TestBuildSchema(t *testing.T) {
	data, err := json.Marshal(buildSchema())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["title"] != "Supaplex Level" {
		t.Errorf("title = %v, expected Supaplex Level", doc["title"])
	}

	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties: %s", data)
	}
	for _, name := range []string{"id", "name", "rows", "infotrons", "gravity", "frozen_zonks"} {
		if _, ok := props[name]; !ok {
			t.Errorf("schema missing property %q", name)
		}
	}

	required, _ := doc["required"].([]any)
	joined := ""
	for _, r := range required {
		joined += r.(string) + " "
	}
	if !strings.Contains(joined, "id") || !strings.Contains(joined, "rows") {
		t.Errorf("required = %v, expected id and rows", required)
	}
}

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "schema.json")
	if err := writeSchema(out, []byte("{}\n")); err != nil {
		t.Fatalf("writeSchema failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("schema file = %q, expected {}", data)
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}
