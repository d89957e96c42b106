package supaplex

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels/formats"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
	"github.com/vovakirdan/tui-supaplex/internal/registry"
)

// testLevel builds a level from glyph rows.
func testLevel(t *testing.T, id string, rows ...string) levels.Level {
	t.Helper()
	p, err := formats.YAMLLevel{ID: id, Name: "Level " + id, Rows: rows}.Level()
	if err != nil {
		t.Fatalf("level %s: %v", id, err)
	}
	desc := p.Description()
	desc.Name = p.Name
	return levels.Level{ID: id, Name: p.Name, Description: desc}
}

// useLevels installs lvls for the duration of the test.
func useLevels(t *testing.T, lvls []levels.Level) {
	t.Helper()
	SetLevels(lvls)
	t.Cleanup(func() {
		SetLevels(nil)
		SetStartLevel("")
	})
}

// testConfig runs four ticks per second so one step is a quarter move.
func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 4, Speed: 1}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func stepN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestGameIDs(t *testing.T) {
	if id := New().ID(); id != "supaplex" {
		t.Errorf("New().ID() = %q, expected supaplex", id)
	}
	if id := NewPractice().ID(); id != "supaplex_practice" {
		t.Errorf("NewPractice().ID() = %q, expected supaplex_practice", id)
	}
	for _, id := range []string{"supaplex", "supaplex_practice"} {
		if !registry.Exists(id) {
			t.Errorf("registry.Exists(%q) = false, expected true", id)
		}
	}
}

func TestTranslateInput(t *testing.T) {
	f := frame(core.ActionLeft, core.ActionUp, core.ActionAlternate)
	f.Release(core.ActionDown)

	in := TranslateInput(f)
	if len(in.Pressed) != 2 || in.Pressed[0] != sim.DirUp || in.Pressed[1] != sim.DirLeft {
		t.Errorf("Pressed = %v, expected [Up Left]", in.Pressed)
	}
	if len(in.Released) != 1 || in.Released[0] != sim.DirDown {
		t.Errorf("Released = %v, expected [Down]", in.Released)
	}
	if !in.Alternate {
		t.Error("Alternate = false, expected true")
	}

	if in := TranslateInput(core.NewInputFrame()); len(in.Pressed) != 0 || in.Alternate {
		t.Errorf("empty frame translated to %+v", in)
	}
}

func TestCampaignAdvancesThroughLevels(t *testing.T) {
	useLevels(t, []levels.Level{
		testLevel(t, "a", "ME"),
		testLevel(t, "b", "ME"),
	})

	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionRight))
	if g.State().Score != ScoreLevelFinished {
		t.Errorf("Score = %d, expected %d", g.State().Score, ScoreLevelFinished)
	}
	results := g.Results()
	if len(results) != 1 || results[0].LevelID != "a" || results[0].Status != "finished" {
		t.Fatalf("Results() = %+v, expected one finished result for a", results)
	}
	if len(g.Results()) != 0 {
		t.Error("Results() did not drain")
	}
	if s := g.Snapshot(); s.State != StateLevelEnding {
		t.Errorf("State = %s, expected %s", s.State, StateLevelEnding)
	}

	// 1.5 seconds at 4 ticks per second is 6 ticks of ending.
	stepN(g, 5)
	s := g.Snapshot()
	if s.Level != 2 || s.LevelID != "b" || s.State != StatePlaying {
		t.Fatalf("snapshot = %+v, expected level b playing", s)
	}

	g.Step(frame(core.ActionRight))
	stepN(g, 5)
	if s := g.Snapshot(); s.State != StateWin {
		t.Errorf("State = %s, expected %s", s.State, StateWin)
	}
	if !g.State().GameOver {
		t.Error("GameOver = false after the last level")
	}
	if g.State().Score != 2*ScoreLevelFinished {
		t.Errorf("Score = %d, expected %d", g.State().Score, 2*ScoreLevelFinished)
	}
}

func TestRedDisksScoreOnFinish(t *testing.T) {
	useLevels(t, []levels.Level{testLevel(t, "a", "MRE")})

	g := New()
	g.Reset(testConfig())

	// Eating the disk takes four ticks, then the held direction reaches the exit.
	g.Step(frame(core.ActionRight))
	stepN(g, 4)

	if g.Snapshot().Sim.Status != sim.StatusFinished {
		t.Fatalf("status = %v, expected finished", g.Snapshot().Sim.Status)
	}
	expected := ScoreLevelFinished + ScoreRedDisk
	if g.State().Score != expected {
		t.Errorf("Score = %d, expected %d", g.State().Score, expected)
	}
}

func TestDeathEndsGameAndRestartKeepsLevel(t *testing.T) {
	useLevels(t, []levels.Level{
		testLevel(t, "a", "E...", "#MS#", "####"),
	})

	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionRight))
	results := g.Results()
	if len(results) != 1 || results[0].Status != "died" {
		t.Fatalf("Results() = %+v, expected one died result", results)
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0", g.State().Score)
	}

	stepN(g, 5)
	if !g.State().GameOver {
		t.Fatal("GameOver = false after death")
	}

	g.Step(frame(core.ActionRestart))
	s := g.Snapshot()
	if g.State().GameOver || s.State != StatePlaying {
		t.Errorf("after restart state = %s, expected playing", s.State)
	}
	if s.LevelID != "a" || !s.Sim.PlayerAlive || s.Sim.Tick != 0 {
		t.Errorf("after restart snapshot = %+v, expected a fresh level a", s)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	useLevels(t, []levels.Level{testLevel(t, "a", "M..E")})

	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Paused = false after pause")
	}
	before := g.Snapshot().Sim.Tick
	g.Step(frame(core.ActionRight))
	if after := g.Snapshot().Sim.Tick; after != before {
		t.Errorf("sim tick = %d while paused, expected %d", after, before)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Paused = true after second pause")
	}
}

func TestReleaseWhilePausedStopsPlayer(t *testing.T) {
	useLevels(t, []levels.Level{testLevel(t, "a", "M.....E")})

	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionRight))
	stepN(g, 2)
	g.Step(frame(core.ActionPause))

	release := core.NewInputFrame()
	release.Release(core.ActionRight)
	g.Step(release)
	if n := g.Level().State.Moves.Len(); n != 0 {
		t.Errorf("held directions while paused = %d, expected 0", n)
	}

	g.Step(frame(core.ActionPause))
	stepN(g, 12)

	if p := g.Snapshot().Sim.Player; p != sim.C(1, 0) {
		t.Errorf("player = %v, expected %v after the key was released", p, sim.C(1, 0))
	}
}

func TestHeldDirectionCarriesIntoNextLevel(t *testing.T) {
	useLevels(t, []levels.Level{
		testLevel(t, "a", "ME"),
		testLevel(t, "b", "M..."),
	})

	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionRight))
	stepN(g, 5)
	if s := g.Snapshot(); s.LevelID != "b" || s.State != StatePlaying {
		t.Fatalf("snapshot = %+v, expected level b playing", s)
	}
	dirs := g.Level().State.Moves.Directions()
	if len(dirs) != 1 || dirs[0] != sim.DirRight {
		t.Fatalf("held directions = %v, expected [Right]", dirs)
	}

	stepN(g, 8)
	if p := g.Snapshot().Sim.Player; p.X < 2 {
		t.Errorf("player = %v, expected it to keep walking right", p)
	}
}

func TestPracticeStartsAtSelectedLevel(t *testing.T) {
	useLevels(t, []levels.Level{
		testLevel(t, "a", "ME"),
		testLevel(t, "b", "ME"),
		testLevel(t, "c", "ME"),
	})
	SetStartLevel("b")

	g := NewPractice()
	g.Reset(testConfig())
	if s := g.Snapshot(); s.LevelID != "b" || s.Level != 2 {
		t.Fatalf("start = %s (%d), expected b (2)", s.LevelID, s.Level)
	}

	g.Step(frame(core.ActionRight))
	stepN(g, 5)
	s := g.Snapshot()
	if s.State != StateWin || s.LevelID != "b" {
		t.Errorf("snapshot = %+v, expected a win on b", s)
	}

	g.Step(frame(core.ActionRestart))
	if s := g.Snapshot(); s.State != StatePlaying || s.LevelID != "b" {
		t.Errorf("after restart = %+v, expected b playing", s)
	}
}

func TestNoLevels(t *testing.T) {
	useLevels(t, []levels.Level{})

	g := New()
	g.Reset(testConfig())

	if !errors.Is(g.Err(), levels.ErrNotFound) {
		t.Errorf("Err() = %v, expected ErrNotFound", g.Err())
	}
	if !g.State().GameOver {
		t.Error("GameOver = false without levels")
	}
	if s := g.Snapshot(); s.State != StateNoLevels {
		t.Errorf("State = %s, expected %s", s.State, StateNoLevels)
	}
}

func TestDeterminism(t *testing.T) {
	script := []core.Action{
		core.ActionRight, core.ActionNone, core.ActionNone, core.ActionDown,
		core.ActionNone, core.ActionRight, core.ActionNone, core.ActionUp,
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		for i := 0; i < 200; i++ {
			f := core.NewInputFrame()
			if a := script[i%len(script)]; a != core.ActionNone {
				f.Set(a)
			}
			g.Step(f)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	useLevels(t, []levels.Level{testLevel(t, "a", "#ME#")})

	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 12)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Level 1/1", "(@", "EX", "██", "Score: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused render has no PAUSED banner")
	}
}

func TestRenderTooSmall(t *testing.T) {
	useLevels(t, []levels.Level{testLevel(t, "a", "#ME#")})

	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(20, 4)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}
}

func TestSpriteFor(t *testing.T) {
	state := &sim.LevelState{Rules: sim.DefaultRules(), InfotronsRequired: 1}

	tests := []struct {
		name     string
		tile     sim.Tile
		expected string
	}{
		{"wall", sim.HardwareWall.Tile(), "██"},
		{"murphy facing left", sim.MurphyTile(0, sim.DirNone, sim.DirLeft, sim.NoInteraction), "(@"},
		{"murphy facing right", sim.MurphyTile(0, sim.DirNone, sim.DirRight, sim.NoInteraction), "@)"},
		{"murphy pushing left", sim.MurphyTile(0, sim.DirLeft, sim.DirLeft, sim.Pushing), "[@"},
		{"snik snak up", sim.SnikSnak.Tile(), "/\\"},
		{"fresh explosion", sim.BlastTile(sim.Explosion, 2.5), "##"},
		{"fading explosion", sim.BlastTile(sim.Explosion, 0.5), ".."},
		{"eaten base", sim.TransitoryTile(0.8, sim.Base), ".."},
		{"eaten empty", sim.TransitoryTile(0.8, sim.Empty), "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spriteFor(tt.tile, 0, state).text; got != tt.expected {
				t.Errorf("spriteFor(%v) = %q, expected %q", tt.tile, got, tt.expected)
			}
		})
	}

	if sp := spriteFor(sim.Exit.Tile(), 0, state); sp.color != core.ColorGreen {
		t.Errorf("closed exit color = %v, expected green", sp.color)
	}
	state.InfotronsRequired = 0
	if sp := spriteFor(sim.Exit.Tile(), 0, state); sp.color != core.ColorBrightGreen {
		t.Errorf("open exit color = %v, expected bright green", sp.color)
	}
}

func TestSelectLevelOverridesDefault(t *testing.T) {
	useLevels(t, []levels.Level{
		testLevel(t, "a", "ME"),
		testLevel(t, "b", "ME"),
		testLevel(t, "c", "ME"),
	})
	SetStartLevel("b")

	g := NewPractice()
	g.SelectLevel("c")
	g.Reset(testConfig())
	if s := g.Snapshot(); s.LevelID != "c" {
		t.Errorf("LevelID = %s, expected c", s.LevelID)
	}

	var _ registry.LevelSelector = g
	var _ registry.ResultSource = g

	lvls, err := Levels()
	if err != nil {
		t.Fatalf("Levels() failed: %v", err)
	}
	if len(lvls) != 3 {
		t.Errorf("len(Levels()) = %d, expected 3", len(lvls))
	}
}
