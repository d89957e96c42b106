// Package supaplex runs Supaplex levels as a playable game mode.
// The simulation lives in the sim package; this package sequences levels,
// translates platform input and draws the grid.
package supaplex

import (
	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
	"github.com/vovakirdan/tui-supaplex/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // play the level list in order
	ModePractice Mode = "practice" // replay a single level
)

// Scoring.
const (
	ScoreLevelFinished = 1000
	ScoreRedDisk       = 100
)

// DefaultSpeed is the time scale used when the runtime config sets none:
// a plain move takes 1/8 of a second.
const DefaultSpeed = 8.0

// endDelay is how long, in seconds, the level keeps animating after the
// player died or finished before the game moves on.
const endDelay = 1.5

// Package-level configuration applied on the next Reset.
var (
	configuredLevels []levels.Level
	configuredRules  = sim.DefaultRules()
	startLevelID     string
)

// SetLevels replaces the level list. A nil list means the built-in levels.
func SetLevels(lvls []levels.Level) {
	configuredLevels = lvls
}

// SetRules sets the timing constants for new levels.
func SetRules(r sim.Rules) {
	configuredRules = r
}

// SetStartLevel selects the level new games start from. An empty ID starts
// from the first level. SelectLevel overrides it per game.
func SetStartLevel(id string) {
	startLevelID = id
}

// Levels returns the configured level list, or the built-in levels when
// none was set.
func Levels() ([]levels.Level, error) {
	if configuredLevels != nil {
		return configuredLevels, nil
	}
	return levels.Builtin()
}

// Game implements the Supaplex game.
type Game struct {
	mode   Mode
	levels []levels.Level
	rules  sim.Rules

	startID    string
	levelIndex int
	level      *sim.Level
	initial    *sim.Level // pristine copy for restarts

	stepSeconds float64
	speed       float64
	tickRate    int

	tick       uint64
	score      int
	endTicks   int
	lastStatus sim.Status
	lastEvents []sim.Event
	results    []core.LevelResult

	screenW int
	screenH int

	paused   bool
	gameOver bool
	won      bool
	loadErr  error
}

func init() {
	registry.Register("supaplex", func() registry.Game {
		return New()
	})
	registry.Register("supaplex_practice", func() registry.Game {
		return NewPractice()
	})
}

// New creates a campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewPractice creates a practice mode game.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "supaplex_practice"
	}
	return "supaplex"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Supaplex (Practice)"
	}
	return "Supaplex"
}

// Reset initializes or restarts the game from the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.speed = cfg.Speed
	if g.speed <= 0 {
		g.speed = DefaultSpeed
	}
	g.stepSeconds = 1 / float64(g.tickRate)

	g.tick = 0
	g.score = 0
	g.paused = false
	g.gameOver = false
	g.won = false
	g.results = nil
	g.loadErr = nil
	g.rules = configuredRules

	g.levels, g.loadErr = Levels()
	if g.loadErr == nil && len(g.levels) == 0 {
		g.loadErr = levels.ErrNotFound
	}
	if g.loadErr != nil {
		g.gameOver = true
		return
	}

	g.levelIndex = 0
	start := g.startID
	if start == "" {
		start = startLevelID
	}
	if start != "" {
		if i := levels.Index(g.levels, start); i >= 0 {
			g.levelIndex = i
		}
	}

	g.loadLevel()
}

// SelectLevel sets the level this game starts from on the next Reset.
func (g *Game) SelectLevel(id string) {
	g.startID = id
}

// loadLevel builds the simulation for the current level index.
func (g *Game) loadLevel() {
	if g.levelIndex >= len(g.levels) {
		g.won = true
		return
	}

	lvl, err := g.levels[g.levelIndex].NewSim(
		sim.WithRules(g.rules),
		sim.WithTimeScale(g.speed),
	)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}

	g.initial = lvl.Clone()
	g.level = lvl
	g.endTicks = 0
	g.lastStatus = sim.StatusActive
	g.lastEvents = nil
}

// restartLevel puts the current level back to its initial state.
func (g *Game) restartLevel() {
	if g.initial == nil {
		return
	}
	g.level = g.initial.Clone()
	g.endTicks = 0
	g.lastStatus = sim.StatusActive
	g.lastEvents = nil
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.loadErr == nil {
		if g.won {
			g.Reset(core.RuntimeConfig{
				ScreenW:  g.screenW,
				ScreenH:  g.screenH,
				TickRate: g.tickRate,
				Speed:    g.speed,
			})
		} else {
			g.restartLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.level == nil || g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		// Keys pressed or released during the pause still count.
		g.level.ApplyInput(TranslateInput(in))
		return core.StepResult{State: g.State()}
	}

	res := g.level.Step(TranslateInput(in), g.stepSeconds)
	g.lastEvents = res.Events

	if res.Status != g.lastStatus {
		g.lastStatus = res.Status
		g.recordResult(res.Status)
	}

	if res.Status != sim.StatusActive {
		g.endTicks++
		if float64(g.endTicks) >= endDelay*float64(g.tickRate) {
			g.endLevel(res.Status)
		}
	}

	return core.StepResult{State: g.State()}
}

// recordResult scores a level that just ended and queues it for persistence.
func (g *Game) recordResult(st sim.Status) {
	if st == sim.StatusFinished {
		g.score += ScoreLevelFinished + ScoreRedDisk*g.level.State.RedDisks
	}

	def := g.levels[g.levelIndex]
	g.results = append(g.results, core.LevelResult{
		LevelID:   def.ID,
		LevelName: def.Name,
		Status:    st.String(),
		Ticks:     g.level.State.Tick,
		RedDisks:  g.level.State.RedDisks,
	})
}

// endLevel moves on once the end animation has played.
func (g *Game) endLevel(st sim.Status) {
	switch {
	case st == sim.StatusDied:
		g.gameOver = true
	case g.mode == ModePractice:
		g.won = true
	default:
		// Keys still held carry over into the next level.
		held := g.level.HeldInput()
		g.levelIndex++
		g.loadLevel()
		if !g.won && !g.gameOver {
			g.level.ApplyInput(held)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Results drains the level results recorded since the last call.
func (g *Game) Results() []core.LevelResult {
	out := g.results
	g.results = nil
	return out
}

// Level returns the running simulation, or nil when no level is loaded.
func (g *Game) Level() *sim.Level {
	return g.level
}

// Events returns the simulation events of the last tick.
func (g *Game) Events() []sim.Event {
	return g.lastEvents
}

// Err returns the error that prevented the levels from loading, if any.
func (g *Game) Err() error {
	return g.loadErr
}
