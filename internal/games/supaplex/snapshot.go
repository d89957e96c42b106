package supaplex

import "github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateLevelEnding GameStateType = "level_ending"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StateNoLevels    GameStateType = "no_levels"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Mode    string
	Level   int // 1-indexed for display
	LevelID string
	Score   int
	State   GameStateType
	Sim     sim.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil:
		state = StateNoLevels
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.level != nil && g.level.State.Status != sim.StatusActive:
		state = StateLevelEnding
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Level: g.levelIndex + 1,
		Score: g.score,
		State: state,
	}
	if g.levelIndex < len(g.levels) {
		snap.LevelID = g.levels[g.levelIndex].ID
	}
	if g.level != nil {
		snap.Sim = g.level.Snapshot()
	}
	return snap
}
