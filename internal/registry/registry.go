// Package registry keeps the playable game modes.
// Mode packages register a factory from init(); the front ends create games
// by ID and probe them for the optional capabilities below.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-supaplex/internal/core"
)

// ErrUnknownGame is returned when no mode is registered under an ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a mode the front end can drive. Implementations are pure logic:
// the front end owns timing, input mapping and the terminal.
type Game interface {
	// ID names the mode in the CLI and in stored scores.
	ID() string
	// Title is shown in menus.
	Title() string

	// Reset starts the mode over with the given screen and timing.
	Reset(cfg core.RuntimeConfig)
	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws into a cleared screen.
	Render(dst *core.Screen)
	State() core.GameState
}

// ResultSource is implemented by games that produce per-level results for
// persistence. Results drains the records accumulated since the last call.
type ResultSource interface {
	Results() []core.LevelResult
}

// LevelSelector is implemented by games that can start from a chosen level.
type LevelSelector interface {
	SelectLevel(id string)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string

	SelectsLevel bool // implements LevelSelector
	Records      bool // implements ResultSource
}

// Factory creates a fresh game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	probe := f()
	_, selects := probe.(LevelSelector)
	_, records := probe.(ResultSource)
	entries[id] = entry{
		factory: f,
		info: GameInfo{
			ID:           id,
			Title:        probe.Title(),
			SelectsLevel: selects,
			Records:      records,
		},
	}
}

// List returns the registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// CreateAt returns a new game for id that starts from levelID. The level is
// ignored by games that cannot select one, and an empty levelID keeps the
// game's default.
func CreateAt(id, levelID string) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if sel, ok := g.(LevelSelector); ok && levelID != "" {
		sel.SelectLevel(levelID)
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
