// Package formats provides the level file parsers: the classic LEVELS.DAT
// binary pack and a YAML row format for hand-made levels.
package formats

import (
	"errors"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

// Parse errors.
var (
	ErrTruncated     = errors.New("formats: truncated level record")
	ErrUnknownGlyph  = errors.New("formats: unknown glyph")
	ErrRaggedRows    = errors.New("formats: rows differ in width")
	ErrMissingRows   = errors.New("formats: level has no rows")
	ErrMissingPlayer = errors.New("formats: level has no player")
)

// Level represents a parsed level ready for use.
type Level struct {
	ID          string
	Name        string
	Width       int
	Height      int
	Cells       []byte // level-file bytes, row-major
	Gravity     bool
	FrozenZonks bool
	Infotrons   int
	Metadata    map[string]string
}

// Description converts the level into the simulation's ingestion tuple.
func (l Level) Description() sim.Description {
	cells := make([]byte, len(l.Cells))
	copy(cells, l.Cells)
	return sim.Description{
		Name:              l.Name,
		Width:             l.Width,
		Height:            l.Height,
		Cells:             cells,
		GravityEnabled:    l.Gravity,
		FrozenZonks:       l.FrozenZonks,
		InfotronsRequired: l.Infotrons,
	}
}

// countInfotrons counts the infotron cells of a level.
func countInfotrons(cells []byte) int {
	n := 0
	for _, b := range cells {
		if sim.CategoryFromByte(b) == sim.Infotron {
			n++
		}
	}
	return n
}

// hasPlayer reports whether the level contains a player cell.
func hasPlayer(cells []byte) bool {
	for _, b := range cells {
		if sim.CategoryFromByte(b) == sim.Murphy {
			return true
		}
	}
	return false
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".dat"}
}
