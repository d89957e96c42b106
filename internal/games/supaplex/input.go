package supaplex

import (
	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

// directionOf maps direction actions to grid directions.
var directionOf = map[core.Action]sim.Direction{
	core.ActionUp:    sim.DirUp,
	core.ActionRight: sim.DirRight,
	core.ActionDown:  sim.DirDown,
	core.ActionLeft:  sim.DirLeft,
}

// TranslateInput converts a platform input frame into the simulation's
// input for one tick. Directions are visited in a fixed order so that
// several presses in one frame queue deterministically.
func TranslateInput(in core.InputFrame) sim.Input {
	var out sim.Input
	for _, a := range core.Directions() {
		d := directionOf[a]
		if in.WasReleased(a) {
			out.Released = append(out.Released, d)
		}
		if in.Has(a) {
			out.Pressed = append(out.Pressed, d)
		}
	}
	out.Alternate = in.Has(core.ActionAlternate)
	return out
}
