package sim

import "testing"

var testGlyphs = map[rune]Category{
	'.': Empty,
	'#': HardwareWall,
	'+': Base,
	'M': Murphy,
	'O': Zonk,
	'I': Infotron,
	'E': Exit,
	'S': SnikSnak,
	'e': Electron,
	'R': RedUtilityDisk,
	'o': OrangeUtilityDisk,
	'Y': YellowUtilityDisk,
	'T': Terminal,
	'@': PortsAll,
	'-': PortsHorizontal,
	'|': PortsVertical,
	'r': RAMChipsBase,
}

// gridOf builds a grid from one string per row.
func gridOf(t *testing.T, rows ...string) *Grid {
	t.Helper()
	w := len(rows[0])
	cats := make([]Category, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			t.Fatalf("row %d has width %d, expected %d", y, len(row), w)
		}
		for _, r := range row {
			c, ok := testGlyphs[r]
			if !ok {
				t.Fatalf("unknown glyph %q", r)
			}
			cats = append(cats, c)
		}
	}
	return NewGrid(w, len(rows), cats)
}

// levelOf builds an active level around a grid.
func levelOf(t *testing.T, rows ...string) *Level {
	t.Helper()
	return &Level{
		Grid: gridOf(t, rows...),
		State: LevelState{
			Status:    StatusActive,
			TimeScale: 1,
			Rules:     DefaultRules(),
		},
	}
}

// press returns an input holding the given directions, the last one with
// the highest priority.
func press(dirs ...Direction) Input {
	return Input{Pressed: dirs}
}

func countAll(g *Grid) map[Category]int {
	out := make(map[Category]int)
	for _, t := range g.Cells {
		out[t.Category]++
	}
	return out
}
