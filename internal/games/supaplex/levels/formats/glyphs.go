package formats

import "github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"

// glyphs is the character table of the YAML row format. Every category
// that can appear in level data has exactly one glyph.
var glyphs = map[rune]sim.Category{
	' ': sim.Empty,
	'.': sim.Base,
	'#': sim.HardwareWall,
	'M': sim.Murphy,
	'O': sim.Zonk,
	'I': sim.Infotron,
	'E': sim.Exit,
	'R': sim.RedUtilityDisk,
	'o': sim.OrangeUtilityDisk,
	'Y': sim.YellowUtilityDisk,
	'T': sim.Terminal,
	'S': sim.SnikSnak,
	'e': sim.Electron,
	'b': sim.Bug,
	'r': sim.RAMChipsBase,
	'[': sim.RAMChipsLeft,
	']': sim.RAMChipsRight,
	'^': sim.RAMChipsUp,
	'v': sim.RAMChipsDown,
	'@': sim.PortsAll,
	'-': sim.PortsHorizontal,
	'|': sim.PortsVertical,
	'>': sim.PortsRight,
	'<': sim.PortsLeft,
	'A': sim.PortsUp,
	'V': sim.PortsDown,
	'c': sim.HardwareCapacitor,
	'g': sim.HardwareGreenLight,
	'B': sim.HardwareBlueLight,
	'L': sim.HardwareRedLight,
	'k': sim.HardwareYellowBlack,
	'1': sim.HardwareResistorsSpecial1,
	'2': sim.HardwareResistorsSpecial2,
	'3': sim.HardwareResistorsColored,
	'4': sim.HardwareResistorsRed,
	'5': sim.HardwareResistorsYellow,
	'x': sim.None,
}

var glyphOf = func() map[sim.Category]rune {
	out := make(map[sim.Category]rune, len(glyphs))
	for r, c := range glyphs {
		out[c] = r
	}
	return out
}()

// CategoryOf returns the category a row glyph stands for.
func CategoryOf(r rune) (sim.Category, bool) {
	c, ok := glyphs[r]
	return c, ok
}

// GlyphOf returns the row glyph of a category.
func GlyphOf(c sim.Category) (rune, bool) {
	r, ok := glyphOf[c]
	return r, ok
}
