package formats

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string            `yaml:"id" json:"id" jsonschema:"title=Level id,description=Unique identifier used to order and select levels,minLength=1,required"`
	Name        string            `yaml:"name" json:"name" jsonschema:"title=Name,description=Title shown in the level picker"`
	Gravity     bool              `yaml:"gravity,omitempty" json:"gravity,omitempty" jsonschema:"description=Player falls into empty cells below when idle"`
	FrozenZonks bool              `yaml:"frozen_zonks,omitempty" json:"frozen_zonks,omitempty" jsonschema:"description=Zonks never fall or roll"`
	Infotrons   *int              `yaml:"infotrons,omitempty" json:"infotrons,omitempty" jsonschema:"minimum=0,description=Infotrons needed to open the exit; counted from the rows when absent"`
	Rows        []string          `yaml:"rows" json:"rows" jsonschema:"title=Rows,description=One string per grid row using the glyph table,minItems=1,required"`
	Metadata    map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl.Level()
}

// Level converts the YAML document into a parsed level.
func (yl YAMLLevel) Level() (Level, error) {
	if len(yl.Rows) == 0 {
		return Level{}, ErrMissingRows
	}

	width := utf8.RuneCountInString(yl.Rows[0])
	cells := make([]byte, 0, width*len(yl.Rows))
	for y, row := range yl.Rows {
		if n := utf8.RuneCountInString(row); n != width {
			return Level{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedRows, y, n, width)
		}
		for x, r := range []rune(row) {
			cat, ok := CategoryOf(r)
			if !ok {
				return Level{}, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownGlyph, r, x, y)
			}
			b, _ := sim.ByteFromCategory(cat)
			cells = append(cells, b)
		}
	}
	if !hasPlayer(cells) {
		return Level{}, ErrMissingPlayer
	}

	infotrons := countInfotrons(cells)
	if yl.Infotrons != nil {
		infotrons = *yl.Infotrons
	}

	return Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Width:       width,
		Height:      len(yl.Rows),
		Cells:       cells,
		Gravity:     yl.Gravity,
		FrozenZonks: yl.FrozenZonks,
		Infotrons:   infotrons,
		Metadata:    yl.Metadata,
	}, nil
}

// ToYAML renders a parsed level back into the YAML row format.
func ToYAML(l Level) (YAMLLevel, error) {
	rows := make([]string, l.Height)
	for y := 0; y < l.Height; y++ {
		row := make([]rune, l.Width)
		for x := 0; x < l.Width; x++ {
			cat := sim.CategoryFromByte(l.Cells[y*l.Width+x])
			r, ok := GlyphOf(cat)
			if !ok {
				return YAMLLevel{}, fmt.Errorf("%w: no glyph for %v", ErrUnknownGlyph, cat)
			}
			row[x] = r
		}
		rows[y] = string(row)
	}

	infotrons := l.Infotrons
	return YAMLLevel{
		ID:          l.ID,
		Name:        l.Name,
		Gravity:     l.Gravity,
		FrozenZonks: l.FrozenZonks,
		Infotrons:   &infotrons,
		Rows:        rows,
		Metadata:    l.Metadata,
	}, nil
}
