package supaplex

import (
	"fmt"

	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

const (
	cellWidth  = 2 // terminal columns per grid cell
	hudHeight  = 2
	footHeight = 1
	minViewW   = 8 // cells
	minViewH   = 5
)

// sprite is the two-column picture of one cell.
type sprite struct {
	text  string
	color core.Color
}

// staticSprites are the categories whose picture never changes.
var staticSprites = map[sim.Category]sprite{
	sim.Empty:                     {"  ", core.ColorDefault},
	sim.None:                      {"  ", core.ColorDefault},
	sim.Base:                      {"::", core.ColorGreen},
	sim.Zonk:                      {"()", core.ColorWhite},
	sim.Infotron:                  {"<>", core.ColorBrightRed},
	sim.RedUtilityDisk:            {"dd", core.ColorBrightRed},
	sim.OrangeUtilityDisk:         {"dd", core.ColorOrange},
	sim.YellowUtilityDisk:         {"dd", core.ColorBrightYellow},
	sim.Terminal:                  {"[T", core.ColorBrightBlue},
	sim.HardwareWall:              {"██", core.ColorGray},
	sim.HardwareBlueLight:         {"▓▓", core.ColorBlue},
	sim.HardwareGreenLight:        {"▓▓", core.ColorGreen},
	sim.HardwareRedLight:          {"▓▓", core.ColorRed},
	sim.HardwareYellowBlack:       {"▚▚", core.ColorYellow},
	sim.HardwareCapacitor:         {"╫╫", core.ColorCyan},
	sim.HardwareResistorsColored:  {"≡≡", core.ColorMagenta},
	sim.HardwareResistorsRed:      {"≡≡", core.ColorRed},
	sim.HardwareResistorsYellow:   {"≡≡", core.ColorYellow},
	sim.HardwareResistorsSpecial1: {"≡≡", core.ColorBrightCyan},
	sim.HardwareResistorsSpecial2: {"≡≡", core.ColorBrightMagenta},
	sim.RAMChipsBase:              {"[]", core.ColorGreen},
	sim.RAMChipsLeft:              {"[=", core.ColorGreen},
	sim.RAMChipsRight:             {"=]", core.ColorGreen},
	sim.RAMChipsUp:                {"/\\", core.ColorGreen},
	sim.RAMChipsDown:              {"\\/", core.ColorGreen},
	sim.PortsRight:                {"->", core.ColorCyan},
	sim.PortsLeft:                 {"<-", core.ColorCyan},
	sim.PortsUp:                   {"^^", core.ColorCyan},
	sim.PortsDown:                 {"vv", core.ColorCyan},
	sim.PortsHorizontal:           {"==", core.ColorCyan},
	sim.PortsVertical:             {"||", core.ColorCyan},
	sim.PortsAll:                  {"++", core.ColorCyan},
	sim.PortsRightBlue:            {"->", core.ColorBrightBlue},
	sim.PortsLeftBlue:             {"<-", core.ColorBrightBlue},
	sim.PortsUpBlue:               {"^^", core.ColorBrightBlue},
	sim.PortsDownBlue:             {"vv", core.ColorBrightBlue},
	sim.PortsHorizontalBlue:       {"==", core.ColorBrightBlue},
	sim.PortsVerticalBlue:         {"||", core.ColorBrightBlue},
	sim.PortsAllBlue:              {"++", core.ColorBrightBlue},
}

// spriteFor picks the picture of a tile. Animated categories choose a frame
// from the tile's timer, facing or the game tick.
func spriteFor(t sim.Tile, tick uint64, s *sim.LevelState) sprite {
	switch t.Category {
	case sim.Murphy:
		return murphySprite(t)
	case sim.SnikSnak:
		return sprite{snikSnakFrame(t.Facing), core.ColorBrightMagenta}
	case sim.Electron:
		if (tick/8)%2 == 0 {
			return sprite{"**", core.ColorBrightCyan}
		}
		return sprite{"++", core.ColorBrightCyan}
	case sim.Bug:
		if (tick/16)%4 == 0 {
			return sprite{"**", core.ColorBrightGreen}
		}
		return sprite{"::", core.ColorGreen}
	case sim.Exit:
		if s.InfotronsRequired <= 0 {
			return sprite{"EX", core.ColorBrightGreen}
		}
		return sprite{"EX", core.ColorGreen}
	case sim.Explosion, sim.Explosion2:
		return explosionSprite(t, s.Rules.ExplosionDuration)
	case sim.Transitory:
		if t.Interaction.Kind == sim.InteractEating && t.Interaction.Category == sim.Base && t.Timer > 0.5 {
			return sprite{"..", core.ColorGray}
		}
		return staticSprites[sim.Empty]
	}

	if sp, ok := staticSprites[t.Category]; ok {
		return sp
	}
	return sprite{"??", core.ColorBrightRed}
}

func murphySprite(t sim.Tile) sprite {
	text := "(@"
	if t.PriorFacing == sim.DirRight {
		text = "@)"
	}

	switch t.Interaction.Kind {
	case sim.InteractPushing:
		if t.Facing == sim.DirLeft {
			text = "[@"
		} else {
			text = "@]"
		}
	case sim.InteractSlurping:
		switch t.Facing {
		case sim.DirUp:
			text = "@^"
		case sim.DirDown:
			text = "@v"
		case sim.DirLeft:
			text = "<@"
		default:
			text = "@>"
		}
	case sim.InteractEating:
		if t.Busy() && t.Timer > 0.5 {
			text = "@@"
		}
	}
	return sprite{text, core.ColorBrightYellow}
}

func snikSnakFrame(d sim.Direction) string {
	switch d {
	case sim.DirUp:
		return "/\\"
	case sim.DirDown:
		return "\\/"
	case sim.DirLeft:
		return "<<"
	case sim.DirRight:
		return ">>"
	default:
		return "><"
	}
}

// explosionSprite fades the blast as its timer runs out.
func explosionSprite(t sim.Tile, duration float64) sprite {
	color := core.ColorBrightYellow
	if t.Category == sim.Explosion2 {
		color = core.ColorBrightRed
	}

	frac := 0.0
	if duration > 0 {
		frac = t.Timer / duration
	}
	switch {
	case frac > 2.0/3:
		return sprite{"##", color}
	case frac > 1.0/3:
		return sprite{"**", core.ColorOrange}
	default:
		return sprite{"..", core.ColorRed}
	}
}

// Render draws the current game state into the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderMessage(dst, "No levels", g.loadErr.Error())
		return
	}
	if g.level == nil {
		return
	}

	viewW := dst.Width() / cellWidth
	viewH := dst.Height() - hudHeight - footHeight
	if viewW < minViewW || viewH < minViewH {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst, viewW, viewH)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderGrid draws the part of the grid around the camera.
func (g *Game) renderGrid(dst *core.Screen, viewW, viewH int) {
	grid := g.level.Grid
	state := &g.level.State

	focus := sim.F(float64(grid.W)/2, float64(grid.H)/2)
	if state.HasCamera {
		focus = state.Camera
	}
	ox := core.ScrollOffset(focus.X, viewW, grid.W)
	oy := core.ScrollOffset(focus.Y, viewH, grid.H)
	marginX := (dst.Width() - viewW*cellWidth) / 2

	for row := 0; row < viewH; row++ {
		for col := 0; col < viewW; col++ {
			c := sim.C(ox+col, oy+row)
			if !grid.InBounds(c) {
				continue
			}
			sp := spriteFor(grid.Get(c), g.tick, state)
			dst.DrawTextColored(marginX+col*cellWidth, hudHeight+row, sp.text, sp.color)
		}
	}
}

// renderHUD draws the level line and the counters.
func (g *Game) renderHUD(dst *core.Screen) {
	state := &g.level.State
	name := state.Name
	if g.mode == ModePractice {
		name = "PRACTICE: " + name
	}
	left := fmt.Sprintf(" Level %d/%d  %s", core.Min(g.levelIndex+1, len(g.levels)), len(g.levels), name)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("Infotrons: %d  Red disks: %d  Score: %d ",
		core.Max(state.InfotronsRequired, 0), state.RedDisks, g.score)
	x := dst.Width() - len(right)
	if x < len(left)+1 {
		x = len(left) + 1
	}
	dst.DrawTextColored(x, 0, right, core.ColorBrightYellow)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderFooter(dst *core.Screen) {
	help := " arrows/wasd move  space+dir snap  p pause  r restart  q quit"
	dst.DrawTextColored(0, dst.Height()-1, help, core.ColorGray)
}

// renderOverlay draws the pause and end-of-level messages over the grid.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.won && g.mode == ModeCampaign:
		g.renderBanner(dst, "ALL LEVELS COMPLETE", fmt.Sprintf("Score %d  R to play again", g.score))
	case g.won:
		g.renderBanner(dst, "LEVEL COMPLETE", "R to play again")
	case g.gameOver:
		g.renderBanner(dst, "YOU DIED", "R to retry the level")
	case g.paused:
		g.renderBanner(dst, "PAUSED", "P to resume")
	case g.level.State.Status == sim.StatusFinished:
		g.renderBanner(dst, "LEVEL COMPLETE", "")
	}
}

// renderBanner draws a boxed message in the middle of the screen.
func (g *Game) renderBanner(dst *core.Screen, title, hint string) {
	w := core.Max(len(title), len(hint)) + 6
	h := 4
	if hint == "" {
		h = 3
	}
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextColored(r.X+(w-len(title))/2, r.Y+1, title, core.ColorBrightWhite)
	if hint != "" {
		dst.DrawTextColored(r.X+(w-len(hint))/2, r.Y+2, hint, core.ColorGray)
	}
}

// renderMessage fills the screen with a centred two-line message.
func (g *Game) renderMessage(dst *core.Screen, title, hint string) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, title)
	dst.DrawTextCentered(y, hint)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	g.renderMessage(dst, "Window too small", "Please resize terminal")
}
