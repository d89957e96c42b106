package sim

import "fmt"

// PhysicalState classifies how the player and blasts treat a tile.
// It is derived from the category but stored on the tile, since physics
// changes it transiently (a falling zonk is Dangerous until it settles).
type PhysicalState uint8

const (
	Eatable PhysicalState = iota
	Moveable
	Dangerous
	Tunnelable
	Destructible
	Indestructible
)

// String returns the name of the state.
func (s PhysicalState) String() string {
	switch s {
	case Eatable:
		return "Eatable"
	case Moveable:
		return "Moveable"
	case Dangerous:
		return "Dangerous"
	case Tunnelable:
		return "Tunnelable"
	case Destructible:
		return "Destructible"
	case Indestructible:
		return "Indestructible"
	default:
		return "Unknown"
	}
}

// InteractionKind selects the animation a tile plays. Gameplay never reads it
// except for the Pushing check on falling objects.
type InteractionKind uint8

const (
	InteractNone InteractionKind = iota
	InteractEating
	InteractPushing
	InteractSlurping
	InteractTunneling
	InteractMoving
	InteractRotating
)

// Interaction is the animation phase of a tile. Category carries the eaten
// category for Eating and the port kind for Tunneling.
type Interaction struct {
	Kind     InteractionKind
	Category Category
}

// NoInteraction is the idle interaction.
var NoInteraction = Interaction{}

// Eating returns the interaction for consuming a tile of category c.
func Eating(c Category) Interaction {
	return Interaction{Kind: InteractEating, Category: c}
}

// Tunneling returns the interaction for passing through port p.
func Tunneling(p Category) Interaction {
	return Interaction{Kind: InteractTunneling, Category: p}
}

// Simple interactions without payload.
var (
	Pushing  = Interaction{Kind: InteractPushing}
	Slurping = Interaction{Kind: InteractSlurping}
	Moving   = Interaction{Kind: InteractMoving}
	Rotating = Interaction{Kind: InteractRotating}
)

// String returns a readable form of the interaction.
func (i Interaction) String() string {
	switch i.Kind {
	case InteractNone:
		return "None"
	case InteractEating:
		return fmt.Sprintf("Eating(%s)", i.Category)
	case InteractPushing:
		return "Pushing"
	case InteractSlurping:
		return "Slurping"
	case InteractTunneling:
		return fmt.Sprintf("Tunneling(%s)", i.Category)
	case InteractMoving:
		return "Moving"
	case InteractRotating:
		return "Rotating"
	default:
		return "Unknown"
	}
}

// Tile is the full state of one grid cell.
//
// Timer is the update component and serves two roles. As a gate, a system
// may only act on the tile while Timer <= 0; a positive value means the tile
// is still animating its previous action. As a clock, the remaining fraction
// of a move drives sub-cell interpolation (see FCoord.OffsetTime). Timers
// keep counting below zero while a tile idles; the leftover is carried into
// the next action so motion stays frame-rate independent.
type Tile struct {
	Category    Category
	State       PhysicalState
	Facing      Direction
	PriorFacing Direction
	Interaction Interaction
	Timer       float64
}

// BorderTile is what reads outside the grid return.
var BorderTile = Tile{
	Category:    None,
	State:       Indestructible,
	PriorFacing: DirLeft,
}

// Busy reports whether the tile is still animating and must be skipped.
func (t Tile) Busy() bool {
	return t.Timer > 0
}

// String returns a compact description for test failures and debugging.
func (t Tile) String() string {
	return fmt.Sprintf("%s[%s %s/%s %s %.3f]",
		t.Category, t.State, t.Facing, t.PriorFacing, t.Interaction, t.Timer)
}

// Tile returns the resting tile of a category as it appears in fresh
// level data.
func (c Category) Tile() Tile {
	t := Tile{Category: c, State: Indestructible, PriorFacing: DirLeft}

	switch {
	case c == Base, c == Bug, c == Infotron, c == RedUtilityDisk, c == Empty:
		t.State = Eatable
	case c == Electron, c == SnikSnak:
		t.State = Dangerous
		t.Facing = DirUp
		t.PriorFacing = DirUp
	case c == Murphy, c == Terminal, c == Exit, c == Transitory, c.IsRAMChip():
		t.State = Destructible
	case c.IsPort():
		t.State = Tunnelable
	case c == OrangeUtilityDisk, c == YellowUtilityDisk, c == Zonk:
		t.State = Moveable
	case c == Explosion, c == Explosion2:
		t.State = Dangerous
	}
	return t
}

// TransitoryTile is the placeholder left in a vacated cell. It blocks the
// cell for the rest of the move; eaten records what used to be there for
// the renderer.
func TransitoryTile(timer float64, eaten Category) Tile {
	return Tile{
		Category:    Transitory,
		State:       Destructible,
		PriorFacing: DirLeft,
		Interaction: Eating(eaten),
		Timer:       timer,
	}
}

// Moving returns a copy of t travelling in direction facing.
func (t Tile) Moving(timer float64, facing Direction) Tile {
	return t.WithMotion(timer, facing, t.State)
}

// WithMotion returns a copy of t travelling in direction facing with a new
// physical state. PriorFacing resets to the default lateral facing.
func (t Tile) WithMotion(timer float64, facing Direction, state PhysicalState) Tile {
	return Tile{
		Category:    t.Category,
		State:       state,
		Facing:      facing,
		PriorFacing: DirLeft,
		Interaction: t.Interaction,
		Timer:       timer,
	}
}

// MurphyTile builds a player tile. facing is the direction of the current
// action, lateral the left/right orientation kept across vertical moves.
func MurphyTile(timer float64, facing, lateral Direction, in Interaction) Tile {
	return Tile{
		Category:    Murphy,
		State:       Destructible,
		Facing:      facing,
		PriorFacing: lateral,
		Interaction: in,
		Timer:       timer,
	}
}

// BlastTile builds a primary (Explosion) or secondary (Explosion2) blast cell.
func BlastTile(c Category, timer float64) Tile {
	return Tile{
		Category: c,
		State:    Dangerous,
		Timer:    timer,
	}
}
