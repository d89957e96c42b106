package sim

import (
	"errors"
	"fmt"
	"time"
)

// Ingestion errors.
var (
	ErrInvalidDimensions = errors.New("sim: level dimensions must be positive")
	ErrCellCount         = errors.New("sim: cell count does not match dimensions")
)

// Description is everything the core needs to build a level: the grid
// bytes plus the level metadata.
type Description struct {
	Name              string
	Width             int
	Height            int
	Cells             []byte // one category byte per cell, row-major
	GravityEnabled    bool
	FrozenZonks       bool
	InfotronsRequired int
}

// Validate checks that the cells fill the declared dimensions exactly.
func (d Description) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}
	if len(d.Cells) != d.Width*d.Height {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrCellCount, len(d.Cells), d.Width, d.Height)
	}
	return nil
}

// Input is the input collaborator's report for one tick. Pressed and
// Released carry edge events; Alternate is the held level of the
// alternate action.
type Input struct {
	Pressed   []Direction
	Released  []Direction
	Alternate bool
}

// System is the state machine of one tile category. It is called with the
// cell being visited and may mutate any cell of the grid.
type System func(c Coord, g *Grid, s *LevelState)

// systems maps each category to its state machine. Categories without an
// entry are scenery.
var systems = func() [categoryCount]System {
	var table [categoryCount]System
	table[Infotron] = gravitySystem
	table[Zonk] = gravitySystem
	table[OrangeUtilityDisk] = simpleGravitySystem
	table[SnikSnak] = wallFollower(LeftHand)
	table[Electron] = wallFollower(RightHand)
	table[Murphy] = playerSystem
	table[Transitory] = transitorySystem
	table[Explosion] = explosionSystem
	table[Explosion2] = explosionSystem
	return table
}()

// Level is a running level: the grid and the state shared by its systems.
type Level struct {
	State LevelState
	Grid  *Grid
}

// Option configures a new level.
type Option func(*Level)

// WithTimeScale sets the factor applied to elapsed time.
func WithTimeScale(scale float64) Option {
	return func(l *Level) {
		l.State.TimeScale = scale
	}
}

// WithRules overrides the timing constants.
func WithRules(r Rules) Option {
	return func(l *Level) {
		l.State.Rules = r
	}
}

// NewLevel builds a level from its description.
func NewLevel(desc Description, opts ...Option) (*Level, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	l := &Level{
		Grid: NewGridFromBytes(desc.Width, desc.Height, desc.Cells),
		State: LevelState{
			Name:              desc.Name,
			Status:            StatusActive,
			InfotronsRequired: desc.InfotronsRequired,
			GravityEnabled:    desc.GravityEnabled,
			FrozenZonks:       desc.FrozenZonks,
			TimeScale:         1,
			Rules:             DefaultRules(),
		},
	}
	for _, opt := range opts {
		opt(l)
	}

	if at, ok := l.Grid.Find(Murphy); ok {
		l.State.focus(at, l.Grid.Get(at))
	}
	return l, nil
}

// StepResult reports the outcome of one tick.
type StepResult struct {
	Tick   uint64
	Status Status
	Events []Event
}

// Step advances the level by one tick of elapsed seconds.
//
// Input is applied first, then every active tile's timer runs down, then
// the cells are visited top row first and left to right. Systems write to
// the grid in place, so a cell visited later sees the moves already made
// earlier in the same scan.
func (l *Level) Step(in Input, elapsed float64) StepResult {
	s := &l.State
	s.events = nil
	l.ApplyInput(in)

	s.Delta = elapsed * s.TimeScale
	for i := range l.Grid.Cells {
		if l.Grid.Cells[i].Category.IsActive() {
			l.Grid.Cells[i].Timer -= s.Delta
		}
	}

	start := time.Now()
	g := l.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if sys := systems[g.at(c).Category]; sys != nil {
				sys(c, g, s)
			}
		}
	}
	s.TickDuration = time.Since(start)
	s.Tick++

	return StepResult{
		Tick:   s.Tick,
		Status: s.Status,
		Events: s.events,
	}
}

// ApplyInput updates the held directions and the alternate flag without
// advancing the level. Step calls it first; callers that skip ticks, such
// as a paused game, use it so that no release is lost.
func (l *Level) ApplyInput(in Input) {
	s := &l.State
	for _, d := range in.Released {
		s.Moves.Release(d)
	}
	for _, d := range in.Pressed {
		s.Moves.Press(d)
	}
	s.Alternate = in.Alternate
}

// HeldInput returns the input that reproduces the current held directions
// and alternate flag on another level, lowest priority first.
func (l *Level) HeldInput() Input {
	dirs := l.State.Moves.Directions()
	in := Input{Alternate: l.State.Alternate}
	for i := len(dirs) - 1; i >= 0; i-- {
		in.Pressed = append(in.Pressed, dirs[i])
	}
	return in
}

// Clone returns an independent copy of the level.
func (l *Level) Clone() *Level {
	return &Level{
		State: l.State.clone(),
		Grid:  l.Grid.Clone(),
	}
}

// Murphy returns the player's cell, if the player is still on the grid.
func (l *Level) Murphy() (Coord, bool) {
	return l.Grid.Find(Murphy)
}

// Snapshot is a comparable summary of a level, used for determinism checks
// and headless output.
type Snapshot struct {
	Tick              uint64
	Status            Status
	InfotronsRequired int
	RedDisks          int
	Player            Coord
	PlayerAlive       bool
	Camera            FCoord
}

// Snapshot summarizes the level.
func (l *Level) Snapshot() Snapshot {
	at, ok := l.Murphy()
	return Snapshot{
		Tick:              l.State.Tick,
		Status:            l.State.Status,
		InfotronsRequired: l.State.InfotronsRequired,
		RedDisks:          l.State.RedDisks,
		Player:            at,
		PlayerAlive:       ok,
		Camera:            l.State.Camera,
	}
}
