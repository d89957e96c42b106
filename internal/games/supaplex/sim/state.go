package sim

import "time"

// Status is the gameplay outcome of a level.
type Status uint8

const (
	StatusActive Status = iota
	StatusDied
	StatusFinished
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDied:
		return "died"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// MoveQueue holds the currently pressed directions, most recent first.
// The order is the priority the player system walks when several
// directions are held.
type MoveQueue struct {
	dirs []Direction
}

// Press puts d at the front of the queue. A direction already held moves
// to the front instead of appearing twice.
func (q *MoveQueue) Press(d Direction) {
	if d == DirNone {
		return
	}
	q.Release(d)
	q.dirs = append(q.dirs, DirNone)
	copy(q.dirs[1:], q.dirs)
	q.dirs[0] = d
}

// Release removes d from the queue.
func (q *MoveQueue) Release(d Direction) {
	out := q.dirs[:0]
	for _, held := range q.dirs {
		if held != d {
			out = append(out, held)
		}
	}
	q.dirs = out
}

// Directions returns a copy of the held directions in priority order.
func (q *MoveQueue) Directions() []Direction {
	out := make([]Direction, len(q.dirs))
	copy(out, q.dirs)
	return out
}

// Len returns the number of held directions.
func (q *MoveQueue) Len() int {
	return len(q.dirs)
}

// Clear releases every direction.
func (q *MoveQueue) Clear() {
	q.dirs = q.dirs[:0]
}

// clone returns an independent copy of the queue.
func (q MoveQueue) clone() MoveQueue {
	return MoveQueue{dirs: q.Directions()}
}

// Rules are the timing constants of the simulation, in move units
// (one move = 1.0).
type Rules struct {
	MoveCost          float64 // timer added by a one-cell move
	TurnCost          float64 // timer added by an enemy quarter turn
	TurnLookahead     float64 // enemies pre-rotate once their timer drops to this
	ExplosionDuration float64 // timer added to every blast cell
	PushLean          float64 // player leans while timer > -PushLean
	PushCost          float64 // timer added by a completed push
}

// DefaultRules returns the standard Supaplex timings.
func DefaultRules() Rules {
	return Rules{
		MoveCost:          1.0,
		TurnCost:          0.25,
		TurnLookahead:     0.125,
		ExplosionDuration: 2.5,
		PushLean:          1.0,
		PushCost:          2.0,
	}
}

// EventKind identifies what happened during a tick.
type EventKind uint8

const (
	EventEat EventKind = iota
	EventSlurp
	EventPush
	EventTunnel
	EventFall
	EventExplosion
	EventTerminal
	EventDied
	EventFinished
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEat:
		return "eat"
	case EventSlurp:
		return "slurp"
	case EventPush:
		return "push"
	case EventTunnel:
		return "tunnel"
	case EventFall:
		return "fall"
	case EventExplosion:
		return "explosion"
	case EventTerminal:
		return "terminal"
	case EventDied:
		return "died"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event records a notable transition for logging and the front end.
// Systems only write events, they never read them.
type Event struct {
	Kind     EventKind
	Coord    Coord
	Category Category
}

// LevelState is the level-wide state shared by every system in a tick.
type LevelState struct {
	Name string

	Moves     MoveQueue // held directions, priority order
	Alternate bool      // alternate action held (slurp instead of eat)

	Status            Status
	InfotronsRequired int
	RedDisks          int

	GravityEnabled bool
	FrozenZonks    bool

	Camera    FCoord // centre of the player's interpolated cell
	HasCamera bool

	TimeScale    float64
	Delta        float64       // timer units elapsed this tick
	TickDuration time.Duration // wall time of the last scan
	Tick         uint64

	Rules Rules

	events []Event
}

// emit appends an event for the current tick.
func (s *LevelState) emit(kind EventKind, c Coord, cat Category) {
	s.events = append(s.events, Event{Kind: kind, Coord: c, Category: cat})
}

// setStatus moves the level into a terminal status. The first terminal
// status sticks.
func (s *LevelState) setStatus(st Status, c Coord) {
	if s.Status != StatusActive {
		return
	}
	s.Status = st
	switch st {
	case StatusDied:
		s.emit(EventDied, c, Murphy)
	case StatusFinished:
		s.emit(EventFinished, c, Exit)
	}
}

// carry returns the leftover of an idle timer that a new action may start
// from. Leftover is bounded to one tick of elapsed time, so a tile whose
// timer kept running while it waited cannot start an action that is already
// finished and move twice in one scan.
func (s *LevelState) carry(t float64) float64 {
	if t < -s.Delta {
		return -s.Delta
	}
	return t
}

// clone returns an independent copy of the state.
func (s LevelState) clone() LevelState {
	out := s
	out.Moves = s.Moves.clone()
	out.events = nil
	return out
}
