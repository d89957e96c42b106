package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

// ErrBadScript is wrapped by every script parse failure.
var ErrBadScript = errors.New("invalid input script")

// scriptStep holds one direction (or nothing) for a number of moves.
type scriptStep struct {
	Dir       sim.Direction // DirNone waits
	Alternate bool
	Moves     int
}

// parseScript reads an input script. Each letter is one move: U, D, L, R
// walk, lower case snaps, and '.' waits. A count may precede a letter, so
// "3R2d." walks right three times, snaps down twice and waits one move.
// Spaces and commas are ignored.
func parseScript(s string) ([]scriptStep, error) {
	var steps []scriptStep
	count := ""

	for i, r := range s {
		switch {
		case r == ' ' || r == ',' || r == '\t' || r == '\n':
			if count != "" {
				return nil, fmt.Errorf("%w: count %s at %d has no move", ErrBadScript, count, i)
			}
			continue
		case unicode.IsDigit(r):
			count += string(r)
			continue
		}

		step := scriptStep{Moves: 1}
		switch unicode.ToUpper(r) {
		case 'U':
			step.Dir = sim.DirUp
		case 'D':
			step.Dir = sim.DirDown
		case 'L':
			step.Dir = sim.DirLeft
		case 'R':
			step.Dir = sim.DirRight
		case '.':
			step.Dir = sim.DirNone
		default:
			return nil, fmt.Errorf("%w: unknown move %q at %d", ErrBadScript, r, i)
		}
		step.Alternate = unicode.IsLower(r)

		if count != "" {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: bad count %q at %d", ErrBadScript, count, i)
			}
			step.Moves = n
			count = ""
		}
		steps = append(steps, step)
	}

	if count != "" {
		return nil, fmt.Errorf("%w: trailing count %s", ErrBadScript, count)
	}
	return steps, nil
}

// runOptions configures a headless run.
type runOptions struct {
	Rules    sim.Rules
	Speed    float64
	TickRate int
	Settle   int    // idle ticks after the script
	MaxTicks uint64 // hard stop, 0 for none
}

// runReport is the outcome of a headless run.
type runReport struct {
	Snapshot sim.Snapshot
	Events   int
}

// ticksPerMove returns how many ticks one plain move takes.
func (o runOptions) ticksPerMove() int {
	perTick := o.Speed / float64(o.TickRate)
	if perTick <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(o.Rules.MoveCost/perTick-1e-9)))
}

// runScript plays steps on a fresh copy of lvl and returns the final state.
// Status changes are logged at Info and every event at Debug.
func runScript(lvl levels.Level, steps []scriptStep, opts runOptions, logger *log.Logger) (runReport, error) {
	level, err := lvl.NewSim(sim.WithRules(opts.Rules), sim.WithTimeScale(opts.Speed))
	if err != nil {
		return runReport{}, err
	}

	clock := sim.NewClock(opts.TickRate)
	dt := clock.StepSeconds()
	report := runReport{}
	status := sim.StatusActive
	held := sim.DirNone

	step := func(in sim.Input) bool {
		res := level.Step(in, dt)
		for _, ev := range res.Events {
			report.Events++
			logger.Debug("event", "tick", res.Tick, "kind", ev.Kind, "at", ev.Coord, "category", ev.Category)
		}
		if res.Status != status {
			status = res.Status
			logger.Info("status changed", "tick", res.Tick, "status", status)
		}
		return opts.MaxTicks > 0 && res.Tick >= opts.MaxTicks
	}

	perMove := opts.ticksPerMove()
	done := false
	for _, s := range steps {
		in := sim.Input{Alternate: s.Alternate}
		if s.Dir != held {
			if held != sim.DirNone {
				in.Released = []sim.Direction{held}
			}
			if s.Dir != sim.DirNone {
				in.Pressed = []sim.Direction{s.Dir}
			}
			held = s.Dir
		}

		for i := 0; i < s.Moves*perMove && !done; i++ {
			done = step(in)
			in = sim.Input{Alternate: s.Alternate}
		}
		if done {
			break
		}
	}

	in := sim.Input{}
	if held != sim.DirNone {
		in.Released = []sim.Direction{held}
	}
	for i := 0; i < opts.Settle && !done; i++ {
		done = step(in)
		in = sim.Input{}
	}

	report.Snapshot = level.Snapshot()
	return report, nil
}
