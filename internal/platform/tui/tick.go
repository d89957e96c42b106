// Package tui runs Supaplex in a terminal with Bubble Tea: the game loop,
// key handling, the level picker, the results browser and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

// maxCatchUp caps the ticks run for one timer message after a stall.
const maxCatchUp = 5

// TickMsg is the timer message that drives the simulation.
type TickMsg time.Time

// pacer turns timer messages into fixed simulation ticks. Timer messages
// arrive late or in bursts, so the number of ticks comes from real elapsed
// time and not from the message count.
type pacer struct {
	clock *sim.Clock
	last  time.Time
}

func newPacer(tickRate int) *pacer {
	return &pacer{clock: sim.NewClock(tickRate)}
}

// due returns how many ticks to run for a timer message at now, and how many
// were dropped past maxCatchUp. The first message runs one tick.
func (p *pacer) due(now time.Time) (steps, dropped int) {
	steps = 1
	if !p.last.IsZero() {
		steps = p.clock.Advance(now.Sub(p.last))
	}
	p.last = now

	if steps > maxCatchUp {
		dropped = steps - maxCatchUp
		steps = maxCatchUp
		p.clock.Reset()
	}
	return steps, dropped
}

// next schedules the following timer message.
func (p *pacer) next() tea.Cmd {
	return tea.Tick(p.clock.Interval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
