package tui

import "github.com/vovakirdan/tui-supaplex/internal/core"

// DefaultHoldTicks is how many ticks a key counts as held after its last
// key event.
const DefaultHoldTicks = 8

// heldKey tracks one key that is currently considered down.
type heldKey struct {
	left  int  // ticks until the key is released
	fresh bool // pressed since the last Apply
}

// HeldKeys emulates key-up events. Terminals only report key presses and
// auto-repeats, so a key counts as held until HoldTicks ticks pass without
// another event for it.
type HeldKeys struct {
	HoldTicks int

	keys map[core.Action]*heldKey
}

// NewHeldKeys returns an emulator that releases keys after holdTicks quiet
// ticks. Values below 1 use DefaultHoldTicks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldKeys{
		HoldTicks: holdTicks,
		keys:      make(map[core.Action]*heldKey),
	}
}

// Press records a key event for a direction or ActionAlternate. A repeat of
// a held key only extends its hold.
func (h *HeldKeys) Press(a core.Action) {
	if k, ok := h.keys[a]; ok {
		k.left = h.HoldTicks
		return
	}
	h.keys[a] = &heldKey{left: h.HoldTicks, fresh: true}
}

// Held reports whether a is currently considered down.
func (h *HeldKeys) Held(a core.Action) bool {
	_, ok := h.keys[a]
	return ok
}

// Apply writes one tick of key state into f and ages the held keys.
// Directions produce a pressed edge on their first tick and a released
// edge when they expire. ActionAlternate is a level: it is set on every
// tick it is held.
func (h *HeldKeys) Apply(f *core.InputFrame) {
	for _, a := range append(core.Directions(), core.ActionAlternate) {
		k, ok := h.keys[a]
		if !ok {
			continue
		}

		if k.fresh {
			k.fresh = false
			f.Set(a)
			continue
		}

		k.left--
		if k.left <= 0 {
			delete(h.keys, a)
			if a != core.ActionAlternate {
				f.Release(a)
			}
			continue
		}
		if a == core.ActionAlternate {
			f.Set(a)
		}
	}
}

// Reset forgets every held key without producing release edges.
func (h *HeldKeys) Reset() {
	for a := range h.keys {
		delete(h.keys, a)
	}
}
