// Package input turns device state into per-tick fighter intents. Nothing in
// here knows about keyboards; the host feeds a Buffer with logical actions.
package input

import cfg "github.com/automoto/dojo/config"

// Port is the per-player view of logical actions the simulation reads.
type Port interface {
	// IsHeld is level-triggered.
	IsHeld(action cfg.ActionID) bool
	// WasPressedThisTick is edge-triggered and stays true until
	// ClearEdgeTriggers.
	WasPressedThisTick(action cfg.ActionID) bool
	// ClearEdgeTriggers must be called once after each tick.
	ClearEdgeTriggers()
}

// Buffer is a Port fed by press and release events.
type Buffer struct {
	held    [cfg.ActionCount]bool
	pressed [cfg.ActionCount]bool
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func valid(a cfg.ActionID) bool {
	return a > cfg.ActionNone && a < cfg.ActionCount
}

// Press marks an action held. The edge trigger fires only on the transition
// from released to held.
func (b *Buffer) Press(a cfg.ActionID) {
	if !valid(a) {
		return
	}
	if !b.held[a] {
		b.pressed[a] = true
	}
	b.held[a] = true
}

// Release marks an action no longer held. A press that was released within
// the same tick still reports WasPressedThisTick.
func (b *Buffer) Release(a cfg.ActionID) {
	if !valid(a) {
		return
	}
	b.held[a] = false
}

// Set presses or releases an action from a sampled device level.
func (b *Buffer) Set(a cfg.ActionID, down bool) {
	if down {
		b.Press(a)
	} else {
		b.Release(a)
	}
}

func (b *Buffer) IsHeld(a cfg.ActionID) bool {
	return valid(a) && b.held[a]
}

func (b *Buffer) WasPressedThisTick(a cfg.ActionID) bool {
	return valid(a) && b.pressed[a]
}

func (b *Buffer) ClearEdgeTriggers() {
	b.pressed = [cfg.ActionCount]bool{}
}

// Reset releases everything, e.g. when the window loses focus.
func (b *Buffer) Reset() {
	b.held = [cfg.ActionCount]bool{}
	b.pressed = [cfg.ActionCount]bool{}
}
