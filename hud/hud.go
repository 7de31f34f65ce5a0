package hud

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/dojo/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Snapshot is the per-frame HUD input produced by the round controller.
type Snapshot struct {
	P1Health, P1Max int
	P2Health, P2Max int
	TimerSeconds    float64
	RoundNumber     int
	Wins            [2]int
}

// Fraction returns the remaining health fraction for a slot, in [0, 1].
func (s Snapshot) Fraction(slot int) float64 {
	cur, max := s.P1Health, s.P1Max
	if slot == 1 {
		cur, max = s.P2Health, s.P2Max
	}
	if max <= 0 {
		return 0
	}
	f := float64(cur) / float64(max)
	return math.Max(0, math.Min(1, f))
}

// TimerText is the whole seconds shown on the clock. The display rounds down
// so it reads 0 only once time has actually run out.
func TimerText(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d", int(math.Floor(seconds)))
}

// BarColor picks the health bar colour band for a fraction.
func BarColor(fraction float64) color.RGBA {
	switch {
	case fraction > cfg.HUD.HealthyThreshold:
		return cfg.HUD.HealthyColor
	case fraction > cfg.HUD.WarningThreshold:
		return cfg.HUD.WarningColor
	default:
		return cfg.HUD.DangerColor
	}
}

// TrailingBar is a health bar whose trail drains toward the current value
// after a hit, so recent damage stays visible for a moment.
type TrailingBar struct {
	Value float32
	Trail float32

	tween *gween.Tween
}

func NewTrailingBar(fraction float32) *TrailingBar {
	return &TrailingBar{Value: fraction, Trail: fraction}
}

// Set moves the bar to a new fraction. Damage starts a drain tween from the
// current trail position; healing snaps the trail up with the value.
func (b *TrailingBar) Set(fraction float32) {
	if fraction == b.Value {
		return
	}
	b.Value = fraction
	if fraction >= b.Trail {
		b.Trail = fraction
		b.tween = nil
		return
	}
	b.tween = gween.New(b.Trail, fraction, cfg.HUD.TrailDurationSeconds, ease.OutQuad)
}

// Update advances the drain by dt seconds.
func (b *TrailingBar) Update(dtSeconds float32) {
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(dtSeconds)
	b.Trail = v
	if done {
		b.Trail = b.Value
		b.tween = nil
	}
}

// Draining reports whether the trail is still catching up.
func (b *TrailingBar) Draining() bool {
	return b.tween != nil
}

// Model holds the animated HUD state for both fighters.
type Model struct {
	Bars     [2]*TrailingBar
	Snapshot Snapshot
}

func NewModel() *Model {
	return &Model{Bars: [2]*TrailingBar{NewTrailingBar(1), NewTrailingBar(1)}}
}

// Update takes the latest snapshot and advances the bar animations.
func (m *Model) Update(s Snapshot, dtSeconds float32) {
	m.Snapshot = s
	for slot, bar := range m.Bars {
		bar.Set(float32(s.Fraction(slot)))
		bar.Update(dtSeconds)
	}
}
