package main

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/dojo/config"
	"github.com/automoto/dojo/fonts"
	"github.com/automoto/dojo/hud"
	"github.com/automoto/dojo/round"
	"github.com/automoto/dojo/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 480
	hudBarHeight = 22
	hudMargin    = 20
)

var (
	backgroundColor = color.RGBA{22, 22, 30, 255}
	groundColor     = color.RGBA{70, 52, 40, 255}
	barBackColor    = color.RGBA{40, 40, 40, 255}
	koColor         = color.RGBA{90, 90, 90, 255}
	fighterColors   = [2]color.RGBA{{60, 120, 220, 255}, {220, 70, 60, 255}}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	width := float32(g.arena.Width)
	ground := float32(g.arena.GroundY)
	vector.FillRect(screen, 0, ground, width, float32(g.arena.Height)-ground, groundColor, false)

	for _, v := range g.frame.Fighters {
		drawFighter(screen, v)
	}
	if cfg.Debug.ShowHitboxes {
		for _, v := range g.frame.Fighters {
			strokeRect(screen, v.Hurtbox, cfg.HUD.HurtboxColor)
			if v.Hitbox != nil {
				strokeRect(screen, *v.Hitbox, cfg.HUD.HitboxColor)
			}
		}
	}

	g.drawHUD(screen)
	if g.message != "" {
		drawMessage(screen, g.message)
	}
}

// drawFighter draws a placeholder body with a marker on the facing side.
// Sprite sheets are not shipped, so the clip and frame are labelled instead.
func drawFighter(screen *ebiten.Image, v round.FighterView) {
	c := fighterColors[v.Slot%len(fighterColors)]
	if v.State == cfg.KO {
		c = koColor
	} else if v.State == cfg.Hit {
		c = cfg.White
	}
	x, y, w, h := float32(v.X), float32(v.Y), float32(v.W), float32(v.H)
	vector.FillRect(screen, x, y, w, h, c, false)

	markX := x + w - 8
	if !v.FacingRight {
		markX = x
	}
	vector.FillRect(screen, markX, y+h*0.2, 8, 8, cfg.Yellow, false)

	label := fmt.Sprintf("%s %s:%d", v.Archetype, v.Clip, v.Frame)
	text.Draw(screen, label, fonts.Small.Get(), int(x), int(y)-6, cfg.White)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, c, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	width := float32(cfg.C.Width)
	snap := g.hud.Snapshot

	for slot, bar := range g.hud.Bars {
		x := float32(hudMargin)
		if slot == 1 {
			x = width - hudMargin - hudBarWidth
		}
		drawBar(screen, x, hudMargin, bar, slot == 1)

		label := fmt.Sprintf("P%d  %s", slot+1, g.archetypes[slot])
		text.Draw(screen, label, fonts.Small.Get(), int(x), hudMargin+hudBarHeight+14, cfg.White)
	}

	// Timer box
	timeStr := hud.TimerText(snap.TimerSeconds)
	face := fonts.Bold.Get()
	vector.FillRect(screen, width/2-30, 8, 60, 32, color.RGBA{0, 0, 0, 180}, false)
	drawCentered(screen, timeStr, face, int(width/2), 32, cfg.White)

	if snap.RoundNumber > 0 {
		info := fmt.Sprintf("Round %d   %d - %d", snap.RoundNumber, snap.Wins[0], snap.Wins[1])
		drawCentered(screen, info, fonts.Small.Get(), int(width/2), 56, cfg.White)
	}
}

// drawBar draws a health bar with its trail behind it. A mirrored bar is
// anchored to its right end.
func drawBar(screen *ebiten.Image, x, y float32, bar *hud.TrailingBar, mirrored bool) {
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, barBackColor, false)

	segment := func(fraction float32, c color.Color) {
		w := hudBarWidth * fraction
		left := x
		if mirrored {
			left = x + hudBarWidth - w
		}
		vector.FillRect(screen, left, y, w, hudBarHeight, c, false)
	}
	segment(bar.Trail, cfg.HUD.TrailColor)
	segment(bar.Value, hud.BarColor(float64(bar.Value)))
}

func drawMessage(screen *ebiten.Image, msg string) {
	face := fonts.Title.Get()
	lines := strings.Split(msg, "\n")
	lineHeight := face.Metrics().Height.Ceil()
	y := cfg.C.Height/2 - lineHeight*(len(lines)-1)/2

	vector.FillRect(screen, 0, float32(y-lineHeight), float32(cfg.C.Width), float32(lineHeight*(len(lines)+1)), cfg.BlackOverlay, false)
	for i, line := range lines {
		drawCentered(screen, line, face, cfg.C.Width/2, y+i*lineHeight, cfg.Yellow)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, cx-w/2, y, c)
}
