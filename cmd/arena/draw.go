package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/skirmish/arena"
	"github.com/milk9111/skirmish/component"
	"golang.org/x/image/colornames"
)

const (
	barHeight = 3
	barGap    = 2
)

var (
	backdrop     = color.RGBA{R: 0x16, G: 0x18, B: 0x1d, A: 0xff}
	pickupColor  = colornames.Gold
	shotColor    = colornames.Lightyellow
	healthColor  = colornames.Crimson
	shieldColor  = colornames.Deepskyblue
	corpseColor  = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	defaultActor = colornames.Lightgrey
)

func (g *Game) drawArena(screen *ebiten.Image) {
	screen.Fill(backdrop)
	b := g.arena.Bounds()
	vector.StrokeRect(screen, float32(b.L), float32(b.B), float32(b.R-b.L), float32(b.T-b.B), 2, colornames.Dimgray, false)

	for _, p := range g.arena.Pickups() {
		var c color.Color = pickupColor
		if p.Spec.Color != nil && p.Spec.Color.Color != nil {
			c = p.Spec.Color.Color
		}
		r := float32(g.cfg.PickupRadius / 2)
		vector.FillRect(screen, float32(p.Pos.X)-r, float32(p.Pos.Y)-r, r*2, r*2, c, false)
	}

	for _, e := range g.arena.Enemies() {
		g.drawCombatant(screen, e)
	}
	if p := g.arena.Player(); p != nil {
		g.drawCombatant(screen, p)
	}

	for _, s := range g.arena.Projectiles() {
		r := float32(s.Radius)
		vector.FillRect(screen, float32(s.Pos.X)-r, float32(s.Pos.Y)-r, r*2, r*2, shotColor, true)
	}
}

func (g *Game) drawCombatant(screen *ebiten.Image, c *arena.Combatant) {
	pos := c.Actor.Position()
	w, h := c.Body.Size()
	x, y := float32(pos.X-w/2), float32(pos.Y-h/2)

	if c.View.State.Dying {
		vector.StrokeRect(screen, x, y, float32(w), float32(h), 1, corpseColor, false)
		return
	}

	body := modulate(c.Spec.Tint(defaultActor), c.View.Tint)
	vector.FillRect(screen, x, y, float32(w), float32(h), body, false)

	// A negative x-scale means the sprite is mirrored to face right.
	eyeX := x + 3
	if c.View.ScaleX < 0 {
		eyeX = x + float32(w) - 3
	}
	vector.StrokeLine(screen, eyeX, y+4, eyeX, y+8, 2, colornames.Black, false)

	if c.View.LocatorVisible && c.Team == arena.TeamPlayer {
		cx := float32(pos.X)
		top := y - 2*(barHeight+barGap) - 4
		vector.StrokeLine(screen, cx-4, top-4, cx, top, 2, colornames.White, true)
		vector.StrokeLine(screen, cx+4, top-4, cx, top, 2, colornames.White, true)
	}

	g.drawBar(screen, x, y-barHeight-barGap, float32(w), c.View.Fill(component.LifePoints), healthColor)
	if c.Actor.Shield().Max > 0 {
		g.drawBar(screen, x, y-2*(barHeight+barGap), float32(w), c.View.Fill(component.Shield), shieldColor)
	}
}

func (g *Game) drawBar(screen *ebiten.Image, x, y, w float32, fill float64, c color.Color) {
	vector.FillRect(screen, x, y, w, barHeight, colornames.Black, false)
	if fill > 0 {
		vector.FillRect(screen, x, y, w*float32(fill), barHeight, c, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	line := fmt.Sprintf("Scene: %s  Kills: %d  Enemies: %d", g.arena.Scene(), g.arena.Kills(), g.arena.Alive())
	if p := g.arena.Player(); p != nil {
		hp, sh := p.Actor.Health(), p.Actor.Shield()
		line += fmt.Sprintf("\nHP %.0f/%.0f  Shield %.0f/%.0f  Speed %.0f  Rate %.1f",
			hp.Current, hp.Max, sh.Current, sh.Max, p.Actor.MovementSpeed().Current, p.Actor.AttackSpeed().Current)
	}
	if g.debug {
		line += fmt.Sprintf("\nFrames: %d  FPS: %.2f  Tasks: %d", g.frames, ebiten.ActualFPS(), g.arena.Scheduler().Len())
	}
	ebitenutil.DebugPrint(screen, line)

	if g.arena.Over() {
		b := g.arena.Bounds()
		msg := fmt.Sprintf("%s\n\npress R to fight again", g.arena.Scene())
		ebitenutil.DebugPrintAt(screen, msg, int(b.R/2)-60, int(b.T/2)-20)
	}
}

// modulate multiplies base by tint channel-wise, the way a sprite colour
// scale would.
func modulate(base, tint color.Color) color.Color {
	b, ok := colorful.MakeColor(base)
	if !ok {
		return base
	}
	t, ok := colorful.MakeColor(tint)
	if !ok {
		return base
	}
	return colorful.Color{R: b.R * t.R, G: b.G * t.G, B: b.B * t.B}.Clamped()
}
