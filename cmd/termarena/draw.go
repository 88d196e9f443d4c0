package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/skirmish/arena"
	"github.com/milk9111/skirmish/component"
)

const hudRows = 2

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	shotStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	pickupStyle = tcell.StyleDefault.Foreground(tcell.ColorGold)
	corpseStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func (t *term) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	h -= hudRows
	if w < 3 || h < 3 {
		t.screen.Show()
		return
	}

	for x := 0; x < w; x++ {
		t.screen.SetContent(x, hudRows, '─', nil, wallStyle)
		t.screen.SetContent(x, hudRows+h-1, '─', nil, wallStyle)
	}
	for y := hudRows; y < hudRows+h; y++ {
		t.screen.SetContent(0, y, '│', nil, wallStyle)
		t.screen.SetContent(w-1, y, '│', nil, wallStyle)
	}

	for _, p := range t.arena.Pickups() {
		style := pickupStyle
		if p.Spec.Color != nil && p.Spec.Color.Color != nil {
			style = tcell.StyleDefault.Foreground(toTcell(p.Spec.Color.Color))
		}
		t.put(p.Pos, w, h, glyph(p.Spec.Glyph, '+'), style)
	}
	for _, e := range t.arena.Enemies() {
		t.drawCombatant(e, w, h)
	}
	if p := t.arena.Player(); p != nil {
		t.drawCombatant(p, w, h)
	}
	for _, s := range t.arena.Projectiles() {
		t.put(s.Pos, w, h, '•', shotStyle)
	}

	t.drawHUD(w)
	t.screen.Show()
}

func (t *term) drawCombatant(c *arena.Combatant, w, h int) {
	if c.View.State.Dying {
		t.put(c.Actor.Position(), w, h, 'x', corpseStyle)
		return
	}
	base := c.Spec.Tint(color.White)
	style := tcell.StyleDefault.Foreground(toTcell(tint(base, c.View.Tint)))
	if c.View.State.Attacking {
		style = style.Bold(true)
	}
	t.put(c.Actor.Position(), w, h, glyph(c.Spec.Glyph, '?'), style)
}

func (t *term) drawHUD(w int) {
	line := fmt.Sprintf("%s  kills %d  enemies %d", t.arena.Scene(), t.arena.Kills(), t.arena.Alive())
	if t.arena.Paused() {
		line += "  [paused]"
	}
	if t.arena.Over() {
		line += "  r: fight again"
	}
	t.text(0, 0, line, hudStyle)

	p := t.arena.Player()
	if p == nil {
		return
	}
	bars := 20
	if w < 60 {
		bars = 10
	}
	hp := bar(p.View.Fill(component.LifePoints), bars)
	sh := bar(p.View.Fill(component.Shield), bars)
	t.text(0, 1, "HP "+hp, tcell.StyleDefault.Foreground(tcell.ColorRed))
	t.text(bars+5, 1, "SH "+sh, tcell.StyleDefault.Foreground(tcell.ColorDeepSkyBlue))
}

// put draws r at the cell for world position p.
func (t *term) put(p cp.Vector, w, h int, r rune, style tcell.Style) {
	b := t.arena.Bounds()
	x := 1 + int(math.Floor((p.X-b.L)/(b.R-b.L)*float64(w-2)))
	y := 1 + int(math.Floor((p.Y-b.B)/(b.T-b.B)*float64(h-2)))
	if x < 1 || x > w-2 || y < 1 || y > h-2 {
		return
	}
	t.screen.SetContent(x, hudRows+y, r, nil, style)
}

func (t *term) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func bar(fill float64, width int) string {
	n := int(math.Round(fill * float64(width)))
	out := make([]rune, width)
	for i := range out {
		out[i] = '░'
		if i < n {
			out[i] = '█'
		}
	}
	return string(out)
}

func glyph(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

func tint(base, t color.Color) colorful.Color {
	b, _ := colorful.MakeColor(base)
	c, ok := colorful.MakeColor(t)
	if !ok {
		return b
	}
	return colorful.Color{R: b.R * c.R, G: b.G * c.G, B: b.B * c.B}.Clamped()
}

func toTcell(c color.Color) tcell.Color {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorWhite
	}
	r, g, b := cc.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
