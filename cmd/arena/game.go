package main

import (
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/arena"
	"github.com/milk9111/skirmish/config"
)

type Game struct {
	frames int
	debug  bool

	arena   *arena.Arena
	input   *Input
	cfg     config.Game
	reloads <-chan string
	pauseUI *ebitenui.UI
}

func NewGame(a *arena.Arena, input *Input, cfg config.Game, reloads <-chan string, debug bool) *Game {
	g := &Game{
		debug:   debug,
		arena:   a,
		input:   input,
		cfg:     cfg,
		reloads: reloads,
	}
	g.pauseUI = NewPauseUI(g)

	input.origin = func() cp.Vector {
		if p := a.Player(); p != nil {
			return p.Actor.Position()
		}
		return cp.Vector{}
	}
	input.victory = func() bool { return a.Alive() == 0 }
	return g
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	if g.input.quitPressed {
		return ebiten.Termination
	}

	g.applyReloads()

	if g.input.pausePressed && !g.arena.Over() {
		g.arena.TogglePause()
	}
	if g.input.restartPressed {
		g.restart()
	}

	if g.arena.Paused() {
		g.pauseUI.Update()
	}
	g.arena.Update(g.cfg.TickSeconds())
	return nil
}

func (g *Game) applyReloads() {
	for {
		select {
		case name := <-g.reloads:
			if err := g.arena.Reload(name); err != nil {
				slog.Warn("reload failed", "file", name, "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) restart() {
	if err := g.arena.Reset(); err != nil {
		slog.Error("restart failed", "err", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawArena(screen)
	g.drawHUD(screen)
	if g.arena.Paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.cfg.Arena.Width, g.cfg.Arena.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
