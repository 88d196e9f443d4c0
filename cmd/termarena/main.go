package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skirmish/arena"
	"github.com/milk9111/skirmish/config"
	"github.com/milk9111/skirmish/prefabs"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "skirmish.yaml", "arena config file")
	logPath := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *logPath, *debug); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, logPath string, debug bool) error {
	// The screen owns the terminal, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.PrefabDir != "" {
		prefabs.Dir = cfg.PrefabDir
	}

	input := newKeyInput()
	a, err := arena.New(arena.Options{Config: cfg, Intents: input, Logger: slog.Default()})
	if err != nil {
		return err
	}
	input.origin = func() cp.Vector {
		if p := a.Player(); p != nil {
			return p.Actor.Position()
		}
		return cp.Vector{}
	}
	input.victory = func() bool { return a.Alive() == 0 }

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	reloads := make(chan string, 16)
	if cfg.HotReload {
		if w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")); err != nil {
			slog.Warn("hot reload disabled", "dir", prefabs.Dir, "err", err)
		} else {
			g.Go(func() error {
				return w.Run(gctx, func(name string) {
					select {
					case reloads <- name:
					case <-gctx.Done():
					}
				})
			})
		}
	}

	t := &term{screen: screen, arena: a, input: input, cfg: cfg}
	t.loop(gctx, reloads)
	cancel()
	return g.Wait()
}

type term struct {
	screen tcell.Screen
	arena  *arena.Arena
	input  *keyInput
	cfg    config.Game
}

func (t *term) loop(ctx context.Context, reloads <-chan string) {
	dt := t.cfg.TickSeconds()
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !t.handle(ev) {
				return
			}
		case name := <-reloads:
			if err := t.arena.Reload(name); err != nil {
				slog.Warn("reload failed", "file", name, "err", err)
			}
		case <-ticker.C:
			t.arena.Update(dt)
			t.input.tick(dt)
			t.draw()
		}
	}
}

func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if t.input.press(ev) {
			return true
		}
		switch {
		case ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'p'):
			if !t.arena.Over() {
				t.arena.TogglePause()
			}
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			if err := t.arena.Reset(); err != nil {
				slog.Error("restart failed", "err", err)
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}
